package models

import "sort"

// Course is a catalog entry. Sections reference it rather than copying its fields.
type Course struct {
	ID      string
	Name    string
	Credits int

	prerequisites map[string]struct{}
}

// NewCourse constructs a course with an empty prerequisite set.
func NewCourse(id, name string, credits int) *Course {
	return &Course{ID: id, Name: name, Credits: credits, prerequisites: make(map[string]struct{})}
}

// AddPrerequisite records a required course id. Adding the same id twice is a no-op.
func (c *Course) AddPrerequisite(courseID string) {
	if c.prerequisites == nil {
		c.prerequisites = make(map[string]struct{})
	}
	c.prerequisites[courseID] = struct{}{}
}

// HasPrerequisite reports whether courseID is required before taking c.
func (c *Course) HasPrerequisite(courseID string) bool {
	_, ok := c.prerequisites[courseID]
	return ok
}

// Prerequisites returns the required course ids in ascending order.
func (c *Course) Prerequisites() []string {
	ids := make([]string, 0, len(c.prerequisites))
	for id := range c.prerequisites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
