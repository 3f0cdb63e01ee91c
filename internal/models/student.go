package models

import "sort"

// Student owns a transcript and a plan of study.
type Student struct {
	ID         string
	Name       string
	Major      string
	Degree     string
	AdvisorID  string
	Transcript *Transcript

	plan map[string]*Course
}

func NewStudent(id, name, major, degree string) *Student {
	return &Student{
		ID:         id,
		Name:       name,
		Major:      major,
		Degree:     degree,
		Transcript: NewTranscript(id),
		plan:       make(map[string]*Course),
	}
}

// AddToPlan records intent to take course; re-adding the same id replaces the entry.
func (s *Student) AddToPlan(course *Course) {
	s.plan[course.ID] = course
}

func (s *Student) InPlan(courseID string) bool {
	_, ok := s.plan[courseID]
	return ok
}

// PlanOfStudy lists planned courses ordered by id.
func (s *Student) PlanOfStudy() []*Course {
	out := make([]*Course, 0, len(s.plan))
	for _, c := range s.plan {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
