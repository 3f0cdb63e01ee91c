package repository

import (
	"errors"
	"fmt"
	"sort"

	"github.com/noah-isme/academic-records/internal/models"
)

var (
	// ErrNotFound is returned when no entity has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an id is already registered.
	ErrDuplicate = errors.New("record already exists")
)

// Registry owns every entity of a session, keyed by id. It is not safe for
// concurrent use; callers serialise access.
type Registry struct {
	courses    map[string]*models.Course
	sections   map[models.SectionID]*models.Section
	students   map[string]*models.Student
	professors map[string]*models.Professor
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		courses:    make(map[string]*models.Course),
		sections:   make(map[models.SectionID]*models.Section),
		students:   make(map[string]*models.Student),
		professors: make(map[string]*models.Professor),
	}
}

// CreateCourse registers a course.
func (r *Registry) CreateCourse(course *models.Course) error {
	if _, ok := r.courses[course.ID]; ok {
		return fmt.Errorf("course %s: %w", course.ID, ErrDuplicate)
	}
	r.courses[course.ID] = course
	return nil
}

// FindCourse returns a course by id.
func (r *Registry) FindCourse(id string) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
	}
	return course, nil
}

// ListCourses returns all courses ordered by id.
func (r *Registry) ListCourses() []*models.Course {
	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateSection registers a section under its course.
func (r *Registry) CreateSection(section *models.Section) error {
	id := section.ID()
	if _, ok := r.sections[id]; ok {
		return fmt.Errorf("section %s: %w", section.Key(), ErrDuplicate)
	}
	r.sections[id] = section
	return nil
}

// FindSection returns a section by course id and section number.
func (r *Registry) FindSection(courseID, sectionNo string) (*models.Section, error) {
	section, ok := r.sections[models.SectionID{CourseID: courseID, SectionNo: sectionNo}]
	if !ok {
		return nil, fmt.Errorf("section %s: %w", models.SectionKey(courseID, sectionNo), ErrNotFound)
	}
	return section, nil
}

// ListSectionsByCourse returns the sections of a course ordered by section number.
func (r *Registry) ListSectionsByCourse(courseID string) []*models.Section {
	var out []*models.Section
	for _, s := range r.sections {
		if s.CourseID() == courseID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SectionNo < out[j].SectionNo })
	return out
}

// CreateStudent registers a student.
func (r *Registry) CreateStudent(student *models.Student) error {
	if _, ok := r.students[student.ID]; ok {
		return fmt.Errorf("student %s: %w", student.ID, ErrDuplicate)
	}
	r.students[student.ID] = student
	return nil
}

// FindStudent returns a student by id.
func (r *Registry) FindStudent(id string) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return student, nil
}

// CreateProfessor registers a professor.
func (r *Registry) CreateProfessor(professor *models.Professor) error {
	if _, ok := r.professors[professor.ID]; ok {
		return fmt.Errorf("professor %s: %w", professor.ID, ErrDuplicate)
	}
	r.professors[professor.ID] = professor
	return nil
}

// FindProfessor returns a professor by id.
func (r *Registry) FindProfessor(id string) (*models.Professor, error) {
	professor, ok := r.professors[id]
	if !ok {
		return nil, fmt.Errorf("professor %s: %w", id, ErrNotFound)
	}
	return professor, nil
}
