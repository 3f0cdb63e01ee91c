package dto

// CreateCourseRequest registers a catalog course.
type CreateCourseRequest struct {
	ID      string `json:"id" validate:"required,excludes=/"`
	Name    string `json:"name" validate:"required"`
	Credits int    `json:"credits" validate:"gt=0"`
}

// AddPrerequisiteRequest links a required course.
type AddPrerequisiteRequest struct {
	PrerequisiteID string `json:"prerequisite_id" validate:"required"`
}

// ScheduleSectionRequest creates a section of a course and places it on the schedule.
type ScheduleSectionRequest struct {
	SectionNo       string `json:"section_no" validate:"required,excludes=/"`
	DayOfWeek       string `json:"day_of_week" validate:"required"`
	TimeOfDay       string `json:"time_of_day" validate:"required"`
	Semester        string `json:"semester"`
	Room            string `json:"room"`
	SeatingCapacity int    `json:"seating_capacity" validate:"gt=0"`
}

// CreateStudentRequest registers a student.
type CreateStudentRequest struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Major  string `json:"major"`
	Degree string `json:"degree"`
}

// CreateProfessorRequest registers a professor.
type CreateProfessorRequest struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

// AssignAdvisorRequest sets a student's advisor.
type AssignAdvisorRequest struct {
	ProfessorID string `json:"professor_id" validate:"required"`
}

// CourseView renders a catalog course.
type CourseView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites"`
}

// SectionRef identifies a section across courses.
type SectionRef struct {
	CourseID  string `json:"course_id"`
	SectionNo string `json:"section_no"`
}

// SectionView renders a section with its roster state.
type SectionView struct {
	CourseID        string         `json:"course_id"`
	CourseName      string         `json:"course_name"`
	Credits         int            `json:"credits"`
	SectionNo       string         `json:"section_no"`
	DayOfWeek       string         `json:"day_of_week"`
	TimeOfDay       string         `json:"time_of_day"`
	Semester        string         `json:"semester"`
	Room            string         `json:"room"`
	SeatingCapacity int            `json:"seating_capacity"`
	EnrolledCount   int            `json:"enrolled_count"`
	InstructorID    string         `json:"instructor_id,omitempty"`
	Roster          []string       `json:"roster"`
	Grades          map[string]int `json:"grades"`
	Prerequisites   []string       `json:"prerequisites"`
}

// PlacementView reports the grid cell a section landed in and who already occupied it.
type PlacementView struct {
	Day       string       `json:"day"`
	TimeSlot  string       `json:"time_slot"`
	Conflicts []SectionRef `json:"conflicts"`
}

// ScheduleSectionResult is returned after a section is created and placed.
type ScheduleSectionResult struct {
	Section   SectionView   `json:"section"`
	Placement PlacementView `json:"placement"`
}

// StudentView renders a student.
type StudentView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Major     string `json:"major"`
	Degree    string `json:"degree"`
	AdvisorID string `json:"advisor_id,omitempty"`
}

// ProfessorView renders a professor and the sections taught.
type ProfessorView struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Department string       `json:"department"`
	Sections   []SectionRef `json:"sections"`
}
