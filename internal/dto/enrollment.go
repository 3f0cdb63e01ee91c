package dto

import "time"

// AddPlanCourseRequest adds a course to a plan of study.
type AddPlanCourseRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

// AgreeToTeachRequest assigns a professor to a section.
type AgreeToTeachRequest struct {
	ProfessorID string `json:"professor_id" validate:"required"`
}

// EnrollRequest admits a student into a section.
type EnrollRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

// PostGradeRequest records a grade for an enrolled student.
type PostGradeRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Grade     *int   `json:"grade" validate:"required,gte=0,lte=100"`
}

// PlanOfStudyView lists the courses a student intends to take.
type PlanOfStudyView struct {
	StudentID string       `json:"student_id"`
	Courses   []CourseView `json:"courses"`
}

// AssignmentResult confirms a professor agreed to teach a section.
type AssignmentResult struct {
	ProfessorID string `json:"professor_id"`
	CourseID    string `json:"course_id"`
	SectionNo   string `json:"section_no"`
}

// EnrollmentResult confirms a student's admission into a section.
type EnrollmentResult struct {
	StudentID       string `json:"student_id"`
	CourseID        string `json:"course_id"`
	SectionNo       string `json:"section_no"`
	EnrolledCount   int    `json:"enrolled_count"`
	SeatingCapacity int    `json:"seating_capacity"`
	AlreadyEnrolled bool   `json:"already_enrolled"`
}

// TranscriptEntryView renders one graded course.
type TranscriptEntryView struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name"`
	SectionNo  string    `json:"section_no"`
	Semester   string    `json:"semester"`
	Credits    int       `json:"credits"`
	Grade      int       `json:"grade"`
	PostedAt   time.Time `json:"posted_at"`
}

// TranscriptView renders a student's transcript with the GPA derived from it.
type TranscriptView struct {
	StudentID   string                `json:"student_id"`
	StudentName string                `json:"student_name"`
	Entries     []TranscriptEntryView `json:"entries"`
	GPA         float64               `json:"gpa"`
}

// ScheduleCellView lists the occupants of one day/time bucket.
type ScheduleCellView struct {
	Day      string       `json:"day"`
	TimeSlot string       `json:"time_slot"`
	Sections []SectionRef `json:"sections"`
}

// ScheduleGridView renders the whole weekly grid, row-major by time slot.
type ScheduleGridView struct {
	Days      []string           `json:"days"`
	TimeSlots []string           `json:"time_slots"`
	Cells     []ScheduleCellView `json:"cells"`
}

// ScheduledSectionView pairs a placed section with its grid cell.
type ScheduledSectionView struct {
	Day      string      `json:"day"`
	TimeSlot string      `json:"time_slot"`
	Section  SectionView `json:"section"`
}
