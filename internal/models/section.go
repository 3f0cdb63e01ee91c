package models

import "sort"

// Section is one scheduled offering of a Course.
type Section struct {
	Course          *Course
	SectionNo       string
	DayOfWeek       string
	TimeOfDay       string
	Semester        string
	Room            string
	SeatingCapacity int
	InstructorID    string

	enrolled map[string]struct{}
	roster   []string
	grades   map[string]*TranscriptEntry
}

// SectionID identifies a section; section numbers are only unique within a course.
type SectionID struct {
	CourseID  string
	SectionNo string
}

// Less orders ids by course, then section number.
func (id SectionID) Less(other SectionID) bool {
	if id.CourseID != other.CourseID {
		return id.CourseID < other.CourseID
	}
	return id.SectionNo < other.SectionNo
}

// SectionKey renders a section for messages and logs as COURSE/SECTION.
func SectionKey(courseID, sectionNo string) string {
	return courseID + "/" + sectionNo
}

// NewSection creates an unstaffed, empty section of course.
func NewSection(course *Course, sectionNo, dayOfWeek, timeOfDay, semester, room string, seatingCapacity int) *Section {
	return &Section{
		Course:          course,
		SectionNo:       sectionNo,
		DayOfWeek:       dayOfWeek,
		TimeOfDay:       timeOfDay,
		Semester:        semester,
		Room:            room,
		SeatingCapacity: seatingCapacity,
		enrolled:        make(map[string]struct{}),
		grades:          make(map[string]*TranscriptEntry),
	}
}

func (s *Section) ID() SectionID      { return SectionID{CourseID: s.Course.ID, SectionNo: s.SectionNo} }
func (s *Section) Key() string        { return SectionKey(s.Course.ID, s.SectionNo) }
func (s *Section) CourseID() string   { return s.Course.ID }
func (s *Section) CourseName() string { return s.Course.Name }
func (s *Section) Credits() int       { return s.Course.Credits }

// Prerequisites delegates to the owning course.
func (s *Section) Prerequisites() []string {
	return s.Course.Prerequisites()
}

// HasInstructor reports whether a professor agreed to teach the section.
func (s *Section) HasInstructor() bool {
	return s.InstructorID != ""
}

// AssignInstructor sets the instructor only when none is assigned yet.
func (s *Section) AssignInstructor(professorID string) bool {
	if s.HasInstructor() {
		return false
	}
	s.InstructorID = professorID
	return true
}

func (s *Section) EnrolledCount() int { return len(s.enrolled) }

// IsFull reports whether the roster reached the seating capacity.
func (s *Section) IsFull() bool {
	return len(s.enrolled) >= s.SeatingCapacity
}

func (s *Section) IsEnrolled(studentID string) bool {
	_, ok := s.enrolled[studentID]
	return ok
}

// Enroll adds studentID to the roster. It returns false when the student was already enrolled.
// Capacity is enforced by the caller.
func (s *Section) Enroll(studentID string) bool {
	if s.IsEnrolled(studentID) {
		return false
	}
	s.enrolled[studentID] = struct{}{}
	s.roster = append(s.roster, studentID)
	return true
}

// Roster returns enrolled student ids in enrollment order.
func (s *Section) Roster() []string {
	out := make([]string, len(s.roster))
	copy(out, s.roster)
	return out
}

// RecordGrade files entry under the student id, replacing an earlier grade.
func (s *Section) RecordGrade(entry *TranscriptEntry) {
	s.grades[entry.StudentID()] = entry
}

func (s *Section) Grade(studentID string) (*TranscriptEntry, bool) {
	entry, ok := s.grades[studentID]
	return entry, ok
}

// GradedStudents returns the ids with a posted grade, sorted.
func (s *Section) GradedStudents() []string {
	ids := make([]string, 0, len(s.grades))
	for id := range s.grades {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
