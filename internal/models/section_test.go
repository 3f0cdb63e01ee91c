package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionDelegatesToCourse(t *testing.T) {
	course := NewCourse("CS201", "Algorithms", 4)
	course.AddPrerequisite("CS102")
	course.AddPrerequisite("CS101")
	section := NewSection(course, "S3", "Monday", "9:00 AM", "Fall 2023", "Room C", 20)

	assert.Equal(t, "CS201/S3", section.Key())
	assert.Equal(t, 4, section.Credits())
	assert.Equal(t, []string{"CS101", "CS102"}, section.Prerequisites())

	course.AddPrerequisite("MATH101")
	assert.Contains(t, section.Prerequisites(), "MATH101")
}

func TestSectionRosterAndInstructor(t *testing.T) {
	section := NewSection(NewCourse("CS101", "Intro", 4), "S1", "Monday", "9:00 AM", "Fall 2023", "Room A", 1)

	assert.False(t, section.HasInstructor())
	assert.True(t, section.AssignInstructor("P1"))
	assert.False(t, section.AssignInstructor("P2"))
	assert.Equal(t, "P1", section.InstructorID)

	assert.True(t, section.Enroll("1"))
	assert.False(t, section.Enroll("1"))
	assert.True(t, section.IsFull())
	assert.Equal(t, []string{"1"}, section.Roster())
}

func TestTranscriptOverwritesByCourse(t *testing.T) {
	course := NewCourse("CS101", "Intro", 4)
	s1 := NewSection(course, "S1", "Monday", "9:00 AM", "Fall 2023", "Room A", 30)
	s2 := NewSection(course, "S2", "Tuesday", "9:00 AM", "Spring 2024", "Room A", 30)
	tr := NewTranscript("1")

	first := NewTranscriptEntry(s1, "1", 40, time.Now())
	second := NewTranscriptEntry(s2, "1", 88, time.Now())
	tr.Add(first)
	tr.Add(second)

	require.Equal(t, 1, tr.Len())
	entry, ok := tr.Entry("CS101")
	require.True(t, ok)
	assert.Same(t, second, entry)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestStudentPlanReplacesSameID(t *testing.T) {
	s := NewStudent("1", "Alice", "Computer Science", "BSc")
	s.AddToPlan(NewCourse("CS102", "Data Structures", 4))
	s.AddToPlan(NewCourse("CS101", "Intro", 4))
	s.AddToPlan(NewCourse("CS101", "Intro (revised)", 3))

	plan := s.PlanOfStudy()
	require.Len(t, plan, 2)
	assert.Equal(t, "CS101", plan[0].ID)
	assert.Equal(t, "Intro (revised)", plan[0].Name)
	assert.Equal(t, "1", s.Transcript.StudentID)
}

func TestProfessorSectionsKeyedByCourseAndNumber(t *testing.T) {
	prof := NewProfessor("P1", "Dr. Smith", "", "")
	slashed := NewSection(NewCourse("A/B", "Slashed", 3), "C", "Monday", "9:00 AM", "", "", 10)
	plain := NewSection(NewCourse("A", "Plain", 3), "B/C", "Monday", "9:00 AM", "", "", 10)

	prof.Teach(slashed)
	prof.Teach(plain)

	sections := prof.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, SectionID{CourseID: "A", SectionNo: "B/C"}, sections[0].ID())
	assert.Equal(t, SectionID{CourseID: "A/B", SectionNo: "C"}, sections[1].ID())
}
