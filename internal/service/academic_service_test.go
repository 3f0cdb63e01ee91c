package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/repository"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
)

func intPtr(v int) *int { return &v }

func newAcademicServiceForTest(t *testing.T) (*AcademicService, *MetricsService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := NewMetricsService()
	svc := NewAcademicService(repository.NewRegistry(), validator.New(), zap.New(core), metrics, DefaultAcademicConfig())
	return svc, metrics, logs
}

// seedCatalog registers CS101, CS102 and CS201 (requires CS101 and CS102), student 1 and professor P1.
func seedCatalog(t *testing.T, svc *AcademicService) {
	t.Helper()
	for _, c := range []dto.CreateCourseRequest{
		{ID: "CS101", Name: "Introduction to Computer Science", Credits: 4},
		{ID: "CS102", Name: "Data Structures", Credits: 4},
		{ID: "CS201", Name: "Algorithms", Credits: 4},
	} {
		_, err := svc.CreateCourse(c)
		require.NoError(t, err)
	}
	_, err := svc.AddPrerequisite("CS201", dto.AddPrerequisiteRequest{PrerequisiteID: "CS101"})
	require.NoError(t, err)
	_, err = svc.AddPrerequisite("CS201", dto.AddPrerequisiteRequest{PrerequisiteID: "CS102"})
	require.NoError(t, err)

	_, err = svc.CreateStudent(dto.CreateStudentRequest{ID: "1", Name: "Alice", Major: "Computer Science", Degree: "BSc"})
	require.NoError(t, err)
	_, err = svc.CreateProfessor(dto.CreateProfessorRequest{ID: "P1", Name: "Dr. Smith", Title: "Associate Professor", Department: "Computer Science"})
	require.NoError(t, err)
}

func scheduleSection(t *testing.T, svc *AcademicService, courseID, sectionNo, day, tod string, capacity int) *dto.ScheduleSectionResult {
	t.Helper()
	res, err := svc.ScheduleSection(courseID, dto.ScheduleSectionRequest{
		SectionNo: sectionNo, DayOfWeek: day, TimeOfDay: tod, Semester: "Fall 2023", Room: "Room A", SeatingCapacity: capacity,
	})
	require.NoError(t, err)
	return res
}

func passCourse(t *testing.T, svc *AcademicService, courseID, sectionNo, studentID string, grade int) {
	t.Helper()
	_, err := svc.EnrollStudent(courseID, sectionNo, dto.EnrollRequest{StudentID: studentID})
	require.NoError(t, err)
	_, err = svc.PostGrade(courseID, sectionNo, dto.PostGradeRequest{StudentID: studentID, Grade: intPtr(grade)})
	require.NoError(t, err)
}

func TestAddCourseToPlanRequiresPrerequisites(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 30)
	scheduleSection(t, svc, "CS102", "S2", "Wednesday", "11:00 AM", 25)
	for _, sec := range []struct{ course, no string }{{"CS101", "S1"}, {"CS102", "S2"}} {
		_, err := svc.AgreeToTeach(sec.course, sec.no, dto.AgreeToTeachRequest{ProfessorID: "P1"})
		require.NoError(t, err)
	}

	passCourse(t, svc, "CS101", "S1", "1", 95)

	_, err := svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "CS201"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrPrerequisiteNotMet))
	var unmet *UnmetPrerequisiteError
	require.True(t, errors.As(err, &unmet))
	assert.Equal(t, "CS102", unmet.CourseID)

	plan, err := svc.PlanOfStudy("1")
	require.NoError(t, err)
	assert.Empty(t, plan.Courses)

	passCourse(t, svc, "CS102", "S2", "1", 90)

	plan, err = svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "CS201"})
	require.NoError(t, err)
	require.Len(t, plan.Courses, 1)
	assert.Equal(t, "CS201", plan.Courses[0].ID)
}

func TestAddCourseToPlanWithoutPrerequisitesAndReAdd(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	_, err := svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "CS101"})
	require.NoError(t, err)
	plan, err := svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "CS101"})
	require.NoError(t, err)
	assert.Len(t, plan.Courses, 1)

	_, err = svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "NOPE"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = svc.AddCourseToPlan("9", dto.AddPlanCourseRequest{CourseID: "CS101"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestEnrollStudentPreconditionOrder(t *testing.T) {
	svc, metrics, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	_, err := svc.CreateStudent(dto.CreateStudentRequest{ID: "2", Name: "Bob"})
	require.NoError(t, err)
	scheduleSection(t, svc, "CS201", "S3", "Monday", "9:00 AM", 1)

	_, err = svc.EnrollStudent("CS201", "S3", dto.EnrollRequest{StudentID: "1"})
	assert.True(t, errors.Is(err, appErrors.ErrNoInstructor), "instructor checked before prerequisites")

	_, err = svc.AgreeToTeach("CS201", "S3", dto.AgreeToTeachRequest{ProfessorID: "P1"})
	require.NoError(t, err)

	_, err = svc.EnrollStudent("CS201", "S3", dto.EnrollRequest{StudentID: "1"})
	assert.True(t, errors.Is(err, appErrors.ErrPrerequisiteNotMet))
	var unmet *UnmetPrerequisiteError
	require.True(t, errors.As(err, &unmet))
	assert.Equal(t, "CS101", unmet.CourseID)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operationTotal.WithLabelValues("enroll_student", "no_instructor")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operationTotal.WithLabelValues("enroll_student", "prerequisite_not_met")))
}

func TestEnrollStudentCapacity(t *testing.T) {
	svc, metrics, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	_, err := svc.CreateStudent(dto.CreateStudentRequest{ID: "2", Name: "Bob"})
	require.NoError(t, err)
	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 1)

	_, err = svc.EnrollStudent("CS101", "S1", dto.EnrollRequest{StudentID: "1"})
	assert.True(t, errors.Is(err, appErrors.ErrNoInstructor))

	_, err = svc.AgreeToTeach("CS101", "S1", dto.AgreeToTeachRequest{ProfessorID: "P1"})
	require.NoError(t, err)

	res, err := svc.EnrollStudent("CS101", "S1", dto.EnrollRequest{StudentID: "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.EnrolledCount)
	assert.False(t, res.AlreadyEnrolled)

	_, err = svc.EnrollStudent("CS101", "S1", dto.EnrollRequest{StudentID: "2"})
	assert.True(t, errors.Is(err, appErrors.ErrSectionFull))

	section, err := svc.FindSection("CS101", "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, section.Roster)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operationTotal.WithLabelValues("enroll_student", "section_full")))
}

func TestEnrollStudentTwiceIsIdempotent(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 2)
	_, err := svc.AgreeToTeach("CS101", "S1", dto.AgreeToTeachRequest{ProfessorID: "P1"})
	require.NoError(t, err)

	_, err = svc.EnrollStudent("CS101", "S1", dto.EnrollRequest{StudentID: "1"})
	require.NoError(t, err)
	res, err := svc.EnrollStudent("CS101", "S1", dto.EnrollRequest{StudentID: "1"})
	require.NoError(t, err)
	assert.True(t, res.AlreadyEnrolled)
	assert.Equal(t, 1, res.EnrolledCount)
}

func TestEnrollStudentSectionNotFound(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	_, err := svc.EnrollStudent("CS101", "S9", dto.EnrollRequest{StudentID: "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrSectionNotFound))
	assert.Contains(t, err.Error(), "CS101/S9")
}

func TestAgreeToTeachFirstAssignmentWins(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	_, err := svc.CreateProfessor(dto.CreateProfessorRequest{ID: "P2", Name: "Dr. Jones"})
	require.NoError(t, err)
	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 30)

	_, err = svc.AgreeToTeach("CS101", "S1", dto.AgreeToTeachRequest{ProfessorID: "P1"})
	require.NoError(t, err)
	_, err = svc.AgreeToTeach("CS101", "S1", dto.AgreeToTeachRequest{ProfessorID: "P2"})
	assert.True(t, errors.Is(err, appErrors.ErrInstructorAssigned))

	section, err := svc.FindSection("CS101", "S1")
	require.NoError(t, err)
	assert.Equal(t, "P1", section.InstructorID)

	p1, err := svc.Professor("P1")
	require.NoError(t, err)
	assert.Equal(t, []dto.SectionRef{{CourseID: "CS101", SectionNo: "S1"}}, p1.Sections)
	p2, err := svc.Professor("P2")
	require.NoError(t, err)
	assert.Empty(t, p2.Sections)
}

func TestPostGrade(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 30)
	scheduleSection(t, svc, "CS101", "S4", "Tuesday", "2:00 PM", 30)
	for _, no := range []string{"S1", "S4"} {
		_, err := svc.AgreeToTeach("CS101", no, dto.AgreeToTeachRequest{ProfessorID: "P1"})
		require.NoError(t, err)
	}

	_, err := svc.PostGrade("CS101", "S1", dto.PostGradeRequest{StudentID: "1", Grade: intPtr(80)})
	assert.True(t, errors.Is(err, appErrors.ErrNotEnrolled))
	transcript, err := svc.Transcript("1")
	require.NoError(t, err)
	assert.Empty(t, transcript.Entries)

	passCourse(t, svc, "CS101", "S1", "1", 40)
	passCourse(t, svc, "CS101", "S4", "1", 95)

	transcript, err = svc.Transcript("1")
	require.NoError(t, err)
	require.Len(t, transcript.Entries, 1, "one entry per course id")
	entry := transcript.Entries[0]
	assert.Equal(t, "CS101", entry.CourseID)
	assert.Equal(t, "S4", entry.SectionNo)
	assert.Equal(t, 95, entry.Grade)
	assert.Equal(t, "1", entry.StudentID)
	assert.InDelta(t, 3.8, transcript.GPA, 1e-9)
}

func TestPostGradeRepostOverwrites(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 30)
	_, err := svc.AgreeToTeach("CS101", "S1", dto.AgreeToTeachRequest{ProfessorID: "P1"})
	require.NoError(t, err)
	passCourse(t, svc, "CS101", "S1", "1", 60)

	_, err = svc.PostGrade("CS101", "S1", dto.PostGradeRequest{StudentID: "1", Grade: intPtr(100)})
	require.NoError(t, err)

	gpa, err := svc.GPA("1")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, gpa, 1e-9)

	section, err := svc.FindSection("CS101", "S1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 100}, section.Grades)
}

func TestPostGradeValidation(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	for _, req := range []dto.PostGradeRequest{
		{StudentID: "1", Grade: intPtr(101)},
		{StudentID: "1", Grade: intPtr(-1)},
		{StudentID: "1"},
		{Grade: intPtr(50)},
	} {
		_, err := svc.PostGrade("CS101", "S1", req)
		assert.True(t, errors.Is(err, appErrors.ErrValidation))
	}
}

func TestGPAEmptyTranscriptThroughService(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	gpa, err := svc.GPA("1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, gpa)

	_, err = svc.GPA("missing")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestScheduleSectionConflictIsAdvisory(t *testing.T) {
	svc, metrics, logs := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	first := scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 30)
	assert.Empty(t, first.Placement.Conflicts)
	assert.Equal(t, 0, logs.FilterMessage("scheduling conflict detected").Len())

	second := scheduleSection(t, svc, "CS201", "S3", "Monday", "9:00 AM", 20)
	assert.Equal(t, "Mon", second.Placement.Day)
	assert.Equal(t, "Morning", second.Placement.TimeSlot)
	assert.Equal(t, []dto.SectionRef{{CourseID: "CS101", SectionNo: "S1"}}, second.Placement.Conflicts)

	warnings := logs.FilterMessage("scheduling conflict detected").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.scheduleConflicts))

	grid := svc.ScheduleGrid()
	require.Len(t, grid.Cells, 21)
	assert.Equal(t, "Mon", grid.Cells[0].Day)
	assert.Equal(t, "Morning", grid.Cells[0].TimeSlot)
	assert.Equal(t, []dto.SectionRef{{CourseID: "CS101", SectionNo: "S1"}, {CourseID: "CS201", SectionNo: "S3"}}, grid.Cells[0].Sections)
}

func TestScheduleSectionValidation(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	_, err := svc.ScheduleSection("CS101", dto.ScheduleSectionRequest{SectionNo: "S1", DayOfWeek: "Someday", TimeOfDay: "9:00 AM", SeatingCapacity: 10})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.ScheduleSection("CS101", dto.ScheduleSectionRequest{SectionNo: "S1", DayOfWeek: "Monday", TimeOfDay: "9:00 AM"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation), "capacity must be positive")
	_, err = svc.ScheduleSection("NOPE", dto.ScheduleSectionRequest{SectionNo: "S1", DayOfWeek: "Monday", TimeOfDay: "9:00 AM", SeatingCapacity: 10})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 30)
	_, err = svc.ScheduleSection("CS101", dto.ScheduleSectionRequest{SectionNo: "S1", DayOfWeek: "Friday", TimeOfDay: "9:00 AM", SeatingCapacity: 10})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Len(t, svc.ScheduledSections(), 1, "rejected sections are not placed")
}

func TestCatalogValidation(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	_, err := svc.CreateCourse(dto.CreateCourseRequest{ID: "X", Name: "X", Credits: 0})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.CreateCourse(dto.CreateCourseRequest{ID: "CS101", Name: "Again", Credits: 3})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	_, err = svc.AddPrerequisite("CS101", dto.AddPrerequisiteRequest{PrerequisiteID: "CS101"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.AddPrerequisite("CS101", dto.AddPrerequisiteRequest{PrerequisiteID: "NOPE"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = svc.CreateStudent(dto.CreateStudentRequest{ID: "1", Name: "Dup"})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))

	course, err := svc.Course("CS201")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101", "CS102"}, course.Prerequisites)
	assert.Len(t, svc.Courses(), 3)
}

func TestCatalogRejectsSlashInIdentifiers(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	_, err := svc.CreateCourse(dto.CreateCourseRequest{ID: "A/B", Name: "Slashed", Credits: 3})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = svc.ScheduleSection("CS101", dto.ScheduleSectionRequest{SectionNo: "B/C", DayOfWeek: "Monday", TimeOfDay: "9:00 AM", SeatingCapacity: 10})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, svc.ScheduledSections())
}

func TestAssignAdvisor(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)

	student, err := svc.AssignAdvisor("1", dto.AssignAdvisorRequest{ProfessorID: "P1"})
	require.NoError(t, err)
	assert.Equal(t, "P1", student.AdvisorID)

	_, err = svc.AssignAdvisor("1", dto.AssignAdvisorRequest{ProfessorID: "P9"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestConcurrentEnrollmentNeverExceedsCapacity(t *testing.T) {
	svc, _, _ := newAcademicServiceForTest(t)
	seedCatalog(t, svc)
	scheduleSection(t, svc, "CS101", "S1", "Monday", "9:00 AM", 5)
	_, err := svc.AgreeToTeach("CS101", "S1", dto.AgreeToTeachRequest{ProfessorID: "P1"})
	require.NoError(t, err)

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, id := range ids {
		_, err := svc.CreateStudent(dto.CreateStudentRequest{ID: id, Name: id})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = svc.EnrollStudent("CS101", "S1", dto.EnrollRequest{StudentID: id})
		}(id)
	}
	wg.Wait()

	section, err := svc.FindSection("CS101", "S1")
	require.NoError(t, err)
	assert.Equal(t, 5, section.EnrolledCount)
}
