package seed

import (
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/academic-records/internal/dto"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
)

type academicSeeder interface {
	CreateCourse(req dto.CreateCourseRequest) (*dto.CourseView, error)
	AddPrerequisite(courseID string, req dto.AddPrerequisiteRequest) (*dto.CourseView, error)
	ScheduleSection(courseID string, req dto.ScheduleSectionRequest) (*dto.ScheduleSectionResult, error)
	CreateStudent(req dto.CreateStudentRequest) (*dto.StudentView, error)
	CreateProfessor(req dto.CreateProfessorRequest) (*dto.ProfessorView, error)
	AssignAdvisor(studentID string, req dto.AssignAdvisorRequest) (*dto.StudentView, error)
	AddCourseToPlan(studentID string, req dto.AddPlanCourseRequest) (*dto.PlanOfStudyView, error)
	AgreeToTeach(courseID, sectionNo string, req dto.AgreeToTeachRequest) (*dto.AssignmentResult, error)
	EnrollStudent(courseID, sectionNo string, req dto.EnrollRequest) (*dto.EnrollmentResult, error)
	PostGrade(courseID, sectionNo string, req dto.PostGradeRequest) (*dto.TranscriptEntryView, error)
}

// Outcome records one scripted step of the demo session.
type Outcome struct {
	Step string
	Code string
}

// Report lists the scripted steps in order. Code is empty for steps that succeeded.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the steps that ended with a domain failure.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Code != "" {
			out = append(out, o)
		}
	}
	return out
}

// Demo loads the sample session: two students, one professor, four courses and three sections,
// with S3 sharing S1's Monday morning slot. Catalog entries that already exist are skipped.
// Scripted steps are allowed to fail (Alice cannot plan CS201 without a CS102 grade); their
// failure codes are collected in the report instead.
func Demo(svc academicSeeder, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var finalErr error
	keep := func(err error, what string) {
		if err == nil || errors.Is(err, appErrors.ErrConflict) {
			return
		}
		logger.Error("seed step failed", zap.String("step", what), zap.Error(err))
		finalErr = errors.Join(finalErr, err)
	}

	logger.Info("loading demo records")

	_, err := svc.CreateStudent(dto.CreateStudentRequest{ID: "1", Name: "Alice", Major: "Computer Science", Degree: "BSc"})
	keep(err, "student 1")
	_, err = svc.CreateStudent(dto.CreateStudentRequest{ID: "2", Name: "Bob", Major: "Mathematics", Degree: "BSc"})
	keep(err, "student 2")
	_, err = svc.CreateProfessor(dto.CreateProfessorRequest{ID: "P1", Name: "Dr. Smith", Title: "Associate Professor", Department: "Computer Science"})
	keep(err, "professor P1")
	_, err = svc.AssignAdvisor("1", dto.AssignAdvisorRequest{ProfessorID: "P1"})
	keep(err, "advisor of 1")

	for _, c := range []dto.CreateCourseRequest{
		{ID: "CS101", Name: "Introduction to Computer Science", Credits: 4},
		{ID: "CS102", Name: "Data Structures", Credits: 4},
		{ID: "CS201", Name: "Algorithms", Credits: 4},
		{ID: "MATH101", Name: "Calculus", Credits: 4},
	} {
		_, err = svc.CreateCourse(c)
		keep(err, "course "+c.ID)
	}
	for _, prereq := range []string{"CS101", "CS102"} {
		_, err = svc.AddPrerequisite("CS201", dto.AddPrerequisiteRequest{PrerequisiteID: prereq})
		keep(err, "prerequisite "+prereq)
	}

	sections := []struct {
		courseID string
		req      dto.ScheduleSectionRequest
	}{
		{"CS101", dto.ScheduleSectionRequest{SectionNo: "S1", DayOfWeek: "Monday", TimeOfDay: "9:00 AM", Semester: "Fall 2023", Room: "Room A", SeatingCapacity: 30}},
		{"CS102", dto.ScheduleSectionRequest{SectionNo: "S2", DayOfWeek: "Wednesday", TimeOfDay: "11:00 AM", Semester: "Fall 2023", Room: "Room B", SeatingCapacity: 25}},
		{"CS201", dto.ScheduleSectionRequest{SectionNo: "S3", DayOfWeek: "Monday", TimeOfDay: "9:00 AM", Semester: "Fall 2023", Room: "Room C", SeatingCapacity: 20}},
	}
	for _, s := range sections {
		_, err = svc.ScheduleSection(s.courseID, s.req)
		keep(err, "section "+s.courseID+"/"+s.req.SectionNo)
	}
	if finalErr != nil {
		return nil, finalErr
	}

	report := &Report{}
	step := func(name string, err error) {
		outcome := Outcome{Step: name}
		if err != nil {
			outcome.Code = appErrors.FromError(err).Code
			logger.Info("demo step refused", zap.String("step", name), zap.String("code", outcome.Code), zap.Error(err))
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	grade := 95
	_, err = svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "CS101"})
	step("plan CS101", err)
	_, err = svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "CS102"})
	step("plan CS102", err)
	for _, s := range sections {
		_, err = svc.AgreeToTeach(s.courseID, s.req.SectionNo, dto.AgreeToTeachRequest{ProfessorID: "P1"})
		step("teach "+s.courseID+"/"+s.req.SectionNo, err)
	}
	_, err = svc.EnrollStudent("CS101", "S1", dto.EnrollRequest{StudentID: "1"})
	step("enroll 1 in CS101/S1", err)
	_, err = svc.PostGrade("CS101", "S1", dto.PostGradeRequest{StudentID: "1", Grade: &grade})
	step("grade 1 in CS101/S1", err)
	_, err = svc.EnrollStudent("CS102", "S2", dto.EnrollRequest{StudentID: "1"})
	step("enroll 1 in CS102/S2", err)
	_, err = svc.AddCourseToPlan("1", dto.AddPlanCourseRequest{CourseID: "CS201"})
	step("plan CS201", err)

	logger.Info("demo records loaded", zap.Int("steps", len(report.Outcomes)), zap.Int("refused", len(report.Failed())))
	return report, nil
}
