package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/models"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
)

// AddCourseToPlan adds a course to a student's plan of study when the student's
// transcript satisfies every prerequisite. It has no roster or capacity effects.
func (s *AcademicService) AddCourseToPlan(studentID string, req dto.AddPlanCourseRequest) (view *dto.PlanOfStudyView, err error) {
	defer func() { s.record("add_course", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid plan payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.repo.FindStudent(studentID)
	if err != nil {
		return nil, lookupError(err, "student")
	}
	course, err := s.repo.FindCourse(req.CourseID)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	if unmet := s.checker.Check(student.Transcript, course.Prerequisites()); unmet != nil {
		s.logger.Info("course not added to plan",
			zap.String("student_id", student.ID),
			zap.String("course_id", course.ID),
			zap.String("unmet_prerequisite", unmet.CourseID),
		)
		return nil, prerequisiteError(unmet)
	}

	student.AddToPlan(course)
	s.logger.Info("course added to plan", zap.String("student_id", student.ID), zap.String("course_id", course.ID))
	v := planView(student)
	return &v, nil
}

// PlanOfStudy returns the courses a student intends to take.
func (s *AcademicService) PlanOfStudy(studentID string) (*dto.PlanOfStudyView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, err := s.repo.FindStudent(studentID)
	if err != nil {
		return nil, lookupError(err, "student")
	}
	v := planView(student)
	return &v, nil
}

// AgreeToTeach assigns a professor to an unstaffed section. The first assignment wins.
func (s *AcademicService) AgreeToTeach(courseID, sectionNo string, req dto.AgreeToTeachRequest) (result *dto.AssignmentResult, err error) {
	defer func() { s.record("agree_to_teach", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.findSection(courseID, sectionNo)
	if err != nil {
		return nil, err
	}
	professor, err := s.repo.FindProfessor(req.ProfessorID)
	if err != nil {
		return nil, lookupError(err, "professor")
	}
	if !section.AssignInstructor(professor.ID) {
		return nil, appErrors.Clone(appErrors.ErrInstructorAssigned,
			fmt.Sprintf("section %s already has a teacher assigned", section.Key()))
	}
	professor.Teach(section)

	s.logger.Info("professor agreed to teach",
		zap.String("professor_id", professor.ID),
		zap.String("section", section.Key()),
	)
	return &dto.AssignmentResult{ProfessorID: professor.ID, CourseID: section.CourseID(), SectionNo: section.SectionNo}, nil
}

// EnrollStudent admits a student into a section. Checks run in order: seat available,
// instructor assigned, prerequisites satisfied. Re-enrolling an enrolled student succeeds
// without changing the roster.
func (s *AcademicService) EnrollStudent(courseID, sectionNo string, req dto.EnrollRequest) (result *dto.EnrollmentResult, err error) {
	defer func() { s.record("enroll_student", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.findSection(courseID, sectionNo)
	if err != nil {
		return nil, err
	}
	student, err := s.repo.FindStudent(req.StudentID)
	if err != nil {
		return nil, lookupError(err, "student")
	}

	if section.IsFull() {
		return nil, appErrors.Clone(appErrors.ErrSectionFull, fmt.Sprintf("section %s is full", section.Key()))
	}
	if !section.HasInstructor() {
		return nil, appErrors.Clone(appErrors.ErrNoInstructor, fmt.Sprintf("section %s has no teacher", section.Key()))
	}
	if unmet := s.checker.Check(student.Transcript, section.Prerequisites()); unmet != nil {
		s.logger.Info("enrollment refused",
			zap.String("student_id", student.ID),
			zap.String("section", section.Key()),
			zap.String("unmet_prerequisite", unmet.CourseID),
		)
		return nil, prerequisiteError(unmet)
	}

	added := section.Enroll(student.ID)
	s.logger.Info("student enrolled",
		zap.String("student_id", student.ID),
		zap.String("section", section.Key()),
		zap.Bool("already_enrolled", !added),
	)
	return &dto.EnrollmentResult{
		StudentID:       student.ID,
		CourseID:        section.CourseID(),
		SectionNo:       section.SectionNo,
		EnrolledCount:   section.EnrolledCount(),
		SeatingCapacity: section.SeatingCapacity,
		AlreadyEnrolled: !added,
	}, nil
}

// PostGrade records a grade for an enrolled student in the section's grade map and in
// the student's transcript, replacing any earlier grade for the same course.
func (s *AcademicService) PostGrade(courseID, sectionNo string, req dto.PostGradeRequest) (view *dto.TranscriptEntryView, err error) {
	defer func() { s.record("post_grade", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.findSection(courseID, sectionNo)
	if err != nil {
		return nil, err
	}
	student, err := s.repo.FindStudent(req.StudentID)
	if err != nil {
		return nil, lookupError(err, "student")
	}
	if !section.IsEnrolled(student.ID) {
		return nil, appErrors.Clone(appErrors.ErrNotEnrolled,
			fmt.Sprintf("%s is not enrolled in section %s", student.ID, section.Key()))
	}

	entry := models.NewTranscriptEntry(section, student.ID, *req.Grade, s.now())
	section.RecordGrade(entry)
	student.Transcript.Add(entry)

	s.logger.Info("grade posted",
		zap.String("student_id", student.ID),
		zap.String("section", section.Key()),
		zap.Int("grade", entry.Grade()),
	)
	v := entryView(entry)
	return &v, nil
}

func prerequisiteError(unmet *UnmetPrerequisiteError) error {
	return appErrors.CloneWrap(appErrors.ErrPrerequisiteNotMet, unmet,
		fmt.Sprintf("prerequisite %s not met or grade not above %d", unmet.CourseID, unmet.Threshold))
}
