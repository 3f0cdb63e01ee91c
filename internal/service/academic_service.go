package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/models"
	"github.com/noah-isme/academic-records/internal/repository"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
)

type recordsRepository interface {
	CreateCourse(course *models.Course) error
	FindCourse(id string) (*models.Course, error)
	ListCourses() []*models.Course
	CreateSection(section *models.Section) error
	FindSection(courseID, sectionNo string) (*models.Section, error)
	ListSectionsByCourse(courseID string) []*models.Section
	CreateStudent(student *models.Student) error
	FindStudent(id string) (*models.Student, error)
	CreateProfessor(professor *models.Professor) error
	FindProfessor(id string) (*models.Professor, error)
}

// AcademicConfig carries the grading scales and the schedule bucket policy.
type AcademicConfig struct {
	PassThreshold   int
	GPAScaleDivisor float64
	BucketPolicy    BucketPolicy
}

// DefaultAcademicConfig returns threshold 5, divisor 25 and noon/17:00 bucket boundaries.
func DefaultAcademicConfig() AcademicConfig {
	return AcademicConfig{
		PassThreshold:   DefaultPassThreshold,
		GPAScaleDivisor: DefaultGPAScaleDivisor,
		BucketPolicy:    DefaultBoundaryPolicy(),
	}
}

// AcademicService runs the enrollment and scheduling rules over a registry.
// Mutations are serialised by a single lock; reads share it.
type AcademicService struct {
	mu        sync.RWMutex
	repo      recordsRepository
	checker   PrerequisiteChecker
	gpa       GPACalculator
	schedule  *Schedule
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
}

// NewAcademicService constructs AcademicService.
func NewAcademicService(repo recordsRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg AcademicConfig) *AcademicService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AcademicService{
		repo:      repo,
		checker:   NewPrerequisiteChecker(cfg.PassThreshold),
		gpa:       NewGPACalculator(cfg.GPAScaleDivisor),
		schedule:  NewSchedule(cfg.BucketPolicy),
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateCourse registers a catalog course.
func (s *AcademicService) CreateCourse(req dto.CreateCourseRequest) (view *dto.CourseView, err error) {
	defer func() { s.record("create_course", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := models.NewCourse(req.ID, req.Name, req.Credits)
	if err := s.repo.CreateCourse(course); err != nil {
		return nil, storeError(err, "course "+req.ID)
	}
	s.logger.Info("course created", zap.String("course_id", course.ID), zap.Int("credits", course.Credits))
	v := courseView(course)
	return &v, nil
}

// Course returns a catalog course.
func (s *AcademicService) Course(courseID string) (*dto.CourseView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, err := s.repo.FindCourse(courseID)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	v := courseView(course)
	return &v, nil
}

// Courses lists the catalog ordered by id.
func (s *AcademicService) Courses() []dto.CourseView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := s.repo.ListCourses()
	out := make([]dto.CourseView, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseView(c))
	}
	return out
}

// AddPrerequisite makes req.PrerequisiteID a requirement of courseID. Cycles are not detected.
func (s *AcademicService) AddPrerequisite(courseID string, req dto.AddPrerequisiteRequest) (view *dto.CourseView, err error) {
	defer func() { s.record("add_prerequisite", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid prerequisite payload")
	}
	if req.PrerequisiteID == courseID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "a course cannot require itself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.repo.FindCourse(courseID)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	prereq, err := s.repo.FindCourse(req.PrerequisiteID)
	if err != nil {
		return nil, lookupError(err, "prerequisite course")
	}
	course.AddPrerequisite(prereq.ID)
	s.logger.Info("prerequisite added", zap.String("course_id", course.ID), zap.String("prerequisite_id", prereq.ID))
	v := courseView(course)
	return &v, nil
}

// ScheduleSection creates a section of courseID and places it on the weekly grid.
// An occupied cell is reported in the placement but does not block the section.
func (s *AcademicService) ScheduleSection(courseID string, req dto.ScheduleSectionRequest) (result *dto.ScheduleSectionResult, err error) {
	defer func() { s.record("schedule_section", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.repo.FindCourse(courseID)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	section := models.NewSection(course, req.SectionNo, req.DayOfWeek, req.TimeOfDay, req.Semester, req.Room, req.SeatingCapacity)
	if _, _, err := s.schedule.Locate(section); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	if err := s.repo.CreateSection(section); err != nil {
		return nil, storeError(err, "section "+section.Key())
	}
	placement, err := s.schedule.Place(section)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to place section")
	}

	if placement.HasConflict() {
		existing := make([]string, 0, len(placement.Conflicts))
		for _, c := range placement.Conflicts {
			existing = append(existing, c.Key())
		}
		s.logger.Warn("scheduling conflict detected",
			zap.String("section", section.Key()),
			zap.String("day", placement.Day.String()),
			zap.String("time_slot", placement.Bucket.String()),
			zap.Strings("existing", existing),
		)
		s.metrics.RecordScheduleConflict()
	}
	s.logger.Info("section scheduled", zap.String("section", section.Key()), zap.String("room", section.Room))

	return &dto.ScheduleSectionResult{Section: sectionView(section), Placement: placementView(placement)}, nil
}

// FindSection returns a section of a course, failing with SECTION_NOT_FOUND.
func (s *AcademicService) FindSection(courseID, sectionNo string) (*dto.SectionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, err := s.findSection(courseID, sectionNo)
	if err != nil {
		return nil, err
	}
	v := sectionView(section)
	return &v, nil
}

// Sections lists the sections of a course.
func (s *AcademicService) Sections(courseID string) ([]dto.SectionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.repo.FindCourse(courseID); err != nil {
		return nil, lookupError(err, "course")
	}
	sections := s.repo.ListSectionsByCourse(courseID)
	out := make([]dto.SectionView, 0, len(sections))
	for _, sec := range sections {
		out = append(out, sectionView(sec))
	}
	return out, nil
}

// CreateStudent registers a student with an empty transcript.
func (s *AcademicService) CreateStudent(req dto.CreateStudentRequest) (view *dto.StudentView, err error) {
	defer func() { s.record("create_student", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student := models.NewStudent(req.ID, req.Name, req.Major, req.Degree)
	if err := s.repo.CreateStudent(student); err != nil {
		return nil, storeError(err, "student "+req.ID)
	}
	s.logger.Info("student created", zap.String("student_id", student.ID))
	v := studentView(student)
	return &v, nil
}

// Student returns a student.
func (s *AcademicService) Student(studentID string) (*dto.StudentView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, err := s.repo.FindStudent(studentID)
	if err != nil {
		return nil, lookupError(err, "student")
	}
	v := studentView(student)
	return &v, nil
}

// CreateProfessor registers a professor.
func (s *AcademicService) CreateProfessor(req dto.CreateProfessorRequest) (view *dto.ProfessorView, err error) {
	defer func() { s.record("create_professor", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	professor := models.NewProfessor(req.ID, req.Name, req.Title, req.Department)
	if err := s.repo.CreateProfessor(professor); err != nil {
		return nil, storeError(err, "professor "+req.ID)
	}
	s.logger.Info("professor created", zap.String("professor_id", professor.ID))
	v := professorView(professor)
	return &v, nil
}

// Professor returns a professor with the sections taught.
func (s *AcademicService) Professor(professorID string) (*dto.ProfessorView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	professor, err := s.repo.FindProfessor(professorID)
	if err != nil {
		return nil, lookupError(err, "professor")
	}
	v := professorView(professor)
	return &v, nil
}

// AssignAdvisor sets or replaces the advisor of a student.
func (s *AcademicService) AssignAdvisor(studentID string, req dto.AssignAdvisorRequest) (view *dto.StudentView, err error) {
	defer func() { s.record("assign_advisor", err) }()
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid advisor payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.repo.FindStudent(studentID)
	if err != nil {
		return nil, lookupError(err, "student")
	}
	professor, err := s.repo.FindProfessor(req.ProfessorID)
	if err != nil {
		return nil, lookupError(err, "professor")
	}
	student.AdvisorID = professor.ID
	s.logger.Info("advisor assigned", zap.String("student_id", student.ID), zap.String("professor_id", professor.ID))
	v := studentView(student)
	return &v, nil
}

func (s *AcademicService) findSection(courseID, sectionNo string) (*models.Section, error) {
	section, err := s.repo.FindSection(courseID, sectionNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrSectionNotFound, fmt.Sprintf("can't find section %s", models.SectionKey(courseID, sectionNo)))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	return section, nil
}

func (s *AcademicService) record(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = strings.ToLower(appErrors.FromError(err).Code)
	}
	s.metrics.RecordOperation(operation, outcome)
}

func lookupError(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, what+" not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+what)
}

func storeError(err error, what string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return appErrors.Clone(appErrors.ErrConflict, what+" already exists")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store "+what)
}
