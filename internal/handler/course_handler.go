package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academic-records/internal/dto"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
	"github.com/noah-isme/academic-records/pkg/response"
)

type courseService interface {
	CreateCourse(req dto.CreateCourseRequest) (*dto.CourseView, error)
	Course(courseID string) (*dto.CourseView, error)
	Courses() []dto.CourseView
	AddPrerequisite(courseID string, req dto.AddPrerequisiteRequest) (*dto.CourseView, error)
	ScheduleSection(courseID string, req dto.ScheduleSectionRequest) (*dto.ScheduleSectionResult, error)
	Sections(courseID string) ([]dto.SectionView, error)
}

// CourseHandler exposes the course catalog and section scheduling.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Courses())
}

// Get godoc
// @Summary Get course by id
// @Tags Courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.service.Course(c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Create godoc
// @Summary Register course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.service.CreateCourse(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// AddPrerequisite godoc
// @Summary Add prerequisite to course
// @Tags Courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body dto.AddPrerequisiteRequest true "Prerequisite payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/prerequisites [post]
func (h *CourseHandler) AddPrerequisite(c *gin.Context) {
	var req dto.AddPrerequisiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.service.AddPrerequisite(c.Param("courseId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// ListSections godoc
// @Summary List sections of a course
// @Tags Sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId}/sections [get]
func (h *CourseHandler) ListSections(c *gin.Context) {
	sections, err := h.service.Sections(c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections)
}

// ScheduleSection godoc
// @Summary Create and schedule a section
// @Description Places the section on the weekly grid. Sections sharing a day and time slot are reported under meta.conflicts but still created.
// @Tags Sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body dto.ScheduleSectionRequest true "Section payload"
// @Success 201 {object} response.Envelope
// @Router /courses/{courseId}/sections [post]
func (h *CourseHandler) ScheduleSection(c *gin.Context) {
	var req dto.ScheduleSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.ScheduleSection(c.Param("courseId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	var meta map[string]interface{}
	if len(result.Placement.Conflicts) > 0 {
		meta = map[string]interface{}{"conflicts": len(result.Placement.Conflicts)}
	}
	response.Created(c, result, meta)
}
