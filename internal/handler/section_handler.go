package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academic-records/internal/dto"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
	"github.com/noah-isme/academic-records/pkg/response"
)

type sectionService interface {
	FindSection(courseID, sectionNo string) (*dto.SectionView, error)
	AgreeToTeach(courseID, sectionNo string, req dto.AgreeToTeachRequest) (*dto.AssignmentResult, error)
	EnrollStudent(courseID, sectionNo string, req dto.EnrollRequest) (*dto.EnrollmentResult, error)
	PostGrade(courseID, sectionNo string, req dto.PostGradeRequest) (*dto.TranscriptEntryView, error)
}

// SectionHandler exposes staffing, enrollment and grading of a section.
type SectionHandler struct {
	service sectionService
}

// NewSectionHandler constructs a section handler.
func NewSectionHandler(svc sectionService) *SectionHandler {
	return &SectionHandler{service: svc}
}

// Get godoc
// @Summary Get section
// @Tags Sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionNo path string true "Section number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{courseId}/sections/{sectionNo} [get]
func (h *SectionHandler) Get(c *gin.Context) {
	section, err := h.service.FindSection(c.Param("courseId"), c.Param("sectionNo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, section)
}

// AgreeToTeach godoc
// @Summary Assign professor to section
// @Tags Sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionNo path string true "Section number"
// @Param payload body dto.AgreeToTeachRequest true "Professor payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /courses/{courseId}/sections/{sectionNo}/instructor [put]
func (h *SectionHandler) AgreeToTeach(c *gin.Context) {
	var req dto.AgreeToTeachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.AgreeToTeach(c.Param("courseId"), c.Param("sectionNo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Enroll godoc
// @Summary Enroll student in section
// @Tags Sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionNo path string true "Section number"
// @Param payload body dto.EnrollRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope "Already enrolled"
// @Failure 409 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /courses/{courseId}/sections/{sectionNo}/enrollments [post]
func (h *SectionHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.EnrollStudent(c.Param("courseId"), c.Param("sectionNo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.AlreadyEnrolled {
		response.JSON(c, http.StatusOK, result)
		return
	}
	response.Created(c, result)
}

// PostGrade godoc
// @Summary Post grade for enrolled student
// @Tags Sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionNo path string true "Section number"
// @Param payload body dto.PostGradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /courses/{courseId}/sections/{sectionNo}/grades [put]
func (h *SectionHandler) PostGrade(c *gin.Context) {
	var req dto.PostGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.PostGrade(c.Param("courseId"), c.Param("sectionNo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}
