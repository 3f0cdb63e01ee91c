package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/service"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
	"github.com/noah-isme/academic-records/pkg/response"
)

type studentService interface {
	CreateStudent(req dto.CreateStudentRequest) (*dto.StudentView, error)
	Student(studentID string) (*dto.StudentView, error)
	AssignAdvisor(studentID string, req dto.AssignAdvisorRequest) (*dto.StudentView, error)
	AddCourseToPlan(studentID string, req dto.AddPlanCourseRequest) (*dto.PlanOfStudyView, error)
	PlanOfStudy(studentID string) (*dto.PlanOfStudyView, error)
	Transcript(studentID string) (*dto.TranscriptView, error)
	GPA(studentID string) (float64, error)
}

type transcriptExporter interface {
	Transcript(studentID string, format dto.ExportFormat) (*dto.ExportFile, error)
}

// StudentHandler exposes students, plans of study and transcripts.
type StudentHandler struct {
	service studentService
	export  transcriptExporter
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc studentService, exporter transcriptExporter) *StudentHandler {
	return &StudentHandler{service: svc, export: exporter}
}

// Create godoc
// @Summary Register student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.CreateStudent(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Get godoc
// @Summary Get student by id
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.service.Student(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// AssignAdvisor godoc
// @Summary Assign advisor
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.AssignAdvisorRequest true "Advisor payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/advisor [put]
func (h *StudentHandler) AssignAdvisor(c *gin.Context) {
	var req dto.AssignAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.AssignAdvisor(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// AddToPlan godoc
// @Summary Add course to plan of study
// @Description Rejected with PREREQUISITE_NOT_MET naming the first unmet course when the transcript lacks a passing grade.
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.AddPlanCourseRequest true "Course payload"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /students/{id}/plan [post]
func (h *StudentHandler) AddToPlan(c *gin.Context) {
	var req dto.AddPlanCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	plan, err := h.service.AddCourseToPlan(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan)
}

// Plan godoc
// @Summary Get plan of study
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/plan [get]
func (h *StudentHandler) Plan(c *gin.Context) {
	plan, err := h.service.PlanOfStudy(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan)
}

// Transcript godoc
// @Summary Get transcript
// @Tags Students
// @Produce json
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param format query string false "csv or pdf for a download"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/transcript [get]
func (h *StudentHandler) Transcript(c *gin.Context) {
	if raw := c.Query("format"); raw != "" {
		format, err := service.ParseExportFormat(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		file, err := h.export.Transcript(c.Param("id"), format)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.File(c, file.Filename, file.ContentType, file.Content)
		return
	}

	transcript, err := h.service.Transcript(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, transcript)
}

// GPA godoc
// @Summary Get grade point average
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/gpa [get]
func (h *StudentHandler) GPA(c *gin.Context) {
	gpa, err := h.service.GPA(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"student_id": c.Param("id"), "gpa": gpa})
}
