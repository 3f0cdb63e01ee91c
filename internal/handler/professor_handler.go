package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academic-records/internal/dto"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
	"github.com/noah-isme/academic-records/pkg/response"
)

type professorService interface {
	CreateProfessor(req dto.CreateProfessorRequest) (*dto.ProfessorView, error)
	Professor(professorID string) (*dto.ProfessorView, error)
}

// ProfessorHandler exposes professor endpoints.
type ProfessorHandler struct {
	service professorService
}

// NewProfessorHandler constructs a professor handler.
func NewProfessorHandler(svc professorService) *ProfessorHandler {
	return &ProfessorHandler{service: svc}
}

// Create godoc
// @Summary Register professor
// @Tags Professors
// @Accept json
// @Produce json
// @Param payload body dto.CreateProfessorRequest true "Professor payload"
// @Success 201 {object} response.Envelope
// @Router /professors [post]
func (h *ProfessorHandler) Create(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	professor, err := h.service.CreateProfessor(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, professor)
}

// Get godoc
// @Summary Get professor with taught sections
// @Tags Professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} response.Envelope
// @Router /professors/{id} [get]
func (h *ProfessorHandler) Get(c *gin.Context) {
	professor, err := h.service.Professor(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professor)
}
