package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/service"
	"github.com/noah-isme/academic-records/pkg/response"
)

type scheduleService interface {
	ScheduleGrid() *dto.ScheduleGridView
	ScheduledSections() []dto.ScheduledSectionView
}

type scheduleExporter interface {
	Schedule(format dto.ExportFormat) (*dto.ExportFile, error)
}

// ScheduleHandler renders the weekly section grid.
type ScheduleHandler struct {
	service scheduleService
	export  scheduleExporter
}

// NewScheduleHandler constructs a schedule handler.
func NewScheduleHandler(svc scheduleService, exporter scheduleExporter) *ScheduleHandler {
	return &ScheduleHandler{service: svc, export: exporter}
}

// Grid godoc
// @Summary Weekly schedule grid
// @Tags Schedule
// @Produce json
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf for a download"
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Grid(c *gin.Context) {
	if raw := c.Query("format"); raw != "" {
		format, err := service.ParseExportFormat(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		file, err := h.export.Schedule(format)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.File(c, file.Filename, file.ContentType, file.Content)
		return
	}
	response.JSON(c, http.StatusOK, h.service.ScheduleGrid())
}

// Sections godoc
// @Summary Scheduled sections in grid order
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/sections [get]
func (h *ScheduleHandler) Sections(c *gin.Context) {
	sections := h.service.ScheduledSections()
	response.JSON(c, http.StatusOK, sections, map[string]interface{}{"total": len(sections)})
}
