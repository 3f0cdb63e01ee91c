package service

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/models"
	appErrors "github.com/noah-isme/academic-records/pkg/errors"
	"github.com/noah-isme/academic-records/pkg/export"
)

type recordsReader interface {
	Transcript(studentID string) (*dto.TranscriptView, error)
	ScheduledSections() []dto.ScheduledSectionView
}

type csvRenderer interface {
	Render(rows interface{}) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders transcripts and the schedule grid as downloadable files.
type ExportService struct {
	records recordsReader
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(records recordsReader, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{records: records, csv: csv, pdf: pdf, logger: logger}
}

// ParseExportFormat validates a format query value.
func ParseExportFormat(raw string) (dto.ExportFormat, error) {
	switch format := dto.ExportFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case dto.ExportFormatCSV, dto.ExportFormatPDF:
		return format, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
	}
}

// Transcript renders a student's transcript; the PDF variant carries the GPA under the table.
func (s *ExportService) Transcript(studentID string, format dto.ExportFormat) (*dto.ExportFile, error) {
	transcript, err := s.records.Transcript(studentID)
	if err != nil {
		return nil, err
	}
	base := "transcript-" + transcript.StudentID

	switch format {
	case dto.ExportFormatCSV:
		rows := make([]dto.TranscriptCSVRow, 0, len(transcript.Entries))
		for _, e := range transcript.Entries {
			rows = append(rows, dto.TranscriptCSVRow{
				CourseID:   e.CourseID,
				CourseName: e.CourseName,
				SectionNo:  e.SectionNo,
				Semester:   e.Semester,
				Credits:    e.Credits,
				Grade:      e.Grade,
			})
		}
		return s.renderCSV(base, rows)
	case dto.ExportFormatPDF:
		data := export.Dataset{
			Headers: []string{"Course", "Name", "Section", "Semester", "Credits", "Grade"},
			Notes:   []string{fmt.Sprintf("GPA: %.2f", transcript.GPA)},
		}
		for _, e := range transcript.Entries {
			data.Rows = append(data.Rows, map[string]string{
				"Course":   e.CourseID,
				"Name":     e.CourseName,
				"Section":  e.SectionNo,
				"Semester": e.Semester,
				"Credits":  strconv.Itoa(e.Credits),
				"Grade":    strconv.Itoa(e.Grade),
			})
		}
		return s.renderPDF(base, data, "Transcript for "+transcript.StudentName)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// Schedule renders the weekly grid. CSV lists one row per placed section; the PDF is
// a time slot x day table with the occupants of each cell.
func (s *ExportService) Schedule(format dto.ExportFormat) (*dto.ExportFile, error) {
	placed := s.records.ScheduledSections()

	switch format {
	case dto.ExportFormatCSV:
		rows := make([]dto.ScheduleCSVRow, 0, len(placed))
		for _, p := range placed {
			rows = append(rows, dto.ScheduleCSVRow{
				Day:        p.Day,
				TimeSlot:   p.TimeSlot,
				CourseID:   p.Section.CourseID,
				SectionNo:  p.Section.SectionNo,
				TimeOfDay:  p.Section.TimeOfDay,
				Room:       p.Section.Room,
				Semester:   p.Section.Semester,
				Instructor: p.Section.InstructorID,
			})
		}
		return s.renderCSV("schedule", rows)
	case dto.ExportFormatPDF:
		return s.renderPDF("schedule", scheduleDataset(placed), "Weekly schedule")
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func scheduleDataset(placed []dto.ScheduledSectionView) export.Dataset {
	var days, slots []string
	for _, d := range models.Weekdays() {
		days = append(days, d.String())
	}
	for _, b := range models.TimeBuckets() {
		slots = append(slots, b.String())
	}

	cells := make(map[string][]string)
	for _, p := range placed {
		key := p.TimeSlot + "|" + p.Day
		cells[key] = append(cells[key], p.Section.CourseID+" "+p.Section.SectionNo)
	}

	data := export.Dataset{Headers: append([]string{"Time"}, days...)}
	for _, slot := range slots {
		row := map[string]string{"Time": slot}
		for _, day := range days {
			row[day] = strings.Join(cells[slot+"|"+day], ", ")
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

func (s *ExportService) renderCSV(base string, rows interface{}) (*dto.ExportFile, error) {
	content, err := s.csv.Render(rows)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	s.logger.Debug("export rendered", zap.String("file", base+".csv"), zap.Int("bytes", len(content)))
	return &dto.ExportFile{Filename: base + ".csv", ContentType: "text/csv", Content: content}, nil
}

func (s *ExportService) renderPDF(base string, data export.Dataset, title string) (*dto.ExportFile, error) {
	content, err := s.pdf.Render(data, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	s.logger.Debug("export rendered", zap.String("file", base+".pdf"), zap.Int("bytes", len(content)))
	return &dto.ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Content: content}, nil
}
