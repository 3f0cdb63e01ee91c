package service

import (
	"github.com/noah-isme/academic-records/internal/dto"
	"github.com/noah-isme/academic-records/internal/models"
)

// Transcript returns a student's entries together with the GPA computed from them.
func (s *AcademicService) Transcript(studentID string) (*dto.TranscriptView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, err := s.repo.FindStudent(studentID)
	if err != nil {
		return nil, lookupError(err, "student")
	}
	entries := student.Transcript.Entries()
	view := &dto.TranscriptView{
		StudentID:   student.ID,
		StudentName: student.Name,
		Entries:     make([]dto.TranscriptEntryView, 0, len(entries)),
		GPA:         s.gpa.Calculate(student.Transcript),
	}
	for _, e := range entries {
		view.Entries = append(view.Entries, entryView(e))
	}
	return view, nil
}

// GPA recomputes a student's grade point average on every call.
func (s *AcademicService) GPA(studentID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, err := s.repo.FindStudent(studentID)
	if err != nil {
		return 0, lookupError(err, "student")
	}
	return s.gpa.Calculate(student.Transcript), nil
}

// ScheduleGrid renders every cell of the weekly grid, row-major by time slot.
func (s *AcademicService) ScheduleGrid() *dto.ScheduleGridView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid := &dto.ScheduleGridView{}
	for _, d := range models.Weekdays() {
		grid.Days = append(grid.Days, d.String())
	}
	for _, b := range models.TimeBuckets() {
		grid.TimeSlots = append(grid.TimeSlots, b.String())
		for _, d := range models.Weekdays() {
			cell := dto.ScheduleCellView{Day: d.String(), TimeSlot: b.String(), Sections: []dto.SectionRef{}}
			for _, sec := range s.schedule.Occupants(d, b) {
				cell.Sections = append(cell.Sections, sectionRef(sec))
			}
			grid.Cells = append(grid.Cells, cell)
		}
	}
	return grid
}

// ScheduledSections lists every placed section with its cell, in grid order.
func (s *AcademicService) ScheduledSections() []dto.ScheduledSectionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []dto.ScheduledSectionView
	for _, b := range models.TimeBuckets() {
		for _, d := range models.Weekdays() {
			for _, sec := range s.schedule.Occupants(d, b) {
				out = append(out, dto.ScheduledSectionView{Day: d.String(), TimeSlot: b.String(), Section: sectionView(sec)})
			}
		}
	}
	return out
}
