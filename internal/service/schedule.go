package service

import (
	"fmt"

	"github.com/noah-isme/academic-records/internal/models"
)

// BucketPolicy maps a wall-clock time to a schedule time bucket.
type BucketPolicy interface {
	Bucket(t models.TimeOfDay) models.TimeBucket
}

// BoundaryPolicy buckets by two boundaries: before AfternoonStart is Morning,
// before EveningStart is Afternoon, everything later is Evening.
type BoundaryPolicy struct {
	AfternoonStart models.TimeOfDay
	EveningStart   models.TimeOfDay
}

// DefaultBoundaryPolicy uses noon and 17:00 as boundaries.
func DefaultBoundaryPolicy() BoundaryPolicy {
	return BoundaryPolicy{
		AfternoonStart: models.TimeOfDay{Hour: 12},
		EveningStart:   models.TimeOfDay{Hour: 17},
	}
}

// NewBoundaryPolicy parses both boundaries; afternoon must start before evening.
func NewBoundaryPolicy(afternoonStart, eveningStart string) (BoundaryPolicy, error) {
	afternoon, err := models.ParseTimeOfDay(afternoonStart)
	if err != nil {
		return BoundaryPolicy{}, fmt.Errorf("afternoon start: %w", err)
	}
	evening, err := models.ParseTimeOfDay(eveningStart)
	if err != nil {
		return BoundaryPolicy{}, fmt.Errorf("evening start: %w", err)
	}
	if afternoon.Minutes() >= evening.Minutes() {
		return BoundaryPolicy{}, fmt.Errorf("afternoon start %s must precede evening start %s", afternoon, evening)
	}
	return BoundaryPolicy{AfternoonStart: afternoon, EveningStart: evening}, nil
}

func (p BoundaryPolicy) Bucket(t models.TimeOfDay) models.TimeBucket {
	switch m := t.Minutes(); {
	case m < p.AfternoonStart.Minutes():
		return models.Morning
	case m < p.EveningStart.Minutes():
		return models.Afternoon
	default:
		return models.Evening
	}
}

// Placement describes where a section landed and which sections already occupied the cell.
type Placement struct {
	Day       models.Weekday
	Bucket    models.TimeBucket
	Conflicts []*models.Section
}

// HasConflict reports whether the cell was already occupied.
func (p Placement) HasConflict() bool { return len(p.Conflicts) > 0 }

type cell struct {
	day    models.Weekday
	bucket models.TimeBucket
}

// Schedule is the weekly day x time-bucket grid. Conflicts are reported, never refused,
// and sections are never removed.
type Schedule struct {
	policy BucketPolicy
	cells  map[cell][]*models.Section
}

// NewSchedule builds an empty grid; a nil policy falls back to DefaultBoundaryPolicy.
func NewSchedule(policy BucketPolicy) *Schedule {
	if policy == nil {
		policy = DefaultBoundaryPolicy()
	}
	return &Schedule{policy: policy, cells: make(map[cell][]*models.Section)}
}

// Locate resolves the grid cell of a section without placing it.
func (s *Schedule) Locate(section *models.Section) (models.Weekday, models.TimeBucket, error) {
	day, err := models.ParseWeekday(section.DayOfWeek)
	if err != nil {
		return 0, 0, err
	}
	tod, err := models.ParseTimeOfDay(section.TimeOfDay)
	if err != nil {
		return 0, 0, err
	}
	return day, s.policy.Bucket(tod), nil
}

// Place appends section to its cell and returns the prior occupants as conflicts.
func (s *Schedule) Place(section *models.Section) (Placement, error) {
	day, bucket, err := s.Locate(section)
	if err != nil {
		return Placement{}, err
	}
	key := cell{day: day, bucket: bucket}
	existing := s.cells[key]
	placement := Placement{Day: day, Bucket: bucket}
	if len(existing) > 0 {
		placement.Conflicts = append([]*models.Section(nil), existing...)
	}
	s.cells[key] = append(existing, section)
	return placement, nil
}

// Occupants returns the sections placed in a cell, in placement order.
func (s *Schedule) Occupants(day models.Weekday, bucket models.TimeBucket) []*models.Section {
	return append([]*models.Section(nil), s.cells[cell{day: day, bucket: bucket}]...)
}
