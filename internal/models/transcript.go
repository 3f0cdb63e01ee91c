package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// TranscriptEntry is the immutable result of posting one grade.
type TranscriptEntry struct {
	id        string
	section   *Section
	studentID string
	grade     int
	postedAt  time.Time
}

// NewTranscriptEntry builds an entry for a grade posted in section.
func NewTranscriptEntry(section *Section, studentID string, grade int, postedAt time.Time) *TranscriptEntry {
	return &TranscriptEntry{
		id:        uuid.NewString(),
		section:   section,
		studentID: studentID,
		grade:     grade,
		postedAt:  postedAt,
	}
}

func (e *TranscriptEntry) ID() string          { return e.id }
func (e *TranscriptEntry) Section() *Section   { return e.section }
func (e *TranscriptEntry) StudentID() string   { return e.studentID }
func (e *TranscriptEntry) Grade() int          { return e.grade }
func (e *TranscriptEntry) PostedAt() time.Time { return e.postedAt }
func (e *TranscriptEntry) CourseID() string    { return e.section.CourseID() }
func (e *TranscriptEntry) Credits() int        { return e.section.Credits() }

// Transcript maps course id to the latest entry for that course.
type Transcript struct {
	StudentID string

	entries map[string]*TranscriptEntry
}

func NewTranscript(studentID string) *Transcript {
	return &Transcript{StudentID: studentID, entries: make(map[string]*TranscriptEntry)}
}

// Add files entry under its course id, overwriting any earlier entry for the same course.
func (t *Transcript) Add(entry *TranscriptEntry) {
	t.entries[entry.CourseID()] = entry
}

// Entry looks up the completed course.
func (t *Transcript) Entry(courseID string) (*TranscriptEntry, bool) {
	entry, ok := t.entries[courseID]
	return entry, ok
}

// Entries returns all entries ordered by course id.
func (t *Transcript) Entries() []*TranscriptEntry {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*TranscriptEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.entries[k])
	}
	return out
}

func (t *Transcript) Len() int { return len(t.entries) }
