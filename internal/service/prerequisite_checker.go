package service

import (
	"fmt"
	"sort"

	"github.com/noah-isme/academic-records/internal/models"
)

// DefaultPassThreshold is the grade a prerequisite must strictly exceed.
const DefaultPassThreshold = 5

// UnmetPrerequisiteError names the first requirement a transcript failed.
type UnmetPrerequisiteError struct {
	CourseID  string
	Threshold int
	// Recorded is false when the course is missing from the transcript.
	Recorded bool
	Grade    int
}

func (e *UnmetPrerequisiteError) Error() string {
	if !e.Recorded {
		return fmt.Sprintf("prerequisite %s not completed", e.CourseID)
	}
	return fmt.Sprintf("prerequisite %s grade %d not above %d", e.CourseID, e.Grade, e.Threshold)
}

// PrerequisiteChecker verifies a transcript against a set of required courses.
type PrerequisiteChecker struct {
	PassThreshold int
}

// NewPrerequisiteChecker builds a checker passing grades strictly above threshold.
func NewPrerequisiteChecker(threshold int) PrerequisiteChecker {
	return PrerequisiteChecker{PassThreshold: threshold}
}

// Check evaluates requirements in ascending course id order and stops at the first unmet one.
// It returns nil when every requirement is satisfied.
func (c PrerequisiteChecker) Check(transcript *models.Transcript, required []string) *UnmetPrerequisiteError {
	ordered := append([]string(nil), required...)
	sort.Strings(ordered)

	for _, courseID := range ordered {
		entry, ok := transcript.Entry(courseID)
		if !ok {
			return &UnmetPrerequisiteError{CourseID: courseID, Threshold: c.PassThreshold}
		}
		if entry.Grade() <= c.PassThreshold {
			return &UnmetPrerequisiteError{CourseID: courseID, Threshold: c.PassThreshold, Recorded: true, Grade: entry.Grade()}
		}
	}
	return nil
}
