package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneMatchesSentinel(t *testing.T) {
	err := Clone(ErrSectionFull, "section S1 is full")
	assert.True(t, errors.Is(err, ErrSectionFull))
	assert.False(t, errors.Is(err, ErrNoInstructor))
	assert.Equal(t, "section S1 is full", err.Error())
	assert.Equal(t, "section is full", ErrSectionFull.Message)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)

	wrapped := fmt.Errorf("outer: %w", Clone(ErrNotEnrolled, ""))
	assert.Equal(t, ErrNotEnrolled.Code, FromError(wrapped).Code)
	assert.Nil(t, FromError(nil))
}

type detail struct{ id string }

func (d *detail) Error() string { return d.id }

func TestCloneWrapKeepsCause(t *testing.T) {
	err := CloneWrap(ErrPrerequisiteNotMet, &detail{id: "CS102"}, "prerequisite CS102 not met")
	var d *detail
	assert.True(t, errors.As(err, &d))
	assert.Equal(t, "CS102", d.id)
	assert.True(t, errors.Is(err, ErrPrerequisiteNotMet))
}
