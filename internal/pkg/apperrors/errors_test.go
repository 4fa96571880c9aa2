package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileErrorsUnwrap(t *testing.T) {
	err := fmt.Errorf("ingest: %w", NewMissingFileError("courses.json"))

	assert.True(t, errors.Is(err, ErrMissingFile))
	assert.False(t, errors.Is(err, ErrMalformedInput))

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "courses.json", fe.Path)
	assert.True(t, IsFatal(err))
}

func TestMalformedInputMessage(t *testing.T) {
	err := NewMalformedInputError("a.json", "element 3 has no general section")
	assert.Equal(t, "malformed input: a.json: element 3 has no general section", err.Error())
}

func TestSchemaError(t *testing.T) {
	err := NewSchemaError("מקצועות קדם")

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "מקצועות קדם", se.Column)
	assert.True(t, errors.Is(err, ErrSchema))
	assert.True(t, IsFatal(err))
}

func TestCourseNotFoundIsNotFatal(t *testing.T) {
	err := NewCourseNotFoundError("00104031")
	assert.True(t, errors.Is(err, ErrCourseNotFound))
	assert.False(t, IsFatal(err))
	assert.Contains(t, err.Error(), "00104031")
}
