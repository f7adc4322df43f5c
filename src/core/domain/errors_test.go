package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	_, syntaxErr := strconv.Atoi("abc")
	_, rangeErr := strconv.ParseInt("99999999999999999999", 10, 64)

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"type mismatch", NewTypeMismatchError("age", "x"), KindTypeMismatch},
		{"out of range", NewOutOfRangeError("age", "x"), KindOutOfRange},
		{"not found", NewNotFoundError("member"), KindNotFound},
		{"io", NewIOError("read"), KindIOFailure},
		{"validation", NewValidationError("username", "x"), KindValidation},
		{"division by zero", NewDivisionByZeroError("x"), KindDivisionByZero},
		{"underflow", NewUnderflowError("x"), KindUnderflow},
		{"conflict", NewConflictError("x"), KindConflict},
		{"not implemented", NewNotImplementedError("speak"), KindNotImplemented},
		{"strconv syntax", syntaxErr, KindTypeMismatch},
		{"strconv range", rangeErr, KindOutOfRange},
		{"missing file", fs.ErrNotExist, KindNotFound},
		{"path error", &fs.PathError{Op: "write", Path: "x", Err: fs.ErrPermission}, KindIOFailure},
		{"wrapped", fmt.Errorf("outer: %w", NewUnderflowError("x")), KindUnderflow},
		{"io error over missing path", fmt.Errorf("%w: %w", NewIOError("open note"), fs.ErrNotExist), KindIOFailure},
		{"domain error inside chain", fmt.Errorf("write: %w", fmt.Errorf("%w: %w", NewIOError("w"), &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist})), KindIOFailure},
		{"plain error", errors.New("surprise"), KindUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOfMissingFileIsNotFound(t *testing.T) {
	_, err := os.ReadFile(filepath.Join(t.TempDir(), "non_existent_file.txt"))
	require.Error(t, err)

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
}

func TestDomainErrorMessage(t *testing.T) {
	err := NewValidationError("username", "too short")
	assert.Equal(t, "invalid input: too short (field: username)", err.Error())
	assert.Equal(t, KindValidation, err.Kind())
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, "resource not found: member", NewNotFoundError("member").Error())
	assert.Equal(t, "conflict", (&DomainError{Base: ErrConflict}).Error())
}

func TestFieldOf(t *testing.T) {
	wrapped := fmt.Errorf("set age: %w", NewOutOfRangeError("age", "too old"))
	assert.Equal(t, "age", FieldOf(wrapped))
	assert.Equal(t, "denominator", FieldOf(NewDivisionByZeroError("x")))
	assert.Empty(t, FieldOf(errors.New("plain")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("f", "m")))
	assert.False(t, IsValidationError(NewConflictError("m")))
	assert.True(t, IsConflict(fmt.Errorf("wrap: %w", NewConflictError("m"))))
	assert.True(t, IsUnclassified(errors.New("x")))
	assert.False(t, IsUnclassified(NewIOError("x")))
}
