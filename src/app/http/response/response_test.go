package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lessonbox/src/core/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.NewValidationError("username", "x"), http.StatusBadRequest},
		{domain.NewTypeMismatchError("age", "x"), http.StatusBadRequest},
		{domain.NewOutOfRangeError("age", "x"), http.StatusUnprocessableEntity},
		{domain.NewUnderflowError("x"), http.StatusUnprocessableEntity},
		{fmt.Errorf("get: %w", domain.NewNotFoundError("member")), http.StatusNotFound},
		{domain.NewConflictError("x"), http.StatusConflict},
		{domain.NewNotImplementedError("speak"), http.StatusNotImplemented},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestDetailHidesUnclassifiedMessage(t *testing.T) {
	d := Detail(errors.New("db password is hunter2"), "req-1")
	assert.Equal(t, "INTERNAL_ERROR", d.Code)
	assert.Equal(t, domain.KindUnclassified, d.Kind)
	assert.NotContains(t, d.Message, "hunter2")

	d = Detail(domain.NewOutOfRangeError("age", "too old"), "req-2")
	assert.Equal(t, "OUT_OF_RANGE", d.Code)
	assert.Equal(t, "age", d.Field)
	assert.Equal(t, "req-2", d.RequestID)
}
