package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lessonbox/src/app/http/response"
	"lessonbox/src/app/middleware"
	"lessonbox/src/core/domain"
)

// bindJSON decodes the request body into dst. A JSON value of the wrong type
// is reported through typeError; any other binding failure is a plain bad
// request. It reports whether the handler may continue.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		response.FromDomainError(c, typeError(typeErr), middleware.GetRequestID(c))
		return false
	}
	response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
	return false
}

// typeError maps a decode failure to a domain error. A whole number that
// does not fit the integer field is out of range; anything else is a type
// mismatch.
func typeError(e *json.UnmarshalTypeError) error {
	if literal, ok := strings.CutPrefix(e.Value, "number "); ok && isIntegerKind(e.Type) {
		if f, err := strconv.ParseFloat(literal, 64); err == nil && f == math.Trunc(f) {
			return domain.NewOutOfRangeError(e.Field, fmt.Sprintf("%s does not fit in %s", literal, e.Type))
		}
	}
	return domain.NewTypeMismatchError(e.Field, fmt.Sprintf("expected %s, got %s", e.Type, e.Value))
}

func isIntegerKind(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
