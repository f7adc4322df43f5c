package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Divide returns numerator / denominator as a float.
func Divide(numerator, denominator int64) (float64, error) {
	if denominator == 0 {
		return 0, NewDivisionByZeroError(fmt.Sprintf("cannot divide %d by zero", numerator))
	}
	return float64(numerator) / float64(denominator), nil
}

// ParseInteger converts free-form text to an integer. Text that is not an
// integer fails with KindTypeMismatch, one that does not fit in int64 with
// KindOutOfRange.
func ParseInteger(field, text string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, NewOutOfRangeError(field, fmt.Sprintf("%q does not fit in a 64-bit integer", text))
		}
		return 0, NewTypeMismatchError(field, fmt.Sprintf("%q is not an integer", text))
	}
	return n, nil
}
