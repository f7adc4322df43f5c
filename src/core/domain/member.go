package domain

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Member is a registered user. The age is optional until SetAge succeeds.
type Member struct {
	ID           uuid.UUID
	Username     string
	RegisteredAt time.Time

	age    int
	hasAge bool
}

// ValidateUsername rejects names shorter than MinUsernameLength characters.
func ValidateUsername(username string) error {
	if n := utf8.RuneCountInString(username); n < MinUsernameLength {
		return NewValidationError("username",
			fmt.Sprintf("must be at least %d characters, got %d", MinUsernameLength, n))
	}
	return nil
}

// NewMember registers a new member with a generated ID.
func NewMember(username string, now time.Time) (*Member, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	return &Member{
		ID:           uuid.New(),
		Username:     username,
		RegisteredAt: now,
	}, nil
}

// RestoreMember rebuilds a member from storage. A nil age means it was never set.
func RestoreMember(id uuid.UUID, username string, age *int, registeredAt time.Time) (*Member, error) {
	m := &Member{ID: id, Username: username, RegisteredAt: registeredAt}
	if age != nil {
		if err := m.SetAge(*age); err != nil {
			return nil, fmt.Errorf("restore member %s: %w", id, err)
		}
	}
	return m, nil
}

// Age returns the stored age and whether one has been set.
func (m *Member) Age() (int, bool) {
	return m.age, m.hasAge
}

// SetAge stores value as the member's age. Only Go integer types are
// accepted; anything else fails with KindTypeMismatch. Integers outside
// [MinAge, MaxAge] fail with KindOutOfRange. On failure the previous age is kept.
func (m *Member) SetAge(value any) error {
	age, err := toAge(value)
	if err != nil {
		return err
	}
	m.age = age
	m.hasAge = true
	return nil
}

func toAge(value any) (int, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, ageRangeError(v)
		}
		n = int64(v)
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, ageRangeError(v)
		}
		n = int64(v)
	default:
		return 0, NewTypeMismatchError("age", fmt.Sprintf("must be an integer, got %T", value))
	}
	if n < MinAge || n > MaxAge {
		return 0, ageRangeError(n)
	}
	return int(n), nil
}

func ageRangeError(n any) error {
	return NewOutOfRangeError("age", fmt.Sprintf("must be between %d and %d, got %d", MinAge, MaxAge, n))
}
