package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lessonbox/src/core/domain"
	"lessonbox/src/core/usecase"
)

// RegisterMemberRequest is the payload for POST /v1/members.
type RegisterMemberRequest struct {
	Username string `json:"username"`
}

// SetAgeRequest is the payload for PUT /v1/members/:member_id/age.
// Age is left raw so any JSON value reaches the domain's type check.
type SetAgeRequest struct {
	Age json.RawMessage `json:"age"`
}

// AgeValue decodes the raw age into the Go value the domain sees: integer
// literals become int64, other numbers float64, and every other JSON value
// keeps its decoded type (string, bool, nil, ...). An integer literal too
// large for int64 is reported as out of range.
func (r SetAgeRequest) AgeValue() (any, error) {
	if len(r.Age) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(r.Age))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, domain.NewTypeMismatchError("age", "is not valid JSON")
	}
	n, ok := v.(json.Number)
	if !ok {
		return v, nil
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return nil, domain.NewOutOfRangeError("age", fmt.Sprintf("must be between %d and %d, got %s", domain.MinAge, domain.MaxAge, n))
	}
	f, err := n.Float64()
	if err != nil {
		return n.String(), nil
	}
	return f, nil
}

// MemberResponse is the public view of a member.
type MemberResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Age          *int      `json:"age"`
	RegisteredAt time.Time `json:"registered_at"`
}

func MemberFromDomain(m *domain.Member) MemberResponse {
	out := MemberResponse{
		ID:           m.ID.String(),
		Username:     m.Username,
		RegisteredAt: m.RegisteredAt,
	}
	if age, ok := m.Age(); ok {
		out.Age = &age
	}
	return out
}

// OpenAccountRequest is the payload for POST /v1/accounts.
type OpenAccountRequest struct {
	Owner          string `json:"owner"`
	OpeningBalance int64  `json:"opening_balance"`
}

// AmountRequest is the payload for deposit and withdraw.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

func AccountFromDomain(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID().String(),
		Owner:     a.Owner(),
		Balance:   a.Balance(),
		CreatedAt: a.CreatedAt(),
	}
}

// SpeakRequest is the payload for POST /v1/animals/speak.
type SpeakRequest struct {
	Animals []AnimalEntry `json:"animals" binding:"required,min=1,dive"`
}

// AnimalEntry describes one animal.
type AnimalEntry struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	FavoriteToy string `json:"favorite_toy"`
}

func (r SpeakRequest) ToSpecs() []usecase.AnimalSpec {
	specs := make([]usecase.AnimalSpec, len(r.Animals))
	for i, a := range r.Animals {
		specs[i] = usecase.AnimalSpec{
			Variant:     domain.Variant(a.Kind),
			Name:        a.Name,
			FavoriteToy: a.FavoriteToy,
		}
	}
	return specs
}

// UtteranceResponse is one animal's answer; Error is set instead of Sound on failure.
type UtteranceResponse struct {
	Name  string       `json:"name"`
	Sound string       `json:"sound,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail mirrors response.ErrorDetail for per-item failures.
type ErrorDetail struct {
	Kind    domain.Kind `json:"kind"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
}

// DivideResponse is the result of a division.
type DivideResponse struct {
	Numerator   int64   `json:"numerator"`
	Denominator string  `json:"denominator"`
	Result      float64 `json:"result"`
}
