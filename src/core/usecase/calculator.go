package usecase

import (
	"log/slog"

	"lessonbox/src/core/domain"
)

// CalculatorService divides integers, optionally parsing the denominator from text.
type CalculatorService struct {
	log *slog.Logger
}

func NewCalculatorService(log *slog.Logger) *CalculatorService {
	return &CalculatorService{log: log}
}

func (s *CalculatorService) Divide(numerator, denominator int64) (float64, error) {
	return domain.Divide(numerator, denominator)
}

// DivideText parses text as the denominator before dividing. Bad text fails
// with KindTypeMismatch, zero with KindDivisionByZero.
func (s *CalculatorService) DivideText(numerator int64, text string) (float64, error) {
	denominator, err := domain.ParseInteger("denominator", text)
	if err != nil {
		return 0, err
	}
	return domain.Divide(numerator, denominator)
}
