package handler

import (
	"github.com/gin-gonic/gin"

	"lessonbox/src/app/http/dto"
	"lessonbox/src/app/http/response"
	"lessonbox/src/app/middleware"
	"lessonbox/src/core/domain"
	"lessonbox/src/core/usecase"
)

// CalculatorHandler exposes integer division.
type CalculatorHandler struct {
	calculatorService *usecase.CalculatorService
}

func NewCalculatorHandler(calculatorService *usecase.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService}
}

// Divide divides numerator by the denominator text. numerator defaults to 100.
// GET /v1/calculator/divide?numerator=100&denominator=4
func (h *CalculatorHandler) Divide(c *gin.Context) {
	numerator := int64(100)
	if raw, ok := c.GetQuery("numerator"); ok {
		n, err := domain.ParseInteger("numerator", raw)
		if err != nil {
			response.FromDomainError(c, err, middleware.GetRequestID(c))
			return
		}
		numerator = n
	}
	denominator := c.Query("denominator")

	result, err := h.calculatorService.DivideText(numerator, denominator)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.DivideResponse{
		Numerator:   numerator,
		Denominator: denominator,
		Result:      result,
	})
}
