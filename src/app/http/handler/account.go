package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lessonbox/src/app/http/dto"
	"lessonbox/src/app/http/response"
	"lessonbox/src/app/middleware"
	"lessonbox/src/core/domain"
	"lessonbox/src/core/usecase"
)

// AccountParam is the path parameter naming an account.
const AccountParam = "account_id"

// AccountHandler handles account endpoints.
type AccountHandler struct {
	accountService *usecase.AccountService
}

func NewAccountHandler(accountService *usecase.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Open creates an account.
// POST /v1/accounts
func (h *AccountHandler) Open(c *gin.Context) {
	var req dto.OpenAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	acc, err := h.accountService.Open(c.Request.Context(), req.Owner, req.OpeningBalance)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dto.AccountFromDomain(acc))
}

// Get returns the account including its balance.
// GET /v1/accounts/:account_id
func (h *AccountHandler) Get(c *gin.Context) {
	acc, err := h.accountService.Get(c.Request.Context(), middleware.GetUUID(c, AccountParam))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.AccountFromDomain(acc))
}

// Deposit adds to the balance.
// POST /v1/accounts/:account_id/deposit
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.move(c, h.accountService.Deposit)
}

// Withdraw takes from the balance.
// POST /v1/accounts/:account_id/withdraw
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.move(c, h.accountService.Withdraw)
}

type moveFunc func(ctx context.Context, id uuid.UUID, amount int64) (*domain.Account, error)

func (h *AccountHandler) move(c *gin.Context, op moveFunc) {
	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}
	acc, err := op(c.Request.Context(), middleware.GetUUID(c, AccountParam), req.Amount)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.AccountFromDomain(acc))
}
