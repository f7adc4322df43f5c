package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account holds a named owner's balance. The balance is only reachable
// through Balance, Deposit and Withdraw, and never goes negative.
type Account struct {
	id        uuid.UUID
	owner     string
	balance   int64
	createdAt time.Time
}

// NewAccount opens an account with an opening balance, which may be zero.
func NewAccount(owner string, opening int64, createdAt time.Time) (*Account, error) {
	return RestoreAccount(uuid.New(), owner, opening, createdAt)
}

// RestoreAccount rebuilds an account from storage, re-checking its invariants.
func RestoreAccount(id uuid.UUID, owner string, balance int64, createdAt time.Time) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, NewValidationError("owner", "cannot be empty")
	}
	if balance < 0 {
		return nil, NewOutOfRangeError("opening_balance", fmt.Sprintf("cannot be negative, got %d", balance))
	}
	return &Account{
		id:        id,
		owner:     owner,
		balance:   balance,
		createdAt: createdAt,
	}, nil
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Owner() string        { return a.owner }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Balance returns the current balance.
func (a *Account) Balance() int64 {
	return a.balance
}

// Deposit adds a strictly positive amount.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return NewValidationError("amount", fmt.Sprintf("deposit must be greater than 0, got %d", amount))
	}
	if amount > math.MaxInt64-a.balance {
		return NewOutOfRangeError("amount", fmt.Sprintf("deposit of %d would overflow the balance", amount))
	}
	a.balance += amount
	return nil
}

// Withdraw removes a strictly positive amount no larger than the balance.
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return NewValidationError("amount", fmt.Sprintf("withdrawal must be greater than 0, got %d", amount))
	}
	if amount > a.balance {
		return NewUnderflowError(fmt.Sprintf("cannot withdraw %d from balance %d", amount, a.balance))
	}
	a.balance -= amount
	return nil
}
