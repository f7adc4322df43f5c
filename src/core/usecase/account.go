package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lessonbox/src/core/domain"
	"lessonbox/src/core/ports"
	"lessonbox/src/infra/logger"
)

// AccountService opens accounts and moves money through their guarded operations.
type AccountService struct {
	repo ports.AccountRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewAccountService(repo ports.AccountRepository, log *slog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log, now: time.Now}
}

func (s *AccountService) Open(ctx context.Context, owner string, opening int64) (*domain.Account, error) {
	acc, err := domain.NewAccount(owner, opening, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}
	logger.Info(s.log, "account opened", "account_id", acc.ID(), "owner", acc.Owner())
	return acc, nil
}

func (s *AccountService) Deposit(ctx context.Context, id uuid.UUID, amount int64) (*domain.Account, error) {
	return s.repo.UpdateAccount(ctx, id, func(a *domain.Account) error {
		return a.Deposit(amount)
	})
}

func (s *AccountService) Withdraw(ctx context.Context, id uuid.UUID, amount int64) (*domain.Account, error) {
	return s.repo.UpdateAccount(ctx, id, func(a *domain.Account) error {
		return a.Withdraw(amount)
	})
}

// Balance is a pure read of the stored balance.
func (s *AccountService) Balance(ctx context.Context, id uuid.UUID) (int64, error) {
	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return 0, err
	}
	return acc.Balance(), nil
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.repo.GetAccount(ctx, id)
}
