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

// MemberService handles registration and age updates.
type MemberService struct {
	repo ports.MemberRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewMemberService(repo ports.MemberRepository, log *slog.Logger) *MemberService {
	return &MemberService{repo: repo, log: log, now: time.Now}
}

// Register validates the username and records the registration.
func (s *MemberService) Register(ctx context.Context, username string) (*domain.Member, error) {
	m, err := domain.NewMember(username, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	logger.Info(s.log, "member registered", "member_id", m.ID, "username", m.Username)
	return m, nil
}

// SetAge stores value as the member's age. value may be any type; the
// domain rejects non-integers and out-of-range integers and keeps the old age.
func (s *MemberService) SetAge(ctx context.Context, id uuid.UUID, value any) (*domain.Member, error) {
	m, err := s.repo.UpdateMember(ctx, id, func(m *domain.Member) error {
		return m.SetAge(value)
	})
	if err != nil {
		return nil, err
	}
	age, _ := m.Age()
	logger.Debug(s.log, "member age set", "member_id", id, "age", age)
	return m, nil
}

func (s *MemberService) Get(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *MemberService) FindByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return s.repo.GetMemberByUsername(ctx, username)
}
