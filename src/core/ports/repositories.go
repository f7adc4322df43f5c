// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"lessonbox/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// MemberRepository stores registered members.
type MemberRepository interface {
	Repository

	// CreateMember records a registration. A taken username is a conflict.
	CreateMember(ctx context.Context, m *domain.Member) error
	GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error)

	// UpdateMember loads the member, applies fn and persists the result.
	// If fn returns an error nothing is written. Updates of one member are
	// serialized.
	UpdateMember(ctx context.Context, id uuid.UUID, fn func(*domain.Member) error) (*domain.Member, error)
}

// AccountRepository stores accounts.
type AccountRepository interface {
	Repository

	CreateAccount(ctx context.Context, a *domain.Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// UpdateAccount loads the account, applies fn and persists the new
	// balance. If fn returns an error nothing is written. Updates of one
	// account are serialized.
	UpdateAccount(ctx context.Context, id uuid.UUID, fn func(*domain.Account) error) (*domain.Account, error)
}

// Store bundles every repository the application needs.
type Store interface {
	MemberRepository
	AccountRepository
}
