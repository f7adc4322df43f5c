package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"lessonbox/src/core/domain"
	"lessonbox/src/core/ports"
)

// MemoryRepository implements ports.Store with maps guarded by one mutex.
// Entities are copied in and out so callers never share stored state.
type MemoryRepository struct {
	mu         sync.Mutex
	members    map[uuid.UUID]domain.Member
	byUsername map[string]uuid.UUID
	accounts   map[uuid.UUID]domain.Account
}

var _ ports.Store = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		members:    make(map[uuid.UUID]domain.Member),
		byUsername: make(map[string]uuid.UUID),
		accounts:   make(map[uuid.UUID]domain.Account),
	}
}

// Health always succeeds; there is nothing to reach.
func (r *MemoryRepository) Health(ctx context.Context) error {
	return ctx.Err()
}

func (r *MemoryRepository) CreateMember(ctx context.Context, m *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[m.Username]; taken {
		return domain.NewConflictError(fmt.Sprintf("username %q already registered", m.Username))
	}
	r.members[m.ID] = *m
	r.byUsername[m.Username] = m.ID
	return nil
}

func (r *MemoryRepository) GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return nil, domain.NewNotFoundError("member")
	}
	return &m, nil
}

func (r *MemoryRepository) GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, domain.NewNotFoundError("member")
	}
	m := r.members[id]
	return &m, nil
}

func (r *MemoryRepository) UpdateMember(ctx context.Context, id uuid.UUID, fn func(*domain.Member) error) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return nil, domain.NewNotFoundError("member")
	}
	if err := fn(&m); err != nil {
		return nil, err
	}
	r.members[id] = m
	return &m, nil
}

func (r *MemoryRepository) CreateAccount(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[a.ID()]; exists {
		return domain.NewConflictError("account already exists")
	}
	r.accounts[a.ID()] = *a
	return nil
}

func (r *MemoryRepository) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}
	return &a, nil
}

func (r *MemoryRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fn func(*domain.Account) error) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}
	if err := fn(&a); err != nil {
		return nil, err
	}
	r.accounts[id] = a
	return &a, nil
}
