package repo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lessonbox/src/core/domain"
)

func TestMemoryRepositoryMembers(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	m, err := domain.NewMember("Ana", time.Now())
	require.NoError(t, err)
	require.NoError(t, r.CreateMember(ctx, m))

	dup, _ := domain.NewMember("Ana", time.Now())
	assert.True(t, domain.IsConflict(r.CreateMember(ctx, dup)))

	got, err := r.GetMemberByUsername(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	_, err = r.GetMember(ctx, uuid.New())
	assert.True(t, domain.IsNotFound(err))
}

func TestMemoryRepositoryUpdateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	acc, err := domain.NewAccount("Alice", 100, time.Now())
	require.NoError(t, err)
	require.NoError(t, r.CreateAccount(ctx, acc))

	boom := errors.New("boom")
	_, err = r.UpdateAccount(ctx, acc.ID(), func(a *domain.Account) error {
		require.NoError(t, a.Deposit(50))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := r.GetAccount(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(100), stored.Balance())

	// Callers get copies, so mutating one does not reach the store.
	require.NoError(t, stored.Deposit(1))
	again, _ := r.GetAccount(ctx, acc.ID())
	assert.Equal(t, int64(100), again.Balance())
}

func TestMemoryRepositoryConcurrentDeposits(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	acc, _ := domain.NewAccount("Alice", 0, time.Now())
	require.NoError(t, r.CreateAccount(ctx, acc))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.UpdateAccount(ctx, acc.ID(), func(a *domain.Account) error {
				return a.Deposit(10)
			})
		}()
	}
	wg.Wait()

	stored, err := r.GetAccount(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(500), stored.Balance())
}
