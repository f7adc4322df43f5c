package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"lessonbox/src/core/domain"
	"lessonbox/src/core/ports"
	"lessonbox/src/infra/db"
)

// PostgresRepository implements ports.Store using pgx.
type PostgresRepository struct {
	pg  *db.Postgres
	log *slog.Logger
}

var _ ports.Store = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pg:  pg,
		log: log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pg.Health(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Members

func (r *PostgresRepository) CreateMember(ctx context.Context, m *domain.Member) error {
	const q = `
		INSERT INTO members (member_id, username, age, registered_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.pg.Pool.Exec(ctx, q, m.ID, m.Username, memberAge(m), m.RegisteredAt); err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError(fmt.Sprintf("username %q already registered", m.Username))
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	const q = `
		SELECT member_id, username, age, registered_at
		FROM members
		WHERE member_id = $1
	`
	return scanMember(r.pg.Pool.QueryRow(ctx, q, id))
}

func (r *PostgresRepository) GetMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	const q = `
		SELECT member_id, username, age, registered_at
		FROM members
		WHERE username = $1
	`
	return scanMember(r.pg.Pool.QueryRow(ctx, q, username))
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, id uuid.UUID, fn func(*domain.Member) error) (*domain.Member, error) {
	const sel = `
		SELECT member_id, username, age, registered_at
		FROM members
		WHERE member_id = $1
		FOR UPDATE
	`
	const upd = `UPDATE members SET age = $2 WHERE member_id = $1`

	var out *domain.Member
	err := r.pg.InTx(ctx, func(tx pgx.Tx) error {
		m, err := scanMember(tx.QueryRow(ctx, sel, id))
		if err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, upd, m.ID, memberAge(m)); err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var (
		id           uuid.UUID
		username     string
		age          *int32
		registeredAt time.Time
	)
	if err := row.Scan(&id, &username, &age, &registeredAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("member")
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}
	var agePtr *int
	if age != nil {
		a := int(*age)
		agePtr = &a
	}
	return domain.RestoreMember(id, username, agePtr, registeredAt)
}

func memberAge(m *domain.Member) *int32 {
	age, ok := m.Age()
	if !ok {
		return nil
	}
	a := int32(age)
	return &a
}

// Accounts

func (r *PostgresRepository) CreateAccount(ctx context.Context, a *domain.Account) error {
	const q = `
		INSERT INTO accounts (account_id, owner, balance, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.pg.Pool.Exec(ctx, q, a.ID(), a.Owner(), a.Balance(), a.CreatedAt()); err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("account already exists")
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	const q = `
		SELECT account_id, owner, balance, created_at
		FROM accounts
		WHERE account_id = $1
	`
	return scanAccount(r.pg.Pool.QueryRow(ctx, q, id))
}

func (r *PostgresRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fn func(*domain.Account) error) (*domain.Account, error) {
	const sel = `
		SELECT account_id, owner, balance, created_at
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE
	`
	const upd = `UPDATE accounts SET balance = $2 WHERE account_id = $1`

	var out *domain.Account
	err := r.pg.InTx(ctx, func(tx pgx.Tx) error {
		a, err := scanAccount(tx.QueryRow(ctx, sel, id))
		if err != nil {
			return err
		}
		if err := fn(a); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, upd, a.ID(), a.Balance()); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		id        uuid.UUID
		owner     string
		balance   int64
		createdAt time.Time
	)
	if err := row.Scan(&id, &owner, &balance, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return domain.RestoreAccount(id, owner, balance, createdAt)
}
