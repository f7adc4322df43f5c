package db

import (
	"context"
	"fmt"
)

// schema is idempotent; it runs on every start.
const schema = `
CREATE TABLE IF NOT EXISTS members (
	member_id     UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	age           INTEGER CHECK (age BETWEEN 0 AND 120),
	registered_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	account_id UUID PRIMARY KEY,
	owner      TEXT NOT NULL,
	balance    BIGINT NOT NULL CHECK (balance >= 0),
	created_at TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables the repositories need.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
