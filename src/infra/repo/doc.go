// Package repo contains implementations of the repository ports.
//
// This package implements the ports defined in src/core/ports:
//   - MemoryRepository: maps behind a mutex, the default for the walkthrough
//   - PostgresRepository: pgx against the schema in src/infra/db
//
// Both serialize updates of one entity: the memory store under its mutex,
// Postgres with SELECT ... FOR UPDATE inside a transaction. The update
// callback runs against a loaded copy; nothing is written if it fails, so a
// rejected SetAge or Deposit leaves stored state unchanged.
package repo
