// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Failure kinds: a small taxonomy (type-mismatch, out-of-range, not-found,
//     io-failure, validation-failure, ...) with an unclassified catch-all
//   - Entities: Member (validated age) and Account (private balance)
//   - Variants: Dog, Cat and GoldenRetriever sharing the Speaker capability
//   - Value objects: Book, Pizza, FleetConfig
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities validate their own invariants and leave state unchanged on failure
//   - Callers match failures with KindOf or errors.Is, never on message text
//
// Example:
//
//	acc, err := domain.NewAccount("Alice", 1000, time.Now())
//	if err != nil {
//	    return err
//	}
//	if err := acc.Deposit(500); err != nil {
//	    log.Warn("deposit rejected", "kind", domain.KindOf(err))
//	}
//	acc.Balance() // 1500
package domain
