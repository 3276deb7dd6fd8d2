package domain

import "context"

// TransactionManager runs a function inside a storage transaction. The
// submission write sequence (attempt, rollup, user stats) commits atomically
// through it so a crash mid-sequence cannot leave a partial reward applied.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
