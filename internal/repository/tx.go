package repository

import "context"

// Tx defines the interface for transactional operations. Every multi-step
// mutation runs against a Tx so that it commits or aborts as a single unit.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
