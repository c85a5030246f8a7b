package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// When Tx is nil the repository runs the operation on its own handle and
// owns the transactional scope for multi-row writes.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// New wraps a plain context with no open transaction.
func New(ctx context.Context) Context {
	return Context{Ctx: ctx}
}

// WithTx binds an already-open transaction; the caller owns commit and
// rollback.
func WithTx(ctx context.Context, tx *gorm.DB) Context {
	return Context{Ctx: ctx, Tx: tx}
}
