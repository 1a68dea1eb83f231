// Package db provides transaction management with post-commit hooks.
package db

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction state.
type txKey struct{}

// txState carries the open transaction and the hooks to run once it commits.
type txState struct {
	tx    *gorm.DB
	mu    sync.Mutex
	hooks []func(ctx context.Context)
}

// TransactionManager manages database transactions.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a database transaction. Hooks
// registered with AfterCommit run after a successful commit, in registration
// order, with the caller's context. They are dropped on rollback.
//
// Nested calls join the outer transaction and their hooks run when the
// outermost transaction commits.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	state := &txState{}
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state.tx = tx
		return fn(context.WithValue(ctx, txKey{}, state))
	})
	if err != nil {
		return err
	}

	for _, hook := range state.hooks {
		hook(ctx)
	}
	return nil
}

// AfterCommit registers hook to run after the transaction in ctx commits.
// Outside a transaction the hook runs immediately.
func AfterCommit(ctx context.Context, hook func(ctx context.Context)) {
	state, ok := ctx.Value(txKey{}).(*txState)
	if !ok {
		hook(ctx)
		return
	}
	state.mu.Lock()
	state.hooks = append(state.hooks, hook)
	state.mu.Unlock()
}

// Savepoint runs fn inside a savepoint of the transaction in ctx. A failing
// fn rolls back only its own writes and hooks; the outer transaction stays
// usable. Outside a transaction fn runs directly.
func Savepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	parent, ok := ctx.Value(txKey{}).(*txState)
	if !ok || parent.tx == nil {
		return fn(ctx)
	}

	nested := &txState{}
	err := parent.tx.Transaction(func(tx *gorm.DB) error {
		nested.tx = tx
		return fn(context.WithValue(ctx, txKey{}, nested))
	})
	if err != nil {
		return err
	}

	parent.mu.Lock()
	parent.hooks = append(parent.hooks, nested.hooks...)
	parent.mu.Unlock()
	return nil
}

// GetTx returns the transaction from context if available, otherwise returns the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, tm.db)
}

// GetTxFromContext returns the transaction from context if available.
// This is a standalone function for use in repositories.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if state, ok := ctx.Value(txKey{}).(*txState); ok && state.tx != nil {
		return state.tx
	}
	return defaultDB.WithContext(ctx)
}
