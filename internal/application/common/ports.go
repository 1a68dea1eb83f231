package common

import (
	"context"
)

// TransactionManager runs fn in one database transaction. Hooks registered
// with db.AfterCommit inside fn run after the commit.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RequestMeta carries caller details recorded in activity entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// EmailService delivers account and lifecycle emails. Callers treat a
// failure as a warning, never as a failed operation.
type EmailService interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
	SendLifecycleNotice(to string, notice LifecycleNotice) error
}

// LifecycleNotice tells an owner what happened to their listing.
type LifecycleNotice struct {
	RecipientName string
	Kind          string
	Title         string
	Event         string
	Status        string
	Notes         string
}
