package activity

import (
	"context"
	"time"
)

// Type classifies an activity log entry.
type Type string

const (
	TypeLogin             Type = "login"
	TypeLogout            Type = "logout"
	TypeRegister          Type = "register"
	TypeProfileUpdate     Type = "profile_update"
	TypePasswordChange    Type = "password_change"
	TypePasswordReset     Type = "password_reset"
	TypeEmailVerification Type = "email_verification"
	TypeExhibitionCreate  Type = "exhibition_create"
	TypeCompanyCreate     Type = "company_create"
	TypeFavoriteAdd       Type = "favorite_add"
	TypeFavoriteRemove    Type = "favorite_remove"
	TypeReviewCreate      Type = "review_create"
	TypeModeration        Type = "moderation"
	TypeLifecycle         Type = "lifecycle"
)

// Entry is one append-only activity record.
type Entry struct {
	ID          uint
	UserID      *uint
	Type        Type
	Description string
	Metadata    map[string]any
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}

// Sink appends entries. Implementations must not fail the caller's work.
type Sink interface {
	Record(ctx context.Context, e Entry) error
}

type Repository interface {
	Sink
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Entry, error)
}
