package token

import (
	"fmt"
	"time"
)

// Purpose separates token families; at most one live token exists per
// (user, purpose).
type Purpose string

const (
	PurposeEmailVerification Purpose = "email_verification"
	PurposePasswordReset     Purpose = "password_reset"
)

const (
	DefaultVerificationTTL = 24 * time.Hour
	DefaultResetTTL        = 2 * time.Hour
)

func (p Purpose) IsValid() bool {
	return p == PurposeEmailVerification || p == PurposePasswordReset
}

func (p Purpose) String() string {
	return string(p)
}

// Token is a single-use, time-boxed credential. Only the hash of the value
// handed to the user is kept.
type Token struct {
	id        uint
	userID    uint
	purpose   Purpose
	tokenHash string
	expiresAt time.Time
	isUsed    bool
	usedAt    *time.Time
	ipAddress string
	createdAt time.Time
}

func NewToken(userID uint, purpose Purpose, tokenHash string, ttl time.Duration, now time.Time) (*Token, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !purpose.IsValid() {
		return nil, fmt.Errorf("invalid token purpose: %s", purpose)
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}
	return &Token{
		userID:    userID,
		purpose:   purpose,
		tokenHash: tokenHash,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}, nil
}

// ReconstructToken rebuilds a Token from persistence.
func ReconstructToken(
	id, userID uint,
	purpose Purpose,
	tokenHash string,
	expiresAt time.Time,
	isUsed bool,
	usedAt *time.Time,
	ipAddress string,
	createdAt time.Time,
) *Token {
	return &Token{
		id:        id,
		userID:    userID,
		purpose:   purpose,
		tokenHash: tokenHash,
		expiresAt: expiresAt,
		isUsed:    isUsed,
		usedAt:    usedAt,
		ipAddress: ipAddress,
		createdAt: createdAt,
	}
}

func (t *Token) ID() uint             { return t.id }
func (t *Token) UserID() uint         { return t.userID }
func (t *Token) Purpose() Purpose     { return t.purpose }
func (t *Token) TokenHash() string    { return t.tokenHash }
func (t *Token) ExpiresAt() time.Time { return t.expiresAt }
func (t *Token) IsUsed() bool         { return t.isUsed }
func (t *Token) UsedAt() *time.Time   { return t.usedAt }
func (t *Token) IPAddress() string    { return t.ipAddress }
func (t *Token) CreatedAt() time.Time { return t.createdAt }

// SetID sets the token ID (only for persistence layer use)
func (t *Token) SetID(id uint) {
	t.id = id
}

// IsValid reports whether the token can still be consumed.
func (t *Token) IsValid(now time.Time) bool {
	return !t.isUsed && now.Before(t.expiresAt)
}

// CheckUsable explains why a token cannot be consumed. A used token reports
// ErrTokenAlreadyUsed even after it expired.
func (t *Token) CheckUsable(now time.Time) error {
	if t.isUsed {
		return ErrTokenAlreadyUsed
	}
	if !now.Before(t.expiresAt) {
		return ErrTokenExpired
	}
	return nil
}
