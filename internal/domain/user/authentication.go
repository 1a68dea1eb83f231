package user

import (
	"fmt"
	"time"

	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
)

const (
	DefaultMaxFailedLogins = 5
	DefaultLockoutDuration = 30 * time.Minute
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// LockoutPolicy controls the failed login lock.
type LockoutPolicy struct {
	MaxAttempts int
	Duration    time.Duration
}

func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{MaxAttempts: DefaultMaxFailedLogins, Duration: DefaultLockoutDuration}
}

func (u *User) SetPassword(password vo.Password, hasher PasswordHasher, now time.Time) error {
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.passwordChangedAt = &now
	// a fresh password lifts any lock
	u.failedLoginAttempts = 0
	u.lockedUntil = nil
	u.touch(now)
	return nil
}

func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

func (u *User) IsLocked(now time.Time) bool {
	return u.lockedUntil != nil && now.Before(*u.lockedUntil)
}

// Authenticate checks the password and updates the failed login counters.
// The caller persists the user whatever the outcome.
func (u *User) Authenticate(plain string, hasher PasswordHasher, policy LockoutPolicy, now time.Time) error {
	if !u.isActive {
		return ErrAccountInactive
	}
	if u.IsLocked(now) {
		return ErrAccountLocked
	}
	if !u.HasPassword() {
		return ErrInvalidCredentials
	}

	if err := hasher.Verify(plain, u.passwordHash); err != nil {
		u.failedLoginAttempts++
		if policy.MaxAttempts > 0 && u.failedLoginAttempts >= policy.MaxAttempts {
			until := now.Add(policy.Duration)
			u.lockedUntil = &until
		}
		u.touch(now)
		if u.IsLocked(now) {
			return ErrAccountLocked
		}
		return ErrInvalidCredentials
	}

	u.failedLoginAttempts = 0
	u.lockedUntil = nil
	u.lastLoginAt = &now
	u.touch(now)
	return nil
}
