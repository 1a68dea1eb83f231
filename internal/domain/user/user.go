package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
)

// User is a platform account.
type User struct {
	id                  uint
	email               vo.Email
	passwordHash        string
	firstName           string
	lastName            string
	phone               string
	role                Role
	isSuperuser         bool
	isActive            bool
	emailVerified       bool
	emailVerifiedAt     *time.Time
	failedLoginAttempts int
	lockedUntil         *time.Time
	lastLoginAt         *time.Time
	passwordChangedAt   *time.Time
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

func NewUser(email vo.Email, firstName, lastName string, role Role, now time.Time) (*User, error) {
	if email.IsZero() {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if len(firstName) > 100 || len(lastName) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	return &User{
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		role:      role,
		isActive:  true,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a User from persistence.
func ReconstructUser(
	id uint,
	email vo.Email,
	passwordHash string,
	firstName, lastName, phone string,
	role Role,
	isSuperuser, isActive, emailVerified bool,
	emailVerifiedAt *time.Time,
	failedLoginAttempts int,
	lockedUntil, lastLoginAt, passwordChangedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:                  id,
		email:               email,
		passwordHash:        passwordHash,
		firstName:           firstName,
		lastName:            lastName,
		phone:               phone,
		role:                role,
		isSuperuser:         isSuperuser,
		isActive:            isActive,
		emailVerified:       emailVerified,
		emailVerifiedAt:     emailVerifiedAt,
		failedLoginAttempts: failedLoginAttempts,
		lockedUntil:         lockedUntil,
		lastLoginAt:         lastLoginAt,
		passwordChangedAt:   passwordChangedAt,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Email() vo.Email               { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) FirstName() string             { return u.firstName }
func (u *User) LastName() string              { return u.lastName }
func (u *User) Phone() string                 { return u.phone }
func (u *User) Role() Role                    { return u.role }
func (u *User) IsSuperuser() bool             { return u.isSuperuser }
func (u *User) IsActive() bool                { return u.isActive }
func (u *User) IsEmailVerified() bool         { return u.emailVerified }
func (u *User) EmailVerifiedAt() *time.Time   { return u.emailVerifiedAt }
func (u *User) FailedLoginAttempts() int      { return u.failedLoginAttempts }
func (u *User) LockedUntil() *time.Time       { return u.lockedUntil }
func (u *User) LastLoginAt() *time.Time       { return u.lastLoginAt }
func (u *User) PasswordChangedAt() *time.Time { return u.passwordChangedAt }
func (u *User) Version() int                  { return u.version }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Principal returns the authorization view of the user.
func (u *User) Principal() Principal {
	return Principal{UserID: u.id, Role: u.role, Superuser: u.isSuperuser}
}

// ChangeRole assigns a new role.
func (u *User) ChangeRole(role Role, now time.Time) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if u.role == role {
		return nil
	}
	u.role = role
	u.touch(now)
	return nil
}

// UpdateProfile changes contact details.
func (u *User) UpdateProfile(firstName, lastName, phone string, now time.Time) error {
	if len(firstName) > 100 || len(lastName) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(phone) > 20 {
		return fmt.Errorf("phone exceeds maximum length of 20 characters")
	}
	u.firstName = strings.TrimSpace(firstName)
	u.lastName = strings.TrimSpace(lastName)
	u.phone = strings.TrimSpace(phone)
	u.touch(now)
	return nil
}

// MarkEmailVerified records email ownership. Returns false when the email
// was already verified.
func (u *User) MarkEmailVerified(now time.Time) bool {
	if u.emailVerified {
		return false
	}
	u.emailVerified = true
	u.emailVerifiedAt = &now
	u.touch(now)
	return true
}

func (u *User) Deactivate(now time.Time) {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.touch(now)
}

func (u *User) touch(now time.Time) {
	u.updatedAt = now
	u.version++
}
