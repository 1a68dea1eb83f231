package dto

import (
	"time"

	"github.com/expohub/expohub/internal/domain/user"
)

type UserDTO struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         string     `json:"phone,omitempty"`
	Role          string     `json:"role"`
	IsSuperuser   bool       `json:"is_superuser,omitempty"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:            u.ID(),
		Email:         u.Email().String(),
		FirstName:     u.FirstName(),
		LastName:      u.LastName(),
		Phone:         u.Phone(),
		Role:          u.Role().String(),
		IsSuperuser:   u.IsSuperuser(),
		EmailVerified: u.IsEmailVerified(),
		LastLoginAt:   u.LastLoginAt(),
		CreatedAt:     u.CreatedAt(),
	}
}

// AuthResult is returned by login.
type AuthResult struct {
	User        *UserDTO `json:"user"`
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in"`
}

// ActionResult reports a completed account action. EmailWarning is set when
// the action succeeded but its email could not be sent.
type ActionResult struct {
	Message      string `json:"message"`
	EmailWarning string `json:"email_warning,omitempty"`
}
