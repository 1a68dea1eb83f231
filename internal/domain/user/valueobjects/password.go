package valueobjects

import (
	"fmt"
	"unicode"
)

// Password is a plain text password that passed the platform policy.
type Password struct {
	value string
}

func NewPassword(plain string) (Password, error) {
	if len(plain) < 8 {
		return Password{}, fmt.Errorf("password must be at least 8 characters long")
	}
	// bcrypt ignores everything after 72 bytes
	if len(plain) > 72 {
		return Password{}, fmt.Errorf("password must not exceed 72 characters")
	}

	var hasLetter, hasNumber bool
	for _, r := range plain {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsNumber(r):
			hasNumber = true
		}
	}
	if !hasLetter || !hasNumber {
		return Password{}, fmt.Errorf("password must contain at least one letter and one number")
	}

	return Password{value: plain}, nil
}

func (p Password) String() string {
	return p.value
}
