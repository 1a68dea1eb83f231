package company

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// ContactRequest is a visitor message to a company, optionally about one of
// its products. Rows drive contact_requests_count and inquiries_count.
type ContactRequest struct {
	ID        uint
	CompanyID uint
	ProductID *uint
	UserID    *uint
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

// NewContactRequest validates the visitor-supplied fields.
func NewContactRequest(companyID uint, productID, userID *uint, name, email, phone, message string, now time.Time) (*ContactRequest, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if name == "" || message == "" {
		return nil, fmt.Errorf("name and message are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}
	return &ContactRequest{
		CompanyID: companyID,
		ProductID: productID,
		UserID:    userID,
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		Message:   message,
		CreatedAt: now,
	}, nil
}

type ContactRepository interface {
	Create(ctx context.Context, r *ContactRequest) error
	CountByCompany(ctx context.Context, companyID uint) (int64, error)
}
