package usecases

import (
	"context"

	tokenusecases "github.com/expohub/expohub/internal/application/token/usecases"
	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/domain/user"
)

// AccessTokenIssuer signs API access tokens.
type AccessTokenIssuer interface {
	Issue(p user.Principal) (signed string, expiresIn int64, err error)
}

// TokenService issues and consumes single-use account tokens.
type TokenService interface {
	Issue(ctx context.Context, userID uint, purpose token.Purpose) (*tokenusecases.IssuedToken, error)
	ValidateAndConsume(ctx context.Context, purpose token.Purpose, plainToken, ipAddress string) (uint, error)
}

func emailWarning(err error) string {
	if err == nil {
		return ""
	}
	return "email was not sent: " + err.Error()
}
