package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/constants"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

// contextKeyPrincipal holds the verified user.Principal.
const contextKeyPrincipal = "principal"

// TokenVerifier checks a signed access token.
type TokenVerifier interface {
	Verify(token string) (user.Principal, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		principal, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present and
// lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if principal, err := m.verifier.Verify(token); err == nil {
				SetPrincipal(c, principal)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// SetPrincipal stores p on the request context under the shared keys.
func SetPrincipal(c *gin.Context, p user.Principal) {
	c.Set(contextKeyPrincipal, p)
	c.Set(constants.ContextKeyUserID, p.UserID)
	c.Set(constants.ContextKeyUserRole, p.Role.String())
	c.Set(constants.ContextKeySuperuser, p.Superuser)
}

// GetPrincipal returns the caller, or the zero Principal for anonymous
// requests.
func GetPrincipal(c *gin.Context) user.Principal {
	if v, ok := c.Get(contextKeyPrincipal); ok {
		if p, ok := v.(user.Principal); ok {
			return p
		}
	}
	return user.Principal{}
}
