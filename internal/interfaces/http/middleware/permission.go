package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

// CapabilityChecker answers capability questions for a principal.
type CapabilityChecker interface {
	Allowed(p user.Principal, c user.Capability) (bool, error)
}

type PermissionMiddleware struct {
	checker CapabilityChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker CapabilityChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequireCapability must run after RequireAuth.
func (m *PermissionMiddleware) RequireCapability(capability user.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal.UserID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.checker.Allowed(principal, capability)
		if err != nil {
			m.logger.Errorw("capability check failed", "error", err, "user_id", principal.UserID, "capability", capability)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("capability denied", "user_id", principal.UserID, "role", principal.Role, "capability", capability)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// StaticCapabilities answers from the domain capability table. It serves
// tests and deployments that run without the policy store.
type StaticCapabilities struct{}

func (StaticCapabilities) Allowed(p user.Principal, c user.Capability) (bool, error) {
	return user.HasCapability(p, c), nil
}
