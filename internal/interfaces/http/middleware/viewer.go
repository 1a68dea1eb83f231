package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expohub/expohub/internal/shared/constants"
	"github.com/expohub/expohub/internal/shared/utils"
)

const (
	viewerCookie       = "expohub_viewer"
	viewerCookieMaxAge = 365 * 24 * 60 * 60
)

// ViewerToken gives anonymous visitors a stable cookie so repeat views can
// be deduplicated.
func ViewerToken(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(viewerCookie)
		if _, perr := uuid.Parse(token); err != nil || perr != nil {
			token = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(viewerCookie, token, viewerCookieMaxAge, "/", "", secure, true)
		}
		c.Set(constants.ContextKeyViewerToken, token)
		c.Next()
	}
}

// ViewerKey identifies the viewer for view deduplication: the user id when
// authenticated, else the viewer cookie, else the client IP.
func ViewerKey(c *gin.Context) string {
	if p := GetPrincipal(c); p.UserID != 0 {
		return "user:" + utils.FormatUint(p.UserID)
	}
	if token := c.GetString(constants.ContextKeyViewerToken); token != "" {
		return "anon:" + token
	}
	return "ip:" + c.ClientIP()
}
