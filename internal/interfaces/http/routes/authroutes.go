package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/interfaces/http/handlers"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// LoginLimiter throttles credential attempts.
	LoginLimiter *middleware.RateLimiter
	// TokenLimiter throttles requests that send verification or reset mail.
	TokenLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.TokenLimiter.Limit(), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.LoginLimiter.Limit(), cfg.AuthHandler.Login)

		auth.GET("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/resend-verification", cfg.TokenLimiter.Limit(), cfg.AuthHandler.ResendVerification)

		auth.POST("/forgot-password", cfg.TokenLimiter.Limit(), cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", cfg.AuthHandler.ResetPassword)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
	}
}
