package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/user/dto"
	"github.com/expohub/expohub/internal/application/user/usecases"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/common"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
	"github.com/expohub/expohub/internal/shared/utils"
)

type AuthHandler struct {
	registerUC           registerUseCase
	loginUC              loginUseCase
	verifyEmailUC        verifyEmailUseCase
	resendVerificationUC resendVerificationUseCase
	requestResetUC       requestPasswordResetUseCase
	resetPasswordUC      resetPasswordUseCase
	users                userReader
	logger               logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	verifyEmailUC verifyEmailUseCase,
	resendVerificationUC resendVerificationUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	users userReader,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:           registerUC,
		loginUC:              loginUC,
		verifyEmailUC:        verifyEmailUC,
		resendVerificationUC: resendVerificationUC,
		requestResetUC:       requestResetUC,
		resetPasswordUC:      resetPasswordUC,
		users:                users,
		logger:               logger,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Role      string `json:"role" binding:"omitempty,oneof=visitor organizer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// Register handles POST /auth/register
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} utils.APIResponse{data=usecases.RegisterResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Meta:      common.RequestMeta(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessWithWarnings(c, http.StatusCreated, "registration successful, please verify your email", result.User, result.EmailWarning)
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.AuthResult}
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		Meta:     common.RequestMeta(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// VerifyEmail handles GET and POST /auth/verify-email. The GET form takes
// the token from the query so links in emails work directly.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if c.Request.Method == http.MethodPost {
		var req TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, common.BindError(err))
			return
		}
		token = req.Token
	}
	if token == "" {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("token is required"))
		return
	}

	result, err := h.verifyEmailUC.Execute(c.Request.Context(), usecases.VerifyEmailCommand{
		Token: token,
		Meta:  common.RequestMeta(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}

// ResendVerification handles POST /auth/resend-verification
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.resendVerificationUC.Execute(c.Request.Context(), usecases.ResendVerificationCommand{Email: req.Email})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessWithWarnings(c, http.StatusOK, result.Message, nil, result.EmailWarning)
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.requestResetUC.Execute(c.Request.Context(), usecases.RequestPasswordResetCommand{Email: req.Email})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessWithWarnings(c, http.StatusOK, result.Message, nil, result.EmailWarning)
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, common.BindError(err))
		return
	}

	result, err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.Password,
		Meta:        common.RequestMeta(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessWithWarnings(c, http.StatusOK, result.Message, nil, result.EmailWarning)
}

// GetCurrentUser handles GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	u, err := h.users.GetByID(c.Request.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.ErrorResponseWithError(c, apperrors.NewNotFoundError("user not found"))
			return
		}
		h.logger.Errorw("failed to load current user", "user_id", principal.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserDTO(u))
}
