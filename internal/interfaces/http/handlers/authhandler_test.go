package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/application/user/dto"
	"github.com/expohub/expohub/internal/application/user/usecases"
	"github.com/expohub/expohub/internal/domain/user"
	uservo "github.com/expohub/expohub/internal/domain/user/valueobjects"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/testutil"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *usecases.RegisterResult
	err    error
	got    usecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *dto.AuthResult
	err    error
}

func (m *mockLoginUC) Execute(context.Context, usecases.LoginCommand) (*dto.AuthResult, error) {
	return m.result, m.err
}

type mockVerifyEmailUC struct {
	err error
	got usecases.VerifyEmailCommand
}

func (m *mockVerifyEmailUC) Execute(_ context.Context, cmd usecases.VerifyEmailCommand) (*dto.ActionResult, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.ActionResult{Message: "email verified"}, nil
}

type mockActionUC[C any] struct {
	result *dto.ActionResult
	err    error
}

func (m *mockActionUC[C]) Execute(context.Context, C) (*dto.ActionResult, error) {
	return m.result, m.err
}

type mockUserReader struct {
	user *user.User
	err  error
}

func (m *mockUserReader) GetByID(context.Context, uint) (*user.User, error) {
	return m.user, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type authDeps struct {
	register *mockRegisterUC
	login    *mockLoginUC
	verify   *mockVerifyEmailUC
	resend   *mockActionUC[usecases.ResendVerificationCommand]
	forgot   *mockActionUC[usecases.RequestPasswordResetCommand]
	reset    *mockActionUC[usecases.ResetPasswordCommand]
	users    *mockUserReader
}

func newTestAuthHandler() (*AuthHandler, *authDeps) {
	d := &authDeps{
		register: &mockRegisterUC{},
		login:    &mockLoginUC{},
		verify:   &mockVerifyEmailUC{},
		resend:   &mockActionUC[usecases.ResendVerificationCommand]{},
		forgot:   &mockActionUC[usecases.RequestPasswordResetCommand]{},
		reset:    &mockActionUC[usecases.ResetPasswordCommand]{},
		users:    &mockUserReader{},
	}
	h := NewAuthHandler(d.register, d.login, d.verify, d.resend, d.forgot, d.reset, d.users, testutil.NewMockLogger())
	return h, d
}

// =====================================================================
// Tests
// =====================================================================

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created with email warning", func(t *testing.T) {
		h, d := newTestAuthHandler()
		d.register.result = &usecases.RegisterResult{
			User:         &dto.UserDTO{ID: 1, Email: "ann@example.com", Role: "organizer"},
			EmailWarning: "email was not sent: smtp down",
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
			Email: "ann@example.com", Password: "s3cret-pass", FirstName: "Ann", Role: "organizer",
		})
		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, []string{"email was not sent: smtp down"}, resp.Warnings)
		assert.Equal(t, "organizer", d.register.got.Role)
	})

	t.Run("admin role rejected by binding", func(t *testing.T) {
		h, _ := newTestAuthHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
			Email: "ann@example.com", Password: "s3cret-pass", FirstName: "Ann", Role: "admin",
		})
		h.Register(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, d := newTestAuthHandler()
		d.register.err = apperrors.NewConflictError("email already registered")
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
			Email: "ann@example.com", Password: "s3cret-pass", FirstName: "Ann",
		})
		h.Register(c)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		result     *dto.AuthResult
		err        error
		wantStatus int
	}{
		{
			name:       "success",
			body:       LoginRequest{Email: "ann@example.com", Password: "pw"},
			result:     &dto.AuthResult{AccessToken: "jwt", ExpiresIn: 3600},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad credentials",
			body:       LoginRequest{Email: "ann@example.com", Password: "pw"},
			err:        apperrors.NewUnauthorizedError("invalid email or password"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "locked",
			body:       LoginRequest{Email: "ann@example.com", Password: "pw"},
			err:        apperrors.NewTooManyRequestsError("account is temporarily locked"),
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "invalid body",
			body:       map[string]string{"email": "not-an-email"},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestAuthHandler()
			d.login.result, d.login.err = tt.result, tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", tt.body)
			h.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp testutil.APIResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				var data dto.AuthResult
				require.NoError(t, json.Unmarshal(resp.Data, &data))
				assert.Equal(t, "jwt", data.AccessToken)
			}
		})
	}
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	t.Run("query token on GET", func(t *testing.T) {
		h, d := newTestAuthHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/auth/verify-email", nil)
		testutil.SetQueryParams(c, map[string]string{"token": "abc"})
		h.VerifyEmail(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc", d.verify.got.Token)
	})

	t.Run("body token on POST", func(t *testing.T) {
		h, d := newTestAuthHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/auth/verify-email", TokenRequest{Token: "xyz"})
		h.VerifyEmail(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "xyz", d.verify.got.Token)
	})

	t.Run("used token is gone", func(t *testing.T) {
		h, d := newTestAuthHandler()
		d.verify.err = apperrors.NewGoneError("token already used")
		c, w := testutil.NewTestContext(http.MethodGet, "/auth/verify-email?token=abc", nil)
		h.VerifyEmail(c)
		assert.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestAuthHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/auth/verify-email", nil)
		h.VerifyEmail(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_ForgotPassword_SameAnswerForUnknownEmail(t *testing.T) {
	h, d := newTestAuthHandler()
	d.forgot.result = &dto.ActionResult{Message: "if the account exists, a reset link has been sent"}

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/forgot-password", EmailRequest{Email: "ghost@example.com"})
	h.ForgotPassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "if the account exists, a reset link has been sent", resp.Message)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	h, d := newTestAuthHandler()
	d.reset.err = apperrors.NewGoneError("token expired")

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/reset-password", ResetPasswordRequest{Token: "t", Password: "new-password"})
	h.ResetPassword(c)
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	email, err := uservo.NewEmail("ann@example.com")
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(7, email, "hash", "Ann", "Lee", "", user.RoleOrganizer,
		false, true, true, &now, 0, nil, nil, nil, 1, now, now)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		h, d := newTestAuthHandler()
		d.users.user = u
		c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
		testutil.SetAuthContext(c, testutil.Organizer(7))
		h.GetCurrentUser(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"ann@example.com"`)
	})

	t.Run("deleted account", func(t *testing.T) {
		h, d := newTestAuthHandler()
		d.users.err = user.ErrUserNotFound
		c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
		testutil.SetAuthContext(c, testutil.Organizer(7))
		h.GetCurrentUser(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
