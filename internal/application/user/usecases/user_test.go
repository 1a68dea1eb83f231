package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type accountFixture struct {
	users  *memoryUsers
	tokens *stubTokens
	emails *recordingEmails
}

func newAccountFixture() *accountFixture {
	return &accountFixture{users: newMemoryUsers(), tokens: newStubTokens(), emails: &recordingEmails{}}
}

func (f *accountFixture) register(t *testing.T, email string) uint {
	t.Helper()
	uc := NewRegisterUseCase(f.users, prefixHasher{}, f.tokens, f.emails, nil, logger.NewNopLogger())
	res, err := uc.Execute(context.Background(), RegisterCommand{Email: email, Password: "secret123", FirstName: "Anna"})
	require.NoError(t, err)
	return res.User.ID
}

func lastToken(sent []string) string {
	parts := strings.SplitN(sent[len(sent)-1], "|", 2)
	return parts[1]
}

func TestRegisterUseCase(t *testing.T) {
	t.Run("creates unverified visitor and mails link", func(t *testing.T) {
		f := newAccountFixture()
		uc := NewRegisterUseCase(f.users, prefixHasher{}, f.tokens, f.emails, nil, logger.NewNopLogger())

		res, err := uc.Execute(context.Background(), RegisterCommand{Email: " Anna@Example.com ", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "anna@example.com", res.User.Email)
		assert.Equal(t, "visitor", res.User.Role)
		assert.False(t, res.User.EmailVerified)
		assert.Empty(t, res.EmailWarning)
		require.Len(t, f.emails.verification, 1)
	})

	t.Run("email failure becomes a warning", func(t *testing.T) {
		f := newAccountFixture()
		f.emails.err = errors.New("smtp down")
		uc := NewRegisterUseCase(f.users, prefixHasher{}, f.tokens, f.emails, nil, logger.NewNopLogger())

		res, err := uc.Execute(context.Background(), RegisterCommand{Email: "a@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Contains(t, res.EmailWarning, "smtp down")
		assert.Len(t, f.users.byID, 1)
	})

	tests := []struct {
		name  string
		cmd   RegisterCommand
		check func(error) bool
	}{
		{"weak password", RegisterCommand{Email: "a@example.com", Password: "short"}, apperrors.IsValidationError},
		{"bad email", RegisterCommand{Email: "nope", Password: "secret123"}, apperrors.IsValidationError},
		{"admin self sign-up", RegisterCommand{Email: "a@example.com", Password: "secret123", Role: "admin"}, apperrors.IsValidationError},
		{"duplicate email", RegisterCommand{Email: "taken@example.com", Password: "secret123"}, apperrors.IsConflictError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture()
			f.register(t, "taken@example.com")
			uc := NewRegisterUseCase(f.users, prefixHasher{}, f.tokens, f.emails, nil, logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}

func TestLoginUseCase_Lockout(t *testing.T) {
	f := newAccountFixture()
	f.register(t, "anna@example.com")
	uc := NewLoginUseCase(f.users, prefixHasher{}, staticIssuer{}, user.DefaultLockoutPolicy(), nil, logger.NewNopLogger())
	ctx := context.Background()

	res, err := uc.Execute(ctx, LoginCommand{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-for-visitor", res.AccessToken)

	for i := 1; i < user.DefaultMaxFailedLogins; i++ {
		_, err := uc.Execute(ctx, LoginCommand{Email: "anna@example.com", Password: "wrong123"})
		assert.True(t, apperrors.IsUnauthorizedError(err), "attempt %d", i)
	}
	_, err = uc.Execute(ctx, LoginCommand{Email: "anna@example.com", Password: "wrong123"})
	assert.True(t, apperrors.IsTooManyRequestsError(err))

	_, err = uc.Execute(ctx, LoginCommand{Email: "anna@example.com", Password: "secret123"})
	assert.True(t, apperrors.IsTooManyRequestsError(err), "locked account rejects the right password")

	_, err = uc.Execute(ctx, LoginCommand{Email: "ghost@example.com", Password: "secret123"})
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestVerifyEmailUseCase(t *testing.T) {
	f := newAccountFixture()
	id := f.register(t, "anna@example.com")
	uc := NewVerifyEmailUseCase(f.users, f.tokens, directTx{}, nil, logger.NewNopLogger())
	ctx := context.Background()
	plain := lastToken(f.emails.verification)

	_, err := uc.Execute(ctx, VerifyEmailCommand{Token: plain})
	require.NoError(t, err)
	assert.True(t, f.users.byID[id].IsEmailVerified())

	_, err = uc.Execute(ctx, VerifyEmailCommand{Token: plain})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = uc.Execute(ctx, VerifyEmailCommand{Token: "bogus"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestResendVerificationUseCase(t *testing.T) {
	f := newAccountFixture()
	f.register(t, "anna@example.com")
	uc := NewResendVerificationUseCase(f.users, f.tokens, f.emails, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ResendVerificationCommand{Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Len(t, f.emails.verification, 2)

	_, err = uc.Execute(context.Background(), ResendVerificationCommand{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Len(t, f.emails.verification, 2)
}

func TestPasswordReset(t *testing.T) {
	f := newAccountFixture()
	id := f.register(t, "anna@example.com")
	ctx := context.Background()
	request := NewRequestPasswordResetUseCase(f.users, f.tokens, f.emails, logger.NewNopLogger())
	reset := NewResetPasswordUseCase(f.users, prefixHasher{}, f.tokens, directTx{}, f.emails, nil, logger.NewNopLogger())

	res, err := request.Execute(ctx, RequestPasswordResetCommand{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Equal(t, resetRequestedMessage, res.Message)
	assert.Empty(t, f.emails.resets)

	_, err = request.Execute(ctx, RequestPasswordResetCommand{Email: "anna@example.com"})
	require.NoError(t, err)
	plain := lastToken(f.emails.resets)

	_, err = reset.Execute(ctx, ResetPasswordCommand{Token: plain, NewPassword: "short"})
	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, f.tokens.used[plain], "invalid password must not burn the token")

	_, err = reset.Execute(ctx, ResetPasswordCommand{Token: plain, NewPassword: "brandnew42"})
	require.NoError(t, err)
	assert.Equal(t, "hashed:brandnew42", f.users.byID[id].PasswordHash())
	assert.Equal(t, []string{"anna@example.com"}, f.emails.changed)

	_, err = request.Execute(ctx, RequestPasswordResetCommand{Email: "anna@example.com"})
	require.NoError(t, err)
	expired := lastToken(f.emails.resets)
	f.tokens.expired[expired] = true
	_, err = reset.Execute(ctx, ResetPasswordCommand{Token: expired, NewPassword: "another42"})
	assert.True(t, apperrors.IsGoneError(err))
}

func TestBulkVerifyEmailUseCase(t *testing.T) {
	f := newAccountFixture()
	first := f.register(t, "a@example.com")
	second := f.register(t, "b@example.com")
	f.users.byID[second].MarkEmailVerified(f.users.byID[second].CreatedAt())
	uc := NewBulkVerifyEmailUseCase(f.users, logger.NewNopLogger())
	admin := user.Principal{UserID: 1, Role: user.RoleAdmin}

	res, err := uc.Execute(context.Background(), BulkVerifyEmailCommand{
		Actor:   admin,
		UserIDs: []uint{first, second, 99, first, 0},
	})

	require.NoError(t, err)
	require.Len(t, res.Items, 5)
	assert.True(t, res.Items[0].Changed)
	assert.True(t, res.Items[1].Success)
	assert.False(t, res.Items[1].Changed)
	assert.Equal(t, "user not found", res.Items[2].Error)
	assert.Equal(t, "duplicate user ID", res.Items[3].Error)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 3, res.Failed)
	assert.True(t, f.users.byID[first].IsEmailVerified())

	_, err = uc.Execute(context.Background(), BulkVerifyEmailCommand{Actor: user.Principal{UserID: 2, Role: user.RoleOrganizer}, UserIDs: []uint{first}})
	assert.True(t, apperrors.IsForbiddenError(err))
}
