package handlers

import (
	"context"

	"github.com/expohub/expohub/internal/application/user/dto"
	"github.com/expohub/expohub/internal/application/user/usecases"
	"github.com/expohub/expohub/internal/domain/user"
)

// Use case interfaces for AuthHandler, narrowed for handler tests.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.AuthResult, error)
}

type verifyEmailUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyEmailCommand) (*dto.ActionResult, error)
}

type resendVerificationUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResendVerificationCommand) (*dto.ActionResult, error)
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) (*dto.ActionResult, error)
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) (*dto.ActionResult, error)
}

type userReader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}
