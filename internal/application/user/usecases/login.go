package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/user/dto"
	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/user"
	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	Meta     common.RequestMeta
}

// LoginUseCase checks credentials and locks the account after repeated
// failures.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	issuer   AccessTokenIssuer
	policy   user.LockoutPolicy
	activity activity.Sink
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	issuer AccessTokenIssuer,
	policy user.LockoutPolicy,
	activitySink activity.Sink,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		policy:   policy,
		activity: activitySink,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	authErr := u.Authenticate(cmd.Password, uc.hasher, uc.policy, biztime.NowUTC())
	if !errors.Is(authErr, user.ErrAccountInactive) {
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Warnw("failed to save login attempt", "user_id", u.ID(), "error", err)
		}
	}

	switch {
	case authErr == nil:
	case errors.Is(authErr, user.ErrAccountLocked):
		uc.logger.Warnw("login rejected, account locked", "user_id", u.ID(), "ip", cmd.Meta.IPAddress)
		return nil, apperrors.NewTooManyRequestsError(authErr.Error())
	case errors.Is(authErr, user.ErrAccountInactive):
		return nil, apperrors.NewForbiddenError(authErr.Error())
	default:
		return nil, apperrors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	accessToken, expiresIn, err := uc.issuer.Issue(u.Principal())
	if err != nil {
		uc.logger.Errorw("failed to sign access token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	recordActivity(ctx, uc.activity, uc.logger, u.ID(), activity.TypeLogin, "logged in", cmd.Meta, nil)
	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &dto.AuthResult{User: dto.ToUserDTO(u), AccessToken: accessToken, ExpiresIn: expiresIn}, nil
}
