package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/user/dto"
	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/domain/user"
	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

const resetRequestedMessage = "if the address is registered, a reset link was sent"

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase mails a reset link. Issuing a new link
// invalidates older unused ones.
type RequestPasswordResetUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	emails   common.EmailService
	logger   logger.Interface
}

func NewRequestPasswordResetUseCase(userRepo user.Repository, tokens TokenService, emails common.EmailService, logger logger.Interface) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{userRepo: userRepo, tokens: tokens, emails: emails, logger: logger}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) (*dto.ActionResult, error) {
	result := &dto.ActionResult{Message: resetRequestedMessage}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			uc.logger.Infow("password reset requested for unknown email")
			return result, nil
		}
		return nil, err
	}
	if !u.IsActive() {
		return result, nil
	}

	issued, err := uc.tokens.Issue(ctx, u.ID(), token.PurposePasswordReset)
	if err != nil {
		uc.logger.Errorw("failed to issue reset token", "user_id", u.ID(), "error", err)
		return nil, err
	}
	if err := uc.emails.SendPasswordResetEmail(email.String(), issued.PlainToken); err != nil {
		uc.logger.Warnw("failed to send password reset email", "user_id", u.ID(), "error", err)
		result.EmailWarning = emailWarning(err)
	}
	uc.logger.Infow("password reset requested", "user_id", u.ID())
	return result, nil
}

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
	Meta        common.RequestMeta
}

// ResetPasswordUseCase consumes a reset token and sets the new password in
// one transaction.
type ResetPasswordUseCase struct {
	userRepo  user.Repository
	hasher    user.PasswordHasher
	tokens    TokenService
	txManager common.TransactionManager
	emails    common.EmailService
	activity  activity.Sink
	logger    logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	txManager common.TransactionManager,
	emails common.EmailService,
	activitySink activity.Sink,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		txManager: txManager,
		emails:    emails,
		activity:  activitySink,
		logger:    logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) (*dto.ActionResult, error) {
	password, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var u *user.User
	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		u, err = consumeForUser(ctx, uc.tokens, uc.userRepo, token.PurposePasswordReset, cmd.Token, cmd.Meta.IPAddress)
		if err != nil {
			return err
		}
		if err := u.SetPassword(password, uc.hasher, biztime.NowUTC()); err != nil {
			return err
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to save new password", "user_id", u.ID(), "error", err)
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	recordActivity(ctx, uc.activity, uc.logger, u.ID(), activity.TypePasswordReset, "password reset", cmd.Meta, nil)

	result := &dto.ActionResult{Message: "password updated"}
	if err := uc.emails.SendPasswordChangedEmail(u.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "user_id", u.ID(), "error", err)
		result.EmailWarning = emailWarning(err)
	}
	uc.logger.Infow("password reset completed", "user_id", u.ID())
	return result, nil
}
