package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	tokenusecases "github.com/expohub/expohub/internal/application/token/usecases"
	"github.com/expohub/expohub/internal/application/user/dto"
	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/domain/user"
	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
	"github.com/expohub/expohub/internal/shared/biztime"
	"github.com/expohub/expohub/internal/shared/db"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Token string
	Meta  common.RequestMeta
}

// VerifyEmailUseCase consumes a verification token and marks the address
// verified. Both writes share one transaction so a failed save leaves the
// token usable.
type VerifyEmailUseCase struct {
	userRepo  user.Repository
	tokens    TokenService
	txManager common.TransactionManager
	activity  activity.Sink
	logger    logger.Interface
}

func NewVerifyEmailUseCase(
	userRepo user.Repository,
	tokens TokenService,
	txManager common.TransactionManager,
	activitySink activity.Sink,
	logger logger.Interface,
) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo:  userRepo,
		tokens:    tokens,
		txManager: txManager,
		activity:  activitySink,
		logger:    logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) (*dto.ActionResult, error) {
	var userID uint
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		u, err := consumeForUser(ctx, uc.tokens, uc.userRepo, token.PurposeEmailVerification, cmd.Token, cmd.Meta.IPAddress)
		if err != nil {
			return err
		}
		userID = u.ID()
		if !u.MarkEmailVerified(biztime.NowUTC()) {
			return nil
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to save verified email", "user_id", u.ID(), "error", err)
			return fmt.Errorf("failed to update user: %w", err)
		}
		db.AfterCommit(ctx, func(ctx context.Context) {
			recordActivity(ctx, uc.activity, uc.logger, u.ID(), activity.TypeEmailVerification, "email verified", cmd.Meta, nil)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("email verified", "user_id", userID)
	return &dto.ActionResult{Message: "email verified"}, nil
}

// consumeForUser consumes plainToken and loads its user. Token failures come
// back as application errors.
func consumeForUser(
	ctx context.Context,
	tokens TokenService,
	users user.Repository,
	purpose token.Purpose,
	plainToken, ipAddress string,
) (*user.User, error) {
	userID, err := tokens.ValidateAndConsume(ctx, purpose, plainToken, ipAddress)
	if err != nil {
		return nil, tokenusecases.MapTokenError(err)
	}
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return u, nil
}

type ResendVerificationCommand struct {
	Email string
}

// ResendVerificationUseCase reissues the verification link. The previous
// link stops working. Unknown addresses get the same answer as known ones.
type ResendVerificationUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	emails   common.EmailService
	logger   logger.Interface
}

func NewResendVerificationUseCase(userRepo user.Repository, tokens TokenService, emails common.EmailService, logger logger.Interface) *ResendVerificationUseCase {
	return &ResendVerificationUseCase{userRepo: userRepo, tokens: tokens, emails: emails, logger: logger}
}

func (uc *ResendVerificationUseCase) Execute(ctx context.Context, cmd ResendVerificationCommand) (*dto.ActionResult, error) {
	result := &dto.ActionResult{Message: "if the address is registered and unverified, a new link was sent"}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return result, nil
		}
		return nil, err
	}
	if u.IsEmailVerified() {
		return result, nil
	}

	issued, err := uc.tokens.Issue(ctx, u.ID(), token.PurposeEmailVerification)
	if err != nil {
		uc.logger.Errorw("failed to issue verification token", "user_id", u.ID(), "error", err)
		return nil, err
	}
	if err := uc.emails.SendVerificationEmail(email.String(), issued.PlainToken); err != nil {
		uc.logger.Warnw("failed to send verification email", "user_id", u.ID(), "error", err)
		result.EmailWarning = emailWarning(err)
	}
	return result, nil
}
