package usecases

import (
	"context"
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

type RegisterCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Meta      common.RequestMeta
}

type RegisterResult struct {
	User         *dto.UserDTO `json:"user"`
	EmailWarning string       `json:"email_warning,omitempty"`
}

// RegisterUseCase creates an unverified account and mails a verification
// link. Self sign-up may pick visitor or organizer.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenService
	emails   common.EmailService
	activity activity.Sink
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	emails common.EmailService,
	activitySink activity.Sink,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		emails:   emails,
		activity: activitySink,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	role := user.RoleVisitor
	if cmd.Role != "" {
		role = user.Role(cmd.Role)
	}
	if role != user.RoleVisitor && role != user.RoleOrganizer {
		return nil, apperrors.NewValidationError("role must be visitor or organizer")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError(user.ErrEmailAlreadyExists.Error())
	}

	now := biztime.NowUTC()
	u, err := user.NewUser(email, cmd.FirstName, cmd.LastName, role, now)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := u.SetPassword(password, uc.hasher, now); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError(user.ErrEmailAlreadyExists.Error())
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	result := &RegisterResult{User: dto.ToUserDTO(u)}
	issued, err := uc.tokens.Issue(ctx, u.ID(), token.PurposeEmailVerification)
	if err != nil {
		uc.logger.Errorw("failed to issue verification token", "user_id", u.ID(), "error", err)
		result.EmailWarning = emailWarning(err)
	} else if err := uc.emails.SendVerificationEmail(email.String(), issued.PlainToken); err != nil {
		uc.logger.Warnw("failed to send verification email", "user_id", u.ID(), "error", err)
		result.EmailWarning = emailWarning(err)
	}

	recordActivity(ctx, uc.activity, uc.logger, u.ID(), activity.TypeRegister, "account registered", cmd.Meta, map[string]any{"role": role.String()})
	uc.logger.Infow("user registered", "user_id", u.ID(), "role", role)
	return result, nil
}

func recordActivity(
	ctx context.Context,
	sink activity.Sink,
	log logger.Interface,
	userID uint,
	t activity.Type,
	description string,
	meta common.RequestMeta,
	metadata map[string]any,
) {
	if sink == nil {
		return
	}
	err := sink.Record(ctx, activity.Entry{
		UserID:      &userID,
		Type:        t,
		Description: description,
		Metadata:    metadata,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
		CreatedAt:   biztime.NowUTC(),
	})
	if err != nil {
		log.Warnw("failed to record activity", "type", t, "user_id", userID, "error", err)
	}
}
