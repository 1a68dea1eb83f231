package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type RegisterCommand struct {
	ExhibitionID uint
	Actor        user.Principal
}

type RegisterResult struct {
	RegistrationID uint
	ExhibitionID   uint
}

// RegisterUseCase signs a visitor up for an open exhibition.
type RegisterUseCase struct {
	exhibitionRepo   exhibition.Repository
	registrationRepo exhibition.RegistrationRepository
	counters         *aggregation.CounterService
	logger           logger.Interface
}

func NewRegisterUseCase(
	exhibitionRepo exhibition.Repository,
	registrationRepo exhibition.RegistrationRepository,
	counters *aggregation.CounterService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		exhibitionRepo:   exhibitionRepo,
		registrationRepo: registrationRepo,
		counters:         counters,
		logger:           logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if cmd.Actor.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("sign in to register")
	}
	e, err := uc.exhibitionRepo.GetByID(ctx, cmd.ExhibitionID)
	if err != nil {
		if errors.Is(err, exhibition.ErrExhibitionNotFound) {
			return nil, apperrors.NewNotFoundError("exhibition not found")
		}
		return nil, err
	}

	now := biztime.NowUTC()
	if !e.IsRegistrationOpen(now) {
		return nil, apperrors.NewConflictError(exhibition.ErrRegistrationClosed.Error())
	}

	reg := &exhibition.Registration{ExhibitionID: e.ID(), UserID: cmd.Actor.UserID, CreatedAt: now}
	if err := uc.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, exhibition.ErrAlreadyRegistered) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		uc.logger.Errorw("failed to register", "exhibition_id", e.ID(), "user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}

	uc.counters.Bump(ctx, e.Ref(), counter.Registrations, 1)
	uc.logger.Infow("visitor registered", "exhibition_id", e.ID(), "user_id", cmd.Actor.UserID)
	return &RegisterResult{RegistrationID: reg.ID, ExhibitionID: e.ID()}, nil
}
