package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

// MaxBulkUsers bounds one bulk request.
const MaxBulkUsers = 500

type BulkVerifyEmailCommand struct {
	Actor   user.Principal
	UserIDs []uint
}

type BulkVerifyItem struct {
	UserID  uint   `json:"user_id"`
	Success bool   `json:"success"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

type BulkVerifyResult struct {
	Items     []BulkVerifyItem `json:"items"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// BulkVerifyEmailUseCase marks many accounts verified. A failing user is
// reported in its item and does not stop the batch.
type BulkVerifyEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewBulkVerifyEmailUseCase(userRepo user.Repository, logger logger.Interface) *BulkVerifyEmailUseCase {
	return &BulkVerifyEmailUseCase{userRepo: userRepo, logger: logger}
}

func (uc *BulkVerifyEmailUseCase) Execute(ctx context.Context, cmd BulkVerifyEmailCommand) (*BulkVerifyResult, error) {
	if !user.HasCapability(cmd.Actor, user.CapabilityManageUsers) {
		return nil, apperrors.NewForbiddenError("user management capability required")
	}
	if len(cmd.UserIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one user ID is required")
	}
	if len(cmd.UserIDs) > MaxBulkUsers {
		return nil, apperrors.NewValidationError("too many users in one request")
	}

	result := &BulkVerifyResult{Items: make([]BulkVerifyItem, 0, len(cmd.UserIDs))}
	seen := make(map[uint]bool, len(cmd.UserIDs))
	for _, id := range cmd.UserIDs {
		item := BulkVerifyItem{UserID: id}
		switch {
		case id == 0:
			item.Error = "user ID is required"
		case seen[id]:
			item.Error = "duplicate user ID"
		default:
			seen[id] = true
			item.Changed, item.Error = uc.verifyOne(ctx, id)
		}
		item.Success = item.Error == ""
		if item.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.Items = append(result.Items, item)
	}

	uc.logger.Infow("bulk email verification finished",
		"actor_id", cmd.Actor.UserID,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	return result, nil
}

func (uc *BulkVerifyEmailUseCase) verifyOne(ctx context.Context, id uint) (bool, string) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, "user not found"
		}
		uc.logger.Errorw("failed to load user", "user_id", id, "error", err)
		return false, "failed to load user"
	}
	if !u.MarkEmailVerified(biztime.NowUTC()) {
		return false, ""
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to save verified email", "user_id", id, "error", err)
		return false, "failed to update user"
	}
	return true, ""
}
