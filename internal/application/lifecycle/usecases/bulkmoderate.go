package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

// MaxBulkItems bounds one bulk request.
const MaxBulkItems = 500

type BulkModerateCommand struct {
	Kind      lvo.Kind
	IDs       []uint
	Decision  lvo.Decision
	Moderator user.Principal
	Notes     string
	Reason    string
}

// BulkItemResult is the outcome for one entity of a bulk command.
type BulkItemResult struct {
	ID      uint   `json:"id"`
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// BulkModerateResult lists per-item outcomes in request order.
type BulkModerateResult struct {
	Items     []BulkItemResult `json:"items"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// BulkModerateUseCase moderates many entities, each in its own transaction.
// A failing item never aborts the batch.
type BulkModerateUseCase struct {
	moderate *ModerateUseCase
	logger   logger.Interface
}

func NewBulkModerateUseCase(moderate *ModerateUseCase, logger logger.Interface) *BulkModerateUseCase {
	return &BulkModerateUseCase{moderate: moderate, logger: logger}
}

func (uc *BulkModerateUseCase) Execute(ctx context.Context, cmd BulkModerateCommand) (*BulkModerateResult, error) {
	if !cmd.Kind.IsValid() {
		return nil, apperrors.NewValidationError("invalid entity kind", string(cmd.Kind))
	}
	if len(cmd.IDs) == 0 {
		return nil, apperrors.NewValidationError("no entities selected")
	}
	if len(cmd.IDs) > MaxBulkItems {
		return nil, apperrors.NewValidationError("too many entities in one request")
	}
	if !user.HasCapability(cmd.Moderator, user.CapabilityModerate) {
		return nil, apperrors.NewForbiddenError("moderation requires moderator rights")
	}

	result := &BulkModerateResult{Items: make([]BulkItemResult, 0, len(cmd.IDs))}
	seen := make(map[uint]bool, len(cmd.IDs))
	for _, id := range cmd.IDs {
		item := BulkItemResult{ID: id}
		switch {
		case id == 0:
			item.Error = "invalid id"
		case seen[id]:
			item.Error = "duplicate id in request"
		default:
			seen[id] = true
			ref, err := lifecycle.NewEntityRef(cmd.Kind.String(), id)
			if err != nil {
				item.Error = err.Error()
				break
			}
			res, err := uc.moderate.Execute(ctx, ModerateCommand{
				Ref:       ref,
				Decision:  cmd.Decision,
				Moderator: cmd.Moderator,
				Notes:     cmd.Notes,
				Reason:    cmd.Reason,
			})
			if err != nil {
				item.Error = err.Error()
				break
			}
			item.Success = true
			item.Status = res.ToStatus.String()
			item.Warning = res.EmailWarning
		}

		if item.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.Items = append(result.Items, item)
	}

	uc.logger.Infow("bulk moderation finished",
		"kind", cmd.Kind,
		"decision", cmd.Decision,
		"moderator_id", cmd.Moderator.UserID,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	return result, nil
}
