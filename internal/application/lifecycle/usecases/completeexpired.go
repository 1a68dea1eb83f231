package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/shared/logger"
)

const completeBatchSize = 100

// CompleteExpiredResult summarizes one run of the completion job.
type CompleteExpiredResult struct {
	Completed int
	Failed    int
}

// CompleteExpiredUseCase persists "completed" for published exhibitions whose
// end date passed. Readers already see them as completed; the job makes the
// stored status and the moderation history agree.
type CompleteExpiredUseCase struct {
	*transitioner
	exhibitions exhibition.Repository
}

func NewCompleteExpiredUseCase(
	exhibitions exhibition.Repository,
	subjects SubjectRepositories,
	txManager common.TransactionManager,
	dispatcher *hooks.Dispatcher,
	logger logger.Interface,
) *CompleteExpiredUseCase {
	return &CompleteExpiredUseCase{
		transitioner: newTransitioner(subjects, txManager, dispatcher, logger),
		exhibitions:  exhibitions,
	}
}

func (uc *CompleteExpiredUseCase) Execute(ctx context.Context) (*CompleteExpiredResult, error) {
	result := &CompleteExpiredResult{}
	failed := make(map[uint]bool)

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		batch, err := uc.exhibitions.ListPublishedEndedBefore(ctx, uc.now(), completeBatchSize)
		if err != nil {
			return result, fmt.Errorf("failed to list expired exhibitions: %w", err)
		}

		progressed := false
		for _, e := range batch {
			if failed[e.ID()] {
				continue
			}
			progressed = true
			_, err := uc.apply(ctx, e.Ref(), func(s lifecycle.Subject, now time.Time) error {
				return s.Lifecycle().Complete(now)
			})
			if err != nil {
				failed[e.ID()] = true
				result.Failed++
				uc.logger.Warnw("failed to complete exhibition", "exhibition_id", e.ID(), "error", err)
				continue
			}
			result.Completed++
		}

		if !progressed || len(batch) < completeBatchSize {
			break
		}
	}

	uc.logger.Infow("expired exhibitions completed", "completed", result.Completed, "failed", result.Failed)
	return result, nil
}
