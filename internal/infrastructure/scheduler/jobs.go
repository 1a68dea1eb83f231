package scheduler

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/application/aggregation"
	lifecycleusecases "github.com/expohub/expohub/internal/application/lifecycle/usecases"
)

const (
	JobCompleteExpired = "complete-expired-exhibitions"
	JobRepairCounters  = "repair-counters"
	JobPurgeTokens     = "purge-expired-tokens"
)

// tokenRetention is how long used or expired tokens are kept for audit.
const tokenRetention = 7 * 24 * time.Hour

type expiredCompleter interface {
	Execute(ctx context.Context) (*lifecycleusecases.CompleteExpiredResult, error)
}

type counterRepairer interface {
	RepairAll(ctx context.Context) (aggregation.RepairReport, error)
}

type tokenPurger interface {
	PurgeStale(ctx context.Context, retention time.Duration) (int64, error)
}

// CompleteExpiredJob stores "completed" for published exhibitions past their
// end date.
func CompleteExpiredJob(uc expiredCompleter) BatchJob {
	return BatchJobFunc(func(ctx context.Context) (int, error) {
		res, err := uc.Execute(ctx)
		if res == nil {
			return 0, err
		}
		return res.Completed, err
	})
}

// RepairCountersJob rebuilds every counter from its relation rows.
func RepairCountersJob(r counterRepairer) BatchJob {
	return BatchJobFunc(func(ctx context.Context) (int, error) {
		report, err := r.RepairAll(ctx)
		return report.Scanned, err
	})
}

// PurgeTokensJob deletes tokens that were used or expired before the
// retention window.
func PurgeTokensJob(p tokenPurger) BatchJob {
	return BatchJobFunc(func(ctx context.Context) (int, error) {
		n, err := p.PurgeStale(ctx, tokenRetention)
		return int(n), err
	})
}
