package aggregation

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/favorite"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/shared/logger"
)

const repairBatchSize = 200

// RepairReport summarizes one RepairAll run.
type RepairReport struct {
	Scanned int
	Failed  int
}

// CounterRepairer rebuilds counters from the raw relation rows.
type CounterRepairer struct {
	store         counter.Store
	favorites     favorite.Repository
	registrations exhibition.RegistrationRepository
	contacts      company.ContactRepository
	ratings       *RatingService
	logger        logger.Interface
}

// NewCounterRepairer creates a new CounterRepairer
func NewCounterRepairer(
	store counter.Store,
	favorites favorite.Repository,
	registrations exhibition.RegistrationRepository,
	contacts company.ContactRepository,
	ratings *RatingService,
	logger logger.Interface,
) *CounterRepairer {
	return &CounterRepairer{
		store:         store,
		favorites:     favorites,
		registrations: registrations,
		contacts:      contacts,
		ratings:       ratings,
		logger:        logger,
	}
}

// RepairAll walks every exhibition and company in id order. A failing
// entity is logged and counted; the walk continues.
func (r *CounterRepairer) RepairAll(ctx context.Context) (RepairReport, error) {
	var report RepairReport
	for _, kind := range lvo.Kinds {
		var afterID uint
		for {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			refs, err := r.store.ListRefs(ctx, kind, afterID, repairBatchSize)
			if err != nil {
				return report, fmt.Errorf("failed to list %s entities: %w", kind, err)
			}
			for _, ref := range refs {
				report.Scanned++
				if err := r.Repair(ctx, ref); err != nil {
					report.Failed++
					r.logger.Warnw("failed to repair counters", "ref", ref.String(), "error", err)
				}
				afterID = ref.ID()
			}
			if len(refs) < repairBatchSize {
				break
			}
		}
	}

	r.logger.Infow("counter repair finished", "scanned", report.Scanned, "failed", report.Failed)
	return report, nil
}

// Repair recomputes the counters of one entity.
func (r *CounterRepairer) Repair(ctx context.Context, ref lifecycle.EntityRef) error {
	favorites, err := r.favorites.CountByTarget(ctx, ref)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, ref, counter.Favorites, favorites); err != nil {
		return err
	}

	switch ref.Kind() {
	case lvo.KindExhibition:
		n, err := r.registrations.CountByExhibition(ctx, ref.ID())
		if err != nil {
			return err
		}
		if err := r.store.Set(ctx, ref, counter.Registrations, n); err != nil {
			return err
		}
	case lvo.KindCompany:
		n, err := r.contacts.CountByCompany(ctx, ref.ID())
		if err != nil {
			return err
		}
		if err := r.store.Set(ctx, ref, counter.ContactRequests, n); err != nil {
			return err
		}
	}

	_, err = r.ratings.Recompute(ctx, ref)
	return err
}
