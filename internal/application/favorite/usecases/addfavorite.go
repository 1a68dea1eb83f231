package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/favorite"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	"github.com/expohub/expohub/internal/shared/db"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type FavoriteCommand struct {
	Actor  user.Principal
	Target lifecycle.EntityRef
	Meta   common.RequestMeta
}

type FavoriteResult struct {
	Target     string `json:"target"`
	IsFavorite bool   `json:"is_favorite"`
	Favorites  int64  `json:"favorites_count"`
}

// ToggleFavoriteUseCase adds and removes favorites. The favorites_count
// update runs in a savepoint of the row change; when it fails the row change
// still commits and the repair job reconciles the counter.
type ToggleFavoriteUseCase struct {
	favorites favorite.Repository
	targets   common.Targets
	store     counter.Store
	txManager common.TransactionManager
	activity  activity.Sink
	metrics   analytics.Repository
	logger    logger.Interface
}

func NewToggleFavoriteUseCase(
	favorites favorite.Repository,
	targets common.Targets,
	store counter.Store,
	txManager common.TransactionManager,
	activitySink activity.Sink,
	metrics analytics.Repository,
	logger logger.Interface,
) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		favorites: favorites,
		targets:   targets,
		store:     store,
		txManager: txManager,
		activity:  activitySink,
		metrics:   metrics,
		logger:    logger,
	}
}

func (uc *ToggleFavoriteUseCase) Add(ctx context.Context, cmd FavoriteCommand) (*FavoriteResult, error) {
	if cmd.Actor.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.targets.LoadPublic(ctx, cmd.Target); err != nil {
			return err
		}
		f := &favorite.Favorite{UserID: cmd.Actor.UserID, Target: cmd.Target, CreatedAt: biztime.NowUTC()}
		if err := uc.favorites.Create(ctx, f); err != nil {
			if errors.Is(err, favorite.ErrAlreadyFavorited) || apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError(favorite.ErrAlreadyFavorited.Error())
			}
			return fmt.Errorf("failed to create favorite: %w", err)
		}
		uc.bumpCounter(ctx, cmd.Target, 1)
		db.AfterCommit(ctx, func(ctx context.Context) {
			uc.afterChange(ctx, cmd, activity.TypeFavoriteAdd, 1)
		})
		return nil
	})
	if err != nil {
		return nil, uc.fail("add", cmd, err)
	}
	return uc.result(ctx, cmd.Target, true), nil
}

func (uc *ToggleFavoriteUseCase) Remove(ctx context.Context, cmd FavoriteCommand) (*FavoriteResult, error) {
	if cmd.Actor.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	if _, err := lifecycle.Lookup(uc.targets, cmd.Target); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		removed, err := uc.favorites.Delete(ctx, cmd.Actor.UserID, cmd.Target)
		if err != nil {
			return fmt.Errorf("failed to delete favorite: %w", err)
		}
		if !removed {
			return apperrors.NewNotFoundError(favorite.ErrNotFavorited.Error())
		}
		uc.bumpCounter(ctx, cmd.Target, -1)
		db.AfterCommit(ctx, func(ctx context.Context) {
			uc.afterChange(ctx, cmd, activity.TypeFavoriteRemove, -1)
		})
		return nil
	})
	if err != nil {
		return nil, uc.fail("remove", cmd, err)
	}
	return uc.result(ctx, cmd.Target, false), nil
}

func (uc *ToggleFavoriteUseCase) bumpCounter(ctx context.Context, target lifecycle.EntityRef, delta int64) {
	err := db.Savepoint(ctx, func(ctx context.Context) error {
		return uc.store.Increment(ctx, target, counter.Favorites, delta)
	})
	if err != nil {
		uc.logger.Warnw("failed to update favorites count",
			"target", target.String(),
			"delta", delta,
			"error", err,
		)
	}
}

func (uc *ToggleFavoriteUseCase) fail(op string, cmd FavoriteCommand, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	uc.logger.Errorw("favorite "+op+" failed",
		"user_id", cmd.Actor.UserID,
		"target", cmd.Target.String(),
		"error", err,
	)
	return err
}

func (uc *ToggleFavoriteUseCase) result(ctx context.Context, target lifecycle.EntityRef, isFavorite bool) *FavoriteResult {
	out := &FavoriteResult{Target: target.String(), IsFavorite: isFavorite}
	count, err := uc.favorites.CountByTarget(ctx, target)
	if err != nil {
		uc.logger.Warnw("failed to count favorites", "target", target.String(), "error", err)
		return out
	}
	out.Favorites = count
	return out
}

func (uc *ToggleFavoriteUseCase) afterChange(ctx context.Context, cmd FavoriteCommand, t activity.Type, delta int64) {
	now := biztime.NowUTC()
	if uc.metrics != nil && delta > 0 {
		if err := uc.metrics.Record(ctx, cmd.Target, analytics.MetricFavorites, now, delta); err != nil {
			uc.logger.Warnw("failed to record favorites metric", "target", cmd.Target.String(), "error", err)
		}
	}
	if uc.activity == nil {
		return
	}
	userID := cmd.Actor.UserID
	entry := activity.Entry{
		UserID:      &userID,
		Type:        t,
		Description: fmt.Sprintf("%s %s", t, cmd.Target),
		Metadata: map[string]any{
			"entity_type": cmd.Target.Kind().String(),
			"entity_id":   cmd.Target.ID(),
		},
		IPAddress: cmd.Meta.IPAddress,
		UserAgent: cmd.Meta.UserAgent,
		CreatedAt: now,
	}
	if err := uc.activity.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record activity", "type", t, "error", err)
	}
}
