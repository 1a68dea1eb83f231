package usecases

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/domain/favorite"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type FavoriteItem struct {
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListFavoritesQuery struct {
	Actor user.Principal
	Kind  string
}

type ListFavoritesUseCase struct {
	favorites favorite.Repository
	logger    logger.Interface
}

func NewListFavoritesUseCase(favorites favorite.Repository, logger logger.Interface) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{favorites: favorites, logger: logger}
}

func (uc *ListFavoritesUseCase) Execute(ctx context.Context, query ListFavoritesQuery) ([]FavoriteItem, error) {
	if query.Actor.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	kind := lvo.Kind(query.Kind)
	if kind != "" && !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown entity type: " + query.Kind)
	}

	rows, err := uc.favorites.ListByUser(ctx, query.Actor.UserID, kind)
	if err != nil {
		uc.logger.Errorw("failed to list favorites", "user_id", query.Actor.UserID, "error", err)
		return nil, err
	}
	items := make([]FavoriteItem, 0, len(rows))
	for _, f := range rows {
		items = append(items, FavoriteItem{
			EntityType: f.Target.Kind().String(),
			EntityID:   f.Target.ID(),
			CreatedAt:  f.CreatedAt,
		})
	}
	return items, nil
}
