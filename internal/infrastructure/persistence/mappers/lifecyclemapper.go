package mappers

import (
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

func lifecycleToColumns(s *lifecycle.State) models.LifecycleColumns {
	return models.LifecycleColumns{
		Status:          s.Status().String(),
		PublishedAt:     s.PublishedAt(),
		ModeratedBy:     s.ModeratedBy(),
		ModeratedAt:     s.ModeratedAt(),
		ModeratorNotes:  s.ModeratorNotes(),
		RejectionReason: s.RejectionReason(),
	}
}

func columnsToLifecycle(kind lvo.Kind, c models.LifecycleColumns) (lifecycle.State, error) {
	return lifecycle.ReconstructState(
		kind,
		lvo.Status(c.Status),
		c.PublishedAt,
		c.ModeratedBy,
		c.ModeratedAt,
		c.ModeratorNotes,
		c.RejectionReason,
	)
}

func statsToColumns(s svo.Stats) models.StatsColumns {
	return models.StatsColumns{
		ViewsCount:     s.Views,
		FavoritesCount: s.Favorites,
		Rating:         s.Rating.Float64(),
		ReviewsCount:   s.ReviewsCount,
	}
}

func columnsToStats(c models.StatsColumns) svo.Stats {
	return svo.Stats{
		Views:        c.ViewsCount,
		Favorites:    c.FavoritesCount,
		Rating:       svo.RatingFromFloat(c.Rating),
		ReviewsCount: c.ReviewsCount,
	}
}
