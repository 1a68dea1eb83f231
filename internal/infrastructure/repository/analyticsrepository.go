package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/biztime"
	"github.com/expohub/expohub/internal/shared/db"
)

// AnalyticsRepository implements analytics.Repository
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new daily metric repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Record upserts the day row, adding delta to an existing value.
func (r *AnalyticsRepository) Record(ctx context.Context, target lifecycle.EntityRef, metric analytics.Metric, date time.Time, delta int64) error {
	if !metric.IsValid() {
		return fmt.Errorf("unknown metric: %s", metric)
	}
	model := &models.DailyMetricModel{
		EntityKind: target.Kind().String(),
		EntityID:   target.ID(),
		Metric:     string(metric),
		Date:       biztime.StartOfDayUTC(date),
		Value:      delta,
	}
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entity_kind"}, {Name: "entity_id"}, {Name: "metric"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value": gorm.Expr("value + ?", delta),
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to record metric %s for %s: %w", metric, target, err)
	}
	return nil
}

func (r *AnalyticsRepository) Range(ctx context.Context, target lifecycle.EntityRef, from, to time.Time) ([]analytics.DailyPoint, error) {
	var modelList []*models.DailyMetricModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("entity_kind = ? AND entity_id = ? AND date >= ? AND date <= ?",
			target.Kind().String(), target.ID(), biztime.StartOfDayUTC(from), biztime.StartOfDayUTC(to)).
		Order("date ASC, metric ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}
	points := make([]analytics.DailyPoint, 0, len(modelList))
	for _, m := range modelList {
		points = append(points, analytics.DailyPoint{
			Target: target,
			Metric: analytics.Metric(m.Metric),
			Date:   m.Date,
			Value:  m.Value,
		})
	}
	return points, nil
}
