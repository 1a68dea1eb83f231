package usecases

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

const (
	defaultAnalyticsDays = 30
	maxAnalyticsDays     = 366
)

type GetAnalyticsQuery struct {
	Target lifecycle.EntityRef
	Viewer user.Principal
	From   *time.Time
	To     *time.Time
}

// MetricSeries is one metric over the requested days, oldest first.
type MetricSeries struct {
	Metric string       `json:"metric"`
	Total  int64        `json:"total"`
	Points []DailyValue `json:"points"`
}

type DailyValue struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

type AnalyticsResult struct {
	EntityType string         `json:"entity_type"`
	EntityID   uint           `json:"entity_id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Series     []MetricSeries `json:"series"`
}

// GetAnalyticsUseCase returns the daily metrics of one listing to its owner.
// Anyone else needs the view_analytics capability, which only admins hold.
type GetAnalyticsUseCase struct {
	targets common.Targets
	metrics analytics.Repository
	logger  logger.Interface
}

func NewGetAnalyticsUseCase(targets common.Targets, metrics analytics.Repository, logger logger.Interface) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{targets: targets, metrics: metrics, logger: logger}
}

func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, query GetAnalyticsQuery) (*AnalyticsResult, error) {
	if query.Viewer.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	load, err := lifecycle.Lookup(uc.targets, query.Target)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	subject, err := load(ctx, query.Target.ID())
	if err != nil {
		if common.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError(query.Target.Kind().String() + " not found")
		}
		return nil, err
	}
	if subject.OwnerID() != query.Viewer.UserID && !user.HasCapability(query.Viewer, user.CapabilityViewAnalytics) {
		return nil, apperrors.NewForbiddenError("not allowed to view analytics")
	}

	from, to, err := analyticsRange(query.From, query.To)
	if err != nil {
		return nil, err
	}

	points, err := uc.metrics.Range(ctx, query.Target, from, to)
	if err != nil {
		uc.logger.Errorw("failed to load analytics", "target", query.Target.String(), "error", err)
		return nil, err
	}

	byMetric := make(map[analytics.Metric]*MetricSeries)
	var order []analytics.Metric
	for _, p := range points {
		s, ok := byMetric[p.Metric]
		if !ok {
			s = &MetricSeries{Metric: string(p.Metric), Points: []DailyValue{}}
			byMetric[p.Metric] = s
			order = append(order, p.Metric)
		}
		s.Total += p.Value
		s.Points = append(s.Points, DailyValue{Date: biztime.BizDate(p.Date), Value: p.Value})
	}

	result := &AnalyticsResult{
		EntityType: query.Target.Kind().String(),
		EntityID:   query.Target.ID(),
		From:       biztime.BizDate(from),
		To:         biztime.BizDate(to),
		Series:     make([]MetricSeries, 0, len(order)),
	}
	for _, m := range order {
		result.Series = append(result.Series, *byMetric[m])
	}
	return result, nil
}

// analyticsRange defaults to the last 30 days and snaps both ends to
// business days.
func analyticsRange(from, to *time.Time) (time.Time, time.Time, error) {
	end := biztime.NowUTC()
	if to != nil {
		end = *to
	}
	end = biztime.StartOfDayUTC(end)

	start := end.AddDate(0, 0, -(defaultAnalyticsDays - 1))
	if from != nil {
		start = biztime.StartOfDayUTC(*from)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("from must not be after to")
	}
	if end.Sub(start) > maxAnalyticsDays*24*time.Hour {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("range exceeds one year")
	}
	return start, end, nil
}
