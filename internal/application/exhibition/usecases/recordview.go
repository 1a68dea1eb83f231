package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/domain/lifecycle"
)

// RecordViewUseCase counts a page view of an exhibition.
type RecordViewUseCase struct {
	counters *aggregation.CounterService
}

func NewRecordViewUseCase(counters *aggregation.CounterService) *RecordViewUseCase {
	return &RecordViewUseCase{counters: counters}
}

// Execute reports whether the view was counted. It never fails.
func (uc *RecordViewUseCase) Execute(ctx context.Context, exhibitionID uint, viewerKey string) bool {
	if exhibitionID == 0 {
		return false
	}
	return uc.counters.RecordView(ctx, lifecycle.ExhibitionRef(exhibitionID), viewerKey)
}
