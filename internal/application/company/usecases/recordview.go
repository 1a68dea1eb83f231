package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/domain/lifecycle"
)

// RecordViewUseCase counts company and product page views.
type RecordViewUseCase struct {
	counters *aggregation.CounterService
}

func NewRecordViewUseCase(counters *aggregation.CounterService) *RecordViewUseCase {
	return &RecordViewUseCase{counters: counters}
}

func (uc *RecordViewUseCase) Company(ctx context.Context, companyID uint, viewerKey string) bool {
	if companyID == 0 {
		return false
	}
	return uc.counters.RecordView(ctx, lifecycle.CompanyRef(companyID), viewerKey)
}

func (uc *RecordViewUseCase) Product(ctx context.Context, companyID, productID uint, viewerKey string) bool {
	if companyID == 0 || productID == 0 {
		return false
	}
	return uc.counters.RecordProductView(ctx, companyID, productID, viewerKey)
}
