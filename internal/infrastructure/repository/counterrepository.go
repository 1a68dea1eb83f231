package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/shared/constants"
	"github.com/expohub/expohub/internal/shared/db"
)

// counterTables maps an entity kind to its table.
var counterTables = map[lvo.Kind]string{
	lvo.KindExhibition: constants.TableExhibitions,
	lvo.KindCompany:    constants.TableCompanies,
}

// counterColumns maps each supported counter of a kind to its column.
var counterColumns = map[lvo.Kind]map[counter.Counter]string{
	lvo.KindExhibition: {
		counter.Views:         "views_count",
		counter.Favorites:     "favorites_count",
		counter.Reviews:       "reviews_count",
		counter.Registrations: "registrations_count",
	},
	lvo.KindCompany: {
		counter.Views:           "views_count",
		counter.Favorites:       "favorites_count",
		counter.Reviews:         "reviews_count",
		counter.ContactRequests: "contact_requests_count",
	},
}

var productCounterColumns = map[counter.ProductCounter]string{
	counter.ProductViews:     "views_count",
	counter.ProductInquiries: "inquiries_count",
}

// CounterRepository implements counter.Store with single UPDATE statements.
type CounterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter store
func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

func (r *CounterRepository) resolve(ref lifecycle.EntityRef, c counter.Counter) (string, string, error) {
	table, err := lifecycle.Lookup(counterTables, ref)
	if err != nil {
		return "", "", err
	}
	columns, err := lifecycle.Lookup(counterColumns, ref)
	if err != nil {
		return "", "", err
	}
	column, ok := columns[c]
	if !ok {
		return "", "", counter.Check(ref, c)
	}
	return table, column, nil
}

// flooredIncrement never lets a column drop below zero.
func flooredIncrement(column string, delta int64) any {
	return gorm.Expr(fmt.Sprintf("CASE WHEN %[1]s + ? < 0 THEN 0 ELSE %[1]s + ? END", column), delta, delta)
}

func (r *CounterRepository) Increment(ctx context.Context, ref lifecycle.EntityRef, c counter.Counter, delta int64) error {
	table, column, err := r.resolve(ref, c)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Table(table).
		Where("id = ?", ref.ID()).
		UpdateColumn(column, flooredIncrement(column, delta)).Error; err != nil {
		return fmt.Errorf("failed to increment %s on %s: %w", column, ref, err)
	}
	return nil
}

func (r *CounterRepository) Set(ctx context.Context, ref lifecycle.EntityRef, c counter.Counter, value int64) error {
	table, column, err := r.resolve(ref, c)
	if err != nil {
		return err
	}
	if value < 0 {
		value = 0
	}
	if err := db.GetTxFromContext(ctx, r.db).Table(table).
		Where("id = ?", ref.ID()).
		UpdateColumn(column, value).Error; err != nil {
		return fmt.Errorf("failed to set %s on %s: %w", column, ref, err)
	}
	return nil
}

func (r *CounterRepository) SetRating(ctx context.Context, ref lifecycle.EntityRef, rating svo.Rating, reviewsCount int64) error {
	table, column, err := r.resolve(ref, counter.Reviews)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Table(table).
		Where("id = ?", ref.ID()).
		UpdateColumns(map[string]any{
			"rating": rating.Float64(),
			column:   reviewsCount,
		}).Error; err != nil {
		return fmt.Errorf("failed to set rating on %s: %w", ref, err)
	}
	return nil
}

func (r *CounterRepository) IncrementProduct(ctx context.Context, productID uint, c counter.ProductCounter, delta int64) error {
	column, ok := productCounterColumns[c]
	if !ok {
		return fmt.Errorf("%w: product.%s", counter.ErrUnsupportedCounter, c)
	}
	if err := db.GetTxFromContext(ctx, r.db).Table(constants.TableProducts).
		Where("id = ?", productID).
		UpdateColumn(column, flooredIncrement(column, delta)).Error; err != nil {
		return fmt.Errorf("failed to increment product %s: %w", column, err)
	}
	return nil
}

func (r *CounterRepository) ListRefs(ctx context.Context, kind lvo.Kind, afterID uint, limit int) ([]lifecycle.EntityRef, error) {
	table, ok := counterTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", lifecycle.ErrUnknownKind, kind)
	}
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).Table(table).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", kind, err)
	}
	refs := make([]lifecycle.EntityRef, 0, len(ids))
	for _, id := range ids {
		ref, err := lifecycle.NewEntityRef(kind.String(), id)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
