package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
)

func TestCounterRepository_IncrementFloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	companies := NewCompanyRepository(db, newTestLogger())
	store := NewCounterRepository(db)
	ctx := context.Background()

	c := createCompany(t, companies, "acme")
	ref := c.Ref()

	require.NoError(t, store.Increment(ctx, ref, counter.Favorites, 1))
	require.NoError(t, store.Increment(ctx, ref, counter.Favorites, -1))
	require.NoError(t, store.Increment(ctx, ref, counter.Favorites, -1))
	require.NoError(t, store.Increment(ctx, ref, counter.ContactRequests, 3))

	loaded, err := companies.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), loaded.Stats().Favorites)
	assert.Equal(t, int64(3), loaded.ContactRequestsCount())
}

func TestCounterRepository_RejectsUnknownCombos(t *testing.T) {
	db := setupTestDB(t)
	store := NewCounterRepository(db)
	ctx := context.Background()

	err := store.Increment(ctx, lifecycle.ExhibitionRef(1), counter.ContactRequests, 1)
	assert.ErrorIs(t, err, counter.ErrUnsupportedCounter)

	err = store.Increment(ctx, lifecycle.EntityRef{}, counter.Views, 1)
	assert.ErrorIs(t, err, lifecycle.ErrUnknownKind)
}

func TestCounterRepository_SetRatingAndListRefs(t *testing.T) {
	db := setupTestDB(t)
	exhibitions := NewExhibitionRepository(db, newTestLogger())
	store := NewCounterRepository(db)
	ctx := context.Background()

	e := createExhibition(t, exhibitions, "rated", testNow, testNow.Add(24*time.Hour))
	createExhibition(t, exhibitions, "other", testNow, testNow.Add(24*time.Hour))

	require.NoError(t, store.SetRating(ctx, e.Ref(), svo.ComputeRating(13, 3), 3))
	loaded, err := exhibitions.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, "4.33", loaded.Stats().Rating.String())
	assert.Equal(t, int64(3), loaded.Stats().ReviewsCount)

	refs, err := store.ListRefs(ctx, lvo.KindExhibition, 0, 10)
	require.NoError(t, err)
	assert.Len(t, refs, 2)
	refs, err = store.ListRefs(ctx, lvo.KindExhibition, e.ID(), 10)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestCounterRepository_ProductCounters(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductRepository(db)
	store := NewCounterRepository(db)
	ctx := context.Background()

	p, err := company.NewProduct(1, "Cement", "", nil, testNow)
	require.NoError(t, err)
	require.NoError(t, p.AssignSlug("cement"))
	require.NoError(t, products.Create(ctx, p))

	require.NoError(t, store.IncrementProduct(ctx, p.ID(), counter.ProductViews, 2))
	require.NoError(t, store.IncrementProduct(ctx, p.ID(), counter.ProductInquiries, -5))

	loaded, err := products.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.ViewsCount())
	assert.Equal(t, int64(0), loaded.InquiriesCount())
}
