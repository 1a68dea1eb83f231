package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/review"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/shared/db"
)

// memoryReviews keeps reviews in insertion order.
type memoryReviews struct {
	items  []*review.Review
	votes  map[[2]uint]bool
	nextID uint
}

func newMemoryReviews() *memoryReviews {
	return &memoryReviews{votes: map[[2]uint]bool{}}
}

func (m *memoryReviews) Create(_ context.Context, r *review.Review) error {
	for _, it := range m.items {
		if it.UserID() == r.UserID() && it.Target() == r.Target() {
			return review.ErrAlreadyReviewed
		}
	}
	m.nextID++
	r.SetID(m.nextID)
	m.items = append(m.items, r)
	return nil
}

func (m *memoryReviews) Update(context.Context, *review.Review) error { return nil }

func (m *memoryReviews) Delete(_ context.Context, id uint) error {
	for i, it := range m.items {
		if it.ID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return review.ErrReviewNotFound
}

func (m *memoryReviews) GetByID(_ context.Context, id uint) (*review.Review, error) {
	for _, it := range m.items {
		if it.ID() == id {
			return it, nil
		}
	}
	return nil, review.ErrReviewNotFound
}

func (m *memoryReviews) ListByTarget(_ context.Context, target lifecycle.EntityRef, onlyVisible bool, _, _ int) ([]*review.Review, int64, error) {
	var out []*review.Review
	for _, it := range m.items {
		if it.Target() == target && (!onlyVisible || it.Counts()) {
			out = append(out, it)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memoryReviews) AggregateVisible(_ context.Context, target lifecycle.EntityRef) (review.Aggregate, error) {
	var agg review.Aggregate
	for _, it := range m.items {
		if it.Target() == target && it.Counts() {
			agg.Sum += int64(it.Rating())
			agg.Count++
		}
	}
	return agg, nil
}

func (m *memoryReviews) ListTargets(context.Context) ([]lifecycle.EntityRef, error) {
	return nil, nil
}

func (m *memoryReviews) AddVote(_ context.Context, reviewID, userID uint, _ bool) error {
	k := [2]uint{reviewID, userID}
	if m.votes[k] {
		return review.ErrAlreadyVoted
	}
	m.votes[k] = true
	return nil
}

type ratingStore struct {
	counter.Store
	rating svo.Rating
	count  int64
	writes int
}

func (s *ratingStore) SetRating(_ context.Context, _ lifecycle.EntityRef, rating svo.Rating, reviewsCount int64) error {
	s.rating = rating
	s.count = reviewsCount
	s.writes++
	return nil
}

type fixedPolicy bool

func (p fixedPolicy) ModerationRequired(context.Context) bool { return bool(p) }

func newTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

const companyOwnerID = 9

func companyTargets(status lvo.Status) common.Targets {
	return common.Targets{
		lvo.KindCompany: func(_ context.Context, id uint) (lifecycle.Subject, error) {
			state, err := lifecycle.ReconstructState(lvo.KindCompany, status, nil, nil, nil, "", "")
			if err != nil {
				return nil, err
			}
			return company.ReconstructCompany(id, "acme", companyOwnerID, company.Profile{Name: "Acme"}, "", state,
				svo.Stats{Rating: 450, ReviewsCount: 2}, 0, false, false, 1, time.Now(), time.Now())
		},
	}
}
