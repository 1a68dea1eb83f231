package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/favorite"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/domain/user"
)

func TestReviewRepository_AggregateVisibleIgnoresHiddenReviews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db, newTestLogger())
	ctx := context.Background()
	target := lifecycle.CompanyRef(7)
	admin := user.Principal{UserID: 100, Role: user.RoleAdmin}

	add := func(userID uint, rating int, approve, unpublish bool) *review.Review {
		author := user.Principal{UserID: userID, Role: user.RoleVisitor}
		rv, err := review.NewReview(target, author, review.Content{Rating: rating, Text: "text"}, false, testNow)
		require.NoError(t, err)
		if approve {
			require.NoError(t, rv.Approve(admin, testNow))
		}
		if unpublish {
			require.NoError(t, rv.Unpublish(admin, testNow))
		}
		require.NoError(t, repo.Create(ctx, rv))
		return rv
	}

	add(1, 5, true, false)
	add(2, 4, true, false)
	add(3, 1, false, false)
	add(4, 1, true, true)

	agg, err := repo.AggregateVisible(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, review.Aggregate{Sum: 9, Count: 2}, agg)

	empty, err := repo.AggregateVisible(ctx, lifecycle.ExhibitionRef(7))
	require.NoError(t, err)
	assert.Equal(t, review.Aggregate{}, empty)

	targets, err := repo.ListTargets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []lifecycle.EntityRef{target}, targets)

	t.Run("one review per user and target", func(t *testing.T) {
		author := user.Principal{UserID: 1, Role: user.RoleVisitor}
		rv, err := review.NewReview(target, author, review.Content{Rating: 2, Text: "again"}, false, testNow)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, rv), review.ErrAlreadyReviewed)
	})
}

func TestReviewRepository_Votes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db, newTestLogger())
	ctx := context.Background()

	author := user.Principal{UserID: 1, Role: user.RoleVisitor}
	rv, err := review.NewReview(lifecycle.CompanyRef(1), author, review.Content{Rating: 4, Text: "ok"}, true, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rv))

	require.NoError(t, repo.AddVote(ctx, rv.ID(), 2, true))
	require.NoError(t, repo.AddVote(ctx, rv.ID(), 3, false))
	assert.ErrorIs(t, repo.AddVote(ctx, rv.ID(), 2, false), review.ErrAlreadyVoted)

	loaded, err := repo.GetByID(ctx, rv.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.HelpfulCount())
	assert.Equal(t, int64(1), loaded.NotHelpfulCount())

	require.NoError(t, repo.Delete(ctx, rv.ID()))
	_, err = repo.GetByID(ctx, rv.ID())
	assert.ErrorIs(t, err, review.ErrReviewNotFound)
}

func TestFavoriteRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()
	target := lifecycle.ExhibitionRef(3)

	require.NoError(t, repo.Create(ctx, &favorite.Favorite{UserID: 1, Target: target, CreatedAt: testNow}))
	assert.ErrorIs(t, repo.Create(ctx, &favorite.Favorite{UserID: 1, Target: target, CreatedAt: testNow}), favorite.ErrAlreadyFavorited)
	require.NoError(t, repo.Create(ctx, &favorite.Favorite{UserID: 1, Target: lifecycle.CompanyRef(3), CreatedAt: testNow}))

	count, err := repo.CountByTarget(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	removed, err := repo.Delete(ctx, 1, target)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Delete(ctx, 1, target)
	require.NoError(t, err)
	assert.False(t, removed)
}
