package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/exhibition"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

func TestExhibitionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExhibitionRepository(db, newTestLogger())
	ctx := context.Background()

	e := createExhibition(t, repo, "build-expo", testNow.Add(24*time.Hour), testNow.Add(72*time.Hour))
	assert.NotZero(t, e.ID())

	found, err := repo.GetBySlug(ctx, "build-expo")
	require.NoError(t, err)
	assert.Equal(t, e.ID(), found.ID())
	assert.Equal(t, lvo.StatusDraft, found.Lifecycle().Status())

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, exhibition.ErrExhibitionNotFound)

	t.Run("duplicate slug is a duplicate error", func(t *testing.T) {
		dup, err := exhibition.NewExhibition(2, e.Details(), testNow)
		require.NoError(t, err)
		require.NoError(t, dup.AssignSlug("build-expo"))
		err = repo.Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("slug exists excludes own id", func(t *testing.T) {
		exists, err := repo.SlugExists(ctx, "build-expo", 0)
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = repo.SlugExists(ctx, "build-expo", e.ID())
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestExhibitionRepository_UpdateOptimisticLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExhibitionRepository(db, newTestLogger())
	ctx := context.Background()
	e := createExhibition(t, repo, "lock", testNow.Add(time.Hour), testNow.Add(48*time.Hour))

	first, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)

	require.NoError(t, first.Lifecycle().SubmitForReview(1, testNow))
	first.Touch(testNow)
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, second.Lifecycle().SubmitForReview(1, testNow))
	second.Touch(testNow)
	assert.ErrorIs(t, repo.Update(ctx, second), exhibition.ErrConcurrentUpdate)

	reloaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, lvo.StatusPending, reloaded.Lifecycle().Status())
	assert.Equal(t, 2, reloaded.Version())
}

func TestExhibitionRepository_ListUsesEffectiveStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExhibitionRepository(db, newTestLogger())
	ctx := context.Background()
	admin := user.Principal{UserID: 9, Role: user.RoleAdmin}

	publish := func(e *exhibition.Exhibition) {
		loaded, err := repo.GetByID(ctx, e.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Lifecycle().SubmitForReview(1, testNow))
		require.NoError(t, loaded.Lifecycle().Moderate(lvo.DecisionApprove, admin, "", "", testNow))
		require.NoError(t, loaded.Lifecycle().Publish(1, testNow))
		loaded.Touch(testNow)
		require.NoError(t, repo.Update(ctx, loaded))
	}

	ended := createExhibition(t, repo, "ended", testNow.Add(-72*time.Hour), testNow.Add(-24*time.Hour))
	running := createExhibition(t, repo, "running", testNow.Add(-time.Hour), testNow.Add(24*time.Hour))
	publish(ended)
	publish(running)

	published, total, err := repo.List(ctx, exhibition.ListFilter{Status: lvo.StatusPublished, Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, running.ID(), published[0].ID())

	completed, total, err := repo.List(ctx, exhibition.ListFilter{Status: lvo.StatusCompleted, Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, ended.ID(), completed[0].ID())
	assert.Equal(t, lvo.StatusCompleted, completed[0].EffectiveStatus(testNow))

	current, _, err := repo.List(ctx, exhibition.ListFilter{Type: exhibition.TypeCurrent, Now: testNow})
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, running.ID(), current[0].ID())

	due, err := repo.ListPublishedEndedBefore(ctx, testNow, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, ended.ID(), due[0].ID())
}

func TestRegistrationRepository_Unique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &exhibition.Registration{ExhibitionID: 1, UserID: 2, CreatedAt: testNow}))
	err := repo.Create(ctx, &exhibition.Registration{ExhibitionID: 1, UserID: 2, CreatedAt: testNow})
	assert.ErrorIs(t, err, exhibition.ErrAlreadyRegistered)

	count, err := repo.CountByExhibition(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
