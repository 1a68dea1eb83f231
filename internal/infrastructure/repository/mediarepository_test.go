package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/media"
)

func TestImageRepository_PerKindTables(t *testing.T) {
	tests := []struct {
		name        string
		owner       lifecycle.EntityRef
		other       lifecycle.EntityRef
		description string
	}{
		{"exhibition images", lifecycle.ExhibitionRef(1), lifecycle.CompanyRef(1), ""},
		{"company gallery", lifecycle.CompanyRef(1), lifecycle.ExhibitionRef(1), "Main office"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewImageRepository(setupTestDB(t))
			ctx := context.Background()

			second, err := media.NewImage(tt.owner, "gallery/2024/05/b.png", "Second", tt.description, 2, testNow)
			require.NoError(t, err)
			first, err := media.NewImage(tt.owner, "gallery/2024/05/a.png", "First", "", 1, testNow.Add(time.Minute))
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, second))
			require.NoError(t, repo.Create(ctx, first))

			list, err := repo.ListByOwner(ctx, tt.owner)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "First", list[0].Title())
			assert.Equal(t, tt.description, list[1].Description())
			assert.Equal(t, tt.owner, list[1].Owner())

			count, err := repo.CountByOwner(ctx, tt.other)
			require.NoError(t, err)
			assert.Zero(t, count, "kinds do not share rows")

			_, err = repo.GetByID(ctx, tt.other, first.ID())
			assert.ErrorIs(t, err, media.ErrImageNotFound)
			assert.ErrorIs(t, repo.Delete(ctx, tt.other, first.ID()), media.ErrImageNotFound)

			require.NoError(t, repo.Delete(ctx, tt.owner, first.ID()))
			count, err = repo.CountByOwner(ctx, tt.owner)
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestDocumentRepository_DownloadsAndScope(t *testing.T) {
	repo := NewDocumentRepository(setupTestDB(t))
	ctx := context.Background()

	older, err := media.NewDocument(1, "Programme", "documents/2024/05/p.pdf", 2048, testNow)
	require.NoError(t, err)
	newer, err := media.NewDocument(1, "Floor plan", "documents/2024/05/f.pdf", 1024, testNow.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.ListByExhibition(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Floor plan", list[0].Title())

	require.NoError(t, repo.IncrementDownloads(ctx, older.ID()))
	require.NoError(t, repo.IncrementDownloads(ctx, older.ID()))
	got, err := repo.GetByID(ctx, 1, older.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.DownloadCount())
	assert.Equal(t, int64(2048), got.FileSize())

	_, err = repo.GetByID(ctx, 2, older.ID())
	assert.ErrorIs(t, err, media.ErrDocumentNotFound)
	assert.ErrorIs(t, repo.IncrementDownloads(ctx, 999), media.ErrDocumentNotFound)

	require.NoError(t, repo.Delete(ctx, 1, older.ID()))
	count, err := repo.CountByExhibition(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCategoryRepository_ListAndUpdate(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))
	ctx := context.Background()

	create := func(name, slug string, order int) *category.Category {
		c, err := category.NewCategory(category.Details{Name: name, SortOrder: order}, testNow)
		require.NoError(t, err)
		require.NoError(t, c.AssignSlug(slug))
		require.NoError(t, repo.Create(ctx, c))
		return c
	}
	food := create("Food", "food", 1)
	create("Construction", "construction", 0)
	create("Agriculture", "agriculture", 1)

	food.SetActive(false, testNow.Add(time.Hour))
	require.NoError(t, food.Edit(category.Details{Name: "Food & Drinks", SortOrder: 1}, testNow.Add(time.Hour)))
	require.NoError(t, repo.Update(ctx, food))

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Construction", "Agriculture", "Food & Drinks"}, names)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	exists, err := repo.SlugExists(ctx, "food", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
