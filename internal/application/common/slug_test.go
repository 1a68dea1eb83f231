package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInsertWithSlug_RetriesOnceAfterDuplicate(t *testing.T) {
	taken := map[string]bool{"expo": true}
	exists := func(_ context.Context, s string) (bool, error) { return taken[s], nil }

	calls := 0
	slug, err := InsertWithSlug(context.Background(), "expo", exists, func(_ context.Context, s string) error {
		calls++
		if calls == 1 {
			// a concurrent writer grabbed the slug between check and insert
			taken[s] = true
			return gorm.ErrDuplicatedKey
		}
		taken[s] = true
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "expo-2", slug)
}

func TestInsertWithSlug_GivesUpAfterSecondDuplicate(t *testing.T) {
	exists := func(context.Context, string) (bool, error) { return false, nil }
	calls := 0
	_, err := InsertWithSlug(context.Background(), "expo", exists, func(context.Context, string) error {
		calls++
		return errors.New("Error 1062: Duplicate entry 'expo' for key 'slug'")
	})
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestInsertWithSlug_OtherErrorsAreNotRetried(t *testing.T) {
	exists := func(context.Context, string) (bool, error) { return false, nil }
	calls := 0
	_, err := InsertWithSlug(context.Background(), "expo", exists, func(context.Context, string) error {
		calls++
		return errors.New("connection refused")
	})
	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, 1, calls)
}
