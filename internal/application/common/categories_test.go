package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/category"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

type categoryTable map[uint]*category.Category

func (t categoryTable) GetByID(_ context.Context, id uint) (*category.Category, error) {
	if id == 99 {
		return nil, errors.New("connection reset")
	}
	c, ok := t[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

func TestCheckCategory(t *testing.T) {
	now := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)
	table := categoryTable{
		1: category.ReconstructCategory(1, "Food", "food", "", "", true, 0, now, now),
		2: category.ReconstructCategory(2, "Retired", "retired", "", "", false, 0, now, now),
	}
	ptr := func(v uint) *uint { return &v }

	tests := []struct {
		name       string
		reader     CategoryReader
		id         *uint
		current    *uint
		validation bool
		wantErr    bool
	}{
		{"no category", table, nil, nil, false, false},
		{"active", table, ptr(1), nil, false, false},
		{"unknown", table, ptr(7), nil, true, true},
		{"inactive new choice", table, ptr(2), ptr(1), true, true},
		{"inactive kept", table, ptr(2), ptr(2), false, false},
		{"store failure", table, ptr(99), nil, false, true},
		{"no reader", nil, ptr(7), nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCategory(context.Background(), tt.reader, tt.id, tt.current)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.validation, apperrors.IsValidationError(err))
		})
	}
}
