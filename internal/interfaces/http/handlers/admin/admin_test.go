package admin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/application/setting/dto"
	"github.com/expohub/expohub/internal/application/setting/usecases"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/testutil"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

type mockGetSettingsUC struct{}

func (mockGetSettingsUC) Execute(context.Context) ([]dto.SettingItem, error) {
	return []dto.SettingItem{{Key: "reviews.moderation_required", Value: "true", ValueType: "bool", Source: "default"}}, nil
}

type mockUpdateSettingsUC struct {
	got usecases.UpdateSettingsCommand
	err error
}

func (m *mockUpdateSettingsUC) Execute(_ context.Context, cmd usecases.UpdateSettingsCommand) error {
	m.got = cmd
	return m.err
}

func TestSettingHandler_GetSettings(t *testing.T) {
	h := NewSettingHandler(mockGetSettingsUC{}, &mockUpdateSettingsUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/admin/settings", nil)

	h.GetSettings(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reviews.moderation_required")
}

func TestSettingHandler_UpdateSettings(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		ucErr    error
		wantCode int
	}{
		{
			name:     "valid",
			body:     dto.UpdateSettingsRequest{Settings: map[string]string{"reviews.moderation_required": "false"}},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing settings",
			body:     map[string]any{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown key",
			body:     dto.UpdateSettingsRequest{Settings: map[string]string{"nope": "1"}},
			ucErr:    apperrors.NewValidationError("unknown setting key", "nope"),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := &mockUpdateSettingsUC{err: tt.ucErr}
			h := NewSettingHandler(mockGetSettingsUC{}, update, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPut, "/admin/settings", tt.body)
			testutil.SetAuthContext(c, testutil.Admin(1))

			h.UpdateSettings(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

type mockRunner struct {
	ran []string
	err error
}

func (m *mockRunner) RunNow(_ context.Context, name string) (int, error) {
	m.ran = append(m.ran, name)
	return 4, m.err
}

func (m *mockRunner) JobNames() []string { return []string{"complete-expired-exhibitions", "repair-counters"} }

func TestJobHandler_RunJob(t *testing.T) {
	t.Run("known job", func(t *testing.T) {
		runner := &mockRunner{}
		h := NewJobHandler(runner, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/admin/jobs/repair-counters/run", nil)
		testutil.SetURLParam(c, "name", "repair-counters")

		h.RunJob(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"repair-counters"}, runner.ran)
		assert.Contains(t, w.Body.String(), `"processed":4`)
	})

	t.Run("unknown job", func(t *testing.T) {
		runner := &mockRunner{}
		h := NewJobHandler(runner, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/admin/jobs/nope/run", nil)
		testutil.SetURLParam(c, "name", "nope")

		h.RunJob(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, runner.ran)
	})

	t.Run("job error", func(t *testing.T) {
		runner := &mockRunner{err: errors.New("db down")}
		h := NewJobHandler(runner, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/admin/jobs/complete-expired-exhibitions/run", nil)
		testutil.SetURLParam(c, "name", "complete-expired-exhibitions")

		h.RunJob(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
