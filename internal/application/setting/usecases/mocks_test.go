package usecases

import (
	"context"

	"github.com/expohub/expohub/internal/domain/setting"
)

type mockSettingRepository struct {
	settings map[setting.Key]*setting.SiteSetting
	getErr   error
}

func newMockSettingRepository() *mockSettingRepository {
	return &mockSettingRepository{settings: make(map[setting.Key]*setting.SiteSetting)}
}

func (m *mockSettingRepository) GetByKey(_ context.Context, key setting.Key) (*setting.SiteSetting, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.settings[key]
	if !ok {
		return nil, setting.ErrSettingNotFound
	}
	return s, nil
}

func (m *mockSettingRepository) GetAll(context.Context) ([]*setting.SiteSetting, error) {
	out := make([]*setting.SiteSetting, 0, len(m.settings))
	for _, s := range m.settings {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSettingRepository) Upsert(_ context.Context, s *setting.SiteSetting) error {
	m.settings[s.Key()] = s
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
