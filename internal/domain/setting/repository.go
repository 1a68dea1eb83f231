package setting

import (
	"context"
)

// Repository defines the interface for site setting persistence
type Repository interface {
	// GetByKey returns ErrSettingNotFound when the key was never stored.
	GetByKey(ctx context.Context, key Key) (*SiteSetting, error)

	// GetAll retrieves all stored settings
	GetAll(ctx context.Context) ([]*SiteSetting, error)

	// Upsert creates or updates a setting
	Upsert(ctx context.Context, setting *SiteSetting) error
}
