package dto

import "time"

// SettingItem is one site setting as returned to administrators.
type SettingItem struct {
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	ValueType   string     `json:"value_type"`
	Description string     `json:"description"`
	Source      string     `json:"source"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UpdateSettingsRequest maps keys to raw values.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
