package setting

import "errors"

var (
	// ErrSettingNotFound is returned when a setting is not found
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidSettingKey is returned when the setting key is not a known key
	ErrInvalidSettingKey = errors.New("invalid setting key")

	// ErrInvalidValueType is returned when the value does not match the key's type
	ErrInvalidValueType = errors.New("invalid value type")
)
