package setting

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueType defines the type of a setting value
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeInt    ValueType = "int"
	ValueTypeBool   ValueType = "bool"
	ValueTypeJSON   ValueType = "json"
)

// SiteSetting is one stored value of a known Key.
type SiteSetting struct {
	id        uint
	key       Key
	value     string
	updatedBy uint
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSiteSetting creates a setting holding the key's default.
func NewSiteSetting(key Key, now time.Time) (*SiteSetting, error) {
	def, ok := DefinitionOf(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSettingKey, key)
	}
	return &SiteSetting{
		key:       key,
		value:     def.Default,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSiteSetting reconstructs a SiteSetting from persistence layer
func ReconstructSiteSetting(
	id uint,
	key Key,
	value string,
	updatedBy uint,
	version int,
	createdAt, updatedAt time.Time,
) (*SiteSetting, error) {
	if !key.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSettingKey, key)
	}
	return &SiteSetting{
		id:        id,
		key:       key,
		value:     value,
		updatedBy: updatedBy,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Getters
func (s *SiteSetting) ID() uint             { return s.id }
func (s *SiteSetting) Key() Key             { return s.key }
func (s *SiteSetting) Value() string        { return s.value }
func (s *SiteSetting) UpdatedBy() uint      { return s.updatedBy }
func (s *SiteSetting) Version() int         { return s.version }
func (s *SiteSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SiteSetting) UpdatedAt() time.Time { return s.updatedAt }

func (s *SiteSetting) ValueType() ValueType {
	return definitions[s.key].Type
}

// SetID sets the setting ID (only for persistence layer use)
func (s *SiteSetting) SetID(id uint) {
	s.id = id
}

// GetStringValue returns the value as a string
func (s *SiteSetting) GetStringValue() string {
	return s.value
}

// GetIntValue returns the value as an integer
func (s *SiteSetting) GetIntValue() (int, error) {
	if s.value == "" {
		return 0, nil
	}
	return strconv.Atoi(s.value)
}

// GetBoolValue returns the value as a boolean
func (s *SiteSetting) GetBoolValue() (bool, error) {
	if s.value == "" {
		return false, nil
	}
	return strconv.ParseBool(s.value)
}

// GetJSONValue unmarshals the value into the provided target
func (s *SiteSetting) GetJSONValue(target any) error {
	if s.value == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.value), target)
}

// SetRaw validates raw against the key's type and stores its canonical form.
func (s *SiteSetting) SetRaw(raw string, updatedBy uint, now time.Time) error {
	canonical, err := Canonicalize(s.ValueType(), raw)
	if err != nil {
		return err
	}
	s.value = canonical
	s.updatedBy = updatedBy
	s.version++
	s.updatedAt = now
	return nil
}

// SetIntValue sets the value as an integer
func (s *SiteSetting) SetIntValue(value int, updatedBy uint, now time.Time) error {
	if s.ValueType() != ValueTypeInt {
		return fmt.Errorf("%w: expected %s, got int", ErrInvalidValueType, s.ValueType())
	}
	return s.SetRaw(strconv.Itoa(value), updatedBy, now)
}

// SetBoolValue sets the value as a boolean
func (s *SiteSetting) SetBoolValue(value bool, updatedBy uint, now time.Time) error {
	if s.ValueType() != ValueTypeBool {
		return fmt.Errorf("%w: expected %s, got bool", ErrInvalidValueType, s.ValueType())
	}
	return s.SetRaw(strconv.FormatBool(value), updatedBy, now)
}

// Canonicalize parses raw as vt and returns its stored form.
func Canonicalize(vt ValueType, raw string) (string, error) {
	switch vt {
	case ValueTypeString:
		return raw, nil
	case ValueTypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return "", fmt.Errorf("%w: %q is not an integer", ErrInvalidValueType, raw)
		}
		if n < 0 {
			return "", fmt.Errorf("%w: %d must not be negative", ErrInvalidValueType, n)
		}
		return strconv.Itoa(n), nil
	case ValueTypeBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a boolean", ErrInvalidValueType, raw)
		}
		return strconv.FormatBool(b), nil
	case ValueTypeJSON:
		if !json.Valid([]byte(raw)) {
			return "", fmt.Errorf("%w: invalid JSON", ErrInvalidValueType)
		}
		return raw, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidValueType, vt)
	}
}
