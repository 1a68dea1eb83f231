package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	e, err := NewEmail("  Visitor@Expo.RU ")
	require.NoError(t, err)
	assert.Equal(t, "visitor@expo.ru", e.String())

	for _, bad := range []string{"", "no-at-sign", "a@b", "user@@expo.ru"} {
		_, err := NewEmail(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "exhibit2024", false},
		{"too short", "ab1", true},
		{"no digits", "onlyletters", true},
		{"no letters", "1234567890", true},
		{"too long", strings.Repeat("a1", 37), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPassword(tt.input)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
