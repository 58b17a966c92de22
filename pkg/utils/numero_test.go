package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumero(t *testing.T) {
	assert.Equal(t, "001-2025", FormatNumero(1, 2025))
	assert.Equal(t, "042-2025", FormatNumero(42, 2025))
	assert.Equal(t, "999-2025", FormatNumero(999, 2025))
	assert.Equal(t, "1000-2025", FormatNumero(1000, 2025))
}

func TestNextNumero(t *testing.T) {
	tests := []struct {
		latest string
		year   int
		want   string
	}{
		{"", 2025, "001-2025"},
		{"001-2025", 2025, "002-2025"},
		{"009-2025", 2025, "010-2025"},
		{"099-2025", 2025, "100-2025"},
		{"999-2025", 2025, "1000-2025"},
		{"1000-2025", 2025, "1001-2025"},
		// corrupt numbers restart the sequence instead of failing
		{"abc-2025", 2025, "001-2025"},
		{"garbage", 2025, "001-2025"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextNumero(tt.latest, tt.year), "latest=%q", tt.latest)
	}
}
