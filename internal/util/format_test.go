package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{999.94, "999.9"},
		{1234.56, "1,234.6"},
		{-12345.6, "-12,345.6"},
		{1000000, "1,000,000.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in))
	}
}

func TestFormatPercentAndSigned(t *testing.T) {
	assert.Equal(t, "16.7%", FormatPercent(16.66))
	assert.Equal(t, "+5.0", FormatSigned(5))
	assert.Equal(t, "-1,200.0", FormatSigned(-1200))
	assert.Equal(t, "0.0", FormatSigned(0))
}

func TestFindAvailablePort(t *testing.T) {
	p, err := FindAvailablePort(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, p)
}
