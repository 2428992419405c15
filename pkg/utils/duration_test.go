package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learngraph/pkg/utils"
)

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		estimate string
		minutes  int
		ok       bool
	}{
		{"10 mins", 10, true},
		{"45 minutes", 45, true},
		{"1 hour", 60, true},
		{"2 hours", 120, true},
		{"1 hour 30 mins", 90, true},
		{"1hr 15min", 75, true},
		{"  1 Hour  ", 60, true},
		{"", 0, false},
		{"a while", 0, false},
		{"soon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.estimate, func(t *testing.T) {
			minutes, ok := utils.ParseEstimate(tt.estimate)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0 mins", utils.FormatMinutes(0))
	assert.Equal(t, "1 min", utils.FormatMinutes(1))
	assert.Equal(t, "45 mins", utils.FormatMinutes(45))
	assert.Equal(t, "1 hour", utils.FormatMinutes(60))
	assert.Equal(t, "2 hours", utils.FormatMinutes(120))
	assert.Equal(t, "1 hour 30 mins", utils.FormatMinutes(90))
	assert.Equal(t, "2 hours 45 mins", utils.FormatMinutes(165))
}
