package outwriter

import (
	"testing"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxTablePathWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{
			name:     "wide terminal clamps to max",
			width:    120,
			expected: 70,
		},
		{
			name:     "standard terminal",
			width:    100,
			expected: 55,
		},
		{
			name:     "conservative default width",
			width:    80,
			expected: 35,
		},
		{
			name:     "narrow terminal clamps to min",
			width:    60,
			expected: 15,
		},
		{
			name:     "tiny terminal clamps to min",
			width:    1,
			expected: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTablePathWidth(cfg))
		})
	}
}

func TestGetMaxTablePathWidthDetection(t *testing.T) {
	// With no override the width comes from terminal detection, which falls
	// back to 80 columns outside a terminal. Either way the result stays
	// within the clamp bounds.
	cfg := &contract.Config{}
	width := GetMaxTablePathWidth(cfg)
	assert.GreaterOrEqual(t, width, 15)
	assert.LessOrEqual(t, width, 70)
}
