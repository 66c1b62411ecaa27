package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    bool
		expected string
	}{
		{
			name:     "valid file",
			input:    true,
			expected: PassedValue,
		},
		{
			name:     "file with issues",
			input:    false,
			expected: FailedValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainStatusLabel(tt.input))
		})
	}
}

func TestGetColorStatusLabel(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		label string
	}{
		{"passed", true, PassedValue},
		{"failed", false, FailedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorStatusLabel(tt.valid)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{
			name:     "short path untouched",
			path:     "main.tf",
			maxWidth: 20,
			expected: "main.tf",
		},
		{
			name:     "exact width untouched",
			path:     "abcdefghij",
			maxWidth: 10,
			expected: "abcdefghij",
		},
		{
			name:     "long path truncated with ellipsis",
			path:     "modules/networking/vpc/main.tf",
			maxWidth: 15,
			expected: ".../vpc/main.tf",
		},
		{
			name:     "width too small to truncate",
			path:     "modules/vpc/main.tf",
			maxWidth: 3,
			expected: "modules/vpc/main.tf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncatePath(tt.path, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if tt.maxWidth > 3 {
				assert.LessOrEqual(t, len([]rune(got)), tt.maxWidth)
			}
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", "yes", true, false},
		{"no", "no", false, false},
		{"true", "true", true, false},
		{"false", "false", false, false},
		{"one", "1", true, false},
		{"zero", "0", false, false},
		{"mixed case", "YeS", true, false},
		{"invalid word", "maybe", false, true},
		{"empty", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
