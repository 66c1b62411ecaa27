package contract

import (
	"testing"
)

// FuzzTruncatePath fuzzes the TruncatePath function with random paths and widths.
func FuzzTruncatePath(f *testing.F) {
	seeds := []struct {
		path     string
		maxWidth int
	}{
		{"main.tf", 20},
		{"modules/networking/vpc/main.tf", 15},
		{"a", 0},
		{"", 10},
		{"short", 3},
		{"päth/with/ünicode.tf", 8},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.maxWidth)
	}

	f.Fuzz(func(_ *testing.T, path string, maxWidth int) {
		_ = TruncatePath(path, maxWidth)
	})
}

// FuzzParseBoolString fuzzes the ParseBoolString function with random inputs.
func FuzzParseBoolString(f *testing.F) {
	seeds := []string{"yes", "no", "true", "false", "1", "0", "YES", "maybe", ""}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, err := ParseBoolString(input)
		_ = err // ignore error, we're testing for crashes
	})
}
