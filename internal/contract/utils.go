package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Status label constants.
const (
	PassedValue = "Passed" // Passed value
	FailedValue = "Failed" // Failed value
)

// Color variables for console output.
var (
	PassedColor = color.New(color.FgGreen, color.Bold) // passedColor represents a clean file.
	FailedColor = color.New(color.FgRed, color.Bold)   // failedColor represents a file with issues.
)

// GetPlainStatusLabel returns a plain text label for a file's validation
// status. This is the core logic used for CSV, JSON, and table printing.
func GetPlainStatusLabel(valid bool) string {
	if valid {
		return PassedValue
	}
	return FailedValue
}

// GetColorStatusLabel returns a colored text label for console output (table).
// It uses GetPlainStatusLabel to determine the string, and then applies the
// appropriate color.
func GetColorStatusLabel(valid bool) string {
	text := GetPlainStatusLabel(valid)
	if valid {
		return PassedColor.Sprint(text)
	}
	return FailedColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
// Without this check, small maxWidth values could cause slice bounds errors in the truncation calculation.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
