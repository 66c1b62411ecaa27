// Package schema has configs, models and shared types for all parts of the validator.
package schema

// ValidationResult represents the structural audit outcome for a single
// Terraform file. Issues appear in detection order; a file with zero issues
// passed validation. Results are created once per file and never mutated
// afterwards.
type ValidationResult struct {
	FilePath string  // Path to the file under the target directory
	Issues   []Issue // Problems found, in detection order
}

// IsValid reports whether the file passed validation.
func (r ValidationResult) IsValid() bool {
	return len(r.Issues) == 0
}

// ProbeResult holds the outcome of a single reachability probe.
type ProbeResult struct {
	Reachable  bool   // True when the endpoint answered with a status below 400
	StatusCode int    // HTTP status code, zero on transport failure
	Detail     string // Status text or transport error description
}
