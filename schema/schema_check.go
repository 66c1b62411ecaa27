package schema

// ToolCheck records the advisory outcome of one terraform subcommand run
// during the tool-check phase.
type ToolCheck struct {
	Op     ToolOp `json:"op"`     // Subcommand that was run
	Passed bool   `json:"passed"` // True when the subcommand exited zero
}

// DirectoryReport holds the results of validating one directory.
type DirectoryReport struct {
	Directory string             // Directory under validation
	Checks    []ToolCheck        // Tool-check outcomes, in execution order
	Results   []ValidationResult // One entry per file, in discovery order
}

// TotalFiles returns the number of files checked.
func (d *DirectoryReport) TotalFiles() int {
	return len(d.Results)
}

// FilesWithIssues returns the number of files that failed validation.
func (d *DirectoryReport) FilesWithIssues() int {
	count := 0
	for _, r := range d.Results {
		if !r.IsValid() {
			count++
		}
	}
	return count
}

// Passed reports whether every checked file passed validation. Tool-check
// outcomes are advisory and never affect the overall status.
func (d *DirectoryReport) Passed() bool {
	return d.FilesWithIssues() == 0
}
