package schema

// EnrichedValidationResult is the serialization form of a ValidationResult,
// with structured issues rendered to their report strings.
type EnrichedValidationResult struct {
	FilePath string   `json:"file_path"`
	Issues   []string `json:"issues"`
	IsValid  bool     `json:"is_valid"`
}

// EnrichResults converts results into their serialization form. Issues are
// rendered to strings at this boundary only; everything upstream keeps the
// structured records.
func EnrichResults(results []ValidationResult) []EnrichedValidationResult {
	output := make([]EnrichedValidationResult, len(results))
	for i, r := range results {
		output[i] = EnrichedValidationResult{
			FilePath: r.FilePath,
			Issues:   RenderIssues(r.Issues),
			IsValid:  r.IsValid(),
		}
	}
	return output
}

// EnrichedDirectoryReport is the serialization form of a DirectoryReport,
// with summary fields precomputed.
type EnrichedDirectoryReport struct {
	Directory       string                     `json:"directory"`
	Checks          []ToolCheck                `json:"checks"`
	Results         []EnrichedValidationResult `json:"results"`
	TotalFiles      int                        `json:"total_files"`
	FilesWithIssues int                        `json:"files_with_issues"`
	Passed          bool                       `json:"passed"`
}

// EnrichReport converts a report into its serialization form. Slices are
// non-nil even when empty so JSON output stays an array.
func EnrichReport(report *DirectoryReport) EnrichedDirectoryReport {
	checks := report.Checks
	if checks == nil {
		checks = []ToolCheck{}
	}
	return EnrichedDirectoryReport{
		Directory:       report.Directory,
		Checks:          checks,
		Results:         EnrichResults(report.Results),
		TotalFiles:      report.TotalFiles(),
		FilesWithIssues: report.FilesWithIssues(),
		Passed:          report.Passed(),
	}
}
