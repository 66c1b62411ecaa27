// Package parquet provides data structures and functions for exporting
// validation reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/parquet-go/parquet-go"
)

// ValidationRecord represents one finding for a validated file, flattened for
// tabular storage. A file with issues produces one record per issue; a clean
// file produces a single record with the issue columns null.
type ValidationRecord struct {
	// Directory is the directory the validation run targeted
	Directory string `parquet:"directory,snappy"`

	// FilePath is the path of the validated file
	FilePath string `parquet:"file_path,snappy"`

	// IsValid reports whether the file passed validation
	IsValid bool `parquet:"is_valid,snappy"`

	// IssueKind is the issue variant tag (nullable)
	IssueKind *string `parquet:"issue_kind,optional,snappy"`

	// IssueModule is the module name for module-source issues (nullable)
	IssueModule *string `parquet:"issue_module,optional,snappy"`

	// IssueTarget is the source path, source URL, or embedded URL (nullable)
	IssueTarget *string `parquet:"issue_target,optional,snappy"`

	// IssueDetail is the probe status text or underlying error (nullable)
	IssueDetail *string `parquet:"issue_detail,optional,snappy"`

	// IssueText is the rendered report form of the issue (nullable)
	IssueText *string `parquet:"issue_text,optional,snappy"`
}

// WriteValidationRecordsParquet writes a slice of ValidationRecord structs to a Parquet file.
func WriteValidationRecordsParquet(data []ValidationRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ValidationRecord struct tags
	writer := parquet.NewGenericWriter[ValidationRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertDirectoryReport flattens a validation report into ValidationRecord
// rows for Parquet export. Empty Module, Target and Detail fields stay null
// rather than empty strings.
func ConvertDirectoryReport(report *schema.DirectoryReport) []ValidationRecord {
	records := make([]ValidationRecord, 0, len(report.Results))
	for _, r := range report.Results {
		if r.IsValid() {
			records = append(records, ValidationRecord{
				Directory: report.Directory,
				FilePath:  r.FilePath,
				IsValid:   true,
			})
			continue
		}
		for _, issue := range r.Issues {
			kind := string(issue.Kind)
			text := issue.String()
			record := ValidationRecord{
				Directory: report.Directory,
				FilePath:  r.FilePath,
				IsValid:   false,
				IssueKind: &kind,
				IssueText: &text,
			}
			if issue.Module != "" {
				module := issue.Module
				record.IssueModule = &module
			}
			if issue.Target != "" {
				target := issue.Target
				record.IssueTarget = &target
			}
			if issue.Detail != "" {
				detail := issue.Detail
				record.IssueDetail = &detail
			}
			records = append(records, record)
		}
	}
	return records
}

// MockFetchValidationRecords generates sample ValidationRecord data for demonstration.
func MockFetchValidationRecords() []ValidationRecord {
	kind1 := string(schema.LocalSourceMissing)
	module1 := "app"
	target1 := "./modules/app"
	text1 := "Module app: Local source path does not exist ./modules/app"

	kind2 := string(schema.URLUnreachable)
	target2 := "https://registry.example.com/health"
	detail2 := "HTTP status 503"
	text2 := "Unreachable URL https://registry.example.com/health"

	return []ValidationRecord{
		{
			Directory: "/srv/terraform/project",
			FilePath:  "/srv/terraform/project/main.tf",
			IsValid:   true,
			// Issue columns stay nil for clean files - nullable fields
		},
		{
			Directory:   "/srv/terraform/project",
			FilePath:    "/srv/terraform/project/modules.tf",
			IsValid:     false,
			IssueKind:   &kind1,
			IssueModule: &module1,
			IssueTarget: &target1,
			IssueText:   &text1,
		},
		{
			Directory:   "/srv/terraform/project",
			FilePath:    "/srv/terraform/project/endpoints.tf",
			IsValid:     false,
			IssueKind:   &kind2,
			IssueTarget: &target2,
			IssueDetail: &detail2,
			IssueText:   &text2,
		},
	}
}
