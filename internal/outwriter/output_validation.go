package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/WilliamVaron23/tf-pipeline-validator/internal/parquet"
	"github.com/WilliamVaron23/tf-pipeline-validator/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteDirectoryReport outputs the validation report, dispatching based on the output format configured.
func WriteDirectoryReport(report *schema.DirectoryReport, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquetResults(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to the human-readable report
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(report, cfg, duration, w)
		}, "Wrote report")
	}
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(report *schema.DirectoryReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForReport(w, report)
	}, "Wrote JSON")
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(report *schema.DirectoryReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"file", "status", "issue_count", "issues"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVRowsForReport(csvWriter, report)
		})
	}, "Wrote CSV")
}

// writeReportParquetResults converts the report and hands it to the Parquet
// writer. Parquet is a binary columnar format, so it always goes to a file
// rather than stdout.
func writeReportParquetResults(report *schema.DirectoryReport, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	records := parquet.ConvertDirectoryReport(report)
	if err := parquet.WriteValidationRecordsParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeReportText generates and writes the human-readable report: the status
// table, an issue listing for the files that failed, and the summary block.
func writeReportText(report *schema.DirectoryReport, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprint(writer, "\nValidation Results:\n==================\n"); err != nil {
		return err
	}

	// 1. Per-file status table
	if err := writeReportTable(report, cfg, writer); err != nil {
		return err
	}

	// 2. Issue listing for failed files
	for _, r := range report.Results {
		if r.IsValid() {
			continue
		}
		if _, err := fmt.Fprintf(writer, "\nFile: %s\n", r.FilePath); err != nil {
			return err
		}
		for _, issue := range r.Issues {
			if _, err := fmt.Fprintf(writer, "  - %s\n", issue); err != nil {
				return err
			}
		}
	}

	// 3. Summary block
	if _, err := fmt.Fprint(writer, "\nValidation Summary:\n==================\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Total files checked: %d\n", report.TotalFiles()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Files with issues: %d\n", report.FilesWithIssues()); err != nil {
		return err
	}
	status := "✅ PASSED"
	if !report.Passed() {
		status = "❌ FAILED"
	}
	if _, err := fmt.Fprintf(writer, "Status: %s\n", status); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Validation completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeReportTable renders the per-file status table.
func writeReportTable(report *schema.DirectoryReport, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"File", "Status", "Issues"})

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	statusLabel := contract.GetPlainStatusLabel
	if cfg.UseColors {
		statusLabel = contract.GetColorStatusLabel
	}
	maxPathWidth := GetMaxTablePathWidth(cfg)
	var data [][]string
	for _, r := range report.Results {
		row := []string{
			contract.TruncatePath(r.FilePath, maxPathWidth), // File
			statusLabel(r.IsValid()),                        // Status
			strconv.Itoa(len(r.Issues)),                     // Issues
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVRowsForReport writes the validation results in CSV format, one row
// per file with the rendered issues joined in a single column.
func writeCSVRowsForReport(w *csv.Writer, report *schema.DirectoryReport) error {
	for _, r := range report.Results {
		rec := []string{
			r.FilePath, // File Path
			contract.GetPlainStatusLabel(r.IsValid()),        // Status
			strconv.Itoa(len(r.Issues)),                      // Issue Count
			strings.Join(schema.RenderIssues(r.Issues), "|"), // Issues
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForReport writes the validation report in JSON format.
func writeJSONResultsForReport(w io.Writer, report *schema.DirectoryReport) error {
	return writeJSON(w, schema.EnrichReport(report))
}
