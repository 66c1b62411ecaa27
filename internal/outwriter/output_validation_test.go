package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport builds a report with one clean file and one file carrying a
// module source issue and an embedded URL issue.
func sampleReport() *schema.DirectoryReport {
	return &schema.DirectoryReport{
		Directory: "/srv/terraform/project",
		Checks: []schema.ToolCheck{
			{Op: schema.FmtOp, Passed: true},
			{Op: schema.InitOp, Passed: true},
			{Op: schema.ValidateOp, Passed: false},
			{Op: schema.PlanOp, Passed: true},
		},
		Results: []schema.ValidationResult{
			{FilePath: "/srv/terraform/project/outputs.tf"},
			{
				FilePath: "/srv/terraform/project/main.tf",
				Issues: []schema.Issue{
					{
						Kind:   schema.RemoteSourceUnreachable,
						Module: "vpc",
						Target: "https://modules.example.com/vpc.git",
						Detail: "HTTP status 404",
					},
					{
						Kind:   schema.URLUnreachable,
						Target: "https://api.example.com/health",
						Detail: "HTTP status 503",
					},
				},
			},
		},
	}
}

func TestWriteReportTextFailed(t *testing.T) {
	report := sampleReport()
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Workers:   2,
		UseColors: false,
		Width:     120,
	}

	var buf bytes.Buffer
	duration := 100 * time.Millisecond
	err := writeReportText(report, cfg, duration, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Validation Results:")
	assert.Contains(t, output, "==================")
	assert.Contains(t, output, "outputs.tf")
	assert.Contains(t, output, "Passed")
	assert.Contains(t, output, "Failed")
	assert.Contains(t, output, "\nFile: /srv/terraform/project/main.tf\n")
	assert.Contains(t, output, "  - Module vpc: Unreachable source URL https://modules.example.com/vpc.git")
	assert.Contains(t, output, "  - Unreachable URL https://api.example.com/health")
	assert.Contains(t, output, "Validation Summary:")
	assert.Contains(t, output, "Total files checked: 2")
	assert.Contains(t, output, "Files with issues: 1")
	assert.Contains(t, output, "Status: ❌ FAILED")
	assert.Contains(t, output, "Validation completed in 100ms with 2 workers")
}

func TestWriteReportTextPassed(t *testing.T) {
	report := &schema.DirectoryReport{
		Directory: "/srv/terraform/project",
		Results: []schema.ValidationResult{
			{FilePath: "/srv/terraform/project/main.tf"},
			{FilePath: "/srv/terraform/project/outputs.tf"},
		},
	}
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Workers:   4,
		UseColors: false,
		Width:     120,
	}

	var buf bytes.Buffer
	err := writeReportText(report, cfg, 10*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Total files checked: 2")
	assert.Contains(t, output, "Files with issues: 0")
	assert.Contains(t, output, "Status: ✅ PASSED")
	// Clean files only show up in the status table, not the issue listing
	assert.NotContains(t, output, "File: ")
}

func TestWriteReportTextEmpty(t *testing.T) {
	report := &schema.DirectoryReport{Directory: "/srv/terraform/empty"}
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Workers:   1,
		UseColors: false,
		Width:     120,
	}

	var buf bytes.Buffer
	err := writeReportText(report, cfg, 5*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Total files checked: 0")
	assert.Contains(t, output, "Files with issues: 0")
	assert.Contains(t, output, "Status: ✅ PASSED")
}

func TestWriteReportTextTruncatesLongPaths(t *testing.T) {
	longPath := "/deeply/nested/terraform/environments/production/main.tf"
	report := &schema.DirectoryReport{
		Directory: "/deeply",
		Results:   []schema.ValidationResult{{FilePath: longPath}},
	}
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Workers:   1,
		UseColors: false,
		Width:     60,
	}

	var buf bytes.Buffer
	err := writeReportText(report, cfg, time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "...tion/main.tf")
	assert.NotContains(t, output, longPath)
}

func TestWriteReportTextDeterministic(t *testing.T) {
	report := sampleReport()
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Workers:   4,
		UseColors: false,
		Width:     100,
	}

	var first, second bytes.Buffer
	require.NoError(t, writeReportText(report, cfg, 10*time.Millisecond, &first))
	require.NoError(t, writeReportText(report, cfg, 10*time.Millisecond, &second))
	assert.Equal(t, first.String(), second.String())
}

func TestWriteDirectoryReportTextToFile(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "report.txt")

	report := sampleReport()
	cfg := &contract.Config{
		Output:     schema.TextOut,
		OutputFile: outputFile,
		Workers:    2,
		UseColors:  false,
		Width:      120,
	}

	err := WriteDirectoryReport(report, cfg, 25*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Validation Summary:")
	assert.Contains(t, string(content), "Status: ❌ FAILED")
}

func TestWriteDirectoryReportJSON(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "report.json")

	report := sampleReport()
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: outputFile,
		Workers:    2,
	}

	err := WriteDirectoryReport(report, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(content, &result)
	require.NoError(t, err)

	assert.Equal(t, "/srv/terraform/project", result["directory"])
	assert.Equal(t, float64(2), result["total_files"])
	assert.Equal(t, float64(1), result["files_with_issues"])
	assert.Equal(t, false, result["passed"])

	results, ok := result["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/srv/terraform/project/outputs.tf", first["file_path"])
	assert.Equal(t, true, first["is_valid"])

	checks, ok := result["checks"].([]any)
	require.True(t, ok)
	require.Len(t, checks, 4)
	firstCheck, ok := checks[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fmt", firstCheck["op"])
	assert.Equal(t, true, firstCheck["passed"])
}

func TestWriteDirectoryReportCSV(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "report.csv")

	report := sampleReport()
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: outputFile,
		Workers:    2,
	}

	err := WriteDirectoryReport(report, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t, "file,status,issue_count,issues", lines[0])
	assert.Equal(t, "/srv/terraform/project/outputs.tf,Passed,0,", lines[1])
	assert.Contains(t, lines[2], "/srv/terraform/project/main.tf,Failed,2,")
	assert.Contains(t, lines[2], "Module vpc: Unreachable source URL https://modules.example.com/vpc.git|Unreachable URL https://api.example.com/health")
}

func TestWriteDirectoryReportParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "report.parquet")

	report := sampleReport()
	cfg := &contract.Config{
		Output:     schema.ParquetOut,
		OutputFile: outputFile,
		Workers:    2,
	}

	err := WriteDirectoryReport(report, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	info, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteDirectoryReportParquetRequiresOutputFile(t *testing.T) {
	report := sampleReport()
	cfg := &contract.Config{
		Output:  schema.ParquetOut,
		Workers: 2,
	}

	err := WriteDirectoryReport(report, cfg, 50*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet output requires")
}

func TestWriteCSVRowsForReport(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVRowsForReport(w, report)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "outputs.tf")
	assert.Contains(t, lines[0], "Passed")
	assert.Contains(t, lines[1], "main.tf")
	assert.Contains(t, lines[1], "Failed")
}

func TestWriteJSONResultsForReport(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	err := writeJSONResultsForReport(&buf, report)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	results, ok := result["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)

	second, ok := results[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, second["is_valid"])

	issues, ok := second["issues"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 2)
	assert.Equal(t, "Module vpc: Unreachable source URL https://modules.example.com/vpc.git", issues[0])
}

func TestWriteJSONResultsForReportEmptyChecks(t *testing.T) {
	report := &schema.DirectoryReport{Directory: "/srv/terraform/empty"}

	var buf bytes.Buffer
	err := writeJSONResultsForReport(&buf, report)
	require.NoError(t, err)

	// Empty slices stay arrays so downstream consumers never see null
	output := buf.String()
	assert.Contains(t, output, `"checks": []`)
	assert.Contains(t, output, `"results": []`)
	assert.NotContains(t, output, "null")
}
