// Package core has core logic for discovery, validation and reporting.
package core

import (
	"context"
	"os"
	"time"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/WilliamVaron23/tf-pipeline-validator/internal/outwriter"
)

// ExecuteValidateDirectory runs the full validation pipeline and prints the
// report. It serves as the main entry point for the 'validate' command.
// When any file fails validation the process exits non-zero so CI/CD
// pipelines can gate on the result.
func ExecuteValidateDirectory(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalTerraformClient()
	prober := contract.NewHTTPProber(cfg.ProbeTimeout)

	report, err := ValidateDirectory(ctx, cfg, client, prober)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	if err := outwriter.WriteDirectoryReport(report, cfg, duration); err != nil {
		return err
	}

	if !report.Passed() {
		os.Exit(1)
	}
	return nil
}
