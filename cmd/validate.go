package cmd

import (
	"github.com/WilliamVaron23/tf-pipeline-validator/core"
	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/spf13/cobra"
)

// validateCmd runs the full validation pipeline against a directory.
var validateCmd = &cobra.Command{
	Use:   "validate [dir-path]",
	Short: "Validate a directory of Terraform files (fails build on issues)",
	Long: `Run the terraform toolchain checks and audit every Terraform file in a directory.

The toolchain phase runs fmt, init, validate and plan against the directory
and records each outcome. The audit phase parses every .tf file, verifies
that local module sources exist on disk, and probes remote module sources
and embedded URLs for reachability.

Designed for CI/CD integration - fails with non-zero exit code when any file
has issues, so broken configuration never reaches your pipeline.

Use cases:
- Pull request gates - block merges that break terraform validate
- Drift patrol - catch module sources that have gone missing or dark
- Release validation - prove every referenced endpoint still answers
- Offline audits - structural checks without the terraform binary

Examples:
  # Validate the current directory
  tfvalidator validate

  # Validate a specific directory with more workers
  tfvalidator validate ./infra --workers 8

  # Structural audit only, no terraform binary required
  tfvalidator validate ./infra --skip-tool-checks

  # Give reachability probes more time on a slow network
  tfvalidator validate ./infra --probe-timeout 15s

  # Export findings to CSV for tracking
  tfvalidator validate ./infra --output csv --output-file report.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteValidateDirectory(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run validation", err)
		}
	},
}
