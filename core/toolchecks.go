package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
)

// terraformMissingMsg is logged once per subcommand when the binary is absent.
const terraformMissingMsg = "Terraform command not found. Please ensure terraform is installed and in your PATH"

// Per-subcommand log lines for the tool-check phase.
var (
	toolAnnouncements = map[schema.ToolOp]string{
		schema.FmtOp:      "Running terraform fmt check...",
		schema.InitOp:     "Running terraform init...",
		schema.ValidateOp: "Running terraform validate...",
		schema.PlanOp:     "Running terraform plan...",
	}
	toolSuccessMessages = map[schema.ToolOp]string{
		schema.FmtOp:      "Terraform formatting check passed",
		schema.InitOp:     "Terraform init completed successfully",
		schema.ValidateOp: "Terraform validation passed",
		schema.PlanOp:     "Terraform plan completed successfully",
	}
	toolIssueMessages = map[schema.ToolOp]string{
		schema.FmtOp:      "Terraform formatting issues found:",
		schema.InitOp:     "Terraform init issues found:",
		schema.ValidateOp: "Terraform validation issues found:",
		schema.PlanOp:     "Terraform plan issues found:",
	}
	toolFailureWarnings = map[schema.ToolOp]string{
		schema.FmtOp:      "Terraform formatting check failed",
		schema.InitOp:     "Terraform init failed",
		schema.ValidateOp: "Terraform syntax validation failed",
		schema.PlanOp:     "Terraform plan failed",
	}
)

// runToolChecks executes each terraform subcommand against the directory in
// a fixed order. Outcomes are advisory: failures are logged and recorded in
// the report but never stop the per-file phase.
func runToolChecks(ctx context.Context, cfg *contract.Config, client contract.TerraformClient) []schema.ToolCheck {
	checks := make([]schema.ToolCheck, 0, len(schema.AllToolOps))
	for _, op := range schema.AllToolOps {
		passed := runToolCheck(ctx, cfg, client, op)
		if !passed {
			cfg.Logger.Warn(toolFailureWarnings[op])
		}
		checks = append(checks, schema.ToolCheck{Op: op, Passed: passed})
	}
	return checks
}

// runToolCheck runs one subcommand and logs its outcome.
func runToolCheck(ctx context.Context, cfg *contract.Config, client contract.TerraformClient, op schema.ToolOp) bool {
	logger := cfg.Logger
	logger.Info(toolAnnouncements[op])

	out, err := runToolOp(ctx, client, cfg.TargetDir, op)
	switch {
	case err == nil:
		logger.Info(toolSuccessMessages[op])
		return true
	case contract.IsNotInstalled(err):
		logger.Error(terraformMissingMsg)
		return false
	case contract.IsExitFailure(err):
		logger.Warnf("%s\n%s", toolIssueMessages[op], strings.TrimRight(string(out), "\n"))
		return false
	default:
		logger.Errorf("Error running terraform %s: %v", op, err)
		return false
	}
}

// runToolOp dispatches to the client method matching the subcommand.
func runToolOp(ctx context.Context, client contract.TerraformClient, dir string, op schema.ToolOp) ([]byte, error) {
	switch op {
	case schema.FmtOp:
		return client.CheckFormat(ctx, dir)
	case schema.InitOp:
		return client.Init(ctx, dir)
	case schema.ValidateOp:
		return client.Validate(ctx, dir)
	case schema.PlanOp:
		return client.Plan(ctx, dir)
	default:
		return nil, fmt.Errorf("unknown terraform operation '%s'", op)
	}
}
