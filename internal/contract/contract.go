// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
)

// TerraformClient defines the terraform subcommand invocations used by the
// tool-check phase. This allows the pipeline to be tested without needing a
// real terraform executable.
type TerraformClient interface {
	// --- Generic / Low-Level ---

	// Run executes a terraform subcommand against dir and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)

	// --- Tool-Check Operations ---

	// CheckFormat runs `terraform fmt -check` against the directory.
	CheckFormat(ctx context.Context, dir string) ([]byte, error)

	// Init runs `terraform init` against the directory.
	Init(ctx context.Context, dir string) ([]byte, error)

	// Validate runs `terraform validate` against the directory.
	Validate(ctx context.Context, dir string) ([]byte, error)

	// Plan runs `terraform plan` against the directory.
	Plan(ctx context.Context, dir string) ([]byte, error)
}

// Prober issues lightweight reachability checks against URLs.
// This allows the network boundary to be mocked for testing.
type Prober interface {
	// Probe issues a single existence check against url. It never returns an
	// error; failures classify as unreachable in the result.
	Probe(ctx context.Context, url string) schema.ProbeResult
}
