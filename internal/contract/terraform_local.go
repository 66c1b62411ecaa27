package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// LocalTerraformClient implements the TerraformClient interface by executing
// the local 'terraform' binary installed on the machine.
type LocalTerraformClient struct{}

var _ TerraformClient = &LocalTerraformClient{} // Compile-time check

// NewLocalTerraformClient creates a new instance of the local terraform client.
func NewLocalTerraformClient() *LocalTerraformClient {
	return &LocalTerraformClient{}
}

// Run executes a terraform subcommand with the directory as its final
// argument and returns the combined stdout/stderr output. On a non-zero exit
// the captured output is still returned so callers can log the tool's
// diagnostics.
func (c *LocalTerraformClient) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	fullArgs := append(append([]string{}, args...), dir)
	cmd := exec.CommandContext(ctx, "terraform", fullArgs...)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, fmt.Errorf("terraform %s exited with status %d: %w", args[0], exitErr.ExitCode(), err)
	} else if err != nil {
		return nil, fmt.Errorf("running terraform %s: %w", args[0], err)
	}
	return out, nil
}

// CheckFormat implements the TerraformClient interface.
func (c *LocalTerraformClient) CheckFormat(ctx context.Context, dir string) ([]byte, error) {
	return c.Run(ctx, dir, "fmt", "-check")
}

// Init implements the TerraformClient interface.
func (c *LocalTerraformClient) Init(ctx context.Context, dir string) ([]byte, error) {
	return c.Run(ctx, dir, "init")
}

// Validate implements the TerraformClient interface.
func (c *LocalTerraformClient) Validate(ctx context.Context, dir string) ([]byte, error) {
	return c.Run(ctx, dir, "validate")
}

// Plan implements the TerraformClient interface.
func (c *LocalTerraformClient) Plan(ctx context.Context, dir string) ([]byte, error) {
	return c.Run(ctx, dir, "plan")
}

// IsNotInstalled reports whether err indicates the terraform binary is
// missing from the PATH, as opposed to a non-zero exit.
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// IsExitFailure reports whether err came from a terraform subcommand that
// ran to completion with a non-zero exit status.
func IsExitFailure(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
