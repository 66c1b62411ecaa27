// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the validator MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Terraform Validation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: validate_directory ---
	s.AddTool(mcp.NewTool("validate_directory",
		mcp.WithDescription("Validate a directory of Terraform files: run the terraform subcommand checks and audit module sources and embedded URLs for reachability."),
		mcp.WithString("path", mcp.Description("Path to the directory containing Terraform files."), mcp.Required()),
		mcp.WithNumber("workers", mcp.Description("Number of files validated concurrently (defaults to the server configuration).")),
		mcp.WithBoolean("skip_tool_checks", mcp.Description("Skip the terraform subcommand checks and only run the structural audit.")),
		mcp.WithString("probe_timeout", mcp.Description("Timeout for each reachability probe, as a duration string (e.g. '5s', '500ms').")),
	), h.handleValidateDirectory)

	return s
}

// StartMCPServer starts the validator MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
