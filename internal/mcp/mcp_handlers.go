package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/WilliamVaron23/tf-pipeline-validator/core"
	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleValidateDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if w := request.GetInt("workers", 0); w > 0 {
		cfg.Workers = w
	}
	cfg.SkipToolChecks = request.GetBool("skip_tool_checks", cfg.SkipToolChecks)
	if p := request.GetString("probe_timeout", ""); p != "" {
		if err := contract.RevalidateProbeTimeout(cfg, p); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid probe timeout: %v", err)), nil
		}
	}
	if err := contract.RevalidateTarget(cfg, request.GetString("path", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid target directory: %v", err)), nil
	}

	client := contract.NewLocalTerraformClient()
	prober := contract.NewHTTPProber(cfg.ProbeTimeout)
	report, err := core.ValidateDirectory(ctx, cfg, client, prober)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation failed: %v", err)), nil
	}

	enriched := schema.EnrichReport(report)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
