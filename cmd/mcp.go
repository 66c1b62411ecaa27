package cmd

import (
	"github.com/WilliamVaron23/tf-pipeline-validator/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the tfvalidator MCP server",
	Long:  `Launch an MCP server that allows AI agents to validate Terraform directories via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logs stay on stderr so they never pollute stdio,
		// which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
