package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/lexdesk/lexdesk/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the signed-in user's document library and legal Q&A to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		client, user, err := signedInClient(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		log.WithField("user", user.Email).Info("lexdesk MCP server started on stdio")

		srv := mcpserver.NewServer(client, string(cfg.Language), log)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
