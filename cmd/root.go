package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lexdesk",
	Short: "Contract analysis desk for the legal-analysis service",
	Long: `lexdesk is the front end of the legal-analysis service. It serves a web
UI for uploading contracts, reviewing their risk analysis clause by clause,
and asking legal questions, and offers the same library from the terminal
and to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
