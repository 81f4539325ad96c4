package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lexdesk configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the backend, language, web port, and Google sign-in, and writes a .lexdesk.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
