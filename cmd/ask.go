package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/internal/api"
)

var askLanguage string

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the legal Q&A service a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		client, _, err := signedInClient(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}

		lang := askLanguage
		if lang == "" {
			lang = string(cfg.Language)
		}
		res, err := client.Ask(cmd.Context(), strings.Join(args, " "), lang)
		if err != nil {
			return fmt.Errorf("asking: %s", api.Message(err))
		}
		fmt.Println(res.Answer)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askLanguage, "lang", "", "answer language (ko, en, vi; defaults to config)")
	rootCmd.AddCommand(askCmd)
}
