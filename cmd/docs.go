package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/detail"
	"github.com/lexdesk/lexdesk/internal/document"
	"github.com/lexdesk/lexdesk/internal/i18n"
)

var (
	docsQuery string
	docsRisk  string
	docsTab   string
	docsYes   bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Browse the document library",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List analyzed documents",
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a document's analysis",
	Long: `Prints one tab of the document detail view: summary, risk, clauses,
terms, or raw. Use --tab all to print every tab.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocsShow,
}

var docsFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a document's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := docsClient(cmd)
		if err != nil {
			return err
		}
		on, err := client.ToggleFavorite(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("toggling favorite: %s", api.Message(err))
		}
		if on {
			fmt.Printf("Document %s added to favorites.\n", args[0])
		} else {
			fmt.Printf("Document %s removed from favorites.\n", args[0])
		}
		return nil
	},
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDelete,
}

func init() {
	docsListCmd.Flags().StringVarP(&docsQuery, "query", "q", "", "match title or summary (case-insensitive)")
	docsListCmd.Flags().StringVar(&docsRisk, "risk", "", "only show this risk level (낮음, 중간, 높음)")
	docsShowCmd.Flags().StringVar(&docsTab, "tab", "summary", "tab to print: summary, risk, clauses, terms, raw, or all")
	docsDeleteCmd.Flags().BoolVarP(&docsYes, "yes", "y", false, "skip the confirmation prompt")

	docsCmd.AddCommand(docsListCmd, docsShowCmd, docsFavoriteCmd, docsDeleteCmd)
	rootCmd.AddCommand(docsCmd)
}

func docsClient(cmd *cobra.Command) (*api.Client, i18n.Translator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, i18n.Translator{}, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, i18n.Translator{}, err
	}
	client, _, err := signedInClient(cmd.Context(), cfg, log)
	if err != nil {
		return nil, i18n.Translator{}, err
	}
	return client, i18n.For(string(cfg.Language)), nil
}

func runDocsList(cmd *cobra.Command, args []string) error {
	client, tr, err := docsClient(cmd)
	if err != nil {
		return err
	}
	docs, err := client.ListContracts(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents: %s", api.Message(err))
	}
	docs = document.FilterSummaries(docs, docsQuery, docsRisk)
	if len(docs) == 0 {
		fmt.Println(tr.T("docs.empty"))
		return nil
	}

	fmt.Printf("%-6s %-4s %-8s %-5s %-18s %s\n", "ID", "FAV", "RISK", "SCORE", "CREATED", "TITLE")
	for _, d := range docs {
		fav := ""
		if d.IsFavorite {
			fav = "*"
		}
		score := "-"
		if d.RiskScore != nil {
			score = fmt.Sprint(*d.RiskScore)
		}
		created := ""
		if t, ok := document.ParseTimestamp(d.CreatedAt); ok {
			created = t.Format("2006-01-02 15:04")
		}
		title := d.Title
		if title == "" {
			title = tr.T("detail.untitled")
		}
		fmt.Printf("%-6s %-4s %-8s %-5s %-18s %s\n", d.ID, fav, tr.Risk(d.RiskLevel), score, created, title)
	}
	if verbose {
		fmt.Printf("\n%s\n", tr.F("docs.count", len(docs)))
	}
	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	tabs := []detail.Tab{}
	if docsTab == "all" {
		tabs = append(tabs, detail.Tabs...)
	} else {
		tab, ok := detail.ParseTab(docsTab)
		if !ok {
			return fmt.Errorf("unknown tab %q (valid: summary, risk, clauses, terms, raw, all)", docsTab)
		}
		tabs = append(tabs, tab)
	}

	client, tr, err := docsClient(cmd)
	if err != nil {
		return err
	}
	loaded, err := document.Load(cmd.Context(), client, args[0], nil)
	if err != nil {
		if verbose {
			return err
		}
		return errors.New(tr.T("detail.not_found"))
	}

	for i, tab := range tabs {
		if len(tabs) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("## %s\n\n", tr.T("tab."+string(tab)))
		}
		if err := detail.WriteText(cmd.OutOrStdout(), loaded.Model, tab, tr); err != nil {
			return err
		}
	}
	return nil
}

func runDocsDelete(cmd *cobra.Command, args []string) error {
	client, tr, err := docsClient(cmd)
	if err != nil {
		return err
	}
	if !docsYes {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s (%s)", tr.T("docs.delete_confirm"), args[0]),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				fmt.Println("Cancelled.")
				return nil
			}
			return err
		}
	}
	if err := client.DeleteContract(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting document: %s", api.Message(err))
	}
	fmt.Printf("Document %s deleted.\n", args[0])
	return nil
}
