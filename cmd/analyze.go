package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/document"
	"github.com/lexdesk/lexdesk/internal/progress"
)

var (
	analyzeLanguage    string
	analyzeConcurrency int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <glob...>",
	Short: "Analyze contract files and save them to the library",
	Long: `Uploads every file matching the given patterns to the analysis service.
Patterns support ** (for example "contracts/**/*.pdf"). Each analyzed file is
saved to your library.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLanguage, "lang", "", "analysis language (ko, en, vi; defaults to config)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 2, "max parallel uploads")
	rootCmd.AddCommand(analyzeCmd)
}

type analyzeResult struct {
	path  string
	model document.ViewModel
	err   error
}

func (r analyzeResult) outcome() progress.Outcome {
	return progress.Outcome{
		Path:  r.path,
		Level: r.model.RiskProfile.OverallRiskLevel,
		Score: r.model.RiskProfile.OverallRiskScore,
		Err:   r.err,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %v", args)
	}

	client, _, err := signedInClient(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	lang := analyzeLanguage
	if lang == "" {
		lang = string(cfg.Language)
	}
	if analyzeConcurrency <= 0 {
		analyzeConcurrency = 1
	}

	reporter := progress.NewReporter()
	reporter.Start(len(files))

	results := make([]analyzeResult, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(analyzeConcurrency)
	for i, path := range files {
		g.Go(func() error {
			doc, err := analyzeFile(ctx, client, path, lang)
			res := analyzeResult{path: path, err: err}
			if err == nil {
				res.model = document.FromAnalysis(doc)
			} else {
				log.WithError(err).WithField("file", path).Debug("analysis failed")
			}

			results[i] = res
			reporter.Done(res.outcome())
			// Per-file failures are reported in the summary, not fatal.
			return ctx.Err()
		})
	}
	err = g.Wait()
	reporter.Finish()
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.err != nil {
			fmt.Printf("FAIL  %s: %s\n", r.path, api.Message(r.err))
			continue
		}
		title := r.path
		if r.model.Summary.Title != nil {
			title = *r.model.Summary.Title
		}
		fmt.Printf("OK    %s -> #%s %s (%s %d)\n", r.path, r.model.DocumentID, title,
			r.model.RiskProfile.OverallRiskLevel, r.model.RiskProfile.OverallRiskScore)
	}
	if failed := reporter.Tally().Failed(); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func analyzeFile(ctx context.Context, client *api.Client, path, lang string) (*api.AnalysisDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return client.FullInterpret(ctx, filepath.Base(path), f, lang)
}

// expandGlobs resolves each pattern against the filesystem and returns the
// matching regular files, deduplicated and sorted.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() || seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
