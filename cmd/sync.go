package cmd

import (
	"fmt"

	"leetcode-tracker/core/config"
	"leetcode-tracker/core/leetcode"
	"leetcode-tracker/core/logger"
	"leetcode-tracker/feature/favorites"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	prevCSV      string
	favoriteSlug string
	autoPrev     bool
	dryRunSync   bool
	outputDir    string
)

// syncCmd fetches a list and writes the reconciled report.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch a curated list and merge it with the previous CSV",
	Long: `Fetch a curated LeetCode list and write leetcode_<slug>_<MMDDYYYY>.csv.

The session cookie is read from LEETCODE_SESSION (environment or .env file).

Examples:
  # First run for the default list
  sync

  # Merge with last week's report
  sync --prev-csv leetcode_facebook-thirty-days_01012024.csv

  # Custom list, merging with the newest report in the output directory
  sync --favorite-slug uber-three-months --auto-prev`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&prevCSV, "prev-csv", "", "Path to previous CSV file to merge with")
	syncCmd.Flags().StringVar(&favoriteSlug, "favorite-slug", "",
		fmt.Sprintf("Favorite slug to fetch questions from. Example options: %s. You can also use any custom slug.", joinSlugs(leetcode.WellKnownSlugs())))
	syncCmd.Flags().BoolVar(&autoPrev, "auto-prev", false, "Merge with the newest report in the output directory when --prev-csv is not set")
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Reconcile and print the summary without writing the CSV")
	syncCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the report (overrides REPORT_OUTPUT_DIR)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if cfg.LeetCode.Session == "" {
		l.Warn("LEETCODE_SESSION is not set; private lists will fail to load")
	}

	if outputDir != "" {
		cfg.Report.OutputDir = outputDir
	}

	slug := favoriteSlug
	if slug == "" {
		slug = cfg.LeetCode.FavoriteSlug
	}

	client := leetcode.NewClient(cfg.LeetCode, l)
	svc := favorites.NewService(client, client.BaseURL(), cfg.Report, l)

	result, err := svc.Sync(cmd.Context(), favorites.SyncRequest{
		Slug:         leetcode.ParseFavoriteSlug(slug),
		PreviousPath: prevCSV,
		AutoPrevious: autoPrev,
		DryRun:       dryRunSync,
	})
	if err != nil {
		return err
	}

	printSummary(l, result)
	return nil
}

// printSummary logs the reconciliation counts of a finished run.
func printSummary(l *zap.Logger, result *favorites.SyncResult) {
	s := result.Report.Summary
	l.Info("Reconciliation report",
		zap.String("favorite_slug", result.Slug.String()),
		zap.String("path", result.Path),
		zap.Bool("written", result.Written),
		zap.Int("total", s.Total),
		zap.Int("new", s.New),
		zap.Int("retained", s.Retained),
		zap.Int("reactivated", s.Reactivated),
		zap.Int("outdated", s.Outdated),
	)
}

func joinSlugs(slugs []leetcode.FavoriteSlug) string {
	out := ""
	for i, s := range slugs {
		if i > 0 {
			out += ", "
		}
		out += s.String()
	}
	return out
}
