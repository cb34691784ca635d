package cmd

import (
	"fmt"

	"leetcode-tracker/core/config"
	"leetcode-tracker/core/leetcode"
	"leetcode-tracker/core/logger"
	"leetcode-tracker/feature/favorites"

	"github.com/spf13/cobra"
)

var (
	// Flags for the reconcile command
	questionsFile    string
	reconcilePrevCSV string
	reconcileSlug    string
	reconcileDryRun  bool
	reconcileOutDir  string
)

// reconcileCmd runs a sync from a saved GraphQL response instead of the network.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a saved favoriteQuestionList response with the previous CSV",
	Long: `Reconcile a favoriteQuestionList GraphQL response saved from the browser
(Network tab, "Copy response") with the previous CSV, without calling LeetCode.

Examples:
  reconcile --questions response.json --prev-csv leetcode_facebook-thirty-days_01012024.csv
  reconcile --questions response.json --favorite-slug uber-three-months --dry-run`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&questionsFile, "questions", "", "Path to the saved GraphQL response (required)")
	reconcileCmd.Flags().StringVar(&reconcilePrevCSV, "prev-csv", "", "Path to previous CSV file to merge with")
	reconcileCmd.Flags().StringVar(&reconcileSlug, "favorite-slug", "", "Favorite slug used to name the report")
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Reconcile and print the summary without writing the CSV")
	reconcileCmd.Flags().StringVar(&reconcileOutDir, "output-dir", "", "Directory for the report (overrides REPORT_OUTPUT_DIR)")
	_ = reconcileCmd.MarkFlagRequired("questions")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if reconcileOutDir != "" {
		cfg.Report.OutputDir = reconcileOutDir
	}

	slug := reconcileSlug
	if slug == "" {
		slug = cfg.LeetCode.FavoriteSlug
	}

	fetcher := &leetcode.FileFetcher{Path: questionsFile}
	svc := favorites.NewService(fetcher, cfg.LeetCode.BaseURL, cfg.Report, l)

	result, err := svc.Sync(cmd.Context(), favorites.SyncRequest{
		Slug:         leetcode.ParseFavoriteSlug(slug),
		PreviousPath: reconcilePrevCSV,
		DryRun:       reconcileDryRun,
	})
	if err != nil {
		return err
	}

	printSummary(l, result)
	return nil
}
