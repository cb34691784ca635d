package cmd

import (
	"fmt"
	"os"

	"leetcode-tracker/core/logger"
	"leetcode-tracker/feature/favorites"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "leetcode-tracker",
	Short: "Track curated LeetCode question lists over time",
	Long: `leetcode-tracker fetches a curated LeetCode list and reconciles it with the
previous CSV report, writing a dated CSV that marks questions removed from the
list as outdated while keeping every column you added by hand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format, debug level for ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			kind := favorites.KindOf(err)
			l.Error(failureMessage(kind), zap.String("kind", string(kind)), zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Printf("An error occurred: %v\n", err)
		}
		os.Exit(1)
	}
}

// failureMessage returns the one-line summary logged for a failed command.
func failureMessage(kind favorites.Kind) string {
	switch kind {
	case favorites.KindFetch:
		return "Failed to fetch questions"
	case favorites.KindSnapshotRead:
		return "Failed to read previous CSV"
	case favorites.KindWrite:
		return "Failed to write CSV"
	case favorites.KindInvalidInput:
		return "Invalid input"
	default:
		return "Command failed"
	}
}
