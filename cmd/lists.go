package cmd

import (
	"fmt"

	"leetcode-tracker/core/leetcode"

	"github.com/spf13/cobra"
)

// listsCmd prints the well-known favorite slugs.
var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "List the well-known curated lists",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, slug := range leetcode.WellKnownSlugs() {
			marker := ""
			if slug == leetcode.DefaultFavoriteSlug {
				marker = " (default)"
			}
			fmt.Fprintf(out, "%s%s\n", slug, marker)
		}
	},
}

func init() {
	RootCmd.AddCommand(listsCmd)
}
