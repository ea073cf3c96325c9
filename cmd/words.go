package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print one page of vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		sortKey, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("desc")

		if !slices.Contains(api.WordSortKeys, sortKey) {
			return fmt.Errorf("unknown sort key %q (use one of %s)", sortKey, strings.Join(api.WordSortKeys, ", "))
		}
		dir := api.SortAsc
		if desc {
			dir = api.SortDesc
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		res, err := e.client.Words(cmd.Context(), api.WordsQuery{Page: page, SortKey: sortKey, SortDirection: dir})
		if err != nil {
			return fmt.Errorf("fetch words: %w", err)
		}

		if len(res.Items) == 0 {
			fmt.Println("No words found.")
			return nil
		}

		fmt.Printf("%-5s  %-12s  %-16s  %-24s  %7s  %5s\n",
			"ID", "Kanji", "Romaji", "English", "Correct", "Wrong")
		fmt.Println(strings.Repeat("─", 80))

		for _, w := range res.Items {
			fmt.Printf("%-5d  %-12s  %-16s  %-24s  %7d  %5d\n",
				w.ID, w.Kanji, w.Romaji, truncate(w.English, 24), w.CorrectCount, w.WrongCount)
		}

		fmt.Printf("\nPage %d of %d\n", page, res.TotalPages)
		return nil
	},
}

func init() {
	wordsCmd.Flags().IntP("page", "p", 1, "Page number (1-based)")
	wordsCmd.Flags().StringP("sort", "s", "kanji", "Sort key: "+strings.Join(api.WordSortKeys, ", "))
	wordsCmd.Flags().Bool("desc", false, "Sort descending")
}

// truncate shortens s to n runes with a trailing ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
