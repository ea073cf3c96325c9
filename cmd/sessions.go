package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Print one page of study sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		perPage, _ := cmd.Flags().GetInt("per-page")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if perPage <= 0 {
			perPage = e.cfg.Sessions.ItemsPerPage
		}

		res, err := e.client.StudySessions(cmd.Context(), api.SessionsQuery{Page: page, ItemsPerPage: perPage})
		if err != nil {
			return fmt.Errorf("fetch sessions: %w", err)
		}

		if len(res.Items) == 0 {
			fmt.Println("No study sessions found.")
			return nil
		}

		fmt.Printf("%-5s  %-20s  %-16s  %-16s  %-16s  %5s\n",
			"ID", "Activity", "Group", "Start", "End", "Items")
		fmt.Println(strings.Repeat("─", 90))

		for _, s := range res.Items {
			fmt.Printf("%-5d  %-20s  %-16s  %-16s  %-16s  %5d\n",
				s.ID,
				truncate(s.ActivityName, 20),
				truncate(s.GroupName, 16),
				s.StartTime.Local().Format("2006-01-02 15:04"),
				s.EndTime.Local().Format("2006-01-02 15:04"),
				s.ReviewItemsCount,
			)
		}

		fmt.Printf("\nPage %d of %d\n", page, res.TotalPages)
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntP("page", "p", 1, "Page number (1-based)")
	sessionsCmd.Flags().Int("per-page", 0, "Sessions per page (default from config)")
}
