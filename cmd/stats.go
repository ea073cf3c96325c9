package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dr-rompecabezas/langportal/internal/dashboard"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		var st dashboard.State
		req := st.Begin()
		st.Apply(dashboard.Load(cmd.Context(), e.client, req))

		if st.Failed() {
			return fmt.Errorf("%s: %w", st.Message(), st.Err())
		}

		fmt.Println("Last Study Session")
		if r := st.Recent(); r != nil {
			fmt.Printf("  %s  (%s)\n", r.ActivityName, r.CreatedAt.Local().Format("Jan 02, 2006 15:04"))
			fmt.Printf("  ✓ %d correct   ✗ %d wrong\n", r.CorrectCount, r.WrongCount)
		} else {
			fmt.Println("  No sessions yet.")
		}

		s := st.Stats()
		fmt.Println()
		fmt.Println("Study Progress")
		fmt.Printf("  %-18s %d\n", "Total Vocabulary", s.TotalVocabulary)
		fmt.Printf("  %-18s %d\n", "Words Studied", s.TotalWordsStudied)
		fmt.Printf("  %-18s %d\n", "Mastered Words", s.MasteredWords)
		fmt.Println()
		fmt.Println("Quick Stats")
		fmt.Printf("  %-18s %.0f%%\n", "Success Rate", s.SuccessRate*100)
		fmt.Printf("  %-18s %d\n", "Study Sessions", s.TotalSessions)
		fmt.Printf("  %-18s %d\n", "Active Groups", s.ActiveGroups)
		fmt.Printf("  %-18s %d days\n", "Study Streak", s.CurrentStreak)
		return nil
	},
}
