package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dr-rompecabezas/langportal/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "langportal",
	Short: "Terminal client for the language learning portal",
	Long:  "Lang Portal: browse vocabulary, word groups, study activities and study sessions from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LANGPORTAL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a langportal.yaml config file")
	rootCmd.PersistentFlags().String("api-url", "", "Portal API base URL (overrides config and saved settings)")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(requestsCmd)
	rootCmd.AddCommand(devserverCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LANGPORTAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
