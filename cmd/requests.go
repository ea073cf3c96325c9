package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List recent portal API requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.RequestLogRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No API requests found.")
			return nil
		}

		fmt.Printf("%-19s  %-6s  %-40s  %6s  %8s  %s\n",
			"Time", "Method", "Path", "Status", "Latency", "Error")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range records {
			status := fmt.Sprintf("%d", r.StatusCode)
			if r.StatusCode == 0 {
				status = "-"
			}
			errMsg := ""
			if !r.Success {
				errMsg = truncate(r.ErrorMessage, 40)
			}
			fmt.Printf("%-19s  %-6s  %-40s  %6s  %6dms  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Method,
				truncate(r.Path, 40),
				status,
				r.Latency.Milliseconds(),
				errMsg,
			)
		}

		fmt.Printf("\n%d requests\n", len(records))
		return nil
	},
}

func init() {
	requestsCmd.Flags().IntP("limit", "n", 20, "Maximum number of requests to show")
}
