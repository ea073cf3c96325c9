package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dr-rompecabezas/langportal/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved settings and the request log",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if !force {
			fmt.Printf("This clears saved settings and the request log in %s.\nContinue? [y/N] ", dbPath)
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.SettingsRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear settings: %w", err)
		}
		if err := st.RequestLogRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear request log: %w", err)
		}

		fmt.Println("Saved settings and request log cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}

func openStore(dbPath string) (*store.Store, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
