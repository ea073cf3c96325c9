package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dr-rompecabezas/langportal/internal/devserver"
	"github.com/dr-rompecabezas/langportal/internal/logging"
	"github.com/dr-rompecabezas/langportal/internal/store"
)

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Serve the portal API from built-in fixtures",
	Long:  "Runs a local portal API backed by in-memory fixtures so the TUI can be used without the real backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := loadConfig(cmd, store.Settings{})
		if err != nil {
			return err
		}
		// Logs go to stderr; nothing else owns the terminal here.
		log, err := logging.New(cfg.Env, cfg.Log.Level, "")
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Portal dev server listening on %s\n", addr)
		srv := devserver.New(devserver.DefaultFixtures(time.Now()), log)
		if err := srv.Run(ctx, addr); err != nil {
			return fmt.Errorf("dev server: %w", err)
		}
		return nil
	},
}

func init() {
	devserverCmd.Flags().String("addr", ":5000", "Listen address")
}
