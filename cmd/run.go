package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dr-rompecabezas/langportal/internal/app"
	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/screen"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.log.Info("starting TUI", zap.String("api", e.cfg.API.BaseURL))

	return app.Run(app.Deps{
		Portal:   e.client,
		Settings: e.store.SettingsRepo(),
		Nav:      navigation.NewStore(),
		Copier:   screen.SystemClipboard,
		Config:   e.cfg,
		Logger:   e.log,
	})
}
