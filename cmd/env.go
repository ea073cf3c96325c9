package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/config"
	"github.com/dr-rompecabezas/langportal/internal/logging"
	"github.com/dr-rompecabezas/langportal/internal/store"
)

// env holds what every portal-facing command needs.
type env struct {
	cfg    *config.Config
	store  *store.Store
	log    *zap.Logger
	client *api.Client
}

// setup opens the store, loads config on top of the saved settings and
// builds the API client. Callers must Close the env.
func setup(cmd *cobra.Command) (*env, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	saved, err := st.SettingsRepo().Get(cmd.Context())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("read saved settings: %w", err)
	}

	cfg, err := loadConfig(cmd, saved)
	if err != nil {
		st.Close()
		return nil, err
	}

	log, err := logging.New(cfg.Env, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(log),
		api.WithValidation(cfg.API.Validate),
		api.WithRecorder(st.RequestLogRepo()),
	)

	return &env{cfg: cfg, store: st, log: log, client: client}, nil
}

func (e *env) Close() {
	_ = e.log.Sync()
	e.store.Close()
}

// loadConfig applies --config and --api-url over the saved settings.
func loadConfig(cmd *cobra.Command, saved store.Settings) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	overrides := map[string]any{}
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		overrides["api.base_url"] = u
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: file,
		Persisted:  saved,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
