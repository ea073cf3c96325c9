package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	keyAPIBaseURL      = "api.base_url"
	keySessionsPerPage = "sessions.items_per_page"
)

// settingsRepo implements SettingsRepo as key/value rows.
type settingsRepo struct {
	db *sqlx.DB
}

type settingRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func (r *settingsRepo) Get(ctx context.Context) (Settings, error) {
	var rows []settingRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT key, value FROM settings`); err != nil {
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}

	var s Settings
	for _, row := range rows {
		switch row.Key {
		case keyAPIBaseURL:
			s.APIBaseURL = row.Value
		case keySessionsPerPage:
			n, err := strconv.Atoi(row.Value)
			if err != nil {
				return Settings{}, fmt.Errorf("setting %s: %w", row.Key, err)
			}
			s.SessionsPerPage = n
		}
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s Settings) error {
	values := map[string]string{}
	if s.APIBaseURL != "" {
		values[keyAPIBaseURL] = s.APIBaseURL
	}
	if s.SessionsPerPage > 0 {
		values[keySessionsPerPage] = strconv.Itoa(s.SessionsPerPage)
	}
	if len(values) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UnixMilli()
	for k, v := range values {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			k, v, now)
		if err != nil {
			return fmt.Errorf("save setting %s: %w", k, err)
		}
	}
	return tx.Commit()
}

func (r *settingsRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings`); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}
