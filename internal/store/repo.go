package store

import (
	"context"
	"time"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

// Settings are the user-editable values persisted between runs.
// Zero fields are unset and fall through to config defaults.
type Settings struct {
	APIBaseURL      string
	SessionsPerPage int
}

// SettingsRepo persists Settings.
type SettingsRepo interface {
	// Get returns the stored settings; unset keys stay zero.
	Get(ctx context.Context) (Settings, error)

	// Save stores every non-zero field of s.
	Save(ctx context.Context, s Settings) error

	// Clear deletes all stored settings.
	Clear(ctx context.Context) error
}

// RequestRecord is one logged API request.
type RequestRecord struct {
	ID           int64
	RequestID    string
	Method       string
	Path         string
	StatusCode   int
	Latency      time.Duration
	Success      bool
	ErrorMessage string
	Timestamp    time.Time
}

// RequestLogRepo is an append-only log of API requests.
type RequestLogRepo interface {
	api.Recorder

	// Recent returns up to limit records, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]RequestRecord, error)

	// Clear deletes every record.
	Clear(ctx context.Context) error
}
