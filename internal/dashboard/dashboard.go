// Package dashboard aggregates the two dashboard resources, the most recent
// study session and the summary statistics, into one loading state.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

// FailureMessage is shown when either dashboard resource fails to load.
const FailureMessage = "Failed to load dashboard data"

// Fetcher is the slice of the API client the dashboard needs.
type Fetcher interface {
	RecentSession(ctx context.Context) (*api.RecentSession, error)
	Stats(ctx context.Context) (*api.StudyStats, error)
}

// Request identifies one load started by State.Begin.
type Request struct {
	StateID string
	Seq     uint64
}

// Result is the settled outcome of both calls.
type Result struct {
	StateID string
	Seq     uint64
	Recent *api.RecentSession
	Stats  *api.StudyStats
	Err    error
}

// State is the dashboard's view state.
type State struct {
	id  string
	seq uint64

	loading bool
	recent  *api.RecentSession
	stats   *api.StudyStats
	message string
	err     error
}

// Loading is true from Begin until both calls have settled.
func (s *State) Loading() bool { return s.loading }

// Failed reports whether the last load failed.
func (s *State) Failed() bool { return s.message != "" }

// Message is FailureMessage after a failure, empty otherwise.
func (s *State) Message() string { return s.message }

// Err is the first error of the last failed load.
func (s *State) Err() error { return s.err }

// Recent returns the latest session. Nil with Ready() true means the
// learner has no sessions yet.
func (s *State) Recent() *api.RecentSession { return s.recent }

// Stats returns the loaded statistics, nil unless Ready.
func (s *State) Stats() *api.StudyStats { return s.stats }

// Ready reports whether data is available to render.
func (s *State) Ready() bool {
	return !s.loading && s.message == "" && s.stats != nil
}

// Begin marks the state as loading and returns the request the matching
// Load must carry. Each State tags its requests with its own id, so results
// from another State are never applied.
func (s *State) Begin() Request {
	if s.id == "" {
		s.id = uuid.NewString()
	}
	s.seq++
	s.loading = true
	return Request{StateID: s.id, Seq: s.seq}
}

// Load fetches both resources concurrently and waits for both to settle.
// A failure of one call does not cancel the other.
func Load(ctx context.Context, f Fetcher, req Request) Result {
	res := Result{StateID: req.StateID, Seq: req.Seq}

	var g errgroup.Group
	g.Go(func() error {
		recent, err := f.RecentSession(ctx)
		res.Recent = recent
		return err
	})
	g.Go(func() error {
		stats, err := f.Stats(ctx)
		res.Stats = stats
		return err
	})
	res.Err = g.Wait()
	return res
}

// Apply folds res into the state. Results from another State or from a
// superseded Begin are dropped and Apply reports false.
func (s *State) Apply(res Result) bool {
	if res.StateID != s.id || res.Seq != s.seq {
		return false
	}
	s.loading = false

	if res.Err != nil {
		s.recent = nil
		s.stats = nil
		s.message = FailureMessage
		s.err = res.Err
		return true
	}

	s.recent = res.Recent
	s.stats = res.Stats
	s.message = ""
	s.err = nil
	return true
}
