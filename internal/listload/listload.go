// Package listload drives the fetch lifecycle of a paginated, sortable list.
//
// A Loader never performs I/O on its own. Each trigger (Mount, SetPage,
// ToggleSort, Reload) moves the loader to Loading and returns a Request;
// the caller executes it with Run, off the UI loop, and feeds the Result
// back through Apply.
package listload

import (
	"context"

	"github.com/google/uuid"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

// Status is the state of a Loader.
type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Query selects a page of a sorted listing. Page is 1-based.
type Query struct {
	Page      int
	SortKey   string
	Direction api.SortDirection
}

// FetchFunc loads one page. The page size is a property of the func.
type FetchFunc[T any] func(ctx context.Context, q Query) (*api.Page[T], error)

// Options configure a Loader.
type Options struct {
	// FailureMessage replaces any fetch error in the user-facing state.
	FailureMessage string
	// SortKey and Direction seed the initial query.
	SortKey   string
	Direction api.SortDirection
	// LastResponseWins applies every result regardless of arrival order.
	// By default only the result of the latest trigger is applied.
	LastResponseWins bool
}

// Request is a pending fetch produced by a trigger.
type Request struct {
	LoaderID string
	Seq      uint64
	Query    Query
}

// Result carries the outcome of a Request back to the Loader.
type Result[T any] struct {
	LoaderID string
	Seq      uint64
	Query    Query
	Page     *api.Page[T]
	Err      error
}

// Loader holds list state for one view.
type Loader[T any] struct {
	id    string
	seq   uint64
	fetch FetchFunc[T]
	opts  Options

	status     Status
	query      Query
	items      []T
	totalPages int
	message    string
	err        error
}

// New creates an idle Loader on page 1.
func New[T any](fetch FetchFunc[T], opts Options) *Loader[T] {
	if opts.Direction == "" {
		opts.Direction = api.SortAsc
	}
	if opts.FailureMessage == "" {
		opts.FailureMessage = "Failed to load data"
	}
	return &Loader[T]{
		id:    uuid.NewString(),
		fetch: fetch,
		opts:  opts,
		query: Query{Page: 1, SortKey: opts.SortKey, Direction: opts.Direction},
	}
}

// ID identifies this loader in Requests and Results.
func (l *Loader[T]) ID() string { return l.id }

func (l *Loader[T]) Status() Status { return l.status }
func (l *Loader[T]) Query() Query   { return l.query }
func (l *Loader[T]) Items() []T     { return l.items }

// TotalPages is zero until a page has loaded successfully.
func (l *Loader[T]) TotalPages() int { return l.totalPages }

// Message is the user-facing failure message, empty unless Failed.
func (l *Loader[T]) Message() string { return l.message }

// Err is the underlying error of the last failed fetch.
func (l *Loader[T]) Err() error { return l.err }

// Mount starts the initial load.
func (l *Loader[T]) Mount() Request {
	return l.begin()
}

// Reload refetches the current query.
func (l *Loader[T]) Reload() Request {
	return l.begin()
}

// SetPage moves to page p. It reports false, and does nothing, when p is
// the current page or lies outside [1, TotalPages] once that is known.
func (l *Loader[T]) SetPage(p int) (Request, bool) {
	if p < 1 || p == l.query.Page {
		return Request{}, false
	}
	if l.totalPages > 0 && p > l.totalPages {
		return Request{}, false
	}
	l.query.Page = p
	return l.begin(), true
}

// NextPage is SetPage(current+1).
func (l *Loader[T]) NextPage() (Request, bool) {
	return l.SetPage(l.query.Page + 1)
}

// PrevPage is SetPage(current-1).
func (l *Loader[T]) PrevPage() (Request, bool) {
	return l.SetPage(l.query.Page - 1)
}

// ToggleSort activates key. Toggling the active key flips the direction;
// any other key becomes active in ascending order. The page is kept.
func (l *Loader[T]) ToggleSort(key string) Request {
	if key == l.query.SortKey {
		l.query.Direction = l.query.Direction.Flip()
	} else {
		l.query.SortKey = key
		l.query.Direction = api.SortAsc
	}
	return l.begin()
}

// Clamp pulls the current page back into [1, TotalPages] after the page
// count shrank. It reports false when no refetch is needed.
func (l *Loader[T]) Clamp() (Request, bool) {
	if l.status != Loaded || l.totalPages == 0 || l.query.Page <= l.totalPages {
		return Request{}, false
	}
	l.query.Page = l.totalPages
	return l.begin(), true
}

// Run executes req. It touches no Loader state and is safe to call from
// any goroutine.
func (l *Loader[T]) Run(ctx context.Context, req Request) Result[T] {
	page, err := l.fetch(ctx, req.Query)
	if err == nil && page == nil {
		page = &api.Page[T]{}
	}
	return Result[T]{
		LoaderID: req.LoaderID,
		Seq:      req.Seq,
		Query:    req.Query,
		Page:     page,
		Err:      err,
	}
}

// Apply folds res into the loader state. It reports false when res was
// dropped, either because it belongs to another loader or because a newer
// request superseded it.
func (l *Loader[T]) Apply(res Result[T]) bool {
	if res.LoaderID != l.id {
		return false
	}
	if !l.opts.LastResponseWins && res.Seq != l.seq {
		return false
	}

	if res.Err != nil {
		l.status = Failed
		l.items = nil
		l.totalPages = 0
		l.message = l.opts.FailureMessage
		l.err = res.Err
		return true
	}

	l.status = Loaded
	l.items = res.Page.Items
	l.totalPages = res.Page.TotalPages
	l.message = ""
	l.err = nil
	return true
}

func (l *Loader[T]) begin() Request {
	l.seq++
	l.status = Loading
	return Request{LoaderID: l.id, Seq: l.seq, Query: l.query}
}
