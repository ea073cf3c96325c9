// Package sessions renders the study-session history.
package sessions

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/listload"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/screens/listview"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
)

// FailureMessage is shown when a page of sessions cannot be loaded.
const FailureMessage = "Failed to load sessions"

const timeLayout = "2006-01-02 15:04"

// Lister fetches pages of study sessions.
type Lister interface {
	StudySessions(ctx context.Context, q api.SessionsQuery) (*api.Page[api.StudySession], error)
}

var columns = []components.Column{
	{Title: "ID", SortKey: "id", Width: 6, Right: true},
	{Title: "Activity", SortKey: "activity_name", Width: 20},
	{Title: "Group", SortKey: "group_name", Width: 16},
	{Title: "Start", SortKey: "start_time", Width: 18},
	{Title: "End", SortKey: "end_time", Width: 18},
	{Title: "Items", SortKey: "review_items_count", Width: 9, Right: true},
}

// ListScreen pages through study sessions. The endpoint does not sort, so
// the fetched page is ordered locally and sort keys never trigger a fetch.
type ListScreen struct {
	loader *listload.Loader[api.StudySession]
	table  components.Table

	sortKey string
	desc    bool
	rows    []api.StudySession
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// NewList creates the session table with perPage rows per page, sorted by
// start time, newest first.
func NewList(lister Lister, perPage int, lastResponseWins bool) *ListScreen {
	fetch := func(ctx context.Context, q listload.Query) (*api.Page[api.StudySession], error) {
		return lister.StudySessions(ctx, api.SessionsQuery{Page: q.Page, ItemsPerPage: perPage})
	}
	return &ListScreen{
		loader: listload.New(fetch, listload.Options{
			FailureMessage:   FailureMessage,
			LastResponseWins: lastResponseWins,
		}),
		table:   components.NewTable(columns),
		sortKey: "start_time",
		desc:    true,
	}
}

func (s *ListScreen) Init() tea.Cmd {
	s.sync()
	return listview.Run(s.loader, s.loader.Mount())
}

func (s *ListScreen) Title() string {
	return "Study Sessions"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return append(listview.KeyHints(),
		layout.KeyHint{Key: "a", Description: "Activity"},
		layout.KeyHint{Key: "g", Description: "Group"},
	)
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listload.Result[api.StudySession]:
		cmd := listview.Apply(s.loader, msg)
		s.sync()
		return s, cmd

	case tea.KeyMsg:
		key := msg.String()
		if n, err := strconv.Atoi(key); err == nil {
			s.toggleSort(s.table.SortKeyAt(n))
			return s, nil
		}

		sel, ok := s.selected()
		switch key {
		case "enter":
			if ok {
				return s, router.Navigate(fmt.Sprintf("/sessions/%d", sel.ID), router.Push)
			}
			return s, nil
		case "a":
			if ok {
				return s, router.Navigate(fmt.Sprintf("/study-activities/%d", sel.ActivityID), router.Push)
			}
			return s, nil
		case "g":
			if ok {
				return s, router.Navigate(fmt.Sprintf("/groups/%d", sel.GroupID), router.Push)
			}
			return s, nil
		}

		if cmd, ok := listview.HandleKey(s.loader, s.table, key); ok {
			s.sync()
			return s, cmd
		}
		s.table, _ = s.table.Update(msg)
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	return "\n" + listview.View(s.loader, "Study Sessions", s.table, "No study sessions yet", width)
}

func (s *ListScreen) toggleSort(key string) {
	if key == "" {
		return
	}
	if key == s.sortKey {
		s.desc = !s.desc
	} else {
		s.sortKey = key
		s.desc = false
	}
	s.sync()
}

func (s *ListScreen) selected() (api.StudySession, bool) {
	if s.table.Cursor < 0 || s.table.Cursor >= len(s.rows) {
		return api.StudySession{}, false
	}
	return s.rows[s.table.Cursor], true
}

func (s *ListScreen) sync() {
	s.rows = SortSessions(s.loader.Items(), s.sortKey, s.desc)
	s.table.SortKey = s.sortKey
	s.table.Descending = s.desc

	cells := make([][]string, len(s.rows))
	for i, ss := range s.rows {
		cells[i] = []string{
			strconv.Itoa(ss.ID),
			ss.ActivityName,
			ss.GroupName,
			ss.StartTime.Local().Format(timeLayout),
			ss.EndTime.Local().Format(timeLayout),
			strconv.Itoa(ss.ReviewItemsCount),
		}
	}
	s.table.SetRows(cells)
}

// SortSessions returns a sorted copy of items. Unknown keys keep the
// server order. Ties keep their relative order.
func SortSessions(items []api.StudySession, key string, desc bool) []api.StudySession {
	out := slices.Clone(items)

	var less func(a, b api.StudySession) int
	switch key {
	case "id":
		less = func(a, b api.StudySession) int { return cmp.Compare(a.ID, b.ID) }
	case "activity_name":
		less = func(a, b api.StudySession) int { return strings.Compare(a.ActivityName, b.ActivityName) }
	case "group_name":
		less = func(a, b api.StudySession) int { return strings.Compare(a.GroupName, b.GroupName) }
	case "start_time":
		less = func(a, b api.StudySession) int { return a.StartTime.Compare(b.StartTime) }
	case "end_time":
		less = func(a, b api.StudySession) int { return a.EndTime.Compare(b.EndTime) }
	case "review_items_count":
		less = func(a, b api.StudySession) int { return cmp.Compare(a.ReviewItemsCount, b.ReviewItemsCount) }
	default:
		return out
	}

	slices.SortStableFunc(out, func(a, b api.StudySession) int {
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
	return out
}
