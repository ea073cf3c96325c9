// Package groups renders word groups and the words inside a group.
package groups

import (
	"context"
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/listload"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/screens/listview"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
)

// FailureMessage is shown when a page of groups cannot be loaded.
const FailureMessage = "Failed to load groups"

// Lister fetches pages of groups.
type Lister interface {
	Groups(ctx context.Context, q api.GroupsQuery) (*api.Page[api.Group], error)
}

var columns = []components.Column{
	{Title: "Name", SortKey: "name", Width: 28},
	{Title: "Words", SortKey: "words_count", Width: 10, Right: true},
	{Title: "Description", Width: 36},
}

// ListScreen is the paginated, sortable group table.
type ListScreen struct {
	loader *listload.Loader[api.Group]
	table  components.Table
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// NewList creates a group table sorted by name ascending.
func NewList(lister Lister, lastResponseWins bool) *ListScreen {
	fetch := func(ctx context.Context, q listload.Query) (*api.Page[api.Group], error) {
		return lister.Groups(ctx, api.GroupsQuery{
			Page:          q.Page,
			SortKey:       q.SortKey,
			SortDirection: q.Direction,
		})
	}
	return &ListScreen{
		loader: listload.New(fetch, listload.Options{
			FailureMessage:   FailureMessage,
			SortKey:          "name",
			LastResponseWins: lastResponseWins,
		}),
		table: components.NewTable(columns),
	}
}

func (s *ListScreen) Init() tea.Cmd {
	s.sync()
	return listview.Run(s.loader, s.loader.Mount())
}

func (s *ListScreen) Title() string {
	return "Word Groups"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return listview.KeyHints()
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listload.Result[api.Group]:
		cmd := listview.Apply(s.loader, msg)
		s.sync()
		return s, cmd

	case tea.KeyMsg:
		key := msg.String()
		if key == "enter" {
			items := s.loader.Items()
			if s.table.Cursor < len(items) {
				return s, router.Navigate(fmt.Sprintf("/groups/%d", items[s.table.Cursor].ID), router.Push)
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
	return "\n" + listview.View(s.loader, "Word Groups", s.table, "No groups found", width)
}

func (s *ListScreen) sync() {
	listview.SyncTable(s.loader, &s.table)
	items := s.loader.Items()
	rows := make([][]string, len(items))
	for i, g := range items {
		rows[i] = []string{g.Name, strconv.Itoa(g.WordsCount), g.Description}
	}
	s.table.SetRows(rows)
}
