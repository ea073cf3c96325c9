package groups

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/listload"
	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/screens/listview"
	"github.com/dr-rompecabezas/langportal/internal/screens/words"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// Getter fetches a group and its words.
type Getter interface {
	Group(ctx context.Context, id int) (*api.Group, error)
	GroupWords(ctx context.Context, groupID int, q api.WordsQuery) (*api.Page[api.Word], error)
}

type groupLoadedMsg struct {
	id    int
	group *api.Group
	err   error
}

// ShowScreen displays a group header above the group's word table.
type ShowScreen struct {
	getter Getter
	nav    *navigation.Store
	id     int

	group   *api.Group
	loading bool
	errMsg  string

	words *listload.Loader[api.Word]
	table components.Table
}

var _ screen.Screen = (*ShowScreen)(nil)
var _ screen.KeyHintProvider = (*ShowScreen)(nil)

// NewShow creates the page for group id.
func NewShow(getter Getter, nav *navigation.Store, id int, lastResponseWins bool) *ShowScreen {
	fetch := func(ctx context.Context, q listload.Query) (*api.Page[api.Word], error) {
		return getter.GroupWords(ctx, id, api.WordsQuery{
			Page:          q.Page,
			SortKey:       q.SortKey,
			SortDirection: q.Direction,
		})
	}
	return &ShowScreen{
		getter: getter,
		nav:    nav,
		id:     id,
		words: listload.New(fetch, listload.Options{
			FailureMessage:   words.FailureMessage,
			SortKey:          "kanji",
			LastResponseWins: lastResponseWins,
		}),
		table: components.NewTable(words.Columns),
	}
}

func (s *ShowScreen) Init() tea.Cmd {
	s.sync()
	return tea.Batch(s.loadGroup(), listview.Run(s.words, s.words.Mount()))
}

func (s *ShowScreen) loadGroup() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	id := s.id
	return func() tea.Msg {
		g, err := s.getter.Group(context.Background(), id)
		if err == nil && g == nil {
			err = screen.ErrEmptyResponse
		}
		return groupLoadedMsg{id: id, group: g, err: err}
	}
}

func (s *ShowScreen) Title() string {
	if s.group != nil {
		return s.group.Name
	}
	return "Group"
}

func (s *ShowScreen) KeyHints() []layout.KeyHint {
	return listview.KeyHints()
}

func (s *ShowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case groupLoadedMsg:
		if msg.id != s.id {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.group = nil
			s.errMsg = "Failed to load group"
			return s, nil
		}
		s.group = msg.group
		s.nav.SetGroup(&navigation.GroupRef{ID: msg.group.ID, Name: msg.group.Name})
		return s, nil

	case listload.Result[api.Word]:
		cmd := listview.Apply(s.words, msg)
		s.sync()
		return s, cmd

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "enter":
			items := s.words.Items()
			if s.table.Cursor < len(items) {
				return s, router.Navigate(fmt.Sprintf("/words/%d", items[s.table.Cursor].ID), router.Push)
			}
			return s, nil
		case "r":
			return s, tea.Batch(s.loadGroup(), listview.Run(s.words, s.words.Reload()))
		}
		if cmd, ok := listview.HandleKey(s.words, s.table, key); ok {
			s.sync()
			return s, cmd
		}
		s.table, _ = s.table.Update(msg)
	}
	return s, nil
}

func (s *ShowScreen) View(width, height int) string {
	switch {
	case s.loading:
		return theme.Hint.Render("\n  Loading group...")
	case s.errMsg != "":
		return "\n" + theme.ErrorText.Render("  "+s.errMsg) + "\n\n" + theme.Hint.Render("  Press r to retry")
	case s.group == nil:
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render(s.group.Name))
	b.WriteString("\n")
	if s.group.Description != "" {
		b.WriteString(theme.Subtitle.Render(s.group.Description))
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d words", s.group.WordsCount)))
	b.WriteString("\n\n")
	b.WriteString(listview.View(s.words, "Words in Group", s.table, "No words in this group", width))
	return b.String()
}

func (s *ShowScreen) sync() {
	listview.SyncTable(s.words, &s.table)
	s.table.SetRows(words.Rows(s.words.Items()))
}
