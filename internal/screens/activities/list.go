// Package activities renders study activities and their launch page.
package activities

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// Lister fetches all study activities.
type Lister interface {
	StudyActivities(ctx context.Context) ([]api.StudyActivity, error)
}

type activitiesLoadedMsg struct {
	items []api.StudyActivity
	err   error
}

// ListScreen shows every study activity.
type ListScreen struct {
	lister  Lister
	items   []api.StudyActivity
	table   components.Table
	loading bool
	errMsg  string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// NewList creates the activity list.
func NewList(lister Lister) *ListScreen {
	return &ListScreen{
		lister: lister,
		table: components.NewTable([]components.Column{
			{Title: "#", Width: 4, Right: true},
			{Title: "Activity", Width: 24},
			{Title: "Description", Width: 44},
		}),
	}
}

func (s *ListScreen) Init() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	return func() tea.Msg {
		items, err := s.lister.StudyActivities(context.Background())
		return activitiesLoadedMsg{items: items, err: err}
	}
}

func (s *ListScreen) Title() string {
	return "Study Activities"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Open"},
		{Key: "l", Description: "Launch"},
		{Key: "r", Description: "Reload"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.items = nil
			s.errMsg = "Failed to load study activities"
		} else {
			s.items = msg.items
		}
		rows := make([][]string, len(s.items))
		for i, a := range s.items {
			rows[i] = []string{strconv.Itoa(a.ID), a.Name, a.Description}
		}
		s.table.SetRows(rows)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.Init()
		case "enter":
			if a, ok := s.selected(); ok {
				return s, router.Navigate(fmt.Sprintf("/study-activities/%d", a.ID), router.Push)
			}
			return s, nil
		case "l":
			if a, ok := s.selected(); ok {
				return s, router.Navigate(fmt.Sprintf("/study-activities/%d/launch", a.ID), router.Push)
			}
			return s, nil
		}
		s.table, _ = s.table.Update(msg)
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	head := "\n" + theme.Title.Render("Study Activities") + "\n\n"
	switch {
	case s.loading:
		return head + theme.Hint.Render("Loading...")
	case s.errMsg != "":
		return head + theme.ErrorText.Render(s.errMsg) + "\n\n" + theme.Hint.Render("Press r to retry")
	case len(s.items) == 0:
		return head + theme.Hint.Render("No study activities available")
	}
	return head + s.table.View()
}

func (s *ListScreen) selected() (api.StudyActivity, bool) {
	if s.table.Cursor < 0 || s.table.Cursor >= len(s.items) {
		return api.StudyActivity{}, false
	}
	return s.items[s.table.Cursor], true
}

// LaunchURL appends group_id to an activity URL, keeping any existing
// query parameters.
func LaunchURL(activityURL string, groupID int) (string, error) {
	u, err := url.Parse(activityURL)
	if err != nil {
		return "", fmt.Errorf("parse activity url: %w", err)
	}
	q := u.Query()
	q.Set("group_id", strconv.Itoa(groupID))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
