package activities

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// Getter fetches a single study activity.
type Getter interface {
	StudyActivity(ctx context.Context, id int) (*api.StudyActivity, error)
}

type activityLoadedMsg struct {
	id       int
	activity *api.StudyActivity
	err      error
}

func loadActivity(g Getter, id int) tea.Cmd {
	return func() tea.Msg {
		a, err := g.StudyActivity(context.Background(), id)
		if err == nil && a == nil {
			err = screen.ErrEmptyResponse
		}
		return activityLoadedMsg{id: id, activity: a, err: err}
	}
}

// ShowScreen describes one activity and offers to launch it.
type ShowScreen struct {
	getter Getter
	nav    *navigation.Store
	id     int

	activity *api.StudyActivity
	loading  bool
	errMsg   string
	buttons  []components.Button
}

var _ screen.Screen = (*ShowScreen)(nil)
var _ screen.KeyHintProvider = (*ShowScreen)(nil)

// NewShow creates the page for activity id.
func NewShow(getter Getter, nav *navigation.Store, id int) *ShowScreen {
	s := &ShowScreen{getter: getter, nav: nav, id: id}
	s.buttons = []components.Button{
		components.NewButton("Launch", "l", false, func() tea.Cmd {
			return router.Navigate(fmt.Sprintf("/study-activities/%d/launch", id), router.Push)
		}),
		components.NewButton("Sessions", "s", false, func() tea.Cmd {
			return router.Navigate(router.PathSessions, router.Root)
		}),
	}
	return s
}

func (s *ShowScreen) Init() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	s.setButtons(false)
	return loadActivity(s.getter, s.id)
}

func (s *ShowScreen) Title() string {
	if s.activity != nil {
		return s.activity.Name
	}
	return "Study Activity"
}

func (s *ShowScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "l", Description: "Launch"},
		{Key: "s", Description: "Sessions"},
		{Key: "r", Description: "Reload"},
	}
}

func (s *ShowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.id != s.id {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.activity = nil
			s.errMsg = "Failed to load study activity"
			return s, nil
		}
		s.activity = msg.activity
		s.nav.SetActivity(&navigation.ActivityRef{ID: msg.activity.ID, Title: msg.activity.Name})
		s.setButtons(true)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.Init()
		}
		var cmds []tea.Cmd
		for i := range s.buttons {
			var cmd tea.Cmd
			s.buttons[i], cmd = s.buttons[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return s, tea.Batch(cmds...)
	}
	return s, nil
}

func (s *ShowScreen) View(width, height int) string {
	switch {
	case s.loading:
		return theme.Hint.Render("\n  Loading study activity...")
	case s.errMsg != "":
		return "\n" + theme.ErrorText.Render("  "+s.errMsg) + "\n\n" + theme.Hint.Render("  Press r to retry")
	case s.activity == nil:
		return ""
	}

	a := s.activity
	var b strings.Builder
	b.WriteString(theme.Title.Render(a.Name))
	b.WriteString("\n\n")
	if a.Description != "" {
		b.WriteString(theme.Body.Width(min(width-8, 70)).Render(a.Description))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render(a.URL))
	b.WriteString("\n\n")

	views := make([]string, len(s.buttons))
	for i, btn := range s.buttons {
		views[i] = btn.View()
	}
	b.WriteString(strings.Join(views, "  "))

	return "\n" + theme.Card.Width(min(width-2, 80)).Render(b.String())
}

func (s *ShowScreen) setButtons(active bool) {
	for i := range s.buttons {
		s.buttons[i].Active = active
	}
}
