package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// Getter fetches a single study session.
type Getter interface {
	StudySession(ctx context.Context, id int) (*api.StudySession, error)
}

type sessionLoadedMsg struct {
	id      int
	session *api.StudySession
	err     error
}

// ShowScreen displays one study session.
type ShowScreen struct {
	getter Getter
	id     int

	session *api.StudySession
	loading bool
	errMsg  string
}

var _ screen.Screen = (*ShowScreen)(nil)
var _ screen.KeyHintProvider = (*ShowScreen)(nil)

// NewShow creates the page for session id.
func NewShow(getter Getter, id int) *ShowScreen {
	return &ShowScreen{getter: getter, id: id}
}

func (s *ShowScreen) Init() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	id := s.id
	return func() tea.Msg {
		ss, err := s.getter.StudySession(context.Background(), id)
		if err == nil && ss == nil {
			err = screen.ErrEmptyResponse
		}
		return sessionLoadedMsg{id: id, session: ss, err: err}
	}
}

func (s *ShowScreen) Title() string {
	return fmt.Sprintf("Session #%d", s.id)
}

func (s *ShowScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Activity"},
		{Key: "g", Description: "Group"},
		{Key: "r", Description: "Reload"},
	}
}

func (s *ShowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		if msg.id != s.id {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.session = nil
			s.errMsg = "Failed to load session"
			return s, nil
		}
		s.session = msg.session
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.Init()
		case "a":
			if s.session != nil {
				return s, router.Navigate(fmt.Sprintf("/study-activities/%d", s.session.ActivityID), router.Push)
			}
		case "g":
			if s.session != nil {
				return s, router.Navigate(fmt.Sprintf("/groups/%d", s.session.GroupID), router.Push)
			}
		}
	}
	return s, nil
}

func (s *ShowScreen) View(width, height int) string {
	switch {
	case s.loading:
		return theme.Hint.Render("\n  Loading session...")
	case s.errMsg != "":
		return "\n" + theme.ErrorText.Render("  "+s.errMsg) + "\n\n" + theme.Hint.Render("  Press r to retry")
	case s.session == nil:
		return ""
	}

	ss := s.session
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Study Session #%d", ss.ID)))
	b.WriteString("\n\n")
	b.WriteString(field("Activity", ss.ActivityName))
	b.WriteString(field("Group", ss.GroupName))
	b.WriteString(field("Started", ss.StartTime.Local().Format(timeLayout)))
	b.WriteString(field("Ended", ss.EndTime.Local().Format(timeLayout)))
	b.WriteString(field("Duration", ss.EndTime.Sub(ss.StartTime).Round(time.Second).String()))
	b.WriteString(field("Review Items", fmt.Sprintf("%d", ss.ReviewItemsCount)))

	return "\n" + theme.Card.Width(min(width-2, 60)).Render(strings.TrimRight(b.String(), "\n"))
}

func field(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(14).Render(label) +
		theme.Body.Render(value) + "\n"
}
