package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	dash "github.com/dr-rompecabezas/langportal/internal/dashboard"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// DashboardScreen shows the latest study session and overall statistics.
type DashboardScreen struct {
	fetcher dash.Fetcher
	state   dash.State
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(fetcher dash.Fetcher) *DashboardScreen {
	return &DashboardScreen{fetcher: fetcher}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return s.load()
}

func (s *DashboardScreen) load() tea.Cmd {
	req := s.state.Begin()
	return func() tea.Msg {
		return dash.Load(context.Background(), s.fetcher, req)
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.state.Recent() != nil {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Last session"},
			layout.KeyHint{Key: "g", Description: "Group"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "s", Description: "Start studying"},
		layout.KeyHint{Key: "r", Description: "Reload"},
	)
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dash.Result:
		s.state.Apply(msg)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.load()
		case "s":
			return s, router.Navigate(router.PathActivities, router.Root)
		case "enter":
			if r := s.state.Recent(); r != nil {
				return s, router.Navigate(fmt.Sprintf("/sessions/%d", r.ID), router.Push)
			}
		case "g":
			if r := s.state.Recent(); r != nil {
				return s, router.Navigate(fmt.Sprintf("/groups/%d", r.GroupID), router.Push)
			}
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.state.Loading() {
		return theme.Hint.Render("\n  Loading dashboard...")
	}
	if s.state.Failed() {
		return "\n" + theme.ErrorText.Render("  "+s.state.Message()) +
			"\n\n" + theme.Hint.Render("  Press r to retry")
	}
	if !s.state.Ready() {
		return ""
	}

	cardWidth := max(width-4, 40)
	if !layout.IsCompactWidth(width + layout.SidebarWidth) {
		cardWidth = max((width-6)/2, 36)
	}

	recent := theme.Card.Width(cardWidth).Render(s.renderRecent())
	progress := theme.Card.Width(cardWidth).Render(s.renderProgress(cardWidth - 6))
	quick := theme.Card.Width(cardWidth).Render(s.renderQuickStats())

	var top string
	if layout.IsCompactWidth(width + layout.SidebarWidth) {
		top = lipgloss.JoinVertical(lipgloss.Left, recent, progress)
	} else {
		top = lipgloss.JoinHorizontal(lipgloss.Top, recent, " ", progress)
	}
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, top, quick)
}

func (s *DashboardScreen) renderRecent() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Last Study Session"))
	b.WriteString("\n\n")

	r := s.state.Recent()
	if r == nil {
		b.WriteString(theme.Hint.Render("No sessions yet. Start studying!"))
		return b.String()
	}

	b.WriteString(theme.Body.Render(r.ActivityName))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(r.CreatedAt.Local().Format("Jan 02, 2006 15:04")))
	b.WriteString("\n\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("✓ %d correct", r.CorrectCount)))
	b.WriteString("   ")
	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("✗ %d wrong", r.WrongCount)))
	return b.String()
}

func (s *DashboardScreen) renderProgress(barWidth int) string {
	st := s.state.Stats()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Study Progress"))
	b.WriteString("\n\n")
	b.WriteString(statLine("Total Vocabulary", fmt.Sprintf("%d", st.TotalVocabulary)))
	b.WriteString(statLine("Words Studied", fmt.Sprintf("%d", st.TotalWordsStudied)))
	b.WriteString(statLine("Mastered Words", fmt.Sprintf("%d", st.MasteredWords)))
	b.WriteString("\n")

	var mastery float64
	if st.TotalVocabulary > 0 {
		mastery = float64(st.MasteredWords) / float64(st.TotalVocabulary)
	}
	b.WriteString(components.NewRateBar("Mastery", mastery, barWidth).View())
	return b.String()
}

func (s *DashboardScreen) renderQuickStats() string {
	st := s.state.Stats()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quick Stats"))
	b.WriteString("\n\n")
	b.WriteString(statLine("Success Rate", components.Percent(st.SuccessRate)))
	b.WriteString(statLine("Study Sessions", fmt.Sprintf("%d", st.TotalSessions)))
	b.WriteString(statLine("Active Groups", fmt.Sprintf("%d", st.ActiveGroups)))
	b.WriteString(statLine("Study Streak", streak(st.CurrentStreak)))
	return b.String()
}

func statLine(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(20).Render(label) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + "\n"
}

func streak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
