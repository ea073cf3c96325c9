// Package notfound renders paths that do not resolve to a view.
package notfound

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// NotFoundScreen tells the user a path has no view.
type NotFoundScreen struct {
	path   string
	reason string
}

var _ screen.Screen = (*NotFoundScreen)(nil)
var _ screen.KeyHintProvider = (*NotFoundScreen)(nil)

// New creates a screen for path. reason is optional detail.
func New(path, reason string) *NotFoundScreen {
	return &NotFoundScreen{path: path, reason: reason}
}

func (p *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (p *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return p, router.Navigate(router.PathDashboard, router.Root)
	}
	return p, nil
}

func (p *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Dashboard"}}
}

func (p *NotFoundScreen) View(width, height int) string {
	body := "╌╌ Page Not Found ╌╌\n\n" + p.path
	if p.reason != "" {
		body += "\n" + theme.Hint.Render(p.reason)
	}
	body += "\n\n" + theme.Hint.Render("Press Enter to go to the dashboard")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(body)
}

func (p *NotFoundScreen) Title() string {
	return "Not Found"
}
