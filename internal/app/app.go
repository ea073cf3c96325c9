package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/config"
	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/store"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
)

// Deps are the collaborators shared by all screens.
type Deps struct {
	Portal   api.Portal
	Settings store.SettingsRepo
	Nav      *navigation.Store
	Copier   screen.Copier
	Config   *config.Config
	Logger   *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	nav    *navigation.Store
	log    *zap.Logger
	host   string
	status screen.StatusMsg
	width  int
	height int
}

// NewAppModel builds the path table and the router. The stack stays empty
// until Init opens "/".
func NewAppModel(d Deps) (AppModel, error) {
	if d.Portal == nil || d.Settings == nil || d.Config == nil {
		return AppModel{}, errors.New("app: portal, settings and config are required")
	}
	if d.Nav == nil {
		d.Nav = navigation.NewStore()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	table, err := router.NewTable(router.PortalRoutes(factories(d)))
	if err != nil {
		return AppModel{}, fmt.Errorf("build routes: %w", err)
	}

	host := d.Config.API.BaseURL
	if u, err := url.Parse(host); err == nil && u.Host != "" {
		host = u.Host
	}

	return AppModel{
		router: router.New(table),
		nav:    d.Nav,
		log:    d.Logger,
		host:   host,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return router.Navigate(router.PathRoot, router.Root)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatusMsg:
		m.status = msg
		return m, nil

	case router.NavigateMsg:
		m.log.Debug("navigate", zap.String("path", msg.Path), zap.Int("mode", int(msg.Mode)))

	case router.NavigateFailedMsg:
		m.log.Warn("navigation failed", zap.String("path", msg.Path), zap.Error(msg.Err))
		m.status = screen.StatusMsg{Text: "No page at " + msg.Path, Err: true}
		return m, nil

	case tea.KeyMsg:
		m.status = screen.StatusMsg{}
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
			break
		}
		switch key {
		case "q":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Back()
			}
			return m, nil
		case "tab":
			return m, router.Navigate(m.section(1), router.Root)
		case "shift+tab":
			return m, router.Navigate(m.section(-1), router.Root)
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// section returns the sidebar entry step places away from the current one.
func (m AppModel) section(step int) string {
	sections := navigation.Sections
	current := navigation.ActiveSection(m.router.Path())
	i := 0
	for j, s := range sections {
		if s.Path == current {
			i = j
			break
		}
	}
	n := len(sections)
	return sections[((i+step)%n+n)%n].Path
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	path := m.router.Path()
	var crumbs []string
	if path != "" {
		for _, c := range navigation.Breadcrumbs(path, m.nav) {
			crumbs = append(crumbs, c.Label)
		}
	}
	header := layout.RenderHeader(crumbs, m.host, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	active := navigation.ActiveSection(path)
	items := make([]layout.SidebarItem, len(navigation.Sections))
	for i, s := range navigation.Sections {
		items[i] = layout.SidebarItem{Label: s.Label, Active: s.Path == active}
	}

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	sidebar := layout.RenderSidebar(items, contentHeight)
	content := m.router.View(layout.ContentWidth(m.width)-1, contentHeight)

	return layout.RenderFrame(header, sidebar, content, footer, m.width, m.height)
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if m.status.Text != "" {
		mark := "✓"
		if m.status.Err {
			mark = "✗"
		}
		hints = append(hints, layout.KeyHint{Key: mark, Description: m.status.Text})
	}

	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Section"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Run starts the Bubble Tea program.
func Run(d Deps) error {
	m, err := NewAppModel(d)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
