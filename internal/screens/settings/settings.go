// Package settings edits the values langportal persists between runs.
package settings

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/go-playground/validator/v10"

	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/store"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

const (
	fieldBaseURL = iota
	fieldPerPage
	fieldCount
)

var (
	errNotURL    = errors.New("must be an http(s) URL")
	errNotNumber = errors.New("must be a number between 1 and 100")
)

type settingsLoadedMsg struct {
	settings store.Settings
	err      error
}

type settingsSavedMsg struct {
	err error
}

type settingsClearedMsg struct {
	err error
}

// SettingsScreen edits the API base URL and the session page size.
// Saved values take effect on the next launch.
type SettingsScreen struct {
	repo     store.SettingsRepo
	nav      *navigation.Store
	defaults store.Settings
	validate *validator.Validate

	inputs  [fieldCount]components.TextInput
	buttons []components.Button
	loaded  bool
	editing bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.InputCapturer = (*SettingsScreen)(nil)

// New creates the settings screen. current holds the effective values the
// inputs start from when nothing has been saved.
func New(repo store.SettingsRepo, nav *navigation.Store, current store.Settings) *SettingsScreen {
	s := &SettingsScreen{
		repo:     repo,
		nav:      nav,
		defaults: current,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	s.setInputs(current)
	s.buttons = []components.Button{
		components.NewButton("Edit", "e", true, s.startEditing),
		components.NewButton("Save", "s", true, s.save),
		components.NewButton("Reset navigation", "n", true, s.resetNavigation),
		components.NewButton("Clear saved", "x", true, s.clear),
	}
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		saved, err := s.repo.Get(context.Background())
		return settingsLoadedMsg{settings: saved, err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) CapturingInput() bool {
	return s.editing
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Stop editing"},
		}
	}
	return []layout.KeyHint{
		{Key: "e", Description: "Edit"},
		{Key: "s", Description: "Save"},
		{Key: "n", Description: "Reset navigation"},
		{Key: "x", Description: "Clear saved"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		s.loaded = true
		if msg.err != nil {
			return s, screen.Status("Could not read saved settings", true)
		}
		s.setInputs(merge(msg.settings, s.defaults))
		return s, nil

	case settingsSavedMsg:
		if msg.err != nil {
			return s, screen.Status("Save failed: "+msg.err.Error(), true)
		}
		return s, screen.Status("Settings saved. They apply on next launch.", false)

	case settingsClearedMsg:
		if msg.err != nil {
			return s, screen.Status("Clear failed: "+msg.err.Error(), true)
		}
		s.setInputs(s.defaults)
		return s, screen.Status("Saved settings cleared", false)

	case tea.KeyMsg:
		if s.editing {
			return s, s.updateEditing(msg)
		}
		var cmds []tea.Cmd
		for i := range s.buttons {
			var cmd tea.Cmd
			s.buttons[i], cmd = s.buttons[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return s, tea.Batch(cmds...)
	}

	if s.editing {
		return s, s.forward(msg)
	}
	return s, nil
}

func (s *SettingsScreen) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.stopEditing()
		return nil
	case "tab", "down":
		return s.focus((s.focused() + 1) % fieldCount)
	case "shift+tab", "up":
		return s.focus((s.focused() + fieldCount - 1) % fieldCount)
	case "enter":
		if s.focused() == fieldCount-1 {
			s.stopEditing()
			return nil
		}
		return s.focus(s.focused() + 1)
	}
	return s.forward(msg)
}

func (s *SettingsScreen) forward(msg tea.Msg) tea.Cmd {
	i := s.focused()
	var cmd tea.Cmd
	s.inputs[i], cmd = s.inputs[i].Update(msg)
	return cmd
}

func (s *SettingsScreen) startEditing() tea.Cmd {
	s.editing = true
	return s.focus(fieldBaseURL)
}

func (s *SettingsScreen) stopEditing() {
	s.editing = false
	for i := range s.inputs {
		s.inputs[i].Blur()
		s.inputs[i].Check()
	}
}

func (s *SettingsScreen) focus(i int) tea.Cmd {
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
	return s.inputs[i].Focus()
}

func (s *SettingsScreen) focused() int {
	for i, in := range s.inputs {
		if in.Focused() {
			return i
		}
	}
	return fieldBaseURL
}

func (s *SettingsScreen) save() tea.Cmd {
	valid := true
	for i := range s.inputs {
		if s.inputs[i].Check() != nil {
			valid = false
		}
	}
	if !valid {
		return screen.Status("Fix the highlighted fields first", true)
	}

	perPage, _ := strconv.Atoi(s.inputs[fieldPerPage].Value())
	next := store.Settings{
		APIBaseURL:      strings.TrimRight(strings.TrimSpace(s.inputs[fieldBaseURL].Value()), "/"),
		SessionsPerPage: perPage,
	}
	return func() tea.Msg {
		return settingsSavedMsg{err: s.repo.Save(context.Background(), next)}
	}
}

func (s *SettingsScreen) clear() tea.Cmd {
	return func() tea.Msg {
		return settingsClearedMsg{err: s.repo.Clear(context.Background())}
	}
}

func (s *SettingsScreen) resetNavigation() tea.Cmd {
	s.nav.Reset()
	return screen.Status("Navigation history cleared", false)
}

func (s *SettingsScreen) setInputs(v store.Settings) {
	base := components.NewTextInput("API base URL", v.APIBaseURL, false, 256)
	base.Validate = func(val string) error {
		if s.validate.Var(strings.TrimSpace(val), "required,http_url") != nil {
			return errNotURL
		}
		return nil
	}

	perPage := ""
	if v.SessionsPerPage > 0 {
		perPage = strconv.Itoa(v.SessionsPerPage)
	}
	pp := components.NewTextInput("Sessions per page", perPage, true, 3)
	pp.Validate = func(val string) error {
		n, err := strconv.Atoi(val)
		if err != nil || s.validate.Var(n, "min=1,max=100") != nil {
			return errNotNumber
		}
		return nil
	}

	s.inputs = [fieldCount]components.TextInput{base, pp}
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Settings"))
	b.WriteString("\n\n")

	if !s.loaded {
		b.WriteString(theme.Hint.Render("Loading..."))
		return b.String()
	}

	for i, in := range s.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
		if i < len(s.inputs)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	views := make([]string, len(s.buttons))
	for i, btn := range s.buttons {
		views[i] = btn.View()
	}
	b.WriteString(strings.Join(views, " "))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Saved values override the config file and apply on next launch."))

	return theme.Card.Width(min(width-2, 80)).Render(b.String())
}

// merge fills the zero fields of saved from fallback.
func merge(saved, fallback store.Settings) store.Settings {
	if saved.APIBaseURL == "" {
		saved.APIBaseURL = fallback.APIBaseURL
	}
	if saved.SessionsPerPage == 0 {
		saved.SessionsPerPage = fallback.SessionsPerPage
	}
	return saved
}
