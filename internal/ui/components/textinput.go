package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and inline validation.
type TextInput struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
	Validate    func(string) error

	err error
}

// NewTextInput creates a new labelled text input holding value.
func NewTextInput(label, value string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.SetValue(value)
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Label:       label,
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. Non-digits are dropped in numeric mode.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 {
				if key[0] < '0' || key[0] > '9' {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	t.err = nil
	return t, cmd
}

// Check runs Validate on the current value and remembers the result.
func (t *TextInput) Check() error {
	t.err = nil
	if t.Validate != nil {
		t.err = t.Validate(t.Model.Value())
	}
	return t.err
}

// View renders the label, the input and any validation error.
func (t TextInput) View() string {
	label := theme.Unselected
	if t.Model.Focused() {
		label = theme.Selected
	}
	view := label.Render(t.Label) + "\n" + t.Model.View()
	if t.err != nil {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.err.Error())
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
