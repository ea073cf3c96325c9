package screen

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
)

// ErrEmptyResponse marks a detail fetch that succeeded without a body.
var ErrEmptyResponse = errors.New("empty response")

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header, sidebar and footer).
	View(width, height int) string

	// Title returns the screen name.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that consume printable keys,
// such as a focused text field. The app skips its global keys while
// CapturingInput returns true.
type InputCapturer interface {
	CapturingInput() bool
}

// StatusMsg is a one-line notice shown in the footer until the next key.
type StatusMsg struct {
	Text string
	Err  bool
}

// Status returns a command emitting a StatusMsg.
func Status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Err: isErr} }
}
