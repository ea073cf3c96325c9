package screen

import (
	"github.com/atotto/clipboard"

	tea "charm.land/bubbletea/v2"
)

// Copier writes text to a clipboard.
type Copier func(text string) error

// SystemClipboard copies to the OS clipboard.
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// CopyCmd copies text off the UI loop and reports the outcome.
func CopyCmd(cp Copier, text, what string) tea.Cmd {
	if cp == nil {
		cp = SystemClipboard
	}
	return func() tea.Msg {
		if err := cp(text); err != nil {
			return StatusMsg{Text: "Copy failed: " + err.Error(), Err: true}
		}
		return StatusMsg{Text: "Copied " + what}
	}
}
