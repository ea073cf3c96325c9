package words

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// Getter fetches a single word.
type Getter interface {
	Word(ctx context.Context, id int) (*api.Word, error)
}

type wordLoadedMsg struct {
	id   int
	word *api.Word
	err  error
}

// ShowScreen displays one word and its review counters.
type ShowScreen struct {
	getter Getter
	nav    *navigation.Store
	copier screen.Copier
	id     int

	word    *api.Word
	loading bool
	errMsg  string
}

var _ screen.Screen = (*ShowScreen)(nil)
var _ screen.KeyHintProvider = (*ShowScreen)(nil)

// NewShow creates the page for word id.
func NewShow(getter Getter, nav *navigation.Store, copier screen.Copier, id int) *ShowScreen {
	return &ShowScreen{getter: getter, nav: nav, copier: copier, id: id}
}

func (s *ShowScreen) Init() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	id := s.id
	return func() tea.Msg {
		w, err := s.getter.Word(context.Background(), id)
		if err == nil && w == nil {
			err = screen.ErrEmptyResponse
		}
		return wordLoadedMsg{id: id, word: w, err: err}
	}
}

func (s *ShowScreen) Title() string {
	if s.word != nil {
		return s.word.Kanji
	}
	return "Word"
}

func (s *ShowScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "c", Description: "Copy"},
		{Key: "r", Description: "Reload"},
	}
}

func (s *ShowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wordLoadedMsg:
		if msg.id != s.id {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.word = nil
			s.errMsg = "Failed to load word"
			return s, nil
		}
		s.word = msg.word
		s.nav.SetWord(&navigation.WordRef{ID: msg.word.ID, Kanji: msg.word.Kanji})
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.Init()
		case "c":
			if s.word != nil {
				return s, screen.CopyCmd(s.copier, CopyText(*s.word), s.word.Kanji)
			}
		}
	}
	return s, nil
}

func (s *ShowScreen) View(width, height int) string {
	switch {
	case s.loading:
		return theme.Hint.Render("\n  Loading word...")
	case s.errMsg != "":
		return "\n" + theme.ErrorText.Render("  "+s.errMsg) + "\n\n" + theme.Hint.Render("  Press r to retry")
	case s.word == nil:
		return ""
	}

	w := s.word
	var b strings.Builder
	b.WriteString(theme.Title.Render(w.Kanji))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Romaji   " + w.Romaji))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("English  " + w.English))
	b.WriteString("\n\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("✓ %d correct", w.CorrectCount)))
	b.WriteString("   ")
	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("✗ %d wrong", w.WrongCount)))

	if total := w.CorrectCount + w.WrongCount; total > 0 {
		rate := float64(w.CorrectCount) / float64(total)
		b.WriteString("\n\n")
		b.WriteString(components.NewRateBar("Accuracy", rate, min(width-8, 40)).View())
	}

	return "\n" + theme.Card.Width(min(width-2, 60)).Render(b.String())
}
