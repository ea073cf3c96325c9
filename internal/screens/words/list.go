// Package words renders the vocabulary table and single-word pages.
package words

import (
	"context"
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/listload"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/screens/listview"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
)

// FailureMessage is shown when a page of words cannot be loaded.
const FailureMessage = "Failed to load words"

// Lister fetches pages of words.
type Lister interface {
	Words(ctx context.Context, q api.WordsQuery) (*api.Page[api.Word], error)
}

// Columns is the word table layout. Sort keys match the words endpoint.
var Columns = []components.Column{
	{Title: "Kanji", SortKey: "kanji", Width: 12},
	{Title: "Romaji", SortKey: "romaji", Width: 16},
	{Title: "English", SortKey: "english", Width: 20},
	{Title: "Correct", SortKey: "correct_count", Width: 11, Right: true},
	{Title: "Wrong", SortKey: "wrong_count", Width: 9, Right: true},
}

// ListScreen is the paginated, sortable vocabulary table.
type ListScreen struct {
	loader *listload.Loader[api.Word]
	table  components.Table
	copier screen.Copier
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// NewList creates a words table sorted by kanji ascending.
func NewList(lister Lister, copier screen.Copier, lastResponseWins bool) *ListScreen {
	fetch := func(ctx context.Context, q listload.Query) (*api.Page[api.Word], error) {
		return lister.Words(ctx, api.WordsQuery{
			Page:          q.Page,
			SortKey:       q.SortKey,
			SortDirection: q.Direction,
		})
	}
	return &ListScreen{
		loader: listload.New(fetch, listload.Options{
			FailureMessage:   FailureMessage,
			SortKey:          "kanji",
			Direction:        api.SortAsc,
			LastResponseWins: lastResponseWins,
		}),
		table:  components.NewTable(Columns),
		copier: copier,
	}
}

func (s *ListScreen) Init() tea.Cmd {
	s.sync()
	return listview.Run(s.loader, s.loader.Mount())
}

func (s *ListScreen) Title() string {
	return "Words"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return append(listview.KeyHints(), layout.KeyHint{Key: "c", Description: "Copy"})
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listload.Result[api.Word]:
		cmd := listview.Apply(s.loader, msg)
		s.sync()
		return s, cmd

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "enter":
			if w, ok := s.selected(); ok {
				return s, router.Navigate(fmt.Sprintf("/words/%d", w.ID), router.Push)
			}
			return s, nil
		case "c":
			if w, ok := s.selected(); ok {
				return s, screen.CopyCmd(s.copier, CopyText(w), w.Kanji)
			}
			return s, nil
		}
		if cmd, ok := listview.HandleKey(s.loader, s.table, key); ok {
			s.sync()
			return s, cmd
		}
		s.table, _ = s.table.Update(msg)
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	return "\n" + listview.View(s.loader, "Words", s.table, "No words found", width)
}

func (s *ListScreen) selected() (api.Word, bool) {
	items := s.loader.Items()
	if s.table.Cursor < 0 || s.table.Cursor >= len(items) {
		return api.Word{}, false
	}
	return items[s.table.Cursor], true
}

func (s *ListScreen) sync() {
	listview.SyncTable(s.loader, &s.table)
	s.table.SetRows(Rows(s.loader.Items()))
}

// Rows renders words as table cells in Columns order.
func Rows(words []api.Word) [][]string {
	rows := make([][]string, len(words))
	for i, w := range words {
		rows[i] = []string{
			w.Kanji,
			w.Romaji,
			w.English,
			strconv.Itoa(w.CorrectCount),
			strconv.Itoa(w.WrongCount),
		}
	}
	return rows
}

// CopyText is the clipboard form of a word.
func CopyText(w api.Word) string {
	return fmt.Sprintf("%s (%s) %s", w.Kanji, w.Romaji, w.English)
}
