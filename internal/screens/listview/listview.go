// Package listview glues listload.Loader to Bubble Tea screens.
package listview

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/listload"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
	"github.com/dr-rompecabezas/langportal/internal/ui/layout"
	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// Run returns a command executing req. The Result comes back as the
// message.
func Run[T any](l *listload.Loader[T], req listload.Request) tea.Cmd {
	return func() tea.Msg {
		return l.Run(context.Background(), req)
	}
}

// Maybe is Run when ok, nil otherwise. It pairs with triggers that may
// be no-ops, such as SetPage.
func Maybe[T any](l *listload.Loader[T], req listload.Request, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	return Run(l, req)
}

// HandleKey applies the shared list bindings: left/right page, digits
// sort by column, r reloads. It reports whether the key was consumed.
func HandleKey[T any](l *listload.Loader[T], t components.Table, key string) (tea.Cmd, bool) {
	switch key {
	case "left", "h", "pgup":
		req, ok := l.PrevPage()
		return Maybe(l, req, ok), true
	case "right", "l", "pgdown":
		req, ok := l.NextPage()
		return Maybe(l, req, ok), true
	case "r":
		return Run(l, l.Reload()), true
	}

	if n, err := strconv.Atoi(key); err == nil {
		if sortKey := t.SortKeyAt(n); sortKey != "" {
			return Run(l, l.ToggleSort(sortKey)), true
		}
		return nil, true
	}
	return nil, false
}

// Apply folds a result into l and clamps the page if the listing shrank.
func Apply[T any](l *listload.Loader[T], res listload.Result[T]) tea.Cmd {
	if !l.Apply(res) {
		return nil
	}
	req, ok := l.Clamp()
	return Maybe(l, req, ok)
}

// SyncTable copies the loader's sort state into t.
func SyncTable[T any](l *listload.Loader[T], t *components.Table) {
	q := l.Query()
	t.SortKey = q.SortKey
	t.Descending = q.Direction == api.SortDesc
}

// View renders the loading, failure, empty or table state of l under a
// heading.
func View[T any](l *listload.Loader[T], heading string, t components.Table, empty string, width int) string {
	head := theme.Title.Render(heading) + "\n\n"

	switch l.Status() {
	case listload.Idle, listload.Loading:
		if len(l.Items()) == 0 {
			return head + theme.Hint.Render("Loading...")
		}
	case listload.Failed:
		return head + lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(l.Message()) +
			"\n\n" + theme.Hint.Render("Press r to retry")
	}

	if len(l.Items()) == 0 {
		return head + theme.Hint.Render(empty)
	}

	body := head + t.View() + "\n" + components.RenderPagination(l.Query().Page, l.TotalPages())
	if l.Status() == listload.Loading {
		body += "  " + theme.Hint.Render("Loading...")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(body)
}

// KeyHints are the footer hints shared by list screens.
func KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Page"},
		{Key: "1-9", Description: "Sort"},
		{Key: "Enter", Description: "Open"},
		{Key: "r", Description: "Reload"},
	}
}
