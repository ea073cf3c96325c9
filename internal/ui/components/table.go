package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

// Column describes one table column. A column with a SortKey can be
// sorted by pressing its 1-based position.
type Column struct {
	Title   string
	SortKey string
	Width   int
	Right   bool
}

// Table is a row-selectable table with sort indicators in the header.
type Table struct {
	Columns    []Column
	Rows       [][]string
	Cursor     int
	SortKey    string
	Descending bool
}

// NewTable creates a table with the given columns.
func NewTable(cols []Column) Table {
	return Table{Columns: cols}
}

// SetRows replaces the rows and keeps the cursor in range.
func (t *Table) SetRows(rows [][]string) {
	t.Rows = rows
	if t.Cursor >= len(rows) {
		t.Cursor = max(len(rows)-1, 0)
	}
}

// SortKeyAt returns the sort key of the column bound to number key n
// (1-based), or "" when that column is not sortable.
func (t Table) SortKeyAt(n int) string {
	if n < 1 || n > len(t.Columns) {
		return ""
	}
	return t.Columns[n-1].SortKey
}

// Update handles cursor movement.
func (t Table) Update(msg tea.Msg) (Table, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.Cursor > 0 {
			t.Cursor--
		}
	case "down", "j":
		if t.Cursor < len(t.Rows)-1 {
			t.Cursor++
		}
	case "home", "g":
		t.Cursor = 0
	case "end", "G":
		t.Cursor = max(len(t.Rows)-1, 0)
	}
	return t, nil
}

// View renders the header and rows.
func (t Table) View() string {
	var b strings.Builder

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		title := c.Title
		if c.SortKey != "" {
			title = fmt.Sprintf("%d %s", i+1, title)
			if c.SortKey == t.SortKey {
				if t.Descending {
					title += " ▼"
				} else {
					title += " ▲"
				}
			}
		}
		header[i] = pad(title, c.Width, c.Right)
	}
	b.WriteString(theme.TableHeader.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	for r, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, c.Width, c.Right)
		}
		line := strings.Join(cells, "  ")
		if r == t.Cursor {
			line = theme.TableRowSelected.Render(line)
		} else {
			line = theme.Body.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// pad fits s into w display cells, truncating with an ellipsis.
func pad(s string, w int, right bool) string {
	if w <= 0 {
		return s
	}
	if lipgloss.Width(s) > w {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	gap := strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
	if right {
		return gap + s
	}
	return s + gap
}

// RenderPagination renders "‹ Page p of n ›". Arrows show only where a
// neighbouring page exists.
func RenderPagination(page, totalPages int) string {
	if totalPages <= 0 {
		return theme.Hint.Render(fmt.Sprintf("Page %d", page))
	}
	prev, next := "  ", "  "
	if page > 1 {
		prev = "‹ "
	}
	if page < totalPages {
		next = " ›"
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%sPage %d of %d%s", prev, page, totalPages, next))
}
