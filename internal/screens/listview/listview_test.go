package listview

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/listload"
	"github.com/dr-rompecabezas/langportal/internal/ui/components"
)

// pages serves totalPages pages of two rows each and records the queries.
type pages struct {
	totalPages int
	err        error
	queries    []listload.Query
}

func (p *pages) fetch(_ context.Context, q listload.Query) (*api.Page[string], error) {
	p.queries = append(p.queries, q)
	if p.err != nil {
		return nil, p.err
	}
	return &api.Page[string]{Items: []string{"a", "b"}, TotalPages: p.totalPages}, nil
}

var testTable = components.NewTable([]components.Column{
	{Title: "Name", SortKey: "name", Width: 10},
	{Title: "Notes", Width: 10},
})

// result runs cmd and returns the loader result it produces.
func result(t *testing.T, cmd tea.Cmd) listload.Result[string] {
	t.Helper()
	require.NotNil(t, cmd, "expected a fetch command")
	res, ok := cmd().(listload.Result[string])
	require.True(t, ok, "expected a listload.Result")
	return res
}

func mounted(t *testing.T, p *pages) *listload.Loader[string] {
	t.Helper()
	l := listload.New(p.fetch, listload.Options{SortKey: "name", FailureMessage: "Failed to load things"})
	cmd := Run(l, l.Mount())
	assert.Nil(t, Apply(l, result(t, cmd)))
	require.Equal(t, listload.Loaded, l.Status())
	return l
}

func TestHandleKeyPagesWithinBounds(t *testing.T) {
	p := &pages{totalPages: 2}
	l := mounted(t, p)

	cmd, handled := HandleKey(l, testTable, "left")
	assert.True(t, handled)
	assert.Nil(t, cmd, "no page before the first")

	cmd, handled = HandleKey(l, testTable, "right")
	require.True(t, handled)
	Apply(l, result(t, cmd))
	assert.Equal(t, 2, l.Query().Page)

	cmd, handled = HandleKey(l, testTable, "right")
	assert.True(t, handled)
	assert.Nil(t, cmd, "no page after the last")
	assert.Equal(t, listload.Loaded, l.Status())
	assert.Len(t, p.queries, 2)

	cmd, _ = HandleKey(l, testTable, "h")
	Apply(l, result(t, cmd))
	assert.Equal(t, 1, l.Query().Page)
}

func TestHandleKeySortsByColumn(t *testing.T) {
	p := &pages{totalPages: 1}
	l := mounted(t, p)

	cmd, handled := HandleKey(l, testTable, "1")
	require.True(t, handled)
	Apply(l, result(t, cmd))
	assert.Equal(t, api.SortDesc, l.Query().Direction)

	cmd, handled = HandleKey(l, testTable, "2")
	assert.True(t, handled, "digits are consumed even for unsortable columns")
	assert.Nil(t, cmd)

	cmd, handled = HandleKey(l, testTable, "9")
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Len(t, p.queries, 2)
}

func TestHandleKeyReload(t *testing.T) {
	p := &pages{totalPages: 1, err: errors.New("connection refused")}
	l := listload.New(p.fetch, listload.Options{FailureMessage: "Failed to load things"})
	Apply(l, result(t, Run(l, l.Mount())))
	require.Equal(t, listload.Failed, l.Status())

	p.err = nil
	cmd, handled := HandleKey(l, testTable, "r")
	require.True(t, handled)
	assert.Equal(t, listload.Loading, l.Status())
	Apply(l, result(t, cmd))
	assert.Equal(t, listload.Loaded, l.Status())
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestHandleKeyIgnoresOtherKeys(t *testing.T) {
	l := mounted(t, &pages{totalPages: 1})

	cmd, handled := HandleKey(l, testTable, "enter")
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestApplyClampsShrunkListing(t *testing.T) {
	p := &pages{totalPages: 3}
	l := mounted(t, p)

	cmd, _ := HandleKey(l, testTable, "right")
	Apply(l, result(t, cmd))
	cmd, _ = HandleKey(l, testTable, "right")
	Apply(l, result(t, cmd))
	require.Equal(t, 3, l.Query().Page)

	p.totalPages = 2
	clamp := Apply(l, result(t, Run(l, l.Reload())))
	require.NotNil(t, clamp, "expected a refetch of the last page")
	assert.Equal(t, 2, l.Query().Page)
	assert.Equal(t, listload.Loading, l.Status())

	assert.Nil(t, Apply(l, result(t, clamp)))
	assert.Equal(t, listload.Loaded, l.Status())
	assert.Equal(t, 2, p.queries[len(p.queries)-1].Page)
}

func TestApplyIgnoresStaleResult(t *testing.T) {
	p := &pages{totalPages: 3}
	l := mounted(t, p)

	first, _ := HandleKey(l, testTable, "right")
	stale := result(t, first)
	second, _ := HandleKey(l, testTable, "right")

	assert.Nil(t, Apply(l, stale))
	assert.Equal(t, listload.Loading, l.Status())
	Apply(l, result(t, second))
	assert.Equal(t, listload.Loaded, l.Status())
}

func TestViewStates(t *testing.T) {
	p := &pages{totalPages: 1, err: errors.New("boom")}
	l := listload.New(p.fetch, listload.Options{FailureMessage: "Failed to load things"})
	req := l.Mount()
	assert.Contains(t, View(l, "Things", testTable, "Nothing here", 80), "Loading...")

	Apply(l, l.Run(context.Background(), req))
	view := View(l, "Things", testTable, "Nothing here", 80)
	assert.Contains(t, view, "Failed to load things")
	assert.True(t, strings.Contains(view, "Press r to retry"))
}
