package router

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// stubFactories builds a stub screen per pattern, titled with the pattern
// plus the id parameter when present.
func stubFactories(built map[string]*stubScreen) map[string]Factory {
	out := make(map[string]Factory)
	for _, p := range []string{
		PathDashboard, PathActivities, PathActivity, PathActivityLaunch,
		PathWords, PathWord, PathGroups, PathGroup,
		PathSessions, PathSession, PathSettings,
	} {
		out[p] = func(params Params) screen.Screen {
			s := &stubScreen{title: p + "#" + params["id"]}
			if built != nil {
				built[p] = s
			}
			return s
		}
	}
	return out
}

func newTestTable(t *testing.T, built map[string]*stubScreen) *Table {
	t.Helper()
	table, err := NewTable(PortalRoutes(stubFactories(built)))
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return table
}

func TestResolveRootRedirect(t *testing.T) {
	table := newTestTable(t, nil)

	res := table.Resolve("/")

	if res.Path != "/" {
		t.Errorf("expected path '/', got %q", res.Path)
	}
	rd := res.Redirect()
	if rd == nil {
		t.Fatal("expected redirect for '/'")
	}
	if rd.Path != "/dashboard" || !rd.Replace {
		t.Errorf("expected replace-redirect to /dashboard, got %+v", *rd)
	}
}

func TestResolveUnknownPath(t *testing.T) {
	table := newTestTable(t, nil)

	for _, p := range []string{"/invalid-path", "/words/1/extra", "/groups/1/words", ""} {
		res := table.Resolve(p)
		if len(res.Matched) != 0 {
			t.Errorf("expected zero matches for %q, got %d", p, len(res.Matched))
		}
		if res.Redirect() != nil {
			t.Errorf("expected no redirect for %q", p)
		}
	}
}

func TestResolveAllRoutes(t *testing.T) {
	table := newTestTable(t, nil)

	tests := []struct {
		path    string
		pattern string
		id      string
	}{
		{"/dashboard", PathDashboard, ""},
		{"/study-activities", PathActivities, ""},
		{"/study-activities/3", PathActivity, "3"},
		{"/study-activities/3/launch", PathActivityLaunch, "3"},
		{"/words", PathWords, ""},
		{"/words/12", PathWord, "12"},
		{"/groups", PathGroups, ""},
		{"/groups/1", PathGroup, "1"},
		{"/sessions", PathSessions, ""},
		{"/sessions/9", PathSession, "9"},
		{"/settings", PathSettings, ""},
	}

	for _, tt := range tests {
		res := table.Resolve(tt.path)
		if len(res.Matched) != 1 {
			t.Errorf("%s: expected one match, got %d", tt.path, len(res.Matched))
			continue
		}
		if got := res.Matched[0].Pattern; got != tt.pattern {
			t.Errorf("%s: expected pattern %q, got %q", tt.path, tt.pattern, got)
		}
		if got := res.Params["id"]; got != tt.id {
			t.Errorf("%s: expected id %q, got %q", tt.path, tt.id, got)
		}
	}
}

func TestParamsID(t *testing.T) {
	if id, err := (Params{"id": "42"}).ID(); err != nil || id != 42 {
		t.Errorf("expected 42, got %d (%v)", id, err)
	}
	if _, err := (Params{"id": "abc"}).ID(); err == nil {
		t.Error("expected error for non-numeric id")
	}
	if _, err := (Params{}).ID(); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestDuplicatePattern(t *testing.T) {
	_, err := NewTable([]Route{{Pattern: "/words"}, {Pattern: "/words"}})
	if err == nil {
		t.Error("expected duplicate route error")
	}
}

func TestOpenRootFollowsRedirect(t *testing.T) {
	built := map[string]*stubScreen{}
	r := New(newTestTable(t, built))

	if _, err := r.Open("/", Push); err != nil {
		t.Fatalf("open '/': %v", err)
	}

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Path() != "/dashboard" {
		t.Errorf("expected path /dashboard, got %q", r.Path())
	}
	if !built[PathDashboard].initRan {
		t.Error("expected Init() to run on dashboard screen")
	}
}

func TestRedirectReplacesTop(t *testing.T) {
	r := New(newTestTable(t, nil))
	r.Open("/words", Push)

	r.Open("/", Push)

	if r.Depth() != 1 {
		t.Errorf("expected redirect to replace, depth 1, got %d", r.Depth())
	}
	if r.Path() != "/dashboard" {
		t.Errorf("expected path /dashboard, got %q", r.Path())
	}
}

func TestPush(t *testing.T) {
	built := map[string]*stubScreen{}
	r := New(newTestTable(t, built))
	r.Open("/words", Push)

	r.Open("/words/5", Push)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != PathWord+"#5" {
		t.Errorf("expected active word screen, got %q", r.Active().Title())
	}
	if !built[PathWord].initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestFactoryRunsPerNavigation(t *testing.T) {
	calls := 0
	factories := stubFactories(nil)
	factories[PathWords] = func(Params) screen.Screen {
		calls++
		return &stubScreen{title: "words"}
	}
	table, err := NewTable(PortalRoutes(factories))
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Fatalf("expected no screen built at table construction, got %d", calls)
	}

	r := New(table)
	r.Open("/words", Push)
	r.Open("/words", Push)

	if calls != 2 {
		t.Errorf("expected 2 factory calls, got %d", calls)
	}
}

func TestPop(t *testing.T) {
	r := New(newTestTable(t, nil))
	r.Open("/groups", Push)
	r.Open("/groups/1", Push)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Path() != "/groups" {
		t.Errorf("expected path /groups, got %q", r.Path())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(newTestTable(t, nil))
	r.Open("/dashboard", Push)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(newTestTable(t, nil))
	r.Open("/dashboard", Push)
	r.Open("/words", Push)

	r.Open("/sessions", Replace)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Path() != "/sessions" {
		t.Errorf("expected path /sessions, got %q", r.Path())
	}
}

func TestRootClearsStack(t *testing.T) {
	r := New(newTestTable(t, nil))
	r.Open("/dashboard", Push)
	r.Open("/words", Push)
	r.Open("/words/2", Push)

	r.Open("/settings", Root)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Path() != "/settings" {
		t.Errorf("expected path /settings, got %q", r.Path())
	}
}

func TestOpenUnknownPath(t *testing.T) {
	r := New(newTestTable(t, nil))
	r.Open("/dashboard", Push)

	_, err := r.Open("/invalid-path", Push)

	var unknown *UnknownPathError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPathError, got %v", err)
	}
	if r.Depth() != 1 || r.Path() != "/dashboard" {
		t.Errorf("expected stack untouched, got depth %d path %q", r.Depth(), r.Path())
	}
}

func TestNavigateMsg(t *testing.T) {
	r := New(newTestTable(t, nil))
	r.Open("/dashboard", Push)

	r.Update(NavigateMsg{Path: "/groups/3", Mode: Push})

	if r.Path() != "/groups/3" {
		t.Errorf("expected path /groups/3, got %q", r.Path())
	}

	cmd := r.Update(NavigateMsg{Path: "/nope", Mode: Push})
	if cmd == nil {
		t.Fatal("expected failure command")
	}
	if _, ok := cmd().(NavigateFailedMsg); !ok {
		t.Error("expected NavigateFailedMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Path() != "/dashboard" {
		t.Errorf("expected path /dashboard after pop, got %q", r.Path())
	}
}

type loadedMsg struct{ n int }

func TestUpdateReachesCoveredScreens(t *testing.T) {
	built := map[string]*stubScreen{}
	r := New(newTestTable(t, built))
	if _, err := r.Open(PathWords, Root); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Open("/words/1", Push); err != nil {
		t.Fatal(err)
	}
	list, show := built[PathWords], built[PathWord]

	r.Update(loadedMsg{n: 2})
	if len(list.got) != 1 || len(show.got) != 1 {
		t.Fatalf("expected both screens to get the result, got list=%d show=%d", len(list.got), len(show.got))
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if len(list.got) != 1 {
		t.Error("keys must only reach the active screen")
	}
	if len(show.got) != 2 {
		t.Errorf("expected active screen to get the key, got %d messages", len(show.got))
	}
}
