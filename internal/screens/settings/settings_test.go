package settings

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/store"
)

type fakeRepo struct {
	stored  store.Settings
	saves   []store.Settings
	cleared bool
}

func (r *fakeRepo) Get(context.Context) (store.Settings, error) { return r.stored, nil }

func (r *fakeRepo) Save(_ context.Context, s store.Settings) error {
	r.saves = append(r.saves, s)
	r.stored = s
	return nil
}

func (r *fakeRepo) Clear(context.Context) error {
	r.cleared = true
	r.stored = store.Settings{}
	return nil
}

var defaults = store.Settings{APIBaseURL: "http://localhost:5000", SessionsPerPage: 10}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

// press sends msg and resolves the resulting command chain down to the
// status line it ends in, if any.
func press(s *SettingsScreen, msg tea.Msg) (screen.StatusMsg, bool) {
	_, cmd := s.Update(msg)
	for cmd != nil {
		switch m := cmd().(type) {
		case screen.StatusMsg:
			return m, true
		default:
			_, cmd = s.Update(m)
		}
	}
	return screen.StatusMsg{}, false
}

func newLoaded(t *testing.T, repo *fakeRepo) *SettingsScreen {
	t.Helper()
	s := New(repo, navigation.NewStore(), defaults)
	s.Update(s.Init()())
	return s
}

func TestShowsSavedOverDefaults(t *testing.T) {
	repo := &fakeRepo{stored: store.Settings{APIBaseURL: "http://portal.local:8000"}}
	s := newLoaded(t, repo)

	view := s.View(100, 30)
	if !strings.Contains(view, "http://portal.local:8000") {
		t.Error("expected saved base URL")
	}
	if !strings.Contains(view, "10") {
		t.Error("expected default sessions per page")
	}
}

func TestSave(t *testing.T) {
	repo := &fakeRepo{}
	s := newLoaded(t, repo)

	status, ok := press(s, key("s"))
	if !ok || status.Err {
		t.Fatalf("expected success status, got %+v", status)
	}
	if len(repo.saves) != 1 || repo.saves[0] != defaults {
		t.Errorf("unexpected saves %+v", repo.saves)
	}
}

func TestSaveRejectsInvalidURL(t *testing.T) {
	repo := &fakeRepo{stored: store.Settings{APIBaseURL: "not a url"}}
	s := newLoaded(t, repo)

	status, ok := press(s, key("s"))
	if !ok || !status.Err {
		t.Fatalf("expected error status, got %+v", status)
	}
	if len(repo.saves) != 0 {
		t.Error("invalid settings must not be saved")
	}
	if !strings.Contains(s.View(100, 30), "must be an http(s) URL") {
		t.Error("expected inline validation message")
	}
}

func TestEditCapturesInput(t *testing.T) {
	repo := &fakeRepo{}
	s := newLoaded(t, repo)

	if s.CapturingInput() {
		t.Fatal("should not capture input before editing")
	}
	s.Update(key("e"))
	if !s.CapturingInput() {
		t.Fatal("expected input capture while editing")
	}

	// "s" is text while editing, not the save button.
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	s.Update(key("5"))
	s.Update(key("s"))
	if len(repo.saves) != 0 {
		t.Error("typing must not trigger save")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.CapturingInput() {
		t.Fatal("expected esc to stop editing")
	}

	if _, ok := press(s, key("s")); !ok {
		t.Fatal("expected status after save")
	}
	if len(repo.saves) != 1 || repo.saves[0].SessionsPerPage != 15 {
		t.Errorf("expected sessions per page 15, got %+v", repo.saves)
	}
}

func TestResetNavigation(t *testing.T) {
	nav := navigation.NewStore()
	nav.SetGroup(&navigation.GroupRef{ID: 1, Name: "Core Verbs"})
	nav.SetWord(&navigation.WordRef{ID: 2, Kanji: "水"})

	s := New(&fakeRepo{}, nav, defaults)
	s.Update(s.Init()())

	if status, ok := press(s, key("n")); !ok || status.Err {
		t.Fatalf("expected success status, got %+v", status)
	}
	if nav.Group() != nil || nav.Word() != nil || nav.Activity() != nil {
		t.Error("expected navigation refs to be cleared")
	}
}

func TestClearSaved(t *testing.T) {
	repo := &fakeRepo{stored: store.Settings{APIBaseURL: "http://portal.local:8000", SessionsPerPage: 50}}
	s := newLoaded(t, repo)

	if _, ok := press(s, key("x")); !ok {
		t.Fatal("expected status after clear")
	}
	if !repo.cleared {
		t.Error("expected repo to be cleared")
	}
	if !strings.Contains(s.View(100, 30), "http://localhost:5000") {
		t.Error("expected inputs to fall back to defaults")
	}
}
