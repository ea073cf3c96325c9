package notfound

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/router"
)

func TestNotFoundView(t *testing.T) {
	s := New("/words/abc", `invalid id "abc"`)

	view := s.View(80, 20)
	if !strings.Contains(view, "Page Not Found") || !strings.Contains(view, "/words/abc") {
		t.Errorf("unexpected view %q", view)
	}
	if s.Init() != nil {
		t.Error("expected no init command")
	}
}

func TestNotFoundEnterGoesHome(t *testing.T) {
	s := New("/nope", "")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok || msg.Path != router.PathDashboard || msg.Mode != router.Root {
		t.Errorf("expected root navigation to dashboard, got %#v", msg)
	}
}
