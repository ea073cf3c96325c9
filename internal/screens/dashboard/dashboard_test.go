package dashboard

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/golang/mock/gomock"

	"github.com/dr-rompecabezas/langportal/internal/api"
	mock_api "github.com/dr-rompecabezas/langportal/internal/api/mock"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
)

var (
	testRecent = &api.RecentSession{
		ID:           1,
		GroupID:      1,
		ActivityName: "Vocabulary Review",
		CreatedAt:    time.Date(2025, 2, 10, 22, 0, 0, 0, time.UTC),
		CorrectCount: 8,
		WrongCount:   2,
	}
	testStats = &api.StudyStats{
		TotalVocabulary:   1000,
		TotalWordsStudied: 500,
		MasteredWords:     200,
		SuccessRate:       0.8,
		TotalSessions:     50,
		ActiveGroups:      5,
		CurrentStreak:     7,
	}
)

// loaded runs Init and feeds the result back, as the program loop would.
func loaded(t *testing.T, s *DashboardScreen) screen.Screen {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command from Init")
	}
	updated, _ := s.Update(cmd())
	return updated
}

func TestDashboardRendersStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock_api.NewMockPortal(ctrl)
	portal.EXPECT().RecentSession(gomock.Any()).Return(testRecent, nil)
	portal.EXPECT().Stats(gomock.Any()).Return(testStats, nil)

	view := loaded(t, New(portal)).View(100, 30)

	for _, want := range []string{
		"Total Vocabulary", "1000",
		"Mastered Words", "200",
		"Success Rate", "80%",
		"Vocabulary Review", "8 correct", "2 wrong",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestDashboardShowsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock_api.NewMockPortal(ctrl)

	s := New(portal)
	s.Init() // command never run

	if view := s.View(100, 30); !strings.Contains(view, "Loading") {
		t.Errorf("expected loading state, got %q", view)
	}
}

func TestDashboardErrorEitherCall(t *testing.T) {
	boom := errors.New("API Error")

	for _, failRecent := range []bool{true, false} {
		ctrl := gomock.NewController(t)
		portal := mock_api.NewMockPortal(ctrl)
		if failRecent {
			portal.EXPECT().RecentSession(gomock.Any()).Return(nil, boom)
			portal.EXPECT().Stats(gomock.Any()).Return(testStats, nil)
		} else {
			portal.EXPECT().RecentSession(gomock.Any()).Return(testRecent, nil)
			portal.EXPECT().Stats(gomock.Any()).Return(nil, boom)
		}

		view := loaded(t, New(portal)).View(100, 30)

		if !strings.Contains(view, "Failed to load dashboard data") {
			t.Errorf("failRecent=%v: expected error message, got %q", failRecent, view)
		}
		if strings.Contains(view, "Total Vocabulary") || strings.Contains(view, "8 correct") {
			t.Errorf("failRecent=%v: expected no partial data", failRecent)
		}
	}
}

func TestDashboardNoSessionsYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock_api.NewMockPortal(ctrl)
	portal.EXPECT().RecentSession(gomock.Any()).Return(nil, nil)
	portal.EXPECT().Stats(gomock.Any()).Return(testStats, nil)

	s := loaded(t, New(portal))
	view := s.View(100, 30)

	if !strings.Contains(view, "No sessions yet") {
		t.Error("expected empty recent-session notice")
	}
	if !strings.Contains(view, "Total Vocabulary") {
		t.Error("expected stats to render without a recent session")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("expected Enter to do nothing without a recent session")
	}
}

func TestDashboardEnterOpensSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock_api.NewMockPortal(ctrl)
	portal.EXPECT().RecentSession(gomock.Any()).Return(testRecent, nil)
	portal.EXPECT().Stats(gomock.Any()).Return(testStats, nil)

	s := loaded(t, New(portal))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok || msg.Path != "/sessions/1" {
		t.Errorf("expected navigation to /sessions/1, got %#v", cmd())
	}
}

func TestDashboardRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock_api.NewMockPortal(ctrl)
	gomock.InOrder(
		portal.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("down")),
		portal.EXPECT().Stats(gomock.Any()).Return(testStats, nil),
	)
	portal.EXPECT().RecentSession(gomock.Any()).Return(testRecent, nil).Times(2)

	s := loaded(t, New(portal))
	if !strings.Contains(s.View(100, 30), "Failed to load dashboard data") {
		t.Fatal("expected first load to fail")
	}

	s, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	s, _ = s.Update(cmd())

	if !strings.Contains(s.View(100, 30), "1000") {
		t.Error("expected stats after retry")
	}
}
