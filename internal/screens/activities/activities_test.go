package activities

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dr-rompecabezas/langportal/internal/api"
	"github.com/dr-rompecabezas/langportal/internal/navigation"
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
)

var testActivities = []api.StudyActivity{
	{ID: 1, Name: "Vocabulary Quiz", URL: "http://localhost:8081", Description: "Practice your vocabulary"},
	{ID: 2, Name: "Writing Practice", URL: "http://localhost:8082/app?lang=ja", Description: "Write kanji"},
}

type fakePortal struct {
	activityErr     error
	groupsErr       error
	activityMissing bool
}

func (f *fakePortal) StudyActivities(context.Context) ([]api.StudyActivity, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	return testActivities, nil
}

func (f *fakePortal) StudyActivity(_ context.Context, id int) (*api.StudyActivity, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	if f.activityMissing {
		return nil, nil
	}
	a := testActivities[id-1]
	return &a, nil
}

func (f *fakePortal) Groups(context.Context, api.GroupsQuery) (*api.Page[api.Group], error) {
	if f.groupsErr != nil {
		return nil, f.groupsErr
	}
	return &api.Page[api.Group]{
		Items:      []api.Group{{ID: 4, Name: "Core Verbs", WordsCount: 12}, {ID: 7, Name: "Nature", WordsCount: 4}},
		TotalPages: 1,
	}, nil
}

// feed executes cmd, expanding batches, and feeds every message back into
// s until no commands remain. Status messages are collected and returned.
func feed(s screen.Screen, cmd tea.Cmd) []screen.StatusMsg {
	var statuses []screen.StatusMsg
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			statuses = append(statuses, feed(s, c)...)
		}
	case screen.StatusMsg:
		statuses = append(statuses, msg)
	default:
		_, next := s.Update(msg)
		statuses = append(statuses, feed(s, next)...)
	}
	return statuses
}

func TestLaunchURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:8081", "http://localhost:8081?group_id=4"},
		{"http://localhost:8082/app?lang=ja", "http://localhost:8082/app?group_id=4&lang=ja"},
		{"http://localhost:8081/?group_id=1", "http://localhost:8081/?group_id=4"},
	}
	for _, tt := range tests {
		got, err := LaunchURL(tt.in, 4)
		if err != nil {
			t.Fatalf("LaunchURL(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("LaunchURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := LaunchURL("://bad", 1); err == nil {
		t.Error("expected error for malformed URL")
	}
}

func TestListOpensAndLaunches(t *testing.T) {
	s := NewList(&fakePortal{})
	feed(s, s.Init())

	view := s.View(100, 30)
	if !strings.Contains(view, "Vocabulary Quiz") || !strings.Contains(view, "Write kanji") {
		t.Errorf("expected activities in view, got %q", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if msg, ok := cmd().(router.NavigateMsg); !ok || msg.Path != "/study-activities/2" {
		t.Errorf("expected /study-activities/2, got %#v", msg)
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if msg, ok := cmd().(router.NavigateMsg); !ok || msg.Path != "/study-activities/2/launch" {
		t.Errorf("expected launch path, got %#v", msg)
	}
}

func TestListFailure(t *testing.T) {
	s := NewList(&fakePortal{activityErr: errors.New("down")})
	feed(s, s.Init())

	if !strings.Contains(s.View(100, 30), "Failed to load study activities") {
		t.Error("expected failure message")
	}
}

func TestShowSetsActivityRef(t *testing.T) {
	nav := navigation.NewStore()
	s := NewShow(&fakePortal{}, nav, 1)
	feed(s, s.Init())

	ref := nav.Activity()
	if ref == nil || ref.ID != 1 || ref.Title != "Vocabulary Quiz" {
		t.Fatalf("expected activity ref, got %+v", ref)
	}
	if !strings.Contains(s.View(100, 30), "[l] Launch") {
		t.Error("expected launch button")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if cmd == nil {
		t.Fatal("expected launch navigation")
	}
	if msg, ok := cmd().(router.NavigateMsg); !ok || msg.Path != "/study-activities/1/launch" {
		t.Errorf("expected launch path, got %#v", msg)
	}
}

func TestShowButtonsInactiveWhileLoading(t *testing.T) {
	s := NewShow(&fakePortal{}, navigation.NewStore(), 1)
	s.Init()

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"}); cmd != nil {
		t.Error("launch should be inactive before the activity loads")
	}
}

func TestLaunchCopiesURL(t *testing.T) {
	var copied string
	copier := func(text string) error {
		copied = text
		return nil
	}

	nav := navigation.NewStore()
	s := NewLaunch(&fakePortal{}, nav, copier, 1)
	feed(s, s.Init())

	view := s.View(100, 30)
	if !strings.Contains(view, "Core Verbs") || !strings.Contains(view, "Nature") {
		t.Fatalf("expected group choices, got %q", view)
	}
	if ref := nav.Activity(); ref == nil || ref.ID != 1 {
		t.Errorf("expected activity ref, got %+v", ref)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	statuses := feed(s, cmd)

	if copied != "http://localhost:8081?group_id=7" {
		t.Errorf("unexpected clipboard text %q", copied)
	}
	if len(statuses) != 1 || statuses[0].Err {
		t.Errorf("expected one success status, got %+v", statuses)
	}
	if !strings.Contains(s.View(100, 30), "group_id=7") {
		t.Error("expected launch URL on screen")
	}
}

func TestLaunchGroupsFailure(t *testing.T) {
	s := NewLaunch(&fakePortal{groupsErr: errors.New("down")}, navigation.NewStore(), nil, 1)
	feed(s, s.Init())

	if !strings.Contains(s.View(100, 30), "Failed to load groups") {
		t.Error("expected failure message")
	}
}

func TestShowEmptyActivityResponse(t *testing.T) {
	nav := navigation.NewStore()
	s := NewShow(&fakePortal{activityMissing: true}, nav, 1)
	feed(s, s.Init())

	if !strings.Contains(s.View(100, 30), "Failed to load study activity") {
		t.Error("expected failure message for an empty activity response")
	}
	if nav.Activity() != nil {
		t.Error("expected no activity ref")
	}
}
