package activities

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

// LaunchSource fetches what the launch page needs: the activity and the
// groups it can be launched with.
type LaunchSource interface {
	Getter
	Groups(ctx context.Context, q api.GroupsQuery) (*api.Page[api.Group], error)
}

type groupsLoadedMsg struct {
	id     int
	groups []api.Group
	err    error
}

type launchMsg struct {
	url string
}

// LaunchScreen pairs an activity with a word group and produces the URL
// that starts a study session.
type LaunchScreen struct {
	src    LaunchSource
	nav    *navigation.Store
	copier screen.Copier
	id     int

	activity        *api.StudyActivity
	groups          []api.Group
	menu            components.Menu
	loadingActivity bool
	loadingGroups   bool
	errMsg          string
	url             string
}

var _ screen.Screen = (*LaunchScreen)(nil)
var _ screen.KeyHintProvider = (*LaunchScreen)(nil)

// NewLaunch creates the launch page for activity id.
func NewLaunch(src LaunchSource, nav *navigation.Store, copier screen.Copier, id int) *LaunchScreen {
	return &LaunchScreen{src: src, nav: nav, copier: copier, id: id}
}

func (s *LaunchScreen) Init() tea.Cmd {
	s.loadingActivity = true
	s.loadingGroups = true
	s.errMsg = ""
	s.url = ""
	id := s.id
	return tea.Batch(
		loadActivity(s.src, id),
		func() tea.Msg {
			page, err := s.src.Groups(context.Background(), api.GroupsQuery{
				Page:          1,
				SortKey:       "name",
				SortDirection: api.SortAsc,
			})
			if err != nil {
				return groupsLoadedMsg{id: id, err: err}
			}
			if page == nil {
				return groupsLoadedMsg{id: id}
			}
			return groupsLoadedMsg{id: id, groups: page.Items}
		},
	)
}

func (s *LaunchScreen) Title() string {
	return "Launch"
}

func (s *LaunchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Group"},
		{Key: "Enter", Description: "Launch"},
		{Key: "r", Description: "Reload"},
	}
}

func (s *LaunchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.id != s.id {
			return s, nil
		}
		s.loadingActivity = false
		if msg.err != nil {
			s.errMsg = "Failed to load study activity"
			return s, nil
		}
		s.activity = msg.activity
		s.nav.SetActivity(&navigation.ActivityRef{ID: msg.activity.ID, Title: msg.activity.Name})
		return s, nil

	case groupsLoadedMsg:
		if msg.id != s.id {
			return s, nil
		}
		s.loadingGroups = false
		if msg.err != nil {
			s.errMsg = "Failed to load groups"
			return s, nil
		}
		s.groups = msg.groups
		items := make([]components.MenuItem, len(msg.groups))
		for i, g := range msg.groups {
			items[i] = components.MenuItem{
				Label:  g.Name,
				Detail: fmt.Sprintf("%d words", g.WordsCount),
				Action: func() tea.Cmd { return s.launch(g.ID) },
			}
		}
		s.menu = components.NewMenu(items)
		return s, nil

	case launchMsg:
		s.url = msg.url
		return s, screen.CopyCmd(s.copier, msg.url, "launch URL")

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.Init()
		}
		if s.ready() {
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *LaunchScreen) launch(groupID int) tea.Cmd {
	if s.activity == nil {
		return nil
	}
	u, err := LaunchURL(s.activity.URL, groupID)
	if err != nil {
		return screen.Status("Invalid activity URL", true)
	}
	return func() tea.Msg { return launchMsg{url: u} }
}

func (s *LaunchScreen) loading() bool {
	return s.loadingActivity || s.loadingGroups
}

func (s *LaunchScreen) ready() bool {
	return !s.loading() && s.errMsg == "" && s.activity != nil
}

func (s *LaunchScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return "\n" + theme.ErrorText.Render("  "+s.errMsg) + "\n\n" + theme.Hint.Render("  Press r to retry")
	case s.loading():
		return theme.Hint.Render("\n  Loading...")
	case s.activity == nil:
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Launch " + s.activity.Name))
	b.WriteString("\n\n")

	if len(s.groups) == 0 {
		b.WriteString(theme.Hint.Render("No word groups to study. Create a group first."))
		return b.String()
	}

	b.WriteString(theme.Subtitle.Render("Choose a word group"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.url != "" {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render("Launch URL (copied):"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(s.url))
	}
	return b.String()
}
