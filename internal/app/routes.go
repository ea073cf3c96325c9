package app

import (
	"github.com/dr-rompecabezas/langportal/internal/router"
	"github.com/dr-rompecabezas/langportal/internal/screen"
	"github.com/dr-rompecabezas/langportal/internal/screens/activities"
	"github.com/dr-rompecabezas/langportal/internal/screens/dashboard"
	"github.com/dr-rompecabezas/langportal/internal/screens/groups"
	"github.com/dr-rompecabezas/langportal/internal/screens/notfound"
	"github.com/dr-rompecabezas/langportal/internal/screens/sessions"
	"github.com/dr-rompecabezas/langportal/internal/screens/settings"
	"github.com/dr-rompecabezas/langportal/internal/screens/words"
	"github.com/dr-rompecabezas/langportal/internal/store"
)

// factories binds every portal path to the screen that renders it.
func factories(d Deps) map[string]router.Factory {
	lastWins := d.Config.Lists.LastResponseWins
	perPage := d.Config.Sessions.ItemsPerPage

	static := func(build func() screen.Screen) router.Factory {
		return func(router.Params) screen.Screen { return build() }
	}

	return map[string]router.Factory{
		router.PathDashboard: static(func() screen.Screen {
			return dashboard.New(d.Portal)
		}),
		router.PathActivities: static(func() screen.Screen {
			return activities.NewList(d.Portal)
		}),
		router.PathActivity: withID(router.PathActivity, func(id int) screen.Screen {
			return activities.NewShow(d.Portal, d.Nav, id)
		}),
		router.PathActivityLaunch: withID(router.PathActivityLaunch, func(id int) screen.Screen {
			return activities.NewLaunch(d.Portal, d.Nav, d.Copier, id)
		}),
		router.PathWords: static(func() screen.Screen {
			return words.NewList(d.Portal, d.Copier, lastWins)
		}),
		router.PathWord: withID(router.PathWord, func(id int) screen.Screen {
			return words.NewShow(d.Portal, d.Nav, d.Copier, id)
		}),
		router.PathGroups: static(func() screen.Screen {
			return groups.NewList(d.Portal, lastWins)
		}),
		router.PathGroup: withID(router.PathGroup, func(id int) screen.Screen {
			return groups.NewShow(d.Portal, d.Nav, id, lastWins)
		}),
		router.PathSessions: static(func() screen.Screen {
			return sessions.NewList(d.Portal, perPage, lastWins)
		}),
		router.PathSession: withID(router.PathSession, func(id int) screen.Screen {
			return sessions.NewShow(d.Portal, id)
		}),
		router.PathSettings: static(func() screen.Screen {
			return settings.New(d.Settings, d.Nav, store.Settings{
				APIBaseURL:      d.Config.API.BaseURL,
				SessionsPerPage: perPage,
			})
		}),
	}
}

// withID parses the ":id" segment before building a detail screen. A
// non-numeric id renders a not-found page instead.
func withID(pattern string, build func(id int) screen.Screen) router.Factory {
	return func(p router.Params) screen.Screen {
		id, err := p.ID()
		if err != nil {
			return notfound.New(pattern, err.Error())
		}
		return build(id)
	}
}
