package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dr-rompecabezas/langportal/internal/screen"
)

// Paths of the portal's routable views.
const (
	PathRoot           = "/"
	PathDashboard      = "/dashboard"
	PathActivities     = "/study-activities"
	PathActivity       = "/study-activities/:id"
	PathActivityLaunch = "/study-activities/:id/launch"
	PathWords          = "/words"
	PathWord           = "/words/:id"
	PathGroups         = "/groups"
	PathGroup          = "/groups/:id"
	PathSessions       = "/sessions"
	PathSession        = "/sessions/:id"
	PathSettings       = "/settings"
)

// Params holds the named path segments of a match.
type Params map[string]string

// ID parses the "id" parameter.
func (p Params) ID() (int, error) {
	raw, ok := p["id"]
	if !ok {
		return 0, fmt.Errorf("no id in path")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Factory builds the screen for a matched route. It runs on every
// navigation to the route, never at table construction.
type Factory func(p Params) screen.Screen

// Redirect sends a route elsewhere instead of rendering a screen.
type Redirect struct {
	Path    string
	Replace bool
}

// Route maps a path pattern to a screen factory or a redirect.
// Patterns use ":name" for a single parametric segment.
type Route struct {
	Pattern  string
	Redirect *Redirect
	Factory  Factory
}

// Resolution is the outcome of matching a path against a Table.
// Path is the path as requested, before any redirect runs.
type Resolution struct {
	Path    string
	Matched []Route
	Params  Params
}

// Redirect returns the redirect of the matched route, if any.
func (r Resolution) Redirect() *Redirect {
	if len(r.Matched) == 0 {
		return nil
	}
	return r.Matched[0].Redirect
}

// Table is a static path table backed by a gorilla/mux matcher.
type Table struct {
	routes map[string]Route
	mux    *mux.Router
}

// NewTable compiles routes. Patterns must be unique.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{
		routes: make(map[string]Route, len(routes)),
		mux:    mux.NewRouter(),
	}
	for _, r := range routes {
		if _, dup := t.routes[r.Pattern]; dup {
			return nil, fmt.Errorf("duplicate route %q", r.Pattern)
		}
		mr := t.mux.NewRoute().Name(r.Pattern).Path(muxPattern(r.Pattern))
		if err := mr.GetError(); err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Pattern, err)
		}
		t.routes[r.Pattern] = r
	}
	return t, nil
}

// Resolve matches path. Unknown paths resolve to zero matched routes.
func (t *Table) Resolve(path string) Resolution {
	res := Resolution{Path: path}

	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: path}}
	var m mux.RouteMatch
	if !t.mux.Match(req, &m) || m.Route == nil {
		return res
	}

	route, ok := t.routes[m.Route.GetName()]
	if !ok {
		return res
	}
	res.Matched = []Route{route}
	res.Params = Params(m.Vars)
	return res
}

// muxPattern turns "/words/:id" into "/words/{id}".
func muxPattern(pattern string) string {
	segs := strings.Split(pattern, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			segs[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}

// PortalRoutes is the portal's static path table. factories is keyed by
// pattern; "/" is always a replace-redirect to the dashboard.
func PortalRoutes(factories map[string]Factory) []Route {
	patterns := []string{
		PathDashboard,
		PathActivities,
		PathActivity,
		PathActivityLaunch,
		PathWords,
		PathWord,
		PathGroups,
		PathGroup,
		PathSessions,
		PathSession,
		PathSettings,
	}

	routes := []Route{{
		Pattern:  PathRoot,
		Redirect: &Redirect{Path: PathDashboard, Replace: true},
	}}
	for _, p := range patterns {
		routes = append(routes, Route{Pattern: p, Factory: factories[p]})
	}
	return routes
}
