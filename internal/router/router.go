package router

import (
	"fmt"

	"github.com/dr-rompecabezas/langportal/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// Mode selects how a navigation changes the screen stack.
type Mode int

const (
	// Push adds the screen on top of the stack.
	Push Mode = iota
	// Replace swaps the top screen.
	Replace
	// Root clears the stack and starts over from the screen.
	Root
)

// NavigateMsg requests navigation to a path.
type NavigateMsg struct {
	Path string
	Mode Mode
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// NavigateFailedMsg reports a path that matched no route.
type NavigateFailedMsg struct {
	Path string
	Err  error
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(path string, mode Mode) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path, Mode: mode} }
}

// Back returns a command that emits a PopScreenMsg.
func Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// UnknownPathError is returned when a path matches no route.
type UnknownPathError struct {
	Path string
}

func (e *UnknownPathError) Error() string {
	return fmt.Sprintf("no route matches %q", e.Path)
}

type entry struct {
	path   string
	screen screen.Screen
}

// Router manages a stack of screens built from a path table.
type Router struct {
	table *Table
	stack []entry
}

// New creates a Router with an empty stack.
func New(table *Table) *Router {
	return &Router{table: table}
}

// Open resolves path and places its screen on the stack according to mode.
// Redirects are followed; a replace-redirect forces Replace once the stack
// holds a screen.
func (r *Router) Open(path string, mode Mode) (tea.Cmd, error) {
	const maxRedirects = 8

	for range maxRedirects {
		res := r.table.Resolve(path)
		if len(res.Matched) == 0 {
			return nil, &UnknownPathError{Path: path}
		}

		route := res.Matched[0]
		if rd := route.Redirect; rd != nil {
			path = rd.Path
			if rd.Replace && mode == Push {
				mode = Replace
			}
			continue
		}
		if route.Factory == nil {
			return nil, fmt.Errorf("route %q has no screen", route.Pattern)
		}

		s := route.Factory(res.Params)
		switch mode {
		case Replace:
			return r.replace(path, s), nil
		case Root:
			r.stack = r.stack[:0]
			return r.push(path, s), nil
		default:
			return r.push(path, s), nil
		}
	}
	return nil, fmt.Errorf("too many redirects from %q", path)
}

// push adds a screen on top of the stack and calls its Init().
func (r *Router) push(path string, s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, entry{path: path, screen: s})
	return s.Init()
}

// replace swaps the top screen, or pushes onto an empty stack.
func (r *Router) replace(path string, s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.push(path, s)
	}
	r.stack[len(r.stack)-1] = entry{path: path, screen: s}
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].screen
}

// Path returns the path of the top screen, "" when the stack is empty.
func (r *Router) Path() string {
	if len(r.stack) == 0 {
		return ""
	}
	return r.stack[len(r.stack)-1].path
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages. Input goes to the active screen only;
// every other message reaches each screen on the stack, so a screen covered
// while its fetch is in flight still receives the result.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		cmd, err := r.Open(msg.Path, msg.Mode)
		if err != nil {
			return func() tea.Msg { return NavigateFailedMsg{Path: msg.Path, Err: err} }
		}
		return cmd
	case PopScreenMsg:
		return r.Pop()
	}

	if len(r.stack) == 0 {
		return nil
	}

	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		top := len(r.stack) - 1
		updated, cmd := r.stack[top].screen.Update(msg)
		r.stack[top].screen = updated
		return cmd
	}

	cmds := make([]tea.Cmd, 0, len(r.stack))
	for i := range r.stack {
		updated, cmd := r.stack[i].screen.Update(msg)
		r.stack[i].screen = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
