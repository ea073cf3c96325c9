// Package navigation holds the session-lifetime selection used by the
// breadcrumb trail and the sidebar.
package navigation

import (
	"strconv"
	"strings"
	"sync"
)

// GroupRef names the currently viewed word group.
type GroupRef struct {
	ID   int
	Name string
}

// WordRef names the currently viewed word.
type WordRef struct {
	ID    int
	Kanji string
}

// ActivityRef names the currently viewed study activity.
type ActivityRef struct {
	ID    int
	Title string
}

// Store keeps at most one ref of each kind. The zero value is empty and
// ready to use. Refs persist across navigations until overwritten or Reset.
type Store struct {
	mu       sync.RWMutex
	group    *GroupRef
	word     *WordRef
	activity *ActivityRef
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetGroup(ref *GroupRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.group = clone(ref)
}

func (s *Store) SetWord(ref *WordRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.word = clone(ref)
}

func (s *Store) SetActivity(ref *ActivityRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = clone(ref)
}

func (s *Store) Group() *GroupRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.group)
}

func (s *Store) Word() *WordRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.word)
}

func (s *Store) Activity() *ActivityRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.activity)
}

// Reset clears all three refs at once.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.group, s.word, s.activity = nil, nil, nil
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Section is a top-level sidebar entry.
type Section struct {
	Path  string
	Label string
}

// Sections lists the sidebar in display order.
var Sections = []Section{
	{Path: "/dashboard", Label: "Dashboard"},
	{Path: "/study-activities", Label: "Study Activities"},
	{Path: "/words", Label: "Words"},
	{Path: "/groups", Label: "Word Groups"},
	{Path: "/sessions", Label: "Sessions"},
	{Path: "/settings", Label: "Settings"},
}

var sectionLabels = func() map[string]string {
	m := make(map[string]string, len(Sections))
	for _, s := range Sections {
		m[strings.TrimPrefix(s.Path, "/")] = s.Label
	}
	return m
}()

// Crumb is one breadcrumb segment.
type Crumb struct {
	Label string
	Path  string
}

// Breadcrumbs renders one crumb per path segment. Top-level sections use a
// static label. An id segment under groups, words or study-activities shows
// the stored ref's name when the ref's id matches, and the raw id otherwise.
func Breadcrumbs(path string, s *Store) []Crumb {
	segs := segments(path)
	if len(segs) == 0 {
		return []Crumb{{Label: "Dashboard", Path: "/dashboard"}}
	}

	crumbs := make([]Crumb, 0, len(segs))
	for i := range segs {
		target := "/" + strings.Join(segs[:i+1], "/")
		crumbs = append(crumbs, Crumb{Label: crumbLabel(segs, i, s), Path: target})
	}
	return crumbs
}

// Title is the label of the last crumb, the page-level breadcrumb.
func Title(path string, s *Store) string {
	crumbs := Breadcrumbs(path, s)
	return crumbs[len(crumbs)-1].Label
}

func crumbLabel(segs []string, i int, s *Store) string {
	seg := segs[i]
	if i == 0 {
		if label, ok := sectionLabels[seg]; ok {
			return label
		}
		return seg
	}
	if i == 2 && seg == "launch" {
		return "Launch"
	}
	if i != 1 {
		return seg
	}

	id, err := strconv.Atoi(seg)
	if err != nil || s == nil {
		return seg
	}
	switch segs[0] {
	case "groups":
		if ref := s.Group(); ref != nil && ref.ID == id {
			return ref.Name
		}
	case "words":
		if ref := s.Word(); ref != nil && ref.ID == id {
			return ref.Kanji
		}
	case "study-activities":
		if ref := s.Activity(); ref != nil && ref.ID == id {
			return ref.Title
		}
	}
	return seg
}

// ActiveSection returns the sidebar path that owns path, or "" when none
// does. Nested routes belong to their top-level section.
func ActiveSection(path string) string {
	segs := segments(path)
	if len(segs) == 0 {
		return "/dashboard"
	}
	for _, s := range Sections {
		if s.Path == "/"+segs[0] {
			return s.Path
		}
	}
	return ""
}

func segments(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
