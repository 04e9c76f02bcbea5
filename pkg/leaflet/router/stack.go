package router

import (
	"net/url"
	"strings"
)

// Route identifies what a history entry shows. An empty Slug is the list.
type Route struct {
	Slug string
}

// ListRoute is the route of the post list.
var ListRoute = Route{}

// PostRoute returns the route showing the post with slug.
func PostRoute(slug string) Route {
	return Route{Slug: slug}
}

// ParseFragment converts a URL fragment, with or without its leading '#',
// into a Route. Percent-encoded fragments are decoded; a fragment that does
// not decode is used as-is.
func ParseFragment(fragment string) Route {
	fragment = strings.TrimPrefix(fragment, "#")
	if decoded, err := url.PathUnescape(fragment); err == nil {
		fragment = decoded
	}
	return Route{Slug: fragment}
}

// IsList reports whether the route shows the post list.
func (r Route) IsList() bool {
	return r.Slug == ""
}

// Hash returns the fragment for the route including the leading '#', or the
// empty string for the list.
func (r Route) Hash() string {
	if r.IsList() {
		return ""
	}
	return "#" + url.PathEscape(r.Slug)
}

// Entry is a single history entry.
type Entry struct {
	Route Route
}

// Stack holds history entries and the cursor pointing at the current one.
// A Stack is never empty: it starts with the entry the session loaded with.
type Stack struct {
	entries []Entry
	cursor  int
}

// NewStack creates a stack whose only entry shows start.
func NewStack(start Route) *Stack {
	return &Stack{
		entries: []Entry{{Route: start}},
	}
}

// Push drops every entry after the cursor, appends a new entry and moves
// the cursor onto it.
func (s *Stack) Push(route Route) {
	s.entries = append(s.entries[:s.cursor+1], Entry{Route: route})
	s.cursor = len(s.entries) - 1
}

// Back moves the cursor one entry towards the start.
// Returns false when already at the first entry.
func (s *Stack) Back() (Entry, bool) {
	if s.cursor == 0 {
		return s.entries[s.cursor], false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Forward moves the cursor one entry towards the end.
// Returns false when already at the last entry.
func (s *Stack) Forward() (Entry, bool) {
	if s.cursor == len(s.entries)-1 {
		return s.entries[s.cursor], false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Current returns the entry under the cursor.
func (s *Stack) Current() Entry {
	return s.entries[s.cursor]
}

// CanGoBack reports whether Back would move the cursor.
func (s *Stack) CanGoBack() bool {
	return s.cursor > 0
}

// CanGoForward reports whether Forward would move the cursor.
func (s *Stack) CanGoForward() bool {
	return s.cursor < len(s.entries)-1
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Index returns the cursor position.
func (s *Stack) Index() int {
	return s.cursor
}
