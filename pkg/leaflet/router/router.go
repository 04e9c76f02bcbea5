package router

// NavigateFunc is called after Back or Forward moved the cursor.
// It receives the route of the entry that is now current.
type NavigateFunc func(route Route)

// Router owns the session history for one page.
// It is not safe for concurrent use; call it from the UI loop only.
type Router struct {
	path       string
	stack      *Stack
	onNavigate NavigateFunc
}

// New creates a Router for the page at path, starting on route start.
func New(path string, start Route) *Router {
	if path == "" {
		path = "/"
	}
	return &Router{
		path:  path,
		stack: NewStack(start),
	}
}

// OnNavigate sets the handler that is told about back/forward navigation.
func (r *Router) OnNavigate(fn NavigateFunc) *Router {
	r.onNavigate = fn
	return r
}

// Push records a new entry. An empty slug records the list, whose URL has
// no fragment. The navigation handler is not called.
func (r *Router) Push(slug string) {
	r.stack.Push(Route{Slug: slug})
}

// Fragment returns the current fragment without its leading '#'.
func (r *Router) Fragment() string {
	return r.stack.Current().Route.Slug
}

// Back steps one entry back and notifies the navigation handler.
// Returns false, without notifying, when there is nothing to go back to.
func (r *Router) Back() bool {
	entry, moved := r.stack.Back()
	if !moved {
		return false
	}
	r.notify(entry.Route)
	return true
}

// Forward steps one entry forward and notifies the navigation handler.
// Returns false, without notifying, when there is nothing to go forward to.
func (r *Router) Forward() bool {
	entry, moved := r.stack.Forward()
	if !moved {
		return false
	}
	r.notify(entry.Route)
	return true
}

// Current returns the route of the current entry.
func (r *Router) Current() Route {
	return r.stack.Current().Route
}

// Location returns the page URL for the current entry, path plus fragment.
func (r *Router) Location() string {
	return r.path + r.Current().Hash()
}

// Stack returns the underlying history stack.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) notify(route Route) {
	if r.onNavigate != nil {
		r.onNavigate(route)
	}
}
