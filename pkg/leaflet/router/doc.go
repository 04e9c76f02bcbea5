// Package router provides browser-style session history for surfaces that
// have no browser underneath them.
//
// A Router keeps a stack of entries with a cursor, the way window.history
// does. Pushing truncates everything after the cursor. Back and Forward move
// the cursor without pushing and report the newly current route to the
// navigation handler, the equivalent of a popstate event.
//
// Each entry carries a Route: either the list (no slug) or a single post.
// Routes map to URL fragments: an empty fragment is the list, "#slug" is the
// post with that slug.
//
// # Basic Usage
//
//	r := router.New("/", router.ParseFragment(startFragment))
//
//	r.OnNavigate(func(route router.Route) {
//	    // Back/forward moved the cursor; show route without pushing.
//	    controller.HistoryNavigated(route.Slug)
//	})
//
//	r.Push("hello-world") // user opened a post
//	r.Push("")            // user went back to the list
//	r.Back()              // browser-back: handler sees "hello-world"
//
// Router satisfies nav.History, so it can be handed straight to a
// nav.Controller.
package router
