package nav

import (
	"context"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/content"
)

// ListItem is one rendered row of the post list.
type ListItem struct {
	Slug  string // Activating the row opens this post
	Title string
	Meta  string // "date — excerpt"
}

// ContentKind says what the post view currently holds.
type ContentKind int

const (
	ContentLoading ContentKind = iota // Transient loading indicator
	ContentMarkup                     // Post body, pre-rendered markup
	ContentError                      // Fixed load error message
)

func (k ContentKind) String() string {
	switch k {
	case ContentLoading:
		return "loading"
	case ContentMarkup:
		return "markup"
	case ContentError:
		return "error"
	default:
		return "unknown"
	}
}

// Content is what the post view displays. Body is the post markup for
// ContentMarkup and the localized message text otherwise.
type Content struct {
	Kind ContentKind
	Body string
}

// Surface is everything the controller needs from the page: a list
// container, a post content container, two mutually exclusive views and a
// scroll position.
type Surface interface {
	// RenderList replaces the list container's rows.
	RenderList(items []ListItem)
	// ShowList makes the list view visible and hides the post view.
	ShowList()
	// ShowPost makes the post view visible and hides the list view.
	ShowPost()
	// SetPostContent replaces the post content container.
	SetPostContent(c Content)
	// ScrollToTop resets the scroll position of the page.
	ScrollToTop()
	// ShowBanner displays a message above the list, used when the
	// manifest could not be loaded.
	ShowBanner(message string)
}

// History is the session history the controller keeps in sync.
type History interface {
	// Push records a new entry for slug; an empty slug records the list
	// and leaves the URL without a fragment.
	Push(slug string)
	// Fragment returns the current URL fragment without its leading '#'.
	Fragment() string
}

// Loader retrieves blog resources. *content.Loader satisfies it.
type Loader interface {
	LoadManifest(ctx context.Context, manifestPath string) (content.Manifest, error)
	LoadPostBody(ctx context.Context, slug string) (string, error)
}

// Events is a source of user and browser events. Bind registers the
// controller's handlers with it.
type Events interface {
	// OnItemClicked registers the handler for a click on a list row.
	OnItemClicked(fn func(slug string))
	// OnBackClicked registers the handler for the back control.
	OnBackClicked(fn func())
	// OnHistoryNavigated registers the handler for back/forward
	// navigation. The slug is "" when the list entry became current.
	OnHistoryNavigated(fn func(slug string))
}
