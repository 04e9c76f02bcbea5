package nav

import (
	"context"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/content"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/messages"
)

// MetaSeparator joins date and excerpt in a list row's metadata line.
const MetaSeparator = " — "

// Options configures a Controller.
type Options struct {
	ManifestPath string            // Defaults to content.DefaultManifestPath
	Messages     *messages.Catalog // Defaults to messages.Default()
	Logger       *slog.Logger      // Optional; logging is disabled when nil
	OnStartup    func(err error)   // Called on the UI loop once startup finished
}

// Controller owns the view state and keeps it, the surface and the history
// in agreement.
//
// Apart from Bind, every method must be called on the UI loop of the
// Scheduler the controller was built with.
type Controller struct {
	surface Surface
	history History
	loader  Loader
	sched   Scheduler

	manifestPath string
	text         *messages.Catalog
	logger       *slog.Logger
	onStartup    func(err error)

	ctx   context.Context
	state ViewState

	// generation is bumped by every transition. Load results carry the
	// generation they were issued under and are dropped once it moved on.
	generation *atomic.Uint64
}

// New creates a controller in the list view. Nothing is loaded until Start.
func New(surface Surface, history History, loader Loader, sched Scheduler, opts Options) *Controller {
	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath = content.DefaultManifestPath
	}

	text := opts.Messages
	if text == nil {
		text = messages.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(noopHandler{})
	}

	return &Controller{
		surface:      surface,
		history:      history,
		loader:       loader,
		sched:        sched,
		manifestPath: manifestPath,
		text:         text,
		logger:       logger,
		onStartup:    opts.OnStartup,
		ctx:          context.Background(),
		state:        ListView(),
		generation:   atomic.NewUint64(0),
	}
}

// Bind registers the controller's entry points with an event source. The
// registered handlers may be invoked from any goroutine; they post the
// transition to the UI loop.
func (c *Controller) Bind(ev Events) {
	ev.OnItemClicked(func(slug string) {
		c.sched.Post(func() { c.OpenPost(slug) })
	})
	ev.OnBackClicked(func() {
		c.sched.Post(c.ClosePost)
	})
	ev.OnHistoryNavigated(func(slug string) {
		c.sched.Post(func() { c.HistoryNavigated(slug) })
	})
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	return c.state
}

// Start shows the list view and loads the manifest. Once the list is
// rendered, a non-empty URL fragment seen at Start opens that post without
// pushing a history entry, unless the user navigated in the meantime. ctx
// bounds every load the controller issues.
func (c *Controller) Start(ctx context.Context) {
	c.ctx = ctx
	c.state = ListView()
	c.surface.ShowList()

	deepLink := c.history.Fragment()
	gen := c.generation.Load()

	c.sched.Go(func() func() {
		manifest, err := c.loader.LoadManifest(ctx, c.manifestPath)
		return func() { c.finishStartup(manifest, err, deepLink, gen) }
	})
}

func (c *Controller) finishStartup(manifest content.Manifest, err error, deepLink string, gen uint64) {
	if err != nil {
		c.logger.Error("Failed to load manifest", "path", c.manifestPath, "error", err)
		c.surface.RenderList(nil)
		c.surface.ShowBanner(c.text.Text(messages.ManifestError))
	} else {
		c.surface.RenderList(listItems(manifest))
		c.logger.Info("Rendered post list", "posts", len(manifest))
	}

	// A transition made while the manifest loaded takes precedence.
	if deepLink != "" && c.generation.Load() == gen {
		c.logger.Debug("Opening deep link", "slug", deepLink)
		c.enterPost(deepLink)
	}

	if c.onStartup != nil {
		c.onStartup(err)
	}
}

// OpenPost pushes a history entry for slug and shows that post.
// An empty slug is ignored.
func (c *Controller) OpenPost(slug string) {
	if slug == "" {
		c.logger.Debug("Ignoring open without slug")
		return
	}
	c.history.Push(slug)
	c.enterPost(slug)
}

// ClosePost pushes a history entry without slug and shows the list.
// It does nothing when the list is already shown.
func (c *Controller) ClosePost() {
	if !c.state.IsPost() {
		return
	}
	c.history.Push("")
	c.enterList()
}

// HistoryNavigated shows what the now-current history entry describes
// without pushing: the post for a non-empty slug, the list otherwise.
func (c *Controller) HistoryNavigated(slug string) {
	if slug == "" {
		c.enterList()
		return
	}
	c.enterPost(slug)
}

func (c *Controller) enterList() {
	c.generation.Inc()
	c.state = ListView()
	c.surface.ShowList()
	c.logger.Debug("Showing list")
}

func (c *Controller) enterPost(slug string) {
	gen := c.generation.Inc()
	c.state = PostView(slug)
	c.surface.ShowPost()
	c.surface.SetPostContent(Content{Kind: ContentLoading, Body: c.text.Text(messages.Loading)})
	c.logger.Debug("Showing post", "slug", slug, "generation", gen)

	ctx := c.ctx
	c.sched.Go(func() func() {
		body, err := c.loader.LoadPostBody(ctx, slug)
		if c.generation.Load() != gen {
			return nil
		}
		return func() { c.finishPost(gen, slug, body, err) }
	})
}

func (c *Controller) finishPost(gen uint64, slug, body string, err error) {
	if c.generation.Load() != gen || c.state != PostView(slug) {
		c.logger.Debug("Dropping superseded post load", "slug", slug, "generation", gen)
		return
	}

	if err != nil {
		c.logger.Warn("Failed to load post", "slug", slug, "error", err)
		c.surface.SetPostContent(Content{Kind: ContentError, Body: c.text.Text(messages.PostError)})
		return
	}

	c.surface.SetPostContent(Content{Kind: ContentMarkup, Body: body})
	c.surface.ScrollToTop()
}

func listItems(manifest content.Manifest) []ListItem {
	items := make([]ListItem, 0, len(manifest))
	for _, post := range manifest {
		items = append(items, ListItem{
			Slug:  post.Slug,
			Title: post.Title,
			Meta:  post.Date + MetaSeparator + post.Excerpt,
		})
	}
	return items
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return n }
func (n noopHandler) WithGroup(string) slog.Handler           { return n }
