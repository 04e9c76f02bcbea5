package nav

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/content"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/messages"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/router"
)

type fakeSurface struct {
	mu       sync.Mutex
	items    []ListItem
	rendered int
	listShow bool
	postShow bool
	content  Content
	contents []Content
	scrolls  int
	banner   string

	onItem    func(string)
	onBack    func()
	onHistory func(string)
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{listShow: true}
}

func (s *fakeSurface) RenderList(items []ListItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.rendered++
}

func (s *fakeSurface) ShowList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listShow, s.postShow = true, false
}

func (s *fakeSurface) ShowPost() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listShow, s.postShow = false, true
}

func (s *fakeSurface) SetPostContent(c Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = c
	s.contents = append(s.contents, c)
}

func (s *fakeSurface) ScrollToTop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrolls++
}

func (s *fakeSurface) ShowBanner(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banner = message
}

func (s *fakeSurface) OnItemClicked(fn func(string))      { s.onItem = fn }
func (s *fakeSurface) OnBackClicked(fn func())            { s.onBack = fn }
func (s *fakeSurface) OnHistoryNavigated(fn func(string)) { s.onHistory = fn }

func (s *fakeSurface) current() Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// assertConsistent checks that exactly one view is visible and that view
// and history agree with the controller state.
func assertConsistent(t *testing.T, c *Controller, s *fakeSurface, h *router.Router) {
	t.Helper()

	s.mu.Lock()
	listShow, postShow := s.listShow, s.postShow
	s.mu.Unlock()

	assert.NotEqual(t, listShow, postShow, "exactly one view must be visible")
	assert.Equal(t, c.State().IsPost(), postShow)
	assert.Equal(t, c.State().Slug(), h.Fragment())
}

type fakeLoader struct {
	manifest     content.Manifest
	manifestErr  error
	manifestGate chan struct{}
	bodies       map[string]string
	gates        map[string]chan struct{}

	mu    sync.Mutex
	calls []string
}

func (l *fakeLoader) LoadManifest(ctx context.Context, _ string) (content.Manifest, error) {
	if l.manifestGate != nil {
		select {
		case <-l.manifestGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return l.manifest, l.manifestErr
}

func (l *fakeLoader) LoadPostBody(ctx context.Context, slug string) (string, error) {
	l.mu.Lock()
	l.calls = append(l.calls, slug)
	l.mu.Unlock()

	if gate, ok := l.gates[slug]; ok {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	body, ok := l.bodies[slug]
	if !ok {
		return "", &content.FetchError{URL: slug + ".html", StatusCode: 404}
	}
	return body, nil
}

func (l *fakeLoader) loads() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type harness struct {
	ctrl    *Controller
	surface *fakeSurface
	history *router.Router
	loader  *fakeLoader
	loop    *Loop
}

func newHarness(t *testing.T, fragment string, loader *fakeLoader) *harness {
	t.Helper()

	h := &harness{
		surface: newFakeSurface(),
		history: router.New("/", router.ParseFragment(fragment)),
		loader:  loader,
		loop:    NewLoop(),
	}
	h.ctrl = New(h.surface, h.history, loader, h.loop, Options{})
	h.history.OnNavigate(func(route router.Route) {
		h.ctrl.HistoryNavigated(route.Slug)
	})

	return h
}

func (h *harness) settle(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.loop.Settle(ctx))
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	h.ctrl.Start(context.Background())
	h.settle(t)
}

func blogLoader() *fakeLoader {
	return &fakeLoader{
		manifest: content.Manifest{
			{Slug: "a", Title: "Alpha", Date: "2024-01-01", Excerpt: "First"},
			{Slug: "b", Title: "Beta", Date: "2024-02-01", Excerpt: "Second"},
			{Slug: "c", Title: "Gamma", Date: "2024-03-01", Excerpt: "Third"},
		},
		bodies: map[string]string{
			"a":       "<p>A</p>",
			"b":       "<p>B</p>",
			"c":       "<p>C</p>",
			"my-slug": "<p>deep</p>",
		},
	}
}

func TestController_RendersManifestInOrder(t *testing.T) {
	h := newHarness(t, "", blogLoader())
	h.start(t)

	assert.Equal(t, []ListItem{
		{Slug: "a", Title: "Alpha", Meta: "2024-01-01 — First"},
		{Slug: "b", Title: "Beta", Meta: "2024-02-01 — Second"},
		{Slug: "c", Title: "Gamma", Meta: "2024-03-01 — Third"},
	}, h.surface.items)
	assert.Equal(t, ListView(), h.ctrl.State())
	assert.Empty(t, h.loader.loads())
	assertConsistent(t, h.ctrl, h.surface, h.history)
}

func TestController_OpenPostShowsLoadingThenBody(t *testing.T) {
	loader := blogLoader()
	loader.gates = map[string]chan struct{}{"a": make(chan struct{})}
	h := newHarness(t, "", loader)
	h.start(t)

	h.ctrl.OpenPost("a")

	// The view switch happens before the body arrives.
	assert.Equal(t, PostView("a"), h.ctrl.State())
	assert.Equal(t, ContentLoading, h.surface.current().Kind)
	assert.Equal(t, "Loading…", h.surface.current().Body)
	assertConsistent(t, h.ctrl, h.surface, h.history)

	close(loader.gates["a"])
	h.settle(t)

	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>A</p>"}, h.surface.current())
	assert.Equal(t, 1, h.surface.scrolls)
	assert.Equal(t, "/#a", h.history.Location())
	assertConsistent(t, h.ctrl, h.surface, h.history)
}

// Back and forward follow browser session history: ClosePost pushes an entry
// without slug, so forward after back returns to that entry, the list. The
// literal "open, close, back, forward shows the post" sequence only holds when
// history navigation pushes again, which would break back/forward agreement.
// One more back reaches the post.
func TestController_RoundTripNavigation(t *testing.T) {
	h := newHarness(t, "", blogLoader())
	h.start(t)

	h.ctrl.OpenPost("a")
	h.settle(t)
	h.ctrl.ClosePost()
	h.settle(t)
	assert.Equal(t, ListView(), h.ctrl.State())
	assert.Equal(t, "/", h.history.Location())
	assertConsistent(t, h.ctrl, h.surface, h.history)

	require.True(t, h.history.Back())
	h.settle(t)
	assert.Equal(t, PostView("a"), h.ctrl.State())
	assertConsistent(t, h.ctrl, h.surface, h.history)

	require.True(t, h.history.Forward())
	h.settle(t)
	assert.Equal(t, ListView(), h.ctrl.State())
	assertConsistent(t, h.ctrl, h.surface, h.history)

	require.True(t, h.history.Back())
	h.settle(t)
	assert.Equal(t, PostView("a"), h.ctrl.State())
	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>A</p>"}, h.surface.current())
	assert.Equal(t, []string{"a", "a", "a"}, h.loader.loads(), "every visit reloads the body")
	assert.Equal(t, 3, h.history.Stack().Len(), "back/forward never push")
}

func TestController_DeepLink(t *testing.T) {
	h := newHarness(t, "#my-slug", blogLoader())
	h.start(t)

	assert.Equal(t, PostView("my-slug"), h.ctrl.State())
	assert.False(t, h.surface.listShow)
	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>deep</p>"}, h.surface.current())
	assert.Equal(t, 1, h.history.Stack().Len(), "deep link must not push")
	assert.Len(t, h.surface.items, 3, "list is rendered before the deep link opens")
	assertConsistent(t, h.ctrl, h.surface, h.history)
}

func TestController_OpenWhileManifestLoadsBeatsDeepLink(t *testing.T) {
	loader := blogLoader()
	loader.manifestGate = make(chan struct{})
	h := newHarness(t, "#my-slug", loader)

	h.ctrl.Start(context.Background())
	h.loop.Drain()

	h.ctrl.OpenPost("b")
	close(loader.manifestGate)
	h.settle(t)

	assert.Equal(t, PostView("b"), h.ctrl.State())
	assert.Equal(t, "/#b", h.history.Location())
	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>B</p>"}, h.surface.current())
	assert.Equal(t, []string{"b"}, h.loader.loads(), "the deep link is not loaded")
	assert.Len(t, h.surface.items, 3)
	assertConsistent(t, h.ctrl, h.surface, h.history)
}

func TestController_FailedPostLoad(t *testing.T) {
	h := newHarness(t, "", blogLoader())
	h.start(t)

	h.ctrl.OpenPost("a")
	h.settle(t)
	h.ctrl.OpenPost("missing")
	h.settle(t)

	assert.Equal(t, PostView("missing"), h.ctrl.State())
	assert.True(t, h.surface.postShow)
	assert.Equal(t, Content{Kind: ContentError, Body: "Could not load post."}, h.surface.current())
	assert.Equal(t, 1, h.surface.scrolls, "errors do not reset scroll")
	assertConsistent(t, h.ctrl, h.surface, h.history)

	// Still usable.
	h.ctrl.ClosePost()
	h.settle(t)
	assert.Equal(t, ListView(), h.ctrl.State())
}

func TestController_ReopenPushesEachTime(t *testing.T) {
	h := newHarness(t, "", blogLoader())
	h.start(t)

	h.ctrl.OpenPost("a")
	h.ctrl.OpenPost("a")
	h.settle(t)

	assert.Equal(t, 3, h.history.Stack().Len())
	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>A</p>"}, h.surface.current())
	assert.Equal(t, 1, h.surface.scrolls, "the first load is superseded")
	assertConsistent(t, h.ctrl, h.surface, h.history)
}

func TestController_LastRequestedPostWins(t *testing.T) {
	loader := blogLoader()
	loader.gates = map[string]chan struct{}{
		"a": make(chan struct{}),
		"b": make(chan struct{}),
	}
	h := newHarness(t, "", loader)
	h.start(t)

	h.ctrl.OpenPost("a")
	h.ctrl.OpenPost("b")

	close(loader.gates["b"])
	require.Eventually(t, func() bool {
		return len(loader.loads()) == 2 && h.loop.Pending() == 1
	}, 5*time.Second, time.Millisecond)
	h.loop.Drain()
	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>B</p>"}, h.surface.current())

	// "a" resolves last but was requested first.
	close(loader.gates["a"])
	h.settle(t)

	assert.Equal(t, PostView("b"), h.ctrl.State())
	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>B</p>"}, h.surface.current())
	assert.Equal(t, 1, h.surface.scrolls)
}

func TestController_LateBodyAfterClose(t *testing.T) {
	loader := blogLoader()
	loader.gates = map[string]chan struct{}{"a": make(chan struct{})}
	h := newHarness(t, "", loader)
	h.start(t)

	h.ctrl.OpenPost("a")
	h.ctrl.ClosePost()
	close(loader.gates["a"])
	h.settle(t)

	assert.Equal(t, ListView(), h.ctrl.State())
	assert.Equal(t, ContentLoading, h.surface.current().Kind)
	assert.Zero(t, h.surface.scrolls)
	assertConsistent(t, h.ctrl, h.surface, h.history)
}

func TestController_CloseInListIsNoop(t *testing.T) {
	h := newHarness(t, "", blogLoader())
	h.start(t)

	h.ctrl.ClosePost()
	h.settle(t)

	assert.Equal(t, 1, h.history.Stack().Len())
	assert.Equal(t, ListView(), h.ctrl.State())
}

func TestController_OpenEmptySlugIgnored(t *testing.T) {
	h := newHarness(t, "", blogLoader())
	h.start(t)

	h.ctrl.OpenPost("")
	h.settle(t)

	assert.Equal(t, 1, h.history.Stack().Len())
	assert.Equal(t, ListView(), h.ctrl.State())
	assert.Empty(t, h.loader.loads())
}

func TestController_ManifestFailure(t *testing.T) {
	loader := blogLoader()
	loader.manifestErr = &content.FetchError{URL: "posts/posts.json", StatusCode: 500}

	var startupErr error
	surface := newFakeSurface()
	history := router.New("/", router.PostRoute("b"))
	loop := NewLoop()
	ctrl := New(surface, history, loader, loop, Options{
		OnStartup: func(err error) { startupErr = err },
	})

	ctrl.Start(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loop.Settle(ctx))

	assert.True(t, content.IsFetchError(startupErr))
	assert.Equal(t, "Could not load posts.", surface.banner)
	assert.Empty(t, surface.items)
	assert.Equal(t, 1, surface.rendered)

	// The deep link is still honoured.
	assert.Equal(t, PostView("b"), ctrl.State())
	assert.Equal(t, Content{Kind: ContentMarkup, Body: "<p>B</p>"}, surface.current())
}

func TestController_LocalizedMessages(t *testing.T) {
	catalog, err := messages.New("de")
	require.NoError(t, err)

	surface := newFakeSurface()
	history := router.New("/", router.ListRoute)
	loop := NewLoop()
	ctrl := New(surface, history, blogLoader(), loop, Options{Messages: catalog})
	ctrl.Start(context.Background())

	ctrl.OpenPost("missing")
	assert.Equal(t, catalog.Text(messages.Loading), surface.current().Body)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loop.Settle(ctx))

	assert.Equal(t, catalog.Text(messages.PostError), surface.current().Body)
	assert.NotEqual(t, "Could not load post.", surface.current().Body)
}

func TestController_Bind(t *testing.T) {
	h := newHarness(t, "", blogLoader())
	h.ctrl.Bind(h.surface)
	h.start(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.surface.onItem("c")
	}()
	<-done
	h.settle(t)
	assert.Equal(t, PostView("c"), h.ctrl.State())

	h.surface.onBack()
	h.settle(t)
	assert.Equal(t, ListView(), h.ctrl.State())
	assert.Equal(t, 3, h.history.Stack().Len())

	h.surface.onHistory("b")
	h.settle(t)
	assert.Equal(t, PostView("b"), h.ctrl.State())
	assert.Equal(t, 3, h.history.Stack().Len(), "history navigation does not push")
}

func TestController_CancelledContext(t *testing.T) {
	loader := blogLoader()
	loader.gates = map[string]chan struct{}{"a": make(chan struct{})}
	h := newHarness(t, "", loader)

	ctx, cancel := context.WithCancel(context.Background())
	h.ctrl.Start(ctx)
	h.settle(t)

	h.ctrl.OpenPost("a")
	cancel()
	h.settle(t)

	assert.Equal(t, PostView("a"), h.ctrl.State())
	assert.Equal(t, ContentError, h.surface.current().Kind)
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}
