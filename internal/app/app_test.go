package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/config"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/router"
)

func TestFlags_Load(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Flags{BaseURL: "https://flags.test/", LogLevel: "debug", Language: "de"}.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://flags.test/", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, config.Default().ManifestPath, cfg.ManifestPath)
}

func TestFlags_LoadBaseURLIsDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Flags{BaseURL: "https://example.com/blog"}.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/blog/", cfg.BaseURL)

	session, err := NewSession(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/blog/posts/a.html", session.Loader.PostURL("a"))
}

func TestFlags_LoadValidates(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Flags{BaseURL: "not a url"}.Load()
	assert.Error(t, err)
}

type recorder struct {
	items  []nav.ListItem
	banner string
	post   bool
	body   nav.Content
}

func (r *recorder) RenderList(items []nav.ListItem) { r.items = items }
func (r *recorder) ShowList()                       { r.post = false }
func (r *recorder) ShowPost()                       { r.post = true }
func (r *recorder) SetPostContent(c nav.Content)    { r.body = c }
func (r *recorder) ScrollToTop()                    {}
func (r *recorder) ShowBanner(message string)       { r.banner = message }
func (r *recorder) OnItemClicked(func(string))      {}
func (r *recorder) OnBackClicked(func())            {}
func (r *recorder) OnHistoryNavigated(func(string)) {}

func TestSession_Controller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blog/posts/posts.json":
			_, _ = w.Write([]byte(`[{"slug":"a","title":"A","date":"2024-01-01","excerpt":"x"}]`))
		case "/blog/posts/a.html":
			_, _ = w.Write([]byte("<p>A</p>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.BaseURL = srv.URL + "/blog/"

	var logs bytes.Buffer
	sess, err := NewSession(cfg, slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	_, err = uuid.Parse(sess.ID)
	require.NoError(t, err)

	loop := nav.NewLoop()
	surface := &recorder{}
	history := router.New("/", router.ParseFragment("#a"))
	ctrl := sess.Controller(surface, history, surface, loop)
	ctrl.Start(t.Context())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loop.Settle(ctx))

	require.Len(t, surface.items, 1)
	assert.Equal(t, nav.PostView("a"), ctrl.State())
	assert.Equal(t, nav.Content{Kind: nav.ContentMarkup, Body: "<p>A</p>"}, surface.body)
	assert.Contains(t, logs.String(), `"msg":"Reader started"`)
	assert.Contains(t, logs.String(), sess.ID)
}

func TestSession_ReportsManifestFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.BaseURL = srv.URL + "/"

	var logs bytes.Buffer
	sess, err := NewSession(cfg, slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)

	loop := nav.NewLoop()
	surface := &recorder{}
	ctrl := sess.Controller(surface, router.New("/", router.ListRoute), surface, loop)
	ctrl.Start(t.Context())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loop.Settle(ctx))

	assert.Equal(t, "Could not load posts.", surface.banner)
	assert.Contains(t, logs.String(), "Manifest is unreachable")
}

func TestNewSession_InvalidLanguage(t *testing.T) {
	cfg := config.Default()
	cfg.Language = "not a tag!"

	_, err := NewSession(cfg, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
	assert.Error(t, err)
}
