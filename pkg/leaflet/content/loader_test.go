package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newBlogServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestLoader(t *testing.T, baseURL string) *Loader {
	t.Helper()

	l, err := New(Options{BaseURL: baseURL})
	require.NoError(t, err)
	return l
}

func TestLoadManifest_PreservesOrder(t *testing.T) {
	srv := newBlogServer(t, map[string]string{
		"/posts/posts.json": `[
			{"slug":"c","title":"Gamma","date":"2024-03-01","excerpt":"third"},
			{"slug":"a","title":"Alpha","date":"2024-01-01","excerpt":"first"},
			{"slug":"b","title":"Beta","date":"2024-02-01","excerpt":"second","tags":["x"]}
		]`,
	})
	l := newTestLoader(t, srv.URL+"/")

	manifest, err := l.LoadManifest(context.Background(), DefaultManifestPath)
	require.NoError(t, err)
	require.Len(t, manifest, 3)

	assert.Equal(t, []string{"c", "a", "b"}, []string{manifest[0].Slug, manifest[1].Slug, manifest[2].Slug})
	assert.Equal(t, PostSummary{Slug: "a", Title: "Alpha", Date: "2024-01-01", Excerpt: "first"}, manifest[1])
}

func TestLoadManifest_NotFoundIsFetchError(t *testing.T) {
	srv := newBlogServer(t, nil)
	l := newTestLoader(t, srv.URL+"/")

	_, err := l.LoadManifest(context.Background(), DefaultManifestPath)
	require.Error(t, err)
	assert.True(t, IsFetchError(err))
	assert.False(t, IsParseError(err))

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, srv.URL+"/posts/posts.json", fetchErr.URL)
}

func TestLoadManifest_TransportFailureIsFetchError(t *testing.T) {
	boom := errors.New("connection refused")
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})}

	l, err := New(Options{BaseURL: "http://blog.invalid/", Client: client})
	require.NoError(t, err)

	_, err = l.LoadManifest(context.Background(), DefaultManifestPath)
	require.Error(t, err)
	assert.True(t, IsFetchError(err))
	assert.ErrorIs(t, err, boom)
}

func TestLoadManifest_MalformedBodyIsParseError(t *testing.T) {
	cases := map[string]string{
		"not json":      `<html>oops</html>`,
		"object":        `{"slug":"a"}`,
		"null":          `null`,
		"null entry":    `[null]`,
		"wrong type":    `[{"slug":1,"title":"t","date":"d","excerpt":"e"}]`,
		"missing field": `[{"slug":"a","title":"t","date":"d"}]`,
		"trailing data": `[] []`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newBlogServer(t, map[string]string{"/posts/posts.json": body})
			l := newTestLoader(t, srv.URL+"/")

			_, err := l.LoadManifest(context.Background(), DefaultManifestPath)
			require.Error(t, err)
			assert.True(t, IsParseError(err), "got %v", err)
			assert.False(t, IsFetchError(err))
		})
	}
}

func TestLoadManifest_EmptyArray(t *testing.T) {
	srv := newBlogServer(t, map[string]string{"/posts/posts.json": `[]`})
	l := newTestLoader(t, srv.URL+"/")

	manifest, err := l.LoadManifest(context.Background(), DefaultManifestPath)
	require.NoError(t, err)
	assert.Empty(t, manifest)
}

func TestLoadPostBody_ReturnsRawMarkup(t *testing.T) {
	markup := "<h1>Hello</h1>\n<script>trusted()</script>"
	srv := newBlogServer(t, map[string]string{"/posts/hello-world.html": markup})
	l := newTestLoader(t, srv.URL+"/")

	body, err := l.LoadPostBody(context.Background(), "hello-world")
	require.NoError(t, err)
	assert.Equal(t, markup, body)
}

func TestLoadPostBody_Failures(t *testing.T) {
	srv := newBlogServer(t, nil)
	l := newTestLoader(t, srv.URL+"/")

	_, err := l.LoadPostBody(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsFetchError(err))

	_, err = l.LoadPostBody(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsFetchError(err))
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestPostURL_FollowsManifestDirectory(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		manifest string
		slug     string
		want     string
	}{
		{"default", "https://blog.example.com/", "", "first", "https://blog.example.com/posts/first.html"},
		{"subdirectory base", "https://example.com/blog/", "posts/posts.json", "x", "https://example.com/blog/posts/x.html"},
		{"page base", "https://example.com/blog/index.html", "posts/posts.json", "x", "https://example.com/blog/posts/x.html"},
		{"root manifest", "https://example.com/", "posts.json", "x", "https://example.com/x.html"},
		{"nested manifest", "https://example.com/", "data/v2/index.json", "y", "https://example.com/data/v2/y.html"},
		{"escaped slug", "https://example.com/", "", "a b", "https://example.com/posts/a%20b.html"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(Options{BaseURL: tc.base, ManifestPath: tc.manifest})
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.PostURL(tc.slug))
		})
	}
}

func TestFetchError_Message(t *testing.T) {
	statusErr := &FetchError{URL: "http://x/p.html", StatusCode: 500}
	assert.Equal(t, "content: fetch http://x/p.html: unexpected status 500", statusErr.Error())

	wrapped := &FetchError{URL: "http://x/p.html", Err: errors.New("eof")}
	assert.Equal(t, "content: fetch http://x/p.html: eof", wrapped.Error())
}
