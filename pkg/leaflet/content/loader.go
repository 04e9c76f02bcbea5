// Package content retrieves a static blog's manifest and post bodies over
// HTTP.
//
// A Loader issues exactly one GET per call. It never retries and never
// caches beyond what the HTTP client does natively. Failures surface as
// *FetchError (transport or status) or *ParseError (malformed manifest).
package content

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultManifestPath is where the manifest lives relative to the base URL.
	DefaultManifestPath = "posts/posts.json"

	// PostExtension is appended to a slug to name its body resource.
	PostExtension = ".html"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second

	tracerName = "github.com/BrandonKowalski/leaflet/pkg/leaflet/content"
)

// Options configures a Loader.
type Options struct {
	BaseURL      string        // Base that relative resource paths resolve against
	ManifestPath string        // Manifest path; post bodies live in the same directory
	Client       *http.Client  // Optional client; one is built from Timeout when nil
	Timeout      time.Duration // Per-request timeout for the built client
	Logger       *slog.Logger  // Optional; logging is disabled when nil
}

// Loader fetches blog resources relative to a base URL.
type Loader struct {
	base    *url.URL
	postDir string
	client  *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New returns a Loader for the given options.
func New(opts Options) (*Loader, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("content: invalid base url %q: %w", opts.BaseURL, err)
	}

	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath = DefaultManifestPath
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		client = &http.Client{
			Transport: transport,
			Timeout:   timeout,
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(discardHandler{})
	}

	return &Loader{
		base:    base,
		postDir: path.Dir(manifestPath),
		client:  client,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// LoadManifest fetches and decodes the manifest at manifestPath.
func (l *Loader) LoadManifest(ctx context.Context, manifestPath string) (Manifest, error) {
	target := l.resolve(manifestPath)

	ctx, span := l.tracer.Start(ctx, "content.LoadManifest",
		trace.WithAttributes(attribute.String("url.full", target)))
	defer span.End()

	body, err := l.fetch(ctx, target)
	if err != nil {
		return nil, l.fail(span, err)
	}

	manifest, err := DecodeManifest(body)
	if err != nil {
		return nil, l.fail(span, &ParseError{URL: target, Err: err})
	}

	span.SetAttributes(attribute.Int("leaflet.posts", len(manifest)))
	l.logger.Debug("Loaded manifest", "url", target, "posts", len(manifest))

	return manifest, nil
}

// LoadPostBody fetches the pre-rendered markup for slug. The body is
// returned untouched.
func (l *Loader) LoadPostBody(ctx context.Context, slug string) (string, error) {
	target := l.PostURL(slug)

	ctx, span := l.tracer.Start(ctx, "content.LoadPostBody",
		trace.WithAttributes(
			attribute.String("leaflet.slug", slug),
			attribute.String("url.full", target),
		))
	defer span.End()

	if slug == "" {
		return "", l.fail(span, &FetchError{URL: target, Err: ErrEmptySlug})
	}

	body, err := l.fetch(ctx, target)
	if err != nil {
		return "", l.fail(span, err)
	}

	l.logger.Debug("Loaded post body", "slug", slug, "bytes", len(body))

	return string(body), nil
}

// PostURL returns the resolved URL of the body resource for slug.
func (l *Loader) PostURL(slug string) string {
	return l.resolve(path.Join(l.postDir, slug+PostExtension))
}

func (l *Loader) resolve(p string) string {
	ref := &url.URL{Path: strings.TrimPrefix(p, "./")}
	return l.base.ResolveReference(ref).String()
}

func (l *Loader) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode, Err: err}
	}

	return body, nil
}

func (l *Loader) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	l.logger.Warn("Content request failed", "error", err)
	return err
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
