package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// PostSummary describes one post in the manifest. Date is display text and
// is never parsed.
type PostSummary struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
}

// Manifest is the ordered list of post summaries for a blog.
type Manifest []PostSummary

// wireSummary uses pointers so that missing fields can be told apart from
// empty strings.
type wireSummary struct {
	Slug    *string `json:"slug"`
	Title   *string `json:"title"`
	Date    *string `json:"date"`
	Excerpt *string `json:"excerpt"`
}

// DecodeManifest parses a manifest document: a JSON array of objects that
// each carry the string fields slug, title, date and excerpt. Unknown fields
// are ignored. Order is preserved.
func DecodeManifest(data []byte) (Manifest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("manifest is not a JSON array")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))

	var entries []*wireSummary
	if err := dec.Decode(&entries); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after manifest")
	}

	manifest := make(Manifest, 0, len(entries))
	for i, entry := range entries {
		if entry == nil {
			return nil, fmt.Errorf("entry %d is null", i)
		}
		if missing := entry.missingField(); missing != "" {
			return nil, fmt.Errorf("entry %d: missing %q", i, missing)
		}
		manifest = append(manifest, PostSummary{
			Slug:    *entry.Slug,
			Title:   *entry.Title,
			Date:    *entry.Date,
			Excerpt: *entry.Excerpt,
		})
	}

	return manifest, nil
}

func (w *wireSummary) missingField() string {
	switch {
	case w.Slug == nil:
		return "slug"
	case w.Title == nil:
		return "title"
	case w.Date == nil:
		return "date"
	case w.Excerpt == nil:
		return "excerpt"
	}
	return ""
}
