// Package messages holds the fixed user-facing strings of the reader and
// their translations.
package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	Loading       = "loading"
	PostError     = "post_error"
	ManifestError = "manifest_error"
	EmptyList     = "empty_list"
	Back          = "back"
	Open          = "open"
	History       = "history"
	Scroll        = "scroll"
	Quit          = "quit"
)

var defaults = map[string]string{
	Loading:       "Loading…",
	PostError:     "Could not load post.",
	ManifestError: "Could not load posts.",
	EmptyList:     "No posts yet.",
	Back:          "Back",
	Open:          "Open",
	History:       "History",
	Scroll:        "Scroll",
	Quit:          "Quit",
}

//go:embed locales/*.toml
var locales embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(locales, "locales/*.toml")
		if err != nil {
			bundleErr = err
			return
		}
		for _, file := range files {
			if _, err := b.LoadMessageFileFS(locales, file); err != nil {
				bundleErr = fmt.Errorf("messages: load %s: %w", file, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Catalog resolves message IDs for one language.
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns a catalog for the BCP 47 language tag lang. Languages without
// translations fall back to English.
func New(lang string) (*Catalog, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("messages: invalid language %q: %w", lang, err)
		}
		tag = parsed
	}

	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	return &Catalog{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String(), language.English.String()),
	}, nil
}

// Default returns the English catalog. It never fails; when the embedded
// files cannot be read the built-in English strings are used.
func Default() *Catalog {
	c, err := New("en")
	if err != nil {
		return &Catalog{tag: language.English}
	}
	return c
}

// Language returns the language the catalog was requested for.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Text returns the translation of id.
func (c *Catalog) Text(id string) string {
	def := defaults[id]
	if c == nil || c.localizer == nil {
		return def
	}

	text, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: def},
	})
	if err != nil && text == "" {
		return def
	}
	return text
}
