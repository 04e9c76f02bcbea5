//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/router"
)

// Element IDs and the class toggled to hide a view.
const (
	PostsID       = "posts"
	PostContentID = "post-content"
	ListViewID    = "list-view"
	PostViewID    = "post-view"
	BackID        = "back"
	HiddenClass   = "hidden"
)

// Page is a browser page. It implements nav.Surface, nav.History and
// nav.Events.
type Page struct {
	window   js.Value
	document js.Value
	history  js.Value
	location js.Value

	posts       js.Value
	postContent js.Value
	listView    js.Value
	postView    js.Value
	back        js.Value
	banner      js.Value

	itemFuncs []js.Func
	funcs     []js.Func

	onItem func(slug string)
}

var (
	_ nav.Surface = (*Page)(nil)
	_ nav.History = (*Page)(nil)
	_ nav.Events  = (*Page)(nil)
)

// New looks up the page's elements. It fails when one is missing.
func New() (*Page, error) {
	window := js.Global()
	document := window.Get("document")

	p := &Page{
		window:   window,
		document: document,
		history:  window.Get("history"),
		location: window.Get("location"),
	}

	for _, el := range []struct {
		id  string
		dst *js.Value
	}{
		{PostsID, &p.posts},
		{PostContentID, &p.postContent},
		{ListViewID, &p.listView},
		{PostViewID, &p.postView},
		{BackID, &p.back},
	} {
		v := document.Call("getElementById", el.id)
		if v.IsNull() || v.IsUndefined() {
			return nil, fmt.Errorf("dom: element #%s not found", el.id)
		}
		*el.dst = v
	}

	return p, nil
}

// BaseURL returns the document's base URL, which manifest and post paths
// resolve against.
func (p *Page) BaseURL() string {
	return p.document.Get("baseURI").String()
}

// Language returns the browser's preferred language tag.
func (p *Page) Language() string {
	lang := p.window.Get("navigator").Get("language")
	if lang.Type() != js.TypeString {
		return ""
	}
	return lang.String()
}

func (p *Page) RenderList(items []nav.ListItem) {
	p.releaseItems()
	p.posts.Set("innerHTML", "")

	for _, item := range items {
		card := p.document.Call("createElement", "article")
		card.Get("classList").Call("add", "post-card")

		heading := p.document.Call("createElement", "h2")
		link := p.document.Call("createElement", "a")
		link.Set("href", router.PostRoute(item.Slug).Hash())
		link.Set("textContent", item.Title)

		slug := item.Slug
		click := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				args[0].Call("preventDefault")
			}
			if p.onItem != nil {
				p.onItem(slug)
			}
			return nil
		})
		p.itemFuncs = append(p.itemFuncs, click)
		link.Call("addEventListener", "click", click)

		meta := p.document.Call("createElement", "p")
		meta.Get("classList").Call("add", "meta")
		meta.Set("textContent", item.Meta)

		heading.Call("appendChild", link)
		card.Call("appendChild", heading)
		card.Call("appendChild", meta)
		p.posts.Call("appendChild", card)
	}
}

func (p *Page) ShowList() {
	p.listView.Get("classList").Call("remove", HiddenClass)
	p.postView.Get("classList").Call("add", HiddenClass)
}

func (p *Page) ShowPost() {
	p.listView.Get("classList").Call("add", HiddenClass)
	p.postView.Get("classList").Call("remove", HiddenClass)
}

func (p *Page) SetPostContent(c nav.Content) {
	classes := p.postContent.Get("classList")
	classes.Call("remove", "loading", "error")

	switch c.Kind {
	case nav.ContentMarkup:
		p.postContent.Set("innerHTML", c.Body)
	default:
		classes.Call("add", c.Kind.String())
		p.postContent.Set("textContent", c.Body)
	}
}

func (p *Page) ScrollToTop() {
	p.window.Call("scrollTo", 0, 0)
}

func (p *Page) ShowBanner(message string) {
	if p.banner.IsUndefined() {
		p.banner = p.document.Call("createElement", "p")
		p.banner.Get("classList").Call("add", "banner", "error")
		p.listView.Call("insertBefore", p.banner, p.posts)
	}
	p.banner.Set("textContent", message)
}

// Push adds a session history entry. An empty slug resets the URL to the
// page path without a fragment.
func (p *Page) Push(slug string) {
	url := p.location.Get("pathname").String() + p.location.Get("search").String()
	if slug != "" {
		url = router.PostRoute(slug).Hash()
	}
	p.history.Call("pushState", js.Null(), "", url)
}

// Fragment returns the current URL fragment, decoded, without its '#'.
func (p *Page) Fragment() string {
	return router.ParseFragment(p.location.Get("hash").String()).Slug
}

func (p *Page) OnItemClicked(fn func(slug string)) {
	p.onItem = fn
}

func (p *Page) OnBackClicked(fn func()) {
	p.listen(p.back, "click", func(event js.Value) {
		event.Call("preventDefault")
		fn()
	})
}

func (p *Page) OnHistoryNavigated(fn func(slug string)) {
	p.listen(p.window, "popstate", func(js.Value) {
		fn(p.Fragment())
	})
}

func (p *Page) listen(target js.Value, event string, fn func(event js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		} else {
			fn(js.Undefined())
		}
		return nil
	})
	p.funcs = append(p.funcs, f)
	target.Call("addEventListener", event, f)
}

func (p *Page) releaseItems() {
	for _, f := range p.itemFuncs {
		f.Release()
	}
	p.itemFuncs = nil
}

// Release frees the Go callbacks registered with the page. The page stops
// reacting to events afterwards.
func (p *Page) Release() {
	p.releaseItems()
	for _, f := range p.funcs {
		f.Release()
	}
	p.funcs = nil
}
