package leaflet

import (
	"context"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/logging"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/messages"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/router"
)

func logger() *slog.Logger {
	return logging.Logger().With("component", "reader")
}

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	Title       string            // Heading above the post list
	Start       string            // Initial fragment, like "#slug" in a link to the page
	Messages    *messages.Catalog // Defaults to messages.Default()
	InputDevice string            // Optional evdev node for hardware back/forward keys
}

// Reader is the SDL surface of the navigation controller. It implements
// nav.Surface and nav.Events and owns the session history.
//
// Surface methods are called by the controller on the UI loop, which Run
// drains once per frame on the main thread.
type Reader struct {
	loop    *nav.Loop
	history *router.Router
	text    *messages.Catalog

	title       string
	inputDevice string

	list        postList
	detail      postDetail
	banner      string
	showingPost bool

	directional internal.DirectionalInput
	quit        bool

	onItem    func(slug string)
	onBack    func()
	onHistory func(slug string)
}

var (
	_ nav.Surface = (*Reader)(nil)
	_ nav.Events  = (*Reader)(nil)
)

// NewReader creates a reader that runs controller work on loop.
func NewReader(loop *nav.Loop, opts ReaderOptions) *Reader {
	text := opts.Messages
	if text == nil {
		text = messages.Default()
	}

	r := &Reader{
		loop:        loop,
		text:        text,
		title:       opts.Title,
		inputDevice: opts.InputDevice,
		list:        newPostList(),
		directional: internal.NewDirectionalInput(),
	}

	r.history = router.New("/", router.ParseFragment(opts.Start)).OnNavigate(func(route router.Route) {
		if r.onHistory != nil {
			r.onHistory(route.Slug)
		}
	})

	return r
}

// History returns the session history the controller should push to.
func (r *Reader) History() nav.History {
	return r.history
}

// Router returns the session history with its back/forward controls.
func (r *Reader) Router() *router.Router {
	return r.history
}

func (r *Reader) OnItemClicked(fn func(slug string))      { r.onItem = fn }
func (r *Reader) OnBackClicked(fn func())                 { r.onBack = fn }
func (r *Reader) OnHistoryNavigated(fn func(slug string)) { r.onHistory = fn }

func (r *Reader) RenderList(items []nav.ListItem) {
	r.list.setItems(items)
}

func (r *Reader) ShowList() {
	r.showingPost = false
	r.directional.Reset()
}

func (r *Reader) ShowPost() {
	r.showingPost = true
	r.directional.Reset()
}

func (r *Reader) SetPostContent(c nav.Content) {
	r.detail.setContent(c)
}

func (r *Reader) ScrollToTop() {
	r.detail.scrollToTop()
}

func (r *Reader) ShowBanner(message string) {
	r.banner = message
}

// Run processes input, drains the UI loop and draws frames until the user
// quits, which returns ErrQuit, or ctx is done. Init must have been called
// and Run must be called from the main OS thread.
func (r *Reader) Run(ctx context.Context) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("run", errNotInitialized)
	}

	p := newPainter(window.Renderer)
	defer p.destroy()

	if err := internal.WatchHardwareKeys(ctx, r.inputDevice, func(button constants.VirtualButton) {
		r.loop.Post(func() { r.handleButton(button) })
	}); err != nil {
		logger().Warn("Hardware keys unavailable", "device", r.inputDevice, "error", err)
	}

	processor := internal.GetInputProcessor()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if event := sdl.WaitEventTimeout(constants.DefaultFrameTimeout); event != nil {
			r.handleEvent(processor, event)
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				r.handleEvent(processor, event)
			}
		}

		r.loop.Drain()
		r.handleDirectionalRepeats()

		if r.quit {
			return ErrQuit
		}

		r.render(window, p)
	}
}

func (r *Reader) handleEvent(processor *internal.InputProcessor, event sdl.Event) {
	if _, ok := event.(*sdl.QuitEvent); ok {
		r.quit = true
		return
	}

	inputEvent := processor.ProcessSDLEvent(event)
	if inputEvent == nil {
		return
	}

	if !inputEvent.Pressed {
		r.directional.Release(inputEvent.Button)
		return
	}
	if inputEvent.Repeat {
		// Held keys repeat through DirectionalInput.
		return
	}

	r.handleButton(inputEvent.Button)
}

func (r *Reader) handleButton(button constants.VirtualButton) {
	switch actionFor(r.showingPost, button) {
	case actionUp, actionDown:
		r.step(r.directional.Press(button))
	case actionPageUp:
		r.page(-1)
	case actionPageDown:
		r.page(1)
	case actionOpen:
		if item, ok := r.list.selectedItem(); ok && r.onItem != nil {
			r.onItem(item.Slug)
		}
	case actionClose:
		if r.onBack != nil {
			r.onBack()
		}
	case actionHistoryBack:
		r.history.Back()
	case actionHistoryForward:
		r.history.Forward()
	case actionQuit:
		logger().Debug("Quit requested", "button", button.String())
		r.quit = true
	}
}

func (r *Reader) handleDirectionalRepeats() {
	r.step(r.directional.Update())
}

func (r *Reader) step(dir internal.Direction) {
	if dir == internal.DirectionNone {
		return
	}
	if r.showingPost {
		r.detail.step(dir.Delta())
		return
	}
	r.list.move(dir.Delta())
}

func (r *Reader) page(direction int) {
	if r.showingPost {
		r.detail.page(direction)
		return
	}
	r.list.page(direction)
}

func (r *Reader) render(window *internal.Window, p *painter) {
	window.Clear()

	margins := internal.UniformPadding(internal.Scale(20))
	screen := margins.Inset(window.GetWidth(), window.GetHeight())

	footer := footerHeight(p)
	content := sdl.Rect{X: screen.X, Y: screen.Y, W: screen.W - internal.Scale(14), H: screen.H - footer - internal.Scale(10)}

	if r.showingPost {
		r.detail.render(p, content)
	} else {
		r.renderList(p, content)
	}

	renderFooter(p, r.text, footerHints(r.showingPost), screen)

	window.Present()
}

func (r *Reader) renderList(p *painter, area sdl.Rect) {
	theme := internal.GetTheme()

	if r.title != "" {
		_, h := p.text(internal.TruncateText(r.title, area.W, p.measure(fontTitle)), fontTitle, theme.TextColor, area.X, area.Y)
		h += constants.DefaultTitleSpacing + internal.Scale(5)
		area.Y += h
		area.H -= h
	}

	if used := renderBanner(p, r.banner, area); used > 0 {
		area.Y += used
		area.H -= used
	}

	if len(r.list.items) == 0 {
		if r.banner == "" {
			renderMessage(p, r.text.Text(messages.EmptyList), theme.HintColor, area)
		}
		return
	}

	r.list.render(p, area)
}
