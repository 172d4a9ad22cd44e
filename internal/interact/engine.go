// Package interact runs the page's interactive state machines against a
// synthesized view tree.
package interact

import (
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/prefs"
	"github.com/asif-cs/portfolio/internal/synth"
	"github.com/asif-cs/portfolio/internal/view"
)

// ResizeDebounce is how long the engine waits for resizing to settle.
const ResizeDebounce = 250 * time.Millisecond

// SettleDelay covers every deferred task scheduled by Attach.
const SettleDelay = readMoreDelay

type afterFunc func(d time.Duration, fn func()) (cancel func())

// Deps are the engine's collaborators. Zero values get working defaults.
type Deps struct {
	Context   context.Context
	Prefs     prefs.Store
	Ambient   AmbientTheme
	Scheduler Scheduler
	Measurer  Measurer
	Logger    *zap.Logger

	// Notify receives changes made outside Dispatch: timers and the title
	// animation. It runs without the engine lock held.
	Notify func(Update)

	Rotation RotatorTiming
	Sleep    SleepFunc
}

// Engine owns every state machine of one page. All entry points serialize
// on one lock, so each transition runs to completion before the next.
type Engine struct {
	mu     sync.Mutex
	page   *synth.Page
	doc    *view.Document
	g      *content.Graph
	deps   Deps
	log    *zap.Logger
	closed bool

	filters      []*Filter
	carousels    map[*view.Node]*Carousel
	carouselList []*Carousel
	viewer       *Viewer
	spy          *ScrollSpy
	reveal       *Reveal
	spyObs       *IntersectionObserver
	revealObs    *IntersectionObserver
	theme        *Theme
	readMore     []*ReadMore
	menu         *MobileMenu
	chrome       *ScrollChrome
	contacts     []*ContactForm
	rotator      *TitleRotator

	width, height float64
	layout        []Rect
	cancelResize  func()
	effects       []Effect
}

// Attach wires the machines to page and applies their initial state. The
// initial state is part of the first render, so it is not reported as an
// update.
func Attach(page *synth.Page, g *content.Graph, deps Deps) *Engine {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Prefs == nil {
		deps.Prefs = prefs.NewMemoryStore()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = RealScheduler{}
	}
	if deps.Measurer == nil {
		deps.Measurer = DefaultMeasurer
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Rotation == (RotatorTiming{}) {
		deps.Rotation = DefaultRotatorTiming
	}

	e := &Engine{
		page:      page,
		doc:       page.Doc,
		g:         g,
		deps:      deps,
		log:       deps.Logger,
		carousels: make(map[*view.Node]*Carousel),
		spyObs:    NewIntersectionObserver(SpyThresholds...),
		revealObs: NewIntersectionObserver(RevealThresholds...),
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, pb := range page.Projects {
		e.filters = append(e.filters, newFilter(pb, e.after))
	}
	for _, mb := range page.Media {
		if mb.Carousel == nil || len(mb.Items) == 0 {
			continue
		}
		media := mb.Media
		if len(media) == 0 {
			src, _ := mb.Items[0].Attr("src")
			media = FindMediaList(g, src)
		}
		c := newCarousel(mb, media)
		e.carousels[mb.Carousel] = c
		e.carouselList = append(e.carouselList, c)
	}
	e.viewer = newViewer(page.Modal, page.Body, e.doc, e.after)

	ids := make([]string, 0, len(page.Sections))
	nodes := make(map[string]*view.Node, len(page.Sections))
	for _, s := range page.Sections {
		ids = append(ids, s.ID)
		nodes[s.ID] = s.Node
	}
	e.spy = newScrollSpy(ids, page.NavLinks)
	e.reveal = newReveal(nodes)

	e.theme = newTheme(page.Body, page.ThemeToggle, deps.Prefs, deps.Ambient, deps.Context, e.log)
	e.theme.Init()

	for _, rm := range page.ReadMore {
		e.readMore = append(e.readMore, newReadMore(rm))
	}
	if len(e.readMore) > 0 {
		e.after(readMoreDelay, e.measure)
	}

	e.menu = newMobileMenu(page.Hamburger, page.MobileOverlay, page.Body)
	e.chrome = newScrollChrome(page.BackToTop, page.ScrollIndicator)
	for _, cb := range page.Contacts {
		e.contacts = append(e.contacts, newContactForm(cb))
	}

	var titles []string
	if g != nil {
		titles = g.RotatingTitles()
	}
	e.rotator = NewTitleRotator(titles, deps.Rotation, deps.Sleep, e.writeTitle)

	e.doc.Flush()
	return e
}

// Dispatch applies ev and returns the resulting changes.
func (e *Engine) Dispatch(ev Event) Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return Update{}
	}

	switch ev := ev.(type) {
	case Click:
		e.click(ev)
	case Key:
		e.viewer.handleKey(ev.Key)
	case Intersect:
		e.observe(ev.Entries, ev.Entries)
	case Scroll:
		e.chrome.Scroll(ev.Y)
		e.observe(e.spyObs.Scroll(ev.Y), e.revealObs.Scroll(ev.Y))
	case Resize:
		e.resize(ev)
	case Submit:
		e.submit(ev)
	case Focus:
		e.doc.SyncFocus(e.doc.ByID(ev.Target))
	}
	return e.flush()
}

// Do runs fn under the engine lock, for driving machines directly.
func (e *Engine) Do(fn func()) Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn()
	return e.flush()
}

// Render writes the current document.
func (e *Engine) Render(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Render(w)
}

// StartRotation begins the profile title animation.
func (e *Engine) StartRotation(ctx context.Context) {
	e.rotator.Start(ctx)
}

// Close stops the title animation and detaches pending timers. Later
// events are ignored.
func (e *Engine) Close() {
	e.rotator.Stop()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.cancelResize != nil {
		e.cancelResize()
		e.cancelResize = nil
	}
}

// Page returns the synthesized page the engine drives.
func (e *Engine) Page() *synth.Page { return e.page }

// Document returns the page's view document.
func (e *Engine) Document() *view.Document { return e.doc }

// Filters returns one tag filter per projects section, in page order.
func (e *Engine) Filters() []*Filter { return e.filters }

// Carousels returns the multi-item media carousels in page order.
func (e *Engine) Carousels() []*Carousel { return e.carouselList }

// Viewer returns the fullscreen media viewer.
func (e *Engine) Viewer() *Viewer { return e.viewer }

// ScrollSpy returns the navigation highlighter.
func (e *Engine) ScrollSpy() *ScrollSpy { return e.spy }

// Theme returns the light/dark theme machine.
func (e *Engine) Theme() *Theme { return e.theme }

// ReadMore returns one truncation toggle per project description.
func (e *Engine) ReadMore() []*ReadMore { return e.readMore }

// MobileMenu returns the small-screen navigation menu.
func (e *Engine) MobileMenu() *MobileMenu { return e.menu }

// ScrollChrome returns the back-to-top and scroll-hint handler.
func (e *Engine) ScrollChrome() *ScrollChrome { return e.chrome }

// Contacts returns one form handler per contact section.
func (e *Engine) Contacts() []*ContactForm { return e.contacts }

// CarouselFor returns the carousel owning n, if any.
func (e *Engine) CarouselFor(n *view.Node) *Carousel {
	if c := n.Closest(view.ByClass("media-carousel")); c != nil {
		return e.carousels[c]
	}
	return nil
}

func (e *Engine) click(ev Click) {
	target := e.doc.ByID(ev.Target)
	if target == nil {
		e.log.Debug("click on unknown element", zap.String("target", ev.Target))
		return
	}
	if ev.Focused != "" {
		e.doc.SyncFocus(e.doc.ByID(ev.Focused))
	}

	switch {
	case e.page.ThemeToggle.Contains(target):
		e.theme.Toggle()
		return
	case e.page.BackToTop.Contains(target):
		e.effects = append(e.effects, ScrollTo{Top: 0, Smooth: true})
		return
	}
	if e.menu.handleClick(target) || e.viewer.handleClick(target) {
		return
	}
	for _, f := range e.filters {
		if f.handleClick(target) {
			return
		}
	}
	for _, c := range e.carouselList {
		if c.handleClick(target) {
			return
		}
	}
	for _, rm := range e.readMore {
		if rm.block.Button.Contains(target) {
			rm.Toggle()
			return
		}
	}
	if clickable := target.Closest(view.ByClass("media-clickable")); clickable != nil {
		e.openMedia(clickable)
	}
}

// openMedia opens the viewer for a clickable media affordance: with the
// owning carousel's full list when there is one, else with the single item
// the affordance describes.
func (e *Engine) openMedia(clickable *view.Node) {
	returnFocus := e.doc.Focused()
	if c := e.CarouselFor(clickable); c != nil && len(c.Media()) > 0 {
		e.viewer.Open(c.Media(), c.Index(), returnFocus)
		return
	}
	src, _ := clickable.Attr("data-media-src")
	if src == "" {
		return
	}
	typ, _ := clickable.Attr("data-media-type")
	caption, _ := clickable.Attr("data-full-caption")
	item := content.Media{Type: content.MediaType(typ), Src: src, Caption: caption}
	if img := clickable.Find(view.ByTag("img")); img != nil {
		item.Alt, _ = img.Attr("alt")
	}
	e.viewer.Open([]content.Media{item}, 0, returnFocus)
}

func (e *Engine) observe(spy, reveal []IntersectionEntry) {
	if len(spy) > 0 {
		e.spy.Observe(spy)
	}
	if len(reveal) > 0 {
		e.reveal.Observe(reveal)
	}
}

func (e *Engine) resize(ev Resize) {
	e.width, e.height = ev.Width, ev.Height
	if ev.Layout != nil {
		e.layout = ev.Layout
	}
	if e.cancelResize != nil {
		e.cancelResize()
	}
	e.cancelResize = e.after(ResizeDebounce, func() {
		e.cancelResize = nil
		layout := e.layout
		e.layout = nil
		e.observe(e.spyObs.SetLayout(e.height, layout), e.revealObs.SetLayout(e.height, layout))
		e.measure()
	})
}

func (e *Engine) measure() {
	for _, rm := range e.readMore {
		rm.Measure(e.deps.Measurer, e.width)
	}
}

func (e *Engine) submit(ev Submit) {
	for _, c := range e.contacts {
		if c.FormID() == ev.Form {
			e.effects = append(e.effects, Navigate{URL: c.Submit(ev.Fields["message"])})
			return
		}
	}
}

// after schedules fn to run as its own transition.
func (e *Engine) after(d time.Duration, fn func()) func() {
	return e.deps.Scheduler.AfterFunc(d, func() {
		e.mu.Lock()
		if e.closed {
			e.mu.Unlock()
			return
		}
		fn()
		u := e.flush()
		e.mu.Unlock()
		e.notify(u)
	})
}

func (e *Engine) writeTitle(s string) {
	e.mu.Lock()
	if e.closed || e.page.AnimatedTitle == nil {
		e.mu.Unlock()
		return
	}
	e.page.AnimatedTitle.SetText(s)
	u := e.flush()
	e.mu.Unlock()
	e.notify(u)
}

func (e *Engine) flush() Update {
	u := Update{Batch: e.doc.Flush(), Effects: e.effects}
	e.effects = nil
	return u
}

func (e *Engine) notify(u Update) {
	if !u.Empty() && e.deps.Notify != nil {
		e.deps.Notify(u)
	}
}
