package interact

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/icons"
	"github.com/asif-cs/portfolio/internal/prefs"
	"github.com/asif-cs/portfolio/internal/synth"
	"github.com/asif-cs/portfolio/internal/view"
)

var fixedNow = time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC)

type harness struct {
	t      *testing.T
	g      *content.Graph
	page   *synth.Page
	sched  *ManualScheduler
	store  *prefs.MemoryStore
	engine *Engine

	mu       sync.Mutex
	notified []Update
}

func fixture(t *testing.T) *content.Graph {
	t.Helper()
	g, err := content.Load("../content/testdata/portfolio.json")
	require.NoError(t, err)
	return g
}

func newHarness(t *testing.T, g *content.Graph, opts ...func(*Deps)) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		g:     g,
		page:  synth.Synthesize(g, synth.Options{Now: fixedNow}),
		sched: NewManualScheduler(),
		store: prefs.NewMemoryStore(),
	}
	deps := Deps{
		Prefs:     h.store,
		Scheduler: h.sched,
		Ambient:   func() ThemePreference { return ThemeLight },
		Notify: func(u Update) {
			h.mu.Lock()
			h.notified = append(h.notified, u)
			h.mu.Unlock()
		},
	}
	for _, o := range opts {
		o(&deps)
	}
	h.engine = Attach(h.page, g, deps)
	t.Cleanup(h.engine.Close)
	return h
}

func (h *harness) click(target string) Update {
	return h.engine.Dispatch(Click{Target: target})
}

func (h *harness) node(id string) *view.Node {
	n := h.page.Doc.ByID(id)
	require.NotNil(h.t, n, "no element %q", id)
	return n
}

func (h *harness) lastNotified() Update {
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(h.t, h.notified)
	return h.notified[len(h.notified)-1]
}

func patchIDs(b view.Batch) []string {
	ids := make([]string, 0, len(b.Patches))
	for _, p := range b.Patches {
		ids = append(ids, p.ID)
	}
	return ids
}

// Scenario: toggling "ml" shows only the ml card; toggling it again
// restores both.
func TestFilterScenario(t *testing.T) {
	h := newHarness(t, fixture(t))
	cards := h.page.Projects[0].Cards

	u := h.click("projects-tag-0")
	assert.False(t, cards[0].Node.Hidden())
	assert.True(t, cards[1].Node.Hidden())
	assert.False(t, h.node("projects-filter-all").HasClass("active"))
	assert.True(t, h.node("projects-tag-0").HasClass("active"))
	assert.Contains(t, patchIDs(u.Batch), "projects-card-1")

	h.click("projects-tag-0")
	assert.False(t, cards[0].Node.Hidden())
	assert.False(t, cards[1].Node.Hidden())
	assert.True(t, h.node("projects-filter-all").HasClass("active"))
	assert.True(t, cards[1].Node.HasClass("fade-in"))

	h.sched.Advance(fadeInDuration)
	assert.False(t, cards[1].Node.HasClass("fade-in"))
	assert.Contains(t, patchIDs(h.lastNotified().Batch), "projects-card-1")
}

func TestFilterAllResets(t *testing.T) {
	h := newHarness(t, fixture(t))
	f := h.engine.Filters()[0]

	h.click("projects-tag-0")
	h.click("projects-tag-1")
	assert.Equal(t, []string{"ml", "web"}, f.Active())

	h.click("projects-filter-all")
	assert.Empty(t, f.Active())
	assert.False(t, h.node("projects-tag-0").HasClass("active"))
	assert.False(t, h.node("projects-tag-1").HasClass("active"))
	assert.True(t, h.node("projects-filter-all").HasClass("active"))
}

func TestFilterToggleExpanded(t *testing.T) {
	h := newHarness(t, fixture(t))

	h.click("projects-filter-toggle")
	assert.True(t, h.node("projects-filter-tags").HasClass("expanded"))
	v, _ := h.node("projects-filter-toggle").Attr("aria-expanded")
	assert.Equal(t, "true", v)

	h.click("projects-filter-toggle")
	assert.False(t, h.node("projects-filter-tags").HasClass("expanded"))
}

// For every tag set S, a card with tags T is visible iff S is empty or
// S and T intersect.
func TestFilterVisibilityProperty(t *testing.T) {
	cardTags := [][]string{nil, {"a"}, {"b"}, {"a", "b"}, {"c"}, {"b", "c"}}
	var projects []content.Project
	for _, tags := range cardTags {
		projects = append(projects, content.Project{Title: "p", Tags: tags})
	}
	g := &content.Graph{
		PersonalInfo: content.PersonalInfo{Name: "Test"},
		Sections: []content.Section{{
			ID: "work", Title: "Work", Type: content.SectionProjects,
			Content: content.ProjectsContent{Projects: projects},
		}},
	}
	universe := []string{"a", "b", "c"}

	for mask := 0; mask < 1<<len(universe); mask++ {
		h := newHarness(t, g)
		f := h.engine.Filters()[0]
		set := map[string]bool{}
		for i, tag := range universe {
			if mask&(1<<i) != 0 {
				set[tag] = true
				h.engine.Do(func() { f.Toggle(tag) })
			}
		}
		for i, card := range h.page.Projects[0].Cards {
			want := len(set) == 0
			for _, tag := range cardTags[i] {
				want = want || set[tag]
			}
			assert.Equal(t, want, f.Visible(card), "mask %b card %d", mask, i)
			assert.Equal(t, !want, card.Node.Hidden(), "mask %b card %d", mask, i)
		}
		assert.Equal(t, len(set) == 0, h.page.Projects[0].All.HasClass("active"))
	}
}

func TestFilterIgnoresUnknownTag(t *testing.T) {
	h := newHarness(t, fixture(t))
	f := h.engine.Filters()[0]
	u := h.engine.Do(func() { f.Toggle("rust") })
	assert.True(t, u.Empty())
	assert.Empty(t, f.Active())
}

func bioGraph(n int) *content.Graph {
	media := make([]content.Media, n)
	for i := range media {
		media[i] = content.Media{Type: content.MediaImage, Src: "img/" + string(rune('a'+i)) + ".png", Caption: "c"}
	}
	return &content.Graph{
		PersonalInfo: content.PersonalInfo{Name: "Test"},
		Sections: []content.Section{{
			ID: "about", Title: "About", Type: content.SectionBio,
			Content: content.BioContent{Text: []string{"hi"}, Media: media},
		}},
	}
}

// next and prev are inverse modulo wrap for carousel and viewer.
func TestNextPrevInverseProperty(t *testing.T) {
	for count := 1; count <= 4; count++ {
		h := newHarness(t, bioGraph(count))
		media := bioGraph(count).Sections[0].Content.(content.BioContent).Media

		for i := 0; i < count; i++ {
			h.engine.Do(func() {
				v := h.engine.Viewer()
				v.Open(media, i, nil)
				v.Next()
				v.Prev()
				assert.Equal(t, i, v.Index())
				v.Prev()
				v.Next()
				assert.Equal(t, i, v.Index())
				v.Close()
			})
		}

		if count < 2 {
			assert.Empty(t, h.engine.Carousels())
			continue
		}
		c := h.engine.Carousels()[0]
		for i := 0; i < count; i++ {
			h.engine.Do(func() {
				c.Show(i)
				c.Next()
				c.Prev()
				assert.Equal(t, i, c.Index())
				c.Prev()
				c.Next()
				assert.Equal(t, i, c.Index())
			})
		}
	}
}

func TestCarouselInitialAndThumbnails(t *testing.T) {
	h := newHarness(t, fixture(t))
	require.Len(t, h.engine.Carousels(), 1)
	c := h.engine.Carousels()[0]

	assert.Equal(t, 0, c.Index())
	caption := h.node("about-media-caption")
	assert.Equal(t, "First", caption.Text)
	assert.False(t, caption.Hidden())
	idx, _ := h.node("about-media-carousel").Attr("data-current-index")
	assert.Equal(t, "0", idx)

	h.click("about-media-thumb-1")
	assert.Equal(t, 1, c.Index())
	assert.True(t, h.node("about-media-item-1").HasClass("active"))
	assert.False(t, h.node("about-media-item-0").HasClass("active"))
	assert.True(t, h.node("about-media-thumb-1").HasClass("active"))
	assert.True(t, caption.Hidden(), "blank caption hides the caption line")
	src, _ := h.node("about-media-display").Attr("data-media-src")
	assert.Equal(t, "videos/b.mp4", src)
	typ, _ := h.node("about-media-display").Attr("data-media-type")
	assert.Equal(t, "video", typ)

	h.click("about-media-next")
	assert.Equal(t, 0, c.Index())
	h.click("about-media-prev")
	assert.Equal(t, 1, c.Index())
}

func TestCarouselOutOfRangeIsNoop(t *testing.T) {
	h := newHarness(t, fixture(t))
	c := h.engine.Carousels()[0]
	u := h.engine.Do(func() {
		c.Show(-1)
		c.Show(2)
	})
	assert.Equal(t, 0, c.Index())
	assert.True(t, u.Empty())
}

func TestCarouselPausesVideoOnChange(t *testing.T) {
	h := newHarness(t, fixture(t))
	c := h.engine.Carousels()[0]
	video := h.node("about-media-item-1")

	h.engine.Do(func() {
		c.Show(1)
		video.Play()
		c.Next()
	})
	assert.False(t, video.Playing())
}

func TestCarouselRecoversMediaWithoutDescriptor(t *testing.T) {
	g := fixture(t)
	page := synth.Synthesize(g, synth.Options{Now: fixedNow})
	page.Media[0].Media = nil

	e := Attach(page, g, Deps{Scheduler: NewManualScheduler()})
	defer e.Close()

	require.Len(t, e.Carousels(), 1)
	assert.Equal(t, g.Sections[0].Content.(content.BioContent).Media, e.Carousels()[0].Media())
}

func TestFindMediaList(t *testing.T) {
	g := fixture(t)
	bio := g.Sections[0].Content.(content.BioContent).Media
	projects := g.Sections[2].Content.(content.ProjectsContent).Projects

	assert.Equal(t, projects[1].Media, FindMediaList(g, "images/s1.png"))
	assert.Equal(t, bio, FindMediaList(g, "videos/b.mp4"))
	assert.Nil(t, FindMediaList(g, "missing.png"))
	assert.Nil(t, FindMediaList(nil, "images/s1.png"))
}

// Scenario: clicking a two-item bio carousel opens the viewer at 0; the
// right arrow advances to 1 and then wraps to 0.
func TestViewerScenario(t *testing.T) {
	h := newHarness(t, fixture(t))
	v := h.engine.Viewer()

	h.click("about-media-display")
	require.True(t, v.IsOpen())
	assert.Equal(t, 0, v.Index())
	assert.False(t, h.node("modal-next").Hidden())
	assert.True(t, h.node("fullscreenModal").HasClass("is-open"))
	assert.True(t, h.page.Body.HasClass("no-scroll"))

	h.engine.Dispatch(Key{Key: "ArrowRight"})
	assert.Equal(t, 1, v.Index())
	h.engine.Dispatch(Key{Key: "ArrowRight"})
	assert.Equal(t, 0, v.Index())
	h.engine.Dispatch(Key{Key: "ArrowLeft"})
	assert.Equal(t, 1, v.Index())
}

func TestViewerOpensAtCarouselIndex(t *testing.T) {
	h := newHarness(t, fixture(t))
	h.click("about-media-thumb-1")
	h.click("about-media-item-1")

	v := h.engine.Viewer()
	require.True(t, v.IsOpen())
	assert.Equal(t, 1, v.Index())
	video := h.page.Modal.Content.Find(view.ByTag("video"))
	require.NotNil(t, video)
	assert.True(t, video.Playing())
}

func TestViewerSingleItem(t *testing.T) {
	h := newHarness(t, fixture(t))
	v := h.engine.Viewer()

	h.click("projects-card-1-media-single")
	require.True(t, v.IsOpen())
	assert.Len(t, v.State().Media, 1)
	assert.Equal(t, "images/s1.png", v.State().Media[0].Src)
	assert.Equal(t, "S1", v.State().Media[0].Alt)
	assert.True(t, h.node("modal-prev").Hidden())
	assert.True(t, h.node("modal-next").Hidden())

	h.engine.Dispatch(Key{Key: "ArrowRight"})
	assert.Equal(t, 0, v.Index())
}

func TestViewerFocusCycle(t *testing.T) {
	h := newHarness(t, fixture(t))
	v := h.engine.Viewer()

	for i := 0; i < 3; i++ {
		h.engine.Dispatch(Click{Target: "about-media-display", Focused: "nav-about"})
		require.True(t, v.IsOpen())

		h.sched.Advance(viewerFocusDelay)
		assert.Equal(t, "modal-close", h.lastNotified().Focus)
		assert.Same(t, h.page.Modal.Close, h.page.Doc.Focused())

		u := h.engine.Dispatch(Key{Key: "Escape"})
		assert.False(t, v.IsOpen())
		assert.Equal(t, "nav-about", u.Focus)
		assert.Same(t, h.node("nav-about"), h.page.Doc.Focused())
	}
}

func TestViewerCloseBeforeFocusDelay(t *testing.T) {
	h := newHarness(t, fixture(t))
	h.engine.Dispatch(Click{Target: "about-media-display", Focused: "nav-about"})
	h.click("modal-close")
	h.sched.Advance(viewerFocusDelay)
	assert.Same(t, h.node("nav-about"), h.page.Doc.Focused(), "pending focus move is canceled")
}

func TestViewerCloseWhenClosedIsNoop(t *testing.T) {
	h := newHarness(t, fixture(t))
	u := h.engine.Do(h.engine.Viewer().Close)
	assert.True(t, u.Empty())
	assert.Equal(t, -1, h.engine.Viewer().Index())
}

func TestViewerReopenPausesPreviousVideo(t *testing.T) {
	h := newHarness(t, fixture(t))
	v := h.engine.Viewer()
	media := h.g.Sections[0].Content.(content.BioContent).Media
	returnTo := h.node("nav-about")

	var first *view.Node
	h.engine.Do(func() {
		v.Open(media, 1, returnTo)
		first = h.page.Modal.Content.Find(view.ByTag("video"))
	})
	require.NotNil(t, first)
	require.True(t, first.Playing())

	h.engine.Do(func() { v.Open(media, 0, h.node("nav-skills")) })
	assert.False(t, first.Playing())
	assert.Equal(t, 0, v.Index())
	assert.Len(t, h.page.Modal.Content.FindAll(view.ByTag("img")), 1, "content is replaced, not stacked")

	h.engine.Do(v.Close)
	assert.Same(t, returnTo, h.page.Doc.Focused(), "return target survives a reopen")
}

func TestViewerBackdropClick(t *testing.T) {
	h := newHarness(t, fixture(t))
	h.click("about-media-display")

	h.click("modal-media")
	assert.True(t, h.engine.Viewer().IsOpen(), "clicks on content keep the viewer open")

	h.click("fullscreenModal")
	assert.False(t, h.engine.Viewer().IsOpen())
	assert.Empty(t, h.page.Modal.Content.Children)
	assert.False(t, h.page.Body.HasClass("no-scroll"))
}

func TestViewerOpenOutOfRange(t *testing.T) {
	h := newHarness(t, fixture(t))
	v := h.engine.Viewer()
	h.engine.Do(func() { v.Open(nil, 0, nil) })
	assert.False(t, v.IsOpen())
}

// Heights {A: 120, B: 300, C: 0} activate B.
func TestScrollSpyPicksTallest(t *testing.T) {
	h := newHarness(t, fixture(t))
	h.engine.Dispatch(Intersect{Entries: []IntersectionEntry{
		{ID: "about", Height: 120, Intersecting: true},
		{ID: "experience", Height: 300, Intersecting: true},
		{ID: "projects", Height: 0},
	}})

	assert.Equal(t, "experience", h.engine.ScrollSpy().Active())
	for _, link := range h.page.NavLinks {
		want := link.ID == "nav-experience" || link.ID == "mnav-experience"
		assert.Equal(t, want, link.HasClass("active"), link.ID)
	}
	assert.True(t, h.node("about").HasClass("visible"))
	assert.False(t, h.node("projects").HasClass("visible"))
}

func TestScrollSpyRemembersHeights(t *testing.T) {
	h := newHarness(t, fixture(t))
	spy := h.engine.ScrollSpy()
	h.engine.Dispatch(Intersect{Entries: []IntersectionEntry{{ID: "about", Height: 400, Intersecting: true}}})
	h.engine.Dispatch(Intersect{Entries: []IntersectionEntry{{ID: "skills", Height: 200, Intersecting: true}}})
	assert.Equal(t, "about", spy.Active())
	assert.Equal(t, 200.0, spy.Height("skills"))

	h.engine.Dispatch(Intersect{Entries: []IntersectionEntry{{ID: "about", Height: 100, Intersecting: true}}})
	assert.Equal(t, "skills", spy.Active())
}

func TestScrollSpyNothingVisible(t *testing.T) {
	h := newHarness(t, fixture(t))
	u := h.engine.Dispatch(Intersect{Entries: []IntersectionEntry{{ID: "about", Height: 0}}})
	assert.Equal(t, "", h.engine.ScrollSpy().Active())
	assert.True(t, u.Empty())
}

// Scenario: no persisted value and an ambient dark preference start dark;
// one click persists and applies light.
func TestThemeScenario(t *testing.T) {
	h := newHarness(t, fixture(t), func(d *Deps) {
		d.Ambient = func() ThemePreference { return ThemeDark }
	})
	assert.Equal(t, ThemeDark, h.engine.Theme().Current())
	theme, _ := h.page.Body.Attr("data-theme")
	assert.Equal(t, "dark", theme)
	assert.Equal(t, "sun", toggleGlyph(t, h))

	u := h.click("theme-toggle")
	assert.Equal(t, ThemeLight, h.engine.Theme().Current())
	theme, _ = h.page.Body.Attr("data-theme")
	assert.Equal(t, "light", theme)
	assert.Equal(t, "moon", toggleGlyph(t, h))
	assert.Contains(t, patchIDs(u.Batch), "page-body")
	assert.Contains(t, patchIDs(u.Batch), "theme-toggle")

	stored, ok, err := h.store.Get(context.Background(), prefs.ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", stored)
}

func TestThemePersistedWins(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), prefs.ThemeKey, "light"))
	h := newHarness(t, fixture(t), func(d *Deps) {
		d.Prefs = store
		d.Ambient = func() ThemePreference { return ThemeDark }
	})
	assert.Equal(t, ThemeLight, h.engine.Theme().Current())
}

func TestReadMore(t *testing.T) {
	h := newHarness(t, fixture(t), func(d *Deps) {
		d.Measurer = measureFunc(func(text string, _ float64) bool { return text == "An ML model." })
	})
	btn := h.node("projects-card-0-more")
	assert.True(t, btn.Hidden(), "measured only after the delay")

	h.sched.Advance(readMoreDelay)
	assert.False(t, btn.Hidden())
	assert.True(t, h.node("projects-card-1-more").Hidden())
	assert.Contains(t, patchIDs(h.lastNotified().Batch), "projects-card-0-more")

	h.click("projects-card-0-more")
	assert.True(t, h.node("projects-card-0-desc").HasClass("expanded"))
	assert.Equal(t, "See Less", btn.Text)

	h.click("projects-card-0-more")
	assert.False(t, h.node("projects-card-0-desc").HasClass("expanded"))
	assert.Equal(t, "See More", btn.Text)
}

func TestResizeIsDebounced(t *testing.T) {
	var widths []float64
	h := newHarness(t, fixture(t), func(d *Deps) {
		d.Measurer = measureFunc(func(_ string, w float64) bool {
			widths = append(widths, w)
			return false
		})
	})
	h.sched.Advance(readMoreDelay)
	widths = nil

	layout := []Rect{{ID: "about", Top: 0, Height: 600}, {ID: "experience", Top: 600, Height: 1000}}
	h.engine.Dispatch(Resize{Width: 500, Height: 800, Layout: layout})
	h.sched.Advance(ResizeDebounce - time.Millisecond)
	h.engine.Dispatch(Resize{Width: 900, Height: 800})
	h.sched.Advance(ResizeDebounce - time.Millisecond)
	assert.Empty(t, widths)
	assert.Equal(t, "", h.engine.ScrollSpy().Active())

	h.sched.Advance(time.Millisecond)
	assert.Equal(t, []float64{900, 900}, widths)
	assert.Equal(t, "about", h.engine.ScrollSpy().Active())
	assert.True(t, h.node("experience").HasClass("visible"))

	h.engine.Dispatch(Scroll{Y: 700})
	assert.Equal(t, "experience", h.engine.ScrollSpy().Active())
}

func TestMobileMenu(t *testing.T) {
	h := newHarness(t, fixture(t))
	body := h.page.Body

	h.click("hamburger")
	assert.True(t, h.engine.MobileMenu().IsOpen())
	assert.True(t, h.node("hamburger").HasClass("is-active"))
	assert.True(t, h.node("mobile-nav-overlay").HasClass("is-open"))
	assert.True(t, body.HasClass("no-scroll"))
	assert.True(t, body.HasClass("menu-is-open"))

	h.click("mnav-skills")
	assert.False(t, h.engine.MobileMenu().IsOpen())
	assert.False(t, body.HasClass("no-scroll"))

	h.click("hamburger")
	h.click("mobile-nav")
	assert.True(t, h.engine.MobileMenu().IsOpen(), "the nav list itself is not the overlay")
	h.click("mobile-nav-overlay")
	assert.False(t, h.engine.MobileMenu().IsOpen())
}

func TestScrollChrome(t *testing.T) {
	h := newHarness(t, fixture(t))

	h.engine.Dispatch(Scroll{Y: 60})
	assert.True(t, h.node("scroll-indicator").HasClass("hidden"))
	assert.False(t, h.node("back-to-top").HasClass("visible"))

	h.engine.Dispatch(Scroll{Y: 501})
	assert.True(t, h.node("back-to-top").HasClass("visible"))

	u := h.click("back-to-top")
	assert.Equal(t, []Effect{ScrollTo{Top: 0, Smooth: true}}, u.Effects)

	h.engine.Dispatch(Scroll{Y: 0})
	assert.False(t, h.node("scroll-indicator").HasClass("hidden"))
	assert.False(t, h.node("back-to-top").HasClass("visible"))
}

func TestContactSubmit(t *testing.T) {
	h := newHarness(t, fixture(t))

	// The typed text lives only in the browser, so the field must be
	// cleared even though the tree already holds "".
	u := h.engine.Dispatch(Submit{Form: "contact-form", Fields: map[string]string{"message": "Hi there & bye"}})
	require.Len(t, u.Effects, 1)
	assert.Equal(t, Navigate{
		URL: "mailto:rana@example.com?subject=Inquiry%20from%20Portfolio&body=Hi%20there%20%26%20bye",
	}, u.Effects[0])

	var cleared *view.Patch
	for i := range u.Batch.Patches {
		if u.Batch.Patches[i].ID == "contact-message" {
			cleared = &u.Batch.Patches[i]
		}
	}
	require.NotNil(t, cleared, "submit patches the message field")
	require.NotNil(t, cleared.HTML)
	assert.Equal(t, "", *cleared.HTML)

	u = h.engine.Dispatch(Submit{Form: "other", Fields: map[string]string{"message": "x"}})
	assert.Empty(t, u.Effects)
}

func TestUnknownTargetIsIgnored(t *testing.T) {
	h := newHarness(t, fixture(t))
	assert.True(t, h.click("does-not-exist").Empty())
}

func TestFocusEventIsNotEchoed(t *testing.T) {
	h := newHarness(t, fixture(t))
	u := h.engine.Dispatch(Focus{Target: "contact-message"})
	assert.True(t, u.Empty())
	assert.Same(t, h.page.Contacts[0].Message, h.page.Doc.Focused())
}

func TestClosedEngineIgnoresEvents(t *testing.T) {
	h := newHarness(t, fixture(t))
	h.click("projects-filter-toggle")
	h.engine.Close()

	assert.True(t, h.click("hamburger").Empty())
	assert.False(t, h.engine.MobileMenu().IsOpen())
	h.sched.Advance(time.Second)
}

func TestAttachDoesNotReportInitialState(t *testing.T) {
	h := newHarness(t, fixture(t))
	u := h.engine.Do(func() {})
	assert.True(t, u.Empty())
}

func TestTitleRotationUpdatesPage(t *testing.T) {
	frames := make(chan struct{}, 1)
	h := newHarness(t, fixture(t), func(d *Deps) {
		d.Sleep = func(ctx context.Context, _ time.Duration) error {
			select {
			case frames <- struct{}{}:
			default:
			}
			<-ctx.Done()
			return ctx.Err()
		}
	})
	h.engine.StartRotation(context.Background())
	<-frames
	h.engine.Close()

	assert.Equal(t, "G", h.page.AnimatedTitle.Text)
	assert.Contains(t, patchIDs(h.lastNotified().Batch), "animated-title")
}

type measureFunc func(text string, width float64) bool

func (f measureFunc) Truncated(text string, width float64) bool { return f(text, width) }

// toggleGlyph names the glyph on the theme toggle.
func toggleGlyph(t *testing.T, h *harness) string {
	t.Helper()
	path := h.page.ThemeToggle.Find(view.ByTag("path"))
	require.NotNil(t, path)
	d, _ := path.Attr("d")
	switch d {
	case icons.Sun:
		return "sun"
	case icons.Moon:
		return "moon"
	}
	return d
}
