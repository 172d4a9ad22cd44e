// Package synth turns a content graph into an addressable view tree.
package synth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/icons"
	"github.com/asif-cs/portfolio/internal/view"
)

const (
	imagePlaceholder  = "https://placehold.co/200x200/4f46e5/ffffff?text=Me"
	avatarPlaceholder = "https://placehold.co/36x36/4f46e5/ffffff?text=Me"
)

// Options controls the page shell. The zero value is usable.
type Options struct {
	// Now is the render clock (copyright year, contact timestamp).
	// Zero means time.Now.
	Now time.Time
	// Stylesheet and Script are linked from the page head and body.
	Stylesheet string
	Script     string
}

type synthesizer struct {
	g    *content.Graph
	opts Options
	md   goldmark.Markdown
	page *Page
}

// Synthesize builds the page for g. It is deterministic: the same graph
// and options always produce the same tree.
func Synthesize(g *content.Graph, opts Options) *Page {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	s := &synthesizer{g: g, opts: opts, md: newMarkdown(), page: &Page{}}
	root := s.document()
	s.page.Doc = view.NewDocument(root)
	return s.page
}

// PageTitle returns the document title for g.
func PageTitle(g *content.Graph) string {
	if g.Metadata.SiteName != "" {
		return g.Metadata.SiteName
	}
	return "Portfolio | " + g.PersonalInfo.Name
}

func (s *synthesizer) document() *view.Node {
	p := s.page

	p.Title = view.TextEl("title", PageTitle(s.g))
	head := view.El("head",
		view.El("meta").WithAttr("charset", "UTF-8"),
		view.El("meta").WithAttr("name", "viewport").WithAttr("content", "width=device-width, initial-scale=1.0"),
		p.Title,
	)
	if desc := s.g.Metadata.SiteDescription; desc != "" {
		p.MetaDescription = view.El("meta").WithAttr("name", "description").WithAttr("content", desc)
		head.Append(p.MetaDescription)
	}
	if s.opts.Stylesheet != "" {
		head.Append(view.El("link").WithAttr("rel", "stylesheet").WithAttr("href", s.opts.Stylesheet))
	}

	p.Body = view.El("body",
		s.header(),
		s.mobileOverlay(),
		view.El("main",
			s.profileHeader(),
			s.sections(),
		).WithClass("page-main"),
		s.footer(),
		s.modal(),
		s.backToTop(),
	).WithID("page-body")
	if s.opts.Script != "" {
		p.Body.Append(view.El("script").WithAttr("src", s.opts.Script))
	}

	return view.El("html", head, p.Body).WithAttr("lang", "en")
}

func (s *synthesizer) navLinks(prefix string) []*view.Node {
	titler := cases.Title(language.English)
	links := make([]*view.Node, 0, len(s.g.Sections))
	for _, sec := range s.g.Sections {
		label := sec.Title
		if label == "" {
			label = titler.String(strings.NewReplacer("-", " ", "_", " ").Replace(sec.ID))
		}
		links = append(links, view.TextEl("a", label).
			WithID(prefix+sec.ID).
			WithAttr("href", "#"+sec.ID))
	}
	return links
}

func (s *synthesizer) header() *view.Node {
	p := s.page
	main := s.navLinks("nav-")
	p.MainNav = view.El("nav", main...).WithID("main-nav").WithClass("main-nav")
	p.NavLinks = append(p.NavLinks, main...)

	p.ThemeToggle = view.El("button", svgStroke(icons.Moon)).
		WithID("theme-toggle").WithClass("btn-icon theme-toggle").
		WithAttr("aria-label", "Toggle theme")
	p.Hamburger = view.El("button",
		view.El("span").WithClass("bar"),
		view.El("span").WithClass("bar"),
		view.El("span").WithClass("bar"),
	).WithID("hamburger").WithClass("hamburger-menu").WithAttr("aria-label", "Open menu")

	return view.El("header",
		view.TextEl("a", s.g.PersonalInfo.Name).WithID("header-name-link").WithAttr("href", "#home"),
		p.MainNav,
		view.El("div", p.ThemeToggle, p.Hamburger).WithClass("header-actions"),
	).WithClass("main-header")
}

func (s *synthesizer) mobileOverlay() *view.Node {
	p := s.page
	mobile := s.navLinks("mnav-")
	p.MobileNav = view.El("nav", mobile...).WithID("mobile-nav").WithClass("mobile-nav")
	p.NavLinks = append(p.NavLinks, mobile...)
	p.MobileOverlay = view.El("div", p.MobileNav).WithID("mobile-nav-overlay").WithClass("mobile-nav-overlay")
	return p.MobileOverlay
}

func (s *synthesizer) profileHeader() *view.Node {
	p := s.page
	info := s.g.PersonalInfo

	target := "#about"
	if len(s.g.Sections) > 0 {
		target = "#" + s.g.Sections[0].ID
	}
	p.AnimatedTitle = view.El("p").WithID("animated-title").WithClass("title")
	p.ScrollIndicator = view.El("a",
		view.El("span", view.El("span").WithClass("wheel")).WithClass("mouse"),
		view.El("span").WithClass("arrow"),
	).WithID("scroll-indicator").WithClass("scroll-down-indicator").
		WithAttr("href", target).WithAttr("aria-label", "Scroll down")

	p.ProfileHeader = view.El("header",
		view.El("img").WithClass("user-image").
			WithAttr("src", info.ImageURL).
			WithAttr("alt", "Profile picture of "+info.Name).
			WithAttr("data-fallback", imagePlaceholder),
		view.TextEl("h1", info.Name),
		view.TextEl("p", info.Title).WithClass("main-title-static"),
		p.AnimatedTitle,
		view.El("div", s.socialLinks()...).WithClass("social-links"),
		p.ScrollIndicator,
	).WithID("home").WithClass("profile-header")
	return p.ProfileHeader
}

func (s *synthesizer) socialLinks() []*view.Node {
	links := make([]*view.Node, 0, len(s.g.PersonalInfo.Socials))
	for _, soc := range s.g.PersonalInfo.Socials {
		links = append(links, view.El("a", svgFill(icons.Path(soc.Icon))).
			WithClass("btn-icon").
			WithAttr("href", soc.URL).
			WithAttr("target", "_blank").
			WithAttr("rel", "noopener noreferrer").
			WithAttr("aria-label", soc.Name))
	}
	return links
}

func (s *synthesizer) sections() *view.Node {
	main := view.El("div").WithID("main-content").WithClass("main-content")
	for _, sec := range s.g.Sections {
		node, rendered := s.section(sec)
		s.page.Sections = append(s.page.Sections, SectionRef{
			ID:       sec.ID,
			Type:     sec.Type,
			Node:     node,
			Rendered: rendered,
		})
		main.Append(node)
	}
	return main
}

func (s *synthesizer) footer() *view.Node {
	info := s.g.PersonalInfo
	col1 := view.El("div",
		view.TextEl("h3", info.Name),
		view.TextEl("p", fmt.Sprintf("© %d All Rights Reserved.", s.opts.Now.Year())),
	).WithClass("footer-col footer-info")
	if updated := FormatDate(s.g.Metadata.LastUpdated.Time); updated != "" {
		col1.Append(view.TextEl("p", "Last updated: "+updated))
	}

	quick := view.El("ul")
	for _, sec := range s.g.Sections {
		quick.Append(view.El("li",
			view.TextEl("a", sec.Title).WithClass("link-underline").WithAttr("href", "#"+sec.ID),
		))
	}

	s.page.Footer = view.El("footer",
		view.El("div",
			col1,
			view.El("div", view.TextEl("h3", "Quick Links"), quick).WithClass("footer-col footer-links"),
			view.El("div",
				view.TextEl("h3", "Connect"),
				view.El("div", s.socialLinks()...).WithClass("social-links-footer"),
			).WithClass("footer-col footer-socials"),
		).WithClass("footer-columns"),
	).WithID("site-footer").WithClass("main-footer")
	return s.page.Footer
}

func (s *synthesizer) modal() *view.Node {
	m := &s.page.Modal
	m.Close = view.El("button", svgStroke(icons.Close)).WithID("modal-close").WithClass("modal-close").
		WithAttr("aria-label", "Close viewer")
	m.Prev = view.El("button", svgStroke(icons.ChevronLeft)).WithID("modal-prev").WithClass("modal-nav prev").
		WithAttr("aria-label", "Previous").WithHidden(true)
	m.Next = view.El("button", svgStroke(icons.ChevronRight)).WithID("modal-next").WithClass("modal-nav next").
		WithAttr("aria-label", "Next").WithHidden(true)
	m.Content = view.El("div").WithID("modal-media").WithClass("modal-media-wrapper")
	m.Root = view.El("div", m.Close, m.Prev, m.Content, m.Next).
		WithID("fullscreenModal").WithClass("modal").
		WithAttr("role", "dialog").WithAttr("aria-modal", "true")
	return m.Root
}

func (s *synthesizer) backToTop() *view.Node {
	s.page.BackToTop = view.El("button", svgStroke(icons.ArrowUp)).
		WithID("back-to-top").WithClass("back-to-top").
		WithAttr("aria-label", "Back to top")
	return s.page.BackToTop
}

// FormatDate renders t as "D Month YYYY", or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

// ContactTimestamp is the chat window's delivery line for t.
func ContactTimestamp(t time.Time) string {
	return "Delivered Today at " + t.Format("3:04 PM")
}

func svgFill(d string) *view.Node {
	return view.El("svg", view.El("path").WithAttr("d", d)).WithAttr("viewBox", "0 0 24 24")
}

func svgStroke(d string) *view.Node {
	return view.El("svg", view.El("path").WithAttr("d", d)).
		WithAttr("viewBox", "0 0 24 24").
		WithAttr("fill", "none").
		WithAttr("stroke", "currentColor").
		WithAttr("stroke-width", "2").
		WithAttr("stroke-linecap", "round").
		WithAttr("stroke-linejoin", "round")
}

func itoa(i int) string { return strconv.Itoa(i) }
