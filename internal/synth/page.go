package synth

import (
	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/view"
)

// Page is a synthesized view tree plus typed handles to every node the
// interaction engine drives.
type Page struct {
	Doc  *view.Document
	Body *view.Node

	Title           *view.Node
	MetaDescription *view.Node // nil when the graph has no description

	MainNav   *view.Node
	MobileNav *view.Node
	NavLinks  []*view.Node // main links first, then the mobile clones

	Hamburger     *view.Node
	MobileOverlay *view.Node
	ThemeToggle   *view.Node

	ProfileHeader   *view.Node
	AnimatedTitle   *view.Node
	ScrollIndicator *view.Node

	Sections []SectionRef
	Projects []ProjectsBlock
	Media    []MediaBlock
	ReadMore []ReadMoreBlock
	Contacts []*ContactBlock

	Footer    *view.Node
	Modal     ModalBlock
	BackToTop *view.Node
}

// SectionRef ties a rendered section to its source.
type SectionRef struct {
	ID   string
	Type content.SectionType
	Node *view.Node
	// Rendered is false when the section fell back to title-only output.
	Rendered bool
}

// ProjectsBlock is the filter bar and card grid of one projects section.
type ProjectsBlock struct {
	SectionID    string
	All          *view.Node
	FilterToggle *view.Node
	TagsWrapper  *view.Node
	Tags         []string
	TagButtons   []*view.Node // parallel to Tags
	Grid         *view.Node
	Cards        []CardRef
}

// CardRef is one project card and the tags it is filtered by.
type CardRef struct {
	Node *view.Node
	Tags []string
}

// MediaBlock describes one media container. Media is the originating list
// from the content graph so consumers never recover it from markup.
type MediaBlock struct {
	Owner     string // id of the section or card that holds the container
	Container *view.Node
	Media     []content.Media

	// Single-item containers.
	Single *view.Node

	// Carousel containers (len(Media) > 1).
	Carousel *view.Node
	Display  *view.Node
	Items    []*view.Node
	Thumbs   []*view.Node
	Caption  *view.Node
	Prev     *view.Node
	Next     *view.Node
}

// IsCarousel reports whether the container cycles through several items.
func (m MediaBlock) IsCarousel() bool { return len(m.Media) > 1 }

// Clickable returns the node that opens the fullscreen viewer.
func (m MediaBlock) Clickable() *view.Node {
	if m.IsCarousel() {
		return m.Display
	}
	return m.Single
}

// ReadMoreBlock is a truncatable project description.
type ReadMoreBlock struct {
	Wrapper     *view.Node
	Description *view.Node
	Button      *view.Node
	Text        string // plain text, used for measurement
}

// ContactBlock is the chat-style contact form. Its ids are prefixed with
// the owning section id.
type ContactBlock struct {
	Form      *view.Node
	Message   *view.Node
	Timestamp *view.Node
	Email     string
}

// ModalBlock is the fullscreen viewer shell.
type ModalBlock struct {
	Root    *view.Node
	Content *view.Node
	Close   *view.Node
	Prev    *view.Node
	Next    *view.Node
}
