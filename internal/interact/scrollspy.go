package interact

import (
	"strings"

	"github.com/asif-cs/portfolio/internal/view"
)

// NavHighlightState maps section ids to their last reported visible height.
type NavHighlightState struct {
	Heights map[string]float64
	order   []string
}

// ScrollSpy highlights the navigation link of the section occupying the
// most viewport height.
type ScrollSpy struct {
	links  []*view.Node
	state  NavHighlightState
	active string
}

func newScrollSpy(sectionIDs []string, links []*view.Node) *ScrollSpy {
	s := &ScrollSpy{
		links: links,
		state: NavHighlightState{Heights: make(map[string]float64)},
	}
	for _, id := range sectionIDs {
		s.track(id)
	}
	return s
}

func (s *ScrollSpy) track(id string) {
	if _, ok := s.state.Heights[id]; !ok {
		s.state.order = append(s.state.order, id)
		s.state.Heights[id] = 0
	}
}

// Active is the highlighted section id, or "" before any section was seen.
func (s *ScrollSpy) Active() string { return s.active }

// Height returns the last visible height recorded for id.
func (s *ScrollSpy) Height(id string) float64 { return s.state.Heights[id] }

// Observe records entries and re-ranks. Ties go to the earlier section.
func (s *ScrollSpy) Observe(entries []IntersectionEntry) {
	for _, e := range entries {
		s.track(e.ID)
		s.state.Heights[e.ID] = e.Height
	}

	best, top := "", 0.0
	for _, id := range s.state.order {
		if h := s.state.Heights[id]; h > top {
			best, top = id, h
		}
	}
	if best == "" {
		return
	}
	s.active = best
	for _, link := range s.links {
		href, _ := link.Attr("href")
		link.ToggleClass("active", strings.TrimPrefix(href, "#") == best)
	}
}

// Reveal adds the "visible" class to sections the first time they enter
// the viewport.
type Reveal struct {
	sections map[string]*view.Node
}

func newReveal(sections map[string]*view.Node) *Reveal {
	return &Reveal{sections: sections}
}

func (r *Reveal) Observe(entries []IntersectionEntry) {
	for _, e := range entries {
		if n := r.sections[e.ID]; n != nil && e.Intersecting {
			n.AddClass("visible")
		}
	}
}
