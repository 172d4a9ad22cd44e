package interact

import (
	"slices"
	"time"

	"github.com/asif-cs/portfolio/internal/synth"
	"github.com/asif-cs/portfolio/internal/view"
)

const fadeInDuration = 500 * time.Millisecond

// FilterState is the set of active tags of one projects section.
type FilterState struct {
	Active map[string]bool
}

// Visible reports whether a card with tags is shown: with no active tag
// every card is, otherwise a card needs at least one active tag.
func (s FilterState) Visible(tags []string) bool {
	if len(s.Active) == 0 {
		return true
	}
	for _, t := range tags {
		if s.Active[t] {
			return true
		}
	}
	return false
}

// Filter drives the tag bar and card grid of one projects section.
type Filter struct {
	block    synth.ProjectsBlock
	state    FilterState
	expanded bool
	after    afterFunc
	fades    map[*view.Node]func()
}

func newFilter(block synth.ProjectsBlock, after afterFunc) *Filter {
	return &Filter{
		block: block,
		state: FilterState{Active: make(map[string]bool)},
		after: after,
		fades: make(map[*view.Node]func()),
	}
}

// SectionID is the projects section this filter belongs to.
func (f *Filter) SectionID() string { return f.block.SectionID }

// State returns a copy of the current tag set.
func (f *Filter) State() FilterState {
	active := make(map[string]bool, len(f.state.Active))
	for t := range f.state.Active {
		active[t] = true
	}
	return FilterState{Active: active}
}

// Active returns the active tags in bar order.
func (f *Filter) Active() []string {
	var out []string
	for _, t := range f.block.Tags {
		if f.state.Active[t] {
			out = append(out, t)
		}
	}
	return out
}

// Toggle flips tag. Tags not present in the bar are ignored.
func (f *Filter) Toggle(tag string) {
	i := slices.Index(f.block.Tags, tag)
	if i < 0 {
		return
	}
	if f.state.Active[tag] {
		delete(f.state.Active, tag)
	} else {
		f.state.Active[tag] = true
	}
	f.block.TagButtons[i].ToggleClass("active", f.state.Active[tag])
	f.apply()
}

// All clears every active tag.
func (f *Filter) All() {
	clear(f.state.Active)
	for _, btn := range f.block.TagButtons {
		btn.RemoveClass("active")
	}
	f.apply()
}

// ToggleExpanded opens or closes the tag drawer.
func (f *Filter) ToggleExpanded() {
	f.expanded = !f.expanded
	f.block.TagsWrapper.ToggleClass("expanded", f.expanded)
	f.block.FilterToggle.ToggleClass("active", f.expanded)
	if f.expanded {
		f.block.FilterToggle.SetAttr("aria-expanded", "true")
	} else {
		f.block.FilterToggle.SetAttr("aria-expanded", "false")
	}
}

// Expanded reports whether the tag drawer is open.
func (f *Filter) Expanded() bool { return f.expanded }

// Visible reports whether card passes the current filter.
func (f *Filter) Visible(card synth.CardRef) bool {
	return f.state.Visible(card.Tags)
}

func (f *Filter) apply() {
	f.block.All.ToggleClass("active", len(f.state.Active) == 0)
	for _, card := range f.block.Cards {
		if !f.Visible(card) {
			card.Node.SetHidden(true)
			continue
		}
		if card.Node.Hidden() {
			card.Node.SetHidden(false)
			f.fadeIn(card.Node)
		}
	}
}

func (f *Filter) fadeIn(n *view.Node) {
	if cancel, ok := f.fades[n]; ok {
		cancel()
	}
	n.AddClass("fade-in")
	f.fades[n] = f.after(fadeInDuration, func() {
		delete(f.fades, n)
		n.RemoveClass("fade-in")
	})
}

// handleClick routes a click inside the filter bar. It reports whether the
// target belonged to this filter.
func (f *Filter) handleClick(target *view.Node) bool {
	switch {
	case f.block.All.Contains(target):
		f.All()
	case f.block.FilterToggle.Contains(target):
		f.ToggleExpanded()
	default:
		for i, btn := range f.block.TagButtons {
			if btn.Contains(target) {
				f.Toggle(f.block.Tags[i])
				return true
			}
		}
		return false
	}
	return true
}
