package interact

import "github.com/asif-cs/portfolio/internal/view"

// Event is an input delivered to the engine. Element references are node
// ids; clients report the nearest element that has one.
type Event interface {
	isEvent()
}

// Click is a primary-button click. Focused is the element that held focus
// when the click happened.
type Click struct {
	Target  string `json:"target"`
	Focused string `json:"focused,omitempty"`
}

// Key is a keydown anywhere in the document, named like KeyboardEvent.key.
type Key struct {
	Key string `json:"key"`
}

// Intersect carries observer entries computed by the client.
type Intersect struct {
	Entries []IntersectionEntry `json:"entries"`
}

// Scroll reports the vertical scroll offset.
type Scroll struct {
	Y float64 `json:"y"`
}

// Resize reports the viewport size and, optionally, the section layout in
// document coordinates.
type Resize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Layout []Rect  `json:"layout,omitempty"`
}

// Submit is a form submission with its field values.
type Submit struct {
	Form   string            `json:"form"`
	Fields map[string]string `json:"fields"`
}

// Focus reports that the client moved focus.
type Focus struct {
	Target string `json:"target"`
}

func (Click) isEvent()     {}
func (Key) isEvent()       {}
func (Intersect) isEvent() {}
func (Scroll) isEvent()    {}
func (Resize) isEvent()    {}
func (Submit) isEvent()    {}
func (Focus) isEvent()     {}

// Effect is a side effect the transport performs on the client.
type Effect interface {
	isEffect()
}

// Navigate sends the client to URL.
type Navigate struct {
	URL string `json:"url"`
}

// ScrollTo scrolls the viewport.
type ScrollTo struct {
	Top    float64 `json:"top"`
	Smooth bool    `json:"smooth"`
}

func (Navigate) isEffect() {}
func (ScrollTo) isEffect() {}

// Update is everything one transition produced.
type Update struct {
	view.Batch
	Effects []Effect `json:"-"`
}

// Empty reports whether the update carries nothing.
func (u Update) Empty() bool { return u.Batch.Empty() && len(u.Effects) == 0 }
