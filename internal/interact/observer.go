package interact

import "math"

// Rect is a section's box in document coordinates.
type Rect struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// IntersectionEntry reports how much of a section is inside the viewport.
type IntersectionEntry struct {
	ID           string  `json:"id"`
	Height       float64 `json:"height"` // visible pixels
	Ratio        float64 `json:"ratio"`
	Intersecting bool    `json:"intersecting"`
}

// SpyThresholds are the ratios the scroll-spy wants to hear about.
var SpyThresholds = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// RevealThresholds drive the section reveal animation.
var RevealThresholds = []float64{0.1}

// IntersectionObserver computes entries from layout and scroll position.
// Like its browser namesake it reports every target once when the layout
// first arrives, then only targets whose ratio crossed a threshold.
type IntersectionObserver struct {
	thresholds []float64
	viewport   float64
	scrollY    float64
	rects      []Rect
	last       map[string]int
}

func NewIntersectionObserver(thresholds ...float64) *IntersectionObserver {
	return &IntersectionObserver{
		thresholds: thresholds,
		last:       make(map[string]int),
	}
}

// SetLayout replaces the observed rectangles and viewport height.
func (o *IntersectionObserver) SetLayout(viewport float64, rects []Rect) []IntersectionEntry {
	o.viewport = viewport
	if rects != nil {
		o.rects = rects
		clear(o.last)
	}
	return o.compute()
}

// Scroll moves the viewport.
func (o *IntersectionObserver) Scroll(y float64) []IntersectionEntry {
	o.scrollY = y
	return o.compute()
}

func (o *IntersectionObserver) compute() []IntersectionEntry {
	if o.viewport <= 0 {
		return nil
	}
	var out []IntersectionEntry
	top, bottom := o.scrollY, o.scrollY+o.viewport
	for _, r := range o.rects {
		visible := math.Max(0, math.Min(bottom, r.Top+r.Height)-math.Max(top, r.Top))
		e := IntersectionEntry{ID: r.ID, Height: visible, Intersecting: visible > 0}
		if r.Height > 0 {
			e.Ratio = visible / r.Height
		}
		b := o.bucket(e)
		if prev, seen := o.last[r.ID]; seen && prev == b {
			continue
		}
		o.last[r.ID] = b
		out = append(out, e)
	}
	return out
}

// bucket is the number of thresholds at or below the entry's ratio, or -1
// when the target is outside the viewport.
func (o *IntersectionObserver) bucket(e IntersectionEntry) int {
	if !e.Intersecting {
		return -1
	}
	n := 0
	for _, t := range o.thresholds {
		if e.Ratio >= t {
			n++
		}
	}
	return n
}
