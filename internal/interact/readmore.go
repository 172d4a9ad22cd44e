package interact

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asif-cs/portfolio/internal/synth"
)

const readMoreDelay = 500 * time.Millisecond

// Measurer decides whether text overflows its collapsed box at the given
// viewport width.
type Measurer interface {
	Truncated(text string, viewportWidth float64) bool
}

// LineEstimator approximates layout from character counts. It mirrors the
// stylesheet: cards sit in a grid of up to three columns inside a
// 1200px container and descriptions clamp at four lines.
type LineEstimator struct {
	CharWidth    float64 // average glyph advance in px
	LineClamp    int
	DefaultWidth float64 // viewport assumed when none is known
}

// DefaultMeasurer matches the bundled stylesheet.
var DefaultMeasurer = LineEstimator{CharWidth: 7.5, LineClamp: 4, DefaultWidth: 1280}

func (e LineEstimator) Truncated(text string, viewportWidth float64) bool {
	width := e.columnWidth(viewportWidth)
	lines := 0
	for _, para := range strings.Split(text, "\n\n") {
		n := utf8.RuneCountInString(strings.TrimSpace(para))
		if n == 0 {
			continue
		}
		lines += int(math.Ceil(float64(n) * e.CharWidth / width))
	}
	return lines > e.LineClamp
}

func (e LineEstimator) columnWidth(viewport float64) float64 {
	if viewport <= 0 {
		viewport = e.DefaultWidth
	}
	cols := 3.0
	switch {
	case viewport < 768:
		cols = 1
	case viewport < 1100:
		cols = 2
	}
	container := math.Min(viewport-32, 1200)
	w := (container-(cols-1)*24)/cols - 48
	return math.Max(w, 120)
}

// ReadMore is one truncatable project description.
type ReadMore struct {
	block     synth.ReadMoreBlock
	expanded  bool
	truncated bool
}

func newReadMore(block synth.ReadMoreBlock) *ReadMore {
	return &ReadMore{block: block}
}

// Measure shows the toggle only when the description overflows.
func (r *ReadMore) Measure(m Measurer, viewportWidth float64) {
	r.truncated = m.Truncated(r.block.Text, viewportWidth)
	r.block.Button.SetHidden(!r.truncated)
}

// Truncated reports the last measurement.
func (r *ReadMore) Truncated() bool { return r.truncated }

// Expanded reports whether the full description is shown.
func (r *ReadMore) Expanded() bool { return r.expanded }

// Toggle expands or collapses the description.
func (r *ReadMore) Toggle() {
	r.expanded = !r.expanded
	r.block.Description.ToggleClass("expanded", r.expanded)
	if r.expanded {
		r.block.Button.SetText("See Less")
	} else {
		r.block.Button.SetText("See More")
	}
}
