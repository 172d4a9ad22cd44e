package interact

import (
	"time"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/synth"
	"github.com/asif-cs/portfolio/internal/view"
)

const viewerFocusDelay = 100 * time.Millisecond

// ViewerState is what the fullscreen viewer is showing. Index is -1 while
// closed.
type ViewerState struct {
	Media       []content.Media
	Index       int
	ReturnFocus *view.Node
}

// Viewer is the single fullscreen media modal.
type Viewer struct {
	modal synth.ModalBlock
	body  *view.Node
	doc   *view.Document
	after afterFunc

	state       ViewerState
	open        bool
	cancelFocus func()
}

func newViewer(modal synth.ModalBlock, body *view.Node, doc *view.Document, after afterFunc) *Viewer {
	return &Viewer{
		modal: modal,
		body:  body,
		doc:   doc,
		after: after,
		state: ViewerState{Index: -1},
	}
}

// IsOpen reports whether the modal is showing.
func (v *Viewer) IsOpen() bool { return v.open }

// Index is the item on screen, or -1 when closed.
func (v *Viewer) Index() int { return v.state.Index }

// State returns the current viewer state.
func (v *Viewer) State() ViewerState { return v.state }

// Open shows media[index] and remembers returnFocus for Close. Opening
// while open replaces the content but keeps the original return target.
func (v *Viewer) Open(media []content.Media, index int, returnFocus *view.Node) {
	if index < 0 || index >= len(media) {
		return
	}
	if v.open {
		v.pauseAll()
		returnFocus = v.state.ReturnFocus
	}
	v.state = ViewerState{Media: media, Index: index, ReturnFocus: returnFocus}
	v.open = true
	v.render()

	multi := len(media) > 1
	v.modal.Prev.SetHidden(!multi)
	v.modal.Next.SetHidden(!multi)
	v.modal.Root.AddClass("is-open")
	v.body.AddClass("no-scroll")

	if v.cancelFocus != nil {
		v.cancelFocus()
	}
	v.cancelFocus = v.after(viewerFocusDelay, func() {
		v.cancelFocus = nil
		if v.open {
			v.doc.Focus(v.modal.Close)
		}
	})
}

// Next shows the following item, wrapping.
func (v *Viewer) Next() {
	if !v.open {
		return
	}
	v.state.Index = (v.state.Index + 1) % len(v.state.Media)
	v.render()
}

// Prev shows the previous item, wrapping.
func (v *Viewer) Prev() {
	if !v.open {
		return
	}
	n := len(v.state.Media)
	v.state.Index = (v.state.Index - 1 + n) % n
	v.render()
}

// Close hides the modal and restores focus. Closing a closed viewer does
// nothing.
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	if v.cancelFocus != nil {
		v.cancelFocus()
		v.cancelFocus = nil
	}
	v.pauseAll()
	v.modal.Root.RemoveClass("is-open")
	v.modal.Content.Clear()
	v.body.RemoveClass("no-scroll")

	ret := v.state.ReturnFocus
	v.state = ViewerState{Index: -1}
	v.open = false
	if ret != nil && ret.Document() == v.doc {
		v.doc.Focus(ret)
	}
}

func (v *Viewer) render() {
	v.pauseAll()
	v.modal.Content.Clear()

	item := v.state.Media[v.state.Index]
	if item.IsVideo() {
		video := view.El("video").
			WithAttr("src", item.Src).
			WithAttr("controls", "").
			WithAttr("playsinline", "").
			WithAttr("loop", "")
		video.Play()
		v.modal.Content.Append(video)
	} else {
		alt := item.Alt
		if alt == "" {
			alt = "Fullscreen image"
		}
		v.modal.Content.Append(view.El("img").WithAttr("src", item.Src).WithAttr("alt", alt))
	}
	if item.Caption != "" {
		v.modal.Content.Append(view.TextEl("div", item.Caption).WithClass("modal-caption"))
	}
}

func (v *Viewer) pauseAll() {
	for _, n := range v.modal.Content.FindAll(view.ByTag("video")) {
		n.Pause()
	}
}

// handleKey applies viewer shortcuts.
func (v *Viewer) handleKey(key string) {
	if !v.open {
		return
	}
	switch key {
	case "Escape":
		v.Close()
	case "ArrowRight":
		if len(v.state.Media) > 1 {
			v.Next()
		}
	case "ArrowLeft":
		if len(v.state.Media) > 1 {
			v.Prev()
		}
	}
}

// handleClick handles clicks on the modal chrome.
func (v *Viewer) handleClick(target *view.Node) bool {
	switch {
	case v.modal.Close.Contains(target):
		v.Close()
	case v.modal.Prev.Contains(target):
		v.Prev()
	case v.modal.Next.Contains(target):
		v.Next()
	case target == v.modal.Root:
		v.Close()
	default:
		return false
	}
	return true
}
