package synth

import (
	"strings"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/icons"
	"github.com/asif-cs/portfolio/internal/view"
)

// mediaContainer renders a single clickable figure or a carousel shell.
// It holds no carousel state; the engine wires that up from the MediaBlock.
func (s *synthesizer) mediaContainer(owner string, media []content.Media) *view.Node {
	id := owner + "-media"
	block := MediaBlock{Owner: owner, Media: media}
	block.Container = view.El("div").WithID(id).WithClass("media-container")

	if len(media) == 1 {
		item := media[0]
		var el *view.Node
		if item.IsVideo() {
			el = view.El("video").WithClass("media-item active").
				WithAttr("src", item.Src).
				WithAttr("controls", "").
				WithAttr("playsinline", "").
				WithAttr("muted", "").
				WithAttr("loop", "")
		} else {
			el = view.El("img").
				WithAttr("src", item.Src).
				WithAttr("alt", item.Alt).
				WithAttr("loading", "lazy")
		}
		block.Single = view.El("div", el).WithID(id+"-single").WithClass("media-single media-clickable").
			WithAttr("data-media-type", string(item.Type)).
			WithAttr("data-media-src", item.Src).
			WithAttr("data-full-caption", item.Caption)
		if strings.TrimSpace(item.Caption) != "" {
			block.Single.Append(view.TextEl("p", item.Caption).WithClass("media-caption"))
		}
		block.Container.Append(block.Single)
		s.page.Media = append(s.page.Media, block)
		return block.Container
	}

	block.Display = view.El("div").WithID(id+"-display").WithClass("media-carousel-display media-clickable").
		WithAttr("data-media-src", "").
		WithAttr("data-full-caption", "")
	thumbs := view.El("div").WithClass("media-thumbnails")
	for i, item := range media {
		var el *view.Node
		if item.IsVideo() {
			el = view.El("video").
				WithAttr("src", item.Src).
				WithAttr("playsinline", "").
				WithAttr("muted", "").
				WithAttr("loop", "")
		} else {
			el = view.El("img").
				WithAttr("src", item.Src).
				WithAttr("alt", item.Alt).
				WithAttr("loading", "lazy")
		}
		el.WithID(id+"-item-"+itoa(i)).WithClass("media-item").
			WithAttr("data-index", itoa(i)).
			WithAttr("data-caption", item.Caption)
		if i == 0 {
			el.WithClass("active")
		}
		block.Items = append(block.Items, el)
		block.Display.Append(el)

		thumb := view.El("img").WithID(id+"-thumb-"+itoa(i)).WithClass("thumb-item").
			WithAttr("src", item.ThumbSrc()).
			WithAttr("data-index", itoa(i)).
			WithAttr("alt", "Thumbnail of "+item.Alt).
			WithAttr("loading", "lazy")
		if i == 0 {
			thumb.WithClass("active")
		}
		block.Thumbs = append(block.Thumbs, thumb)
		thumbs.Append(thumb)
	}

	block.Caption = view.El("p").WithID(id + "-caption").WithClass("media-caption")
	block.Prev = view.El("button", svgStroke(icons.ChevronLeft)).WithID(id+"-prev").
		WithClass("carousel-nav-btn prev").WithAttr("aria-label", "Previous")
	block.Next = view.El("button", svgStroke(icons.ChevronRight)).WithID(id+"-next").
		WithClass("carousel-nav-btn next").WithAttr("aria-label", "Next")
	block.Carousel = view.El("div",
		block.Display,
		block.Caption,
		view.El("div", block.Prev, thumbs, block.Next).WithClass("media-controls"),
	).WithID(id + "-carousel").WithClass("media-carousel")

	block.Container.Append(block.Carousel)
	s.page.Media = append(s.page.Media, block)
	return block.Container
}
