package interact

import (
	"strconv"
	"strings"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/synth"
	"github.com/asif-cs/portfolio/internal/view"
)

// CarouselState is the index of the visible item.
type CarouselState struct {
	Index int
}

// Carousel cycles one multi-item media container.
type Carousel struct {
	block synth.MediaBlock
	media []content.Media
	state CarouselState
}

func newCarousel(block synth.MediaBlock, media []content.Media) *Carousel {
	c := &Carousel{block: block, media: media}
	c.Show(0)
	return c
}

// Index returns the visible item.
func (c *Carousel) Index() int { return c.state.Index }

// Len is the number of items.
func (c *Carousel) Len() int { return len(c.block.Items) }

// Media returns the originating media list.
func (c *Carousel) Media() []content.Media { return c.media }

// Current returns the visible item's metadata.
func (c *Carousel) Current() (content.Media, bool) {
	if c.state.Index >= len(c.media) {
		return content.Media{}, false
	}
	return c.media[c.state.Index], true
}

// Show makes item i visible. Out-of-range indices are ignored.
func (c *Carousel) Show(i int) {
	if i < 0 || i >= c.Len() {
		return
	}
	c.state.Index = i

	for j, item := range c.block.Items {
		item.Pause()
		item.ToggleClass("active", j == i)
	}
	for j, thumb := range c.block.Thumbs {
		thumb.ToggleClass("active", j == i)
	}

	active := c.block.Items[i]
	src, _ := active.Attr("src")
	typ := content.MediaImage
	if active.Tag == "video" {
		typ = content.MediaVideo
	}
	cur, known := c.Current()
	c.block.Carousel.SetAttr("data-current-index", strconv.Itoa(i))
	if c.block.Display != nil {
		c.block.Display.SetAttr("data-media-src", src)
		c.block.Display.SetAttr("data-media-type", string(typ))
		if known {
			c.block.Display.SetAttr("data-full-caption", cur.Caption)
		}
	}
	if c.block.Caption != nil {
		if known && strings.TrimSpace(cur.Caption) != "" {
			c.block.Caption.SetText(cur.Caption)
			c.block.Caption.SetHidden(false)
		} else {
			c.block.Caption.SetText("")
			c.block.Caption.SetHidden(true)
		}
	}
}

// Next advances one item, wrapping at the end.
func (c *Carousel) Next() {
	if n := c.Len(); n > 0 {
		c.Show((c.state.Index + 1) % n)
	}
}

// Prev goes back one item, wrapping at the start.
func (c *Carousel) Prev() {
	if n := c.Len(); n > 0 {
		c.Show((c.state.Index - 1 + n) % n)
	}
}

// SelectThumbnail shows the item behind thumbnail i.
func (c *Carousel) SelectThumbnail(i int) { c.Show(i) }

func (c *Carousel) handleClick(target *view.Node) bool {
	switch {
	case c.block.Prev != nil && c.block.Prev.Contains(target):
		c.Prev()
	case c.block.Next != nil && c.block.Next.Contains(target):
		c.Next()
	default:
		for i, thumb := range c.block.Thumbs {
			if thumb.Contains(target) {
				c.SelectThumbnail(i)
				return true
			}
		}
		return false
	}
	return true
}

// FindMediaList recovers the content media list a container was built
// from by its first item's source: project media is searched before bio
// media.
func FindMediaList(g *content.Graph, src string) []content.Media {
	if g == nil || src == "" {
		return nil
	}
	for _, list := range g.MediaLists() {
		for _, m := range list {
			if m.Src == src {
				return list
			}
		}
	}
	return nil
}
