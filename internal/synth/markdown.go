package synth

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Content strings are trusted author markdown, so raw HTML passes through.
// Headings get no generated ids: section ids are the only page anchors.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)
}

// paragraphs renders each entry as its own block.
func (s *synthesizer) paragraphs(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(s.block(it))
	}
	return b.String()
}

func (s *synthesizer) block(src string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return buf.String()
}

// inline renders src without the wrapping paragraph goldmark adds.
func (s *synthesizer) inline(src string) string {
	out := strings.TrimSpace(s.block(src))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		return out[len("<p>") : len(out)-len("</p>")]
	}
	return out
}

func plainText(items []string) string {
	return strings.Join(items, "\n\n")
}
