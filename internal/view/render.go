package view

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the whole document, doctype included.
func (d *Document) Render(w io.Writer) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(toHTML(d.Root))
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	return nil
}

// Render writes n and its subtree as HTML.
func Render(w io.Writer, n *Node) error {
	return html.Render(w, toHTML(n))
}

// OuterHTML renders n to a string.
func OuterHTML(n *Node) string {
	var buf bytes.Buffer
	_ = Render(&buf, n)
	return buf.String()
}

// InnerHTML renders the content of n without its own tag.
func InnerHTML(n *Node) string {
	var buf bytes.Buffer
	for c := toHTML(n).FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

func toHTML(n *Node) *html.Node {
	if n.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.ID != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "id", Val: n.ID})
	}
	if len(n.classes) > 0 {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: classString(n.classes)})
	}
	for _, a := range n.attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if n.hidden {
		el.Attr = append(el.Attr, html.Attribute{Key: "hidden"})
	}
	if n.playing {
		el.Attr = append(el.Attr, html.Attribute{Key: "autoplay"})
	}

	switch {
	case len(n.Children) > 0:
		for _, c := range n.Children {
			el.AppendChild(toHTML(c))
		}
	case n.Raw != "":
		for _, frag := range parseFragment(n.Raw) {
			el.AppendChild(frag)
		}
	case n.Text != "":
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	return el
}

func parseFragment(raw string) []*html.Node {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(raw), context)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: raw}}
	}
	return nodes
}

func classString(classes []string) string {
	return strings.Join(classes, " ")
}
