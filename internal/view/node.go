package view

import (
	"slices"
	"strings"
)

// Attr is a single element attribute. Attributes keep insertion order so
// rendering is deterministic.
type Attr struct {
	Key string
	Val string
}

// Node is one element (or text run) in the view tree.
//
// Nodes are built detached and become addressable once the tree is handed
// to NewDocument. After that every mutation marks the node dirty so a
// transport can ship the change to a browser.
type Node struct {
	ID       string
	Tag      string
	Text     string // text content for leaves; ignored when Children is non-empty
	Raw      string // trusted HTML fragment rendered in place of Text
	Children []*Node
	Parent   *Node

	classes []string
	attrs   []Attr
	hidden  bool
	playing bool
	doc     *Document
}

// El creates a detached element with the given children.
func El(tag string, children ...*Node) *Node {
	n := &Node{Tag: tag}
	for _, c := range children {
		if c != nil {
			n.appendChild(c)
		}
	}
	return n
}

// TextEl creates a detached element holding plain text.
func TextEl(tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// Plain creates an anonymous text run, for mixing text with elements.
func Plain(text string) *Node {
	return &Node{Text: text}
}

// WithID sets the element id.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithClass appends one or more classes.
func (n *Node) WithClass(classes ...string) *Node {
	for _, c := range classes {
		for _, f := range strings.Fields(c) {
			if !slices.Contains(n.classes, f) {
				n.classes = append(n.classes, f)
			}
		}
	}
	return n
}

// WithAttr sets an attribute while building.
func (n *Node) WithAttr(key, val string) *Node {
	n.setAttr(key, val)
	return n
}

// WithText sets the text content while building.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// WithRaw sets a trusted HTML fragment as the node's content.
func (n *Node) WithRaw(fragment string) *Node {
	n.Raw = fragment
	return n
}

// WithHidden marks the node hidden while building.
func (n *Node) WithHidden(hidden bool) *Node {
	n.hidden = hidden
	return n
}

// Document returns the document the node is attached to, or nil.
func (n *Node) Document() *Document { return n.doc }

// Classes returns a copy of the class list.
func (n *Node) Classes() []string { return slices.Clone(n.classes) }

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool { return slices.Contains(n.classes, c) }

// AddClass adds c if missing.
func (n *Node) AddClass(c string) {
	if n.HasClass(c) {
		return
	}
	n.classes = append(n.classes, c)
	n.touch(false)
}

// RemoveClass removes c if present.
func (n *Node) RemoveClass(c string) {
	i := slices.Index(n.classes, c)
	if i < 0 {
		return
	}
	n.classes = slices.Delete(n.classes, i, i+1)
	n.touch(false)
}

// ToggleClass forces c on or off and returns on.
func (n *Node) ToggleClass(c string, on bool) bool {
	if on {
		n.AddClass(c)
	} else {
		n.RemoveClass(c)
	}
	return on
}

// Attrs returns a copy of the attribute list.
func (n *Node) Attrs() []Attr { return slices.Clone(n.attrs) }

// Attr returns the value of key and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets key to val.
func (n *Node) SetAttr(key, val string) {
	if cur, ok := n.Attr(key); ok && cur == val {
		return
	}
	n.setAttr(key, val)
	n.touch(false)
}

// RemoveAttr deletes key.
func (n *Node) RemoveAttr(key string) {
	for i, a := range n.attrs {
		if a.Key == key {
			n.attrs = slices.Delete(n.attrs, i, i+1)
			n.touch(false)
			return
		}
	}
}

func (n *Node) setAttr(key, val string) {
	for i, a := range n.attrs {
		if a.Key == key {
			n.attrs[i].Val = val
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Val: val})
}

// Hidden reports whether the node is hidden from display.
func (n *Node) Hidden() bool { return n.hidden }

// SetHidden shows or hides the node.
func (n *Node) SetHidden(hidden bool) {
	if n.hidden == hidden {
		return
	}
	n.hidden = hidden
	n.touch(false)
}

// Playing reports whether a media element is playing.
func (n *Node) Playing() bool { return n.playing }

// Play starts playback of a video element.
func (n *Node) Play() {
	if n.Tag != "video" || n.playing {
		return
	}
	n.playing = true
	n.touch(false)
}

// Pause stops playback of a video element.
func (n *Node) Pause() {
	if !n.playing {
		return
	}
	n.playing = false
	n.touch(false)
}

// SetText replaces the node content with plain text.
func (n *Node) SetText(text string) {
	if len(n.Children) == 0 && n.Raw == "" && n.Text == text {
		return
	}
	n.detachChildren()
	n.Raw = ""
	n.Text = text
	n.touch(true)
}

// ResetText is SetText that always reports the node. Form fields need it:
// the browser owns their live value, so the tree's copy may already match.
func (n *Node) ResetText(text string) {
	n.detachChildren()
	n.Raw = ""
	n.Text = text
	n.touch(true)
}

// Append adds children to an attached or detached node.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.appendChild(c)
		if n.doc != nil {
			n.doc.index(c)
		}
	}
	n.touch(true)
}

// Clear removes all content.
func (n *Node) Clear() {
	if len(n.Children) == 0 && n.Text == "" && n.Raw == "" {
		return
	}
	n.detachChildren()
	n.Text = ""
	n.Raw = ""
	n.touch(true)
}

func (n *Node) appendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) detachChildren() {
	for _, c := range n.Children {
		if n.doc != nil {
			n.doc.unindex(c)
		}
		c.Parent = nil
	}
	n.Children = nil
}

// Closest walks from n up through its ancestors and returns the first node
// matching pred.
func (n *Node) Closest(pred func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

// FindAll returns every descendant (n included) matching pred in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if pred(c) {
			out = append(out, c)
		}
	})
	return out
}

// Find returns the first descendant (n included) matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if all := n.FindAll(pred); len(all) > 0 {
		return all[0]
	}
	return nil
}

// ByClass matches nodes carrying class c.
func ByClass(c string) func(*Node) bool {
	return func(n *Node) bool { return n.HasClass(c) }
}

// ByTag matches nodes with the given tag.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.Tag == tag }
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.walk(func(c *Node) {
		if len(c.Children) == 0 {
			b.WriteString(c.Text)
		}
	})
	return b.String()
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

func (n *Node) touch(content bool) {
	if n.doc != nil {
		n.doc.markDirty(n, content)
	}
}
