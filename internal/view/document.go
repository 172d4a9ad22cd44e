package view

// Document owns an attached view tree: it indexes nodes by id, tracks
// keyboard focus, and collects dirty nodes into patch batches.
type Document struct {
	Root *Node

	byID  map[string]*Node
	dirty map[*Node]bool // value: content changed, not just attributes
	order []*Node
	focus *Node

	focusChanged bool
}

// Patch describes the new state of one addressable element. Attrs is the
// complete attribute set; HTML is only present when the content changed.
type Patch struct {
	ID      string            `json:"id"`
	Class   string            `json:"class"`
	Attrs   map[string]string `json:"attrs"`
	Hidden  bool              `json:"hidden"`
	Playing *bool             `json:"playing,omitempty"`
	HTML    *string           `json:"html,omitempty"`
}

// Batch is the set of changes produced by one or more transitions.
type Batch struct {
	Patches []Patch `json:"patches"`
	Focus   string  `json:"focus,omitempty"`
}

// Empty reports whether the batch carries nothing.
func (b Batch) Empty() bool { return len(b.Patches) == 0 && b.Focus == "" }

// NewDocument attaches root and indexes its subtree.
func NewDocument(root *Node) *Document {
	d := &Document{
		Root:  root,
		byID:  make(map[string]*Node),
		dirty: make(map[*Node]bool),
	}
	d.index(root)
	return d
}

// ByID returns the node with the given id, or nil.
func (d *Document) ByID(id string) *Node {
	return d.byID[id]
}

// Focus moves keyboard focus to n. A nil node blurs.
func (d *Document) Focus(n *Node) {
	if d.focus == n {
		return
	}
	d.focus = n
	d.focusChanged = true
}

// SyncFocus records focus the client already moved, without emitting it
// back in the next batch.
func (d *Document) SyncFocus(n *Node) {
	if d.focus == n {
		return
	}
	d.focus = n
}

// Focused returns the node holding keyboard focus.
func (d *Document) Focused() *Node { return d.focus }

// Flush returns every pending change and resets dirty tracking.
func (d *Document) Flush() Batch {
	var b Batch
	for _, n := range d.order {
		if n.doc != d || d.coveredByAncestor(n) {
			continue
		}
		b.Patches = append(b.Patches, patchFor(n, d.dirty[n]))
	}
	if d.focusChanged && d.focus != nil && d.focus.ID != "" {
		b.Focus = d.focus.ID
	}
	d.dirty = make(map[*Node]bool)
	d.order = nil
	d.focusChanged = false
	return b
}

func (d *Document) coveredByAncestor(n *Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if d.dirty[p] {
			return true
		}
	}
	return false
}

func (d *Document) markDirty(n *Node, content bool) {
	target := n
	// Anonymous nodes are shipped as part of their nearest addressable ancestor.
	for target.ID == "" && target.Parent != nil {
		target = target.Parent
		content = true
	}
	if target.ID == "" {
		return
	}
	prev, seen := d.dirty[target]
	if !seen {
		d.order = append(d.order, target)
	}
	d.dirty[target] = prev || content
}

func (d *Document) index(n *Node) {
	n.walk(func(c *Node) {
		c.doc = d
		if c.ID != "" {
			d.byID[c.ID] = c
		}
	})
}

func (d *Document) unindex(n *Node) {
	n.walk(func(c *Node) {
		if c.doc != d {
			return
		}
		c.doc = nil
		if c.ID != "" && d.byID[c.ID] == c {
			delete(d.byID, c.ID)
		}
		if d.focus == c {
			d.focus = nil
		}
	})
}

func patchFor(n *Node, content bool) Patch {
	p := Patch{
		ID:     n.ID,
		Class:  classString(n.classes),
		Attrs:  make(map[string]string, len(n.attrs)),
		Hidden: n.hidden,
	}
	for _, a := range n.attrs {
		p.Attrs[a.Key] = a.Val
	}
	if n.Tag == "video" {
		playing := n.playing
		p.Playing = &playing
	}
	if content {
		inner := InnerHTML(n)
		p.HTML = &inner
	}
	return p
}
