package dom

import (
	"fmt"
	"strings"
)

// Node is an entry in the host tree: an *Element or a *TextNode.
type Node interface {
	isNode()
}

// TextNode is a display text unit.
type TextNode struct {
	Data string
}

func (*TextNode) isNode() {}

// Event is delivered to element listeners.
type Event struct {
	Type   string   // "click", "input", "change", "submit", ...
	Target *Element // set by Dispatch
	Value  string   // input payload, if any
}

// Handler handles a dispatched event.
type Handler func(Event)

// Element is a materialized, display-engine-native element.
type Element struct {
	Tag string

	// Live fields written directly by prop application. They back
	// controlled-input semantics: the serializer reflects them into the
	// value attribute and checked flag, and Dispatch updates Value from
	// input events before invoking listeners.
	Value   string
	Checked bool

	doc       *Document
	eid       string
	attrs     map[string]string
	style     map[string]string
	listeners map[string][]Handler
	children  []Node
	ctx2d     *Context2D
}

func (*Element) isNode() {}

// Document owns a host tree rooted at Body.
type Document struct {
	body    *Element
	nextEID int
}

// NewDocument creates a document with an empty body element.
func NewDocument() *Document {
	d := &Document{}
	d.body = &Element{Tag: "body", doc: d, eid: "body"}
	return d
}

// Body returns the document's root container.
func (d *Document) Body() *Element { return d.body }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// ResetEIDs restarts element id assignment. The runtime calls this at the
// start of every render pass; a full-tree rebuild discards every previous
// element, so reusing ids cannot alias live nodes, and repeated renders of
// an unchanged tree serialize identically.
func (d *Document) ResetEIDs() { d.nextEID = 0 }

// CreateElement creates a detached element of the given tag and assigns
// its element id.
func (d *Document) CreateElement(tag string) *Element {
	d.nextEID++
	return &Element{
		Tag: tag,
		doc: d,
		eid: fmt.Sprintf("e%d", d.nextEID),
	}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(data string) *TextNode {
	return &TextNode{Data: data}
}

// GetElementByID returns the first mounted element whose id attribute
// matches, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return d.body.find(func(e *Element) bool {
		v, ok := e.Attr("id")
		return ok && v == id
	})
}

// ByEID returns the mounted element with the given element id, or nil.
// Only elements reachable from Body are found, so stale ids from a
// discarded render resolve to nil.
func (d *Document) ByEID(eid string) *Element {
	return d.body.find(func(e *Element) bool { return e.eid == eid })
}

// EID returns the element id assigned at creation.
func (e *Element) EID() string { return e.eid }

// AppendChild appends a node to the element's children.
func (e *Element) AppendChild(n Node) {
	if n == nil {
		return
	}
	e.children = append(e.children, n)
}

// RemoveChildren discards all children. Every render starts here: the
// runtime rebuilds the container's subtree from nothing.
func (e *Element) RemoveChildren() {
	e.children = nil
}

// Children returns the element's children in document order.
func (e *Element) Children() []Node { return e.children }

// SetAttribute writes a generic attribute.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr reads an attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// SetStyle writes one inline style property.
func (e *Element) SetStyle(property, value string) {
	if e.style == nil {
		e.style = make(map[string]string)
	}
	e.style[property] = value
}

// StyleValue reads one inline style property.
func (e *Element) StyleValue(property string) (string, bool) {
	v, ok := e.style[property]
	return v, ok
}

// SetField sets a same-named settable field if the element exposes one.
// Returns false if the name does not map to a field, in which case the
// caller should fall back to SetAttribute.
func (e *Element) SetField(name string, value any) bool {
	switch name {
	case "value":
		e.Value = fieldString(value)
	case "checked":
		b, ok := value.(bool)
		if !ok {
			return false
		}
		e.Checked = b
	default:
		return false
	}
	return true
}

func fieldString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// AddEventListener registers a handler for the given event type.
func (e *Element) AddEventListener(event string, h Handler) {
	if h == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Handler)
	}
	event = strings.ToLower(event)
	e.listeners[event] = append(e.listeners[event], h)
}

// HasListeners reports whether any listener is registered.
func (e *Element) HasListeners() bool { return len(e.listeners) > 0 }

// Dispatch fires the element's listeners for ev.Type synchronously, in
// registration order. The event's Target is set to the element. Input and
// change events update the live Value field before listeners run.
func (e *Element) Dispatch(ev Event) bool {
	ev.Type = strings.ToLower(ev.Type)
	ev.Target = e

	if ev.Type == "input" || ev.Type == "change" {
		e.Value = ev.Value
	}

	hs := e.listeners[ev.Type]
	for _, h := range hs {
		h(ev)
	}
	return len(hs) > 0
}

// TextContent returns the concatenated text of the element's subtree.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *TextNode:
			b.WriteString(n.Data)
		case *Element:
			n.writeText(b)
		}
	}
}

// find walks the subtree depth-first and returns the first element
// matching pred, including e itself.
func (e *Element) find(pred func(*Element) bool) *Element {
	if pred(e) {
		return e
	}
	for _, c := range e.children {
		child, ok := c.(*Element)
		if !ok {
			continue
		}
		if found := child.find(pred); found != nil {
			return found
		}
	}
	return nil
}
