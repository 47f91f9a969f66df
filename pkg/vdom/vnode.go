package vdom

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindHost      Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindComponent             // Function component
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindHost:
		return "Host"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds attributes and event handlers. A key prefixed "on" whose
// value is callable denotes an event binding.
type Props map[string]any

// ComponentFunc renders props to a virtual node. The runtime invokes it
// with the node's props plus a "children" entry during materialization.
type ComponentFunc func(Props) *VNode

// VNode is an immutable description of a piece of UI prior to
// materialization.
type VNode struct {
	Kind     Kind
	Tag      string        // Host tag name (e.g. "div")
	Fn       ComponentFunc // For KindComponent
	Props    Props
	Children []*VNode
	Text     string // For KindText
}

// H constructs a virtual node. tag is a host tag string or a
// ComponentFunc. Children are flattened per Flatten.
func H(tag any, props Props, children ...any) *VNode {
	node := &VNode{Props: props}

	switch t := tag.(type) {
	case string:
		node.Kind = KindHost
		node.Tag = t
	case ComponentFunc:
		node.Kind = KindComponent
		node.Fn = t
	case func(Props) *VNode:
		node.Kind = KindComponent
		node.Fn = t
	default:
		node.Kind = KindHost
		node.Tag = fmt.Sprint(t)
	}

	node.Children = Flatten(children)
	return node
}

// Flatten collapses arbitrarily nested child sequences into one ordered
// slice of nodes. Entries equal to nil or false are dropped; primitives
// become text nodes.
func Flatten(children []any) []*VNode {
	out := make([]*VNode, 0, len(children))
	return appendFlat(out, children)
}

func appendFlat(out []*VNode, children []any) []*VNode {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			// Dropped: conditional rendering.
		case bool:
			if !v {
				continue
			}
			out = append(out, Text(fmt.Sprint(v)))
		case *VNode:
			if v != nil {
				out = append(out, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					out = append(out, c)
				}
			}
		case []any:
			out = appendFlat(out, v)
		case string:
			out = append(out, Text(v))
		case int:
			out = append(out, Text(fmt.Sprint(v)))
		case int64:
			out = append(out, Text(fmt.Sprint(v)))
		case float64:
			out = append(out, Textf("%g", v))
		default:
			out = append(out, Text(fmt.Sprint(v)))
		}
	}
	return out
}
