package ui

import (
	"fmt"
	"strings"

	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/vdom"
)

// Mount materializes node into container without touching the retained
// session. Render is the normal entry point; Mount exists for embedding
// static subtrees and for tests.
func (rt *Runtime) Mount(node any, container *dom.Element) {
	prev := current
	current = rt
	defer func() { current = prev }()

	rt.mount(node, container)
}

// mount dispatches on the node's shape. Shapes outside the defined set
// (primitive, sequence, component, host) are coerced to text; there is no
// defensive validation beyond that.
func (rt *Runtime) mount(node any, parent *dom.Element) {
	switch n := node.(type) {
	case nil:
		return
	case *vdom.VNode:
		if n != nil {
			rt.mountNode(n, parent)
		}
	case []*vdom.VNode:
		// Defensive path: sequences are normally pre-flattened by H.
		for _, c := range n {
			rt.mount(c, parent)
		}
	case []any:
		for _, c := range n {
			rt.mount(c, parent)
		}
	case string:
		parent.AppendChild(parent.Document().CreateText(n))
	default:
		parent.AppendChild(parent.Document().CreateText(fmt.Sprint(n)))
	}
}

func (rt *Runtime) mountNode(n *vdom.VNode, parent *dom.Element) {
	doc := parent.Document()

	switch n.Kind {
	case vdom.KindText:
		parent.AppendChild(doc.CreateText(n.Text))

	case vdom.KindFragment:
		for _, c := range n.Children {
			rt.mount(c, parent)
		}

	case vdom.KindComponent:
		// The component consumes zero or more hook slots here, in the
		// global call order of the pass.
		props := make(vdom.Props, len(n.Props)+1)
		for k, v := range n.Props {
			props[k] = v
		}
		props["children"] = n.Children
		rt.mount(n.Fn(props), parent)

	case vdom.KindHost:
		el := doc.CreateElement(n.Tag)
		applyProps(el, n.Props)
		for _, c := range n.Children {
			rt.mount(c, el)
		}
		// Children are in place before the element joins its parent, so
		// a serializer walking the tree never sees a half-built element.
		parent.AppendChild(el)
	}
}

// applyProps writes a virtual node's props onto a host element.
//
//   - "on"-prefixed names with callable values register event listeners;
//     the event name is the lowercased remainder.
//   - "className" writes the class attribute.
//   - "style" with a map value applies each entry as one style property.
//   - nil values are skipped entirely; they must not appear as attributes.
//   - anything else sets a same-named settable element field if one
//     exists (live value/checked for controlled inputs), otherwise a
//     generic attribute.
func applyProps(el *dom.Element, props vdom.Props) {
	for name, value := range props {
		if value == nil {
			continue
		}

		if strings.HasPrefix(name, "on") && len(name) > 2 {
			if h := asHandler(value); h != nil {
				el.AddEventListener(strings.ToLower(name[2:]), h)
				continue
			}
		}

		switch name {
		case "className":
			el.SetAttribute("class", attrString(value))
		case "style":
			if m, ok := value.(map[string]string); ok {
				for prop, v := range m {
					el.SetStyle(prop, v)
				}
			} else {
				el.SetAttribute("style", attrString(value))
			}
		default:
			if el.SetField(name, value) {
				continue
			}
			el.SetAttribute(name, attrString(value))
		}
	}
}

// asHandler adapts the handler shapes components use to dom.Handler.
func asHandler(value any) dom.Handler {
	switch h := value.(type) {
	case dom.Handler:
		return h
	case func(dom.Event):
		return h
	case func():
		return func(dom.Event) { h() }
	}
	return nil
}

func attrString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprint(v)
	}
}
