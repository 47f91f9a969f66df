// Package vdom provides the virtual node model for liftlog's UI runtime.
//
// A VNode is an immutable description of a piece of UI prior to
// materialization. Nodes are built with H (or the element helpers) and
// handed to the runtime in pkg/ui, which converts them into host elements
// in pkg/dom.
//
// # Building trees
//
//	vdom.Div(vdom.Props{"className": "card"},
//	    vdom.H1(nil, "Today"),
//	    vdom.If(len(entries) > 0, list(entries)), // nil children are dropped
//	)
//
// Children are recursively flattened into one ordered sequence. Entries
// equal to nil or false are dropped, which is how conditional rendering is
// expressed. Construction performs no validation of tags or props; that is
// deferred to materialization.
//
// # Components
//
// A ComponentFunc is a plain function from Props to a *VNode. Component
// nodes are expanded during materialization, not at construction.
package vdom
