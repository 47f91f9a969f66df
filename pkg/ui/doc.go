// Package ui is liftlog's minimal reactive rendering runtime: a
// virtual-tree materializer with a call-order-indexed state hook and a
// full-tree-rebuild update strategy.
//
// # Model
//
// A Runtime owns the hook slot store and the retained (root, container)
// render session for one mounted root. Render materializes a vdom tree
// into a dom.Element container; UseState reads and writes positionally
// addressed state cells that persist across re-renders. A state setter
// synchronously re-renders the retained session, rebuilding the whole
// host subtree from nothing.
//
//	func Counter(props vdom.Props) *vdom.VNode {
//	    n, set := ui.UseState(0)
//	    return vdom.Button(vdom.Props{
//	        "onClick": func() { set(func(prev any) any { return prev.(int) + 1 }) },
//	    }, n)
//	}
//
//	ui.Render(vdom.Div(nil, vdom.H(Counter, nil)), doc.Body())
//
// # Contract
//
// Hook slots are addressed by a single shared cursor across the entire
// tree traversal of one render pass. Components must therefore call
// UseState the same number of times, in the same order, on every render
// of the same mounted root; a conditional hook call silently aliases
// unrelated state values. This is an unguarded programmer error.
//
// Rendering never patches an existing host tree. Every render clears the
// container and rebuilds, trading incremental efficiency for correctness;
// dependent behavior (such as loss of input focus across renders) follows
// directly from this guarantee and callers must not rely on any future
// diffing.
//
// The runtime is single-threaded and fully synchronous. Setters called
// while a render pass is still running recurse into a new render before
// the outer one finishes; event handlers only fire after materialization
// completes, and the runtime provides no reentrancy guard.
package ui
