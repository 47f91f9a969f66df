package ui

import (
	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/vdom"
)

// Runtime owns the hook slot store and the retained render session for
// one mounted root. Each live session gets its own Runtime so
// independently mounted roots do not cross-talk.
type Runtime struct {
	// slots are the positionally addressed state cells. They persist
	// across renders; only the cursor resets.
	slots  []any
	cursor int

	// The retained render session, overwritten wholesale on every
	// Render call.
	root      *vdom.VNode
	container *dom.Element
}

// New creates an empty runtime.
func New() *Runtime { return &Runtime{} }

// current is the runtime whose materialization pass is active. Hooks
// resolve against it, so components need no explicit threading. The
// runtime is single-threaded; there is no lock.
var current *Runtime

// Default is the process-wide runtime backing the package-level Render
// and UseState, for applications with a single mounted root.
var Default = New()

// Render materializes node into container on the Default runtime.
func Render(node *vdom.VNode, container *dom.Element) {
	Default.Render(node, container)
}

// Render resets hook addressing, retains (node, container) as the render
// session, clears the container, and mounts node fresh.
//
// The cursor is reset, not the stored slot values; persisting values
// across the reset is how state survives re-render. A second call
// targeting a different container replaces the session, so state-driven
// updates stop reaching the first container.
//
// Render runs synchronously to completion. A panic raised during
// materialization propagates to the caller and leaves the container in a
// possibly partial state; there is no rollback.
func (rt *Runtime) Render(node *vdom.VNode, container *dom.Element) {
	rt.cursor = 0
	rt.root = node
	rt.container = container

	prev := current
	current = rt
	defer func() { current = prev }()

	container.Document().ResetEIDs()
	container.RemoveChildren()
	rt.mount(node, container)
}

// Root returns the retained root node, or nil before the first render.
func (rt *Runtime) Root() *vdom.VNode { return rt.root }

// Container returns the retained container, or nil before the first
// render.
func (rt *Runtime) Container() *dom.Element { return rt.container }
