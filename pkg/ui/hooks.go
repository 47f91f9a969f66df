package ui

// SetState replaces a hook slot's value and synchronously re-renders the
// runtime's retained session. next is either the new value or an updater
// func(prev any) any applied to the current value. There is no batching:
// N sequential calls trigger N independent full re-renders.
type SetState func(next any)

// UseState is the state hook. It must be invoked the same number of
// times, in the same order, across the entire tree traversal of one
// render pass: slot identity is a single shared cursor for the whole
// pass, not a per-component one. The first render at a given position
// seeds the slot with initial; later renders return the stored value and
// ignore initial.
//
// Calling UseState outside an active render pass corrupts the cursor
// bookkeeping and is not guarded against.
func UseState(initial any) (any, SetState) {
	return current.useState(initial)
}

func (rt *Runtime) useState(initial any) (any, SetState) {
	idx := rt.cursor
	rt.cursor++

	if idx >= len(rt.slots) {
		rt.slots = append(rt.slots, initial)
	}
	value := rt.slots[idx]

	set := func(next any) {
		if updater, ok := next.(func(any) any); ok {
			next = updater(rt.slots[idx])
		}
		rt.slots[idx] = next
		rt.Render(rt.root, rt.container)
	}
	return value, set
}

// State is a typed handle over one hook slot.
type State[T any] struct {
	value T
	set   SetState
}

// UseStateOf is the typed form of UseState. The positional contract is
// identical; the handle only adds type safety over the stored any.
func UseStateOf[T any](initial T) State[T] {
	v, set := UseState(initial)
	return State[T]{value: v.(T), set: set}
}

// Get returns the slot value as of the current render pass.
func (s State[T]) Get() T { return s.value }

// Set replaces the slot value and triggers a full re-render.
func (s State[T]) Set(v T) { s.set(v) }

// Update replaces the slot value via fn(prev) and triggers a full
// re-render.
func (s State[T]) Update(fn func(T) T) {
	s.set(func(prev any) any { return fn(prev.(T)) })
}
