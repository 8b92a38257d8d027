// Package observable provides a minimal single-threaded reactive value used to
// publish entity fields (positions, visibility, dragging state) and the
// spatial index version to the rendering layer.
//
// The owner of a Value mutates it with Set; observers read it with Get and
// register callbacks with Subscribe. Callbacks run synchronously inside Set,
// in registration order.
package observable

// handler pairs a subscription id with its callback.
type handler[T any] struct {
	id uint32
	fn func(T)
}

// Value holds a single value of type T and notifies subscribers when it
// changes. The zero value is not usable; use New.
type Value[T comparable] struct {
	current  T
	handlers []handler[T]
	nextID   uint32
	closed   bool
}

// New creates a Value initialised to v.
func New[T comparable](v T) *Value[T] {
	return &Value[T]{current: v}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set stores next and notifies subscribers if it differs from the current
// value. It reports whether a change happened.
func (v *Value[T]) Set(next T) bool {
	if v.current == next {
		return false
	}
	v.current = next
	if v.closed {
		return true
	}
	// Handlers may remove themselves while we iterate.
	snapshot := append([]handler[T](nil), v.handlers...)
	for _, h := range snapshot {
		h.fn(next)
	}
	return true
}

// Subscribe registers fn to be called with every new value. The returned
// Handle removes the subscription. Subscribing to a closed Value returns an
// inert Handle.
func (v *Value[T]) Subscribe(fn func(T)) Handle {
	if v.closed {
		return Handle{}
	}
	v.nextID++
	id := v.nextID
	v.handlers = append(v.handlers, handler[T]{id: id, fn: fn})
	return Handle{remove: func() { v.unsubscribe(id) }}
}

// Subscribers returns the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	return len(v.handlers)
}

// Close drops every subscription. Later Set calls still update the value but
// notify nobody. Close is idempotent.
func (v *Value[T]) Close() {
	v.closed = true
	v.handlers = nil
}

func (v *Value[T]) unsubscribe(id uint32) {
	for i := range v.handlers {
		if v.handlers[i].id == id {
			copy(v.handlers[i:], v.handlers[i+1:])
			v.handlers[len(v.handlers)-1] = handler[T]{}
			v.handlers = v.handlers[:len(v.handlers)-1]
			return
		}
	}
}

// Handle removes a subscription registered with Subscribe.
type Handle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once, or on the zero Handle, is harmless.
func (h Handle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove()
}
