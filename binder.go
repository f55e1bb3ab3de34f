package flexui

import "github.com/grindlemire/go-flexui/internal/debug"

// Target is an externally owned object whose properties the binder writes.
type Target interface {
	SetProperty(key string, value any)
}

// binding links a store to one property of a target. subscribe attaches the
// store callback and returns its Unsubscribe.
type binding struct {
	target    Target
	key       string
	subscribe func() Unsubscribe
}

// Binder keeps target properties in sync with stores for the lifetime of a
// window.
//
// Bindings are registered with Add while the window is built and stay latent
// until Bind. Unbind releases every store subscription so a closed window's
// targets are never written again.
type Binder struct {
	bindings []*binding
	unsubs   []Unsubscribe
	bound    bool
	writing  bool
}

// NewBinder creates an empty binder.
func NewBinder() *Binder {
	return &Binder{}
}

// Add assigns src's current value to target's key right away, passing it
// through convert when convert is non-nil. If src follows a store, a binding
// is recorded that keeps the property current once the binder is bound.
func Add[T any](b *Binder, target Target, key string, src Source[T], convert func(T) any) {
	conv := func(v T) any {
		if convert != nil {
			return convert(v)
		}
		return v
	}

	b.write(target, key, conv(src.Get()))
	if !src.IsStore() {
		return
	}

	store := src.Store()
	bd := &binding{
		target: target,
		key:    key,
		subscribe: func() Unsubscribe {
			return store.Subscribe(func(v T) {
				b.write(target, key, conv(v))
			})
		},
	}
	b.bindings = append(b.bindings, bd)
	if b.bound {
		b.unsubs = append(b.unsubs, bd.subscribe())
	}
}

// Bind subscribes every registered binding. Calling it on a bound binder is a
// no-op.
func (b *Binder) Bind() {
	if b.bound {
		return
	}
	debug.Log("Binder.Bind: %d bindings", len(b.bindings))
	b.unsubs = make([]Unsubscribe, 0, len(b.bindings))
	for _, bd := range b.bindings {
		b.unsubs = append(b.unsubs, bd.subscribe())
	}
	b.bound = true
}

// Unbind releases every store subscription. Bindings stay registered, so a
// later Bind resumes them.
func (b *Binder) Unbind() {
	if !b.bound {
		return
	}
	debug.Log("Binder.Unbind: %d subscriptions", len(b.unsubs))
	for _, unsub := range b.unsubs {
		unsub()
	}
	b.unsubs = nil
	b.bound = false
}

// Len returns the number of registered store bindings.
func (b *Binder) Len() int {
	return len(b.bindings)
}

// Bound reports whether bindings are currently subscribed.
func (b *Binder) Bound() bool {
	return b.bound
}

// Writing reports whether the binder is in the middle of a programmatic
// property write.
func (b *Binder) Writing() bool {
	return b.writing
}

// write assigns a property with the writing flag raised for exactly the
// duration of the assignment.
func (b *Binder) write(target Target, key string, value any) {
	prev := b.writing
	b.writing = true
	defer func() { b.writing = prev }()
	target.SetProperty(key, value)
}

// Handler wraps fn as a widget change callback for src.
//
// When the widget reports a change, a two-way src receives the new value and
// then fn runs. Changes reported while the binder itself is writing a
// property are echoes of that write and are dropped.
func Handler[T any](b *Binder, src Source[T], fn func(T)) func(T) {
	return func(v T) {
		if b.writing {
			debug.Log("Handler: dropped echo of programmatic write %v", v)
			return
		}
		src.write(v)
		if fn != nil {
			fn(v)
		}
	}
}
