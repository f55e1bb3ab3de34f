package flexui

import (
	"sync"

	"github.com/grindlemire/go-flexui/internal/debug"
)

// Computed is a store derived from one or more source stores.
//
// It evaluates its function once at construction and again every time any
// source notifies, always against the current values of all sources. Set
// overwrites only the cached value; nothing is written upstream and the next
// source change replaces it.
type Computed[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   subscribers[T]
	eval   func() T
	unsubs []Unsubscribe
	once   sync.Once
}

// Compute derives a store from a single source.
//
// Example:
//
//	label := flexui.Compute(count, func(n int) string {
//	    return fmt.Sprintf("Count: %d", n)
//	})
func Compute[A, R any](a Readable[A], fn func(A) R) *Computed[R] {
	if a == nil || fn == nil {
		panic("flexui: nil source or function in Compute")
	}
	c := &Computed[R]{eval: func() R { return fn(a.Get()) }}
	c.value = c.eval()
	c.unsubs = []Unsubscribe{a.Subscribe(func(A) { c.refresh() })}
	return c
}

// Compute2 derives a store from two sources of different types.
func Compute2[A, B, R any](a Readable[A], b Readable[B], fn func(A, B) R) *Computed[R] {
	if a == nil || b == nil || fn == nil {
		panic("flexui: nil source or function in Compute2")
	}
	c := &Computed[R]{eval: func() R { return fn(a.Get(), b.Get()) }}
	c.value = c.eval()
	c.unsubs = []Unsubscribe{
		a.Subscribe(func(A) { c.refresh() }),
		b.Subscribe(func(B) { c.refresh() }),
	}
	return c
}

// Compute3 derives a store from three sources of different types.
func Compute3[A, B, C, R any](a Readable[A], b Readable[B], c Readable[C], fn func(A, B, C) R) *Computed[R] {
	if a == nil || b == nil || c == nil || fn == nil {
		panic("flexui: nil source or function in Compute3")
	}
	out := &Computed[R]{eval: func() R { return fn(a.Get(), b.Get(), c.Get()) }}
	out.value = out.eval()
	out.unsubs = []Unsubscribe{
		a.Subscribe(func(A) { out.refresh() }),
		b.Subscribe(func(B) { out.refresh() }),
		c.Subscribe(func(C) { out.refresh() }),
	}
	return out
}

// ComputeN derives a store from any number of sources of the same type.
// fn receives the source values in the order the sources were given.
// It panics with ErrNoSources when sources is empty.
func ComputeN[T, R any](sources []Readable[T], fn func([]T) R) *Computed[R] {
	if len(sources) == 0 {
		panic(ErrNoSources)
	}
	if fn == nil {
		panic("flexui: nil function in ComputeN")
	}
	for _, s := range sources {
		if s == nil {
			panic("flexui: nil source in ComputeN")
		}
	}

	srcs := append([]Readable[T](nil), sources...)
	c := &Computed[R]{eval: func() R {
		values := make([]T, len(srcs))
		for i, s := range srcs {
			values[i] = s.Get()
		}
		return fn(values)
	}}
	c.value = c.eval()
	c.unsubs = make([]Unsubscribe, len(srcs))
	for i, s := range srcs {
		c.unsubs[i] = s.Subscribe(func(T) { c.refresh() })
	}
	return c
}

// refresh recomputes the cached value and notifies subscribers.
func (c *Computed[T]) refresh() {
	v := c.eval()
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()

	debug.Log("Computed.refresh: %v", v)
	c.subs.notify("Computed.refresh", v)
}

// Get returns the cached value.
func (c *Computed[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set overwrites the cached value and notifies this store's subscribers.
// Sources are left untouched.
func (c *Computed[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	c.subs.notify("Computed.Set", v)
}

// Subscribe registers fn to be called with every new value.
func (c *Computed[T]) Subscribe(fn func(T)) Unsubscribe {
	return c.subs.add(fn)
}

// Dispose releases the subscriptions held on the sources. The store keeps its
// last value but no longer follows them.
func (c *Computed[T]) Dispose() {
	c.once.Do(func() {
		for _, unsub := range c.unsubs {
			unsub()
		}
		c.unsubs = nil
	})
}
