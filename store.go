package flexui

import (
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-flexui/internal/debug"
)

// Unsubscribe is a handle to remove a subscription. Calling it more than once
// is a no-op.
type Unsubscribe func()

// Readable is the capability of a store that can be read and observed.
// Any type with these methods is treated as a store.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) Unsubscribe
}

// Writable is a Readable store that also accepts writes.
type Writable[T any] interface {
	Readable[T]
	Set(T)
}

// Store wraps a value and notifies subscribers when it changes.
//
// Get is safe to call from any goroutine. Set must only be called from the
// goroutine that owns the UI; subscribers run synchronously inside Set.
type Store[T any] struct {
	mu    sync.RWMutex
	value T
	subs  subscribers[T]
}

// NewStore creates a store holding initial. The zero value of T stands for an
// unset store.
//
// Example:
//
//	count := flexui.NewStore(0)           // Store[int]
//	name := flexui.NewStore("hello")      // Store[string]
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value, then calls every subscriber with it in the order
// they subscribed. Subscribers may call Set on other stores.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()

	debug.Log("Store.Set: %v", v)
	s.subs.notify("Store.Set", v)
}

// Update applies a function to the current value and sets the result.
//
// Example:
//
//	count.Update(func(v int) int { return v + 1 })
func (s *Store[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Subscribe registers fn to be called with every new value.
func (s *Store[T]) Subscribe(fn func(T)) Unsubscribe {
	return s.subs.add(fn)
}

// subscriber is a registered callback. active is cleared on unsubscribe so a
// dispatch already in flight skips it.
type subscriber[T any] struct {
	fn     func(T)
	active atomic.Bool
}

// subscribers is the ordered subscriber list shared by every store type.
type subscribers[T any] struct {
	mu   sync.Mutex
	list []*subscriber[T]
}

func (s *subscribers[T]) add(fn func(T)) Unsubscribe {
	if fn == nil {
		panic("flexui: nil subscriber")
	}
	sub := &subscriber[T]{fn: fn}
	sub.active.Store(true)

	s.mu.Lock()
	s.list = append(s.list, sub)
	s.mu.Unlock()

	return func() {
		sub.active.Store(false)
	}
}

// snapshot copies the active subscribers and drops inactive ones so
// unsubscribed callbacks do not accumulate.
func (s *subscribers[T]) snapshot() []*subscriber[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]*subscriber[T], 0, len(s.list))
	for _, sub := range s.list {
		if sub.active.Load() {
			active = append(active, sub)
		}
	}
	s.list = active
	return active
}

// notify calls every subscriber that was active when notification began.
// Subscribers added during dispatch wait for the next value; subscribers
// removed during dispatch are skipped if they have not run yet.
func (s *subscribers[T]) notify(op string, v T) {
	subs := s.snapshot()
	for _, sub := range subs {
		if !sub.active.Load() {
			continue
		}
		invoke(op, sub.fn, v)
	}
}

// len returns the number of active subscribers.
func (s *subscribers[T]) len() int {
	return len(s.snapshot())
}

// invoke runs fn, reporting a panic instead of letting it abort the rest of
// the dispatch.
func invoke[T any](op string, fn func(T), v T) {
	defer func() {
		if r := recover(); r != nil {
			reportPanic(op, r)
		}
	}()
	fn(v)
}
