package flexui

import "sync"

// Interceptor decides what a Decorated store exposes for each change of its
// base store. Calling apply publishes a value; not calling it leaves the
// decorator unchanged for that change.
type Interceptor[T any] func(value T, apply func(T))

// Decorated wraps a base store and filters what it exposes.
//
// Writes go straight to the base store. Every change of the base runs the
// interceptor, which may validate, transform or drop it before the
// decorator's own subscribers see anything.
type Decorated[T any] struct {
	base        Writable[T]
	interceptor Interceptor[T]

	mu    sync.RWMutex
	value T
	subs  subscribers[T]
	unsub Unsubscribe
	once  sync.Once
}

// Decorate wraps base with interceptor. The decorator starts out exposing
// base's current value.
//
// Example:
//
//	clamped := flexui.Decorate(volume, func(v int, apply func(int)) {
//	    apply(min(v, 100))
//	})
func Decorate[T any](base Writable[T], interceptor Interceptor[T]) *Decorated[T] {
	if base == nil {
		panic("flexui: nil base store in Decorate")
	}
	if interceptor == nil {
		panic("flexui: nil interceptor in Decorate")
	}
	d := &Decorated[T]{
		base:        base,
		interceptor: interceptor,
		value:       base.Get(),
	}
	d.unsub = base.Subscribe(d.onBaseChange)
	return d
}

func (d *Decorated[T]) onBaseChange(v T) {
	d.interceptor(v, d.apply)
}

func (d *Decorated[T]) apply(v T) {
	d.mu.Lock()
	d.value = v
	d.mu.Unlock()
	d.subs.notify("Decorated.apply", v)
}

// Get returns the last value the interceptor applied.
func (d *Decorated[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// Set forwards v to the base store.
func (d *Decorated[T]) Set(v T) {
	d.base.Set(v)
}

// Subscribe registers fn to be called with every applied value.
func (d *Decorated[T]) Subscribe(fn func(T)) Unsubscribe {
	return d.subs.add(fn)
}

// Dispose stops following the base store.
func (d *Decorated[T]) Dispose() {
	d.once.Do(d.unsub)
}
