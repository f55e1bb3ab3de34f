package flexui

import (
	"slices"

	"github.com/grindlemire/go-flexui/internal/debug"
)

// ArrayStore is a store of a slice with in-place mutators. Every mutator emits
// exactly one notification carrying the slice after the mutation.
//
// Indices follow splice conventions: negative values count from the end and
// out-of-range values are clamped.
type ArrayStore[T any] struct {
	Store[[]T]
}

// NewArrayStore creates an array store holding initial.
func NewArrayStore[T any](initial []T) *ArrayStore[T] {
	a := &ArrayStore[T]{}
	a.value = initial
	return a
}

// Len returns the current number of elements.
func (a *ArrayStore[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.value)
}

// At returns the element at index, if there is one.
func (a *ArrayStore[T]) At(index int) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var zero T
	if index < 0 {
		index += len(a.value)
	}
	if index < 0 || index >= len(a.value) {
		return zero, false
	}
	return a.value[index], true
}

// mutate applies fn to the slice under the lock and notifies once.
// A panic in fn leaves the store unlocked and without a notification.
func (a *ArrayStore[T]) mutate(op string, fn func(items []T) []T) {
	v := a.apply(fn)
	debug.Log("%s: %d items", op, len(v))
	a.subs.notify(op, v)
}

func (a *ArrayStore[T]) apply(fn func(items []T) []T) []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.value = fn(a.value)
	return a.value
}

// Insert places items before index and returns the new length.
func (a *ArrayStore[T]) Insert(index int, items ...T) int {
	var n int
	a.mutate("ArrayStore.Insert", func(v []T) []T {
		v = slices.Insert(v, clampIndex(index, len(v)), items...)
		n = len(v)
		return v
	})
	return n
}

// Update replaces the element at index and returns the previous element.
// ok is false when index is out of range, in which case nothing changes.
func (a *ArrayStore[T]) Update(index int, value T) (prev T, ok bool) {
	a.mutate("ArrayStore.Update", func(v []T) []T {
		i := index
		if i < 0 {
			i += len(v)
		}
		if i < 0 || i >= len(v) {
			return v
		}
		prev, ok = v[i], true
		v[i] = value
		return v
	})
	return prev, ok
}

// Push appends items and returns the new length.
func (a *ArrayStore[T]) Push(items ...T) int {
	var n int
	a.mutate("ArrayStore.Push", func(v []T) []T {
		v = append(v, items...)
		n = len(v)
		return v
	})
	return n
}

// Pop removes and returns the last element.
func (a *ArrayStore[T]) Pop() (last T, ok bool) {
	a.mutate("ArrayStore.Pop", func(v []T) []T {
		if len(v) == 0 {
			return v
		}
		last, ok = v[len(v)-1], true
		var zero T
		v[len(v)-1] = zero
		return v[:len(v)-1]
	})
	return last, ok
}

// Unshift prepends items and returns the new length.
func (a *ArrayStore[T]) Unshift(items ...T) int {
	var n int
	a.mutate("ArrayStore.Unshift", func(v []T) []T {
		v = slices.Insert(v, 0, items...)
		n = len(v)
		return v
	})
	return n
}

// Shift removes and returns the first element.
func (a *ArrayStore[T]) Shift() (first T, ok bool) {
	a.mutate("ArrayStore.Shift", func(v []T) []T {
		if len(v) == 0 {
			return v
		}
		first, ok = v[0], true
		return slices.Delete(v, 0, 1)
	})
	return first, ok
}

// Splice removes deleteCount elements starting at start, inserts items in
// their place and returns the removed elements in their original order.
func (a *ArrayStore[T]) Splice(start, deleteCount int, items ...T) []T {
	var removed []T
	a.mutate("ArrayStore.Splice", func(v []T) []T {
		from := clampIndex(start, len(v))
		to := from + min(max(deleteCount, 0), len(v)-from)
		removed = slices.Clone(v[from:to])
		if removed == nil {
			removed = []T{}
		}
		return slices.Replace(v, from, to, items...)
	})
	return removed
}

// Sort orders the elements in place with a stable sort.
func (a *ArrayStore[T]) Sort(cmp func(a, b T) int) {
	a.mutate("ArrayStore.Sort", func(v []T) []T {
		slices.SortStableFunc(v, cmp)
		return v
	})
}

// clampIndex resolves a splice-style index against length n.
func clampIndex(i, n int) int {
	if i < 0 {
		i = max(i+n, 0)
	}
	return min(i, n)
}
