package flexui

// sourceKind tags how a Source was declared.
type sourceKind uint8

const (
	sourceStatic sourceKind = iota
	sourceBound
	sourceTwoWay
)

// Source is a property value that is either a plain literal, a store read
// one way, or a store that also receives changes made through the widget.
// The kind is fixed at construction, so consumers never probe for store
// methods at runtime.
type Source[T any] struct {
	kind     sourceKind
	value    T
	store    Readable[T]
	writable Writable[T]
}

// Static wraps a literal value.
func Static[T any](v T) Source[T] {
	return Source[T]{kind: sourceStatic, value: v}
}

// Bound reads from s and follows its changes.
func Bound[T any](s Readable[T]) Source[T] {
	if s == nil {
		panic("flexui: nil store in Bound")
	}
	return Source[T]{kind: sourceBound, store: s}
}

// TwoWay reads from s, follows its changes, and writes widget-originated
// changes back into it.
func TwoWay[T any](s Writable[T]) Source[T] {
	if s == nil {
		panic("flexui: nil store in TwoWay")
	}
	return Source[T]{kind: sourceTwoWay, store: s, writable: s}
}

// Get returns the literal or the store's current value.
func (s Source[T]) Get() T {
	if s.store != nil {
		return s.store.Get()
	}
	return s.value
}

// IsStore reports whether the source follows a store.
func (s Source[T]) IsStore() bool {
	return s.store != nil
}

// IsTwoWay reports whether widget changes are written back.
func (s Source[T]) IsTwoWay() bool {
	return s.kind == sourceTwoWay
}

// Store returns the underlying store, or nil for a static source.
func (s Source[T]) Store() Readable[T] {
	return s.store
}

// write stores v in a two-way source and reports whether it did.
func (s Source[T]) write(v T) bool {
	if s.kind != sourceTwoWay {
		return false
	}
	s.writable.Set(v)
	return true
}
