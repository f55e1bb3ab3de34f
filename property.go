package flexui

import (
	"fmt"

	"github.com/grindlemire/go-flexui/internal/debug"
)

// Property is a value or event handler attached to a widget element. It is
// applied once when the window builds the widget.
type Property interface {
	// Key returns the property or event name.
	Key() string
	apply(b *Binder, w HostWidget) error
}

type property struct {
	key string
	fn  func(b *Binder, w HostWidget) error
}

func (p property) Key() string {
	return p.key
}

func (p property) apply(b *Binder, w HostWidget) error {
	return p.fn(b, w)
}

// Prop assigns src to the widget property key and keeps it current while the
// window is open.
//
// Example:
//
//	flexui.Widget("label", flexui.WithProperty(
//	    flexui.Prop("text", flexui.Bound(title)),
//	))
func Prop[T any](key string, src Source[T]) Property {
	return PropConv(key, src, nil)
}

// PropConv is like Prop but passes every value through convert first.
func PropConv[T any](key string, src Source[T], convert func(T) any) Property {
	return property{key: key, fn: func(b *Binder, w HostWidget) error {
		Add(b, w, key, src, convert)
		return nil
	}}
}

// On handles the widget event named event. When the user changes the widget,
// a two-way src receives the new value and then fn runs; echoes of the
// binder's own writes are ignored. fn may be nil.
//
// Example:
//
//	checked := flexui.NewStore(false)
//	flexui.Widget("checkbox", flexui.WithProperty(
//	    flexui.Prop("isChecked", flexui.TwoWay(checked)),
//	    flexui.On("onChange", flexui.TwoWay(checked), nil),
//	))
func On[T any](event string, src Source[T], fn func(T)) Property {
	return property{key: event, fn: func(b *Binder, w HostWidget) error {
		h := Handler(b, src, fn)
		w.Handle(event, func(raw any) {
			v, ok := raw.(T)
			if !ok {
				debug.Error("event value has unexpected type", "event", event, "type", fmt.Sprintf("%T", raw))
				return
			}
			h(v)
		})
		return nil
	}}
}
