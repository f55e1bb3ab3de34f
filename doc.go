// Package flexui turns declared trees of sized elements and store bindings
// into host widget geometry and live property updates.
//
// Users import this package for stores, element declarations, the binder and
// window lifecycle. Size parsing and the layout solvers live in pkg/layout.
//
// Stores:
//
//	count := flexui.NewStore(0)
//	label := flexui.Compute(count, func(n int) string { return fmt.Sprint(n) })
//	count.Set(1) // label is "1" before Set returns
//
// Everything runs synchronously: a Set propagates through computed stores,
// decorators and bound widget properties before it returns, depth first in
// subscription order.
//
// Windows:
//
//	win, _ := flexui.NewWindow(
//	    flexui.WithSize(300, 200),
//	    flexui.WithContent(
//	        flexui.Horizontal(flexui.WithHeight(30), flexui.WithChildren(
//	            flexui.Widget("label", flexui.WithWidth("1w"),
//	                flexui.WithProperty(flexui.Prop("text", flexui.Bound(label)))),
//	            flexui.Widget("button", flexui.WithWidth(60)),
//	        )),
//	    ),
//	)
//	err := win.Open(host)
package flexui
