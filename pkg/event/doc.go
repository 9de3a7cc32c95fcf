// Package event provides synchronous, typed notification channels and the
// handler lifetime that keeps subscriptions from outliving their owners.
//
// A Channel delivers values to its subscribers inline, in subscription
// order, on the goroutine that fired it. There is no queue, no delivery
// goroutine, and no locking: the package is built for single-goroutine
// hosts such as UI loops and simulations, where ordering and re-entrancy
// must stay easy to reason about.
//
// # Subscribing
//
// Subscriptions are keyed by an owner identity rather than by handle.
// Subscribe registers a callback under an owner; Unsubscribe removes every
// subscription that owner has on the channel:
//
//	var saved event.Channel[string]
//	saved.Subscribe(view, func(path string) { view.ShowToast(path) })
//	...
//	saved.Unsubscribe(view)
//
// Most code should not manage owner identities by hand. A Handler acts as
// the owner for any number of subscriptions across any number of channels
// and detaches all of them on Dispose:
//
//	h := event.NewHandler()
//	event.Connect(h, saved, onSaved)
//	event.Connect(h, deleted, onDeleted)
//	defer h.Dispose()
//
// Domain types embed Handler so that disposing the value tears down its
// subscriptions, and Listen covers the one-off case of watching a single
// channel with a closure.
//
// A handler holds a reference to every channel it connected to, so a
// channel stays reachable at least until the last handler connected to it
// is disposed. Teardown in either order is safe.
//
// # Firing
//
// Fire takes the subscriber list as it stands when the call begins.
// Subscribers added during a fire are not invoked by that fire, and
// subscribers removed during a fire are not invoked after their removal.
// Nested fires are permitted. A panic in a subscriber propagates to the
// Fire caller; the channel never swallows it.
//
// # Threading
//
// Channels and handlers are confined to one goroutine by contract. The
// package never synchronizes; callers that need cross-goroutine delivery
// must marshal onto the owning goroutine themselves. While DebugMode is
// on, each channel pins itself to the first goroutine that uses it and
// panics when another goroutine touches it.
package event
