package event

// unsubscriber is the type-erased view of a Channel that Handler keeps, so
// one handler can detach from channels of different payload types.
type unsubscriber interface {
	Unsubscribe(owner any)
}

// Handler ties a group of subscriptions to a single disposable lifetime.
// Connect subscribes callbacks with the handler as the owner identity;
// Dispose detaches every one of them and runs registered cleanups.
//
// The zero value is ready to use, so domain types can embed a Handler and
// be torn down as a unit:
//
//	type follower struct {
//	    event.Handler
//	    name string
//	}
//
//	f := &follower{name: "f1"}
//	event.Connect(&f.Handler, moved, f.onMoved)
//	...
//	f.Dispose()
//
// A Handler must not be copied after first use.
type Handler struct {
	channels  []unsubscriber
	disposers []func()
	disposed  bool
}

// NewHandler returns a handler with no connections.
func NewHandler() *Handler {
	return &Handler{}
}

// Connect subscribes fn to c under h's identity and records the channel so
// that h.Dispose can detach it. A handler may connect to any number of
// channels, and to the same channel more than once; each connection is a
// separate subscription. A nil fn is ignored.
//
// Connecting on a disposed handler does nothing; in debug mode it panics.
//
// Connect is a package function rather than a method because the channel's
// payload type is independent of the handler.
func Connect[T any](h *Handler, c *Channel[T], fn func(T)) {
	if h.disposed {
		if DebugMode {
			panic("event: Connect on a disposed handler")
		}
		return
	}
	if fn == nil {
		return
	}
	c.Subscribe(h, fn)
	h.channels = append(h.channels, c)
}

// Listen subscribes fn to a single channel under a fresh handler and
// returns that handler. Disposing it detaches fn.
func Listen[T any](c *Channel[T], fn func(T)) *Handler {
	h := NewHandler()
	Connect(h, c, fn)
	return h
}

// Dispose detaches every subscription made through Connect, then runs
// cleanups registered with OnDispose in reverse registration order.
// Dispose is idempotent.
//
// Once Dispose begins the handler receives no further events, including
// the remainder of a fire already in progress on one of its channels.
func (h *Handler) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true

	for _, c := range h.channels {
		c.Unsubscribe(h)
	}
	h.channels = nil

	for i := len(h.disposers) - 1; i >= 0; i-- {
		if h.disposers[i] != nil {
			h.disposers[i]()
		}
	}
	h.disposers = nil
}

// OnDispose registers a cleanup function to be called when the handler is
// disposed. Returns an unregister function that removes the cleanup. The
// cleanup will only be called once. Registering on an already disposed
// handler runs the cleanup immediately.
func (h *Handler) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	if h.disposed {
		cleanup()
		return func() {}
	}

	index := len(h.disposers)
	h.disposers = append(h.disposers, cleanup)

	return func() {
		if index < len(h.disposers) {
			h.disposers[index] = nil
		}
	}
}

// IsDisposed reports whether Dispose has been called on this handler.
func (h *Handler) IsDisposed() bool {
	return h.disposed
}
