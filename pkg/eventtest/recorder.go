package eventtest

import "github.com/go-drift/pulse/pkg/event"

// Recorder captures every payload fired on one channel, in delivery order.
type Recorder[T any] struct {
	handler *event.Handler
	events  []T
}

// Record attaches a new recorder to c. Dispose the recorder to detach it.
func Record[T any](c *event.Channel[T]) *Recorder[T] {
	r := &Recorder[T]{}
	r.handler = event.Listen(c, func(v T) {
		r.events = append(r.events, v)
	})
	return r
}

// Events returns a copy of the recorded payloads.
func (r *Recorder[T]) Events() []T {
	out := make([]T, len(r.events))
	copy(out, r.events)
	return out
}

// Count reports the number of recorded payloads.
func (r *Recorder[T]) Count() int {
	return len(r.events)
}

// Last returns the most recent payload, or false when nothing has been
// recorded yet.
func (r *Recorder[T]) Last() (T, bool) {
	if len(r.events) == 0 {
		var zero T
		return zero, false
	}
	return r.events[len(r.events)-1], true
}

// Reset discards the recorded payloads without detaching.
func (r *Recorder[T]) Reset() {
	r.events = nil
}

// Dispose detaches the recorder from its channel.
func (r *Recorder[T]) Dispose() {
	r.handler.Dispose()
}
