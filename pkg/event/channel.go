package event

import "fmt"

// subscription binds an owner identity to a callback. The removed flag is
// how an in-flight Fire learns that an entry in its snapshot was
// unsubscribed after the snapshot was taken.
type subscription[T any] struct {
	owner   any
	fn      func(T)
	removed bool
}

// Channel is a synchronous notification channel for values of type T.
// Subscribers are invoked inline by Fire, in the order they subscribed,
// on the goroutine that fired.
//
// The zero value is ready to use, so owning types can embed channels
// directly and hand them out through accessor methods. A Channel must not
// be copied after first use, and must be confined to a single goroutine;
// see the package documentation for the threading contract.
type Channel[T any] struct {
	subs []*subscription[T]
	aff  affinity
}

// NewChannel returns an empty channel.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{}
}

// Subscribe registers fn to be invoked on every Fire, under the given
// owner identity. Subscriptions are not deduplicated: the same owner may
// subscribe any number of times, and each registration is invoked
// separately. A nil fn is ignored.
//
// Owner identities are compared with ==, so owners must be comparable
// values. In debug mode a non-comparable owner panics here rather than
// later inside Unsubscribe.
func (c *Channel[T]) Subscribe(owner any, fn func(T)) {
	c.aff.check("Subscribe")
	if fn == nil {
		return
	}
	if DebugMode && !isComparable(owner) {
		panic(fmt.Sprintf("event: Subscribe owner of type %T is not comparable", owner))
	}
	c.subs = append(c.subs, &subscription[T]{owner: owner, fn: fn})
}

// Unsubscribe removes every subscription registered under the given owner,
// preserving the relative order of the remaining subscriptions. An owner
// with no subscriptions is a no-op.
//
// Removal takes effect immediately, even while a Fire is in progress: a
// subscription removed mid-notification is not invoked again.
func (c *Channel[T]) Unsubscribe(owner any) {
	c.aff.check("Unsubscribe")
	found := false
	for _, s := range c.subs {
		if s.owner == owner {
			found = true
			break
		}
	}
	if !found {
		return
	}

	// Rebuild the list instead of compacting in place. An in-flight Fire
	// iterates the slice it captured, and shifting entries under it would
	// change which subscribers that fire visits.
	kept := make([]*subscription[T], 0, len(c.subs)-1)
	for _, s := range c.subs {
		if s.owner == owner {
			s.removed = true
			continue
		}
		kept = append(kept, s)
	}
	c.subs = kept
}

// Fire delivers v to every subscriber synchronously, in subscription
// order, on the calling goroutine. Subscribers added during the call are
// not invoked by it; subscribers removed during the call are skipped from
// the point of removal. Nested fires are permitted.
//
// A panic in a subscriber propagates to the caller of Fire.
func (c *Channel[T]) Fire(v T) {
	c.aff.check("Fire")
	subs := c.subs
	for _, s := range subs {
		if s.removed {
			continue
		}
		s.fn(v)
	}
}

// SubscriberCount reports the number of live subscriptions.
func (c *Channel[T]) SubscriberCount() int {
	return len(c.subs)
}
