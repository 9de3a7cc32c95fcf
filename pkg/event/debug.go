package event

import (
	"fmt"
	"reflect"

	"github.com/petermattis/goid"
)

// DebugMode controls the runtime misuse checks in this package: the
// single-goroutine guard on channels and the comparable-owner check in
// Subscribe. It defaults to on and should be disabled in release builds.
var DebugMode = true

// SetDebugMode enables or disables the package's debug checks.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// affinity pins a channel to the goroutine that first uses it. Pinning
// happens at first use rather than at construction, so a channel may be
// built on one goroutine and handed to another before any subscriptions
// exist.
type affinity struct {
	gid int64
}

// check panics when op runs on a different goroutine than the one the
// channel is pinned to. Inert unless DebugMode is on.
func (a *affinity) check(op string) {
	if !DebugMode {
		return
	}
	g := goid.Get()
	if a.gid == 0 {
		a.gid = g
		return
	}
	if a.gid != g {
		panic(fmt.Sprintf("event: %s called from goroutine %d, but this channel belongs to goroutine %d", op, g, a.gid))
	}
}

// isComparable reports whether v can be compared with == without panicking.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
