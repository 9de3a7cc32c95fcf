// Package model provides observable state containers built on package
// event: single values that notify on change, and identifier-keyed
// collections that notify on membership changes.
//
// # Property
//
// Property holds either nothing or one value of type T. Set and Clear fire
// their channels unconditionally, so subscribers hear about every mutation
// call, not just ones that changed anything:
//
//	selected := model.NewProperty[string]()
//	h := event.Listen(selected.Changed(), func(e model.ValueChanged[string]) {
//	    fmt.Println("selected", e.Value)
//	})
//	selected.Set("task-1")
//	selected.Clear()
//	h.Dispose()
//
// Reading an empty property with Value reports ErrEmptyValue.
//
// # Collection
//
// Collection stores items keyed by an identifier derived from the item by
// the id function given at construction. Adds, removals, and Clear fire
// typed channels. The collection owns its items: when an item that
// implements Disposable is removed or cleared away, it is disposed before
// the notification fires. Items that embed event.Handler therefore lose
// all their subscriptions the moment they leave the collection.
//
// Lookups that miss report ErrNotFound. Sort produces a SortView, a
// detached ordered snapshot of identifiers.
//
// # Threading
//
// All types here follow the single-goroutine contract of package event.
package model
