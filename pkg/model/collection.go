package model

import (
	"fmt"
	"iter"
	"slices"

	"github.com/go-drift/pulse/pkg/event"
)

// Disposable is implemented by items that need teardown when their owning
// collection removes them. *event.Handler satisfies it, so an item that
// embeds event.Handler sheds all its subscriptions when it leaves the
// collection.
type Disposable interface {
	Dispose()
}

// Identifiable is implemented by items that carry their own identifier.
type Identifiable[ID comparable] interface {
	ID() ID
}

// ItemAdded is the payload fired on Collection.Added after an item is
// stored. The item is already in the collection when subscribers run.
type ItemAdded[ID comparable, Item any] struct {
	Collection *Collection[ID, Item]
	ID         ID
	Item       Item
}

// ItemRemoved is the payload fired on Collection.Removed after an item is
// removed and disposed. It carries only the identifier; the item itself is
// already gone.
type ItemRemoved[ID comparable, Item any] struct {
	Collection *Collection[ID, Item]
	ID         ID
}

// CollectionCleared is the payload fired once on Collection.Cleared after
// Clear has disposed every item.
type CollectionCleared[ID comparable, Item any] struct {
	Collection *Collection[ID, Item]
}

// Collection is an observable store of items keyed by an identifier the id
// function derives from each item. The collection owns its items: removal
// and Clear dispose items that implement Disposable, before the matching
// event fires, so subscribers observe the post-mutation state.
//
// A Collection must not be copied, and follows the single-goroutine
// contract of package event.
type Collection[ID comparable, Item any] struct {
	idOf    func(Item) ID
	items   map[ID]Item
	added   event.Channel[ItemAdded[ID, Item]]
	removed event.Channel[ItemRemoved[ID, Item]]
	cleared event.Channel[CollectionCleared[ID, Item]]
}

// NewCollection returns an empty collection whose item identifiers are
// computed by idOf. Panics when idOf is nil.
func NewCollection[ID comparable, Item any](idOf func(Item) ID) *Collection[ID, Item] {
	if idOf == nil {
		panic("model: NewCollection with nil id function")
	}
	return &Collection[ID, Item]{
		idOf:  idOf,
		items: make(map[ID]Item),
	}
}

// NewCollectionOf returns an empty collection of items that carry their
// own identifier.
func NewCollectionOf[ID comparable, Item Identifiable[ID]]() *Collection[ID, Item] {
	return NewCollection[ID, Item](func(item Item) ID { return item.ID() })
}

// Len reports the number of stored items.
func (c *Collection[ID, Item]) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the collection has no items.
func (c *Collection[ID, Item]) IsEmpty() bool {
	return len(c.items) == 0
}

// HasItems reports whether the collection has at least one item.
func (c *Collection[ID, Item]) HasItems() bool {
	return len(c.items) > 0
}

// Contains reports whether an item is stored under id.
func (c *Collection[ID, Item]) Contains(id ID) bool {
	_, ok := c.items[id]
	return ok
}

// IDs returns a snapshot of the stored identifiers in unspecified order.
// Use Sort for ordered access.
func (c *Collection[ID, Item]) IDs() []ID {
	ids := make([]ID, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	return ids
}

// All iterates the stored items in unspecified order. The collection must
// not be mutated while iterating.
func (c *Collection[ID, Item]) All() iter.Seq2[ID, Item] {
	return func(yield func(ID, Item) bool) {
		for id, item := range c.items {
			if !yield(id, item) {
				return
			}
		}
	}
}

// FindByID returns the item stored under id, or an error wrapping
// ErrNotFound.
func (c *Collection[ID, Item]) FindByID(id ID) (Item, error) {
	item, ok := c.items[id]
	if !ok {
		var zero Item
		return zero, fmt.Errorf("model: no item with id %v: %w", id, ErrNotFound)
	}
	return item, nil
}

// Add stores item under its identifier, then fires Added. Adding an item
// whose identifier is already present is suppressed entirely: no event
// fires, the stored item is untouched, and the rejected item stays with
// the caller undisposed.
func (c *Collection[ID, Item]) Add(item Item) {
	id := c.idOf(item)
	if _, ok := c.items[id]; ok {
		return
	}
	c.items[id] = item
	c.added.Fire(ItemAdded[ID, Item]{Collection: c, ID: id, Item: item})
}

// RemoveByID removes and disposes the item stored under id, then fires
// Removed. An absent identifier is a silent no-op.
func (c *Collection[ID, Item]) RemoveByID(id ID) {
	item, ok := c.items[id]
	if !ok {
		return
	}
	delete(c.items, id)
	disposeItem(item)
	c.removed.Fire(ItemRemoved[ID, Item]{Collection: c, ID: id})
}

// Remove removes the item stored under item's identifier. Like RemoveByID,
// an absent identifier is a silent no-op.
func (c *Collection[ID, Item]) Remove(item Item) {
	c.RemoveByID(c.idOf(item))
}

// Clear disposes every item in unspecified order, empties the collection,
// then fires Cleared exactly once. It fires even when the collection is
// already empty.
func (c *Collection[ID, Item]) Clear() {
	for _, item := range c.items {
		disposeItem(item)
	}
	clear(c.items)
	c.cleared.Fire(CollectionCleared[ID, Item]{Collection: c})
}

// Sort orders the items with compare and returns a detached view of their
// identifiers. compare follows the cmp convention: negative when a orders
// before b, positive when after, zero when equal; the relative order of
// items that compare equal is unspecified. Later mutations of the
// collection do not affect a returned view. Panics when compare is nil.
func (c *Collection[ID, Item]) Sort(compare func(a, b Item) int) *SortView[ID] {
	if compare == nil {
		panic("model: Sort with nil compare function")
	}

	// Pair stored ids with their items instead of re-deriving ids, so an id
	// function that is sensitive to item mutation cannot desync the view
	// from the store.
	type entry struct {
		id   ID
		item Item
	}
	entries := make([]entry, 0, len(c.items))
	for id, item := range c.items {
		entries = append(entries, entry{id: id, item: item})
	}
	slices.SortFunc(entries, func(a, b entry) int { return compare(a.item, b.item) })

	ids := make([]ID, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return &SortView[ID]{ids: ids}
}

// Added returns the channel fired after every successful Add.
func (c *Collection[ID, Item]) Added() *event.Channel[ItemAdded[ID, Item]] {
	return &c.added
}

// Removed returns the channel fired after every removal.
func (c *Collection[ID, Item]) Removed() *event.Channel[ItemRemoved[ID, Item]] {
	return &c.removed
}

// Cleared returns the channel fired once per Clear.
func (c *Collection[ID, Item]) Cleared() *event.Channel[CollectionCleared[ID, Item]] {
	return &c.cleared
}

// disposeItem runs the item's Dispose when it implements Disposable.
func disposeItem(item any) {
	if d, ok := item.(Disposable); ok {
		d.Dispose()
	}
}
