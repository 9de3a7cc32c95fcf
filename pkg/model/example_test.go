package model_test

import (
	"fmt"

	"github.com/go-drift/pulse/pkg/event"
	"github.com/go-drift/pulse/pkg/model"
)

// This example shows how a property broadcasts value changes to its
// subscribers.
func ExampleProperty() {
	temperature := model.NewProperty[int]()

	h := event.Listen(temperature.Changed(), func(e model.ValueChanged[int]) {
		fmt.Println("temperature:", e.Value)
	})
	defer h.Dispose()

	event.Connect(h, temperature.Cleared(), func(model.ValueCleared[int]) {
		fmt.Println("temperature cleared")
	})

	temperature.Set(21)
	temperature.Set(23)
	temperature.Clear()

	// Output:
	// temperature: 21
	// temperature: 23
	// temperature cleared
}

type chore struct {
	name     string
	priority int
}

func (c *chore) ID() string { return c.name }

// This example shows a collection announcing membership changes and
// producing a sorted view of its ids.
func ExampleCollection() {
	chores := model.NewCollectionOf[string, *chore]()

	h := event.Listen(chores.Added(), func(e model.ItemAdded[string, *chore]) {
		fmt.Println("added:", e.ID)
	})
	defer h.Dispose()

	event.Connect(h, chores.Cleared(), func(model.CollectionCleared[string, *chore]) {
		fmt.Println("board cleared")
	})

	chores.Add(&chore{name: "dishes", priority: 2})
	chores.Add(&chore{name: "laundry", priority: 3})
	chores.Add(&chore{name: "vacuum", priority: 1})

	view := chores.Sort(func(a, b *chore) int { return a.priority - b.priority })
	for id := range view.All() {
		fmt.Println("todo:", id)
	}

	chores.Clear()

	// Output:
	// added: dishes
	// added: laundry
	// added: vacuum
	// todo: vacuum
	// todo: dishes
	// todo: laundry
	// board cleared
}
