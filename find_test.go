package everyaction

import (
	"errors"
	"testing"
)

func TestFindByName(t *testing.T) {
	widgets := []*Object{
		widgetKind.MustNew(Args{"id": 1, "name": "Anvil"}),
		widgetKind.MustNew(Args{"id": 2, "name": "Bolt"}),
		widgetKind.MustNew(Args{"id": 3}),
	}

	t.Run("matches ignoring case", func(t *testing.T) {
		found, err := findByName(widgets, "bolt", "widget")
		if err != nil {
			t.Fatal(err)
		}
		if id, _ := found.GetInt("id"); id != 2 {
			t.Fatal("unexpected widget", found)
		}
	})

	t.Run("no match is a NotFoundError naming the search", func(t *testing.T) {
		_, err := findByName(widgets, "Crowbar", "widget")
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatal("unexpected error", err)
		}
		if notFound.What != "widget" || notFound.Name != "Crowbar" {
			t.Fatal("unexpected error", notFound)
		}
	})

	t.Run("the index skips nameless entries", func(t *testing.T) {
		byName := namedByName(widgets)
		if len(byName) != 2 || byName["Anvil"] == nil || byName["Bolt"] == nil {
			t.Fatal("unexpected index", byName)
		}
	})
}
