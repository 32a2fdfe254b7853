package everyaction

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/everyaction/everyaction-go/internal/testingx"
)

// newPeopleVAN seeds a fake server with two people.
func newPeopleVAN() *testingx.FakeVAN {
	fake := &testingx.FakeVAN{}
	fake.Register("people", "vanId")
	fake.Append("people",
		map[string]any{
			"vanId":     7,
			"firstName": "Alice",
			"lastName":  "Ames",
			"emails":    []any{map[string]any{"email": "alice@example.com"}},
		},
		map[string]any{
			"vanId":     9,
			"firstName": "Bob",
			"lastName":  "Byrd",
		},
	)
	return fake
}

func TestPeopleFind(t *testing.T) {
	t.Run("matches by email", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		person, err := client.People.Find(context.Background(), Args{"email": "alice@example.com"})
		if err != nil {
			t.Fatal(err)
		}
		id, err := person.GetInt("vanId")
		if err != nil || id != 7 {
			t.Fatal("unexpected person", person)
		}
	})

	t.Run("matches by first plus last name", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		person, err := client.People.Find(context.Background(), Args{
			"first": "bob", "last": "byrd",
		})
		if err != nil {
			t.Fatal(err)
		}
		id, err := person.GetInt("vanId")
		if err != nil || id != 9 {
			t.Fatal("unexpected person", person)
		}
	})

	t.Run("no match means nil without an error", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		person, err := client.People.Find(context.Background(), Args{
			"first": "Carol", "last": "Cruz",
		})
		if err != nil {
			t.Fatal(err)
		}
		if person != nil {
			t.Fatal("expected nil, got", person)
		}
	})

	t.Run("unrecognized arguments never reach the wire", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		_, err := client.People.Find(context.Background(), Args{"shoeSize": 46})
		if !errors.Is(err, ErrUnknownField) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestPeopleFindOrCreate(t *testing.T) {
	fake := newPeopleVAN()
	client := newTestClient(t, fake)

	// an existing person is returned, not duplicated
	person, err := client.People.FindOrCreate(context.Background(), Args{
		"first": "Alice", "last": "Ames",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := person.GetInt("vanId"); id != 7 {
		t.Fatal("unexpected person", person)
	}
	if len(fake.Items("people")) != 2 {
		t.Fatal("the store must not grow on a match")
	}

	// a new person is created with the next identifier
	person, err = client.People.FindOrCreate(context.Background(), Args{
		"first": "Carol", "last": "Cruz",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := person.GetInt("vanId"); id != 10 {
		t.Fatal("unexpected person", person)
	}
	if len(fake.Items("people")) != 3 {
		t.Fatal("the store must grow on a miss")
	}
}

func TestPeopleGet(t *testing.T) {
	t.Run("retrieves the stored record", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		person, err := client.People.Get(context.Background(), 7, nil)
		if err != nil {
			t.Fatal(err)
		}
		name, err := person.GetString("firstName")
		if err != nil || name != "Alice" {
			t.Fatal("unexpected person", person)
		}
	})

	t.Run("an unknown identifier is an HTTP error", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		_, err := client.People.Get(context.Background(), 555, nil)
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestPeopleList(t *testing.T) {
	client := newTestClient(t, newPeopleVAN())
	people, err := client.People.List(context.Background(), Args{"limit": 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 2 {
		t.Fatal("unexpected people count", len(people))
	}
}

func TestPeopleLookup(t *testing.T) {
	t.Run("a vanId under any spelling skips the search", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		person, err := client.People.Lookup(context.Background(), Args{"van_id": 9})
		if err != nil {
			t.Fatal(err)
		}
		name, err := person.GetString("lastName")
		if err != nil || name != "Byrd" {
			t.Fatal("unexpected person", person)
		}
	})

	t.Run("searches when there is no vanId", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		person, err := client.People.Lookup(context.Background(), Args{"email": "alice@example.com"})
		if err != nil {
			t.Fatal(err)
		}
		if id, _ := person.GetInt("vanId"); id != 7 {
			t.Fatal("unexpected person", person)
		}
	})

	t.Run("no match means nil without an error", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		person, err := client.People.Lookup(context.Background(), Args{
			"first": "Carol", "last": "Cruz",
		})
		if err != nil {
			t.Fatal(err)
		}
		if person != nil {
			t.Fatal("expected nil, got", person)
		}
	})

	t.Run("a non-integer vanId is rejected", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		_, err := client.People.Lookup(context.Background(), Args{"vanId": "seven"})
		if err == nil || !strings.Contains(err.Error(), "must be an integer") {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestPeopleUpdateIfExists(t *testing.T) {
	t.Run("updates the matched record", func(t *testing.T) {
		fake := newPeopleVAN()
		client := newTestClient(t, fake)
		vanID, err := client.People.UpdateIfExists(context.Background(),
			Args{"email": "alice@example.com"},
			Args{"first": "Alicia"})
		if err != nil {
			t.Fatal(err)
		}
		if vanID != 7 {
			t.Fatal("unexpected vanId", vanID)
		}
		if got := fake.Items("people")[0]["firstName"]; got != "Alicia" {
			t.Fatal("the record was not updated:", got)
		}
	})

	t.Run("no match means zero without an error", func(t *testing.T) {
		client := newTestClient(t, newPeopleVAN())
		vanID, err := client.People.UpdateIfExists(context.Background(),
			Args{"first": "Carol", "last": "Cruz"},
			Args{"first": "Caroline"})
		if err != nil {
			t.Fatal(err)
		}
		if vanID != 0 {
			t.Fatal("unexpected vanId", vanID)
		}
	})
}
