package everyaction

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldSetResolve(t *testing.T) {
	fs := newFieldSet(map[string]*Field{
		"zipOrPostalCode": {Aliases: []string{"zip"}},
		"phones":          {Singular: "phone"},
	})

	t.Run("every spelling resolves to the canonical name", func(t *testing.T) {
		cases := map[string]string{
			"zipOrPostalCode":    "zipOrPostalCode",
			"zip_or_postal_code": "zipOrPostalCode",
			"zip":                "zipOrPostalCode",
			"phones":             "phones",
			"phone":              "phones",
		}
		for spelling, expect := range cases {
			canonical, err := fs.Resolve(spelling)
			if err != nil {
				t.Fatal(spelling, err)
			}
			if canonical != expect {
				t.Fatalf("Resolve(%q): expected %q, got %q", spelling, expect, canonical)
			}
		}
	})

	t.Run("unknown spellings yield ErrUnknownField", func(t *testing.T) {
		_, err := fs.Resolve("postcode")
		if !errors.Is(err, ErrUnknownField) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestFieldSetProcess(t *testing.T) {
	fs := newFieldSet(map[string]*Field{
		"zipOrPostalCode": {Aliases: []string{"zip"}},
		"firstName":       {},
	})

	t.Run("keys come out canonical", func(t *testing.T) {
		out, err := fs.Process(Args{"zip": "78701", "first_name": "Ann"})
		if err != nil {
			t.Fatal(err)
		}
		expect := Args{"zipOrPostalCode": "78701", "firstName": "Ann"}
		if diff := cmp.Diff(expect, out); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("two spellings of one field is an error", func(t *testing.T) {
		_, err := fs.Process(Args{"zip": "78701", "zipOrPostalCode": "78702"})
		if err == nil || !strings.Contains(err.Error(), "multiple aliases") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("the input map is left untouched", func(t *testing.T) {
		args := Args{"zip": "78701"}
		if _, err := fs.Process(args); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Args{"zip": "78701"}, args); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestRegistry(t *testing.T) {
	t.Run("Share derives the snake_cased alias", func(t *testing.T) {
		r := NewRegistry()
		r.Share("zipOrPostalCode", &Field{})
		field := r.Get("zipOrPostalCode")
		if diff := cmp.Diff([]string{"zip_or_postal_code"}, field.Aliases); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("duplicate Share panics", func(t *testing.T) {
		r := NewRegistry()
		r.Share("name", &Field{})
		assertPanics(t, func() { r.Share("name", &Field{}) })
	})

	t.Run("Share after Freeze panics", func(t *testing.T) {
		r := NewRegistry()
		r.Freeze()
		assertPanics(t, func() { r.Share("name", &Field{}) })
	})

	t.Run("Get of an unshared name panics", func(t *testing.T) {
		r := NewRegistry()
		assertPanics(t, func() { r.Get("nope") })
	})

	t.Run("Share clones the descriptor", func(t *testing.T) {
		r := NewRegistry()
		mine := &Field{Aliases: []string{"a"}}
		r.Share("name", mine)
		mine.Aliases = append(mine.Aliases, "b")
		if diff := cmp.Diff([]string{"a"}, r.Get("name").Aliases); diff != "" {
			t.Fatal("caller mutation leaked into the registry:", diff)
		}
	})
}

// assertPanics runs fn and fails the test unless it panics.
func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	fn()
}
