package everyaction

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToSnake(t *testing.T) {
	cases := []struct {
		input  string
		expect string
	}{
		{"", ""},
		{"name", "name"},
		{"vanId", "van_id"},
		{"zipOrPostalCode", "zip_or_postal_code"},
		{"downloadUrl", "download_url"},
		{"nextPageLink", "next_page_link"},
	}
	for _, tc := range cases {
		if got := toSnake(tc.input); got != tc.expect {
			t.Fatalf("toSnake(%q): expected %q, got %q", tc.input, tc.expect, got)
		}
	}
}

// doubler is a factory used by the field tests so that we can tell
// raw values from processed ones.
func doubler(raw any) (any, error) {
	n, _ := asInt(raw)
	return 2 * n, nil
}

func TestFieldValue(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		field := &Field{Factory: doubler}
		value, err := field.value("x", nil)
		if err != nil {
			t.Fatal(err)
		}
		if value != nil {
			t.Fatal("expected nil, got", value)
		}
	})

	t.Run("scalar field without a factory passes through", func(t *testing.T) {
		field := &Field{}
		value, err := field.value("x", "hello")
		if err != nil {
			t.Fatal(err)
		}
		if value != "hello" {
			t.Fatal("unexpected value", value)
		}
	})

	t.Run("scalar field applies the factory", func(t *testing.T) {
		field := &Field{Factory: doubler}
		value, err := field.value("x", 21)
		if err != nil {
			t.Fatal(err)
		}
		if value != 42 {
			t.Fatal("unexpected value", value)
		}
	})

	t.Run("objects pass through untouched", func(t *testing.T) {
		person := Person.MustNew(Args{"id": 3})
		field := &Field{Factory: factoryFor("Person")}
		value, err := field.value("x", person)
		if err != nil {
			t.Fatal(err)
		}
		if value != any(person) {
			t.Fatal("expected the same instance back")
		}
	})

	t.Run("singular alias wraps one processed element", func(t *testing.T) {
		field := &Field{Singular: "thing", Factory: doubler}
		value, err := field.value("thing", 5)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]any{10}, value); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("plural spelling requires a list", func(t *testing.T) {
		field := &Field{Singular: "thing"}
		_, err := field.value("things", 5)
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), `"things"`) || !strings.Contains(err.Error(), "int") {
			t.Fatal("error does not name the alias and the type:", err)
		}
	})

	t.Run("lists process element-wise preserving order", func(t *testing.T) {
		field := &Field{IsArray: true, Factory: doubler}
		value, err := field.value("things", []int{1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]any{2, 4, 6}, value); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestFieldFind(t *testing.T) {
	field := &Field{Aliases: []string{"zip"}, Singular: "thing"}

	t.Run("finds the value under every spelling", func(t *testing.T) {
		for _, spelling := range []string{"zipOrPostalCode", "zip_or_postal_code", "zip"} {
			args := Args{spelling: []any{"78701"}}
			value, err := field.find("zipOrPostalCode", args, false)
			if err != nil {
				t.Fatal(spelling, err)
			}
			if diff := cmp.Diff([]any{"78701"}, value); diff != "" {
				t.Fatal(spelling, diff)
			}
		}
	})

	t.Run("the singular spelling wraps", func(t *testing.T) {
		value, err := field.find("zipOrPostalCode", Args{"thing": "78701"}, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]any{"78701"}, value); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("two spellings at once is an error", func(t *testing.T) {
		args := Args{"zip": []any{"78701"}, "zip_or_postal_code": []any{"78702"}}
		_, err := field.find("zipOrPostalCode", args, false)
		if err == nil || !strings.Contains(err.Error(), "multiple aliases for zipOrPostalCode") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("nil entries do not count as present", func(t *testing.T) {
		args := Args{"zip": []any{"78701"}, "zip_or_postal_code": nil}
		value, err := field.find("zipOrPostalCode", args, false)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]any{"78701"}, value); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("pop removes the matched spelling", func(t *testing.T) {
		args := Args{"zip": []any{"78701"}, "other": 7}
		if _, err := field.find("zipOrPostalCode", args, true); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Args{"other": 7}, args); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("absent everywhere yields nil", func(t *testing.T) {
		value, err := field.find("zipOrPostalCode", Args{"other": 7}, false)
		if err != nil {
			t.Fatal(err)
		}
		if value != nil {
			t.Fatal("expected nil, got", value)
		}
	})
}

func TestFieldClone(t *testing.T) {
	original := &Field{Aliases: []string{"a"}, Singular: "thing"}
	copied := original.clone()
	copied.Aliases = append(copied.Aliases, "b")
	if diff := cmp.Diff([]string{"a"}, original.Aliases); diff != "" {
		t.Fatal("alias mutation leaked into the original:", diff)
	}
	if !copied.repeated() || !original.repeated() {
		t.Fatal("a singular alias implies a repeated field")
	}
}

func TestFieldEqual(t *testing.T) {
	a := &Field{Aliases: []string{"x", "y"}}
	b := &Field{Aliases: []string{"y", "x"}}
	if !a.equal(b) {
		t.Fatal("alias order must not matter")
	}
	c := &Field{Aliases: []string{"x"}, IsArray: true}
	if a.equal(c) {
		t.Fatal("arity must matter")
	}
}

func TestAsSlice(t *testing.T) {
	if _, ok := asSlice("nope"); ok {
		t.Fatal("strings are not slices")
	}
	elems, ok := asSlice([]int{1, 2})
	if !ok {
		t.Fatal("typed slices must widen")
	}
	if diff := cmp.Diff([]any{1, 2}, elems); diff != "" {
		t.Fatal(diff)
	}
}
