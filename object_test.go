package everyaction

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Test kinds declared once per process; declareKind panics on
// duplicate names.
var (
	// gadget has a prefixed identity and nothing else.
	gadgetKind = declareKind("testGadget", kindSpec{
		ID:     "id",
		Prefix: "gadget",
	})

	// widget exercises inheritance, prefixed fields, and a singular
	// list of nested gadgets.
	widgetKind = declareKind("testWidget", kindSpec{
		Base:     gadgetKind,
		NameKey:  "name",
		Prefix:   "gadget",
		Prefixed: []string{"status"},
		Fields: map[string]*Field{
			"status":  {Aliases: []string{"state"}},
			"gadgets": {Singular: "gadget", Factory: factoryFor("testGadget")},
		},
	})
)

func TestKindAssembly(t *testing.T) {
	t.Run("a prefixed id answers to the bare name", func(t *testing.T) {
		bare := gadgetKind.MustNew(Args{"id": 3})
		prefixed := gadgetKind.MustNew(Args{"gadgetId": 3})
		snake := gadgetKind.MustNew(Args{"gadget_id": 3})
		if !bare.Equal(prefixed) || !bare.Equal(snake) {
			t.Fatal("spellings of the id produced unequal objects")
		}
		if diff := cmp.Diff([]string{"gadgetId"}, bare.Fields()); diff != "" {
			t.Fatal("the stored key must be the prefixed one:", diff)
		}
	})

	t.Run("inherited and prefixed fields coexist", func(t *testing.T) {
		w := widgetKind.MustNew(Args{
			"id":     7,
			"name":   "thing",
			"status": "live",
		})
		if diff := cmp.Diff([]string{"gadgetId", "gadgetStatus", "name"}, w.Fields()); diff != "" {
			t.Fatal(diff)
		}
		status, err := w.GetString("state")
		if err != nil || status != "live" {
			t.Fatal("inline alias of a prefixed field did not survive:", status, err)
		}
	})

	t.Run("positional construction dispatches on type", func(t *testing.T) {
		byID, err := widgetKind.construct(7)
		if err != nil {
			t.Fatal(err)
		}
		if !byID.(*Object).Equal(widgetKind.ID(7)) {
			t.Fatal("an integer must become the id")
		}
		byName, err := widgetKind.construct("thing")
		if err != nil {
			t.Fatal(err)
		}
		if !byName.(*Object).Equal(widgetKind.Named("thing")) {
			t.Fatal("a string must become the name")
		}
	})

	t.Run("ID on a kind without an id panics", func(t *testing.T) {
		assertPanics(t, func() { Suppression.ID(1) })
	})

	t.Run("Prefixed without Prefix panics", func(t *testing.T) {
		assertPanics(t, func() {
			declareKind("testBroken", kindSpec{Prefixed: []string{"name"}})
		})
	})

	t.Run("duplicate kind declaration panics", func(t *testing.T) {
		assertPanics(t, func() { declareKind("testGadget", kindSpec{}) })
	})
}

func TestObjectConstruction(t *testing.T) {
	t.Run("unrecognized names are listed in the error", func(t *testing.T) {
		_, err := gadgetKind.New(Args{"id": 1, "bogus": 2, "wat": 3})
		if !errors.Is(err, ErrUnknownField) {
			t.Fatal("unexpected error", err)
		}
		if !strings.Contains(err.Error(), "bogus") || !strings.Contains(err.Error(), "wat") {
			t.Fatal("error does not list the names:", err)
		}
	})

	t.Run("nil values are skipped", func(t *testing.T) {
		obj := gadgetKind.MustNew(Args{"id": 1, "gadgetId": nil})
		if obj.Len() != 1 {
			t.Fatal("expected one stored field, got", obj.Len())
		}
	})

	t.Run("two spellings with equal values is a no-op", func(t *testing.T) {
		obj, err := gadgetKind.New(Args{"id": 1, "gadgetId": 1})
		if err != nil {
			t.Fatal(err)
		}
		if obj.Len() != 1 {
			t.Fatal("expected one stored field, got", obj.Len())
		}
	})

	t.Run("two spellings with different values is an error", func(t *testing.T) {
		_, err := gadgetKind.New(Args{"id": 1, "gadgetId": 2})
		if err == nil || !strings.Contains(err.Error(), "multiple aliases") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("the singular alias wraps a nested object", func(t *testing.T) {
		w := widgetKind.MustNew(Args{"gadget": 3})
		raw, err := w.Get("gadgets")
		if err != nil {
			t.Fatal(err)
		}
		elems, _ := asSlice(raw)
		if len(elems) != 1 || !elems[0].(*Object).Equal(gadgetKind.ID(3)) {
			t.Fatal("unexpected gadgets value", raw)
		}
	})

	t.Run("nested construction is idempotent", func(t *testing.T) {
		inner := gadgetKind.ID(3)
		w := widgetKind.MustNew(Args{"gadgets": []any{inner}})
		raw, err := w.Get("gadgets")
		if err != nil {
			t.Fatal(err)
		}
		elems, _ := asSlice(raw)
		if elems[0] != any(inner) {
			t.Fatal("expected the same nested instance back")
		}
	})

	t.Run("round trip through every spelling", func(t *testing.T) {
		w := widgetKind.MustNew(Args{"status": "live"})
		for _, spelling := range []string{"gadgetStatus", "gadget_status", "status", "state"} {
			value, err := w.Get(spelling)
			if err != nil {
				t.Fatal(spelling, err)
			}
			if value != "live" {
				t.Fatalf("Get(%q): unexpected value %v", spelling, value)
			}
		}
	})
}

func TestObjectAccess(t *testing.T) {
	t.Run("declared but absent fields read as nil", func(t *testing.T) {
		w := widgetKind.MustNew(nil)
		value, err := w.Get("status")
		if err != nil {
			t.Fatal(err)
		}
		if value != nil {
			t.Fatal("expected nil, got", value)
		}
	})

	t.Run("unknown names are errors", func(t *testing.T) {
		w := widgetKind.MustNew(nil)
		if _, err := w.Get("bogus"); !errors.Is(err, ErrUnknownField) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("singular aliases are write-only", func(t *testing.T) {
		w := widgetKind.MustNew(Args{"gadget": 3})
		_, err := w.Get("gadget")
		if err == nil || !strings.Contains(err.Error(), "singular") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("setting nil deletes", func(t *testing.T) {
		w := widgetKind.MustNew(Args{"status": "live"})
		if err := w.Set("state", nil); err != nil {
			t.Fatal(err)
		}
		if w.Has("status") || w.Len() != 0 {
			t.Fatal("the field must be gone")
		}
		value, err := w.Get("status")
		if err != nil || value != nil {
			t.Fatal("a deleted field reads as nil:", value, err)
		}
	})

	t.Run("Set routes through value resolution", func(t *testing.T) {
		w := widgetKind.MustNew(nil)
		if err := w.Set("gadget", 5); err != nil {
			t.Fatal(err)
		}
		raw, err := w.Get("gadgets")
		if err != nil {
			t.Fatal(err)
		}
		elems, _ := asSlice(raw)
		if len(elems) != 1 || !elems[0].(*Object).Equal(gadgetKind.ID(5)) {
			t.Fatal("unexpected gadgets value", raw)
		}
	})
}

func TestObjectEqual(t *testing.T) {
	t.Run("same kind and mapping", func(t *testing.T) {
		a := widgetKind.MustNew(Args{"id": 1, "name": "x"})
		b := widgetKind.MustNew(Args{"gadgetId": 1, "name": "x"})
		if !a.Equal(b) {
			t.Fatal("expected equal")
		}
	})

	t.Run("different kinds never compare equal", func(t *testing.T) {
		a := gadgetKind.MustNew(Args{"id": 1})
		b := widgetKind.MustNew(Args{"id": 1})
		if a.Equal(b) {
			t.Fatal("expected unequal")
		}
	})

	t.Run("decoded JSON numbers compare equal to ints", func(t *testing.T) {
		a := gadgetKind.MustNew(Args{"id": 1})
		b := gadgetKind.MustNew(Args{"id": float64(1)})
		if !a.Equal(b) {
			t.Fatal("expected equal")
		}
	})
}

func TestObjectString(t *testing.T) {
	w := widgetKind.MustNew(Args{"id": 3, "name": "thing"})
	expect := "testWidget(gadgetId=3, name=thing)"
	if got := w.String(); got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	w := widgetKind.MustNew(Args{"id": 3, "gadget": 7})
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	expect := map[string]any{
		"gadgetId": float64(3),
		"gadgets":  []any{map[string]any{"gadgetId": float64(7)}},
	}
	if diff := cmp.Diff(expect, decoded); diff != "" {
		t.Fatal(diff)
	}
}
