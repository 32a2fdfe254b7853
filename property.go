package everyaction

//
// Field descriptors: the alias and conversion rules for one named
// property of a remote object.
//

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
)

// camelGroups matches maximal runs of upper-case letters so that
// consecutive capitals ("VANID") collapse under a single underscore.
var camelGroups = regexp.MustCompile(`[A-Z]+`)

// toSnake converts a camelCased or UpperCased name to its snake_cased
// form ("zipOrPostalCode" becomes "zip_or_postal_code").
func toSnake(name string) string {
	if name == "" {
		return ""
	}
	head, tail := name[:1], name[1:]
	return strings.ToLower(head) + strings.ToLower(camelGroups.ReplaceAllString(tail, "_$0"))
}

// FactoryFunc builds the stored form of a raw value, usually an
// [*Object] out of a map, an id, or a name. Factories must tolerate
// values that are already in their final form.
type FactoryFunc func(raw any) (any, error)

// Field describes one named property of a remote object: the extra
// names callers may use for it, whether it holds a list, the optional
// singular alias for single-element writes, and the factory applied to
// incoming values.
type Field struct {
	// Aliases contains the accepted names beyond the canonical one.
	// The snake_cased form of the canonical name is derived
	// automatically and need not be listed.
	Aliases []string

	// IsArray indicates that the field holds a list of values and
	// that the factory applies to each element.
	IsArray bool

	// Singular optionally names a write-only alias that wraps a
	// single element into a one-element list. A non-empty Singular
	// implies IsArray.
	Singular string

	// Factory optionally converts raw values, element-wise for
	// repeated fields.
	Factory FactoryFunc
}

// repeated reports whether the field holds a list.
func (f *Field) repeated() bool {
	return f.IsArray || f.Singular != ""
}

// clone deep-copies the descriptor so that alias additions made while
// assembling one kind or endpoint never leak into another.
func (f *Field) clone() *Field {
	return &Field{
		Aliases:  append([]string(nil), f.Aliases...),
		IsArray:  f.IsArray,
		Singular: f.Singular,
		Factory:  f.Factory,
	}
}

// equal reports whether two descriptors declare the same alias set,
// arity, and singular alias. Factories are not comparable in Go and
// are ignored.
func (f *Field) equal(other *Field) bool {
	if f.repeated() != other.repeated() || f.Singular != other.Singular {
		return false
	}
	mine := append([]string(nil), f.Aliases...)
	theirs := append([]string(nil), other.Aliases...)
	slices.Sort(mine)
	slices.Sort(theirs)
	return slices.Equal(slices.Compact(mine), slices.Compact(theirs))
}

// create builds a single element value. Objects pass through untouched
// so that conversion is idempotent.
func (f *Field) create(raw any) (any, error) {
	if _, ok := raw.(*Object); ok {
		return raw, nil
	}
	if f.Factory == nil {
		return raw, nil
	}
	return f.Factory(raw)
}

// value normalizes raw for storage or serialization. Nil stays nil.
// For repeated fields, writing through the singular alias wraps the
// processed element into a one-element slice; any other spelling
// requires a slice, which is processed element-wise preserving order.
func (f *Field) value(aliasUsed string, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if !f.repeated() {
		return f.create(raw)
	}
	if f.Singular != "" && aliasUsed == f.Singular {
		elem, err := f.create(raw)
		if err != nil {
			return nil, err
		}
		return []any{elem}, nil
	}
	elems, ok := asSlice(raw)
	if !ok {
		return nil, fmt.Errorf("expected list for %q, got %T: %v", aliasUsed, raw, raw)
	}
	out := make([]any, 0, len(elems))
	for _, elem := range elems {
		processed, err := f.create(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, processed)
	}
	return out, nil
}

// find returns the processed value for this field in args, searching
// the canonical name, its snake_cased form, every declared alias, and
// the singular alias. More than one spelling present with a non-nil
// value is an error. With pop set, matched keys are removed from args.
func (f *Field) find(name string, args Args, pop bool) (any, error) {
	var value any
	for _, alias := range f.spellings(name) {
		raw, ok := args[alias]
		if !ok || raw == nil {
			continue
		}
		if value != nil {
			return nil, fmt.Errorf("found multiple aliases for %s", name)
		}
		value = raw
		if pop {
			delete(args, alias)
		}
	}
	return f.value(name, value)
}

// spellings lists every name under which this field may appear in an
// arguments map, deduplicated in a stable order.
func (f *Field) spellings(name string) []string {
	all := make([]string, 0, len(f.Aliases)+3)
	push := func(s string) {
		if s != "" && !slices.Contains(all, s) {
			all = append(all, s)
		}
	}
	push(name)
	push(toSnake(name))
	for _, alias := range f.Aliases {
		push(alias)
	}
	push(f.Singular)
	return all
}

// asSlice views raw as a generic slice. Typed slices are widened so
// that callers can pass e.g. []int or []*Object directly.
func asSlice(raw any) ([]any, bool) {
	if elems, ok := raw.([]any); ok {
		return elems, true
	}
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asStringMap views raw as a string-keyed map, as produced by both
// [Args] literals and decoded JSON.
func asStringMap(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case Args:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// asInt widens integer-typed values, including the integral float64
// produced by decoding JSON, into an int.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		if n := int(v); float64(n) == v {
			return n, true
		}
	}
	return 0, false
}
