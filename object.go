package everyaction

//
// Object: one instance of a remote API object.
//

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Object is one instance of a remote API object: a [Kind] plus the
// values of the fields currently present, stored under their
// canonical wire names. A nil value is never stored, so a field set
// to nil and an absent field are indistinguishable.
type Object struct {
	kind   *Kind
	values map[string]any
}

// Kind returns the kind this object is an instance of.
func (o *Object) Kind() *Kind {
	return o.kind
}

// apply sets every non-nil entry of args, resolving aliases. All
// unrecognized names are collected into a single error. Two spellings
// of the same field may appear together only when they carry equal
// values.
func (o *Object) apply(args Args) error {
	aliasFor := make(map[string]string, len(args))
	var unrecognized []string
	for _, alias := range sortedKeys(args) {
		raw := args[alias]
		if raw == nil {
			continue
		}
		canonical, err := o.kind.fields.Resolve(alias)
		if err != nil {
			unrecognized = append(unrecognized, alias)
			continue
		}
		value, err := o.kind.fields.fields[canonical].value(alias, raw)
		if err != nil {
			return fmt.Errorf("%s: %w", o.kind.name, err)
		}
		if prev, ok := aliasFor[canonical]; ok {
			if !valuesEqual(o.values[canonical], value) {
				return fmt.Errorf("%s: multiple aliases with different values for %s: %s and %s",
					o.kind.name, canonical, prev, alias)
			}
			continue
		}
		aliasFor[canonical] = alias
		o.values[canonical] = value
	}
	if len(unrecognized) > 0 {
		return fmt.Errorf("%s: %w: %s", o.kind.name, ErrUnknownField, strings.Join(unrecognized, ", "))
	}
	return nil
}

// Get returns the value stored under any spelling of a field. A
// declared but absent field yields nil; an unknown name is an error,
// and so is reading through a singular alias, which is write-only.
func (o *Object) Get(alias string) (any, error) {
	field, err := o.kind.fields.field(alias)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.kind.name, err)
	}
	if field.Singular != "" && alias == field.Singular {
		return nil, fmt.Errorf("%s: singular alias %q sets values and cannot read them", o.kind.name, alias)
	}
	canonical, _ := o.kind.fields.Resolve(alias)
	return o.values[canonical], nil
}

// GetInt returns the field as an int, widening decoded JSON numbers.
// An absent field yields zero.
func (o *Object) GetInt(alias string) (int, error) {
	raw, err := o.Get(alias)
	if err != nil || raw == nil {
		return 0, err
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, fmt.Errorf("%s: field %s holds %T, not an integer", o.kind.name, alias, raw)
	}
	return n, nil
}

// GetString returns the field as a string. An absent field yields "".
func (o *Object) GetString(alias string) (string, error) {
	raw, err := o.Get(alias)
	if err != nil || raw == nil {
		return "", err
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s: field %s holds %T, not a string", o.kind.name, alias, raw)
	}
	return s, nil
}

// Set stores value under any spelling of a field, converting it
// through the field's rules. Setting nil deletes the stored value so
// that nil is never stored.
func (o *Object) Set(alias string, value any) error {
	canonical, err := o.kind.fields.Resolve(alias)
	if err != nil {
		return fmt.Errorf("%s: %w", o.kind.name, err)
	}
	if value == nil {
		delete(o.values, canonical)
		return nil
	}
	converted, err := o.kind.fields.fields[canonical].value(alias, value)
	if err != nil {
		return fmt.Errorf("%s: %w", o.kind.name, err)
	}
	o.values[canonical] = converted
	return nil
}

// Has reports whether a field is present, under any spelling.
// Unknown names simply report false.
func (o *Object) Has(alias string) bool {
	canonical, err := o.kind.fields.Resolve(alias)
	if err != nil {
		return false
	}
	_, ok := o.values[canonical]
	return ok
}

// Len returns the number of fields present.
func (o *Object) Len() int {
	return len(o.values)
}

// Fields returns the canonical names of the fields present, sorted.
func (o *Object) Fields() []string {
	return sortedKeys(o.values)
}

// Args returns the present fields as an arguments map keyed by
// canonical name, suitable for passing back into resource methods.
func (o *Object) Args() Args {
	out := make(Args, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// Equal reports whether both objects have the same kind and the same
// fields with equal values. Numeric values compare by value, so data
// decoded from JSON compares equal to data built in code.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.kind != other.kind || len(o.values) != len(other.values) {
		return false
	}
	for k, v := range o.values {
		ov, ok := other.values[k]
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

// String renders the object as Kind(field=value, ...) with fields in
// sorted order.
func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteString(o.kind.name)
	sb.WriteString("(")
	for i, k := range o.Fields() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(formatValue(o.values[k]))
	}
	sb.WriteString(")")
	return sb.String()
}

// MarshalJSON emits the canonical-name map.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.values)
}

// formatValue renders a stored value for String output.
func formatValue(v any) string {
	switch t := v.(type) {
	case *Object:
		return t.String()
	case string:
		return t
	}
	if elems, ok := asSlice(v); ok {
		parts := make([]string, len(elems))
		for i, elem := range elems {
			parts[i] = formatValue(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if m, ok := asStringMap(v); ok {
		parts := make([]string, 0, len(m))
		for _, k := range sortedKeys(m) {
			parts = append(parts, k+"="+formatValue(m[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("%v", v)
}

// valuesEqual compares stored values structurally, treating integral
// float64 and int as the same number so that decoded JSON compares
// equal to values built in code.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ao, ok := a.(*Object); ok {
		bo, ok := b.(*Object)
		return ok && ao.Equal(bo)
	}
	if an, ok := asInt(a); ok {
		bn, ok := asInt(b)
		return ok && an == bn
	}
	if as, ok := asSlice(a); ok {
		bs, ok := asSlice(b)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !valuesEqual(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	if am, ok := asStringMap(a); ok {
		bm, ok := asStringMap(b)
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	}
	return a == b
}
