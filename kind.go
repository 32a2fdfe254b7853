package everyaction

//
// Kinds: the declared schemas of remote object types. The whole
// catalog lives in objects.go; declarations run at package
// initialization and panic on inconsistencies.
//

import (
	"fmt"
	"strings"

	"github.com/everyaction/everyaction-go/internal/runtimex"
)

// Kind describes one type of remote object: its name, its id and name
// keys when it has them, and the set of fields instances carry.
type Kind struct {
	name    string
	idKey   string
	nameKey string
	fields  *FieldSet
}

// kindSpec enumerates the raw material for a kind declaration.
type kindSpec struct {
	// Base optionally references a kind whose fields are inherited.
	Base *Kind

	// ID optionally names the id field ("vanId", "eventId", ...).
	// With a Prefix set the given name is expanded under it; without
	// one the descriptor is pulled from the shared registry unless
	// declared in Fields.
	ID string

	// NameKey optionally names the display-name field, pulled from
	// the shared registry unless declared in Fields or Prefixed.
	NameKey string

	// Prefix, when set, expands every name in Prefixed to
	// prefix+Capitalized(name); the expanded field also answers to
	// the unprefixed name and the snake_cased forms of both.
	Prefix string

	// Prefixed lists the unprefixed names to expand under Prefix.
	Prefixed []string

	// Shared lists fields to pull from the shared registry.
	Shared []string

	// Fields declares descriptors specific to this kind. A name
	// listed in Prefixed takes its base descriptor from here first,
	// then from the shared registry.
	Fields map[string]*Field
}

// kinds indexes every declared kind by name so that factories may
// reference kinds declared later in the catalog.
var kinds = make(map[string]*Kind)

// kindByName returns the named kind from the catalog, panicking when
// it was never declared.
func kindByName(name string) *Kind {
	k := kinds[name]
	runtimex.PanicIfFalse(k != nil, fmt.Sprintf("everyaction: unknown kind %q", name))
	return k
}

// factoryFor returns a factory constructing the named kind. The name
// is resolved at conversion time, which lets mutually referencing
// kinds appear in each other's field declarations.
func factoryFor(name string) FactoryFunc {
	return func(raw any) (any, error) {
		return kindByName(name).construct(raw)
	}
}

// declareKind assembles and registers a kind. It panics on any
// inconsistency in the declaration: these run at package
// initialization, so a mistake surfaces the first time the package is
// loaded.
func declareKind(name string, spec kindSpec) *Kind {
	_, dup := kinds[name]
	runtimex.PanicIfTrue(dup, fmt.Sprintf("everyaction: kind %s declared twice", name))

	fields := make(map[string]*Field)
	if spec.Base != nil {
		for canonical, field := range spec.Base.fields.fields {
			fields[canonical] = field
		}
	}

	inline := make(map[string]*Field, len(spec.Fields))
	for k, v := range spec.Fields {
		inline[k] = v
	}
	shared := append([]string(nil), spec.Shared...)
	prefixed := append([]string(nil), spec.Prefixed...)

	if spec.ID != "" {
		if spec.Prefix != "" {
			prefixed = appendMissing(prefixed, spec.ID)
		} else if _, ok := inline[spec.ID]; !ok {
			shared = appendMissing(shared, spec.ID)
		}
	}
	if spec.NameKey != "" {
		_, isInline := inline[spec.NameKey]
		if !isInline && !contains(prefixed, spec.NameKey) {
			shared = appendMissing(shared, spec.NameKey)
		}
	}

	if spec.Prefix != "" {
		for _, short := range prefixed {
			full := spec.Prefix + capitalize(short)
			runtimex.PanicIfTrue(contains(shared, full),
				fmt.Sprintf("everyaction: %s: prefixed name %s matches a shared declaration", name, full))
			base := inline[short]
			if base != nil {
				delete(inline, short)
			} else {
				base = sharedFields.Get(short)
			}
			field := base.clone()
			field.Aliases = appendMissing(field.Aliases, short, toSnake(short), toSnake(full))
			fields[full] = field
		}
	} else {
		runtimex.PanicIfFalse(len(spec.Prefixed) == 0,
			fmt.Sprintf("everyaction: %s: Prefixed set without Prefix", name))
	}

	for _, fieldName := range shared {
		fields[fieldName] = sharedFields.Get(fieldName)
	}
	for _, fieldName := range sortedKeys(inline) {
		_, exists := fields[fieldName]
		runtimex.PanicIfTrue(exists,
			fmt.Sprintf("everyaction: %s: field %s supplied both inline and by the assembled schema", name, fieldName))
		fields[fieldName] = inline[fieldName]
	}

	idKey := spec.ID
	if idKey != "" && spec.Prefix != "" {
		idKey = spec.Prefix + capitalize(spec.ID)
	}
	kind := &Kind{
		name:    name,
		idKey:   idKey,
		nameKey: spec.NameKey,
		fields:  newFieldSet(fields),
	}
	kinds[name] = kind
	return kind
}

// Name returns the kind's name as used in messages and String output.
func (k *Kind) Name() string {
	return k.name
}

// New builds an instance from named arguments. Unrecognized names
// yield an error listing them; two spellings of the same field with
// different values is an error; nil values are skipped entirely.
func (k *Kind) New(args Args) (*Object, error) {
	obj := &Object{kind: k, values: make(map[string]any, len(args))}
	if err := obj.apply(args); err != nil {
		return nil, err
	}
	return obj, nil
}

// MustNew is like [Kind.New] but panics on error. Use it only for
// literal declarations where the arguments are known to be valid.
func (k *Kind) MustNew(args Args) *Object {
	obj, err := k.New(args)
	runtimex.PanicOnError(err, fmt.Sprintf("everyaction: %s.MustNew failed", k.name))
	return obj
}

// ID builds the simple instance carrying only the id field.
func (k *Kind) ID(id int) *Object {
	runtimex.PanicIfFalse(k.idKey != "", fmt.Sprintf("everyaction: %s has no id field", k.name))
	return k.MustNew(Args{k.idKey: id})
}

// Named builds the simple instance carrying only the name field.
func (k *Kind) Named(name string) *Object {
	runtimex.PanicIfFalse(k.nameKey != "", fmt.Sprintf("everyaction: %s has no name field", k.name))
	return k.MustNew(Args{k.nameKey: name})
}

// construct builds an instance from loosely-typed data: nil stays
// nil, objects pass through untouched, maps construct by keyword, and
// scalars follow the simple-object convention where an integer is the
// id and a string is the name.
func (k *Kind) construct(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if obj, ok := raw.(*Object); ok {
		return obj, nil
	}
	if m, ok := asStringMap(raw); ok {
		return k.New(Args(m))
	}
	return k.positional(raw)
}

// positional builds a simple object from a scalar.
func (k *Kind) positional(raw any) (*Object, error) {
	if n, ok := asInt(raw); ok {
		raw = n
	}
	switch {
	case k.idKey != "" && k.nameKey != "":
		if n, ok := raw.(int); ok {
			return k.New(Args{k.idKey: n})
		}
		if s, ok := raw.(string); ok {
			return k.New(Args{k.nameKey: s})
		}
		return nil, fmt.Errorf("expected int or string for %s, got %T: %v", k.name, raw, raw)
	case k.idKey != "":
		return k.New(Args{k.idKey: raw})
	case k.nameKey != "":
		return k.New(Args{k.nameKey: raw})
	default:
		return nil, fmt.Errorf("%s cannot be built from a bare %T value", k.name, raw)
	}
}

// capitalize upper-cases the first character, mirroring how the API
// camel-cases a prefixed field name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// contains reports whether list has the given element.
func contains(list []string, element string) bool {
	for _, candidate := range list {
		if candidate == element {
			return true
		}
	}
	return false
}
