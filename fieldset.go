package everyaction

//
// FieldSet: the alias table for a collection of fields. Registry: the
// shared descriptors the catalog and endpoint declarations draw from.
//

import (
	"errors"
	"fmt"
	"sort"

	"github.com/everyaction/everyaction-go/internal/runtimex"
)

// ErrUnknownField indicates a name that no field in a set answers to.
// Callers wrap it with the endpoint or kind that rejected the name.
var ErrUnknownField = errors.New("unknown field or alias")

// FieldSet maps every recognized spelling of a collection of fields to
// the canonical name the API expects. A set is built once and is
// read-only afterwards.
type FieldSet struct {
	// fields maps canonical names to their descriptors.
	fields map[string]*Field

	// aliases maps every accepted spelling to its canonical name.
	aliases map[string]string
}

// newFieldSet builds the alias table for the given canonical-name to
// descriptor mapping. Descriptors are deep-copied. Fields are indexed
// in sorted name order so that spelling collisions resolve the same
// way on every run.
func newFieldSet(fields map[string]*Field) *FieldSet {
	fs := &FieldSet{
		fields:  make(map[string]*Field, len(fields)),
		aliases: make(map[string]string, len(fields)*3),
	}
	for _, name := range sortedKeys(fields) {
		field := fields[name].clone()
		fs.fields[name] = field
		fs.aliases[name] = name
		for _, alias := range field.Aliases {
			fs.aliases[alias] = name
		}
		if field.Singular != "" {
			fs.aliases[field.Singular] = name
		}
		fs.aliases[toSnake(name)] = name
	}
	return fs
}

// Resolve maps any recognized spelling to its canonical name.
func (fs *FieldSet) Resolve(alias string) (string, error) {
	canonical, ok := fs.aliases[alias]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, alias)
	}
	return canonical, nil
}

// field returns the descriptor answering to alias.
func (fs *FieldSet) field(alias string) (*Field, error) {
	canonical, err := fs.Resolve(alias)
	if err != nil {
		return nil, err
	}
	return fs.fields[canonical], nil
}

// has reports whether alias is a recognized spelling.
func (fs *FieldSet) has(alias string) bool {
	_, ok := fs.aliases[alias]
	return ok
}

// names returns the canonical field names in sorted order.
func (fs *FieldSet) names() []string {
	return sortedKeys(fs.fields)
}

// Process resolves every key in args to its canonical name and
// normalizes every value through the owning field. Using two
// spellings of the same field within one call is an error. The input
// map is left untouched.
func (fs *FieldSet) Process(args Args) (Args, error) {
	out := make(Args, len(args))
	usedAlias := make(map[string]string, len(args))
	for _, alias := range sortedKeys(args) {
		canonical, err := fs.Resolve(alias)
		if err != nil {
			return nil, err
		}
		if prev, ok := usedAlias[canonical]; ok {
			return nil, fmt.Errorf("multiple aliases for %q: %s and %s", canonical, prev, alias)
		}
		usedAlias[canonical] = alias
		value, err := fs.fields[canonical].value(alias, args[alias])
		if err != nil {
			return nil, err
		}
		out[canonical] = value
	}
	return out, nil
}

// Registry holds the shared field descriptors declared once at package
// initialization. It is frozen before first use: late writes are
// programming errors and panic.
type Registry struct {
	frozen bool
	fields map[string]*Field
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[string]*Field)}
}

// Share registers a descriptor under its canonical name, deriving the
// snake_cased alias. Duplicate names and post-freeze writes panic.
func (r *Registry) Share(name string, field *Field) {
	runtimex.PanicIfTrue(r.frozen, fmt.Sprintf("everyaction: Share(%q) after Freeze", name))
	_, dup := r.fields[name]
	runtimex.PanicIfTrue(dup, fmt.Sprintf("everyaction: %s is already a shared field", name))
	field = field.clone()
	if snake := toSnake(name); snake != name {
		field.Aliases = appendMissing(field.Aliases, snake)
	}
	r.fields[name] = field
}

// Get returns the descriptor shared under name. Lookups happen while
// declaring kinds and endpoints, where a missing name is a programming
// error, so Get panics instead of returning an error.
func (r *Registry) Get(name string) *Field {
	field, ok := r.fields[name]
	runtimex.PanicIfFalse(ok, fmt.Sprintf("everyaction: %s is not a shared field", name))
	return field
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// appendMissing appends each extra alias not already present.
func appendMissing(aliases []string, extra ...string) []string {
	for _, alias := range extra {
		found := false
		for _, existing := range aliases {
			if existing == alias {
				found = true
				break
			}
		}
		if !found {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
