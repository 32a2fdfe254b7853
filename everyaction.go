// Package everyaction is a client library for the EveryAction (VAN)
// REST API.
//
// The API speaks camel-cased JSON with deeply nested objects. This
// package translates between that wire contract and idiomatic,
// flexible call sites: every remote field has a canonical wire name
// plus a set of aliases (always including an automatically derived
// snake_case form), repeated fields may be written through a singular
// alias that wraps a scalar, and nested objects are built implicitly
// from maps, identifiers, or names. Resource methods are thin
// call-sites over a single generic dispatch engine parameterized by an
// [Endpoint] descriptor, which also drives the service's $top/$skip
// pagination protocol.
//
// Construct a [Client] with [New], then reach the per-resource
// services through its fields:
//
//	client, err := everyaction.New(&everyaction.Config{Mode: "VoterFile"})
//	if err != nil {
//		// ...
//	}
//	person, err := client.People.FindByEmail(ctx, "ann@example.org")
package everyaction

// Version is the everyaction-go version.
const Version = "0.5.0"

// Args is the keyword-style argument bag accepted by object
// constructors and resource methods. Keys may be canonical wire names
// or any of their aliases; values may be scalars, slices, nested Args
// or maps, or already-constructed [Object] values.
type Args map[string]any

// clone returns a shallow copy of the args so that processing never
// mutates the caller's map.
func (a Args) clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
