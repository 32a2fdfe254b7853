// Package runtimex contains runtime extensions for expressing
// assertions about conditions that only a programming error can
// violate. Schema and endpoint declarations use these helpers so that
// mistakes surface at process initialization rather than at call time.
package runtimex

import "fmt"

// PanicOnError calls panic() if err is not nil. The panic value is an
// error wrapping err and carrying the given message.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// PanicIfFalse calls panic if assertion is false.
func PanicIfFalse(assertion bool, message string) {
	if !assertion {
		panic(message)
	}
}

// PanicIfTrue calls panic if assertion is true.
func PanicIfTrue(assertion bool, message string) {
	PanicIfFalse(!assertion, message)
}

// Try0 calls PanicOnError if err is not nil.
func Try0(err error) {
	PanicOnError(err, "Try0")
}

// Try1 returns value if err is nil and panics otherwise.
func Try1[Type any](value Type, err error) Type {
	PanicOnError(err, "Try1")
	return value
}
