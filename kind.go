package wallee

import (
	"reflect"
)

// Kind is the Go type for the variant of an Error layer. The kind is implied by the dispatch table installed when the
// layer is created and never changes afterwards.
type Kind string

// K defines the kinds of Error layers.
var K = struct {
	Invalid  Kind // The zero Error.
	Adhoc    Kind // Created from a message with Msg() or Errorf().
	Standard Kind // Created from a concrete error type with New().
	Boxed    Kind // Created from an error interface value with FromBoxed() or New().
	Context  Kind // Created by attaching context to another Error.
}{
	Invalid:  "invalid",
	Adhoc:    "adhoc",
	Standard: "standard",
	Boxed:    "boxed",
	Context:  "context",
}

// String returns the kind's name.
func (k Kind) String() string {
	return string(k)
}

// errorType is the type identity of the error interface - the payload type of boxed errors.
var errorType = reflect.TypeFor[error]()

// kindOf resolves the variant to use for New[E]: errors whose static type is an interface have had their concrete
// type erased by the caller and are boxed, all others are standard errors.
func kindOf[E error]() Kind {
	if reflect.TypeFor[E]().Kind() == reflect.Interface {
		return K.Boxed
	}
	return K.Standard
}
