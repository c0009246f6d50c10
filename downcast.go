package wallee

import (
	"reflect"
)

// Downcast extracts a copy of the payload of the outermost layer of e if it is of type T. The caller is expected to
// continue with the returned value instead of e. The record itself is shared with all copies of e (including context
// layers built on top of it) and is never modified.
//
// The type identities are:
//   - the message type M for errors created with Msg[M]() (string for Errorf)
//   - the concrete error type E for errors created with New[E]()
//   - the error interface type for errors created with FromBoxed() or New() with an interface type
//   - the context type C for context layers
func Downcast[T any](e Error) (T, bool) {
	p, ok := DowncastRef[T](e)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// DowncastRef returns a pointer to the payload of the outermost layer of e if it is of type T.
func DowncastRef[T any](e Error) (*T, bool) {
	h := e.header()
	if h == nil {
		return nil, false
	}
	p := h.vtable.downcast(h, reflect.TypeFor[T]())
	if p == nil {
		return nil, false
	}
	return (*T)(p), true
}

// DowncastMut returns a pointer to the payload of the outermost layer of the Error pointed to by e if it is of type T.
// Modifications through the pointer are visible to e and all its copies.
func DowncastMut[T any](e *Error) (*T, bool) {
	if e == nil {
		return nil, false
	}
	return DowncastRef[T](*e)
}

// Find walks the chain of err and returns a pointer to the first payload of type T. Error layers match through
// downcasting, standard and boxed layers additionally through a type assertion on their payload (which makes interface
// types work) and all other errors through a type assertion. For type assertions, the returned pointer refers to a
// copy.
func Find[T any](err error) (*T, bool) {
	for cur := range newChain(err).All() {
		e, isError := cur.(Error)
		if !isError {
			if v, ok := cur.(T); ok {
				return &v, true
			}
			continue
		}
		if p, ok := DowncastRef[T](e); ok {
			return p, true
		}
		if k := e.Kind(); k == K.Standard || k == K.Boxed {
			if v, ok := e.object().(T); ok {
				return &v, true
			}
		}
	}
	return nil, false
}
