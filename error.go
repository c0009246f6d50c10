package wallee

import (
	"fmt"
	"reflect"
)

// Error is a type-erased error with a location and an optional backtrace. It is a single pointer wide and is passed
// by value. The zero Error is valid: it has no message, no location and no cause and renders as the empty string.
//
// An Error is created from
//   - a message with Msg() or Errorf() (adhoc errors)
//   - an error value with New() or FromBoxed()
//   - another Error by attaching context with Context(), AddContext() and the package-level Context functions
//
// Copies of an Error share the same underlying record.
type Error struct {
	inner *errorHeader
}

// backtracer is implemented by errors that carry their own backtrace.
type backtracer interface {
	Backtrace() *Backtrace
}

// Msg creates an adhoc error from the given message. The message is rendered with fmt.Sprint for display and with %#v
// for debug output. The Error records the caller's location and captures a backtrace if enabled.
func Msg[M any](msg M) Error {
	return newAdhoc(msg, 1)
}

// Errorf creates an adhoc error with a message formatted according to the format specifier.
func Errorf(format string, args ...any) Error {
	return newAdhoc(fmt.Sprintf(format, args...), 1)
}

// New creates an Error from the given error value.
//
// If err already is an Error, it is returned unchanged. If err is nil or a nil pointer, the zero Error is returned. If
// the static type E is an interface type, the error is boxed as with FromBoxed(). Otherwise, the Error records the
// caller's location and captures a backtrace unless err reports a backtrace of its own.
func New[E error](err E) Error {
	return newError(err, 1)
}

// FromBoxed creates an Error from an error interface value whose concrete type is not known statically. The resulting
// Error can be downcast to the error interface type only; errors.As or Find reach the concrete type.
func FromBoxed(err error) Error {
	return newBoxed(err, 1)
}

// newAdhoc creates an adhoc error. skip is the number of frames between the public API function and newAdhoc.
func newAdhoc[M any](msg M, skip int) Error {
	return Error{inner: newRecord(msg, adhocVtable[M](), callerLocation(skip+1), captureBacktrace(skip+1))}
}

func newError[E error](err E, skip int) Error {
	if e, ok := asError(err); ok {
		return e
	}
	if isNilPointer(err) {
		return Error{}
	}
	if kindOf[E]() == K.Boxed {
		return newBoxed(err, skip+1)
	}
	return Error{inner: newRecord(err, errorVtable[E](K.Standard), callerLocation(skip+1), backtraceIfAbsent(err, skip+1))}
}

func newBoxed(err error, skip int) Error {
	if e, ok := asError(err); ok {
		return e
	}
	if isNilPointer(err) {
		return Error{}
	}
	return Error{inner: newRecord(err, errorVtable[error](K.Boxed), callerLocation(skip+1), backtraceIfAbsent(err, skip+1))}
}

// asError returns the given error as Error if it is nil, an Error or a non-nil *Error.
func asError(err error) (Error, bool) {
	switch t := any(err).(type) {
	case nil:
		return Error{}, true
	case Error:
		return t, true
	case *Error:
		if t == nil {
			return Error{}, true
		}
		return *t, true
	}
	return Error{}, false
}

func backtraceIfAbsent(err error, skip int) *Backtrace {
	if bt, ok := err.(backtracer); ok && !isNilPointer(bt) && bt.Backtrace() != nil {
		return nil
	}
	return captureBacktrace(skip + 1)
}

func isNilPointer(v any) bool {
	val := reflect.ValueOf(v)
	return val.Kind() == reflect.Pointer && val.IsNil()
}

// header returns the record of the Error or nil for the zero Error.
func (e Error) header() *errorHeader {
	if e.inner == nil || e.inner.vtable == nil {
		return nil
	}
	return e.inner
}

// IsZero returns true if this is the zero Error.
func (e Error) IsZero() bool {
	return e.header() == nil
}

// Kind returns the kind of the outermost layer.
func (e Error) Kind() Kind {
	h := e.header()
	if h == nil {
		return K.Invalid
	}
	return h.vtable.kind
}

// Error returns the message of the outermost layer. Use the %+s verb to get the messages of the entire chain.
func (e Error) Error() string {
	h := e.header()
	if h == nil {
		return ""
	}
	return h.vtable.display(h)
}

// Location returns the location where the outermost layer was created.
func (e Error) Location() Location {
	h := e.header()
	if h == nil {
		return Location{}
	}
	return h.location
}

// File returns the file of the location where the outermost layer was created.
func (e Error) File() string {
	return e.Location().File
}

// Line returns the line of the location where the outermost layer was created.
func (e Error) Line() int {
	return e.Location().Line
}

// Unwrap returns the cause of the outermost layer: the Error that context was attached to, the result of unwrapping
// a wrapped error value, or nil for adhoc errors.
func (e Error) Unwrap() error {
	h := e.header()
	if h == nil {
		return nil
	}
	return h.vtable.cause(h)
}

// Source is an alias of Unwrap.
func (e Error) Source() error {
	return e.Unwrap()
}

// Backtrace returns the backtrace of this Error: the one captured at creation, the one reported by the wrapped error
// value or, for context layers, the one of the source. Returns nil if there is none.
func (e Error) Backtrace() *Backtrace {
	h := e.header()
	if h == nil {
		return nil
	}
	if h.backtrace != nil {
		return h.backtrace
	}
	return h.vtable.backtrace(h)
}

// RootCause returns the innermost error of the chain. Returns NilError for the zero Error.
func (e Error) RootCause() error {
	var root error = NilError
	for err := range e.Chain().All() {
		root = err
	}
	return root
}

// Is reports whether the payload of the outermost layer matches target, either by equality or through the payload's
// own Is method. It is called by errors.Is, which takes care of walking the chain.
func (e Error) Is(target error) bool {
	err, ok := e.object().(error)
	if !ok || err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() && err == target {
		return true
	}
	if x, ok := err.(interface{ Is(error) bool }); ok {
		return x.Is(target)
	}
	return false
}

// As finds the first match of target in the payload of the outermost layer and, if one is found, sets target to the
// payload and returns true. It is called by errors.As, which takes care of walking the chain.
func (e Error) As(target any) bool {
	obj := e.object()
	if obj == nil {
		return false
	}
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return false
	}
	if reflect.TypeOf(obj).AssignableTo(val.Type().Elem()) {
		val.Elem().Set(reflect.ValueOf(obj))
		return true
	}
	if x, ok := obj.(interface{ As(any) bool }); ok {
		return x.As(target)
	}
	return false
}

// object returns the payload of the outermost layer, or its message for context layers.
func (e Error) object() any {
	h := e.header()
	if h == nil {
		return nil
	}
	return h.vtable.object(h)
}
