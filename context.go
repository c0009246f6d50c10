package wallee

import (
	"fmt"
)

// Context wraps e with a string context message. The new layer records the caller's location, its source is e.
func (e Error) Context(msg string) Error {
	return addContext(e, msg, 1)
}

// Contextf is like Context with a message formatted according to the format specifier.
func (e Error) Contextf(format string, args ...any) Error {
	return addContext(e, fmt.Sprintf(format, args...), 1)
}

// AddContext wraps e with a context message of arbitrary type. Downcasting the returned Error to C yields msg.
func AddContext[C any](e Error, msg C) Error {
	return addContext(e, msg, 1)
}

func addContext[C any](e Error, msg C, skip int) Error {
	return Error{inner: newRecord(contextError[C]{msg: msg, source: e}, contextVtable[C](), callerLocation(skip+1), nil)}
}

// Context attaches the context message to err and returns the resulting Error. Returns nil if err is nil. An err that
// is not an Error is converted first, with the conversion recording the same location as the context layer.
//
//	if err := db.Ping(); err != nil {
//		return wallee.Context(err, "database unreachable")
//	}
func Context[C any](err error, msg C) error {
	if err == nil {
		return nil
	}
	return wrapContext(err, msg, 1)
}

// WithContext is like Context, but evaluates the context message lazily: f is only called if err is not nil.
func WithContext[C any](err error, f func() C) error {
	if err == nil {
		return nil
	}
	return wrapContext(err, f(), 1)
}

// ContextOK converts a missing value into an error: if ok is true, v is returned with a nil error. Otherwise, the
// returned error is an adhoc error with the context message attached.
//
//	port, err := wallee.ContextOK(ports[name], found, "no port configured")
func ContextOK[T any, C any](v T, ok bool, msg C) (T, error) {
	if ok {
		return v, nil
	}
	return v, addContext(newAdhoc(noneMessage, 1), msg, 1)
}

// WithContextOK is like ContextOK, but evaluates the context message lazily.
func WithContextOK[T any, C any](v T, ok bool, f func() C) (T, error) {
	if ok {
		return v, nil
	}
	return v, addContext(newAdhoc(noneMessage, 1), f(), 1)
}

// noneMessage is the message of the adhoc error created for missing values.
const noneMessage = "value is missing"

func wrapContext[C any](err error, msg C, skip int) Error {
	e, ok := asError(err)
	if !ok {
		e = newBoxed(err, skip+1)
	}
	return addContext(e, msg, skip+1)
}
