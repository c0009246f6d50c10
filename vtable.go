package wallee

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"
	"unsafe"
)

// vtable is the dispatch table of an error record. It is bound to the payload type when the record is created and
// stored inside the record, which keeps the public Error handle a single pointer. A record's vtable never changes;
// records are released by the garbage collector once no Error refers to them.
type vtable struct {
	// kind is the variant of records using this table.
	kind Kind
	// typ is the type identity a downcast has to request to obtain the payload.
	typ reflect.Type
	// display returns the message of the layer.
	display func(h *errorHeader) string
	// debug writes the Go-syntax representation of the payload.
	debug func(h *errorHeader, w io.Writer)
	// cause returns the upstream cause or nil.
	cause func(h *errorHeader) error
	// backtrace returns a backtrace reported by the payload itself, if any.
	backtrace func(h *errorHeader) *Backtrace
	// object returns the payload (the message for context layers) as interface value.
	object func(h *errorHeader) any
	// downcast returns a pointer to the payload if target is its type identity, nil otherwise.
	downcast func(h *errorHeader, target reflect.Type) unsafe.Pointer
}

type vtableKey struct {
	kind Kind
	typ  reflect.Type
}

// vtables caches the dispatch tables per variant and payload type, so that each table is built only once.
var vtables sync.Map

func loadVtable(kind Kind, typ reflect.Type, build func() *vtable) *vtable {
	key := vtableKey{kind: kind, typ: typ}
	if vt, ok := vtables.Load(key); ok {
		return vt.(*vtable)
	}
	vt, _ := vtables.LoadOrStore(key, build())
	return vt.(*vtable)
}

// adhocVtable returns the table for messages of type M.
func adhocVtable[M any]() *vtable {
	typ := reflect.TypeFor[M]()
	return loadVtable(K.Adhoc, typ, func() *vtable {
		return &vtable{
			kind: K.Adhoc,
			typ:  typ,
			display: func(h *errorHeader) string {
				return fmt.Sprint(implOf[M](h).object)
			},
			debug: func(h *errorHeader, w io.Writer) {
				_, _ = fmt.Fprintf(w, "%#v", implOf[M](h).object)
			},
			cause:     noCause,
			backtrace: noBacktrace,
			object: func(h *errorHeader) any {
				return implOf[M](h).object
			},
			downcast: downcastObject[M](typ),
		}
	})
}

// errorVtable returns the table for error payloads of type E. Standard errors use their concrete type, boxed errors
// use the error interface type itself.
func errorVtable[E error](kind Kind) *vtable {
	typ := reflect.TypeFor[E]()
	return loadVtable(kind, typ, func() *vtable {
		return &vtable{
			kind: kind,
			typ:  typ,
			display: func(h *errorHeader) string {
				return implOf[E](h).object.Error()
			},
			debug: func(h *errorHeader, w io.Writer) {
				_, _ = fmt.Fprintf(w, "%#v", implOf[E](h).object)
			},
			cause: func(h *errorHeader) error {
				return errors.Unwrap(implOf[E](h).object)
			},
			backtrace: func(h *errorHeader) *Backtrace {
				if bt, ok := any(implOf[E](h).object).(backtracer); ok {
					return bt.Backtrace()
				}
				return nil
			},
			object: func(h *errorHeader) any {
				return implOf[E](h).object
			},
			downcast: downcastObject[E](typ),
		}
	})
}

// contextError is the payload of a context layer: the context message and the Error it was attached to.
type contextError[C any] struct {
	msg    C
	source Error
}

// contextVtable returns the table for context layers with messages of type C. A context layer downcasts to C only;
// reaching the source requires walking the chain.
func contextVtable[C any]() *vtable {
	typ := reflect.TypeFor[C]()
	return loadVtable(K.Context, typ, func() *vtable {
		return &vtable{
			kind: K.Context,
			typ:  typ,
			display: func(h *errorHeader) string {
				return fmt.Sprint(implOf[contextError[C]](h).object.msg)
			},
			debug: func(h *errorHeader, w io.Writer) {
				_, _ = fmt.Fprintf(w, "%#v", implOf[contextError[C]](h).object.msg)
			},
			cause: func(h *errorHeader) error {
				source := implOf[contextError[C]](h).object.source
				if source.IsZero() {
					return nil
				}
				return source
			},
			backtrace: func(h *errorHeader) *Backtrace {
				return implOf[contextError[C]](h).object.source.Backtrace()
			},
			object: func(h *errorHeader) any {
				return implOf[contextError[C]](h).object.msg
			},
			downcast: func(h *errorHeader, target reflect.Type) unsafe.Pointer {
				if target != typ {
					return nil
				}
				return unsafe.Pointer(&implOf[contextError[C]](h).object.msg)
			},
		}
	})
}

func downcastObject[E any](typ reflect.Type) func(h *errorHeader, target reflect.Type) unsafe.Pointer {
	return func(h *errorHeader, target reflect.Type) unsafe.Pointer {
		if target != typ {
			return nil
		}
		return objectPtr[E](h)
	}
}

func noCause(*errorHeader) error {
	return nil
}

func noBacktrace(*errorHeader) *Backtrace {
	return nil
}
