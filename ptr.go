package wallee

import (
	"unsafe"
)

// errorHeader is the type-independent part of an error record. Every record is allocated as an errorImpl[E] with the
// header as its first field, so a *errorHeader and the *errorImpl[E] it belongs to share the same address. Only the
// vtable knows E and is therefore the only code converting a header back to its record.
type errorHeader struct {
	vtable    *vtable
	location  Location
	backtrace *Backtrace
}

// errorImpl is the full heap record of an error layer with a payload of type E.
type errorImpl[E any] struct {
	errorHeader
	object E
}

// newRecord allocates the record for the given payload and returns a pointer to its header.
func newRecord[E any](object E, vt *vtable, location Location, backtrace *Backtrace) *errorHeader {
	impl := &errorImpl[E]{
		errorHeader: errorHeader{
			vtable:    vt,
			location:  location,
			backtrace: backtrace,
		},
		object: object,
	}
	return &impl.errorHeader
}

// implOf converts the header back to the record it is embedded in. The caller must guarantee that h was created by
// newRecord[E] - which is the case for all functions stored in the vtable of h.
func implOf[E any](h *errorHeader) *errorImpl[E] {
	return (*errorImpl[E])(unsafe.Pointer(h))
}

// objectPtr returns a pointer to the payload of the record as unsafe.Pointer.
func objectPtr[E any](h *errorHeader) unsafe.Pointer {
	return unsafe.Pointer(&implOf[E](h).object)
}
