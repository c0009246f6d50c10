package wallee

import (
	"fmt"
	"strconv"

	gostack "github.com/eluv-io/stack"
)

// Location is the source position of the call that created an Error layer.
type Location struct {
	// File is the package-qualified path of the source file, e.g. "github.com/eluv-io/wallee-go/error_test.go".
	File string
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column, or 0 if unknown. The Go runtime does not report columns, so captured locations
	// always have a zero column.
	Column int
}

// IsZero returns true if the location is unknown.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String returns the location as "file:line" or "file:line:column" if the column is known.
func (l Location) String() string {
	if l.IsZero() {
		return ""
	}
	s := l.File + ":" + strconv.Itoa(l.Line)
	if l.Column > 0 {
		s += ":" + strconv.Itoa(l.Column)
	}
	return s
}

// callerLocation returns the location skip frames above the function calling callerLocation. With skip 0, it returns
// the line in that function where callerLocation is called, with 1 the line where that function was called, etc.
func callerLocation(skip int) Location {
	// +1 for callerLocation itself
	call := gostack.Caller(skip + 1)
	frame := call.Frame()
	if frame.PC == 0 && frame.File == "" {
		return Location{}
	}
	return Location{
		File: fmt.Sprintf("%+s", call),
		Line: frame.Line,
	}
}
