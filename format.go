package wallee

import (
	"fmt"
	"io"
	"strings"

	gostack "github.com/eluv-io/stack"
)

// Format implements fmt.Formatter:
//
//	%s, %v  the message of the outermost layer
//	%+s     the messages of the whole chain, separated by ": "
//	%#v     "location: payload" of the outermost layer
//	%+v     like %#v, followed by the causes and the backtrace
//	%q      the quoted message of the outermost layer
func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case s.Flag('+'):
			e.writeDebug(s, true)
		case s.Flag('#'):
			e.writeDebug(s, false)
		default:
			e.writeDisplay(s, false)
		}
	case 's':
		e.writeDisplay(s, s.Flag('+'))
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(wallee.Error=%s)", verb, e.Error())
	}
}

// GoString implements fmt.GoStringer and returns the same as %#v.
func (e Error) GoString() string {
	sb := &strings.Builder{}
	e.writeDebug(sb, false)
	return sb.String()
}

func (e Error) writeDisplay(w io.Writer, alternate bool) {
	if e.IsZero() {
		return
	}
	_, _ = io.WriteString(w, e.Error())
	if !alternate {
		return
	}
	c := e.Chain()
	c.Next()
	for cause := range c.All() {
		_, _ = io.WriteString(w, ": ")
		_, _ = io.WriteString(w, cause.Error())
	}
}

func (e Error) writeDebug(w io.Writer, alternate bool) {
	h := e.header()
	if h == nil {
		return
	}
	writeLayer(w, h)
	if !alternate {
		return
	}

	c := e.Chain()
	c.Next()
	if n := c.Len(); n > 0 {
		_, _ = io.WriteString(w, "\n\nCaused by:")
		i := 0
		for cause := range c.All() {
			_, _ = io.WriteString(w, "\n")
			ind := &indented{w: w, number: -1}
			if n > 1 {
				ind.number = i
			}
			writeCause(ind, cause)
			i++
		}
	}

	if PrintBacktrace {
		if trace := e.coalescedBacktrace(); len(trace) > 0 {
			_, _ = io.WriteString(w, "\n\nStack backtrace:\n")
			printBacktrace(w, trace)
		}
	}
}

// writeLayer writes the location and the Go-syntax payload of a single layer.
func writeLayer(w io.Writer, h *errorHeader) {
	if !h.location.IsZero() {
		_, _ = io.WriteString(w, h.location.String())
		_, _ = io.WriteString(w, ": ")
	}
	h.vtable.debug(h, w)
}

func writeCause(w io.Writer, cause error) {
	if e, ok := cause.(Error); ok {
		if h := e.header(); h != nil {
			writeLayer(w, h)
		}
		return
	}
	_, _ = io.WriteString(w, cause.Error())
}

// coalescedBacktrace returns the merged backtraces of all errors in the chain.
func (e Error) coalescedBacktrace() gostack.CallStack {
	var bts []*Backtrace
	for err := range e.Chain().All() {
		bt, ok := err.(backtracer)
		if !ok || isNilPointer(bt) {
			continue
		}
		b := bt.Backtrace()
		if b == nil || (len(bts) > 0 && bts[len(bts)-1] == b) {
			continue
		}
		bts = append(bts, b)
	}
	return coalesceBacktraces(bts)
}

// indented writes the entries of the "Caused by" list: the first line is prefixed with the right-aligned entry number
// (or four spaces if number is negative), continuation lines are indented to the same column.
type indented struct {
	w       io.Writer
	number  int
	started bool
}

func (ind *indented) Write(p []byte) (int, error) {
	for i, line := range strings.Split(string(p), "\n") {
		var err error
		switch {
		case !ind.started:
			ind.started = true
			if ind.number >= 0 {
				_, err = fmt.Fprintf(ind.w, "%5d: ", ind.number)
			} else {
				_, err = io.WriteString(ind.w, "    ")
			}
		case i > 0:
			if ind.number >= 0 {
				_, err = io.WriteString(ind.w, "\n       ")
			} else {
				_, err = io.WriteString(ind.w, "\n    ")
			}
		}
		if err == nil {
			_, err = io.WriteString(ind.w, line)
		}
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
