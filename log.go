package wallee

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// MarshalZerologObject implements zerolog.LogObjectMarshaler, so an Error can be logged as structured object:
//
//	log.Error().Object("error", err).Msg("request failed")
//
// The object carries the message, kind and location of the outermost layer, the messages of all causes and - if
// PrintBacktrace is enabled - the coalesced backtrace as array of frames.
func (e Error) MarshalZerologObject(ev *zerolog.Event) {
	h := e.header()
	if h == nil {
		return
	}
	ev.Str("message", h.vtable.display(h))
	ev.Str("kind", h.vtable.kind.String())
	if !h.location.IsZero() {
		ev.Str("location", h.location.String())
	}

	c := e.Chain()
	c.Next()
	var causes []string
	for cause := range c.All() {
		causes = append(causes, cause.Error())
	}
	if len(causes) > 0 {
		ev.Strs("causes", causes)
	}

	if PrintBacktrace {
		if trace := e.coalescedBacktrace(); len(trace) > 0 {
			sb := &strings.Builder{}
			printBacktrace(sb, trace)
			ev.Strs("backtrace", stacktraceToArray(sb.String()))
		}
	}
}

// stacktraceToArray splits a printed backtrace into its lines, trimming whitespace and dropping empty lines.
func stacktraceToArray(s string) []string {
	// trim empty lines or lines containing only whitespace
	s = strings.Trim(s, "\n\t ")
	if s == "" {
		return []string{}
	}

	res := make([]string, 0, strings.Count(s, "\n")+1)
	for _, line := range strings.Split(s, "\n") {
		line = strings.Trim(line, "\t\n ")
		if line != "" {
			res = append(res, line)
		}
	}
	return res
}

// LogEvent adds err to the given event: Errors are added as structured object, other errors with zerolog's Err().
func LogEvent(ev *zerolog.Event, err error) *zerolog.Event {
	if e, ok := asError(err); ok && !e.IsZero() {
		return ev.Object(zerolog.ErrorFieldName, e)
	}
	return ev.Err(err)
}

// Ignore simply ignores a potential error returned by the given function.
//
// Useful in defer statements where the deferred function returns an error, i.e.
//
//	defer writer.Close()
//
// can be written as
//
//	defer wallee.Ignore(writer.Close)
func Ignore(f func() error) {
	if f == nil {
		return
	}
	_ = f()
}

// Log calls the given function and logs the error if any. Prints errors to stdout if logger is nil.
//
// Useful in defer statements where the deferred function returns an error, i.e.
//
//	defer wallee.Log(writer.Close, &logger)
func Log(f func() error, logger *zerolog.Logger) {
	if f == nil {
		return
	}

	err := f()
	if err == nil {
		return
	}

	msg := "wallee.Log function call returned error"
	fnName := "unknown"
	if ffp := runtime.FuncForPC(reflect.ValueOf(f).Pointer()); ffp != nil {
		fnName = ffp.Name()
	}

	if logger == nil {
		fmt.Printf("%s: function=%s error=%s\n", msg, fnName, err)
		return
	}
	LogEvent(logger.Error().Str("function", fnName), err).Msg(msg)
}
