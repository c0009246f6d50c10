//go:build !errnostack

package wallee

import (
	"fmt"
	"io"
	"strings"
	"sync"

	gostack "github.com/eluv-io/stack"
)

// Backtrace is the call stack captured when an Error was created.
type Backtrace struct {
	pcs   []uintptr         // the program counters returned by runtime.Callers()
	once  sync.Once         // guards resolving trace
	trace gostack.CallStack // the call stack - only filled in when needed.
}

// captureBacktrace captures the current call stack if capturing is enabled. With skip 0, the stack starts at the
// function calling captureBacktrace.
func captureBacktrace(skip int) *Backtrace {
	if !CaptureBacktrace() {
		return nil
	}
	// +1 removes captureBacktrace itself
	pcs := gostack.Callers(skip + 1)
	if len(pcs) == 0 {
		return nil
	}
	return &Backtrace{pcs: pcs}
}

// Status returns whether the backtrace was captured.
func (b *Backtrace) Status() BacktraceStatus {
	if b == nil || len(b.pcs) == 0 {
		return BacktraceDisabled
	}
	return BacktraceCaptured
}

// Frames returns the resolved call stack, runtime frames removed.
func (b *Backtrace) Frames() gostack.CallStack {
	if b == nil || len(b.pcs) == 0 {
		return nil
	}
	b.once.Do(func() {
		b.trace = gostack.TraceFrom(b.pcs).TrimRuntime()
	})
	return b.trace
}

// String returns the backtrace with one frame per line.
func (b *Backtrace) String() string {
	sb := &strings.Builder{}
	printBacktrace(sb, b.Frames())
	return sb.String()
}

// coalesceBacktraces merges the backtraces of an error chain, outermost first, into a single call stack. Frames shared
// with the outer backtraces are only printed once.
func coalesceBacktraces(bts []*Backtrace) gostack.CallStack {
	var res gostack.CallStack
	for i := len(bts) - 1; i >= 0; i-- {
		res = combineCallStacks(bts[i].Frames(), res)
	}
	return res
}

// printBacktrace prints the given call stack, one frame per line.
func printBacktrace(w io.Writer, trace gostack.CallStack) {
	if PrintBacktracePretty {
		filenames := make([]string, len(trace))
		max := 0
		for i, call := range trace {
			filenames[i] = fmt.Sprintf("%+v", call)
			if fl := len(filenames[i]); max < fl {
				max = fl
			}
		}
		for i, call := range trace {
			_, _ = fmt.Fprintf(w, "\t%-*s %n()\n", max, filenames[i], call)
		}
		return
	}
	for _, call := range trace {
		_, _ = fmt.Fprintf(w, "\t%+v\t%[1]n()\n", call)
	}
}

// combineCallStacks prepends the frames of the inner stack c2 that are not shared with the outer stack c1.
func combineCallStacks(c1, c2 gostack.CallStack) gostack.CallStack {
	if c1 == nil {
		return c2
	}
	if c2 == nil {
		return c1
	}

	i := 0
	l1 := len(c1)
	l2 := len(c2)
	for ; i < l1 && i < l2; i++ {
		if !equivalent(c1[l1-1-i], c2[l2-1-i]) {
			break
		}
	}
	res := make(gostack.CallStack, l2-i+l1)
	copy(res, c2[:l2-i])
	copy(res[l2-i:], c1)
	return res
}

func equivalent(c1, c2 gostack.Call) bool {
	f1 := c1.Frame()
	f2 := c2.Frame()
	// the PC differs for calls on the same line, e.g.
	//   return wallee.Context(doSomething(), "failed")
	return f1.Entry == f2.Entry &&
		f1.File == f2.File &&
		f1.Func == f2.Func &&
		f1.Function == f2.Function &&
		f1.Line == f2.Line
}
