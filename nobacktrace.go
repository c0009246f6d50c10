//go:build errnostack

package wallee

import (
	"io"

	gostack "github.com/eluv-io/stack"
)

// Backtrace is a noop implementation that disables backtrace capturing & printing when the errnostack build tag is
// set. See backtrace.go for further information.
type Backtrace struct{}

func captureBacktrace(int) *Backtrace                   { return nil }
func (b *Backtrace) Status() BacktraceStatus            { return BacktraceUnsupported }
func (b *Backtrace) Frames() gostack.CallStack          { return nil }
func (b *Backtrace) String() string                     { return "" }
func coalesceBacktraces([]*Backtrace) gostack.CallStack { return nil }
func printBacktrace(io.Writer, gostack.CallStack)       {}
