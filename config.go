package wallee

import (
	"os"
	"strconv"
	"sync/atomic"
)

// BacktraceEnv is the environment variable that sets the initial value of CaptureBacktrace. Any value accepted by
// strconv.ParseBool is honored, capturing stays enabled otherwise.
const BacktraceEnv = "WALLEE_BACKTRACE"

var backtraceEnabled atomic.Bool

func init() {
	backtraceEnabled.Store(backtraceFromEnv())
}

func backtraceFromEnv() bool {
	if v, ok := os.LookupEnv(BacktraceEnv); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return true
}

// SetCaptureBacktrace enables or disables capturing of backtraces for Errors created from now on.
func SetCaptureBacktrace(b bool) {
	backtraceEnabled.Store(b)
}

// CaptureBacktrace returns whether backtraces are captured for newly created Errors.
func CaptureBacktrace() bool {
	return backtraceEnabled.Load()
}

// PrintBacktrace controls whether backtraces are printed with the %+v verb and logged with zerolog.
var PrintBacktrace = true

// PrintBacktracePretty enables additional formatting of backtraces by aligning functions to the longest source
// filename.
//
// Pretty print:
//
//	github.com/eluv-io/wallee-go/backtrace_test.go:21 createError()
//	github.com/eluv-io/wallee-go/backtrace_test.go:34 TestBacktrace()
//	testing/testing.go:1690                           tRunner()
//
// Regular:
//
//	github.com/eluv-io/wallee-go/backtrace_test.go:21	createError()
//	github.com/eluv-io/wallee-go/backtrace_test.go:34	TestBacktrace()
//	testing/testing.go:1690	tRunner()
var PrintBacktracePretty = true

// BacktraceStatus describes the state of an Error's backtrace.
type BacktraceStatus int

const (
	// BacktraceUnsupported is reported when the library was built with the errnostack tag.
	BacktraceUnsupported BacktraceStatus = iota
	// BacktraceDisabled is reported when no backtrace was captured.
	BacktraceDisabled
	// BacktraceCaptured is reported when a backtrace is available.
	BacktraceCaptured
)

func (s BacktraceStatus) String() string {
	switch s {
	case BacktraceUnsupported:
		return "unsupported"
	case BacktraceDisabled:
		return "disabled"
	case BacktraceCaptured:
		return "captured"
	}
	return "BacktraceStatus(" + strconv.Itoa(int(s)) + ")"
}
