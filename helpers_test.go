package wallee_test

import (
	"github.com/eluv-io/wallee-go"
)

func enableBacktraces() func() {
	cb := wallee.CaptureBacktrace()
	pb := wallee.PrintBacktrace
	pbp := wallee.PrintBacktracePretty
	wallee.SetCaptureBacktrace(true)
	wallee.PrintBacktrace = true
	wallee.PrintBacktracePretty = true
	return func() {
		wallee.SetCaptureBacktrace(cb)
		wallee.PrintBacktrace = pb
		wallee.PrintBacktracePretty = pbp
	}
}
