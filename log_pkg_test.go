package wallee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStacktraceToArray(t *testing.T) {
	tests := []struct {
		stacktrace string
		want       []string
	}{
		{
			stacktrace: "",
			want:       []string{},
		},
		{
			stacktrace: "\t  \t  ",
			want:       []string{},
		},
		{
			stacktrace: "abc",
			want:       []string{"abc"},
		},
		{
			stacktrace: "\n",
			want:       []string{},
		},
		{
			stacktrace: "\t\n\t \t",
			want:       []string{},
		},
		{
			stacktrace: "a\nb\nc",
			want:       []string{"a", "b", "c"},
		},
		{
			stacktrace: "\ta\n   b   \t \n\tc\n\n\t\n",
			want:       []string{"a", "b", "c"},
		},
		{
			stacktrace: "\tgithub.com/eluv-io/wallee-go/backtrace_with_long_filename_test.go:6 createErrorWithExtraLongFilename()\n" +
				"\tgithub.com/eluv-io/wallee-go/backtrace_test.go:100                  func4()\n" +
				"\tgithub.com/eluv-io/wallee-go/backtrace_test.go:96                   T.func3()\n" +
				"\tgithub.com/eluv-io/wallee-go/backtrace_test.go:45                   TestBacktrace.func1()\n",
			want: []string{
				"github.com/eluv-io/wallee-go/backtrace_with_long_filename_test.go:6 createErrorWithExtraLongFilename()",
				"github.com/eluv-io/wallee-go/backtrace_test.go:100                  func4()",
				"github.com/eluv-io/wallee-go/backtrace_test.go:96                   T.func3()",
				"github.com/eluv-io/wallee-go/backtrace_test.go:45                   TestBacktrace.func1()",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.stacktrace, func(t *testing.T) {
			res := stacktraceToArray(test.stacktrace)
			require.Equal(t, test.want, res)
		})
	}
}
