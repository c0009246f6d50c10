package wallee

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndented(t *testing.T) {
	tests := []struct {
		number int
		writes []string
		want   string
	}{
		{number: -1, writes: []string{"abc"}, want: "    abc"},
		{number: 0, writes: []string{"abc"}, want: "    0: abc"},
		{number: 12, writes: []string{"abc"}, want: "   12: abc"},
		{number: -1, writes: []string{"a\nb"}, want: "    a\n    b"},
		{number: 3, writes: []string{"a\nb\n"}, want: "    3: a\n       b\n       "},
		{number: 1, writes: []string{"loc: ", "first\nsecond"}, want: "    1: loc: first\n       second"},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.number, test.writes), func(t *testing.T) {
			sb := &strings.Builder{}
			ind := &indented{w: sb, number: test.number}
			for _, s := range test.writes {
				n, err := ind.Write([]byte(s))
				require.NoError(t, err)
				require.Equal(t, len(s), n)
			}
			require.Equal(t, test.want, sb.String())
		})
	}
}

func TestVtableCache(t *testing.T) {
	require.Same(t, adhocVtable[string](), adhocVtable[string]())
	require.NotSame(t, adhocVtable[string](), contextVtable[string]())
	require.Same(t, errorVtable[error](K.Boxed), errorVtable[error](K.Boxed))
	require.Equal(t, errorType, errorVtable[error](K.Boxed).typ)
	require.Equal(t, K.Boxed, kindOf[error]())
	require.Equal(t, K.Standard, kindOf[*nilError]())
}

func TestDowncast_recordUnchanged(t *testing.T) {
	e := Msg("oh no!").Context("it failed")
	vt := e.inner.vtable
	loc := e.inner.location

	_, ok := Downcast[string](e)
	require.True(t, ok)
	require.Same(t, vt, e.inner.vtable)
	require.Equal(t, loc, e.inner.location)
	require.Equal(t, "oh no!", e.Source().Error())
}
