package wallee_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eluv-io/wallee-go"
)

func f() wallee.Error {
	return wallee.New(ioError{Kind: "Other", Msg: "oh no!"})
}

func g() wallee.Error {
	return f().Context("f failed")
}

func h() wallee.Error {
	return g().Context("g failed")
}

func disableBacktracePrinting() func() {
	pb := wallee.PrintBacktrace
	wallee.PrintBacktrace = false
	return func() {
		wallee.PrintBacktrace = pb
	}
}

func TestFormat_Display(t *testing.T) {
	require.Equal(t, "g failed", fmt.Sprint(h()))
	require.Equal(t, "g failed", fmt.Sprintf("%s", h()))
	require.Equal(t, "g failed", fmt.Sprintf("%v", h()))
	require.Equal(t, `"g failed"`, fmt.Sprintf("%q", h()))
	require.Equal(t, "oh no!", fmt.Sprint(f()))
}

func TestFormat_AltDisplay(t *testing.T) {
	require.Equal(t, "g failed: f failed: oh no!", fmt.Sprintf("%+s", h()))
	require.Equal(t, "f failed: oh no!", fmt.Sprintf("%+s", g()))
	require.Equal(t, "oh no!", fmt.Sprintf("%+s", f()))

	// foreign causes are included
	e := wallee.New(fmt.Errorf("read: %w", fmt.Errorf("connect: %w", ioError{Msg: "unreachable"})))
	require.Equal(t, "read: connect: unreachable: connect: unreachable: unreachable", fmt.Sprintf("%+s", e))
}

func TestFormat_Debug(t *testing.T) {
	e := h()
	require.Equal(t, e.Location().String()+`: "g failed"`, fmt.Sprintf("%#v", e))
	require.Equal(t, fmt.Sprintf("%#v", e), e.GoString())

	e = f()
	require.Equal(t, e.Location().String()+`: wallee_test.ioError{Kind:"Other", Msg:"oh no!"}`, fmt.Sprintf("%#v", e))
}

func TestFormat_AltDebug(t *testing.T) {
	revert := disableBacktracePrinting()
	defer revert()

	e := h()
	locH := e.Location().String()
	locG := e.Source().(wallee.Error).Location().String()
	locF := e.Source().(wallee.Error).Source().(wallee.Error).Location().String()

	want := locH + `: "g failed"` + "\n" +
		"\n" +
		"Caused by:\n" +
		"    0: " + locG + `: "f failed"` + "\n" +
		"    1: " + locF + `: wallee_test.ioError{Kind:"Other", Msg:"oh no!"}`
	require.Equal(t, want, fmt.Sprintf("%+v", e))

	e = g()
	want = e.Location().String() + `: "f failed"` + "\n" +
		"\n" +
		"Caused by:\n" +
		"    " + locF + `: wallee_test.ioError{Kind:"Other", Msg:"oh no!"}`
	require.Equal(t, want, fmt.Sprintf("%+v", e))

	e = f()
	require.Equal(t, fmt.Sprintf("%#v", e), fmt.Sprintf("%+v", e))
}

func TestFormat_AltDebugMultiline(t *testing.T) {
	revert := disableBacktracePrinting()
	defer revert()

	e := wallee.New(fmt.Errorf("wrapper: %w", multiline{})).Context("outer")
	lines := strings.Split(fmt.Sprintf("%+v", e), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "Caused by:", lines[2])
	require.True(t, strings.HasPrefix(lines[3], "    0: "), lines[3])
	require.True(t, strings.HasSuffix(lines[3], `: &fmt.wrapError{msg:"wrapper: first\nsecond", err:wallee_test.multiline{}}`), lines[3])
	require.Equal(t, "    1: first", lines[4])
	require.Equal(t, "       second", lines[5])
}

type multiline struct{}

func (multiline) Error() string {
	return "first\nsecond"
}

func TestFormat_BadVerb(t *testing.T) {
	require.Equal(t, "%!d(wallee.Error=oh no!)", fmt.Sprintf("%d", f()))
}
