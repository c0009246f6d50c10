package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/wallee-go"
)

func runDemo(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	logOut := &bytes.Buffer{}
	cmd := newRootCmd(out, logOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), logOut.String(), err
}

func TestProbe_success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	out, logs, err := runDemo(t, "probe", path, dir)
	require.NoError(t, err)
	require.Empty(t, out)
	require.Contains(t, logs, "all paths probed successfully")
}

func TestProbe_failure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	tests := []struct {
		format string
		want   []string
	}{
		{"display", []string{"layer 2\n"}},
		{"alternate", []string{"layer 2: layer 1: failed to open " + missing + ": open " + missing}},
		{"debug", []string{`probe.go:`, `: "layer 2"`}},
		{"alternate-debug", []string{"Caused by:", `    0: `, `"layer 1"`, `"failed to open ` + missing + `"`}},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			out, logs, err := runDemo(t, "probe", "--format", test.format, "--depth", "2", "--backtrace=false", missing)
			require.Error(t, err)
			for _, want := range test.want {
				require.Contains(t, out, want)
			}
			require.NotContains(t, out, "Stack backtrace")
			require.Contains(t, logs, "probe failed")
		})
	}
}

func TestProbe_invalidConfig(t *testing.T) {
	out, _, err := runDemo(t, "probe", "--format", "xml", "whatever")
	require.Error(t, err)
	require.Contains(t, out, "config validation failed")

	t.Setenv("WALLEE_DEMO_LOG_LEVEL", "loud")
	_, _, err = runDemo(t, "probe", "whatever")
	require.Error(t, err)
}

func TestDeepen(t *testing.T) {
	require.Nil(t, deepen(nil, 3))

	err := deepen(wallee.Msg("root"), 2)
	require.Equal(t, "layer 2", err.Error())
	require.Equal(t, 3, err.(wallee.Error).Chain().Len())
}

func TestProbe_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := probe(ctx, []string{"."}, zerolog.Nop())
	require.Error(t, err)
	require.True(t, strings.HasPrefix(render(err, "alternate"), "probe cancelled: context canceled"))
}
