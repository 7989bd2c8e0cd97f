package cmdhelper_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/nfbio/mulled/pkg/cmdhelper"
)

func runWithArgs(t *testing.T, before cmdhelper.ActionFunc, args ...string) error {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, before(ctx, cmd)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error { return nil },
	}
	return cmd.Run(t.Context(), append([]string{"test"}, args...))
}

func TestExactArgs(t *testing.T) {
	assert.NoError(t, runWithArgs(t, cmdhelper.ExactArgs(1), "one"))
	assert.Error(t, runWithArgs(t, cmdhelper.ExactArgs(1)))
	assert.Error(t, runWithArgs(t, cmdhelper.ExactArgs(1), "one", "two"))
}

func TestMinimumNArgs(t *testing.T) {
	assert.NoError(t, runWithArgs(t, cmdhelper.MinimumNArgs(1), "one"))
	assert.NoError(t, runWithArgs(t, cmdhelper.MinimumNArgs(1), "one", "two"))
	assert.Error(t, runWithArgs(t, cmdhelper.MinimumNArgs(1)))
}

func TestNoArgs(t *testing.T) {
	assert.NoError(t, runWithArgs(t, cmdhelper.NoArgs()))
	assert.Error(t, runWithArgs(t, cmdhelper.NoArgs(), "one"))
}

func TestFprintf(t *testing.T) {
	buf := &bytes.Buffer{}
	cmdhelper.Fprintf(buf, "hello %s", "world")
	assert.Equal(t, "hello world\n", buf.String())

	buf.Reset()
	cmdhelper.Fprintf(buf, "already terminated\n")
	assert.Equal(t, "already terminated\n", buf.String())
}

func TestPrettifyJSON(t *testing.T) {
	got, err := cmdhelper.PrettifyJSON(map[string]string{"key": "value"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key": "value"}`, string(got))

	got, err = cmdhelper.PrettifyJSON(`{"key":"value"}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"key\": \"value\"\n}", string(got))
}
