package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_PlaysUntilExtinction(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	args := []string{"-rows", "3", "-cols", "3", "-interval", "1ms", "-seed", "4", "-log-level", "info", "-log-format", "json"}
	err := run(context.Background(), strings.NewReader("100\n"), out, logs, args)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Game Over!")
	require.Contains(t, logs.String(), `"msg":"All cells died."`)
}
