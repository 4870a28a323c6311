package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbridge/xrbridge-go/cmd/xrbridge-sim/interactive"
	"github.com/xrbridge/xrbridge-go/pkg/hmd/sim"
	"github.com/xrbridge/xrbridge-go/pkg/runtime"
)

func newApp(t *testing.T) (*interactive.App, *bytes.Buffer) {
	t.Helper()
	dev := sim.NewManual()
	rt, err := runtime.New(dev, runtime.DefaultConfig())
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return interactive.NewApp(rt, dev, out), out
}

func TestRunScript(t *testing.T) {
	app, out := newApp(t)
	script := `
# bring up a session
demo
session create
session begin
controller r knuckles
press r trigger
sync
state demo/fire@r
quit
state demo/nothing
`
	require.NoError(t, runScript(app, strings.NewReader(script)))
	assert.Contains(t, out.String(), "fire@/user/hand/right = true")
}

func TestRunScriptStopsOnError(t *testing.T) {
	app, _ := newApp(t)
	err := runScript(app, strings.NewReader("demo\n\nsession begin\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3: session begin")
}

func TestSetupLogging(t *testing.T) {
	logger := setupLogging("warn", io.Discard)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}
