package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/result"
)

// drain polls every queued event.
func drain(t *testing.T, rt *Runtime) []Event {
	t.Helper()
	var out []Event
	for {
		ev, err := rt.PollEvent()
		if err == result.EventUnavailable {
			return out
		}
		require.NoError(t, err)
		out = append(out, ev)
	}
}

func states(events []Event) []SessionState {
	var out []SessionState
	for _, ev := range events {
		if ev.Type == TypeEventDataSessionStateChanged {
			out = append(out, ev.State)
		}
	}
	return out
}

func TestSessionLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	h.createSession()
	assert.Equal(t, SessionStateReady, h.rt.State())
	assert.Equal(t, 1, h.dev.Recenters())

	h.focus()
	assert.Equal(t, []SessionState{
		SessionStateIdle,
		SessionStateReady,
		SessionStateSynchronized,
		SessionStateVisible,
		SessionStateFocused,
	}, states(drain(t, h.rt)))

	require.NoError(t, h.rt.RequestExitSession())
	assert.Equal(t, SessionStateStopping, h.rt.State())
	require.NoError(t, h.rt.EndSession())
	assert.Equal(t, SessionStateExiting, h.rt.State())
	assert.Equal(t, []SessionState{
		SessionStateVisible,
		SessionStateSynchronized,
		SessionStateStopping,
		SessionStateIdle,
		SessionStateExiting,
	}, states(drain(t, h.rt)))
}

func TestSessionEventsCarryHeadsetTime(t *testing.T) {
	h := newHarness(t, nil)
	h.createSession()
	events := drain(t, h.rt)
	require.NotEmpty(t, events)
	assert.Equal(t, hmd.SecondsToTime(1), events[0].Time)
}

func TestCreateSessionChecks(t *testing.T) {
	h := newHarness(t, nil)

	assert.Equal(t, result.ValidationFailure, h.rt.CreateSession(nil))
	assert.Equal(t, result.ValidationFailure, h.rt.CreateSession(&SessionCreateInfo{Type: TypeSessionBeginInfo, SystemID: SystemID}))
	assert.Equal(t, result.SystemInvalid, h.rt.CreateSession(&SessionCreateInfo{Type: TypeSessionCreateInfo, SystemID: 7}))

	h.createSession()
	assert.Equal(t, result.LimitReached, h.rt.CreateSession(&SessionCreateInfo{Type: TypeSessionCreateInfo, SystemID: SystemID}))
}

func TestCreateSessionWithoutRecenter(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.Settings.RecenterOnStartup = false })
	h.createSession()
	assert.Zero(t, h.dev.Recenters())
}

func TestBeginSessionChecks(t *testing.T) {
	h := newHarness(t, nil)
	begin := func(v ViewConfigurationType) error {
		return h.rt.BeginSession(&SessionBeginInfo{Type: TypeSessionBeginInfo, PrimaryViewConfigurationType: v})
	}

	assert.Equal(t, result.HandleInvalid, begin(ViewConfigurationStereo))
	h.createSession()
	assert.Equal(t, result.ViewConfigurationTypeUnsupported, begin(ViewConfigurationQuad))
	assert.Equal(t, result.ViewConfigurationTypeUnsupported, begin(99))
	require.NoError(t, begin(ViewConfigurationStereo))
	assert.Equal(t, result.SessionRunning, begin(ViewConfigurationStereo))
}

func TestBeginSessionQuadViews(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.Extensions.QuadViews = true })
	h.createSession()
	require.NoError(t, h.rt.BeginSession(&SessionBeginInfo{
		Type:                         TypeSessionBeginInfo,
		PrimaryViewConfigurationType: ViewConfigurationQuad,
	}))
}

func TestEndSessionChecks(t *testing.T) {
	h := newHarness(t, nil)
	h.createSession()
	assert.Equal(t, result.SessionNotRunning, h.rt.EndSession())
	assert.Equal(t, result.SessionNotRunning, h.rt.RequestExitSession())

	h.focus()
	assert.Equal(t, result.SessionNotStopping, h.rt.EndSession())
}

func TestFrameCompletedNeedsRunningSession(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, result.SessionNotRunning, h.rt.FrameCompleted())
	h.createSession()
	assert.Equal(t, result.SessionNotRunning, h.rt.FrameCompleted())
}

func TestHeadsetStatusDrivesFocus(t *testing.T) {
	h := newHarness(t, nil)
	h.createSession()
	h.focus()
	drain(t, h.rt)

	h.dev.SetStatus(hmd.Status{IsVisible: true})
	require.NoError(t, h.rt.RefreshStatus())
	assert.Equal(t, SessionStateVisible, h.rt.State())

	h.dev.SetStatus(hmd.Status{IsVisible: true, HmdMounted: true})
	assert.Equal(t, []SessionState{SessionStateVisible, SessionStateFocused}, states(drain(t, h.rt)))
}

func TestHeadsetQuitStopsSession(t *testing.T) {
	h := newHarness(t, nil)
	h.createSession()
	h.focus()

	h.dev.SetStatus(hmd.Status{IsVisible: true, HmdMounted: true, ShouldQuit: true})
	require.NoError(t, h.rt.FrameCompleted())
	assert.Equal(t, SessionStateStopping, h.rt.State())
	require.NoError(t, h.rt.EndSession())
	assert.Equal(t, SessionStateExiting, h.rt.State())
}

func TestDestroySessionKeepsActions(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()
	h.createSession()
	h.attach()

	require.NoError(t, h.rt.DestroySession())
	assert.Equal(t, SessionStateUnknown, h.rt.State())
	assert.Equal(t, result.HandleInvalid, h.rt.DestroySession())

	// a new session starts with every set detached
	h.createSession()
	h.attach()
	g := h.rt.Graph()
	require.Len(t, g.Sets, 1)
	assert.True(t, g.Sets[0].Attached)
	assert.Len(t, g.Sets[0].Actions, 5)
}

func TestPollEventWithoutSession(t *testing.T) {
	h := newHarness(t, nil)
	_, err := h.rt.PollEvent()
	assert.Equal(t, result.EventUnavailable, err)
}
