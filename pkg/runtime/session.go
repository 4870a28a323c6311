package runtime

import (
	"github.com/google/uuid"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/log"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// CreateSession creates the single session. The session starts IDLE and
// moves to READY immediately.
func (r *Runtime) CreateSession(info *SessionCreateInfo) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrCreateSession")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if info == nil {
		return result.ValidationFailure
	}
	if err := checkType(info.Type, TypeSessionCreateInfo); err != nil {
		return err
	}
	c.arg("systemId", info.SystemID)
	if info.SystemID != SystemID {
		return result.SystemInvalid
	}
	if r.sessionCreated {
		return result.LimitReached
	}

	if r.settings.RecenterOnStartup {
		if err := r.hmd.RecenterTrackingOrigin(); err != nil {
			return r.fail("RecenterTrackingOrigin", err)
		}
	}
	status, err := r.hmd.Status()
	if err != nil {
		return r.fail("Status", err)
	}

	r.sessionID = uuid.NewString()
	r.sessionCreated = true
	r.sessionBegun = false
	r.sessionStopping = false
	r.sessionExiting = false
	r.framesCompleted = 0
	r.status = status
	r.sessionEvents = nil

	for _, side := range []xrpath.Side{xrpath.SideLeft, xrpath.SideRight} {
		r.controllerActive[side] = false
		r.controllerType[side] = ""
		r.rebind(side)
	}
	r.lastForced = r.settings.Forced()
	r.registry.DetachAll()
	r.profileDirty = false
	r.recenterHeld = false
	r.recenterFired = false

	r.logger.Info("session created", "session", r.sessionID)
	r.setState(SessionStateIdle, true)
	r.updateSessionState()
	return nil
}

// DestroySession destroys the session and all its spaces. Action sets and
// actions survive.
func (r *Runtime) DestroySession() (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrDestroySession")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if err := r.requireSession(); err != nil {
		return err
	}

	r.spaces.Clear()
	old := r.sessionState
	r.sessionCreated = false
	r.sessionBegun = false
	r.sessionStopping = false
	r.sessionExiting = false
	r.sessionState = SessionStateUnknown
	r.sessionEvents = nil
	r.traceState(log.StateEntitySession, old.String(), r.sessionState.String(), "destroyed")
	r.logger.Info("session destroyed", "session", r.sessionID)
	return nil
}

// BeginSession begins a READY session.
func (r *Runtime) BeginSession(info *SessionBeginInfo) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrBeginSession")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if info == nil {
		return result.ValidationFailure
	}
	if err := checkType(info.Type, TypeSessionBeginInfo); err != nil {
		return err
	}
	if err := r.requireSession(); err != nil {
		return err
	}
	c.arg("viewConfigurationType", info.PrimaryViewConfigurationType)
	switch info.PrimaryViewConfigurationType {
	case ViewConfigurationStereo:
	case ViewConfigurationQuad:
		if !r.extensions.QuadViews {
			return result.ViewConfigurationTypeUnsupported
		}
	default:
		return result.ViewConfigurationTypeUnsupported
	}
	if r.sessionBegun {
		return result.SessionRunning
	}
	if r.sessionState != SessionStateReady {
		return result.SessionNotReady
	}

	r.sessionBegun = true
	r.updateSessionState()
	return nil
}

// EndSession ends a STOPPING session.
func (r *Runtime) EndSession() (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrEndSession")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if err := r.requireSession(); err != nil {
		return err
	}
	if !r.sessionBegun {
		return result.SessionNotRunning
	}
	if r.sessionState != SessionStateStopping {
		return result.SessionNotStopping
	}

	r.sessionExiting = true
	r.updateSessionState()
	return nil
}

// RequestExitSession asks a running session to stop.
func (r *Runtime) RequestExitSession() (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrRequestExitSession")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if err := r.requireSession(); err != nil {
		return err
	}
	if !r.sessionBegun || r.sessionState == SessionStateIdle || r.sessionState == SessionStateExiting {
		return result.SessionNotRunning
	}

	r.sessionStopping = true
	r.updateSessionState()
	return nil
}

// FrameCompleted is called by the frame layer after a frame was submitted.
func (r *Runtime) FrameCompleted() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fatal != nil {
		return r.fatal
	}
	if !r.sessionCreated || !r.sessionBegun {
		return result.SessionNotRunning
	}
	r.framesCompleted++
	return r.refreshStatus()
}

// RefreshStatus reads the headset status and advances the session state.
func (r *Runtime) RefreshStatus() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fatal != nil {
		return r.fatal
	}
	if !r.sessionCreated {
		return nil
	}
	return r.refreshStatus()
}

func (r *Runtime) refreshStatus() error {
	status, err := r.hmd.Status()
	if err != nil {
		return r.fail("Status", err)
	}
	r.status = status
	if status.ShouldQuit && r.sessionBegun && !r.sessionStopping {
		r.logger.Info("headset requested exit")
		r.sessionStopping = true
	}
	r.updateSessionState()
	return nil
}

// State returns the current session state.
func (r *Runtime) State() SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionState
}

// setState changes the session state and queues an event on change, or
// always if force is set.
func (r *Runtime) setState(next SessionState, force bool) bool {
	old := r.sessionState
	if next == old && !force {
		return false
	}
	r.sessionState = next
	r.sessionEvents = append(r.sessionEvents, Event{
		Type:  TypeEventDataSessionStateChanged,
		State: next,
		Time:  hmd.SecondsToTime(r.hmd.TimeSeconds()),
	})
	r.traceState(log.StateEntitySession, old.String(), next.String(), "")
	r.logger.Debug("session state", "from", old.String(), "to", next.String())
	return true
}

// updateSessionState applies the transition rules until the state settles.
func (r *Runtime) updateSessionState() {
	for {
		next := r.sessionState
		switch r.sessionState {
		case SessionStateIdle:
			if r.sessionExiting {
				next = SessionStateExiting
			} else {
				next = SessionStateReady
			}
		case SessionStateReady:
			if r.framesCompleted > 0 {
				next = SessionStateSynchronized
			}
		case SessionStateSynchronized:
			if r.sessionStopping {
				next = SessionStateStopping
			} else if r.status.IsVisible {
				next = SessionStateVisible
			}
		case SessionStateVisible:
			if r.sessionStopping {
				next = SessionStateSynchronized
			} else if r.status.HmdMounted {
				next = SessionStateFocused
			}
		case SessionStateFocused:
			if r.sessionStopping || !r.status.HmdMounted {
				next = SessionStateVisible
			}
		case SessionStateStopping:
			if r.sessionExiting {
				next = SessionStateIdle
			}
		}
		if !r.setState(next, false) {
			return
		}
	}
}

// PollEvent returns the next queued event: session state changes first,
// then interaction profile changes, then tracker connections.
func (r *Runtime) PollEvent() (ev Event, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fatal != nil {
		return Event{}, r.fatal
	}
	if r.sessionCreated {
		if err := r.refreshStatus(); err != nil {
			return Event{}, err
		}
	}

	if len(r.sessionEvents) > 0 {
		ev = r.sessionEvents[0]
		r.sessionEvents = r.sessionEvents[1:]
		return ev, nil
	}
	if r.profileDirty && r.sessionCreated {
		r.profileDirty = false
		return Event{Type: TypeEventDataInteractionProfileChanged}, nil
	}
	if serial, ok := r.trackers.popNotification(); ok {
		return Event{
			Type:     TypeEventDataViveTrackerConnected,
			Serial:   serial,
			RolePath: r.settings.TrackerRolePath(serial),
		}, nil
	}
	return Event{}, result.EventUnavailable
}

// rebind rebinds a hand to its cached controller type. Callers hold mu.
func (r *Runtime) rebind(side xrpath.Side) {
	cb := r.binder.RebindController(side, r.controllerType[side], r.settings.Forced(), r.settings.Offsets())
	old := r.bindings[side]
	r.bindings[side] = cb
	if cb.Profile != old.Profile {
		r.traceState(log.StateEntityController, old.Profile.String(), cb.Profile.String(), side.String())
		if r.registry.AnyAttached() {
			r.profileDirty = true
		}
	}
}

// ControllerPoses returns the grip, aim and hand poses of a hand relative
// to its controller.
func (r *Runtime) ControllerPoses(side xrpath.Side) action.ControllerBinding {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !side.IsHand() {
		return action.Unbound(profile.FamilyNone)
	}
	return r.bindings[side]
}

// Snapshot returns the input state latched by the last sync.
func (r *Runtime) Snapshot() hmd.InputState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.input
}
