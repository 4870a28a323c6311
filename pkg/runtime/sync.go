package runtime

import (
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// recenterButtons are the buttons that, held with the trigger, recenter
// the tracking origin.
const recenterButtons = hmd.ButtonSystem | hmd.ButtonApplicationMenu

// SyncActions latches the hardware input, detects controller and tracker
// changes and runs the built-in gestures.
func (r *Runtime) SyncActions(info *ActionsSyncInfo) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrSyncActions")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if info == nil {
		return result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionsSyncInfo); err != nil {
		return err
	}
	c.arg("sets", len(info.ActiveActionSets))
	if err := r.requireSession(); err != nil {
		return err
	}

	var doSide [2]bool
	for _, active := range info.ActiveActionSets {
		set, ok := r.registry.Set(active.ActionSet)
		if !ok {
			return result.HandleInvalid
		}
		if !set.Attached() {
			return result.ActionSetNotAttached
		}
		if active.SubactionPath == xrpath.Null {
			doSide[xrpath.SideLeft] = true
			doSide[xrpath.SideRight] = true
			continue
		}
		if !set.HasSubactionPath(active.SubactionPath) {
			return result.PathUnsupported
		}
		sub, _ := r.pathString(active.SubactionPath)
		if side := xrpath.SideOf(sub, false); side.IsHand() {
			doSide[side] = true
		}
	}
	if r.sessionState != SessionStateFocused {
		return result.SessionNotFocused
	}

	input, err := r.hmd.InputState()
	if err != nil {
		return r.fail("InputState", err)
	}
	r.input = input
	for _, set := range r.registry.Attached() {
		set.Snapshot = input
	}

	forced := r.settings.Forced()
	recenter := false
	for _, side := range []xrpath.Side{xrpath.SideLeft, xrpath.SideRight} {
		if !doSide[side] {
			continue
		}
		if err := r.detectController(side, forced); err != nil {
			return err
		}
		recenter = recenter || (input.Pressed(side, recenterButtons) && input.Pressed(side, hmd.ButtonTrigger))
	}
	r.lastForced = forced

	if err := r.syncTrackers(); err != nil {
		return err
	}
	r.traceSnapshot()

	return r.handleRecenterGesture(recenter, input.TimeInSeconds)
}

// detectController re-reads the controller type of a hand and rebinds it
// when the type or the forced profile changed.
func (r *Runtime) detectController(side xrpath.Side, forced profile.Forced) error {
	typ, err := r.hmd.ControllerType(side)
	if err != nil {
		return r.fail("ControllerType", err)
	}
	r.controllerActive[side] = typ != ""
	if typ != "" {
		if debug := r.settings.DebugController(); debug != "" {
			typ = debug
		}
	}

	if typ == r.controllerType[side] && forced == r.lastForced {
		return nil
	}
	if typ != "" {
		r.logger.Info("controller detected", "side", side.String(), "type", typ, "forced", forced.String())
	}
	r.controllerType[side] = typ
	r.rebind(side)
	return nil
}

// handleRecenterGesture recenters once the combination has been held for
// RecenterHold. It fires once per hold.
func (r *Runtime) handleRecenterGesture(pressed bool, now float64) error {
	if !pressed {
		r.recenterHeld = false
		r.recenterFired = false
		return nil
	}
	if !r.recenterHeld {
		r.recenterHeld = true
		r.recenterPressedAt = now
		return nil
	}
	if r.recenterFired || now-r.recenterPressedAt <= RecenterHold.Seconds() {
		return nil
	}
	r.recenterFired = true
	r.logger.Info("recentering tracking origin")
	if err := r.hmd.RecenterTrackingOrigin(); err != nil {
		return r.fail("RecenterTrackingOrigin", err)
	}
	return nil
}
