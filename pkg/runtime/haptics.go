package runtime

import (
	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/result"
)

// hapticAction checks the haptic entry point arguments up to the set
// attachment.
func (r *Runtime) hapticAction(c *call, info *HapticActionInfo) (*action.Action, error) {
	if info == nil {
		return nil, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeHapticActionInfo); err != nil {
		return nil, err
	}
	c.arg("action", info.Action)
	if err := r.requireSession(); err != nil {
		return nil, err
	}
	a, ok := r.registry.Action(info.Action)
	if !ok {
		return nil, result.HandleInvalid
	}
	if a.Type != action.TypeVibrationOutput {
		return nil, result.ActionTypeMismatch
	}
	if !a.Set.Attached() {
		return nil, result.ActionSetNotAttached
	}
	return a, nil
}

// ApplyHapticFeedback pulses every device the action's haptic sources
// under the subaction path point at.
func (r *Runtime) ApplyHapticFeedback(info *HapticActionInfo, vibration *HapticVibration) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrApplyHapticFeedback")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if vibration == nil {
		return result.ValidationFailure
	}
	if err := checkType(vibration.Type, TypeHapticVibration); err != nil {
		return err
	}
	a, err := r.hapticAction(c, info)
	if err != nil {
		return err
	}
	if r.sessionState != SessionStateFocused {
		return result.SessionNotFocused
	}
	sub, err := r.subactionString(info.SubactionPath, a.HasSubactionPath)
	if err != nil {
		return err
	}
	c.arg("amplitude", vibration.Amplitude)

	if vibration.Amplitude <= 0 {
		return nil
	}
	for _, dev := range a.HapticTargets(sub, r.trackerIndex) {
		if err := r.hmd.TriggerHapticPulse(dev, vibration.Amplitude); err != nil {
			return r.fail("TriggerHapticPulse", err)
		}
	}
	return nil
}

// StopHapticFeedback validates a stop request. Pulses end by themselves so
// nothing reaches the hardware.
func (r *Runtime) StopHapticFeedback(info *HapticActionInfo) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrStopHapticFeedback")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	a, err := r.hapticAction(c, info)
	if err != nil {
		return err
	}
	if _, err := r.subactionString(info.SubactionPath, a.HasSubactionPath); err != nil {
		return err
	}
	if r.sessionState != SessionStateFocused {
		return result.SessionNotFocused
	}
	return nil
}
