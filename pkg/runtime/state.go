package runtime

import (
	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// stateAction runs the checks shared by the action state and haptic entry
// points and returns the action and its subaction path string.
func (r *Runtime) stateAction(c *call, h action.Handle, typ action.Type, sub xrpath.Path) (*action.Action, string, error) {
	c.arg("action", h)
	if err := r.requireSession(); err != nil {
		return nil, "", err
	}
	a, ok := r.registry.Action(h)
	if !ok {
		return nil, "", result.HandleInvalid
	}
	if a.Type != typ {
		return nil, "", result.ActionTypeMismatch
	}
	if !a.Set.Attached() {
		return nil, "", result.ActionSetNotAttached
	}
	subPath, err := r.subactionString(sub, a.HasSubactionPath)
	if err != nil {
		return nil, "", err
	}
	if subPath != "" {
		c.arg("subaction", subPath)
	}
	return a, subPath, nil
}

// GetActionStateBoolean returns the combined state of a boolean action.
func (r *Runtime) GetActionStateBoolean(info *ActionStateGetInfo) (st action.BooleanState, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrGetActionStateBoolean")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return st, r.fatal
	}
	if info == nil {
		return st, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionStateGetInfo); err != nil {
		return st, err
	}
	a, sub, err := r.stateAction(c, info.Action, action.TypeBooleanInput, info.SubactionPath)
	if err != nil {
		return st, err
	}
	st = a.BooleanState(sub, presence{r})
	c.arg("state", st.CurrentState)
	return st, nil
}

// GetActionStateFloat returns the combined state of a float action.
func (r *Runtime) GetActionStateFloat(info *ActionStateGetInfo) (st action.FloatState, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrGetActionStateFloat")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return st, r.fatal
	}
	if info == nil {
		return st, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionStateGetInfo); err != nil {
		return st, err
	}
	a, sub, err := r.stateAction(c, info.Action, action.TypeFloatInput, info.SubactionPath)
	if err != nil {
		return st, err
	}
	st = a.FloatState(sub, presence{r}, r.settings.Deadzone())
	c.arg("state", st.CurrentState)
	return st, nil
}

// GetActionStateVector2f returns the combined state of a 2-D action.
func (r *Runtime) GetActionStateVector2f(info *ActionStateGetInfo) (st action.Vector2fState, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrGetActionStateVector2f")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return st, r.fatal
	}
	if info == nil {
		return st, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionStateGetInfo); err != nil {
		return st, err
	}
	a, sub, err := r.stateAction(c, info.Action, action.TypeVector2fInput, info.SubactionPath)
	if err != nil {
		return st, err
	}
	st = a.Vector2fState(sub, presence{r}, r.settings.Deadzone())
	c.arg("state", st.CurrentState)
	return st, nil
}

// GetActionStatePose reports whether a pose action is bound to a device
// that produces data.
func (r *Runtime) GetActionStatePose(info *ActionStateGetInfo) (st ActionStatePose, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrGetActionStatePose")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return st, r.fatal
	}
	if info == nil {
		return st, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionStateGetInfo); err != nil {
		return st, err
	}
	a, sub, err := r.stateAction(c, info.Action, action.TypePoseInput, info.SubactionPath)
	if err != nil {
		return st, err
	}
	st.IsActive = a.PoseActive(sub, presence{r})
	c.arg("active", st.IsActive)
	return st, nil
}
