package runtime

import (
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// StringToPath interns a path string.
func (r *Runtime) StringToPath(s string) (p xrpath.Path, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrStringToPath")
	defer func() { c.end(err) }()
	c.arg("path", s)

	if r.fatal != nil {
		return xrpath.Null, r.fatal
	}
	return r.paths.StringToPath(s)
}

// PathToString returns the string of a path. The required buffer size is
// always returned.
func (r *Runtime) PathToString(p xrpath.Path, capacity uint32) (s string, count uint32, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrPathToString")
	defer func() { c.end(err) }()
	c.arg("path", uint64(p))

	if r.fatal != nil {
		return "", 0, r.fatal
	}
	return r.paths.PathToString(p, capacity)
}

// CreateActionSet creates an action set.
func (r *Runtime) CreateActionSet(info *ActionSetCreateInfo) (h action.Handle, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrCreateActionSet")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return action.NullHandle, r.fatal
	}
	if info == nil {
		return action.NullHandle, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionSetCreateInfo); err != nil {
		return action.NullHandle, err
	}
	c.arg("name", info.ActionSetName)
	c.arg("priority", info.Priority)

	set, err := r.registry.CreateSet(info.ActionSetName, info.LocalizedActionSetName, info.Priority)
	if err != nil {
		return action.NullHandle, err
	}
	c.arg("handle", set.Handle)
	return set.Handle, nil
}

// DestroyActionSet destroys an action set and its actions.
func (r *Runtime) DestroyActionSet(h action.Handle) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrDestroyActionSet")
	defer func() { c.end(err) }()
	c.arg("handle", h)

	if r.fatal != nil {
		return r.fatal
	}
	return r.registry.DestroySet(h)
}

// CreateAction creates an action in a set.
func (r *Runtime) CreateAction(setHandle action.Handle, info *ActionCreateInfo) (h action.Handle, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrCreateAction")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return action.NullHandle, r.fatal
	}
	if info == nil {
		return action.NullHandle, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionCreateInfo); err != nil {
		return action.NullHandle, err
	}
	c.arg("set", setHandle)
	c.arg("name", info.ActionName)
	c.arg("type", info.ActionType)

	set, ok := r.registry.Set(setHandle)
	if !ok {
		return action.NullHandle, result.HandleInvalid
	}
	a, err := r.registry.CreateAction(set, info.ActionType, info.ActionName, info.LocalizedActionName, info.SubactionPaths)
	if err != nil {
		return action.NullHandle, err
	}
	c.arg("handle", a.Handle)
	return a.Handle, nil
}

// DestroyAction destroys an action. Spaces created on it keep resolving.
func (r *Runtime) DestroyAction(h action.Handle) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrDestroyAction")
	defer func() { c.end(err) }()
	c.arg("handle", h)

	if r.fatal != nil {
		return r.fatal
	}
	return r.registry.DestroyAction(h)
}

// SuggestInteractionProfileBindings replaces the suggested bindings of an
// interaction profile.
func (r *Runtime) SuggestInteractionProfileBindings(info *InteractionProfileSuggestedBinding) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrSuggestInteractionProfileBindings")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if info == nil {
		return result.ValidationFailure
	}
	if err := checkType(info.Type, TypeInteractionProfileSuggestedBinding); err != nil {
		return err
	}
	c.arg("profile", r.paths.Describe(info.InteractionProfile))
	c.arg("count", len(info.SuggestedBindings))
	if len(info.SuggestedBindings) == 0 {
		return result.ValidationFailure
	}
	if r.registry.AnyAttached() {
		return result.ActionSetsAlreadyAttached
	}

	profilePath, ok := r.pathString(info.InteractionProfile)
	if !ok {
		return result.PathInvalid
	}
	p, known := profile.Parse(profilePath)

	switch {
	case known && p == profile.ProfileEyeGaze:
		return r.suggestEyeGaze(info.SuggestedBindings)
	case known && p == profile.ProfileViveTracker:
		if !r.extensions.ViveTrackerInteraction {
			return result.PathUnsupported
		}
	case !known || !p.IsController():
		return result.PathUnsupported
	}

	bindings := make([]action.Binding, 0, len(info.SuggestedBindings))
	for _, sb := range info.SuggestedBindings {
		if _, ok := r.registry.Action(sb.Action); !ok {
			return result.HandleInvalid
		}
		path, ok := r.pathString(sb.Binding)
		if !ok {
			return result.PathInvalid
		}
		if xrpath.SideOf(path, true) < 0 || !profile.IsValidBinding(p, path) {
			return result.PathUnsupported
		}
		bindings = append(bindings, action.Binding{Action: sb.Action, Path: path})
	}

	r.suggestions.Replace(p, bindings)
	if p == profile.ProfileViveTracker {
		r.trackersBound = true
		r.profileDirty = true
	}
	r.logger.Debug("suggested bindings", "profile", profilePath, "count", len(bindings))
	return nil
}

// suggestEyeGaze installs eye gaze bindings directly on their actions.
func (r *Runtime) suggestEyeGaze(suggested []ActionSuggestedBinding) error {
	if !r.extensions.EyeGazeInteraction {
		return result.PathUnsupported
	}
	actions := make([]*action.Action, 0, len(suggested))
	for _, sb := range suggested {
		path, _ := r.pathString(sb.Binding)
		if !xrpath.IsEyeTracker(path) {
			return result.PathUnsupported
		}
		a, ok := r.registry.Action(sb.Action)
		if !ok {
			return result.HandleInvalid
		}
		actions = append(actions, a)
	}

	for _, a := range actions {
		src := profile.Source{RealPath: xrpath.EyeGazePose}
		a.SetSource(xrpath.EyeGazePose, src)
		r.traceBinding(a, xrpath.EyeGazePose, src)
	}
	r.eyeGazeBound = true
	r.profileDirty = true
	return nil
}

// AttachSessionActionSets attaches action sets to the session. Attaching is
// one-time and all-or-nothing.
func (r *Runtime) AttachSessionActionSets(info *SessionActionSetsAttachInfo) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrAttachSessionActionSets")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return r.fatal
	}
	if info == nil {
		return result.ValidationFailure
	}
	if err := checkType(info.Type, TypeSessionActionSetsAttachInfo); err != nil {
		return err
	}
	c.arg("count", len(info.ActionSets))
	if len(info.ActionSets) == 0 {
		return result.ValidationFailure
	}
	if err := r.requireSession(); err != nil {
		return err
	}
	if err := r.registry.Attach(info.ActionSets); err != nil {
		return err
	}

	if r.bindings[xrpath.SideLeft].Profile != profile.ProfileNone ||
		r.bindings[xrpath.SideRight].Profile != profile.ProfileNone {
		r.profileDirty = true
	}
	return nil
}

// GetCurrentInteractionProfile returns the interaction profile bound to a
// top-level user path.
func (r *Runtime) GetCurrentInteractionProfile(topLevelPath xrpath.Path) (st InteractionProfileState, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrGetCurrentInteractionProfile")
	defer func() { c.end(err) }()
	c.arg("path", r.paths.Describe(topLevelPath))

	if r.fatal != nil {
		return st, r.fatal
	}
	if err := r.requireSession(); err != nil {
		return st, err
	}
	if !r.registry.AnyAttached() {
		return st, result.ActionSetNotAttached
	}
	path, ok := r.pathString(topLevelPath)
	if !ok || topLevelPath == xrpath.Null {
		return st, result.PathInvalid
	}

	var p profile.Profile
	switch {
	case path == xrpath.UserHandLeft:
		p = r.bindings[xrpath.SideLeft].Profile
	case path == xrpath.UserHandRight:
		p = r.bindings[xrpath.SideRight].Profile
	case path == xrpath.UserEyes:
		if r.eyeGazeBound {
			p = profile.ProfileEyeGaze
		}
	case path == xrpath.UserViveTracker || strings.HasPrefix(path, xrpath.TrackerRolePrefix):
		if r.trackersBound {
			p = profile.ProfileViveTracker
		}
	case path == xrpath.UserHead || path == xrpath.UserGamepad:
	default:
		return st, result.PathUnsupported
	}

	if p != profile.ProfileNone {
		st.InteractionProfile = r.paths.MustPath(p.Path())
	}
	c.arg("profile", p)
	return st, nil
}

// EnumerateBoundSourcesForAction returns the hardware paths an action reads.
func (r *Runtime) EnumerateBoundSourcesForAction(info *BoundSourcesForActionEnumerateInfo, capacity uint32) (sources []xrpath.Path, count uint32, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrEnumerateBoundSourcesForAction")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return nil, 0, r.fatal
	}
	if info == nil {
		return nil, 0, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeBoundSourcesForActionEnumerateInfo); err != nil {
		return nil, 0, err
	}
	c.arg("action", info.Action)
	if err := r.requireSession(); err != nil {
		return nil, 0, err
	}
	a, ok := r.registry.Action(info.Action)
	if !ok {
		return nil, 0, result.HandleInvalid
	}
	if !a.Set.Attached() {
		return nil, 0, result.ActionSetNotAttached
	}

	bound := a.Sources()
	count = uint32(len(bound))
	if capacity != 0 && capacity < count {
		return nil, count, result.SizeInsufficient
	}
	if capacity == 0 {
		return nil, count, nil
	}
	sources = make([]xrpath.Path, 0, len(bound))
	for _, bs := range bound {
		sources = append(sources, r.paths.MustPath(bs.Source.RealPath))
	}
	return sources, count, nil
}

// GetInputSourceLocalizedName returns a display name for a source path.
// The required buffer size is always returned.
func (r *Runtime) GetInputSourceLocalizedName(info *InputSourceLocalizedNameGetInfo, capacity uint32) (name string, count uint32, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrGetInputSourceLocalizedName")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return "", 0, r.fatal
	}
	if info == nil {
		return "", 0, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeInputSourceLocalizedNameGetInfo); err != nil {
		return "", 0, err
	}
	c.arg("path", r.paths.Describe(info.SourcePath))
	c.arg("components", uint64(info.WhichComponents))
	if err := r.requireSession(); err != nil {
		return "", 0, err
	}
	if !r.registry.AnyAttached() {
		return "", 0, result.ActionSetNotAttached
	}
	if info.WhichComponents == 0 {
		return "", 0, result.ValidationFailure
	}
	path, ok := r.pathString(info.SourcePath)
	if !ok || info.SourcePath == xrpath.Null {
		return "", 0, result.PathInvalid
	}

	name = r.localizedName(path, info.WhichComponents)
	count = uint32(len(name)) + 1
	if capacity != 0 && capacity < uint32(len(name)) {
		return "", count, result.SizeInsufficient
	}
	return name, count, nil
}

func (r *Runtime) localizedName(path string, which LocalizedNameFlags) string {
	var parts []string

	if xrpath.IsEyeTracker(path) {
		if which&LocalizedNameInteractionProfile != 0 {
			parts = append(parts, "Eye Gaze Interaction")
		}
		if which&LocalizedNameComponent != 0 {
			parts = append(parts, "Eye Tracker")
		}
		return strings.Join(parts, " ")
	}

	side := xrpath.SideOf(path, false)
	role := xrpath.TrackerRole(path)
	if !side.IsHand() && role == "" {
		return ""
	}

	if which&LocalizedNameUserPath != 0 {
		if side.IsHand() {
			parts = append(parts, side.String()+" Hand")
		} else {
			roleName, _ := profile.RoleName(role)
			parts = append(parts, roleName)
		}
	}
	if which&LocalizedNameInteractionProfile != 0 {
		if side.IsHand() {
			parts = append(parts, r.bindings[side].Family.LocalizedType())
		} else {
			parts = append(parts, "Vive Tracker")
		}
	}
	if which&LocalizedNameComponent != 0 {
		if side.IsHand() {
			family := r.bindings[side].Family
			if family == profile.FamilyNone {
				family = profile.FamilySimple
			}
			parts = append(parts, profile.ComponentName(family, path))
		} else {
			parts = append(parts, profile.TrackerComponentName(path))
		}
	}
	return strings.Join(parts, " ")
}
