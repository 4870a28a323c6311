package runtime

import (
	"errors"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/space"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// EnumerateReferenceSpaces returns the supported reference space types.
func (r *Runtime) EnumerateReferenceSpaces(capacity uint32) (types []space.ReferenceType, count uint32, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrEnumerateReferenceSpaces")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return nil, 0, r.fatal
	}
	if err := r.requireSession(); err != nil {
		return nil, 0, err
	}
	all := space.ReferenceTypes(r.extensions.FoveatedRendering)
	count = uint32(len(all))
	if capacity != 0 && capacity < count {
		return nil, count, result.SizeInsufficient
	}
	if capacity == 0 {
		return nil, count, nil
	}
	return all, count, nil
}

// CreateReferenceSpace creates a reference space.
func (r *Runtime) CreateReferenceSpace(info *ReferenceSpaceCreateInfo) (h action.Handle, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrCreateReferenceSpace")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return action.NullHandle, r.fatal
	}
	if info == nil {
		return action.NullHandle, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeReferenceSpaceCreateInfo); err != nil {
		return action.NullHandle, err
	}
	c.arg("type", info.ReferenceSpaceType)
	if err := r.requireSession(); err != nil {
		return action.NullHandle, err
	}
	if !r.referenceSupported(info.ReferenceSpaceType) {
		return action.NullHandle, result.ReferenceSpaceUnsupported
	}
	if !info.PoseInReferenceSpace.Orientation.IsNormalized() {
		return action.NullHandle, result.PoseInvalid
	}

	s := r.spaces.AddReference(info.ReferenceSpaceType, info.PoseInReferenceSpace)
	c.arg("handle", s.Handle)
	return s.Handle, nil
}

func (r *Runtime) referenceSupported(t space.ReferenceType) bool {
	for _, supported := range space.ReferenceTypes(r.extensions.FoveatedRendering) {
		if t == supported {
			return true
		}
	}
	return false
}

// CreateActionSpace creates a space that tracks a pose action.
func (r *Runtime) CreateActionSpace(info *ActionSpaceCreateInfo) (h action.Handle, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrCreateActionSpace")
	defer func() { c.end(err) }()

	if r.fatal != nil {
		return action.NullHandle, r.fatal
	}
	if info == nil {
		return action.NullHandle, result.ValidationFailure
	}
	if err := checkType(info.Type, TypeActionSpaceCreateInfo); err != nil {
		return action.NullHandle, err
	}
	c.arg("action", info.Action)
	if err := r.requireSession(); err != nil {
		return action.NullHandle, err
	}
	a, ok := r.registry.Action(info.Action)
	if !ok {
		return action.NullHandle, result.HandleInvalid
	}
	if a.Type != action.TypePoseInput {
		return action.NullHandle, result.ActionTypeMismatch
	}
	var subPath string
	if info.SubactionPath != xrpath.Null {
		if subPath, ok = r.pathString(info.SubactionPath); !ok {
			return action.NullHandle, result.PathInvalid
		}
	}
	if !info.PoseInActionSpace.Orientation.IsNormalized() {
		return action.NullHandle, result.PoseInvalid
	}

	s := r.spaces.AddAction(a, info.SubactionPath, subPath, info.PoseInActionSpace)
	c.arg("handle", s.Handle)
	return s.Handle, nil
}

// GetReferenceSpaceBoundsRect reports the play area bounds. Bounds are
// never known, so supported types return a zero extent and
// SpaceBoundsUnavailable.
func (r *Runtime) GetReferenceSpaceBoundsRect(t space.ReferenceType) (bounds Extent2Df, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrGetReferenceSpaceBoundsRect")
	defer func() { c.end(err) }()
	c.arg("type", t)

	if r.fatal != nil {
		return bounds, r.fatal
	}
	if err := r.requireSession(); err != nil {
		return bounds, err
	}
	if !space.HasBounds(t) {
		return bounds, result.ReferenceSpaceUnsupported
	}
	return bounds, result.SpaceBoundsUnavailable
}

// DestroySpace destroys a space.
func (r *Runtime) DestroySpace(h action.Handle) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrDestroySpace")
	defer func() { c.end(err) }()
	c.arg("handle", h)

	if r.fatal != nil {
		return r.fatal
	}
	if err := r.spaces.Remove(h); err != nil {
		return result.HandleInvalid
	}
	return nil
}

// LocateSpace returns the pose of a space in a base space at time t.
// Velocities are filled when wantVelocity is set.
func (r *Runtime) LocateSpace(h, base action.Handle, t int64, wantVelocity bool) (loc space.Location, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.begin("xrLocateSpace")
	defer func() { c.end(err) }()
	c.arg("space", h)
	c.arg("base", base)
	c.arg("time", t)

	if r.fatal != nil {
		return loc, r.fatal
	}
	s, ok := r.spaces.Get(h)
	if !ok {
		return loc, result.HandleInvalid
	}
	b, ok := r.spaces.Get(base)
	if !ok {
		return loc, result.HandleInvalid
	}
	if t <= 0 {
		return loc, result.TimeInvalid
	}

	loc, err = r.resolver().Locate(s, b, t, wantVelocity)
	if err != nil {
		op := "LocateSpace"
		var fe *result.FatalError
		if errors.As(err, &fe) {
			op, err = fe.Op, fe.Err
		}
		return space.Location{}, r.fail(op, err)
	}
	c.arg("flags", uint64(loc.Flags))
	return loc, nil
}
