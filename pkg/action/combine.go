package action

import (
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// boolThreshold is the scalar value above which a scalar reads as pressed.
const boolThreshold = 0.99

// Presence tells the combinator which devices currently produce data.
type Presence interface {
	ControllerActive(side xrpath.Side) bool
	EyeTrackingAvailable() bool
	TrackerConnected(role string) bool
}

// BooleanState is the combined state of a boolean action.
type BooleanState struct {
	CurrentState         bool
	ChangedSinceLastSync bool
	LastChangeTime       int64
	IsActive             bool
}

// FloatState is the combined state of a float action.
type FloatState struct {
	CurrentState         float32
	ChangedSinceLastSync bool
	LastChangeTime       int64
	IsActive             bool
}

// Vector2fState is the combined state of a 2-D action.
type Vector2fState struct {
	CurrentState         xrmath.Vector2f
	ChangedSinceLastSync bool
	LastChangeTime       int64
	IsActive             bool
}

// Deadzone rescales v so that magnitudes below d read as zero and the
// remaining range maps onto [0, 1].
func Deadzone(v xrmath.Vector2f, d float32) xrmath.Vector2f {
	m := v.Length()
	if m < d || m == 0 {
		return xrmath.Vector2f{}
	}
	scale := (m - d) / (1 - d) / m
	return xrmath.Vector2f{X: v.X * scale, Y: v.Y * scale}
}

// slot returns the index of the last-value slot for a subaction path.
func slot(subaction string) int {
	side := xrpath.SideOf(subaction, false)
	if side < 0 {
		return 0
	}
	return int(side)
}

// activeSide returns the hand of a binding path if its controller is
// active.
func activeSide(path string, p Presence) (xrpath.Side, bool) {
	side := xrpath.SideOf(path, false)
	if !side.IsHand() || !p.ControllerActive(side) {
		return side, false
	}
	return side, true
}

func (a *Action) changeTime(changed bool, i int) int64 {
	if changed {
		return hmd.SecondsToTime(a.Set.Snapshot.TimeInSeconds)
	}
	return a.lastChange[i]
}

// BooleanState combines the action's button and scalar sources under the
// subaction path. Buttons are OR-ed; scalars count as pressed above 0.99.
func (a *Action) BooleanState(subaction string, p Presence) BooleanState {
	in := &a.Set.Snapshot
	var st BooleanState
	for _, bs := range a.sourcesUnder(subaction) {
		src := bs.Source
		kind := src.Kind()
		if kind != hmd.KindMask && kind != hmd.KindScalar {
			continue
		}
		side, ok := activeSide(bs.Path, p)
		if !ok {
			continue
		}
		st.IsActive = true
		if kind == hmd.KindMask {
			st.CurrentState = st.CurrentState || in.Mask(src.Field, side)&uint32(src.Mask) != 0
		} else {
			st.CurrentState = st.CurrentState || in.Scalar(src.Field, side) > boolThreshold
		}
	}

	i := slot(subaction)
	if st.IsActive {
		st.ChangedSinceLastSync = st.CurrentState != a.lastBool[i]
		st.LastChangeTime = a.changeTime(st.ChangedSinceLastSync, i)
	}
	a.lastBool[i] = st.CurrentState
	a.lastChange[i] = st.LastChangeTime
	return st
}

// FloatState combines the action's sources under the subaction path by
// taking the largest value. Buttons read as 0 or 1 and vector axes are
// deadzone-corrected.
func (a *Action) FloatState(subaction string, p Presence, deadzone float32) FloatState {
	in := &a.Set.Snapshot
	var st FloatState
	for _, bs := range a.sourcesUnder(subaction) {
		src := bs.Source
		kind := src.Kind()
		if kind == hmd.KindNone || (kind == hmd.KindVector && src.Axis < 0) {
			continue
		}
		side, ok := activeSide(bs.Path, p)
		if !ok {
			continue
		}

		var v float32
		switch kind {
		case hmd.KindScalar:
			v = in.Scalar(src.Field, side)
		case hmd.KindMask:
			if in.Mask(src.Field, side)&uint32(src.Mask) != 0 {
				v = 1
			}
		case hmd.KindVector:
			vec := Deadzone(in.Vector(src.Field, side), deadzone)
			v = vec.X
			if src.Axis == 1 {
				v = vec.Y
			}
		}
		if !st.IsActive || v > st.CurrentState {
			st.CurrentState = v
		}
		st.IsActive = true
	}

	i := slot(subaction)
	if st.IsActive {
		st.ChangedSinceLastSync = st.CurrentState != a.lastFloat[i]
		st.LastChangeTime = a.changeTime(st.ChangedSinceLastSync, i)
	}
	a.lastFloat[i] = st.CurrentState
	a.lastChange[i] = st.LastChangeTime
	return st
}

// Vector2fState combines the action's vector sources under the subaction
// path by keeping the longest deadzone-corrected vector. On equal lengths
// the later source wins.
func (a *Action) Vector2fState(subaction string, p Presence, deadzone float32) Vector2fState {
	in := &a.Set.Snapshot
	var st Vector2fState
	var best float32
	for _, bs := range a.sourcesUnder(subaction) {
		src := bs.Source
		if src.Kind() != hmd.KindVector {
			continue
		}
		side, ok := activeSide(bs.Path, p)
		if !ok {
			continue
		}
		v := Deadzone(in.Vector(src.Field, side), deadzone)
		if l := v.Length(); l >= best {
			st.CurrentState = v
			best = l
		}
		st.IsActive = true
	}

	i := slot(subaction)
	if st.IsActive {
		st.ChangedSinceLastSync = st.CurrentState != a.lastVector[i]
		st.LastChangeTime = a.changeTime(st.ChangedSinceLastSync, i)
	}
	a.lastVector[i] = st.CurrentState
	a.lastChange[i] = st.LastChangeTime
	return st
}

// PoseActive reports whether the first matching pose source under the
// subaction path produces data.
func (a *Action) PoseActive(subaction string, p Presence) bool {
	for _, bs := range a.sourcesUnder(subaction) {
		if xrpath.IsEyeTracker(bs.Path) {
			return p.EyeTrackingAvailable()
		}
		if side := xrpath.SideOf(bs.Path, false); side.IsHand() {
			return p.ControllerActive(side)
		}
		if role := xrpath.TrackerRole(bs.Path); role != "" && p.TrackerConnected(role) {
			return true
		}
	}
	return false
}
