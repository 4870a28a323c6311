package space

import (
	"math"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// LocationFlags describe the validity of a located pose.
type LocationFlags uint64

const (
	OrientationValid   LocationFlags = 1 << 0
	PositionValid      LocationFlags = 1 << 1
	OrientationTracked LocationFlags = 1 << 2
	PositionTracked    LocationFlags = 1 << 3

	allLocationFlags = OrientationValid | PositionValid | OrientationTracked | PositionTracked
)

// Valid reports whether both orientation and position are valid.
func (f LocationFlags) Valid() bool {
	return f&OrientationValid != 0 && f&PositionValid != 0
}

// Tracked reports whether both orientation and position are tracked.
func (f LocationFlags) Tracked() bool {
	return f&OrientationTracked != 0 && f&PositionTracked != 0
}

// VelocityFlags describe the validity of located velocities.
type VelocityFlags uint64

const (
	LinearValid  VelocityFlags = 1 << 0
	AngularValid VelocityFlags = 1 << 1
)

// Velocity is the velocity of one space relative to another.
type Velocity struct {
	Flags   VelocityFlags
	Linear  xrmath.Vector3f
	Angular xrmath.Vector3f
}

// Location is the result of locating a space.
type Location struct {
	Flags LocationFlags
	Pose  xrmath.Pose

	// Velocity is only filled when requested.
	Velocity *Velocity

	// GazeSampleTime is the XR time of the eye sample used, or 0.
	GazeSampleTime int64
}

// Resolver locates spaces against the devices of a session. The fields are
// a view of the runtime's state at the time of the call.
type Resolver struct {
	Session hmd.Session

	// FloorHeight is the eye height of the STAGE origin above the floor.
	FloorHeight float32

	// SwapGripAim makes grip bindings track the aim pose and vice versa.
	SwapGripAim bool

	// Grip and Aim are the local controller poses per hand.
	Grip [2]xrmath.Pose
	Aim  [2]xrmath.Pose

	// EyeTracking reports whether eye gaze may be queried.
	EyeTracking bool

	// TrackerIndex returns the enumeration index of the tracker serving a
	// role, or -1.
	TrackerIndex func(role string) int
}

// Locate returns the pose of s in base at time t. Hardware errors are
// returned as a *result.FatalError naming the failing SDK call.
func (r *Resolver) Locate(s, base *Space, t int64, wantVelocity bool) (Location, error) {
	seconds := hmd.TimeToSeconds(t)

	var loc Location
	var v1, v2 *Velocity
	if wantVelocity {
		v1, v2 = &Velocity{}, &Velocity{}
	}

	var pose1, pose2 xrmath.Pose
	var flags1, flags2 LocationFlags
	if sameClass(s, base) {
		flags1, flags2 = allLocationFlags, allLocationFlags
		pose1, pose2 = s.Offset, base.Offset
		if wantVelocity {
			v1.Flags = AngularValid | LinearValid
			v2.Flags = AngularValid | LinearValid
		}
	} else {
		var err error
		if pose1, flags1, err = r.toOrigin(s, seconds, v1, &loc); err != nil {
			return Location{}, err
		}
		if pose2, flags2, err = r.toOrigin(base, seconds, v2, &loc); err != nil {
			return Location{}, err
		}
	}

	if !flags1.Valid() || !flags2.Valid() {
		return Location{GazeSampleTime: loc.GazeSampleTime}, nil
	}

	loc.Flags = OrientationValid | PositionValid
	if flags1.Tracked() && flags2.Tracked() {
		loc.Flags |= OrientationTracked | PositionTracked
	}
	loc.Pose = xrmath.Multiply(pose1, xrmath.Invert(pose2))

	if wantVelocity {
		vel := &Velocity{Flags: v1.Flags & v2.Flags}
		if vel.Flags&AngularValid != 0 {
			vel.Angular = v1.Angular.Sub(v2.Angular)
		}
		if vel.Flags&LinearValid != 0 {
			vel.Linear = v1.Linear.Sub(v2.Linear)
		}
		loc.Velocity = vel
	}
	return loc, nil
}

// toOrigin returns the pose of s in the tracking origin, with its offset
// applied.
func (r *Resolver) toOrigin(s *Space, seconds float64, vel *Velocity, loc *Location) (xrmath.Pose, LocationFlags, error) {
	pose := xrmath.IdentityPose()
	var flags LocationFlags
	var err error

	switch s.Reference {
	case ReferenceView:
		pose, flags, err = r.hmdPose(seconds, vel)

	case ReferenceLocal:
		flags = allLocationFlags
		if vel != nil {
			vel.Flags = AngularValid | LinearValid
		}

	case ReferenceStage:
		pose = xrmath.Translation(xrmath.Vector3f{Y: -r.FloorHeight})
		flags = allLocationFlags
		if vel != nil {
			vel.Flags = AngularValid | LinearValid
		}

	case ReferenceCombinedEye:
		if r.EyeTracking {
			var ok bool
			if _, ok, err = r.Session.EyeGaze(seconds); err != nil {
				err = result.Fatal("EyeGaze", err)
			} else if ok {
				flags = OrientationTracked
			}
		}

	case ReferenceNone:
		pose, flags, err = r.actionPose(s, seconds, vel, loc)
	}
	if err != nil {
		return xrmath.Pose{}, 0, err
	}

	return xrmath.Multiply(s.Offset, pose), flags, nil
}

// actionPose tracks the first source of the space's action that names a
// trackable device.
func (r *Resolver) actionPose(s *Space, seconds float64, vel *Velocity, loc *Location) (xrmath.Pose, LocationFlags, error) {
	for _, bs := range s.Action.Sources() {
		if !strings.HasPrefix(bs.Path, s.SubactionPath) {
			continue
		}

		if xrpath.IsEyeTracker(bs.Path) {
			return r.eyePose(seconds, loc)
		}

		if role := xrpath.TrackerRole(bs.Path); role != "" && r.TrackerIndex != nil {
			if i := r.TrackerIndex(role); i >= 0 {
				return r.devicePose(hmd.Tracker(i), seconds, vel)
			}
		}

		isGrip := strings.HasSuffix(bs.Path, xrpath.GripPoseSuffix)
		isAim := strings.HasSuffix(bs.Path, xrpath.AimPoseSuffix)
		side := xrpath.SideOf(bs.Path, false)
		if (!isGrip && !isAim) || !side.IsHand() {
			continue
		}

		pose, flags, err := r.devicePose(hmd.Controller(side), seconds, vel)
		if err != nil {
			return xrmath.Pose{}, 0, err
		}
		useAim := isAim
		if r.SwapGripAim {
			useAim = isGrip
		}
		if useAim {
			pose = xrmath.Multiply(r.Aim[side], pose)
		} else {
			pose = xrmath.Multiply(r.Grip[side], pose)
		}
		return pose, flags, nil
	}
	return xrmath.IdentityPose(), 0, nil
}

// hmdPose returns the headset pose. Orientation tracking implies a valid
// position for headsets without positional tracking.
func (r *Resolver) hmdPose(seconds float64, vel *Velocity) (xrmath.Pose, LocationFlags, error) {
	state, err := r.Session.DevicePose(hmd.DeviceHMD, seconds)
	if err != nil {
		return xrmath.Pose{}, 0, result.Fatal("DevicePose", err)
	}

	pose := state.Pose
	var flags LocationFlags
	orientation := state.StatusFlags&hmd.StatusOrientationTracked != 0
	position := state.StatusFlags&hmd.StatusPositionTracked != 0
	if orientation {
		flags |= OrientationValid | OrientationTracked
	} else {
		pose.Orientation = xrmath.IdentityQuaternion()
	}
	if position || orientation {
		flags |= PositionValid | PositionTracked
	} else {
		pose.Position = xrmath.Vector3f{}
	}
	fillVelocity(vel, state)
	return pose, flags, nil
}

func (r *Resolver) devicePose(dev hmd.Device, seconds float64, vel *Velocity) (xrmath.Pose, LocationFlags, error) {
	state, err := r.Session.DevicePose(dev, seconds)
	if err != nil {
		return xrmath.Pose{}, 0, result.Fatal("DevicePose", err)
	}

	pose := state.Pose
	var flags LocationFlags
	if state.StatusFlags&hmd.StatusOrientationTracked != 0 {
		flags |= OrientationValid | OrientationTracked
	} else {
		pose.Orientation = xrmath.IdentityQuaternion()
	}
	if state.StatusFlags&hmd.StatusPositionTracked != 0 {
		flags |= PositionValid | PositionTracked
	} else {
		pose.Position = xrmath.Vector3f{}
	}
	fillVelocity(vel, state)
	return pose, flags, nil
}

func fillVelocity(vel *Velocity, state hmd.PoseState) {
	if vel == nil {
		return
	}
	vel.Flags = 0
	if state.StatusFlags&hmd.StatusOrientationTracked != 0 {
		vel.Angular = state.AngularVelocity
		vel.Flags |= AngularValid
	}
	if state.StatusFlags&hmd.StatusPositionTracked != 0 {
		vel.Linear = state.LinearVelocity
		vel.Flags |= LinearValid
	}
}

// eyePose returns the gaze ray as a rotation of the head pose.
func (r *Resolver) eyePose(seconds float64, loc *Location) (xrmath.Pose, LocationFlags, error) {
	if !r.EyeTracking {
		return xrmath.IdentityPose(), 0, nil
	}
	gaze, ok, err := r.Session.EyeGaze(seconds)
	if err != nil {
		return xrmath.IdentityPose(), 0, result.Fatal("EyeGaze", err)
	}
	if !ok {
		return xrmath.IdentityPose(), 0, nil
	}

	rotation := xrmath.RotationRollPitchYaw(
		-float32(math.Tan(float64(gaze.Direction.Y))),
		-float32(math.Tan(float64(gaze.Direction.X))),
		0)
	eye := xrmath.MakePose(rotation, xrmath.Vector3f{})

	head, flags, err := r.hmdPose(seconds, nil)
	if err != nil || !flags.Valid() {
		return xrmath.IdentityPose(), 0, err
	}

	if loc != nil {
		loc.GazeSampleTime = hmd.SecondsToTime(gaze.SampleTime)
	}
	return xrmath.Multiply(eye, head), allLocationFlags, nil
}
