package hmd

import (
	"fmt"

	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// MaxTrackers is the number of auxiliary tracker slots the SDK enumerates.
const MaxTrackers = 13

// Device identifies a tracked device.
type Device int

const (
	DeviceHMD Device = iota
	DeviceLeftController
	DeviceRightController
	DeviceTracker0
)

// Controller returns the controller device for a hand.
func Controller(side xrpath.Side) Device {
	if side == xrpath.SideRight {
		return DeviceRightController
	}
	return DeviceLeftController
}

// Tracker returns the device of tracker slot index.
func Tracker(index int) Device {
	return DeviceTracker0 + Device(index)
}

// String returns a short device name.
func (d Device) String() string {
	switch {
	case d == DeviceHMD:
		return "HMD"
	case d == DeviceLeftController:
		return "Left"
	case d == DeviceRightController:
		return "Right"
	case d >= DeviceTracker0 && d < DeviceTracker0+MaxTrackers:
		return fmt.Sprintf("Tracker%d", int(d-DeviceTracker0))
	default:
		return "Unknown"
	}
}

// StatusFlags describe which parts of a device pose are tracked.
type StatusFlags uint32

const (
	StatusOrientationTracked StatusFlags = 1 << 0
	StatusPositionTracked    StatusFlags = 1 << 1
)

// PoseState is a device pose with its velocities.
type PoseState struct {
	Pose            xrmath.Pose
	AngularVelocity xrmath.Vector3f
	LinearVelocity  xrmath.Vector3f
	StatusFlags     StatusFlags
}

// Status is the headset presence state that drives the session lifecycle.
type Status struct {
	// IsVisible is set when the application is shown in the headset.
	IsVisible bool

	// HmdMounted is set when the user wears the headset.
	HmdMounted bool

	// ShouldQuit is set when the compositor asks the application to exit.
	ShouldQuit bool
}

// EyeGaze is one eye tracker sample.
type EyeGaze struct {
	// Direction is a unit gaze vector in head space (-Z forward).
	Direction xrmath.Vector3f

	// SampleTime is the SDK time of the sample in seconds.
	SampleTime float64
}

// Session is the SDK session the runtime queries. Errors returned by any
// method are treated as fatal by the runtime.
type Session interface {
	// InputState latches the current controller inputs.
	InputState() (InputState, error)

	// ControllerType returns the controller type name on a hand, or "" when
	// no controller is connected.
	ControllerType(side xrpath.Side) (string, error)

	// TrackerCount returns the number of connected auxiliary trackers.
	TrackerCount() (int, error)

	// TrackerSerial returns the serial number of tracker slot index, or ""
	// when the slot is empty.
	TrackerSerial(index int) (string, error)

	// DevicePose predicts the pose of a device at an SDK time in seconds.
	DevicePose(dev Device, seconds float64) (PoseState, error)

	// TriggerHapticPulse issues a single vibration pulse.
	TriggerHapticPulse(dev Device, amplitude float32) error

	// EyeGaze returns the gaze sample closest to seconds. ok is false when
	// eye tracking has no valid sample.
	EyeGaze(seconds float64) (gaze EyeGaze, ok bool, err error)

	// RecenterTrackingOrigin resets the LOCAL origin to the current head pose.
	RecenterTrackingOrigin() error

	// Status returns the headset presence state.
	Status() (Status, error)

	// TimeSeconds returns the current SDK time in seconds.
	TimeSeconds() float64
}

// SecondsToTime converts SDK seconds to XR time in nanoseconds.
func SecondsToTime(seconds float64) int64 {
	return int64(seconds * 1e9)
}

// TimeToSeconds converts XR time in nanoseconds to SDK seconds.
func TimeToSeconds(t int64) float64 {
	return float64(t) / 1e9
}
