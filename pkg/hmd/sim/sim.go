// Package sim provides an in-memory headset implementing hmd.Session.
//
// A Device starts with a mounted, visible headset, no controllers and no
// trackers. Tests and the simulator CLI drive it through setters; the runtime
// reads it through the hmd.Session interface.
package sim

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// ErrNoTracker is returned by DisconnectTracker for unknown serials.
var ErrNoTracker = errors.New("sim: no such tracker")

// ErrTrackerSlots is returned when every tracker slot is in use.
var ErrTrackerSlots = errors.New("sim: all tracker slots in use")

// Operation names accepted by FailOn.
const (
	OpInputState     = "InputState"
	OpControllerType = "ControllerType"
	OpTrackerCount   = "TrackerCount"
	OpTrackerSerial  = "TrackerSerial"
	OpDevicePose     = "DevicePose"
	OpHapticPulse    = "TriggerHapticPulse"
	OpEyeGaze        = "EyeGaze"
	OpRecenter       = "RecenterTrackingOrigin"
	OpStatus         = "Status"
)

// Pulse is a recorded haptic pulse.
type Pulse struct {
	Device    hmd.Device
	Amplitude float32
	Time      float64
}

type tracker struct {
	serial string
	pose   hmd.PoseState
}

// Device is a simulated headset. It is safe for concurrent use.
type Device struct {
	mu sync.Mutex

	input          hmd.InputState
	controllerType [2]string
	trackers       []tracker
	poses          map[hmd.Device]hmd.PoseState
	status         hmd.Status
	gaze           *hmd.EyeGaze
	pulses         []Pulse
	recenters      int

	manual  bool
	start   time.Time
	elapsed time.Duration
	failing map[string]error
}

// New creates a simulated headset running on the wall clock.
func New() *Device {
	d := &Device{
		poses:   make(map[hmd.Device]hmd.PoseState),
		status:  hmd.Status{IsVisible: true, HmdMounted: true},
		failing: make(map[string]error),
		start:   time.Now(),
	}
	d.poses[hmd.DeviceHMD] = hmd.PoseState{
		Pose:        xrmath.Translation(xrmath.Vector3f{Y: 1.6}),
		StatusFlags: hmd.StatusOrientationTracked | hmd.StatusPositionTracked,
	}
	return d
}

// NewManual creates a simulated headset whose clock starts at one second
// and only moves through Advance.
func NewManual() *Device {
	d := New()
	d.manual = true
	d.elapsed = time.Second
	return d
}

// Advance moves a manual clock forward.
func (d *Device) Advance(by time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elapsed += by
}

func (d *Device) now() float64 {
	if d.manual {
		return d.elapsed.Seconds()
	}
	return time.Since(d.start).Seconds()
}

// FailOn makes every later call of op return err. A nil err clears it.
func (d *Device) FailOn(op string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.failing, op)
		return
	}
	d.failing[op] = err
}

// --- Setters ---

// SetControllerType connects a controller of the given type on a hand.
// An empty type disconnects it.
func (d *Device) SetControllerType(side xrpath.Side, controllerType string) {
	if !side.IsHand() {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.controllerType[side] = controllerType
}

// Press holds down buttons on a hand.
func (d *Device) Press(side xrpath.Side, buttons hmd.Button) {
	d.update(side, func(s *hmd.InputState) { s.HandButtons[side] |= uint32(buttons) })
}

// Release lets go of buttons on a hand.
func (d *Device) Release(side xrpath.Side, buttons hmd.Button) {
	d.update(side, func(s *hmd.InputState) { s.HandButtons[side] &^= uint32(buttons) })
}

// Touch sets or clears touch sensors on a hand.
func (d *Device) Touch(side xrpath.Side, buttons hmd.Button, touched bool) {
	d.update(side, func(s *hmd.InputState) {
		if touched {
			s.HandTouches[side] |= uint32(buttons)
		} else {
			s.HandTouches[side] &^= uint32(buttons)
		}
	})
}

// SetScalar sets a float field on a hand.
func (d *Device) SetScalar(side xrpath.Side, field hmd.Field, value float32) {
	d.update(side, func(s *hmd.InputState) {
		switch field {
		case hmd.FieldTrigger:
			s.Trigger[side] = value
		case hmd.FieldGrip:
			s.Grip[side] = value
		case hmd.FieldGripForce:
			s.GripForce[side] = value
		case hmd.FieldTouchPadForce:
			s.TouchPadForce[side] = value
		case hmd.FieldFingerIndex:
			s.FingerIndex[side] = value
		case hmd.FieldFingerMiddle:
			s.FingerMiddle[side] = value
		case hmd.FieldFingerRing:
			s.FingerRing[side] = value
		case hmd.FieldFingerPinky:
			s.FingerPinky[side] = value
		}
	})
}

// SetVector sets a 2-D field on a hand.
func (d *Device) SetVector(side xrpath.Side, field hmd.Field, value xrmath.Vector2f) {
	d.update(side, func(s *hmd.InputState) {
		switch field {
		case hmd.FieldJoyStick:
			s.JoyStick[side] = value
		case hmd.FieldTouchPad:
			s.TouchPad[side] = value
		}
	})
}

func (d *Device) update(side xrpath.Side, fn func(*hmd.InputState)) {
	if !side.IsHand() {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.input)
}

// SetPose sets the pose reported for a device.
func (d *Device) SetPose(dev hmd.Device, state hmd.PoseState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.trackers {
		if hmd.Tracker(i) == dev {
			d.trackers[i].pose = state
			return
		}
	}
	d.poses[dev] = state
}

// SetStatus sets the headset presence state.
func (d *Device) SetStatus(status hmd.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
}

// SetEyeGaze sets the gaze direction. A nil gaze disables eye tracking.
func (d *Device) SetEyeGaze(direction *xrmath.Vector3f) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if direction == nil {
		d.gaze = nil
		return
	}
	d.gaze = &hmd.EyeGaze{Direction: *direction}
}

// ConnectTracker plugs a tracker into the first free slot and returns the slot.
func (d *Device) ConnectTracker(serial string, pose hmd.PoseState) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.trackers) >= hmd.MaxTrackers {
		return -1, ErrTrackerSlots
	}
	d.trackers = append(d.trackers, tracker{serial: serial, pose: pose})
	return len(d.trackers) - 1, nil
}

// DisconnectTracker unplugs a tracker; later trackers shift down one slot.
func (d *Device) DisconnectTracker(serial string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, t := range d.trackers {
		if strings.EqualFold(t.serial, serial) {
			d.trackers = append(d.trackers[:i], d.trackers[i+1:]...)
			return nil
		}
	}
	return ErrNoTracker
}

// --- Inspection ---

// Pulses returns the haptic pulses issued so far.
func (d *Device) Pulses() []Pulse {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Pulse, len(d.pulses))
	copy(out, d.pulses)
	return out
}

// Recenters returns how many times the tracking origin was recentered.
func (d *Device) Recenters() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.recenters
}

// Snapshot returns the current raw input without latching a time.
func (d *Device) Snapshot() hmd.InputState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input
}

// --- hmd.Session ---

func (d *Device) fail(op string) error {
	return d.failing[op]
}

// InputState implements hmd.Session.
func (d *Device) InputState() (hmd.InputState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpInputState); err != nil {
		return hmd.InputState{}, err
	}
	s := d.input
	s.TimeInSeconds = d.now()
	return s, nil
}

// ControllerType implements hmd.Session.
func (d *Device) ControllerType(side xrpath.Side) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpControllerType); err != nil {
		return "", err
	}
	if !side.IsHand() {
		return "", nil
	}
	return d.controllerType[side], nil
}

// TrackerCount implements hmd.Session.
func (d *Device) TrackerCount() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpTrackerCount); err != nil {
		return 0, err
	}
	return len(d.trackers), nil
}

// TrackerSerial implements hmd.Session.
func (d *Device) TrackerSerial(index int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpTrackerSerial); err != nil {
		return "", err
	}
	if index < 0 || index >= len(d.trackers) {
		return "", nil
	}
	return d.trackers[index].serial, nil
}

// DevicePose implements hmd.Session.
func (d *Device) DevicePose(dev hmd.Device, seconds float64) (hmd.PoseState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpDevicePose); err != nil {
		return hmd.PoseState{}, err
	}
	if dev >= hmd.DeviceTracker0 {
		i := int(dev - hmd.DeviceTracker0)
		if i < len(d.trackers) {
			return d.trackers[i].pose, nil
		}
		return hmd.PoseState{}, nil
	}
	if dev != hmd.DeviceHMD {
		side := xrpath.SideLeft
		if dev == hmd.DeviceRightController {
			side = xrpath.SideRight
		}
		if d.controllerType[side] == "" {
			return hmd.PoseState{}, nil
		}
	}
	return d.poses[dev], nil
}

// TriggerHapticPulse implements hmd.Session.
func (d *Device) TriggerHapticPulse(dev hmd.Device, amplitude float32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpHapticPulse); err != nil {
		return err
	}
	d.pulses = append(d.pulses, Pulse{Device: dev, Amplitude: amplitude, Time: d.now()})
	return nil
}

// EyeGaze implements hmd.Session.
func (d *Device) EyeGaze(seconds float64) (hmd.EyeGaze, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpEyeGaze); err != nil {
		return hmd.EyeGaze{}, false, err
	}
	if d.gaze == nil {
		return hmd.EyeGaze{}, false, nil
	}
	g := *d.gaze
	g.SampleTime = seconds
	return g, true, nil
}

// RecenterTrackingOrigin implements hmd.Session.
func (d *Device) RecenterTrackingOrigin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpRecenter); err != nil {
		return err
	}
	d.recenters++
	return nil
}

// Status implements hmd.Session.
func (d *Device) Status() (hmd.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail(OpStatus); err != nil {
		return hmd.Status{}, err
	}
	return d.status, nil
}

// TimeSeconds implements hmd.Session.
func (d *Device) TimeSeconds() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.now()
}

// Compile-time interface satisfaction check.
var _ hmd.Session = (*Device)(nil)
