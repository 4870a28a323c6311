package record

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// ErrEndOfCapture is returned by InputState once every frame was replayed.
var ErrEndOfCapture = errors.New("record: end of capture")

// Replayer implements hmd.Session from captured frames. Haptic pulses and
// recenter requests are counted but have no effect.
type Replayer struct {
	mu        sync.Mutex
	frames    []Frame
	next      int
	pulses    int
	recenters int
}

// NewReplayer replays frames in order.
func NewReplayer(frames []Frame) *Replayer {
	return &Replayer{frames: frames}
}

// OpenReplayer reads a capture from r.
func OpenReplayer(r io.Reader) (*Replayer, error) {
	frames, err := ReadFrames(r)
	if err != nil {
		return nil, err
	}
	return NewReplayer(frames), nil
}

// OpenReplayerFile reads a capture file.
func OpenReplayerFile(path string) (*Replayer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()
	return OpenReplayer(f)
}

// frame returns the frame opened by the last InputState call.
func (r *Replayer) frame() *Frame {
	if r.next == 0 || len(r.frames) == 0 {
		return nil
	}
	return &r.frames[r.next-1]
}

// Remaining returns the number of frames not yet replayed.
func (r *Replayer) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames) - r.next
}

// Pulses returns how many haptic pulses were requested.
func (r *Replayer) Pulses() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pulses
}

// InputState implements hmd.Session.
func (r *Replayer) InputState() (hmd.InputState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.next >= len(r.frames) {
		return hmd.InputState{}, ErrEndOfCapture
	}
	r.next++
	return r.frames[r.next-1].Input, nil
}

// ControllerType implements hmd.Session.
func (r *Replayer) ControllerType(side xrpath.Side) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.frame()
	if f == nil || !side.IsHand() {
		return "", nil
	}
	return f.ControllerTypes[side], nil
}

// TrackerCount implements hmd.Session.
func (r *Replayer) TrackerCount() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f := r.frame(); f != nil {
		return len(f.TrackerSerials), nil
	}
	return 0, nil
}

// TrackerSerial implements hmd.Session.
func (r *Replayer) TrackerSerial(index int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.frame()
	if f == nil || index < 0 || index >= len(f.TrackerSerials) {
		return "", nil
	}
	return f.TrackerSerials[index], nil
}

// DevicePose implements hmd.Session.
func (r *Replayer) DevicePose(dev hmd.Device, seconds float64) (hmd.PoseState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f := r.frame(); f != nil {
		return f.Poses[dev], nil
	}
	return hmd.PoseState{}, nil
}

// TriggerHapticPulse implements hmd.Session.
func (r *Replayer) TriggerHapticPulse(dev hmd.Device, amplitude float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pulses++
	return nil
}

// EyeGaze implements hmd.Session.
func (r *Replayer) EyeGaze(seconds float64) (hmd.EyeGaze, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f := r.frame(); f != nil && f.Gaze != nil {
		return *f.Gaze, true, nil
	}
	return hmd.EyeGaze{}, false, nil
}

// RecenterTrackingOrigin implements hmd.Session.
func (r *Replayer) RecenterTrackingOrigin() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recenters++
	return nil
}

// Status implements hmd.Session. Before the first frame the headset is
// reported visible and mounted.
func (r *Replayer) Status() (hmd.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f := r.frame(); f != nil {
		return f.Status, nil
	}
	if len(r.frames) > 0 {
		return r.frames[0].Status, nil
	}
	return hmd.Status{IsVisible: true, HmdMounted: true}, nil
}

// TimeSeconds implements hmd.Session.
func (r *Replayer) TimeSeconds() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f := r.frame(); f != nil {
		return f.Input.TimeInSeconds
	}
	return 0
}

var _ hmd.Session = (*Replayer)(nil)
