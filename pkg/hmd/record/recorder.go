package record

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Recorder wraps an hmd.Session and captures what it reports.
// It is safe for concurrent use.
type Recorder struct {
	hmd.Session

	mu      sync.Mutex
	enc     *cbor.Encoder
	closer  io.Closer
	current *Frame
	frames  int
	err     error
}

// NewRecorder records session to w.
func NewRecorder(session hmd.Session, w io.Writer) *Recorder {
	r := &Recorder{Session: session, enc: encMode.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// CreateRecorder records session to a new file at path.
func CreateRecorder(session hmd.Session, path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create capture: %w", err)
	}
	return NewRecorder(session, f), nil
}

// InputState implements hmd.Session. It flushes the previous frame and
// opens a new one.
func (r *Recorder) InputState() (hmd.InputState, error) {
	s, err := r.Session.InputState()
	if err != nil {
		return s, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	r.current = &Frame{Input: s}
	return s, nil
}

// ControllerType implements hmd.Session.
func (r *Recorder) ControllerType(side xrpath.Side) (string, error) {
	t, err := r.Session.ControllerType(side)
	if err == nil && side.IsHand() {
		r.with(func(f *Frame) { f.ControllerTypes[side] = t })
	}
	return t, err
}

// TrackerCount implements hmd.Session.
func (r *Recorder) TrackerCount() (int, error) {
	n, err := r.Session.TrackerCount()
	if err == nil {
		r.with(func(f *Frame) {
			for len(f.TrackerSerials) < n {
				f.TrackerSerials = append(f.TrackerSerials, "")
			}
		})
	}
	return n, err
}

// TrackerSerial implements hmd.Session.
func (r *Recorder) TrackerSerial(index int) (string, error) {
	serial, err := r.Session.TrackerSerial(index)
	if err == nil && index >= 0 {
		r.with(func(f *Frame) {
			for len(f.TrackerSerials) <= index {
				f.TrackerSerials = append(f.TrackerSerials, "")
			}
			f.TrackerSerials[index] = serial
		})
	}
	return serial, err
}

// DevicePose implements hmd.Session.
func (r *Recorder) DevicePose(dev hmd.Device, seconds float64) (hmd.PoseState, error) {
	p, err := r.Session.DevicePose(dev, seconds)
	if err == nil {
		r.with(func(f *Frame) {
			if f.Poses == nil {
				f.Poses = make(map[hmd.Device]hmd.PoseState)
			}
			f.Poses[dev] = p
		})
	}
	return p, err
}

// EyeGaze implements hmd.Session.
func (r *Recorder) EyeGaze(seconds float64) (hmd.EyeGaze, bool, error) {
	g, ok, err := r.Session.EyeGaze(seconds)
	if err == nil && ok {
		r.with(func(f *Frame) {
			gaze := g
			f.Gaze = &gaze
		})
	}
	return g, ok, err
}

// Status implements hmd.Session.
func (r *Recorder) Status() (hmd.Status, error) {
	s, err := r.Session.Status()
	if err == nil {
		r.with(func(f *Frame) { f.Status = s })
	}
	return s, err
}

func (r *Recorder) with(fn func(*Frame)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		fn(r.current)
	}
}

func (r *Recorder) flushLocked() {
	if r.current == nil || r.err != nil {
		return
	}
	if err := r.enc.Encode(r.current); err != nil {
		r.err = fmt.Errorf("encode frame %d: %w", r.frames, err)
		return
	}
	r.frames++
	r.current = nil
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close writes the open frame and closes the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && r.err == nil {
			r.err = err
		}
		r.closer = nil
	}
	return r.err
}

var _ hmd.Session = (*Recorder)(nil)
