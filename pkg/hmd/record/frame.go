package record

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
)

// Frame is one captured hardware frame.
type Frame struct {
	Input           hmd.InputState               `cbor:"1,keyasint"`
	ControllerTypes [2]string                    `cbor:"2,keyasint"`
	TrackerSerials  []string                     `cbor:"3,keyasint,omitempty"`
	Poses           map[hmd.Device]hmd.PoseState `cbor:"4,keyasint,omitempty"`
	Status          hmd.Status                   `cbor:"5,keyasint"`
	Gaze            *hmd.EyeGaze                 `cbor:"6,keyasint,omitempty"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create frame CBOR encoder mode: %v", err))
	}

	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create frame CBOR decoder mode: %v", err))
	}
}

// ReadFrames decodes every frame of a capture.
func ReadFrames(r io.Reader) ([]Frame, error) {
	dec := decMode.NewDecoder(r)

	var frames []Frame
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if err == io.EOF {
				return frames, nil
			}
			return frames, fmt.Errorf("decode frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}
