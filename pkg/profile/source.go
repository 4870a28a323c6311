package profile

import (
	"fmt"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
)

// Source selects the hardware input backing one binding.
type Source struct {
	// Field is the InputState member read. FieldNone for pose and haptic
	// bindings.
	Field hmd.Field

	// Mask is the bit tested in a mask field.
	Mask hmd.Button

	// Axis selects one component of a vector field: 0 for x, 1 for y and
	// -1 for both.
	Axis int

	// RealPath is the binding in the controller's own profile.
	RealPath string
}

// Kind returns the shape of the selected field.
func (s Source) Kind() hmd.FieldKind {
	return s.Field.Kind()
}

// String describes the source for logs.
func (s Source) String() string {
	switch s.Kind() {
	case hmd.KindMask:
		return fmt.Sprintf("%s[%s] <- %s", s.Field, s.Mask, s.RealPath)
	case hmd.KindVector:
		if s.Axis >= 0 {
			return fmt.Sprintf("%s.%c <- %s", s.Field, "xy"[s.Axis], s.RealPath)
		}
	}
	if s.Field == hmd.FieldNone {
		return s.RealPath
	}
	return fmt.Sprintf("%s <- %s", s.Field, s.RealPath)
}

func button(field hmd.Field, mask hmd.Button) Source {
	return Source{Field: field, Mask: mask, Axis: -1}
}

func scalar(field hmd.Field) Source {
	return Source{Field: field, Axis: -1}
}

func vector(field hmd.Field, axis int) Source {
	return Source{Field: field, Axis: axis}
}

func none() Source {
	return Source{Axis: -1}
}
