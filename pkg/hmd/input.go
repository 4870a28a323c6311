package hmd

import (
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Button is a bit in the per-hand button and touch masks.
type Button uint32

const (
	ButtonSystem Button = 1 << iota
	ButtonApplicationMenu
	ButtonGrip
	ButtonDpadLeft
	ButtonDpadUp
	ButtonDpadRight
	ButtonDpadDown
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonTrigger
	ButtonJoyStick
	ButtonTouchPad
)

var buttonNames = []struct {
	b    Button
	name string
}{
	{ButtonSystem, "system"},
	{ButtonApplicationMenu, "menu"},
	{ButtonGrip, "grip"},
	{ButtonDpadLeft, "dpad_left"},
	{ButtonDpadUp, "dpad_up"},
	{ButtonDpadRight, "dpad_right"},
	{ButtonDpadDown, "dpad_down"},
	{ButtonA, "a"},
	{ButtonB, "b"},
	{ButtonX, "x"},
	{ButtonY, "y"},
	{ButtonTrigger, "trigger"},
	{ButtonJoyStick, "joystick"},
	{ButtonTouchPad, "touchpad"},
}

// String returns the button name, or "unknown" for combined masks.
func (b Button) String() string {
	for _, n := range buttonNames {
		if n.b == b {
			return n.name
		}
	}
	return "unknown"
}

// ParseButton returns the button with the given name.
func ParseButton(name string) (Button, bool) {
	for _, n := range buttonNames {
		if n.name == name {
			return n.b, true
		}
	}
	return 0, false
}

// InputState is one latched sample of every controller input.
// Per-hand arrays are indexed by xrpath.SideLeft and xrpath.SideRight.
type InputState struct {
	TimeInSeconds float64            `cbor:"1,keyasint"`
	HandButtons   [2]uint32          `cbor:"2,keyasint"`
	HandTouches   [2]uint32          `cbor:"3,keyasint"`
	Trigger       [2]float32         `cbor:"4,keyasint"`
	Grip          [2]float32         `cbor:"5,keyasint"`
	GripForce     [2]float32         `cbor:"6,keyasint"`
	JoyStick      [2]xrmath.Vector2f `cbor:"7,keyasint"`
	TouchPad      [2]xrmath.Vector2f `cbor:"8,keyasint"`
	TouchPadForce [2]float32         `cbor:"9,keyasint"`
	FingerIndex   [2]float32         `cbor:"10,keyasint"`
	FingerMiddle  [2]float32         `cbor:"11,keyasint"`
	FingerRing    [2]float32         `cbor:"12,keyasint"`
	FingerPinky   [2]float32         `cbor:"13,keyasint"`
}

// Pressed reports whether any of the buttons in mask is held on side.
func (s *InputState) Pressed(side xrpath.Side, mask Button) bool {
	if !side.IsHand() {
		return false
	}
	return s.HandButtons[side]&uint32(mask) != 0
}

// FieldKind is the shape of the value a Field selects.
type FieldKind uint8

const (
	// KindNone selects nothing. Pose and haptic bindings use it.
	KindNone FieldKind = iota
	// KindMask selects a bitmask; a binding tests one bit of it.
	KindMask
	// KindScalar selects a float in [0, 1].
	KindScalar
	// KindVector selects a 2-D axis pair.
	KindVector
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case KindMask:
		return "button"
	case KindScalar:
		return "float"
	case KindVector:
		return "vector2"
	default:
		return "none"
	}
}

// Field names one per-hand value of an InputState.
type Field uint8

const (
	FieldNone Field = iota
	FieldButtons
	FieldTouches
	FieldTrigger
	FieldGrip
	FieldGripForce
	FieldTouchPadForce
	FieldFingerIndex
	FieldFingerMiddle
	FieldFingerRing
	FieldFingerPinky
	FieldJoyStick
	FieldTouchPad
)

// Kind returns the shape of the field.
func (f Field) Kind() FieldKind {
	switch f {
	case FieldButtons, FieldTouches:
		return KindMask
	case FieldTrigger, FieldGrip, FieldGripForce, FieldTouchPadForce,
		FieldFingerIndex, FieldFingerMiddle, FieldFingerRing, FieldFingerPinky:
		return KindScalar
	case FieldJoyStick, FieldTouchPad:
		return KindVector
	default:
		return KindNone
	}
}

// String returns the snapshot member name.
func (f Field) String() string {
	switch f {
	case FieldButtons:
		return "HandButtons"
	case FieldTouches:
		return "HandTouches"
	case FieldTrigger:
		return "Trigger"
	case FieldGrip:
		return "Grip"
	case FieldGripForce:
		return "GripForce"
	case FieldTouchPadForce:
		return "TouchPadForce"
	case FieldFingerIndex:
		return "FingerIndex"
	case FieldFingerMiddle:
		return "FingerMiddle"
	case FieldFingerRing:
		return "FingerRing"
	case FieldFingerPinky:
		return "FingerPinky"
	case FieldJoyStick:
		return "JoyStick"
	case FieldTouchPad:
		return "TouchPad"
	default:
		return "None"
	}
}

// Mask returns the bitmask field f for side. Non-mask fields return 0.
func (s *InputState) Mask(f Field, side xrpath.Side) uint32 {
	if !side.IsHand() {
		return 0
	}
	switch f {
	case FieldButtons:
		return s.HandButtons[side]
	case FieldTouches:
		return s.HandTouches[side]
	}
	return 0
}

// Scalar returns the float field f for side. Non-scalar fields return 0.
func (s *InputState) Scalar(f Field, side xrpath.Side) float32 {
	if !side.IsHand() {
		return 0
	}
	switch f {
	case FieldTrigger:
		return s.Trigger[side]
	case FieldGrip:
		return s.Grip[side]
	case FieldGripForce:
		return s.GripForce[side]
	case FieldTouchPadForce:
		return s.TouchPadForce[side]
	case FieldFingerIndex:
		return s.FingerIndex[side]
	case FieldFingerMiddle:
		return s.FingerMiddle[side]
	case FieldFingerRing:
		return s.FingerRing[side]
	case FieldFingerPinky:
		return s.FingerPinky[side]
	}
	return 0
}

// Vector returns the 2-D field f for side. Non-vector fields return zero.
func (s *InputState) Vector(f Field, side xrpath.Side) xrmath.Vector2f {
	if !side.IsHand() {
		return xrmath.Vector2f{}
	}
	switch f {
	case FieldJoyStick:
		return s.JoyStick[side]
	case FieldTouchPad:
		return s.TouchPad[side]
	}
	return xrmath.Vector2f{}
}
