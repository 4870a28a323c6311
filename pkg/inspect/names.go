package inspect

import (
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/space"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Name tables for resolving human-readable names.
var (
	sideNames = map[string]xrpath.Side{
		"left":  xrpath.SideLeft,
		"l":     xrpath.SideLeft,
		"right": xrpath.SideRight,
		"r":     xrpath.SideRight,
	}

	// Aliases not used by the button table.
	buttonAliases = map[string]hmd.Button{
		"app":        hmd.ButtonApplicationMenu,
		"squeeze":    hmd.ButtonGrip,
		"thumbstick": hmd.ButtonJoyStick,
		"stick":      hmd.ButtonJoyStick,
		"trackpad":   hmd.ButtonTouchPad,
		"pad":        hmd.ButtonTouchPad,
	}

	fieldNames = map[string]hmd.Field{
		"buttons":       hmd.FieldButtons,
		"touches":       hmd.FieldTouches,
		"trigger":       hmd.FieldTrigger,
		"grip":          hmd.FieldGrip,
		"squeeze":       hmd.FieldGrip,
		"gripforce":     hmd.FieldGripForce,
		"touchpadforce": hmd.FieldTouchPadForce,
		"index":         hmd.FieldFingerIndex,
		"middle":        hmd.FieldFingerMiddle,
		"ring":          hmd.FieldFingerRing,
		"pinky":         hmd.FieldFingerPinky,
		"joystick":      hmd.FieldJoyStick,
		"thumbstick":    hmd.FieldJoyStick,
		"touchpad":      hmd.FieldTouchPad,
		"trackpad":      hmd.FieldTouchPad,
	}

	referenceNames = map[string]space.ReferenceType{
		"view":         space.ReferenceView,
		"local":        space.ReferenceLocal,
		"stage":        space.ReferenceStage,
		"combined_eye": space.ReferenceCombinedEye,
	}
)

// ResolveSide resolves a hand name to its side (case-insensitive).
func ResolveSide(name string) (xrpath.Side, bool) {
	side, ok := sideNames[strings.ToLower(name)]
	if !ok {
		return xrpath.SideNone, false
	}
	return side, true
}

// ResolveButton resolves a button name to its mask bit (case-insensitive).
// Several names joined by "+" resolve to the combined mask.
func ResolveButton(name string) (hmd.Button, bool) {
	var mask hmd.Button
	for _, part := range strings.Split(strings.ToLower(name), "+") {
		b, ok := hmd.ParseButton(part)
		if !ok {
			b, ok = buttonAliases[part]
		}
		if !ok {
			return 0, false
		}
		mask |= b
	}
	return mask, true
}

// ResolveField resolves an input field name (case-insensitive).
func ResolveField(name string) (hmd.Field, bool) {
	f, ok := fieldNames[strings.ToLower(name)]
	return f, ok
}

// ResolveReferenceType resolves a reference space name (case-insensitive).
func ResolveReferenceType(name string) (space.ReferenceType, bool) {
	t, ok := referenceNames[strings.ToLower(name)]
	return t, ok
}

// GetButtonNames returns the names of the buttons set in mask, in bit order.
func GetButtonNames(mask uint32) []string {
	var names []string
	for bit := hmd.ButtonSystem; bit <= hmd.ButtonTouchPad; bit <<= 1 {
		if mask&uint32(bit) != 0 {
			names = append(names, bit.String())
		}
	}
	return names
}
