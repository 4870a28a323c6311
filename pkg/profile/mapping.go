package profile

import (
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Components shared by every controller family.
var commonMapping = map[string]Source{
	"/input/grip/pose": none(),
	"/input/aim/pose":  none(),
	"/output/haptic":   none(),
}

var viveMapping = map[string]Source{
	"/input/system/click":   button(hmd.FieldButtons, hmd.ButtonSystem),
	"/input/squeeze/click":  button(hmd.FieldButtons, hmd.ButtonGrip),
	"/input/menu/click":     button(hmd.FieldButtons, hmd.ButtonApplicationMenu),
	"/input/trigger/click":  button(hmd.FieldButtons, hmd.ButtonTrigger),
	"/input/trigger/value":  scalar(hmd.FieldTrigger),
	"/input/trackpad":       vector(hmd.FieldTouchPad, -1),
	"/input/trackpad/x":     vector(hmd.FieldTouchPad, 0),
	"/input/trackpad/y":     vector(hmd.FieldTouchPad, 1),
	"/input/trackpad/click": button(hmd.FieldButtons, hmd.ButtonTouchPad),
	"/input/trackpad/touch": button(hmd.FieldTouches, hmd.ButtonTouchPad),
}

var indexMapping = map[string]Source{
	"/input/system/click":     button(hmd.FieldButtons, hmd.ButtonSystem),
	"/input/system/touch":     button(hmd.FieldTouches, hmd.ButtonSystem),
	"/input/a/click":          button(hmd.FieldButtons, hmd.ButtonA),
	"/input/a/touch":          button(hmd.FieldTouches, hmd.ButtonA),
	"/input/b/click":          button(hmd.FieldButtons, hmd.ButtonB),
	"/input/b/touch":          button(hmd.FieldTouches, hmd.ButtonB),
	"/input/squeeze/value":    scalar(hmd.FieldGrip),
	"/input/squeeze/force":    scalar(hmd.FieldGripForce),
	"/input/trigger/click":    button(hmd.FieldButtons, hmd.ButtonTrigger),
	"/input/trigger/value":    scalar(hmd.FieldTrigger),
	"/input/trigger/touch":    button(hmd.FieldTouches, hmd.ButtonTrigger),
	"/input/thumbstick":       vector(hmd.FieldJoyStick, -1),
	"/input/thumbstick/x":     vector(hmd.FieldJoyStick, 0),
	"/input/thumbstick/y":     vector(hmd.FieldJoyStick, 1),
	"/input/thumbstick/click": button(hmd.FieldButtons, hmd.ButtonJoyStick),
	"/input/thumbstick/touch": button(hmd.FieldTouches, hmd.ButtonJoyStick),
	"/input/trackpad":         vector(hmd.FieldTouchPad, -1),
	"/input/trackpad/x":       vector(hmd.FieldTouchPad, 0),
	"/input/trackpad/y":       vector(hmd.FieldTouchPad, 1),
	"/input/trackpad/force":   scalar(hmd.FieldTouchPadForce),
	"/input/trackpad/touch":   button(hmd.FieldTouches, hmd.ButtonTouchPad),
}

var crystalMapping = map[string]Source{
	"/input/x/click":          button(hmd.FieldButtons, hmd.ButtonX),
	"/input/x/touch":          button(hmd.FieldTouches, hmd.ButtonX),
	"/input/y/click":          button(hmd.FieldButtons, hmd.ButtonY),
	"/input/y/touch":          button(hmd.FieldTouches, hmd.ButtonY),
	"/input/a/click":          button(hmd.FieldButtons, hmd.ButtonA),
	"/input/a/touch":          button(hmd.FieldTouches, hmd.ButtonA),
	"/input/b/click":          button(hmd.FieldButtons, hmd.ButtonB),
	"/input/b/touch":          button(hmd.FieldTouches, hmd.ButtonB),
	"/input/menu/click":       button(hmd.FieldButtons, hmd.ButtonApplicationMenu),
	"/input/system/click":     button(hmd.FieldButtons, hmd.ButtonSystem),
	"/input/squeeze/value":    scalar(hmd.FieldGrip),
	"/input/trigger/value":    scalar(hmd.FieldTrigger),
	"/input/trigger/touch":    button(hmd.FieldTouches, hmd.ButtonTrigger),
	"/input/thumbstick":       vector(hmd.FieldJoyStick, -1),
	"/input/thumbstick/x":     vector(hmd.FieldJoyStick, 0),
	"/input/thumbstick/y":     vector(hmd.FieldJoyStick, 1),
	"/input/thumbstick/click": button(hmd.FieldButtons, hmd.ButtonJoyStick),
	"/input/thumbstick/touch": button(hmd.FieldTouches, hmd.ButtonJoyStick),
}

var simpleMapping = map[string]Source{
	"/input/select/click": button(hmd.FieldButtons, hmd.ButtonTrigger),
	"/input/menu/click":   button(hmd.FieldButtons, hmd.ButtonApplicationMenu),
}

func familyMapping(f Family) map[string]Source {
	switch f {
	case FamilyVive:
		return viveMapping
	case FamilyIndex:
		return indexMapping
	case FamilyCrystal:
		return crystalMapping
	case FamilySimple:
		return simpleMapping
	default:
		return nil
	}
}

// Map resolves a binding of the preferred profile of family f to the
// hardware input of that controller. ok is false for inputs the controller
// does not expose.
func Map(f Family, fullPath string) (Source, bool) {
	user, comp := xrpath.SplitUserPath(fullPath)
	if usersOf(user)&usersHands == 0 {
		return Source{}, false
	}
	s, ok := familyMapping(f)[comp]
	if !ok {
		s, ok = commonMapping[comp]
	}
	if !ok || f == FamilyNone {
		return Source{}, false
	}
	s.RealPath = fullPath
	return s, true
}

// MapTracker resolves a tracker binding. Trackers only expose their pose
// and haptics.
func MapTracker(fullPath string) (Source, bool) {
	user, comp := xrpath.SplitUserPath(fullPath)
	if usersOf(user) != usersRoles {
		return Source{}, false
	}
	switch comp {
	case "/input/grip/pose", "/output/haptic":
		s := none()
		s.RealPath = fullPath
		return s, true
	}
	return Source{}, false
}

// Resolve remaps and maps a controller binding in one step.
func Resolve(actual Profile, f Family, fullPath string) (Source, bool) {
	real, ok := Remap(actual, f, fullPath)
	if !ok {
		return Source{}, false
	}
	return Map(f, real)
}
