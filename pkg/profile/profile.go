package profile

import (
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
)

//go:generate go run ../../cmd/xrbridge-profilegen -input profiles.yaml -output components_gen.go

// Profile is one of the supported interaction profiles.
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileSimple
	ProfileVive
	ProfileIndex
	ProfileTouch
	ProfileMSMotion
	ProfileViveTracker
	ProfileEyeGaze
)

var profilePaths = [...]string{
	ProfileNone:        "",
	ProfileSimple:      "/interaction_profiles/khr/simple_controller",
	ProfileVive:        "/interaction_profiles/htc/vive_controller",
	ProfileIndex:       "/interaction_profiles/valve/index_controller",
	ProfileTouch:       "/interaction_profiles/oculus/touch_controller",
	ProfileMSMotion:    "/interaction_profiles/microsoft/motion_controller",
	ProfileViveTracker: "/interaction_profiles/htc/vive_tracker_htcx",
	ProfileEyeGaze:     "/interaction_profiles/ext/eye_gaze_interaction",
}

// Path returns the interaction profile path, or "" for ProfileNone.
func (p Profile) Path() string {
	if int(p) < len(profilePaths) {
		return profilePaths[p]
	}
	return ""
}

// String returns the profile path, or "none".
func (p Profile) String() string {
	if path := p.Path(); path != "" {
		return path
	}
	return "none"
}

// IsController reports whether p binds under the hand user paths.
func (p Profile) IsController() bool {
	switch p {
	case ProfileSimple, ProfileVive, ProfileIndex, ProfileTouch, ProfileMSMotion:
		return true
	}
	return false
}

// Parse returns the profile with the given path.
func Parse(path string) (Profile, bool) {
	if path == "" {
		return ProfileNone, false
	}
	for p, s := range profilePaths {
		if s == path {
			return Profile(p), true
		}
	}
	return ProfileNone, false
}

// Profiles returns every profile except ProfileNone.
func Profiles() []Profile {
	return []Profile{ProfileSimple, ProfileVive, ProfileIndex, ProfileTouch, ProfileMSMotion, ProfileViveTracker, ProfileEyeGaze}
}

// Forced overrides the profile selection cascade.
type Forced uint8

const (
	ForcedNone Forced = iota
	ForcedTouch
	ForcedMSMotion
)

// String returns the forced profile name.
func (f Forced) String() string {
	switch f {
	case ForcedTouch:
		return "touch"
	case ForcedMSMotion:
		return "motion"
	default:
		return "none"
	}
}

// Family classifies a physical controller.
type Family uint8

const (
	// FamilyNone means no controller is connected.
	FamilyNone Family = iota
	FamilyVive
	FamilyIndex
	FamilyCrystal
	// FamilySimple covers every unrecognized controller.
	FamilySimple
)

// Controller type names reported by the SDK.
const (
	ControllerVive    = "vive_controller"
	ControllerIndex   = "knuckles"
	ControllerCrystal = "pimax_crystal"
)

// ParseFamily classifies an SDK controller type. "" is FamilyNone.
func ParseFamily(controllerType string) Family {
	switch controllerType {
	case "":
		return FamilyNone
	case ControllerVive:
		return FamilyVive
	case ControllerIndex:
		return FamilyIndex
	case ControllerCrystal:
		return FamilyCrystal
	default:
		return FamilySimple
	}
}

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyVive:
		return "vive"
	case FamilyIndex:
		return "index"
	case FamilyCrystal:
		return "crystal"
	case FamilySimple:
		return "simple"
	default:
		return "none"
	}
}

// Preferred returns the profile whose bindings fit the family best.
func (f Family) Preferred() Profile {
	switch f {
	case FamilyVive:
		return ProfileVive
	case FamilyIndex:
		return ProfileIndex
	case FamilyCrystal:
		return ProfileTouch
	case FamilySimple:
		return ProfileSimple
	default:
		return ProfileNone
	}
}

// LocalizedType returns the display name of the controller.
func (f Family) LocalizedType() string {
	switch f {
	case FamilyVive:
		return "Vive Controller"
	case FamilyIndex:
		return "Index Controller"
	case FamilyCrystal:
		return "Crystal Controller"
	case FamilySimple:
		return "Controller"
	default:
		return ""
	}
}

// AimPose returns the aim pose relative to the controller's grip, for the
// left hand.
func (f Family) AimPose() xrmath.Pose {
	var pitch float32
	switch f {
	case FamilyVive:
		pitch = -45
	case FamilyIndex, FamilyCrystal:
		pitch = -40
	default:
		return xrmath.IdentityPose()
	}
	return xrmath.MakePose(
		xrmath.RotationRollPitchYaw(xrmath.DegreeToRad(pitch), 0, 0),
		xrmath.Vector3f{Z: -0.05})
}

// HandPose returns the hand joint root relative to the controller's grip,
// for the left hand.
func (f Family) HandPose() xrmath.Pose {
	switch f {
	case FamilyVive, FamilyIndex, FamilyCrystal:
		return xrmath.MakePose(
			xrmath.RotationRollPitchYaw(xrmath.DegreeToRad(-32), 0, 0),
			xrmath.Vector3f{X: 0.03, Y: -0.062, Z: -0.1})
	default:
		return xrmath.IdentityPose()
	}
}
