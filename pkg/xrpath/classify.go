package xrpath

import "strings"

// Side identifies a hand. Values index per-hand arrays.
type Side int

const (
	// SideNone means the path does not target a supported user path.
	SideNone Side = -1
	// SideLeft is /user/hand/left.
	SideLeft Side = 0
	// SideRight is /user/hand/right.
	SideRight Side = 1
	// SideCount is the number of hands. It is also returned for valid
	// non-hand user paths (head, gamepad, eye tracker, trackers).
	SideCount Side = 2
)

// String returns "Left", "Right" or "None".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// IsHand reports whether s is one of the two hands.
func (s Side) IsHand() bool {
	return s == SideLeft || s == SideRight
}

// Well-known top-level user paths.
const (
	UserHandLeft    = "/user/hand/left"
	UserHandRight   = "/user/hand/right"
	UserHead        = "/user/head"
	UserGamepad     = "/user/gamepad"
	UserEyes        = "/user/eyes_ext"
	UserViveTracker = "/user/vive_tracker_htcx"

	// TrackerRolePrefix is the prefix of every tracker role user path.
	TrackerRolePrefix = "/user/vive_tracker_htcx/role/"

	// EyeGazePose is the only component of the eye gaze profile.
	EyeGazePose = "/user/eyes_ext/input/gaze_ext/pose"

	// HapticSuffix terminates every haptic output binding.
	HapticSuffix = "/output/haptic"
	// GripPoseSuffix terminates grip pose bindings.
	GripPoseSuffix = "/input/grip/pose"
	// AimPoseSuffix terminates aim pose bindings.
	AimPoseSuffix = "/input/aim/pose"
)

// HandPath returns the user path of a hand.
func HandPath(s Side) string {
	switch s {
	case SideLeft:
		return UserHandLeft
	case SideRight:
		return UserHandRight
	default:
		return ""
	}
}

// SideOf classifies a full path. Hand paths return their side. With
// allowExtra, the head, gamepad, eye tracker and tracker user paths return
// SideCount. Everything else returns SideNone.
func SideOf(fullPath string, allowExtra bool) Side {
	switch {
	case strings.HasPrefix(fullPath, UserHandLeft):
		return SideLeft
	case strings.HasPrefix(fullPath, UserHandRight):
		return SideRight
	case allowExtra && (strings.HasPrefix(fullPath, UserHead) ||
		strings.HasPrefix(fullPath, UserGamepad) ||
		strings.HasPrefix(fullPath, UserEyes) ||
		strings.HasPrefix(fullPath, UserViveTracker)):
		return SideCount
	}
	return SideNone
}

// IsEyeTracker reports whether fullPath names the eye gaze pose.
func IsEyeTracker(fullPath string) bool {
	return fullPath == EyeGazePose
}

// TrackerRole returns the role segment of a tracker path, for example
// "waist" for "/user/vive_tracker_htcx/role/waist/input/grip/pose".
func TrackerRole(fullPath string) string {
	if !strings.HasPrefix(fullPath, TrackerRolePrefix) {
		return ""
	}
	role := fullPath[len(TrackerRolePrefix):]
	if i := strings.IndexByte(role, '/'); i >= 0 {
		role = role[:i]
	}
	return role
}

// TrackerRolePath returns the user path for a tracker role.
func TrackerRolePath(role string) string {
	if role == "" {
		return ""
	}
	return TrackerRolePrefix + role
}

// SplitUserPath splits a binding path into its user path and component,
// for example "/user/hand/left" and "/input/trigger/value".
func SplitUserPath(fullPath string) (user, component string) {
	for _, prefix := range []string{UserHandLeft, UserHandRight, UserHead, UserGamepad, UserEyes} {
		if strings.HasPrefix(fullPath, prefix+"/") {
			return prefix, fullPath[len(prefix):]
		}
	}
	if role := TrackerRole(fullPath); role != "" {
		user = TrackerRolePath(role)
		return user, fullPath[len(user):]
	}
	return fullPath, ""
}
