// Package config holds the runtime settings: input deadzone, forced
// interaction profile, controller pose offsets, tracker roles and debug
// overrides. Settings are read from YAML, TOML or JSON files, checked
// against an embedded JSON schema and can be watched for changes.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Errors returned by the settings layer.
var (
	ErrInvalidSettings = errors.New("invalid settings")
	ErrUnknownFormat   = errors.New("unknown settings format")
)

// Forced interaction profile values.
const (
	ForceNone     = 0
	ForceTouch    = 1
	ForceMSMotion = 2
)

// Debug controller type values.
const (
	DebugControllerNone    = 0
	DebugControllerVive    = 1
	DebugControllerIndex   = 2
	DebugControllerCrystal = 3
)

// PoseOffset is a controller pose adjustment. Rotations are in degrees and
// offsets in millimeters.
type PoseOffset struct {
	RotX    float32 `yaml:"rot_x" toml:"rot_x" json:"rot_x"`
	RotY    float32 `yaml:"rot_y" toml:"rot_y" json:"rot_y"`
	RotZ    float32 `yaml:"rot_z" toml:"rot_z" json:"rot_z"`
	OffsetX float32 `yaml:"offset_x" toml:"offset_x" json:"offset_x"`
	OffsetY float32 `yaml:"offset_y" toml:"offset_y" json:"offset_y"`
	OffsetZ float32 `yaml:"offset_z" toml:"offset_z" json:"offset_z"`
}

// Pose returns the offset as a rigid transform in meters.
func (o PoseOffset) Pose() xrmath.Pose {
	rotation := xrmath.RotationRollPitchYaw(
		xrmath.DegreeToRad(o.RotX),
		xrmath.DegreeToRad(o.RotY),
		xrmath.DegreeToRad(o.RotZ))
	return xrmath.MakePose(rotation, xrmath.Vector3f{
		X: o.OffsetX / 1000,
		Y: o.OffsetY / 1000,
		Z: o.OffsetZ / 1000,
	})
}

// Settings configures the runtime.
type Settings struct {
	// JoystickDeadzone is the thumbstick and trackpad deadzone in hundredths.
	JoystickDeadzone int `yaml:"joystick_deadzone" toml:"joystick_deadzone" json:"joystick_deadzone"`

	// SwapGripAimPoses makes grip bindings track the aim pose and vice versa.
	SwapGripAimPoses bool `yaml:"swap_grip_aim_poses" toml:"swap_grip_aim_poses" json:"swap_grip_aim_poses"`

	// ForceInteractionProfile is ForceNone, ForceTouch or ForceMSMotion.
	ForceInteractionProfile int `yaml:"force_interaction_profile" toml:"force_interaction_profile" json:"force_interaction_profile"`

	// RecenterOnStartup recenters the tracking origin when a session is created.
	RecenterOnStartup bool `yaml:"recenter_on_startup" toml:"recenter_on_startup" json:"recenter_on_startup"`

	// FloorHeight is the height of the LOCAL origin above the floor, in meters.
	FloorHeight float32 `yaml:"floor_height" toml:"floor_height" json:"floor_height"`

	AimPose  PoseOffset `yaml:"aim_pose" toml:"aim_pose" json:"aim_pose"`
	GripPose PoseOffset `yaml:"grip_pose" toml:"grip_pose" json:"grip_pose"`
	HandPose PoseOffset `yaml:"hand_pose" toml:"hand_pose" json:"hand_pose"`

	// DebugControllerType overrides the detected type of active controllers.
	DebugControllerType int `yaml:"debug_controller_type" toml:"debug_controller_type" json:"debug_controller_type"`

	// TrackerRoles maps tracker serial numbers to tracker roles, for
	// example "lhr-1234abcd" to "waist".
	TrackerRoles map[string]string `yaml:"tracker_roles" toml:"tracker_roles" json:"tracker_roles"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		JoystickDeadzone:  2,
		RecenterOnStartup: true,
	}
}

// Validate checks value ranges and tracker roles.
func (s *Settings) Validate() error {
	var problems []string
	if s.JoystickDeadzone < 0 || s.JoystickDeadzone >= 100 {
		problems = append(problems, fmt.Sprintf("joystick_deadzone %d out of range [0, 100)", s.JoystickDeadzone))
	}
	if s.ForceInteractionProfile < ForceNone || s.ForceInteractionProfile > ForceMSMotion {
		problems = append(problems, fmt.Sprintf("force_interaction_profile %d unknown", s.ForceInteractionProfile))
	}
	if s.DebugControllerType < DebugControllerNone || s.DebugControllerType > DebugControllerCrystal {
		problems = append(problems, fmt.Sprintf("debug_controller_type %d unknown", s.DebugControllerType))
	}
	if s.FloorHeight < 0 {
		problems = append(problems, "floor_height must not be negative")
	}
	for serial, role := range s.TrackerRoles {
		if _, ok := profile.RoleName(role); !ok {
			problems = append(problems, fmt.Sprintf("tracker %q: unknown role %q", serial, role))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(problems, "; "))
	}
	return nil
}

// Deadzone returns the joystick deadzone as a fraction.
func (s *Settings) Deadzone() float32 {
	return float32(s.JoystickDeadzone) / 100
}

// Forced returns the forced interaction profile.
func (s *Settings) Forced() profile.Forced {
	switch s.ForceInteractionProfile {
	case ForceTouch:
		return profile.ForcedTouch
	case ForceMSMotion:
		return profile.ForcedMSMotion
	default:
		return profile.ForcedNone
	}
}

// DebugController returns the controller type override, or "".
func (s *Settings) DebugController() string {
	switch s.DebugControllerType {
	case DebugControllerVive:
		return profile.ControllerVive
	case DebugControllerIndex:
		return profile.ControllerIndex
	case DebugControllerCrystal:
		return profile.ControllerCrystal
	default:
		return ""
	}
}

// Offsets returns the configured controller pose offsets.
func (s *Settings) Offsets() action.Offsets {
	return action.Offsets{
		Grip: s.GripPose.Pose(),
		Aim:  s.AimPose.Pose(),
		Hand: s.HandPose.Pose(),
	}
}

// TrackerRolePath returns the role user path assigned to a tracker serial,
// or "" if the tracker has no role.
func (s *Settings) TrackerRolePath(serial string) string {
	serial = strings.ToLower(serial)
	for k, role := range s.TrackerRoles {
		if strings.ToLower(k) == serial {
			return xrpath.TrackerRolePath(role)
		}
	}
	return ""
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() Settings {
	c := *s
	if s.TrackerRoles != nil {
		c.TrackerRoles = make(map[string]string, len(s.TrackerRoles))
		for k, v := range s.TrackerRoles {
			c.TrackerRoles[k] = v
		}
	}
	return c
}
