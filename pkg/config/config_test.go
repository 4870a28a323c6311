package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	require.NoError(t, ValidateSchema(&s))

	assert.InDelta(t, 0.02, s.Deadzone(), 1e-6)
	assert.True(t, s.RecenterOnStartup)
	assert.Equal(t, profile.ForcedNone, s.Forced())
	assert.Empty(t, s.DebugController())

	off := s.Offsets()
	assert.True(t, xrmath.Equals(xrmath.IdentityPose(), off.Grip))
	assert.True(t, xrmath.Equals(xrmath.IdentityPose(), off.Aim))
	assert.True(t, xrmath.Equals(xrmath.IdentityPose(), off.Hand))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"deadzone negative", func(s *Settings) { s.JoystickDeadzone = -1 }},
		{"deadzone too large", func(s *Settings) { s.JoystickDeadzone = 100 }},
		{"forced profile", func(s *Settings) { s.ForceInteractionProfile = 3 }},
		{"debug controller", func(s *Settings) { s.DebugControllerType = 4 }},
		{"floor height", func(s *Settings) { s.FloorHeight = -0.5 }},
		{"tracker role", func(s *Settings) { s.TrackerRoles = map[string]string{"LHR-1": "tail"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}

func TestValidateSchemaRejectsOutOfRangeOffsets(t *testing.T) {
	s := Default()
	s.AimPose.RotX = 270
	assert.NoError(t, s.Validate())
	assert.ErrorIs(t, ValidateSchema(&s), ErrInvalidSettings)
}

func TestSettingsConversions(t *testing.T) {
	s := Default()
	s.ForceInteractionProfile = ForceMSMotion
	s.DebugControllerType = DebugControllerIndex
	s.AimPose = PoseOffset{OffsetY: 50}
	s.TrackerRoles = map[string]string{"LHR-ABCD": "waist"}

	assert.Equal(t, profile.ForcedMSMotion, s.Forced())
	assert.Equal(t, profile.ControllerIndex, s.DebugController())
	assert.InDelta(t, 0.05, s.Offsets().Aim.Position.Y, 1e-6)
	assert.Equal(t, "/user/vive_tracker_htcx/role/waist", s.TrackerRolePath("lhr-abcd"))
	assert.Empty(t, s.TrackerRolePath("lhr-0000"))

	rot := PoseOffset{RotX: 90}.Pose()
	assert.True(t, rot.Orientation.IsNormalized())
}

func TestCloneCopiesTrackerRoles(t *testing.T) {
	s := Default()
	s.TrackerRoles = map[string]string{"a": "waist"}
	c := s.Clone()
	c.TrackerRoles["a"] = "chest"
	assert.Equal(t, "waist", s.TrackerRoles["a"])
}

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"settings.yaml": "joystick_deadzone: 10\nswap_grip_aim_poses: true\naim_pose:\n  offset_z: -20\ntracker_roles:\n  lhr-1: waist\n",
		"settings.toml": "joystick_deadzone = 10\nswap_grip_aim_poses = true\n[aim_pose]\noffset_z = -20\n[tracker_roles]\nlhr-1 = \"waist\"\n",
		"settings.json": `{"joystick_deadzone": 10, "swap_grip_aim_poses": true, "aim_pose": {"offset_z": -20}, "tracker_roles": {"lhr-1": "waist"}}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			s, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, 10, s.JoystickDeadzone)
			assert.True(t, s.SwapGripAimPoses)
			assert.True(t, s.RecenterOnStartup, "absent fields keep their default")
			assert.InDelta(t, -20, s.AimPose.OffsetZ, 1e-6)
			assert.Equal(t, "waist", s.TrackerRoles["lhr-1"])
		})
	}
}

func TestLoadFileMissingYieldsDefaults(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "settings.ini")
	require.NoError(t, os.WriteFile(unknown, []byte("x=1"), 0o644))
	_, err := LoadFile(unknown)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	invalid := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("force_interaction_profile: 7\n"), 0o644))
	_, err = LoadFile(invalid)
	assert.ErrorIs(t, err, ErrInvalidSettings)

	broken := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	_, err = LoadFile(broken)
	assert.Error(t, err)
}

func TestSaveFileRoundTrip(t *testing.T) {
	s := Default()
	s.FloorHeight = 1.7
	s.HandPose = PoseOffset{RotY: 15, OffsetX: 3}
	s.TrackerRoles = map[string]string{"lhr-2": "chest"}

	for _, ext := range []string{".yaml", ".toml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings"+ext)
			require.NoError(t, SaveFile(&s, path))
			got, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestLoaderWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("joystick_deadzone: 5\n"), 0o644))

	l := NewLoader(path, nil)
	l.SetDebounce(10 * time.Millisecond)
	s, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, s.JoystickDeadzone)

	changed := make(chan Settings, 4)
	l.OnChange(func(s Settings) { changed <- s })
	require.NoError(t, l.Watch())
	defer l.Close()

	require.NoError(t, os.WriteFile(path, []byte("joystick_deadzone: 20\n"), 0o644))

	select {
	case s := <-changed:
		assert.Equal(t, 20, s.JoystickDeadzone)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	assert.Equal(t, 20, l.Settings().JoystickDeadzone)
}

func TestLoaderReportsInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("joystick_deadzone: 5\n"), 0o644))

	l := NewLoader(path, nil)
	l.SetDebounce(10 * time.Millisecond)
	_, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, l.Watch())
	defer l.Close()

	require.NoError(t, os.WriteFile(path, []byte("joystick_deadzone: 500\n"), 0o644))

	select {
	case err := <-l.Errors():
		assert.ErrorIs(t, err, ErrInvalidSettings)
	case <-time.After(5 * time.Second):
		t.Fatal("no error after invalid write")
	}
	assert.Equal(t, 5, l.Settings().JoystickDeadzone, "last good settings kept")
}
