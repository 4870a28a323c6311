package xrpath

import "testing"

func TestSideOf(t *testing.T) {
	tests := []struct {
		path       string
		allowExtra bool
		want       Side
	}{
		{"/user/hand/left/input/select/click", false, SideLeft},
		{"/user/hand/right", false, SideRight},
		{"/user/head/input/system/click", false, SideNone},
		{"/user/head/input/system/click", true, SideCount},
		{"/user/gamepad/input/a/click", true, SideCount},
		{"/user/eyes_ext/input/gaze_ext/pose", true, SideCount},
		{"/user/vive_tracker_htcx/role/waist/input/grip/pose", true, SideCount},
		{"/user/treadmill", true, SideNone},
		{"", false, SideNone},
	}

	for _, tt := range tests {
		if got := SideOf(tt.path, tt.allowExtra); got != tt.want {
			t.Errorf("SideOf(%q, %v) = %v, want %v", tt.path, tt.allowExtra, got, tt.want)
		}
	}
}

func TestTrackerRole(t *testing.T) {
	if got := TrackerRole("/user/vive_tracker_htcx/role/left_foot/input/grip/pose"); got != "left_foot" {
		t.Errorf("TrackerRole = %q", got)
	}
	if got := TrackerRole("/user/vive_tracker_htcx/role/chest"); got != "chest" {
		t.Errorf("TrackerRole = %q", got)
	}
	if got := TrackerRole("/user/hand/left"); got != "" {
		t.Errorf("TrackerRole(hand) = %q", got)
	}
	if got := TrackerRolePath("waist"); got != "/user/vive_tracker_htcx/role/waist" {
		t.Errorf("TrackerRolePath = %q", got)
	}
}

func TestSplitUserPath(t *testing.T) {
	tests := []struct {
		path, user, component string
	}{
		{"/user/hand/right/input/trigger/value", "/user/hand/right", "/input/trigger/value"},
		{"/user/eyes_ext/input/gaze_ext/pose", "/user/eyes_ext", "/input/gaze_ext/pose"},
		{"/user/vive_tracker_htcx/role/waist/output/haptic", "/user/vive_tracker_htcx/role/waist", "/output/haptic"},
		{"/user/hand/left", "/user/hand/left", ""},
	}

	for _, tt := range tests {
		user, component := SplitUserPath(tt.path)
		if user != tt.user || component != tt.component {
			t.Errorf("SplitUserPath(%q) = %q, %q; want %q, %q", tt.path, user, component, tt.user, tt.component)
		}
	}
}

func TestIsEyeTracker(t *testing.T) {
	if !IsEyeTracker(EyeGazePose) {
		t.Error("gaze pose should be the eye tracker")
	}
	if IsEyeTracker("/user/eyes_ext") {
		t.Error("user path alone is not the eye tracker component")
	}
}
