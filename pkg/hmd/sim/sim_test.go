package sim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

func TestInputLatchesManualClock(t *testing.T) {
	d := NewManual()
	d.Press(xrpath.SideLeft, hmd.ButtonTrigger|hmd.ButtonSystem)
	d.Release(xrpath.SideLeft, hmd.ButtonSystem)
	d.SetScalar(xrpath.SideRight, hmd.FieldGrip, 0.7)
	d.SetVector(xrpath.SideRight, hmd.FieldJoyStick, xrmath.Vector2f{X: 1})
	d.Advance(500 * time.Millisecond)

	s, err := d.InputState()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, s.TimeInSeconds, 1e-9)
	assert.Equal(t, uint32(hmd.ButtonTrigger), s.HandButtons[xrpath.SideLeft])
	assert.Equal(t, float32(0.7), s.Grip[xrpath.SideRight])
	assert.Equal(t, xrmath.Vector2f{X: 1}, s.JoyStick[xrpath.SideRight])
}

func TestTrackerSlots(t *testing.T) {
	d := NewManual()

	i, err := d.ConnectTracker("LHR-A", hmd.PoseState{})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	_, err = d.ConnectTracker("LHR-B", hmd.PoseState{StatusFlags: hmd.StatusPositionTracked})
	require.NoError(t, err)

	require.NoError(t, d.DisconnectTracker("lhr-a"))
	n, _ := d.TrackerCount()
	assert.Equal(t, 1, n)

	serial, _ := d.TrackerSerial(0)
	assert.Equal(t, "LHR-B", serial)
	pose, _ := d.DevicePose(hmd.Tracker(0), 0)
	assert.Equal(t, hmd.StatusPositionTracked, pose.StatusFlags)

	assert.ErrorIs(t, d.DisconnectTracker("LHR-C"), ErrNoTracker)
}

func TestControllerPoseRequiresController(t *testing.T) {
	d := NewManual()
	d.SetPose(hmd.DeviceLeftController, hmd.PoseState{StatusFlags: hmd.StatusOrientationTracked})

	pose, err := d.DevicePose(hmd.DeviceLeftController, 1)
	require.NoError(t, err)
	assert.Zero(t, pose.StatusFlags)

	d.SetControllerType(xrpath.SideLeft, "knuckles")
	pose, _ = d.DevicePose(hmd.DeviceLeftController, 1)
	assert.Equal(t, hmd.StatusOrientationTracked, pose.StatusFlags)
}

func TestFailOn(t *testing.T) {
	d := NewManual()
	boom := errors.New("usb reset")

	d.FailOn(OpInputState, boom)
	_, err := d.InputState()
	assert.ErrorIs(t, err, boom)

	d.FailOn(OpInputState, nil)
	_, err = d.InputState()
	assert.NoError(t, err)
}

func TestHapticsAndRecenter(t *testing.T) {
	d := NewManual()

	require.NoError(t, d.TriggerHapticPulse(hmd.DeviceRightController, 0.5))
	require.NoError(t, d.RecenterTrackingOrigin())

	pulses := d.Pulses()
	require.Len(t, pulses, 1)
	assert.Equal(t, hmd.DeviceRightController, pulses[0].Device)
	assert.Equal(t, 1, d.Recenters())
}

func TestEyeGaze(t *testing.T) {
	d := NewManual()

	_, ok, err := d.EyeGaze(1)
	require.NoError(t, err)
	assert.False(t, ok)

	d.SetEyeGaze(&xrmath.Vector3f{Z: -1})
	g, ok, _ := d.EyeGaze(2)
	assert.True(t, ok)
	assert.Equal(t, xrmath.Vector3f{Z: -1}, g.Direction)
	assert.Equal(t, 2.0, g.SampleTime)
}
