package xrmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got Vector3f) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestRotationRollPitchYaw(t *testing.T) {
	yaw := RotationRollPitchYaw(0, math.Pi/2, 0)
	assert.True(t, yaw.IsNormalized())
	assertVec3(t, Vector3f{X: -1}, yaw.Rotate(Vector3f{Z: -1}))

	pitch := RotationRollPitchYaw(DegreeToRad(90), 0, 0)
	assertVec3(t, Vector3f{Y: 1}, pitch.Rotate(Vector3f{Z: -1}))
}

func TestMultiplyTranslations(t *testing.T) {
	p := Multiply(Translation(Vector3f{X: 1}), Translation(Vector3f{Y: 2}))
	assertVec3(t, Vector3f{X: 1, Y: 2}, p.Position)
	assert.Equal(t, IdentityQuaternion(), p.Orientation)
}

func TestMultiplyAppliesFirstThenSecond(t *testing.T) {
	offset := Translation(Vector3f{Z: -1})
	device := MakePose(RotationRollPitchYaw(0, math.Pi/2, 0), Vector3f{Y: 1})

	got := Multiply(offset, device)
	assertVec3(t, Vector3f{X: -1, Y: 1}, got.Position)
}

func TestInvert(t *testing.T) {
	p := MakePose(RotationRollPitchYaw(0.3, -1.2, 0.7), Vector3f{X: 0.5, Y: -2, Z: 3})

	id := Multiply(p, Invert(p))
	assert.True(t, NearlyEqual(IdentityPose(), id, eps), "p * inv(p) = %+v", id)

	id = Multiply(Invert(p), p)
	assert.True(t, NearlyEqual(IdentityPose(), id, eps), "inv(p) * p = %+v", id)
}

func TestMirror(t *testing.T) {
	p := MakePose(Quaternion{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}, Vector3f{X: 0.03, Y: -0.062, Z: -0.1})
	m := Mirror(p)

	assert.Equal(t, Vector3f{X: -0.03, Y: -0.062, Z: -0.1}, m.Position)
	assert.Equal(t, Quaternion{X: 0.1, Y: -0.2, Z: -0.3, W: 0.9}, m.Orientation)
	assert.Equal(t, p, Mirror(m))
}

func TestIsNormalized(t *testing.T) {
	assert.True(t, IdentityQuaternion().IsNormalized())
	assert.False(t, Quaternion{}.IsNormalized())
	assert.False(t, Quaternion{W: 2}.IsNormalized())
}

func TestVector2fLength(t *testing.T) {
	assert.InDelta(t, 5, Vector2f{X: 3, Y: 4}.Length(), eps)
}
