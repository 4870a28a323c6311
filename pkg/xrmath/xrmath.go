package xrmath

import "math"

// Vector2f is a 2-D vector, used for thumbsticks and trackpads.
type Vector2f struct {
	X float32
	Y float32
}

// Length returns the Euclidean length of v.
func (v Vector2f) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Vector3f is a 3-D vector in meters or radians per second.
type Vector3f struct {
	X float32
	Y float32
	Z float32
}

// Add returns v + o.
func (v Vector3f) Add(o Vector3f) Vector3f {
	return Vector3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3f) Sub(o Vector3f) Vector3f {
	return Vector3f{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vector3f) Scale(s float32) Vector3f {
	return Vector3f{v.X * s, v.Y * s, v.Z * s}
}

// Cross returns the cross product v x o.
func (v Vector3f) Cross(o Vector3f) Vector3f {
	return Vector3f{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Negate returns -v.
func (v Vector3f) Negate() Vector3f {
	return Vector3f{-v.X, -v.Y, -v.Z}
}

// Quaternion is a rotation. Only unit quaternions describe valid rotations.
type Quaternion struct {
	X float32
	Y float32
	Z float32
	W float32
}

// IdentityQuaternion returns the no-rotation quaternion.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// LengthSquared returns the squared norm of q.
func (q Quaternion) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// IsNormalized reports whether q is a unit quaternion within tolerance.
func (q Quaternion) IsNormalized() bool {
	return math.Abs(float64(q.LengthSquared())-1) <= 1e-5
}

// hamilton returns the Hamilton product a*b (b applied first).
func hamilton(a, b Quaternion) Quaternion {
	return Quaternion{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// MultiplyQuaternion returns the rotation a followed by b.
func MultiplyQuaternion(a, b Quaternion) Quaternion {
	return hamilton(b, a)
}

// Rotate applies q to v.
func (q Quaternion) Rotate(v Vector3f) Vector3f {
	u := Vector3f{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// RotationRollPitchYaw builds a rotation from Euler angles in radians.
// Roll (about Z) is applied first, then pitch (about X), then yaw (about Y).
func RotationRollPitchYaw(pitch, yaw, roll float32) Quaternion {
	sp, cp := math.Sincos(float64(pitch) / 2)
	sy, cy := math.Sincos(float64(yaw) / 2)
	sr, cr := math.Sincos(float64(roll) / 2)

	return Quaternion{
		X: float32(sp*cy*cr + cp*sy*sr),
		Y: float32(cp*sy*cr - sp*cy*sr),
		Z: float32(cp*cy*sr - sp*sy*cr),
		W: float32(cp*cy*cr + sp*sy*sr),
	}
}

// DegreeToRad converts degrees to radians.
func DegreeToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// Pose is a rigid transform.
type Pose struct {
	Orientation Quaternion
	Position    Vector3f
}

// IdentityPose returns the identity transform.
func IdentityPose() Pose {
	return Pose{Orientation: IdentityQuaternion()}
}

// MakePose builds a pose from a rotation and a translation.
func MakePose(orientation Quaternion, position Vector3f) Pose {
	return Pose{Orientation: orientation, Position: position}
}

// Translation returns a pose that only translates.
func Translation(v Vector3f) Pose {
	return Pose{Orientation: IdentityQuaternion(), Position: v}
}

// Multiply returns the transform a followed by b.
func Multiply(a, b Pose) Pose {
	return Pose{
		Orientation: MultiplyQuaternion(a.Orientation, b.Orientation),
		Position:    b.Orientation.Rotate(a.Position).Add(b.Position),
	}
}

// Invert returns the inverse of a rigid transform.
func Invert(p Pose) Pose {
	inv := p.Orientation.Conjugate()
	return Pose{
		Orientation: inv,
		Position:    inv.Rotate(p.Position.Negate()),
	}
}

// Mirror reflects the pose across the YZ plane, turning a left-hand pose
// into its right-hand counterpart.
func Mirror(p Pose) Pose {
	p.Position.X = -p.Position.X
	p.Orientation.Y = -p.Orientation.Y
	p.Orientation.Z = -p.Orientation.Z
	return p
}

// Equals reports exact equality of two poses.
func Equals(a, b Pose) bool {
	return a == b
}

// NearlyEqual reports equality within eps on every component.
func NearlyEqual(a, b Pose, eps float32) bool {
	near := func(x, y float32) bool {
		return math.Abs(float64(x-y)) <= float64(eps)
	}
	return near(a.Position.X, b.Position.X) &&
		near(a.Position.Y, b.Position.Y) &&
		near(a.Position.Z, b.Position.Z) &&
		near(a.Orientation.X, b.Orientation.X) &&
		near(a.Orientation.Y, b.Orientation.Y) &&
		near(a.Orientation.Z, b.Orientation.Z) &&
		near(a.Orientation.W, b.Orientation.W)
}
