package physics

import "math"

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

var Up = Vec3{Y: 1}

var Down = Vec3{Y: -1}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector pointing in v's direction, or the zero
// vector when v is too short to carry a direction.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / length)
}

func (v Vec3) IsZero() bool {
	return nearlyZero(v.X) && nearlyZero(v.Y) && nearlyZero(v.Z)
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) HorizontalLength() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// WithY replaces the vertical component, leaving the horizontal plane intact.
func (v Vec3) WithY(y float64) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Z}
}

// ProjectOnPlane removes the component of v along the plane normal.
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	return v.Sub(normal.Scale(v.Dot(normal)))
}

// AngleDeg returns the angle between v and o in degrees, in [0,180].
// Either vector being (near) zero yields 0.
func (v Vec3) AngleDeg(o Vec3) float64 {
	lv := v.Length()
	lo := o.Length()
	if lv < 1e-9 || lo < 1e-9 {
		return 0
	}
	cos := v.Dot(o) / (lv * lo)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// YawDeg returns the heading of the horizontal part of v, in degrees,
// measured clockwise from +Z.
func (v Vec3) YawDeg() float64 {
	return math.Atan2(v.X, v.Z) * 180 / math.Pi
}

// DirectionFromYawDeg is the inverse of YawDeg for unit horizontal vectors.
func DirectionFromYawDeg(yaw float64) Vec3 {
	rad := yaw * math.Pi / 180
	return Vec3{X: math.Sin(rad), Z: math.Cos(rad)}
}

// RotateYawTowardDeg moves heading from toward to by at most a blend of the
// shortest angular difference, with t clamped to [0,1]. Mirrors a spherical
// interpolation restricted to the horizontal plane.
func RotateYawTowardDeg(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t > 1 {
		t = 1
	}
	delta := normalizeAngleDeg(to - from)
	return normalizeAngleDeg(from + delta*t)
}

func normalizeAngleDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a < -180 {
		a += 360
	}
	return a
}

func Clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

func nearlyZero(f float64) bool {
	return math.Abs(f) < 1e-9
}
