package physics

// RigidBody is the mutable state of the simulated character. The locomotion
// controller is its only writer during a tick; integration happens between
// controller ticks.
type RigidBody struct {
	Position Vec3
	Velocity Vec3
	// YawDeg is the facing direction in degrees, clockwise from +Z.
	YawDeg float64
	Mass   float64
}

func NewRigidBody(position Vec3) *RigidBody {
	return &RigidBody{Position: position, Mass: 1}
}

// SetHorizontalVelocity overwrites the horizontal velocity, leaving the
// vertical component untouched.
func (b *RigidBody) SetHorizontalVelocity(v Vec3) {
	b.Velocity.X = v.X
	b.Velocity.Z = v.Z
}

// AddAcceleration applies a continuous force for one timestep.
func (b *RigidBody) AddAcceleration(accel Vec3, dt float64) {
	b.Velocity = b.Velocity.Add(accel.Scale(dt))
}

// AddImpulse applies an instantaneous momentum change.
func (b *RigidBody) AddImpulse(impulse Vec3) {
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	b.Velocity = b.Velocity.Add(impulse.Scale(1 / mass))
}

// ClampHorizontalSpeed limits horizontal speed to max, preserving direction
// and vertical velocity.
func (b *RigidBody) ClampHorizontalSpeed(max float64) {
	speed := b.Velocity.HorizontalLength()
	if speed <= max || speed < 1e-9 {
		return
	}
	scale := max / speed
	b.Velocity.X *= scale
	b.Velocity.Z *= scale
}

func (b *RigidBody) Facing() Vec3 {
	return DirectionFromYawDeg(b.YawDeg)
}
