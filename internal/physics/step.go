package physics

const (
	// GravityAcceleration is the host world's base gravity, m/s².
	GravityAcceleration = 9.81

	groundSnapDistance = 0.05
)

// HeightSampler reports the walkable surface height under a horizontal
// position. Implemented by terrain worlds; used only by the integrator.
type HeightSampler interface {
	SurfaceHeight(x, z float64) float64
}

// Step advances the body by one fixed timestep against a heightfield world:
// base gravity, position integration, and a ground clamp that stops the body
// from tunneling through the surface. The locomotion controller has already
// written its velocity and force contributions for this tick.
func Step(body *RigidBody, ground HeightSampler, dt float64) {
	if body == nil || dt <= 0 {
		return
	}

	body.Velocity.Y -= GravityAcceleration * dt
	body.Position = body.Position.Add(body.Velocity.Scale(dt))

	if ground == nil {
		return
	}
	surface := ground.SurfaceHeight(body.Position.X, body.Position.Z)
	if body.Position.Y < surface {
		body.Position.Y = surface
		if body.Velocity.Y < 0 {
			body.Velocity.Y = 0
		}
	} else if body.Velocity.Y <= 0 && body.Position.Y-surface < groundSnapDistance {
		// Seat the body when it is effectively resting on the surface.
		body.Position.Y = surface
	}
}
