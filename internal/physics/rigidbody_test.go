package physics

import (
	"testing"
)

func TestSetHorizontalVelocityPreservesVertical(t *testing.T) {
	body := NewRigidBody(Vec3{})
	body.Velocity = Vec3{X: 1, Y: -3, Z: 1}

	body.SetHorizontalVelocity(Vec3{X: 5, Y: 99, Z: -5})

	approxVec(t, body.Velocity, Vec3{X: 5, Y: -3, Z: -5}, 1e-12, "velocity")
}

func TestAddImpulseScalesByMass(t *testing.T) {
	body := NewRigidBody(Vec3{})
	body.Mass = 2
	body.AddImpulse(Vec3{X: 4})
	approxVec(t, body.Velocity, Vec3{X: 2}, 1e-12, "velocity")

	// A zero mass falls back to unit mass instead of dividing by zero.
	degenerate := &RigidBody{}
	degenerate.AddImpulse(Vec3{X: 4})
	approxVec(t, degenerate.Velocity, Vec3{X: 4}, 1e-12, "degenerate velocity")
}

func TestClampHorizontalSpeed(t *testing.T) {
	body := NewRigidBody(Vec3{})
	body.Velocity = Vec3{X: 6, Y: -2, Z: 8}

	body.ClampHorizontalSpeed(5)

	approxEqual(t, body.Velocity.HorizontalLength(), 5, 1e-9, "horizontal speed")
	approxEqual(t, body.Velocity.Y, -2, 1e-12, "vertical preserved")

	// Below the cap nothing changes.
	slow := NewRigidBody(Vec3{})
	slow.Velocity = Vec3{X: 1}
	slow.ClampHorizontalSpeed(5)
	approxVec(t, slow.Velocity, Vec3{X: 1}, 1e-12, "slow velocity")
}

type flatSampler struct{ height float64 }

func (s flatSampler) SurfaceHeight(x, z float64) float64 { return s.height }

func TestStepFallsAndLandsOnSurface(t *testing.T) {
	body := NewRigidBody(Vec3{Y: 2})

	for i := 0; i < 200; i++ {
		Step(body, flatSampler{height: 0}, 0.02)
	}

	approxEqual(t, body.Position.Y, 0, 1e-9, "resting height")
	if body.Velocity.Y < 0 {
		t.Fatalf("velocity.y = %v, want >= 0 after landing", body.Velocity.Y)
	}
}

func TestStepDoesNotTunnel(t *testing.T) {
	body := NewRigidBody(Vec3{Y: 0.5})
	body.Velocity.Y = -100

	Step(body, flatSampler{height: 0}, 0.02)

	if body.Position.Y < 0 {
		t.Fatalf("position.y = %v, want >= 0", body.Position.Y)
	}
}
