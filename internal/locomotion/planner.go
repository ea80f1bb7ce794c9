package locomotion

import (
	"github.com/rvyne/strider/internal/physics"
)

const (
	// slickFrictionThreshold separates surfaces that drift from surfaces
	// that grip.
	slickFrictionThreshold = 0.3

	// speedFloorFraction keeps slope scaling from stalling movement
	// entirely.
	speedFloorFraction = 0.2

	downhillAlignmentMin = 0.1
	driftVelocityFactor  = 0.1
)

// VelocityPlanner turns a desired horizontal direction plus the current
// ground state into a target velocity. Callers have already filtered
// below-deadzone input and unclimbable slopes.
type VelocityPlanner struct {
	params Parameters
}

func NewVelocityPlanner(params Parameters) *VelocityPlanner {
	return &VelocityPlanner{params: params}
}

func (p *VelocityPlanner) SetParameters(params Parameters) {
	p.params = params
}

// Plan computes the target velocity for one tick. The vertical component of
// the result is always verticalVel; horizontal planning never touches
// vertical motion. driftSign is the persisted lateral drift sign, owned by
// the slide controller.
func (p *VelocityPlanner) Plan(direction physics.Vec3, magnitude float64, ground GroundState, verticalVel float64, driftSign float64) physics.Vec3 {
	direction = direction.Normalized()
	if direction.IsZero() {
		return physics.Vec3{Y: verticalVel}
	}
	magnitude = physics.Clamp01(magnitude)

	// Steer along the surface instead of into it.
	if ground.Grounded && ground.SlopeAngleDeg > 0 {
		projected := direction.ProjectOnPlane(ground.Normal).Normalized()
		if !projected.IsZero() {
			direction = projected
		}
	}

	// Drag factor, not friction: slick surfaces barely damp planned speed,
	// grippy surfaces damp it hard. Preserved source behavior.
	drag := physics.Clamp01(1 - ground.SurfaceFriction)

	base := p.params.baseSpeed()
	speed := base

	if ground.SlopeAngleDeg > p.params.SlopeInfluenceAngleDeg {
		speed *= physics.Clamp01(1 - p.params.slopeRatio(ground.SlopeAngleDeg))
	}

	// Moving with the fall line earns a boost that grows with steepness.
	downhill := ground.Downhill()
	if !downhill.IsZero() {
		alignment := direction.Dot(downhill)
		if alignment > downhillAlignmentMin {
			speed += base * p.params.slopeRatio(ground.SlopeAngleDeg) * alignment
		}
	}

	if floor := base * speedFloorFraction; speed < floor {
		speed = floor
	}

	velocity := direction.Scale(speed * magnitude * drag).WithY(verticalVel)

	if ground.Slick() {
		lateral := direction.Cross(physics.Up).
			Scale(driftSign * driftVelocityFactor * velocity.HorizontalLength())
		velocity = velocity.Add(lateral.Horizontal())
	}
	return velocity
}
