package locomotion

import (
	"math/rand"

	"github.com/rvyne/strider/internal/physics"
)

const (
	// slopeStickAcceleration seats the body on slopes and pulls it down
	// faster in the air; base gravity alone lets it skip off inclines.
	slopeStickAcceleration = 15.0

	animSpeedCutoff   = 0.2
	animSmoothingRate = 10.0

	minTravelSpeedForRotation = 1e-3
)

// InputIntent is the per-tick request from the input layer. A stale or
// missing input is expressed as the zero value, never as an error.
type InputIntent struct {
	// MoveDirection is the desired world-space direction, unit length or
	// zero. Vertical components are ignored.
	MoveDirection physics.Vec3
	// Magnitude is the input intensity in [0,1].
	Magnitude float64
	// Jump is true only on the tick the jump button went down.
	Jump bool
	// Ability is true only on the press tick; the locomotion core passes it
	// through for ability systems layered on top.
	Ability bool
}

// Output is the result of one controller tick.
type Output struct {
	State          State
	Ground         GroundState
	AnimationSpeed float64
}

// Controller is the per-tick orchestrator: sensor, planner, and slide
// control feeding velocity and heading writes on the rigid body. It is the
// only component external collaborators touch.
type Controller struct {
	params   Parameters
	body     *physics.RigidBody
	sensor   *GroundSensor
	planner  *VelocityPlanner
	slide    *SlideController
	animator Animator

	animSpeed float64
	state     State
}

// NewController wires a controller around body and world. rng seeds the
// drift sign only and may be nil; animator may be nil for headless use.
func NewController(body *physics.RigidBody, world physics.World, params Parameters, rng *rand.Rand, animator Animator) *Controller {
	if animator == nil {
		animator = NopAnimator{}
	}
	return &Controller{
		params:   params,
		body:     body,
		sensor:   NewGroundSensor(world, params),
		planner:  NewVelocityPlanner(params),
		slide:    NewSlideController(params, rng),
		animator: animator,
	}
}

// SetParameters swaps in a new tuning set between ticks (live reload).
func (c *Controller) SetParameters(params Parameters) {
	c.params = params
	c.sensor.SetParameters(params)
	c.planner.SetParameters(params)
	c.slide.SetParameters(params)
}

func (c *Controller) Parameters() Parameters {
	return c.params
}

func (c *Controller) Body() *physics.RigidBody {
	return c.body
}

func (c *Controller) State() State {
	return c.state
}

// Tick advances the controller by one fixed timestep. Exactly one Tick runs
// at a time; nothing here blocks or suspends.
func (c *Controller) Tick(intent InputIntent, dt float64) Output {
	ground := c.sensor.Sample(c.body.Position)

	// Extra downward pull whenever airborne or on any non-flat surface.
	if !ground.Grounded || ground.SlopeAngleDeg > 0 {
		c.body.Velocity.Y -= slopeStickAcceleration * dt
	}

	direction := intent.MoveDirection.Horizontal().Normalized()
	steep := ground.OnSurface && ground.SlopeAngleDeg >= c.params.MaxSlopeAngleDeg
	hasInput := intent.Magnitude >= c.params.Deadzone && !direction.IsZero() && !steep

	if hasInput {
		planned := c.planner.Plan(direction, intent.Magnitude, ground, c.body.Velocity.Y, c.slide.DriftSign())
		c.body.SetHorizontalVelocity(planned)
	}

	slideState := StateIdle
	if ground.OnSurface {
		slideState = c.slide.Apply(c.body, ground, hasInput, dt)
	}

	if intent.Jump && ground.Grounded && c.params.JumpEnabled {
		c.body.Velocity.Y = 0
		c.body.AddImpulse(physics.Up.Scale(c.params.JumpImpulse))
		c.animator.Trigger(TriggerJump)
	}

	c.rotateTowardTravel(intent.Magnitude, dt)
	c.state = c.resolveState(ground, slideState, hasInput)

	return Output{
		State:          c.state,
		Ground:         ground,
		AnimationSpeed: c.updateAnimation(ground, steep, dt),
	}
}

// ApplyExternalForce is the knockback pass-through: an impulse plus a hit
// signal for the animation layer, independent of the state machine.
func (c *Controller) ApplyExternalForce(impulse physics.Vec3) {
	c.body.AddImpulse(impulse)
	c.animator.Trigger(TriggerHit)
}

// rotateTowardTravel turns the heading toward the direction of travel. The
// rate scales with input intensity, so the character coasts without spinning
// when the sticks are released.
func (c *Controller) rotateTowardTravel(magnitude float64, dt float64) {
	travel := c.body.Velocity.Horizontal()
	if travel.Length() < minTravelSpeedForRotation {
		return
	}
	rate := physics.Clamp01(c.params.RotationSpeed * physics.Clamp01(magnitude) * dt)
	c.body.YawDeg = physics.RotateYawTowardDeg(c.body.YawDeg, travel.YawDeg(), rate)
}

func (c *Controller) resolveState(ground GroundState, slideState State, hasInput bool) State {
	switch {
	case !ground.OnSurface:
		return StateAirborne
	case slideState.Sliding():
		return slideState
	case hasInput && c.params.CanRun:
		return StateRunning
	case hasInput:
		return StateWalking
	default:
		return StateIdle
	}
}

// updateAnimation derives the smoothed speed scalar for the animation
// collaborator. Near-rest speeds read as zero, and an unclimbable slope
// forces the signal toward zero even while the body is moving.
func (c *Controller) updateAnimation(ground GroundState, steep bool, dt float64) float64 {
	target := c.body.Velocity.HorizontalLength()
	if target < animSpeedCutoff || steep {
		target = 0
	}
	c.animSpeed += (target - c.animSpeed) * physics.Clamp01(dt*animSmoothingRate)
	c.animator.SetSpeed(c.animSpeed)
	c.animator.SetGrounded(ground.Grounded)
	return c.animSpeed
}
