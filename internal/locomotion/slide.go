package locomotion

import (
	"math"
	"math/rand"
	"time"

	"github.com/rvyne/strider/internal/physics"
)

const (
	// nearlyStationarySpeed is the speed below which a slick slide restarts
	// from the character's facing instead of amplifying residual motion.
	nearlyStationarySpeed = 0.1

	// slickAmplifyFraction of current speed feeds back into a slick slide.
	slickAmplifyFraction = 0.5

	// beyondMaxSlopeSpanDeg is the interpolation span for slide force on
	// slopes past the climbable maximum.
	beyondMaxSlopeSpanDeg = 15

	slickLateralForceFactor = 2

	slickDecayRate    = 0.1
	groundedDecayRate = 5
)

// SlideController decides each tick whether external slope/friction forces
// own the character's velocity, and applies them. It also owns deceleration
// toward rest when idle without input, and the persisted drift sign — the
// only cross-tick mutable state besides the rigid body itself.
type SlideController struct {
	params    Parameters
	rng       *rand.Rand
	state     State
	driftSign float64
}

// NewSlideController builds a controller around the given random source. The
// source only decides the lateral drift sign; tests inject a seeded one for
// deterministic outcomes. A nil rng gets a time-seeded source.
func NewSlideController(params Parameters, rng *rand.Rand) *SlideController {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &SlideController{
		params: params,
		rng:    rng,
		state:  StateIdle,
	}
	s.rollDriftSign()
	return s
}

func (s *SlideController) SetParameters(params Parameters) {
	s.params = params
}

// DriftSign is the persisted lateral drift sign, -1 or +1. Re-rolled only at
// the slick-slide-to-rest transition.
func (s *SlideController) DriftSign() float64 {
	return s.driftSign
}

func (s *SlideController) rollDriftSign() {
	if s.rng.Intn(2) == 0 {
		s.driftSign = -1
	} else {
		s.driftSign = 1
	}
}

// Apply evaluates the slide state machine for one tick while the body rests
// on a surface. hasInput reports whether the planner ran this tick; it gates
// only deceleration, never slide forces.
func (s *SlideController) Apply(body *physics.RigidBody, ground GroundState, hasInput bool, dt float64) State {
	switch {
	case ground.SlopeAngleDeg > s.params.SlopeInfluenceAngleDeg:
		s.state = StateSlopeSliding
		s.applySlopeSlide(body, ground, dt)

	case ground.Slick():
		s.applySlickSlide(body, dt)

	default:
		s.state = StateIdle
		if !hasInput {
			s.decelerate(body, ground, dt)
		}
	}
	return s.state
}

// applySlopeSlide pushes the body down the fall line. Walking cannot counter
// it; the force applies regardless of movement input.
func (s *SlideController) applySlopeSlide(body *physics.RigidBody, ground GroundState, dt float64) {
	downhill := ground.Downhill()
	if downhill.IsZero() {
		return
	}
	body.AddAcceleration(downhill.Scale(s.slopeSlideForce(ground.SlopeAngleDeg)), dt)
	s.clampSlide(body)
}

// slopeSlideForce grows from MoveSpeed to 2×MoveSpeed across the climbable
// band, then on to 4×MoveSpeed over a fixed span beyond the maximum.
func (s *SlideController) slopeSlideForce(slopeAngleDeg float64) float64 {
	move := s.params.MoveSpeed
	if slopeAngleDeg <= s.params.MaxSlopeAngleDeg {
		return physics.Lerp(move, move*2, s.params.slopeRatio(slopeAngleDeg))
	}
	over := (slopeAngleDeg - s.params.MaxSlopeAngleDeg) / beyondMaxSlopeSpanDeg
	return physics.Lerp(move*2, move*4, over)
}

func (s *SlideController) applySlickSlide(body *physics.RigidBody, dt float64) {
	speed := body.Velocity.HorizontalLength()

	// Coming to rest ends the slide; this transition is the single place
	// randomness enters the system.
	if s.state == StateSlickSliding && speed <= s.params.MinVelocityThreshold {
		body.SetHorizontalVelocity(physics.Vec3{})
		s.state = StateIdle
		s.rollDriftSign()
		return
	}
	s.state = StateSlickSliding

	var direction physics.Vec3
	var force float64
	if speed < nearlyStationarySpeed {
		direction = body.Facing()
		force = s.params.MoveSpeed
	} else {
		direction = body.Velocity.Horizontal().Normalized()
		force = math.Min(speed*slickAmplifyFraction, s.params.MoveSpeed)
	}

	lateral := direction.Cross(physics.Up).Scale(s.driftSign * force * slickLateralForceFactor)
	body.AddAcceleration(direction.Scale(force).Add(lateral), dt)
	s.clampSlide(body)
}

func (s *SlideController) clampSlide(body *physics.RigidBody) {
	body.ClampHorizontalSpeed(s.params.MaxSlidingSpeed)
}

// decelerate bleeds horizontal speed toward zero when idle without input:
// slow on slick surfaces, fast on grippy ones, with a snap to exactly zero
// below the velocity threshold.
func (s *SlideController) decelerate(body *physics.RigidBody, ground GroundState, dt float64) {
	horizontal := body.Velocity.Horizontal()
	if horizontal.IsZero() {
		return
	}

	if ground.Slick() {
		horizontal = horizontal.Scale(1 - dt*slickDecayRate)
	} else {
		horizontal = horizontal.Scale(1 - physics.Clamp01(dt*groundedDecayRate))
	}
	if horizontal.Length() <= s.params.MinVelocityThreshold {
		horizontal = physics.Vec3{}
	}
	body.SetHorizontalVelocity(horizontal)
}
