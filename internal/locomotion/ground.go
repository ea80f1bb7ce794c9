package locomotion

import (
	"github.com/rvyne/strider/internal/physics"
)

const (
	// DefaultSurfaceFriction stands in when hit geometry carries no material.
	DefaultSurfaceFriction = 0.9

	groundProbeLift   = 0.1
	groundProbeMargin = 0.1
	groundProbeRadius = 0.3

	// groundedProbeQuorum is the majority vote threshold over the five
	// probes; a single bad sample never flips the grounded verdict.
	groundedProbeQuorum = 2
)

// GroundState is the per-tick snapshot of what is under the character. It is
// recomputed wholesale every tick, never partially updated.
type GroundState struct {
	// OnSurface is the raw probe majority vote: the body is resting on
	// something, climbable or not.
	OnSurface bool
	// Grounded is OnSurface with the slope ceiling applied: a slope at or
	// beyond the climbable maximum counts as open air for movement.
	Grounded bool
	Normal   physics.Vec3
	// SlopeAngleDeg is the angle between Normal and up. Zero when no probe
	// hit anything.
	SlopeAngleDeg   float64
	SurfaceFriction float64
	HitCount        int
}

// AirborneGround is the state reported when no probe finds a surface.
func AirborneGround() GroundState {
	return GroundState{
		Normal:          physics.Up,
		SurfaceFriction: DefaultSurfaceFriction,
	}
}

// Slick reports whether the surface is slippery enough to drift on.
func (g GroundState) Slick() bool {
	return g.SurfaceFriction < slickFrictionThreshold
}

// Downhill is the fall line: straight down projected onto the ground plane.
// Zero on flat ground.
func (g GroundState) Downhill() physics.Vec3 {
	return physics.Down.ProjectOnPlane(g.Normal).Normalized()
}

// GroundSensor samples the world beneath the character. Read-only with
// respect to world state; one sampling pass per physics tick.
type GroundSensor struct {
	world  physics.World
	params Parameters
}

func NewGroundSensor(world physics.World, params Parameters) *GroundSensor {
	return &GroundSensor{world: world, params: params}
}

func (s *GroundSensor) SetParameters(params Parameters) {
	s.params = params
}

// probeOffsets are the horizontal probe positions around the character's
// vertical axis: four corners plus center.
var probeOffsets = [5]physics.Vec3{
	{X: groundProbeRadius, Z: groundProbeRadius},
	{X: groundProbeRadius, Z: -groundProbeRadius},
	{X: -groundProbeRadius, Z: groundProbeRadius},
	{X: -groundProbeRadius, Z: -groundProbeRadius},
	{},
}

// Sample casts the five downward probes and aggregates them into a
// GroundState. Zero hits is a legitimate airborne outcome, not an error.
func (s *GroundSensor) Sample(position physics.Vec3) GroundState {
	if s.world == nil {
		return AirborneGround()
	}

	maxDist := groundProbeLift + s.params.GroundCheckDistance + groundProbeMargin

	var (
		hitCount  int
		normalSum physics.Vec3
		lastHit   physics.Hit
		anyHit    bool
	)
	for _, offset := range probeOffsets {
		origin := position.Add(offset).Add(physics.Up.Scale(groundProbeLift))
		hit, ok := s.world.RaycastDown(origin, maxDist)
		if !ok {
			continue
		}
		hitCount++
		normalSum = normalSum.Add(hit.Normal)
		lastHit = hit
		anyHit = true
	}

	if hitCount <= groundedProbeQuorum {
		out := AirborneGround()
		out.HitCount = hitCount
		return out
	}

	normal := normalSum.Normalized()
	if normal.IsZero() {
		normal = physics.Up
	}

	friction := DefaultSurfaceFriction
	if anyHit && lastHit.Surface != nil {
		friction = physics.Clamp01(lastHit.Surface.FrictionCoefficient())
	}

	state := GroundState{
		OnSurface:       true,
		Grounded:        true,
		Normal:          normal,
		SlopeAngleDeg:   normal.AngleDeg(physics.Up),
		SurfaceFriction: friction,
		HitCount:        hitCount,
	}

	// A slope steeper than the climbable maximum moves like open air, even
	// though the body is still resting on it. Normal and angle stay intact
	// so slide control can act on them.
	if state.SlopeAngleDeg >= s.params.MaxSlopeAngleDeg {
		state.Grounded = false
	}
	return state
}
