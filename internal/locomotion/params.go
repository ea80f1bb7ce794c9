package locomotion

import "fmt"

// Parameters is the static tuning set for the controller. Immutable during a
// tick; a new set may be swapped in between ticks (live reload).
type Parameters struct {
	MoveSpeed              float64 `yaml:"move_speed"`
	RunSpeed               float64 `yaml:"run_speed"`
	RotationSpeed          float64 `yaml:"rotation_speed"`
	JumpImpulse            float64 `yaml:"jump_impulse"`
	MaxSlopeAngleDeg       float64 `yaml:"max_slope_angle_deg"`
	SlopeInfluenceAngleDeg float64 `yaml:"slope_influence_angle_deg"`
	GroundCheckDistance    float64 `yaml:"ground_check_distance"`
	MaxSlidingSpeed        float64 `yaml:"max_sliding_speed"`
	MinVelocityThreshold   float64 `yaml:"min_velocity_threshold"`
	Deadzone               float64 `yaml:"deadzone"`
	CanRun                 bool    `yaml:"can_run"`
	JumpEnabled            bool    `yaml:"jump_enabled"`
}

func DefaultParameters() Parameters {
	return Parameters{
		MoveSpeed:              4,
		RunSpeed:               8,
		RotationSpeed:          10,
		JumpImpulse:            5,
		MaxSlopeAngleDeg:       45,
		SlopeInfluenceAngleDeg: 5,
		GroundCheckDistance:    0.1,
		MaxSlidingSpeed:        10,
		MinVelocityThreshold:   0.1,
		Deadzone:               0.1,
		CanRun:                 true,
		JumpEnabled:            true,
	}
}

// Validate rejects parameter sets that would be implementation bugs at
// runtime: negative speeds or distances never clamp to anything sensible.
func (p Parameters) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"move_speed", p.MoveSpeed},
		{"run_speed", p.RunSpeed},
		{"rotation_speed", p.RotationSpeed},
		{"jump_impulse", p.JumpImpulse},
		{"max_slope_angle_deg", p.MaxSlopeAngleDeg},
		{"slope_influence_angle_deg", p.SlopeInfluenceAngleDeg},
		{"ground_check_distance", p.GroundCheckDistance},
		{"max_sliding_speed", p.MaxSlidingSpeed},
		{"min_velocity_threshold", p.MinVelocityThreshold},
		{"deadzone", p.Deadzone},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("motion parameter %s is negative (%v)", c.name, c.value)
		}
	}
	return nil
}

// Warnings reports degenerate but survivable tuning. The controller clamps
// its way through these; they still deserve a log line at load time.
func (p Parameters) Warnings() []string {
	var out []string
	if p.SlopeInfluenceAngleDeg >= p.MaxSlopeAngleDeg {
		out = append(out, fmt.Sprintf(
			"slope_influence_angle_deg (%v) should be below max_slope_angle_deg (%v); slope speed scaling degenerates",
			p.SlopeInfluenceAngleDeg, p.MaxSlopeAngleDeg))
	}
	if p.RunSpeed < p.MoveSpeed {
		out = append(out, fmt.Sprintf(
			"run_speed (%v) is below move_speed (%v)", p.RunSpeed, p.MoveSpeed))
	}
	return out
}

// baseSpeed is the pre-scaling speed for planned movement. CanRun currently
// acts as a plain multiplier switch, not a gated sprint.
func (p Parameters) baseSpeed() float64 {
	if p.CanRun {
		return p.RunSpeed
	}
	return p.MoveSpeed
}

// slopeRatio maps a slope angle onto [0,1] between the influence threshold
// and the max climbable angle. Degenerate tuning collapses to the extremes
// instead of dividing by zero.
func (p Parameters) slopeRatio(slopeAngleDeg float64) float64 {
	span := p.MaxSlopeAngleDeg - p.SlopeInfluenceAngleDeg
	if span <= 0 {
		if slopeAngleDeg > p.SlopeInfluenceAngleDeg {
			return 1
		}
		return 0
	}
	ratio := (slopeAngleDeg - p.SlopeInfluenceAngleDeg) / span
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
