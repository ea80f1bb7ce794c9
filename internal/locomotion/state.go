package locomotion

// State is the explicit per-tick locomotion state, consumed by animation and
// UI layers instead of ad-hoc booleans.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateRunning
	StateSlopeSliding
	StateSlickSliding
	StateAirborne
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateRunning:
		return "running"
	case StateSlopeSliding:
		return "slope_sliding"
	case StateSlickSliding:
		return "slick_sliding"
	case StateAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Sliding reports whether external slope/friction forces own the velocity.
func (s State) Sliding() bool {
	return s == StateSlopeSliding || s == StateSlickSliding
}
