package locomotion

import (
	"testing"

	"github.com/rvyne/strider/internal/physics"
)

func walkParams() Parameters {
	p := DefaultParameters()
	p.CanRun = false
	return p
}

func sampleOn(t *testing.T, world *stubWorld, params Parameters) GroundState {
	t.Helper()
	ground := NewGroundSensor(world, params).Sample(physics.Vec3{})
	if !ground.OnSurface {
		t.Fatal("test surface not under the character")
	}
	return ground
}

// Flat ground, friction 0.9, full input along +X, base speed 4: the drag
// factor clamp01(1-0.9) leaves exactly a tenth of the planned speed. This
// pins down the direction of the friction formula (slick fast, sticky slow).
func TestPlanFlatGroundScenario(t *testing.T) {
	params := walkParams()
	planner := NewVelocityPlanner(params)
	ground := sampleOn(t, flatWorld(0.9), params)

	v := planner.Plan(physics.Vec3{X: 1}, 1, ground, -2, 1)

	approxEqual(t, v.X, 0.4, 1e-9, "velocity.x")
	approxEqual(t, v.Z, 0, 1e-9, "velocity.z")
	approxEqual(t, v.Y, -2, 1e-9, "vertical passthrough")
}

func TestPlanStickierMeansSlower(t *testing.T) {
	params := walkParams()
	planner := NewVelocityPlanner(params)

	grippy := planner.Plan(physics.Vec3{X: 1}, 1, sampleOn(t, flatWorld(0.9), params), 0, 1)
	loose := planner.Plan(physics.Vec3{X: 1}, 1, sampleOn(t, flatWorld(0.4), params), 0, 1)

	if loose.X <= grippy.X {
		t.Fatalf("loose surface speed %v <= grippy surface speed %v, want faster", loose.X, grippy.X)
	}
	approxEqual(t, loose.X, 4*0.6, 1e-9, "loose velocity.x")
}

func TestPlanInputMagnitudeScales(t *testing.T) {
	params := walkParams()
	planner := NewVelocityPlanner(params)
	ground := sampleOn(t, flatWorld(0.9), params)

	full := planner.Plan(physics.Vec3{X: 1}, 1, ground, 0, 1)
	half := planner.Plan(physics.Vec3{X: 1}, 0.5, ground, 0, 1)

	approxEqual(t, half.X, full.X/2, 1e-9, "half magnitude")
}

func TestPlanRunSpeedWhenCanRun(t *testing.T) {
	params := DefaultParameters() // CanRun on
	planner := NewVelocityPlanner(params)
	ground := sampleOn(t, flatWorld(0.9), params)

	v := planner.Plan(physics.Vec3{X: 1}, 1, ground, 0, 1)

	approxEqual(t, v.X, 0.8, 1e-9, "velocity.x at run speed")
}

func TestPlanSlopeScalingSlowsAcrossSlope(t *testing.T) {
	params := walkParams()
	planner := NewVelocityPlanner(params)

	flat := sampleOn(t, flatWorld(0.9), params)
	slope := sampleOn(t, slopeWorld(30, 0.9), params)

	// Across the slope: +Z is perpendicular to the +X fall line, so the
	// projected direction stays horizontal.
	flatV := planner.Plan(physics.Vec3{Z: 1}, 1, flat, 0, 1)
	slopeV := planner.Plan(physics.Vec3{Z: 1}, 1, slope, 0, 1)

	if slopeV.HorizontalLength() >= flatV.HorizontalLength() {
		t.Fatalf("slope speed %v >= flat speed %v, want slower on slope",
			slopeV.HorizontalLength(), flatV.HorizontalLength())
	}
}

// Frictionless surface isolates the speed term (drag factor is 1): even one
// degree under the climbable maximum, the planned speed never drops below a
// fifth of base speed.
func TestPlanSpeedFloor(t *testing.T) {
	params := walkParams()
	planner := NewVelocityPlanner(params)
	ground := sampleOn(t, slopeWorld(44, 0), params)

	v := planner.Plan(physics.Vec3{Z: 1}, 1, ground, 0, 1)

	floor := params.MoveSpeed * speedFloorFraction
	if v.HorizontalLength() < floor-1e-9 {
		t.Fatalf("speed %v below floor %v", v.HorizontalLength(), floor)
	}
}

func TestPlanDownhillBoost(t *testing.T) {
	params := walkParams()
	planner := NewVelocityPlanner(params)
	ground := sampleOn(t, slopeWorld(30, 0.9), params)

	downhill := planner.Plan(physics.Vec3{X: 1}, 1, ground, 0, 1)
	across := planner.Plan(physics.Vec3{Z: 1}, 1, ground, 0, 1)

	if downhill.HorizontalLength() <= across.HorizontalLength() {
		t.Fatalf("downhill speed %v <= across speed %v, want boost",
			downhill.HorizontalLength(), across.HorizontalLength())
	}
}

func TestPlanDriftOnSlickSurface(t *testing.T) {
	params := walkParams()
	planner := NewVelocityPlanner(params)
	ground := sampleOn(t, flatWorld(0.05), params)

	right := planner.Plan(physics.Vec3{X: 1}, 1, ground, 0, 1)
	left := planner.Plan(physics.Vec3{X: 1}, 1, ground, 0, -1)

	if right.Z == 0 {
		t.Fatal("no lateral drift component on a slick surface")
	}
	approxEqual(t, left.Z, -right.Z, 1e-9, "drift flips with sign")

	// No drift on grippy ground.
	dry := planner.Plan(physics.Vec3{X: 1}, 1, sampleOn(t, flatWorld(0.9), params), 0, 1)
	approxEqual(t, dry.Z, 0, 1e-9, "dry surface drift")
}

func TestPlanZeroDirection(t *testing.T) {
	planner := NewVelocityPlanner(walkParams())

	v := planner.Plan(physics.Vec3{}, 1, AirborneGround(), -1, 1)

	approxEqual(t, v.X, 0, 0, "velocity.x")
	approxEqual(t, v.Z, 0, 0, "velocity.z")
	approxEqual(t, v.Y, -1, 0, "vertical passthrough")
}
