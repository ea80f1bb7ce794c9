package terrain

import (
	"math"
	"testing"

	"github.com/rvyne/strider/internal/physics"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func TestFlatFieldHeightAndNormal(t *testing.T) {
	field := NewFlat(8, 8, 1, Grass)

	approxEqual(t, field.SurfaceHeight(3.7, 2.2), 0, 1e-12, "height")
	n := field.NormalAt(3.7, 2.2)
	approxEqual(t, n.Y, 1, 1e-12, "normal.y")
}

func TestBilinearInterpolation(t *testing.T) {
	field := NewFlat(3, 3, 1, Grass)
	field.SetVertexHeight(1, 0, 2) // single raised vertex at (1,0)

	approxEqual(t, field.SurfaceHeight(1, 0), 2, 1e-12, "at vertex")
	approxEqual(t, field.SurfaceHeight(0.5, 0), 1, 1e-12, "halfway along X")
	approxEqual(t, field.SurfaceHeight(1, 0.5), 1, 1e-12, "halfway along Z")
	approxEqual(t, field.SurfaceHeight(0, 0), 0, 1e-12, "far corner")
}

func TestClampOutsideField(t *testing.T) {
	field := NewFlat(4, 4, 1, Grass)
	field.SetVertexHeight(0, 0, 5)

	approxEqual(t, field.SurfaceHeight(-10, -10), 5, 1e-12, "clamped to corner")
	approxEqual(t, field.SurfaceHeight(100, 100), 0, 1e-12, "clamped to far corner")
}

func TestSlopedFieldNormalAngle(t *testing.T) {
	// Heights rise 1 per unit X: a 45 degree incline.
	field := NewFlat(8, 8, 1, Rock)
	for iz := 0; iz < 8; iz++ {
		for ix := 0; ix < 8; ix++ {
			field.SetVertexHeight(ix, iz, float64(ix))
		}
	}

	n := field.NormalAt(4, 4)
	approxEqual(t, n.AngleDeg(physics.Up), 45, 1e-6, "slope angle")
	if n.X >= 0 {
		t.Fatalf("normal.x = %v, want leaning away from the rise", n.X)
	}
}

func TestPaintAndLookupMaterial(t *testing.T) {
	field := NewFlat(16, 16, 1, Grass)
	field.PaintMaterial(4, 4, 8, 8, Ice)

	if m := field.MaterialAt(6, 6); m.Name != Ice.Name {
		t.Fatalf("material at painted cell = %s, want ice", m.Name)
	}
	if m := field.MaterialAt(12, 12); m.Name != Grass.Name {
		t.Fatalf("material outside patch = %s, want grass", m.Name)
	}
}

func TestRaycastDown(t *testing.T) {
	field := NewFlat(8, 8, 1, Grass)

	hit, ok := field.RaycastDown(physics.Vec3{X: 3, Y: 0.2, Z: 3}, 0.5)
	if !ok {
		t.Fatal("raycast missed a surface 0.2 below the origin")
	}
	approxEqual(t, hit.Point.Y, 0, 1e-12, "hit height")
	approxEqual(t, hit.Surface.FrictionCoefficient(), Grass.Friction, 1e-12, "hit friction")

	if _, ok := field.RaycastDown(physics.Vec3{X: 3, Y: 5, Z: 3}, 0.5); ok {
		t.Fatal("raycast hit a surface far out of range")
	}

	// Origins below the surface still report a hit instead of tunneling.
	if _, ok := field.RaycastDown(physics.Vec3{X: 3, Y: -1, Z: 3}, 0.5); !ok {
		t.Fatal("raycast from below the surface missed")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Seed = 42

	a := Generate(opts)
	b := Generate(opts)

	for _, probe := range [][2]float64{{3, 3}, {40, 20}, {77, 60}} {
		ha := a.SurfaceHeight(probe[0], probe[1])
		hb := b.SurfaceHeight(probe[0], probe[1])
		approxEqual(t, ha, hb, 0, "height at same seed")
	}
}

func TestGenerateHasIceAndSteepRidge(t *testing.T) {
	field := Generate(DefaultGenerateOptions())

	foundIce := false
	for z := 0.5; z < field.Depth() && !foundIce; z++ {
		for x := 0.5; x < field.Width(); x++ {
			if field.MaterialAt(x, z).Name == Ice.Name {
				foundIce = true
				break
			}
		}
	}
	if !foundIce {
		t.Fatal("generated terrain has no ice patches")
	}

	maxSlope := 0.0
	for z := 1.0; z < field.Depth(); z++ {
		for x := 1.0; x < field.Width(); x++ {
			angle := field.NormalAt(x, z).AngleDeg(physics.Up)
			maxSlope = math.Max(maxSlope, angle)
		}
	}
	if maxSlope < 45 {
		t.Fatalf("steepest generated slope is %.1f degrees, want a ridge past 45", maxSlope)
	}
}
