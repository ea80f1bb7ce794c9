// Package terrain provides a heightfield world the ground sensor can probe:
// bilinear surface heights, gradient-derived normals, and per-cell materials.
package terrain

import (
	"math"

	"github.com/rvyne/strider/internal/physics"
)

// Heightfield is a grid of surface heights with one material per cell. It
// implements physics.World for downward probes and physics.HeightSampler for
// integration. Read-only after construction aside from material painting.
type Heightfield struct {
	width    int // vertices along X
	depth    int // vertices along Z
	cellSize float64
	heights  []float64
	cells    []Material
}

// NewFlat builds a level field at height zero covered by base.
func NewFlat(width, depth int, cellSize float64, base Material) *Heightfield {
	return NewFromHeights(make([]float64, width*depth), width, depth, cellSize, base)
}

// NewFromHeights builds a field from row-major vertex heights (Z rows of X
// vertices). The slice length must be width*depth.
func NewFromHeights(heights []float64, width, depth int, cellSize float64, base Material) *Heightfield {
	if width < 2 {
		width = 2
	}
	if depth < 2 {
		depth = 2
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	if len(heights) != width*depth {
		padded := make([]float64, width*depth)
		copy(padded, heights)
		heights = padded
	}
	cells := make([]Material, (width-1)*(depth-1))
	for i := range cells {
		cells[i] = base
	}
	return &Heightfield{
		width:    width,
		depth:    depth,
		cellSize: cellSize,
		heights:  heights,
		cells:    cells,
	}
}

// Width returns the field extent along X in world units.
func (f *Heightfield) Width() float64 {
	return float64(f.width-1) * f.cellSize
}

// Depth returns the field extent along Z in world units.
func (f *Heightfield) Depth() float64 {
	return float64(f.depth-1) * f.cellSize
}

func (f *Heightfield) vertex(ix, iz int) float64 {
	return f.heights[iz*f.width+ix]
}

// SetVertexHeight overwrites one vertex; out-of-range indices are ignored.
func (f *Heightfield) SetVertexHeight(ix, iz int, h float64) {
	if ix < 0 || ix >= f.width || iz < 0 || iz >= f.depth {
		return
	}
	f.heights[iz*f.width+ix] = h
}

// PaintMaterial covers the world-space rectangle with m.
func (f *Heightfield) PaintMaterial(minX, minZ, maxX, maxZ float64, m Material) {
	x0, z0 := f.cellIndex(minX, minZ)
	x1, z1 := f.cellIndex(maxX, maxZ)
	for z := z0; z <= z1; z++ {
		for x := x0; x <= x1; x++ {
			f.cells[z*(f.width-1)+x] = m
		}
	}
}

// MaterialAt returns the material of the cell containing (x, z).
func (f *Heightfield) MaterialAt(x, z float64) Material {
	cx, cz := f.cellIndex(x, z)
	return f.cells[cz*(f.width-1)+cx]
}

func (f *Heightfield) cellIndex(x, z float64) (int, int) {
	cx := int(math.Floor(x / f.cellSize))
	cz := int(math.Floor(z / f.cellSize))
	return clampInt(cx, 0, f.width-2), clampInt(cz, 0, f.depth-2)
}

// SurfaceHeight bilinearly interpolates the surface height at (x, z).
// Positions outside the field clamp to the border.
func (f *Heightfield) SurfaceHeight(x, z float64) float64 {
	gx := clampFloat(x/f.cellSize, 0, float64(f.width-1))
	gz := clampFloat(z/f.cellSize, 0, float64(f.depth-1))

	ix := clampInt(int(math.Floor(gx)), 0, f.width-2)
	iz := clampInt(int(math.Floor(gz)), 0, f.depth-2)
	tx := gx - float64(ix)
	tz := gz - float64(iz)

	h00 := f.vertex(ix, iz)
	h10 := f.vertex(ix+1, iz)
	h01 := f.vertex(ix, iz+1)
	h11 := f.vertex(ix+1, iz+1)

	top := h00 + (h10-h00)*tx
	bottom := h01 + (h11-h01)*tx
	return top + (bottom-top)*tz
}

// NormalAt derives the surface normal from the local height gradient.
func (f *Heightfield) NormalAt(x, z float64) physics.Vec3 {
	e := f.cellSize * 0.5
	dhdx := (f.SurfaceHeight(x+e, z) - f.SurfaceHeight(x-e, z)) / (2 * e)
	dhdz := (f.SurfaceHeight(x, z+e) - f.SurfaceHeight(x, z-e)) / (2 * e)
	n := physics.Vec3{X: -dhdx, Y: 1, Z: -dhdz}.Normalized()
	if n.IsZero() {
		return physics.Up
	}
	return n
}

// RaycastDown implements physics.World. An origin already below the surface
// reports a hit at distance zero rather than tunneling.
func (f *Heightfield) RaycastDown(origin physics.Vec3, maxDist float64) (physics.Hit, bool) {
	surface := f.SurfaceHeight(origin.X, origin.Z)
	dist := origin.Y - surface
	if dist > maxDist {
		return physics.Hit{}, false
	}
	return physics.Hit{
		Point:   physics.Vec3{X: origin.X, Y: surface, Z: origin.Z},
		Normal:  f.NormalAt(origin.X, origin.Z),
		Surface: f.MaterialAt(origin.X, origin.Z),
	}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
