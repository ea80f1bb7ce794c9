package terrain

import (
	"math"
	"math/rand"
)

// GenerateOptions tune the procedural sandbox terrain.
type GenerateOptions struct {
	Width          int     `yaml:"width"`
	Depth          int     `yaml:"depth"`
	CellSize       float64 `yaml:"cell_size"`
	HillAmplitude  float64 `yaml:"hill_amplitude"`
	HillWavelength float64 `yaml:"hill_wavelength"`
	IcePatches     int     `yaml:"ice_patches"`
	IcePatchRadius float64 `yaml:"ice_patch_radius"`
	RidgeHeight    float64 `yaml:"ridge_height"`
	Seed           int64   `yaml:"seed"`
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Width:          96,
		Depth:          96,
		CellSize:       1,
		HillAmplitude:  3,
		HillWavelength: 24,
		IcePatches:     4,
		IcePatchRadius: 6,
		RidgeHeight:    14,
		Seed:           1,
	}
}

// Generate builds rolling grass hills with scattered ice patches and one
// steep rocky ridge near the far edge, so every slide state has somewhere to
// happen. The same seed always produces the same field.
func Generate(opts GenerateOptions) *Heightfield {
	def := DefaultGenerateOptions()
	if opts.Width < 2 {
		opts.Width = def.Width
	}
	if opts.Depth < 2 {
		opts.Depth = def.Depth
	}
	if opts.CellSize <= 0 {
		opts.CellSize = def.CellSize
	}
	if opts.HillWavelength <= 0 {
		opts.HillWavelength = def.HillWavelength
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	phaseX := rng.Float64() * 2 * math.Pi
	phaseZ := rng.Float64() * 2 * math.Pi

	heights := make([]float64, opts.Width*opts.Depth)
	for iz := 0; iz < opts.Depth; iz++ {
		for ix := 0; ix < opts.Width; ix++ {
			x := float64(ix) * opts.CellSize
			z := float64(iz) * opts.CellSize
			h := opts.HillAmplitude * (math.Sin(x*2*math.Pi/opts.HillWavelength+phaseX) *
				math.Cos(z*2*math.Pi/opts.HillWavelength+phaseZ))
			h += opts.HillAmplitude * 0.4 * math.Sin((x+z)*math.Pi/opts.HillWavelength)
			heights[iz*opts.Width+ix] = h
		}
	}

	field := NewFromHeights(heights, opts.Width, opts.Depth, opts.CellSize, Grass)

	// Ridge along the far Z edge, steep enough to exceed the slope ceiling.
	if opts.RidgeHeight > 0 {
		ridgeStart := opts.Depth - opts.Depth/6
		for iz := ridgeStart; iz < opts.Depth; iz++ {
			rise := float64(iz-ridgeStart+1) / float64(opts.Depth-ridgeStart)
			for ix := 0; ix < opts.Width; ix++ {
				field.SetVertexHeight(ix, iz, field.vertex(ix, iz)+rise*opts.RidgeHeight)
			}
		}
		field.PaintMaterial(0, float64(ridgeStart)*opts.CellSize,
			field.Width(), field.Depth(), Rock)
	}

	for i := 0; i < opts.IcePatches; i++ {
		cx := rng.Float64() * field.Width()
		cz := rng.Float64() * field.Depth() * 0.7
		r := opts.IcePatchRadius
		field.PaintMaterial(cx-r, cz-r, cx+r, cz+r, Ice)
	}

	return field
}
