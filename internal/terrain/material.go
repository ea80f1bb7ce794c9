package terrain

// Material is the per-surface physical data the locomotion layer reads
// through physics.SurfaceProperties.
type Material struct {
	Name     string
	Friction float64
}

func (m Material) FrictionCoefficient() float64 {
	return m.Friction
}

var (
	Grass = Material{Name: "grass", Friction: 0.9}
	Rock  = Material{Name: "rock", Friction: 0.7}
	Sand  = Material{Name: "sand", Friction: 0.95}
	Ice   = Material{Name: "ice", Friction: 0.05}
)
