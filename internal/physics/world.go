package physics

// SurfaceProperties exposes the material data a locomotion controller cares
// about, without coupling to any particular world representation.
type SurfaceProperties interface {
	FrictionCoefficient() float64
}

// Hit describes a single downward probe intersection.
type Hit struct {
	Point  Vec3
	Normal Vec3
	// Surface is nil when the hit geometry carries no material.
	Surface SurfaceProperties
}

// World is the read-only query surface the controller needs from the host
// physics world. Probes are independent within one tick.
type World interface {
	// RaycastDown casts from origin straight down over at most maxDist and
	// reports the first collidable surface, if any.
	RaycastDown(origin Vec3, maxDist float64) (Hit, bool)
}
