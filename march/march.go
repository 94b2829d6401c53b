// Package march implements the fixed-step sphere-tracing loop, normal
// estimation, and shadow probe.
package march

import (
	"github.com/galvanized/raymarch/dist"
	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/scene"
)

// Default tunable marcher constants, chosen for stability on typical
// unit-scale scenes.
const (
	DefaultMaxSteps    = 256
	DefaultMaxDistance = 1e3
	HitEpsilon         = 1e-4
	NormalEpsilon      = 1e-5
)

// Limits bounds the sphere-tracing loop.
type Limits struct {
	MaxSteps    int
	MaxDistance float64
}

// DefaultLimits returns the built-in step/distance bounds.
func DefaultLimits() Limits {
	return Limits{MaxSteps: DefaultMaxSteps, MaxDistance: DefaultMaxDistance}
}

// activeLimits is set once by Configure before rendering begins; every
// render worker goroutine only reads it afterward, so no synchronization
// is needed beyond program order in main.
var activeLimits = DefaultLimits()

// Configure overrides the marcher's step/distance bounds, e.g. from a
// loaded config.Config. Call it before launching any render workers.
func Configure(l Limits) {
	if l.MaxSteps <= 0 {
		l.MaxSteps = DefaultMaxSteps
	}
	if l.MaxDistance <= 0 {
		l.MaxDistance = DefaultMaxDistance
	}
	activeLimits = l
}

// MaxSteps and MaxDistance expose the currently active limits, kept as
// functions rather than package vars so March always observes the latest
// Configure call.
func MaxSteps() int        { return activeLimits.MaxSteps }
func MaxDistance() float64 { return activeLimits.MaxDistance }

// Ray is a world-space ray: origin plus a (expected unit-length) direction.
type Ray struct {
	Origin vec.Point3
	Dir    vec.Vec3
}

// At returns the point t units along the ray from its origin.
func (r Ray) At(t float64) vec.Point3 { return r.Origin.Add(r.Dir.Scale(t)) }

// Hit describes a located ray/surface intersection.
type Hit struct {
	T        float64
	Point    vec.Point3
	Material scene.MaterialID
	// ObjectPoint is the point in the coordinate frame of the material
	// that painted this surface, for pattern evaluation.
	ObjectPoint vec.Point3
}

// March sphere-traces ray against root, returning (Hit, true) or (Hit{},
// false) on a miss:
//
//	t = 0; for step < MAX_STEPS:
//	  (d, m) = dist(root, ray.origin + t*ray.dir)
//	  if |d| < HIT_EPSILON: return hit
//	  t += d
//	  if t > MAX_DISTANCE: return miss
func March(store *scene.Store, root scene.NodeID, ray Ray) (Hit, bool) {
	t := 0.0
	for step := 0; step < MaxSteps(); step++ {
		p := ray.At(t)
		r := dist.Evaluate(store, root, p)
		if absf(r.Dist) < HitEpsilon {
			return Hit{T: t, Point: p, Material: r.Material, ObjectPoint: r.Point}, true
		}
		t += r.Dist
		if t > MaxDistance() {
			return Hit{}, false
		}
	}
	return Hit{}, false
}

// Normal estimates the surface normal at world point p via central
// differences of dist along x, y, z. If the estimated gradient is
// degenerate, it falls back to the negated ray direction.
func Normal(store *scene.Store, root scene.NodeID, p vec.Point3, rayDir vec.Vec3) vec.Vec3 {
	dx := vec.V3(NormalEpsilon, 0, 0)
	dy := vec.V3(0, NormalEpsilon, 0)
	dz := vec.V3(0, 0, NormalEpsilon)

	gx := dist.Evaluate(store, root, p.Add(dx)).Dist - dist.Evaluate(store, root, p.Add(dx.Neg())).Dist
	gy := dist.Evaluate(store, root, p.Add(dy)).Dist - dist.Evaluate(store, root, p.Add(dy.Neg())).Dist
	gz := dist.Evaluate(store, root, p.Add(dz)).Dist - dist.Evaluate(store, root, p.Add(dz.Neg())).Dist

	grad := vec.V3(gx, gy, gz)
	n, err := grad.Unit()
	if err != nil {
		return rayDir.Neg()
	}
	return n
}

// shadowBias is the offset along the normal used to escape the surface
// before marching toward a light.
const shadowBias = 2 * HitEpsilon

// InShadow marches from point (offset along normal to escape the
// surface) toward lightPos: the point is in shadow iff a hit occurs with
// t less than the distance to the light.
func InShadow(store *scene.Store, root scene.NodeID, point vec.Point3, normal vec.Vec3, lightPos vec.Point3) bool {
	origin := point.Add(normal.Scale(shadowBias))
	toLight := lightPos.Sub(origin)
	lightDist := toLight.Length()
	dir, err := toLight.Unit()
	if err != nil {
		// The point is (numerically) at the light; nothing can occlude it.
		return false
	}
	hit, ok := March(store, root, Ray{Origin: origin, Dir: dir})
	return ok && hit.T < lightDist
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
