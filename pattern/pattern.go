// Package pattern evaluates the scene's Pattern variants at an
// object-space point.
package pattern

import (
	"math"

	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/scene"
)

// ColorAt evaluates pattern id at object-space point p. All five concrete
// pattern cases and the transform wrapper are handled here; callers (the
// integrator) are responsible for passing the correctly accumulated
// object-space point.
func ColorAt(store *scene.Store, id scene.PatternID, p vec.Point3) vec.Color {
	pat, ok := store.GetPattern(id)
	if !ok {
		return vec.Gray
	}
	switch pat.Kind {
	case scene.PatternSolid:
		return pat.Color

	case scene.PatternGradient:
		// linear in object-space x over [0,1], clamped.
		t := clamp01(p.X)
		return pat.C0.Lerp(pat.C1, t)

	case scene.PatternStripes:
		// alternating in object-space x by floor(x) mod 2.
		if mod2(math.Floor(p.X)) == 0 {
			return ColorAt(store, pat.P0, p)
		}
		return ColorAt(store, pat.P1, p)

	case scene.PatternCheckers:
		// (floor(x)+floor(y)+floor(z)) mod 2.
		sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
		if mod2(sum) == 0 {
			return ColorAt(store, pat.P0, p)
		}
		return ColorAt(store, pat.P1, p)

	case scene.PatternShells:
		// floor(‖p‖) mod 2.
		r := p.Vec().Length()
		if mod2(math.Floor(r)) == 0 {
			return ColorAt(store, pat.P0, p)
		}
		return ColorAt(store, pat.P1, p)

	case scene.PatternTransform:
		// evaluates the child at t⁻¹·p.
		t, ok := store.GetTransform(pat.Transform)
		if !ok {
			return vec.Gray
		}
		return ColorAt(store, pat.Child, t.Apply(p))

	default:
		return vec.Gray
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// mod2 returns n mod 2 for an already-integral float, always in {0, 1}
// regardless of sign (Go's math.Mod keeps the sign of the dividend, which
// would otherwise make the checker pattern asymmetric about the origin).
func mod2(n float64) int {
	m := math.Mod(n, 2)
	if m < 0 {
		m += 2
	}
	if m == 0 {
		return 0
	}
	return 1
}
