// Package integrate implements the Whitted shading integrator:
// ambient/diffuse/specular Phong, recursive mirror reflection, and
// point-light shadow rays.
package integrate

import (
	"math"

	"github.com/galvanized/raymarch/march"
	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/pattern"
	"github.com/galvanized/raymarch/scene"
)

// reflectBias offsets a reflected ray's origin along the normal so it
// doesn't immediately re-intersect the surface it bounced from, mirroring
// the shadow probe's bias in package march.
const reflectBias = 2 * march.HitEpsilon

// defaultMaterial is used when a hit carries scene.NoMaterial: a default
// matte Phong with a solid mid-gray pattern. Its Pattern field is
// scene.PatternID(-1), a sentinel handled directly in surfaceColor rather
// than interned into the scene's Store — the default material is not
// part of the scene graph and must exist even for an empty store.
var defaultMaterial = scene.Material{
	Kind:      scene.MaterialPhong,
	Pattern:   -1,
	Ambient:   0.1,
	Diffuse:   0.9,
	Specular:  0.9,
	Shininess: 200,
}

// Shade traces ray through root and returns its color, recursing into
// reflections up to depth bounces. A miss yields black.
func Shade(store *scene.Store, root scene.NodeID, ray march.Ray, depth int) vec.Color {
	hit, ok := march.March(store, root, ray)
	if !ok {
		return vec.Black
	}

	mat, ok := store.GetMaterial(hit.Material)
	if !ok {
		mat = defaultMaterial
	}

	surface := surfaceColor(store, mat, hit.ObjectPoint)

	if mat.Kind == scene.MaterialEmissive {
		return surface.Clamp()
	}

	normal := march.Normal(store, root, hit.Point, ray.Dir)
	view := ray.Dir.Neg()

	total := vec.Black
	for _, light := range store.Lights() {
		total = total.Add(phongContribution(store, root, mat, surface, hit.Point, normal, view, light))
	}

	if mat.Reflective > 0 && depth > 0 {
		reflected := ray.Dir.Reflect(normal)
		reflectRay := march.Ray{Origin: hit.Point.Add(normal.Scale(reflectBias)), Dir: reflected}
		reflectedColor := Shade(store, root, reflectRay, depth-1)
		total = total.Add(reflectedColor.Scale(mat.Reflective))
	}

	return total.Clamp()
}

func surfaceColor(store *scene.Store, mat scene.Material, objectPoint vec.Point3) vec.Color {
	if mat.Pattern < 0 {
		return vec.Gray
	}
	return pattern.ColorAt(store, mat.Pattern, objectPoint)
}

// phongContribution returns one light's contribution to a hit's color.
// Diffuse lights contribute an ambient-only term; point lights add
// diffuse+specular unless occluded, in which case only the ambient term
// survives.
func phongContribution(store *scene.Store, root scene.NodeID, mat scene.Material, surface vec.Color, point vec.Point3, normal, view vec.Vec3, light scene.Light) vec.Color {
	switch light.Kind {
	case scene.LightDiffuse:
		return surface.Mul(light.Color).Scale(mat.Ambient)

	case scene.LightPoint:
		if march.InShadow(store, root, point, normal, light.Position) {
			return surface.Mul(light.Color).Scale(mat.Ambient)
		}
		toLight, err := light.Position.Sub(point).Unit()
		if err != nil {
			return surface.Mul(light.Color).Scale(mat.Ambient)
		}

		diffuseTerm := math.Max(toLight.Dot(normal), 0)
		diffuse := surface.Mul(light.Color).Scale(mat.Diffuse * diffuseTerm)

		var specular vec.Color
		if diffuseTerm > 0 {
			reflectDir := toLight.Neg().Reflect(normal)
			specTerm := math.Max(reflectDir.Dot(view), 0)
			if specTerm > 0 {
				specular = light.Color.Scale(mat.Specular * math.Pow(specTerm, mat.Shininess))
			}
		}

		return diffuse.Add(specular)

	default:
		return vec.Black
	}
}
