package scene

import (
	"github.com/galvanized/raymarch/math/vec"
)

// NodeKind tags the variant of an SDF Node.
type NodeKind int

const (
	NodePlane NodeKind = iota
	NodeSphere
	NodeBox
	NodeTorus
	NodeTransform
	NodePaint
	NodeInvert
	NodeGroup
	NodeUnion
	NodeSmoothUnion
	NodeIntersect
	NodeSubtract
)

// Node is one entry in the SDF graph. Only the fields relevant to Kind are
// meaningful; this mirrors a tagged union using a flat struct, which keeps
// the type comparable-by-value everywhere except the Children slice used
// by the n-ary kinds (nodeKey computes a canonical string for those).
type Node struct {
	Kind NodeKind

	// leaves
	Normal vec.Vec3 // plane: unit normal
	Radius float64  // sphere
	Half   vec.Vec3 // box: half extents (w,h,d)/2
	Hole   float64  // torus: hole radius
	Ring   float64  // torus: ring radius

	// unary
	Transform TransformID // transform node
	Material  MaterialID  // paint node
	Child     NodeID      // transform, paint, invert

	// n-ary
	Children []NodeID // group, union, intersect
	K        float64  // smooth_union blend factor
	A, B     NodeID   // subtract: A minus B
}

// PatternKind tags the variant of a Pattern.
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternGradient
	PatternStripes
	PatternCheckers
	PatternShells
	PatternTransform
)

// Pattern is a color field evaluated at an object-space point. All fields
// are of comparable types so a whole Pattern value can key the store's
// interning map directly.
type Pattern struct {
	Kind PatternKind

	Color  vec.Color // solid
	C0, C1 vec.Color // gradient

	P0, P1 PatternID // stripes, checkers, shells

	Transform TransformID // transform
	Child     PatternID   // transform
}

// MaterialKind tags the variant of a Material.
type MaterialKind int

const (
	MaterialPhong MaterialKind = iota
	MaterialEmissive
)

// Material is the shading recipe attached to a surface by a paint node.
type Material struct {
	Kind       MaterialKind
	Pattern    PatternID
	Ambient    float64
	Diffuse    float64
	Specular   float64
	Shininess  float64
	Reflective float64
}

// DefaultPhong returns the default Phong coefficients: 0.1, 0.9, 0.9, 200, 0.
func DefaultPhong(pattern PatternID) Material {
	return Material{
		Kind:      MaterialPhong,
		Pattern:   pattern,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// LightKind tags the variant of a Light.
type LightKind int

const (
	LightDiffuse LightKind = iota
	LightPoint
)

// Light is either an ambient environment contribution or a point light.
type Light struct {
	Kind     LightKind
	Color    vec.Color
	Position vec.Point3 // point lights only
}

// Sampler is the uniform sub-pixel grid sampler.
type Sampler struct {
	NX, NY int
}

// Camera is a pinhole camera.
type Camera struct {
	Width, Height int
	WorldToCamera TransformID
	FovRadians    float64
	Sampler       Sampler
}

// TargetKind tags the variant of a render Target.
type TargetKind int

const (
	TargetFile TargetKind = iota
	TargetASCII
)

// Target binds a root node and camera to an output destination.
type Target struct {
	Kind   TargetKind
	Path   string // TargetFile
	Label  string // TargetASCII
	Root   NodeID
	Camera CameraID
	// RecursionBudget is the Whitted integrator's reflection depth budget
	// for this target.
	RecursionBudget int
}

// DefaultRecursionBudget is the Whitted integrator's default reflection
// depth.
const DefaultRecursionBudget = 5
