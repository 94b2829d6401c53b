package mat

import (
	"log/slog"

	"github.com/galvanized/raymarch/math/vec"
)

// Transform is a cached (forward, inverse) affine matrix pair. Composition
// multiplies both matrices; the inverse transports points from world space
// into a node's local space.
type Transform struct {
	Fwd, Inv Mat4

	// uniformScale is the single scale factor applied by this transform if
	// it is known to be uniform (1 for a pure rotation/translation). It is
	// used to correct SDF distances when marching through a transform node.
	uniformScale float64

	// nonUniform is true when this transform (or one of its ancestors via
	// Compose) applies anisotropic scale, which breaks true-Euclidean-ness
	// of any SDF evaluated beneath it.
	nonUniform bool
}

// IdentityTransform is the transform with no effect.
func IdentityTransform() Transform {
	return Transform{Fwd: Identity(), Inv: Identity(), uniformScale: 1}
}

// NewTranslation builds a translate-only transform.
func NewTranslation(v vec.Vec3) Transform {
	return Transform{
		Fwd:          Translation(v),
		Inv:          Translation(v.Neg()),
		uniformScale: 1,
	}
}

// NewRotation builds a rotate-only transform from an axis-angle pair.
func NewRotation(axis vec.Vec3, angleRadians float64) (Transform, error) {
	fwd, err := AxisAngle(axis, angleRadians)
	if err != nil {
		return Transform{}, err
	}
	inv, err := AxisAngle(axis, -angleRadians)
	if err != nil {
		return Transform{}, err
	}
	return Transform{Fwd: fwd, Inv: inv, uniformScale: 1}, nil
}

// NewUniformScale builds a scale transform with a single factor on all axes.
func NewUniformScale(s float64) (Transform, error) {
	if s == 0 {
		return Transform{}, NonInvertibleTransform{}
	}
	return Transform{
		Fwd:          UniformScale(s),
		Inv:          UniformScale(1 / s),
		uniformScale: s,
	}, nil
}

// NewNonUniformScale builds a scale transform with independent per-axis
// factors. Anisotropic scale is accepted but flagged: the caller (the
// scene builder) is expected to log the warning once at build time, not
// on every distance evaluation, so this constructor only marks the
// resulting Transform as non-uniform and lets distance evaluation treat
// its scale factor as 1 (no correction attempted) rather than silently
// fabricate a Lipschitz estimate that could hide worse artifacts than it
// fixes.
func NewNonUniformScale(sx, sy, sz float64) (Transform, error) {
	if sx == 0 || sy == 0 || sz == 0 {
		return Transform{}, NonInvertibleTransform{}
	}
	return Transform{
		Fwd:          NonUniformScale(sx, sy, sz),
		Inv:          NonUniformScale(1/sx, 1/sy, 1/sz),
		uniformScale: 1,
		nonUniform:   true,
	}, nil
}

// Compose returns the transform equivalent to applying t first, then o:
// a point p maps to o.ApplyForward(t.ApplyForward(p)), and Apply of the
// result equals t.Apply(o.Apply(p)). Both the forward and inverse
// matrices are combined, and uniform-scale/non-uniform flags propagate so
// a single anisotropic ancestor taints the whole chain.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Fwd:          t.Fwd.Mul(o.Fwd),
		Inv:          o.Inv.Mul(t.Inv),
		uniformScale: t.uniformScale * o.uniformScale,
		nonUniform:   t.nonUniform || o.nonUniform,
	}
}

// Apply transforms a world-space point into this transform's local frame
// using the inverse matrix, as the distance evaluator does at every
// transform node, i.e. dist(child, t⁻¹·p).
func (t Transform) Apply(p vec.Point3) vec.Point3 { return t.Inv.MulPoint(p) }

// ApplyForward transforms a local-space point into world space, used by
// the camera to place primary rays.
func (t Transform) ApplyForward(p vec.Point3) vec.Point3 { return t.Fwd.MulPoint(p) }

// ApplyVec transforms a direction vector into this transform's local
// frame (no translation component).
func (t Transform) ApplyVec(v vec.Vec3) vec.Vec3 { return t.Inv.MulVec(v) }

// ApplyVecForward transforms a local-space direction into world space.
func (t Transform) ApplyVecForward(v vec.Vec3) vec.Vec3 { return t.Fwd.MulVec(v) }

// UniformScaleFactor returns the factor to multiply a distance by when
// marching through this transform node, and whether the scale
// is known to be exactly uniform. Non-uniform transforms return (1,
// false): the factor is not applied because it would not be correct, and
// callers should already have surfaced NonUniform() via a build-time
// warning.
func (t Transform) UniformScaleFactor() (float64, bool) {
	if t.nonUniform {
		return 1, false
	}
	return t.uniformScale, true
}

// NonUniform reports whether this transform (or any ancestor composed
// into it) applies anisotropic scale.
func (t Transform) NonUniform() bool { return t.nonUniform }

// Invert returns the transform with forward and inverse swapped.
func (t Transform) Invert() Transform {
	return Transform{Fwd: t.Inv, Inv: t.Fwd, uniformScale: 1 / t.uniformScale, nonUniform: t.nonUniform}
}

// FromMatrix builds a Transform from an already-composed forward matrix,
// inverting it explicitly, for an arbitrary 4x4 rather than one of the
// named constructors above. The result's uniform scale factor is always
// 1; no scale is read from the matrix.
func FromMatrix(fwd Mat4) (Transform, error) {
	inv, err := fwd.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{Fwd: fwd, Inv: inv, uniformScale: 1}, nil
}

// WarnIfNonUniform logs the anisotropic-scale caveat once per transform,
// called by the scene builder immediately after constructing a `(scale
// x y z)` form whose components differ.
func WarnIfNonUniform(t Transform, logger *slog.Logger) {
	if t.NonUniform() {
		logger.Warn("non-uniform scale breaks SDF distance correctness; rendering will be approximate")
	}
}
