// Package dist implements the recursive distance evaluator: the routine
// that, given a point in world space and a node, returns the signed
// distance to the nearest surface together with the material that would
// paint it.
package dist

import (
	"math"

	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/scene"
)

// Result is the evaluator's full answer at a point: the signed distance,
// the material that should paint a hit there (scene.NoMaterial if nothing
// painted this subtree), and the object-space point at which that
// material's pattern should be sampled: the accumulated inverse of
// transforms from root down to the painted node.
type Result struct {
	Dist     float64
	Material scene.MaterialID
	Point    vec.Point3
}

// Evaluate returns dist(node, p). p is the point in the frame currently
// in effect; Evaluate threads it through transform nodes by applying the
// node's inverse matrix, maintaining the current world→local transform
// stack implicitly by transforming p at each transform node rather than
// carrying an explicit stack.
func Evaluate(store *scene.Store, id scene.NodeID, p vec.Point3) Result {
	n, ok := store.GetNode(id)
	if !ok {
		// An id that doesn't resolve is a store invariant violation: every
		// id in the store should refer to an existing entry. The marcher
		// must still terminate, so treat it as infinitely far.
		return Result{Dist: math.MaxFloat64, Material: scene.NoMaterial, Point: p}
	}

	switch n.Kind {
	case scene.NodeSphere:
		return Result{Dist: p.Vec().Length() - n.Radius, Material: scene.NoMaterial, Point: p}

	case scene.NodePlane:
		return Result{Dist: p.Vec().Dot(n.Normal), Material: scene.NoMaterial, Point: p}

	case scene.NodeBox:
		return Result{Dist: boxDistance(p, n.Half), Material: scene.NoMaterial, Point: p}

	case scene.NodeTorus:
		return Result{Dist: torusDistance(p, n.Hole, n.Ring), Material: scene.NoMaterial, Point: p}

	case scene.NodeTransform:
		t, ok := store.GetTransform(n.Transform)
		if !ok {
			return Result{Dist: math.MaxFloat64, Material: scene.NoMaterial, Point: p}
		}
		childP := t.Apply(p)
		child := Evaluate(store, n.Child, childP)
		factor, _ := t.UniformScaleFactor() // 1 when the scale is non-uniform
		child.Dist *= factor
		return child

	case scene.NodePaint:
		child := Evaluate(store, n.Child, p)
		child.Material = n.Material
		child.Point = p
		return child

	case scene.NodeInvert:
		child := Evaluate(store, n.Child, p)
		child.Dist = -child.Dist
		return child

	case scene.NodeGroup, scene.NodeUnion:
		return hardMin(store, n.Children, p)

	case scene.NodeSmoothUnion:
		return smoothUnion(store, n.Children, n.K, p)

	case scene.NodeIntersect:
		return hardMax(store, n.Children, p)

	case scene.NodeSubtract:
		a := Evaluate(store, n.A, p)
		b := Evaluate(store, n.B, p)
		negB := -b.Dist
		if negB > a.Dist {
			return Result{Dist: negB, Material: b.Material, Point: b.Point}
		}
		return Result{Dist: a.Dist, Material: a.Material, Point: a.Point}

	default:
		return Result{Dist: math.MaxFloat64, Material: scene.NoMaterial, Point: p}
	}
}

// boxDistance is the standard axis-aligned box SDF:
// ‖max(|p|-h, 0)‖ + min(max(...), 0).
func boxDistance(p vec.Point3, half vec.Vec3) float64 {
	qx := math.Abs(p.X) - half.X
	qy := math.Abs(p.Y) - half.Y
	qz := math.Abs(p.Z) - half.Z

	outside := vec.V3(math.Max(qx, 0), math.Max(qy, 0), math.Max(qz, 0)).Length()
	inside := math.Min(math.Max(qx, math.Max(qy, qz)), 0)
	return outside + inside
}

// torusDistance is ‖(‖p.xz‖-hole, p.y)‖ - ring.
func torusDistance(p vec.Point3, hole, ring float64) float64 {
	xz := math.Hypot(p.X, p.Z)
	qx := xz - hole
	qy := p.Y
	return math.Hypot(qx, qy) - ring
}

func hardMin(store *scene.Store, children []scene.NodeID, p vec.Point3) Result {
	best := Result{Dist: math.Inf(1), Material: scene.NoMaterial, Point: p}
	for _, c := range children {
		r := Evaluate(store, c, p)
		if r.Dist < best.Dist {
			best = r
		}
	}
	return best
}

func hardMax(store *scene.Store, children []scene.NodeID, p vec.Point3) Result {
	best := Result{Dist: math.Inf(-1), Material: scene.NoMaterial, Point: p}
	for _, c := range children {
		r := Evaluate(store, c, p)
		if r.Dist > best.Dist {
			best = r
		}
	}
	return best
}

// smoothUnion folds the polynomial smooth-min across all children in
// order, while selecting the material/point from whichever child wins the
// underlying hard min (the argmin of the hard min), not from the blended
// distance itself.
func smoothUnion(store *scene.Store, children []scene.NodeID, k float64, p vec.Point3) Result {
	if len(children) == 0 {
		return Result{Dist: math.Inf(1), Material: scene.NoMaterial, Point: p}
	}
	results := make([]Result, len(children))
	for i, c := range children {
		results[i] = Evaluate(store, c, p)
	}

	hard := results[0]
	for _, r := range results[1:] {
		if r.Dist < hard.Dist {
			hard = r
		}
	}

	blended := results[0].Dist
	for _, r := range results[1:] {
		blended = smoothMin(blended, r.Dist, k)
	}

	return Result{Dist: blended, Material: hard.Material, Point: hard.Point}
}

// smoothMin is the polynomial smooth-min:
// h = clamp(0.5 + 0.5*(b-a)/k, 0, 1); mix(b,a,h) - k*h*(1-h)
func smoothMin(a, b, k float64) float64 {
	h := clamp01(0.5 + 0.5*(b-a)/k)
	return mix(b, a, h) - k*h*(1-h)
}

func mix(a, b, t float64) float64 { return a + (b-a)*t }

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
