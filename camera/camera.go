// Package camera generates primary camera rays for a pinhole camera and
// averages the sub-pixel samples a Sampler grid calls for. The per-pixel
// ray construction follows the same shape as the business-card ray
// tracer in github.com/gazed/vu/eg/rt.go: a fixed camera basis (look,
// right, up) built once, then combined per-sample with an offset into the
// image plane.
package camera

import (
	"math"

	"github.com/galvanized/raymarch/march"
	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/scene"
)

// Pinhole is a ready-to-shoot camera: the world-space basis and image
// dimensions resolved once from a scene.Camera so per-pixel ray generation
// doesn't need to look anything up in the store.
type Pinhole struct {
	Width, Height int
	Sampler       scene.Sampler

	origin        vec.Point3
	right, up, fwd vec.Vec3
	halfWidth      float64 // tan(fov/2) * aspect
	halfHeight     float64 // tan(fov/2)
}

// FromScene resolves cam (looked up via camID in store) into a Pinhole.
// The camera's WorldToCamera transform places the eye at the image of the
// origin under the transform's forward matrix and its basis vectors at the
// images of the standard axes, i.e. camera space has its eye at the
// origin looking down +Z with +Y up: a camera translated to (0,0,-5)
// shoots rays toward increasing Z, toward the scene at the origin.
func FromScene(store *scene.Store, camID scene.CameraID) (Pinhole, error) {
	cam, ok := store.GetCamera(camID)
	if !ok {
		return Pinhole{}, scene.UndefinedName{Name: "<unresolved camera id>"}
	}
	t, ok := store.GetTransform(cam.WorldToCamera)
	if !ok {
		return Pinhole{}, scene.UndefinedName{Name: "<unresolved transform id>"}
	}

	eye := t.ApplyForward(vec.P3(0, 0, 0))
	right := t.ApplyVecForward(vec.V3(1, 0, 0))
	up := t.ApplyVecForward(vec.V3(0, 1, 0))
	fwd := t.ApplyVecForward(vec.V3(0, 0, 1))

	right, _ = right.Unit()
	up, _ = up.Unit()
	fwd, _ = fwd.Unit()

	aspect := float64(cam.Width) / float64(cam.Height)
	halfHeight := math.Tan(cam.FovRadians / 2)
	halfWidth := halfHeight * aspect

	sampler := cam.Sampler
	if sampler.NX <= 0 || sampler.NY <= 0 {
		sampler = scene.Sampler{NX: 1, NY: 1}
	}

	return Pinhole{
		Width: cam.Width, Height: cam.Height,
		Sampler:    sampler,
		origin:     eye,
		right:      right,
		up:         up,
		fwd:        fwd,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}, nil
}

// Ray returns the primary ray for sub-sample (sx, sy) of pixel (px, py),
// where sx ranges over [0, NX) and sy over [0, NY). Samples are placed at
// the centers of a uniform NX×NY grid inside the pixel's footprint.
func (p Pinhole) Ray(px, py, sx, sy int) march.Ray {
	u := (float64(px) + (float64(sx)+0.5)/float64(p.Sampler.NX)) / float64(p.Width)
	v := (float64(py) + (float64(sy)+0.5)/float64(p.Sampler.NY)) / float64(p.Height)

	// Map u,v in [0,1) to camera-plane offsets in [-half, half), with v
	// flipped so row 0 is the top of the image.
	ndcX := (2*u - 1) * p.halfWidth
	ndcY := (1 - 2*v) * p.halfHeight

	dir := p.fwd.Add(p.right.Scale(ndcX)).Add(p.up.Scale(ndcY))
	unit, err := dir.Unit()
	if err != nil {
		unit = p.fwd
	}
	return march.Ray{Origin: p.origin, Dir: unit}
}
