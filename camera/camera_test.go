package camera_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized/raymarch/camera"
	"github.com/galvanized/raymarch/math/mat"
	"github.com/galvanized/raymarch/scene"
)

func TestFromSceneCentersSingleSampleRayOnPixelMidpoint(t *testing.T) {
	s := scene.NewStore()
	tid := s.InternTransform(mat.IdentityTransform())
	camID := s.InternCamera(scene.Camera{
		Width: 101, Height: 101,
		WorldToCamera: tid,
		FovRadians:    1.0,
		Sampler:       scene.Sampler{NX: 1, NY: 1},
	})

	pin, err := camera.FromScene(s, camID)
	require.NoError(t, err)

	ray := pin.Ray(50, 50, 0, 0)
	require.InDelta(t, 0.0, ray.Origin.X, 1e-9)
	require.InDelta(t, 0.0, ray.Origin.Y, 1e-9)
	require.InDelta(t, 0.0, ray.Origin.Z, 1e-9)
	// the exact center pixel's single sample should point straight down +Z.
	require.InDelta(t, 0.0, ray.Dir.X, 1e-9)
	require.InDelta(t, 0.0, ray.Dir.Y, 1e-9)
	require.InDelta(t, 1.0, ray.Dir.Z, 1e-9)
}

func TestFromSceneDefaultsMissingSampler(t *testing.T) {
	s := scene.NewStore()
	tid := s.InternTransform(mat.IdentityTransform())
	camID := s.InternCamera(scene.Camera{
		Width: 10, Height: 10,
		WorldToCamera: tid,
		FovRadians:    1.0,
	})

	pin, err := camera.FromScene(s, camID)
	require.NoError(t, err)
	require.Equal(t, 1, pin.Sampler.NX)
	require.Equal(t, 1, pin.Sampler.NY)
}

func TestFromSceneRejectsUnknownCamera(t *testing.T) {
	s := scene.NewStore()
	_, err := camera.FromScene(s, scene.CameraID(7))
	require.Error(t, err)
}
