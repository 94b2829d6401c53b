package render_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized/raymarch/math/mat"
	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/render"
	"github.com/galvanized/raymarch/scene"
)

func buildSingleSphereScene(w, h int) (*scene.Store, scene.Target) {
	s := scene.NewStore()
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})
	pat := s.InternPattern(scene.Pattern{Kind: scene.PatternSolid, Color: vec.RGB(1, 0, 0)})
	matID := s.InternMaterial(scene.DefaultPhong(pat))
	painted := s.InternNode(scene.Node{Kind: scene.NodePaint, Material: matID, Child: sphere})

	s.InternLight(scene.Light{Kind: scene.LightDiffuse, Color: vec.White})
	s.InternLight(scene.Light{Kind: scene.LightPoint, Color: vec.White, Position: vec.P3(10, 10, -10)})

	camT := s.InternTransform(mat.NewTranslation(vec.V3(0, 0, -5)))
	camID := s.InternCamera(scene.Camera{
		Width: w, Height: h,
		WorldToCamera: camT,
		FovRadians:    1.2,
		Sampler:       scene.Sampler{NX: 1, NY: 1},
	})

	target := scene.Target{Kind: scene.TargetFile, Root: painted, Camera: camID, RecursionBudget: 3}
	return s, target
}

func TestRenderTargetProducesCorrectlySizedBuffer(t *testing.T) {
	s, target := buildSingleSphereScene(40, 40)
	pixels, err := render.RenderTarget(s, target, render.Options{Threads: 2, Logger: slog.New(slog.NewTextHandler(os.Stderr, nil))})
	require.NoError(t, err)
	require.Equal(t, 40, pixels.Width)
	require.Equal(t, 40, pixels.Height)

	center := pixels.At(20, 20)
	require.Greater(t, center.R, 0.0, "center pixel should hit the sphere, not the black background")
	require.Greater(t, center.R, center.G, "the sphere is painted red")
	require.Greater(t, center.R, center.B, "the sphere is painted red")
}

func TestWritePNGRoundTrips(t *testing.T) {
	s, target := buildSingleSphereScene(16, 16)
	pixels, err := render.RenderTarget(s, target, render.Options{Threads: 1})
	require.NoError(t, err)
	require.Greater(t, pixels.At(8, 8).R, 0.0, "center pixel should hit the sphere, not the black background")

	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, render.WritePNG(path, pixels))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestASCIIRowsUsesDefaultRampLength(t *testing.T) {
	s, target := buildSingleSphereScene(8, 8)
	pixels, err := render.RenderTarget(s, target, render.Options{Threads: 1})
	require.NoError(t, err)

	rows := render.ASCIIRows(pixels, "")
	require.Len(t, rows, 8)
	for _, row := range rows {
		require.Len(t, row, 8)
	}
	require.NotEqual(t, byte(' '), rows[4][4], "center glyph should hit the sphere, not the blank background")
}
