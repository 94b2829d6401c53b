package integrate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized/raymarch/integrate"
	"github.com/galvanized/raymarch/march"
	"github.com/galvanized/raymarch/math/mat"
	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/scene"
)

func TestShadeMissIsBlack(t *testing.T) {
	s := scene.NewStore()
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})

	ray := march.Ray{Origin: vec.P3(0, 0, -5), Dir: vec.V3(0, 1, 0)}
	got := integrate.Shade(s, sphere, ray, scene.DefaultRecursionBudget)
	require.Equal(t, vec.Black, got)
}

func TestShadeLitSphereIsBrighterFacingLight(t *testing.T) {
	s := scene.NewStore()
	pat := s.InternPattern(scene.Pattern{Kind: scene.PatternSolid, Color: vec.White})
	matID := s.InternMaterial(scene.DefaultPhong(pat))
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})
	painted := s.InternNode(scene.Node{Kind: scene.NodePaint, Material: matID, Child: sphere})

	s.InternLight(scene.Light{Kind: scene.LightPoint, Color: vec.White, Position: vec.P3(0, 0, -10)})

	frontRay := march.Ray{Origin: vec.P3(0, 0, -5), Dir: vec.V3(0, 0, 1)}
	front := integrate.Shade(s, painted, frontRay, scene.DefaultRecursionBudget)

	sideRay := march.Ray{Origin: vec.P3(-5, 0.999, 0), Dir: vec.V3(1, 0, 0)}
	side := integrate.Shade(s, painted, sideRay, scene.DefaultRecursionBudget)

	require.Greater(t, front.Luminance(), side.Luminance())
}

func TestShadeEmissiveIgnoresLights(t *testing.T) {
	s := scene.NewStore()
	pat := s.InternPattern(scene.Pattern{Kind: scene.PatternSolid, Color: vec.RGB(0, 1, 0)})
	matID := s.InternMaterial(scene.Material{Kind: scene.MaterialEmissive, Pattern: pat})
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})
	painted := s.InternNode(scene.Node{Kind: scene.NodePaint, Material: matID, Child: sphere})

	ray := march.Ray{Origin: vec.P3(0, 0, -5), Dir: vec.V3(0, 0, 1)}
	got := integrate.Shade(s, painted, ray, scene.DefaultRecursionBudget)
	require.Equal(t, vec.RGB(0, 1, 0), got)
}

func TestShadeDefaultMaterialWhenUnpainted(t *testing.T) {
	s := scene.NewStore()
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})
	s.InternLight(scene.Light{Kind: scene.LightDiffuse, Color: vec.White})

	ray := march.Ray{Origin: vec.P3(0, 0, -5), Dir: vec.V3(0, 0, 1)}
	got := integrate.Shade(s, sphere, ray, scene.DefaultRecursionBudget)
	require.Greater(t, got.Luminance(), 0.0)
}

// TestShadeMirrorRecursesIntoSecondSurface places a red sphere behind the
// camera and a mirror facing the camera: a straight-on ray bounces
// directly back the way it came and should pick up the sphere's color.
func TestShadeMirrorRecursesIntoSecondSurface(t *testing.T) {
	s := scene.NewStore()
	redPat := s.InternPattern(scene.Pattern{Kind: scene.PatternSolid, Color: vec.RGB(1, 0, 0)})
	red := s.InternMaterial(scene.DefaultPhong(redPat))

	behindSphereShape := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})
	behindT := s.InternTransform(mat.NewTranslation(vec.V3(0, 0, -15)))
	behindMoved := s.InternNode(scene.Node{Kind: scene.NodeTransform, Transform: behindT, Child: behindSphereShape})
	behindPainted := s.InternNode(scene.Node{Kind: scene.NodePaint, Material: red, Child: behindMoved})

	mirrorPat := s.InternPattern(scene.Pattern{Kind: scene.PatternSolid, Color: vec.Black})
	mirror := s.InternMaterial(scene.Material{Kind: scene.MaterialPhong, Pattern: mirrorPat, Ambient: 0, Diffuse: 0, Specular: 0, Shininess: 1, Reflective: 1})
	mirrorPlane := s.InternNode(scene.Node{Kind: scene.NodePlane, Normal: vec.V3(0, 0, -1)})
	mirrorPainted := s.InternNode(scene.Node{Kind: scene.NodePaint, Material: mirror, Child: mirrorPlane})

	scn := s.InternNode(scene.Node{Kind: scene.NodeUnion, Children: []scene.NodeID{behindPainted, mirrorPainted}})

	s.InternLight(scene.Light{Kind: scene.LightDiffuse, Color: vec.White})

	ray := march.Ray{Origin: vec.P3(0, 0, -5), Dir: vec.V3(0, 0, 1)}
	got := integrate.Shade(s, scn, ray, scene.DefaultRecursionBudget)
	require.Greater(t, got.R, got.G)
}
