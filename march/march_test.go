package march_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized/raymarch/march"
	"github.com/galvanized/raymarch/math/vec"
	"github.com/galvanized/raymarch/scene"
)

func TestMarchHitsSphere(t *testing.T) {
	s := scene.NewStore()
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})

	ray := march.Ray{Origin: vec.P3(0, 0, -5), Dir: vec.V3(0, 0, 1)}
	hit, ok := march.March(s, sphere, ray)
	require.True(t, ok)
	require.InDelta(t, 4.0, hit.T, march.HitEpsilon*2)
}

func TestMarchMissesWhenAimedAway(t *testing.T) {
	s := scene.NewStore()
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})

	ray := march.Ray{Origin: vec.P3(0, 0, -5), Dir: vec.V3(0, 1, 0)}
	_, ok := march.March(s, sphere, ray)
	require.False(t, ok)
}

func TestNormalOnSphereSurfacePointsOutward(t *testing.T) {
	s := scene.NewStore()
	sphere := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})

	p := vec.P3(1, 0, 0)
	n := march.Normal(s, sphere, p, vec.V3(1, 0, 0))
	require.InDelta(t, 1.0, n.X, 1e-3)
	require.InDelta(t, 0.0, n.Y, 1e-3)
	require.InDelta(t, 0.0, n.Z, 1e-3)
}

func TestInShadowBehindOccluder(t *testing.T) {
	s := scene.NewStore()
	occluder := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})

	point := vec.P3(-2, 0, 0)
	normal := vec.V3(-1, 0, 0)
	lightPos := vec.P3(5, 0, 0)

	require.True(t, march.InShadow(s, occluder, point, normal, lightPos))
}

func TestNotInShadowWithClearPath(t *testing.T) {
	s := scene.NewStore()
	occluder := s.InternNode(scene.Node{Kind: scene.NodeSphere, Radius: 1})

	point := vec.P3(-2, 5, 0)
	normal := vec.V3(0, 1, 0)
	lightPos := vec.P3(-2, 10, 0)

	require.False(t, march.InShadow(s, occluder, point, normal, lightPos))
}

func TestConfigureOverridesLimitsAndRejectsNonPositive(t *testing.T) {
	defer march.Configure(march.DefaultLimits())

	march.Configure(march.Limits{MaxSteps: 10, MaxDistance: 50})
	require.Equal(t, 10, march.MaxSteps())
	require.Equal(t, 50.0, march.MaxDistance())

	march.Configure(march.Limits{MaxSteps: 0, MaxDistance: -1})
	require.Equal(t, march.DefaultMaxSteps, march.MaxSteps())
	require.Equal(t, march.DefaultMaxDistance, march.MaxDistance())
}
