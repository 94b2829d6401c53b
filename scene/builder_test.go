package scene_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized/raymarch/internal/sexpr"
	"github.com/galvanized/raymarch/scene"
)

func build(t *testing.T, src string) (*scene.Store, error) {
	t.Helper()
	forms, err := sexpr.Parse(src)
	require.NoError(t, err)
	return scene.Build(forms, nil)
}

func TestBuildSimpleSceneResolvesNamesAndTarget(t *testing.T) {
	src := `
		(node ball (sphere 1))
		(pattern red (solid #ff0000))
		(material skin (phong :pattern red :reflective 0.2))
		(node painted (paint skin ball))
		(light sun (diffuse #ffffff))
		(light bulb (point #ffffff 10 10 -10))
		(camera eye (camera 80 60 (translate 0 0 -5) 1.0))
		(render (file "out.png") painted eye)
	`
	store, err := build(t, src)
	require.NoError(t, err)
	require.Len(t, store.Targets(), 1)
	target := store.Targets()[0]
	require.Equal(t, scene.TargetFile, target.Kind)
	require.Equal(t, "out.png", target.Path)
	require.Equal(t, scene.DefaultRecursionBudget, target.RecursionBudget)

	node, ok := store.GetNode(target.Root)
	require.True(t, ok)
	require.Equal(t, scene.NodePaint, node.Kind)
}

func TestBuildForwardReferenceIsUndefinedName(t *testing.T) {
	src := `
		(node painted (paint skin ball))
		(node ball (sphere 1))
		(material skin (phong))
	`
	_, err := build(t, src)
	require.Error(t, err)
	var undef scene.UndefinedName
	require.ErrorAs(t, err, &undef)
}

func TestBuildDuplicateNameRejected(t *testing.T) {
	src := `
		(node ball (sphere 1))
		(node ball (sphere 2))
	`
	_, err := build(t, src)
	require.Error(t, err)
	var dup scene.DuplicateName
	require.ErrorAs(t, err, &dup)
}

func TestBuildWrongArityIsArityError(t *testing.T) {
	src := `(node ball (sphere 1 2))`
	_, err := build(t, src)
	require.Error(t, err)
	var arity scene.ArityError
	require.ErrorAs(t, err, &arity)
}

func TestBuildUnknownPhongOptionRejected(t *testing.T) {
	src := `(material skin (phong :glossiness 0.5))`
	_, err := build(t, src)
	require.Error(t, err)
	var unk scene.UnknownOption
	require.ErrorAs(t, err, &unk)
}

func TestBuildTypeMismatchWhenNameIsWrongKind(t *testing.T) {
	src := `
		(node ball (sphere 1))
		(node painted (paint ball ball))
	`
	_, err := build(t, src)
	require.Error(t, err)
	var mismatch scene.TypeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestBuildRenderDepthOverride(t *testing.T) {
	src := `
		(node ball (sphere 1))
		(camera eye (camera 10 10 (translate 0 0 -5) 1.0))
		(render (ascii "preview") ball eye :depth 2)
	`
	store, err := build(t, src)
	require.NoError(t, err)
	target := store.Targets()[0]
	require.Equal(t, scene.TargetASCII, target.Kind)
	require.Equal(t, "preview", target.Label)
	require.Equal(t, 2, target.RecursionBudget)
}

func TestBuildIdenticalLeafNodesInternToSameID(t *testing.T) {
	src := `
		(node a (sphere 1))
		(node b (sphere 1))
		(node u (union a b))
		(camera eye (camera 10 10 (translate 0 0 -5) 1.0))
		(render (ascii "preview") u eye)
	`
	store, err := build(t, src)
	require.NoError(t, err)
	target := store.Targets()[0]
	union, ok := store.GetNode(target.Root)
	require.True(t, ok)
	require.Len(t, union.Children, 2)
	require.Equal(t, union.Children[0], union.Children[1], "two structurally identical sphere declarations should intern to the same node id")
}
