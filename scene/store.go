package scene

import (
	"fmt"

	"github.com/galvanized/raymarch/math/mat"
)

// comparableArena interns values of a comparable type T directly, using
// the value itself as the map key. Pattern, Material, Light, Camera,
// Target, and mat.Transform are all flat structs of comparable fields, so
// structural equality (exact field equality, floats compared bitwise)
// falls out of Go's built-in map semantics for free.
type comparableArena[T comparable] struct {
	items []T
	index map[T]int
}

func (a *comparableArena[T]) intern(v T) int {
	if a.index == nil {
		a.index = make(map[T]int)
	}
	if id, ok := a.index[v]; ok {
		return id
	}
	id := len(a.items)
	a.items = append(a.items, v)
	a.index[v] = id
	return id
}

func (a *comparableArena[T]) get(id int) (T, bool) {
	if id < 0 || id >= len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[id], true
}

// keyedArena interns values that are not themselves comparable (Node has a
// Children slice) using a caller-supplied canonical string key.
type keyedArena[T any] struct {
	items []T
	index map[string]int
}

func (a *keyedArena[T]) intern(key string, v T) int {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if id, ok := a.index[key]; ok {
		return id
	}
	id := len(a.items)
	a.items = append(a.items, v)
	a.index[key] = id
	return id
}

func (a *keyedArena[T]) get(id int) (T, bool) {
	if id < 0 || id >= len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[id], true
}

// Store is the deduplicated arena for an entire scene. It is built once
// by Builder and is read-only for the lifetime of a render:
// no method below mutates an existing entry, so concurrent readers (the
// render driver's worker pool) never observe partial state.
type Store struct {
	nodes      keyedArena[Node]
	patterns   comparableArena[Pattern]
	materials  comparableArena[Material]
	transforms comparableArena[mat.Transform]
	lights     comparableArena[Light]
	cameras    comparableArena[Camera]
	targets    comparableArena[Target]
}

// NewStore returns an empty scene store.
func NewStore() *Store { return &Store{} }

// InternNode inserts n if it is structurally new and returns its id,
// otherwise returns the id of the existing equal entry.
func (s *Store) InternNode(n Node) NodeID {
	return NodeID(s.nodes.intern(nodeKey(n), n))
}

// GetNode looks up a node by id. ok is false if id is out of range, which
// the distance evaluator treats as an internal invariant violation (every
// id handed to a caller came from InternNode).
func (s *Store) GetNode(id NodeID) (Node, bool) { return s.nodes.get(int(id)) }

// InternPattern inserts p if it is structurally new and returns its id.
func (s *Store) InternPattern(p Pattern) PatternID {
	return PatternID(s.patterns.intern(p))
}

// GetPattern looks up a pattern by id.
func (s *Store) GetPattern(id PatternID) (Pattern, bool) { return s.patterns.get(int(id)) }

// InternMaterial inserts m if it is structurally new and returns its id.
func (s *Store) InternMaterial(m Material) MaterialID {
	return MaterialID(s.materials.intern(m))
}

// GetMaterial looks up a material by id.
func (s *Store) GetMaterial(id MaterialID) (Material, bool) {
	if id == NoMaterial {
		return Material{}, false
	}
	return s.materials.get(int(id))
}

// InternTransform inserts t if it is structurally new and returns its id.
func (s *Store) InternTransform(t mat.Transform) TransformID {
	return TransformID(s.transforms.intern(t))
}

// GetTransform looks up a transform by id.
func (s *Store) GetTransform(id TransformID) (mat.Transform, bool) {
	return s.transforms.get(int(id))
}

// InternLight inserts l if it is structurally new and returns its id.
func (s *Store) InternLight(l Light) LightID {
	return LightID(s.lights.intern(l))
}

// GetLight looks up a light by id.
func (s *Store) GetLight(id LightID) (Light, bool) { return s.lights.get(int(id)) }

// Lights returns every interned light, in insertion order, for the
// integrator's light loop.
func (s *Store) Lights() []Light { return append([]Light(nil), s.lights.items...) }

// InternCamera inserts c if it is structurally new and returns its id.
func (s *Store) InternCamera(c Camera) CameraID {
	return CameraID(s.cameras.intern(c))
}

// GetCamera looks up a camera by id.
func (s *Store) GetCamera(id CameraID) (Camera, bool) { return s.cameras.get(int(id)) }

// InternTarget inserts t and returns its id.
func (s *Store) InternTarget(t Target) TargetID {
	return TargetID(s.targets.intern(t))
}

// GetTarget looks up a render target by id.
func (s *Store) GetTarget(id TargetID) (Target, bool) { return s.targets.get(int(id)) }

// Targets returns every interned render target, in declaration order, for
// the render driver to iterate.
func (s *Store) Targets() []Target { return append([]Target(nil), s.targets.items...) }

// nodeKey produces a canonical string distinguishing structurally distinct
// nodes, used by the keyed arena above. Two nodes with equal Kind and
// equal relevant fields (including, for n-ary kinds, equal child id
// sequences) produce the same key and therefore intern to the same id
// so equal structural values always share an id.
func nodeKey(n Node) string {
	switch n.Kind {
	case NodePlane:
		return fmt.Sprintf("plane:%v", n.Normal)
	case NodeSphere:
		return fmt.Sprintf("sphere:%v", n.Radius)
	case NodeBox:
		return fmt.Sprintf("box:%v", n.Half)
	case NodeTorus:
		return fmt.Sprintf("torus:%v:%v", n.Hole, n.Ring)
	case NodeTransform:
		return fmt.Sprintf("transform:%d:%d", n.Transform, n.Child)
	case NodePaint:
		return fmt.Sprintf("paint:%d:%d", n.Material, n.Child)
	case NodeInvert:
		return fmt.Sprintf("invert:%d", n.Child)
	case NodeGroup:
		return fmt.Sprintf("group:%v", n.Children)
	case NodeUnion:
		return fmt.Sprintf("union:%v", n.Children)
	case NodeSmoothUnion:
		return fmt.Sprintf("smooth_union:%v:%v", n.K, n.Children)
	case NodeIntersect:
		return fmt.Sprintf("intersect:%v", n.Children)
	case NodeSubtract:
		return fmt.Sprintf("subtract:%d:%d", n.A, n.B)
	default:
		return fmt.Sprintf("unknown:%d", n.Kind)
	}
}
