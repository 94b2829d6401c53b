package scene

// Builder lowers the parsed S-expression AST into Store ids.
//
// Concrete grammar: top-level forms are
//
//	(node NAME EXPR)
//	(pattern NAME EXPR)
//	(material NAME EXPR)
//	(light NAME EXPR)
//	(camera NAME EXPR)
//	(render (file "path.png") ROOT CAMERA)
//	(render (ascii "label") ROOT CAMERA)
//
// NODE EXPRs: (plane nx ny nz) (sphere r) (box w h d) (torus hole ring)
// (transform TXFORM CHILD) (paint MATERIAL CHILD) (invert CHILD)
// (group CHILD...) (union CHILD...) (smooth_union k CHILD...)
// (intersect CHILD...) (subtract A B). CHILD/MATERIAL positions take
// either an inline expression or an Ident naming an earlier declaration
// (forward references are rejected with UndefinedName). TXFORM positions
// take an inline expression only; transforms cannot be declared by name.
//
// TXFORM EXPRs: (translate x y z) (rotate ax ay az angle) (scale s)
// (scale sx sy sz) (compose TXFORM...). Angles are in radians throughout
// the language (the grammar has no separate degrees literal).
//
// PATTERN EXPRs: (solid COLOR) (gradient COLOR COLOR)
// (stripes PATTERN PATTERN) (checkers PATTERN PATTERN)
// (shells PATTERN PATTERN) (transform TXFORM PATTERN). A bare COLOR
// literal (hex or name) anywhere a pattern is expected is sugar for
// (solid COLOR).
//
// MATERIAL EXPRs: (phong :pattern P :ambient A :diffuse D :specular S
// :shininess SH :reflective R) — all keywords optional, matte defaults
// — or (emissive PATTERN).
//
// LIGHT EXPRs: (diffuse COLOR) (point COLOR x y z).
//
// CAMERA EXPRs: (camera width height TXFORM fov) with an optional trailing
// (sampler nx ny), defaulting to uniform(1,1).

import (
	"log/slog"

	"github.com/galvanized/raymarch/internal/sexpr"
	"github.com/galvanized/raymarch/math/mat"
	"github.com/galvanized/raymarch/math/vec"
)

type bindKind int

const (
	bindNode bindKind = iota
	bindPattern
	bindMaterial
	bindCamera
	bindLight
)

func (k bindKind) String() string {
	switch k {
	case bindNode:
		return "node"
	case bindPattern:
		return "pattern"
	case bindMaterial:
		return "material"
	case bindCamera:
		return "camera"
	case bindLight:
		return "light"
	default:
		return "?"
	}
}

type binding struct {
	kind     bindKind
	node     NodeID
	pattern  PatternID
	material MaterialID
	camera   CameraID
	light    LightID
}

// Builder lowers a parsed scene into a Store.
type Builder struct {
	store  *Store
	names  map[string]binding
	logger *slog.Logger
}

// NewBuilder returns a Builder writing into a fresh Store. A nil logger
// falls back to slog.Default(), matching the rest of the renderer's
// ambient logging convention.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{store: NewStore(), names: make(map[string]binding), logger: logger}
}

// Build processes every top-level form in order and returns the
// resulting Store. Failures abort the build immediately.
func Build(forms []sexpr.Value, logger *slog.Logger) (*Store, error) {
	b := NewBuilder(logger)
	for _, f := range forms {
		if err := b.form(f); err != nil {
			return nil, err
		}
	}
	return b.store, nil
}

func (b *Builder) form(v sexpr.Value) error {
	head, ok := v.Head()
	if !ok || head.Kind != sexpr.Ident {
		return ArityError{Form: "<top-level>", Expected: "a list starting with an identifier", Got: len(v.Items)}
	}
	switch head.Text {
	case "node":
		return b.declare(v, bindNode)
	case "pattern":
		return b.declare(v, bindPattern)
	case "material":
		return b.declare(v, bindMaterial)
	case "light":
		return b.declare(v, bindLight)
	case "camera":
		return b.declare(v, bindCamera)
	case "render":
		return b.render(v)
	default:
		return UndefinedName{Name: head.Text}
	}
}

func (b *Builder) declare(v sexpr.Value, kind bindKind) error {
	if len(v.Items) != 3 {
		return ArityError{Form: kind.String(), Expected: "2 (name, expression)", Got: len(v.Items) - 1}
	}
	nameVal := v.Items[1]
	if nameVal.Kind != sexpr.Ident {
		return TypeMismatch{Expected: "identifier", Got: nameVal.String(), Name: nameVal.String()}
	}
	name := nameVal.Text
	if _, exists := b.names[name]; exists {
		return DuplicateName{Name: name}
	}
	expr := v.Items[2]

	var bnd binding
	bnd.kind = kind
	switch kind {
	case bindNode:
		id, err := b.nodeExpr(expr)
		if err != nil {
			return err
		}
		bnd.node = id
	case bindPattern:
		id, err := b.patternExpr(expr)
		if err != nil {
			return err
		}
		bnd.pattern = id
	case bindMaterial:
		id, err := b.materialExpr(expr)
		if err != nil {
			return err
		}
		bnd.material = id
	case bindLight:
		id, err := b.lightExpr(expr)
		if err != nil {
			return err
		}
		bnd.light = id
	case bindCamera:
		id, err := b.cameraExpr(expr)
		if err != nil {
			return err
		}
		bnd.camera = id
	}
	b.names[name] = bnd
	b.logger.Debug("declared scene entity", slog.String("kind", kind.String()), slog.String("name", name))
	return nil
}

func (b *Builder) render(v sexpr.Value) error {
	// (render TARGET-EXPR ROOT CAMERA [:depth N])
	if len(v.Items) < 4 {
		return ArityError{Form: "render", Expected: "at least 3 (target, root, camera)", Got: len(v.Items) - 1}
	}
	targetExpr := v.Items[1]
	rootVal := v.Items[2]
	cameraVal := v.Items[3]

	root, err := b.resolveNode(rootVal)
	if err != nil {
		return err
	}
	camID, err := b.resolveCamera(cameraVal)
	if err != nil {
		return err
	}

	thead, ok := targetExpr.Head()
	if !ok {
		return TypeMismatch{Expected: "(file \"path\") or (ascii \"label\")", Got: targetExpr.String(), Name: "render"}
	}
	target := Target{Root: root, Camera: camID, RecursionBudget: DefaultRecursionBudget}
	switch thead.Text {
	case "file":
		if len(targetExpr.Items) != 2 || targetExpr.Items[1].Kind != sexpr.String {
			return ArityError{Form: "file", Expected: "1 (path string)", Got: len(targetExpr.Items) - 1}
		}
		target.Kind = TargetFile
		target.Path = targetExpr.Items[1].Text
	case "ascii":
		if len(targetExpr.Items) != 2 || targetExpr.Items[1].Kind != sexpr.String {
			return ArityError{Form: "ascii", Expected: "1 (label string)", Got: len(targetExpr.Items) - 1}
		}
		target.Kind = TargetASCII
		target.Label = targetExpr.Items[1].Text
	default:
		return UndefinedName{Name: thead.Text}
	}

	for i := 4; i+1 < len(v.Items); i += 2 {
		kw := v.Items[i]
		if kw.Kind != sexpr.Keyword {
			return TypeMismatch{Expected: "keyword", Got: kw.String(), Name: "render"}
		}
		if kw.Text != "depth" {
			return UnknownOption{Form: "render", Option: ":" + kw.Text}
		}
		n, err := number(v.Items[i+1])
		if err != nil {
			return err
		}
		target.RecursionBudget = int(n)
	}

	b.store.InternTarget(target)
	return nil
}

// --- node expressions ---

func (b *Builder) resolveNode(v sexpr.Value) (NodeID, error) {
	if v.Kind == sexpr.Ident {
		bnd, ok := b.names[v.Text]
		if !ok {
			return 0, UndefinedName{Name: v.Text}
		}
		if bnd.kind != bindNode {
			return 0, TypeMismatch{Expected: "node", Got: bnd.kind.String(), Name: v.Text}
		}
		return bnd.node, nil
	}
	return b.nodeExpr(v)
}

func (b *Builder) nodeExpr(v sexpr.Value) (NodeID, error) {
	if v.Kind == sexpr.Ident {
		return b.resolveNode(v)
	}
	head, ok := v.Head()
	if !ok {
		return 0, TypeMismatch{Expected: "node expression", Got: v.String(), Name: "node"}
	}
	args := v.Items[1:]
	switch head.Text {
	case "plane":
		if len(args) != 3 {
			return 0, ArityError{Form: "plane", Expected: "3", Got: len(args)}
		}
		n, err := vector3(args)
		if err != nil {
			return 0, err
		}
		u, err := n.Unit()
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodePlane, Normal: u}), nil

	case "sphere":
		if len(args) != 1 {
			return 0, ArityError{Form: "sphere", Expected: "1", Got: len(args)}
		}
		r, err := number(args[0])
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodeSphere, Radius: r}), nil

	case "box":
		if len(args) != 3 {
			return 0, ArityError{Form: "box", Expected: "3", Got: len(args)}
		}
		dims, err := vector3(args)
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodeBox, Half: dims.Scale(0.5)}), nil

	case "torus":
		if len(args) != 2 {
			return 0, ArityError{Form: "torus", Expected: "2", Got: len(args)}
		}
		hole, err := number(args[0])
		if err != nil {
			return 0, err
		}
		ring, err := number(args[1])
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodeTorus, Hole: hole, Ring: ring}), nil

	case "transform":
		if len(args) != 2 {
			return 0, ArityError{Form: "transform", Expected: "2", Got: len(args)}
		}
		t, err := b.transformExpr(args[0])
		if err != nil {
			return 0, err
		}
		child, err := b.resolveNode(args[1])
		if err != nil {
			return 0, err
		}
		tid := b.store.InternTransform(t)
		return b.store.InternNode(Node{Kind: NodeTransform, Transform: tid, Child: child}), nil

	case "paint":
		if len(args) != 2 {
			return 0, ArityError{Form: "paint", Expected: "2", Got: len(args)}
		}
		m, err := b.resolveMaterial(args[0])
		if err != nil {
			return 0, err
		}
		child, err := b.resolveNode(args[1])
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodePaint, Material: m, Child: child}), nil

	case "invert":
		if len(args) != 1 {
			return 0, ArityError{Form: "invert", Expected: "1", Got: len(args)}
		}
		child, err := b.resolveNode(args[0])
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodeInvert, Child: child}), nil

	case "group", "union", "intersect":
		if len(args) < 1 {
			return 0, ArityError{Form: head.Text, Expected: "at least 1", Got: len(args)}
		}
		children, err := b.resolveNodes(args)
		if err != nil {
			return 0, err
		}
		kind := map[string]NodeKind{"group": NodeGroup, "union": NodeUnion, "intersect": NodeIntersect}[head.Text]
		return b.store.InternNode(Node{Kind: kind, Children: children}), nil

	case "smooth_union":
		if len(args) < 2 {
			return 0, ArityError{Form: "smooth_union", Expected: "at least 2 (k, children...)", Got: len(args)}
		}
		k, err := number(args[0])
		if err != nil {
			return 0, err
		}
		children, err := b.resolveNodes(args[1:])
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodeSmoothUnion, K: k, Children: children}), nil

	case "subtract":
		if len(args) != 2 {
			return 0, ArityError{Form: "subtract", Expected: "2", Got: len(args)}
		}
		a, err := b.resolveNode(args[0])
		if err != nil {
			return 0, err
		}
		bb, err := b.resolveNode(args[1])
		if err != nil {
			return 0, err
		}
		return b.store.InternNode(Node{Kind: NodeSubtract, A: a, B: bb}), nil

	default:
		return 0, UndefinedName{Name: head.Text}
	}
}

func (b *Builder) resolveNodes(vs []sexpr.Value) ([]NodeID, error) {
	ids := make([]NodeID, 0, len(vs))
	for _, v := range vs {
		id, err := b.resolveNode(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// --- transform expressions ---

func (b *Builder) transformExpr(v sexpr.Value) (mat.Transform, error) {
	head, ok := v.Head()
	if !ok {
		return mat.Transform{}, TypeMismatch{Expected: "transform expression", Got: v.String(), Name: "transform"}
	}
	args := v.Items[1:]
	switch head.Text {
	case "translate":
		if len(args) != 3 {
			return mat.Transform{}, ArityError{Form: "translate", Expected: "3", Got: len(args)}
		}
		v3, err := vector3(args)
		if err != nil {
			return mat.Transform{}, err
		}
		return mat.NewTranslation(v3), nil

	case "rotate":
		if len(args) != 4 {
			return mat.Transform{}, ArityError{Form: "rotate", Expected: "4 (axis x y z, angle)", Got: len(args)}
		}
		axis, err := vector3(args[:3])
		if err != nil {
			return mat.Transform{}, err
		}
		angle, err := number(args[3])
		if err != nil {
			return mat.Transform{}, err
		}
		return mat.NewRotation(axis, angle)

	case "scale":
		switch len(args) {
		case 1:
			s, err := number(args[0])
			if err != nil {
				return mat.Transform{}, err
			}
			return mat.NewUniformScale(s)
		case 3:
			v3, err := vector3(args)
			if err != nil {
				return mat.Transform{}, err
			}
			t, err := mat.NewNonUniformScale(v3.X, v3.Y, v3.Z)
			if err != nil {
				return mat.Transform{}, err
			}
			if v3.X != v3.Y || v3.Y != v3.Z {
				mat.WarnIfNonUniform(t, b.logger)
			}
			return t, nil
		default:
			return mat.Transform{}, ArityError{Form: "scale", Expected: "1 or 3", Got: len(args)}
		}

	case "compose":
		if len(args) == 0 {
			return mat.Transform{}, ArityError{Form: "compose", Expected: "at least 1", Got: 0}
		}
		acc, err := b.transformExpr(args[0])
		if err != nil {
			return mat.Transform{}, err
		}
		for _, rest := range args[1:] {
			t, err := b.transformExpr(rest)
			if err != nil {
				return mat.Transform{}, err
			}
			acc = acc.Compose(t)
		}
		return acc, nil

	default:
		return mat.Transform{}, UndefinedName{Name: head.Text}
	}
}

// --- pattern expressions ---

func (b *Builder) resolvePattern(v sexpr.Value) (PatternID, error) {
	switch v.Kind {
	case sexpr.Ident:
		bnd, ok := b.names[v.Text]
		if !ok {
			return 0, UndefinedName{Name: v.Text}
		}
		if bnd.kind != bindPattern {
			return 0, TypeMismatch{Expected: "pattern", Got: bnd.kind.String(), Name: v.Text}
		}
		return bnd.pattern, nil
	case sexpr.HexColor, sexpr.String:
		c, err := colorValue(v)
		if err != nil {
			return 0, err
		}
		return b.store.InternPattern(Pattern{Kind: PatternSolid, Color: c}), nil
	default:
		return b.patternExpr(v)
	}
}

func (b *Builder) patternExpr(v sexpr.Value) (PatternID, error) {
	if v.Kind != sexpr.List {
		return b.resolvePattern(v)
	}
	head, ok := v.Head()
	if !ok {
		return 0, TypeMismatch{Expected: "pattern expression", Got: v.String(), Name: "pattern"}
	}
	args := v.Items[1:]
	switch head.Text {
	case "solid":
		if len(args) != 1 {
			return 0, ArityError{Form: "solid", Expected: "1", Got: len(args)}
		}
		c, err := colorValue(args[0])
		if err != nil {
			return 0, err
		}
		return b.store.InternPattern(Pattern{Kind: PatternSolid, Color: c}), nil

	case "gradient":
		if len(args) != 2 {
			return 0, ArityError{Form: "gradient", Expected: "2", Got: len(args)}
		}
		c0, err := colorValue(args[0])
		if err != nil {
			return 0, err
		}
		c1, err := colorValue(args[1])
		if err != nil {
			return 0, err
		}
		return b.store.InternPattern(Pattern{Kind: PatternGradient, C0: c0, C1: c1}), nil

	case "stripes", "checkers", "shells":
		if len(args) != 2 {
			return 0, ArityError{Form: head.Text, Expected: "2", Got: len(args)}
		}
		p0, err := b.resolvePattern(args[0])
		if err != nil {
			return 0, err
		}
		p1, err := b.resolvePattern(args[1])
		if err != nil {
			return 0, err
		}
		kind := map[string]PatternKind{"stripes": PatternStripes, "checkers": PatternCheckers, "shells": PatternShells}[head.Text]
		return b.store.InternPattern(Pattern{Kind: kind, P0: p0, P1: p1}), nil

	case "transform":
		if len(args) != 2 {
			return 0, ArityError{Form: "transform", Expected: "2", Got: len(args)}
		}
		t, err := b.transformExpr(args[0])
		if err != nil {
			return 0, err
		}
		child, err := b.resolvePattern(args[1])
		if err != nil {
			return 0, err
		}
		tid := b.store.InternTransform(t)
		return b.store.InternPattern(Pattern{Kind: PatternTransform, Transform: tid, Child: child}), nil

	default:
		return 0, UndefinedName{Name: head.Text}
	}
}

// --- material expressions ---

func (b *Builder) resolveMaterial(v sexpr.Value) (MaterialID, error) {
	if v.Kind == sexpr.Ident {
		bnd, ok := b.names[v.Text]
		if !ok {
			return 0, UndefinedName{Name: v.Text}
		}
		if bnd.kind != bindMaterial {
			return 0, TypeMismatch{Expected: "material", Got: bnd.kind.String(), Name: v.Text}
		}
		return bnd.material, nil
	}
	return b.materialExpr(v)
}

var phongOptions = map[string]bool{
	"pattern": true, "ambient": true, "diffuse": true,
	"specular": true, "shininess": true, "reflective": true,
}

func (b *Builder) materialExpr(v sexpr.Value) (MaterialID, error) {
	head, ok := v.Head()
	if !ok {
		return 0, TypeMismatch{Expected: "material expression", Got: v.String(), Name: "material"}
	}
	args := v.Items[1:]
	switch head.Text {
	case "phong":
		pat := b.store.InternPattern(Pattern{Kind: PatternSolid, Color: vec.Gray})
		m := DefaultPhong(pat)
		if len(args)%2 != 0 {
			return 0, ArityError{Form: "phong", Expected: "an even number of :keyword value pairs", Got: len(args)}
		}
		for i := 0; i < len(args); i += 2 {
			kw := args[i]
			if kw.Kind != sexpr.Keyword {
				return 0, TypeMismatch{Expected: "keyword", Got: kw.String(), Name: "phong"}
			}
			if !phongOptions[kw.Text] {
				return 0, UnknownOption{Form: "phong", Option: ":" + kw.Text}
			}
			val := args[i+1]
			switch kw.Text {
			case "pattern":
				p, err := b.resolvePattern(val)
				if err != nil {
					return 0, err
				}
				m.Pattern = p
			case "ambient":
				n, err := number(val)
				if err != nil {
					return 0, err
				}
				m.Ambient = n
			case "diffuse":
				n, err := number(val)
				if err != nil {
					return 0, err
				}
				m.Diffuse = n
			case "specular":
				n, err := number(val)
				if err != nil {
					return 0, err
				}
				m.Specular = n
			case "shininess":
				n, err := number(val)
				if err != nil {
					return 0, err
				}
				m.Shininess = n
			case "reflective":
				n, err := number(val)
				if err != nil {
					return 0, err
				}
				m.Reflective = n
			}
		}
		return b.store.InternMaterial(m), nil

	case "emissive":
		if len(args) != 1 {
			return 0, ArityError{Form: "emissive", Expected: "1", Got: len(args)}
		}
		p, err := b.resolvePattern(args[0])
		if err != nil {
			return 0, err
		}
		return b.store.InternMaterial(Material{Kind: MaterialEmissive, Pattern: p}), nil

	default:
		return 0, UndefinedName{Name: head.Text}
	}
}

// --- light expressions ---

func (b *Builder) lightExpr(v sexpr.Value) (LightID, error) {
	head, ok := v.Head()
	if !ok {
		return 0, TypeMismatch{Expected: "light expression", Got: v.String(), Name: "light"}
	}
	args := v.Items[1:]
	switch head.Text {
	case "diffuse":
		if len(args) != 1 {
			return 0, ArityError{Form: "diffuse", Expected: "1", Got: len(args)}
		}
		c, err := colorValue(args[0])
		if err != nil {
			return 0, err
		}
		return b.store.InternLight(Light{Kind: LightDiffuse, Color: c}), nil

	case "point":
		if len(args) != 4 {
			return 0, ArityError{Form: "point", Expected: "4 (color, x, y, z)", Got: len(args)}
		}
		c, err := colorValue(args[0])
		if err != nil {
			return 0, err
		}
		pos, err := vector3(args[1:])
		if err != nil {
			return 0, err
		}
		return b.store.InternLight(Light{Kind: LightPoint, Color: c, Position: vec.P3(pos.X, pos.Y, pos.Z)}), nil

	default:
		return 0, UndefinedName{Name: head.Text}
	}
}

// --- camera expressions ---

func (b *Builder) resolveCamera(v sexpr.Value) (CameraID, error) {
	if v.Kind != sexpr.Ident {
		return 0, TypeMismatch{Expected: "identifier naming a camera", Got: v.String(), Name: "camera"}
	}
	bnd, ok := b.names[v.Text]
	if !ok {
		return 0, UndefinedName{Name: v.Text}
	}
	if bnd.kind != bindCamera {
		return 0, TypeMismatch{Expected: "camera", Got: bnd.kind.String(), Name: v.Text}
	}
	return bnd.camera, nil
}

func (b *Builder) cameraExpr(v sexpr.Value) (CameraID, error) {
	head, ok := v.Head()
	if !ok || head.Text != "camera" {
		return 0, TypeMismatch{Expected: "(camera width height transform fov)", Got: v.String(), Name: "camera"}
	}
	args := v.Items[1:]
	if len(args) < 4 {
		return 0, ArityError{Form: "camera", Expected: "at least 4 (width, height, transform, fov)", Got: len(args)}
	}
	w, err := number(args[0])
	if err != nil {
		return 0, err
	}
	h, err := number(args[1])
	if err != nil {
		return 0, err
	}
	xform, err := b.transformExpr(args[2])
	if err != nil {
		return 0, err
	}
	fov, err := number(args[3])
	if err != nil {
		return 0, err
	}

	sampler := Sampler{NX: 1, NY: 1}
	if len(args) > 4 {
		shead, ok := args[4].Head()
		if !ok || shead.Text != "sampler" {
			return 0, UndefinedName{Name: shead.Text}
		}
		sargs := args[4].Items[1:]
		if len(sargs) != 2 {
			return 0, ArityError{Form: "sampler", Expected: "2", Got: len(sargs)}
		}
		nx, err := number(sargs[0])
		if err != nil {
			return 0, err
		}
		ny, err := number(sargs[1])
		if err != nil {
			return 0, err
		}
		sampler = Sampler{NX: int(nx), NY: int(ny)}
	}

	tid := b.store.InternTransform(xform)
	return b.store.InternCamera(Camera{
		Width: int(w), Height: int(h), WorldToCamera: tid, FovRadians: fov, Sampler: sampler,
	}), nil
}

// --- literal helpers ---

func number(v sexpr.Value) (float64, error) {
	if v.Kind != sexpr.Number {
		return 0, BadLiteral{Kind: "number", Text: v.String()}
	}
	return v.Number, nil
}

func vector3(args []sexpr.Value) (vec.Vec3, error) {
	if len(args) != 3 {
		return vec.Vec3{}, ArityError{Form: "vector", Expected: "3", Got: len(args)}
	}
	x, err := number(args[0])
	if err != nil {
		return vec.Vec3{}, err
	}
	y, err := number(args[1])
	if err != nil {
		return vec.Vec3{}, err
	}
	z, err := number(args[2])
	if err != nil {
		return vec.Vec3{}, err
	}
	return vec.V3(x, y, z), nil
}

func colorValue(v sexpr.Value) (vec.Color, error) {
	switch v.Kind {
	case sexpr.HexColor:
		return vec.ParseColor(v.Text)
	case sexpr.String:
		return vec.ParseColor(v.Text)
	default:
		return vec.Color{}, BadLiteral{Kind: "color", Text: v.String()}
	}
}

// BadLiteral re-exports vec.BadLiteral under the scene package for
// callers that only import scene, keeping the full set of build error
// kinds (UndefinedName, TypeMismatch, ArityError, UnknownOption,
// BadLiteral, NonInvertibleTransform, DegenerateVector) addressable from
// one place.
type BadLiteral = vec.BadLiteral
