package mat

import (
	"testing"

	"github.com/galvanized/raymarch/math/vec"
)

func TestIdentityMulPoint(t *testing.T) {
	p := vec.P3(1, 2, 3)
	got := Identity().MulPoint(p)
	if !got.Eq(p) {
		t.Errorf("identity*p = %v, want %v", got, p)
	}
}

func TestInverseUndoesTranslation(t *testing.T) {
	m := Translation(vec.V3(3, -2, 5))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	p := vec.P3(1, 1, 1)
	round := inv.MulPoint(m.MulPoint(p))
	if !round.Aeq(p) {
		t.Errorf("round trip = %v, want %v", round, p)
	}
}

func TestInverseSingularFails(t *testing.T) {
	var zero Mat4 // all-zero matrix, not invertible
	if _, err := zero.Inverse(); err == nil {
		t.Error("expected NonInvertibleTransform for a singular matrix")
	}
}

func TestAxisAngleRotatesRightAngle(t *testing.T) {
	m, err := AxisAngle(vec.V3(0, 0, 1), 1.5707963267948966) // 90 degrees about Z
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got := m.MulVec(vec.V3(1, 0, 0))
	if !got.Aeq(vec.V3(0, 1, 0)) {
		t.Errorf("rotated x-axis = %v, want (0,1,0)", got)
	}
}

func TestTransformComposeAndInverse(t *testing.T) {
	tr := NewTranslation(vec.V3(1, 0, 0))
	rot, err := NewRotation(vec.V3(0, 0, 1), 1.5707963267948966)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	combined := tr.Compose(rot)

	p := vec.P3(0, 0, 0)
	world := combined.ApplyForward(p)
	back := combined.Apply(world)
	if !back.Aeq(p) {
		t.Errorf("round trip through inverse = %v, want %v", back, p)
	}
}

func TestUniformScaleFactor(t *testing.T) {
	s, err := NewUniformScale(2)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	factor, ok := s.UniformScaleFactor()
	if !ok || factor != 2 {
		t.Errorf("scale factor = (%f, %v), want (2, true)", factor, ok)
	}
}

func TestNonUniformScaleFlagged(t *testing.T) {
	s, err := NewNonUniformScale(1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !s.NonUniform() {
		t.Error("expected NonUniform() to be true for anisotropic scale")
	}
	if _, ok := s.UniformScaleFactor(); ok {
		t.Error("expected UniformScaleFactor to report false for non-uniform scale")
	}
}

func TestZeroScaleIsNonInvertible(t *testing.T) {
	if _, err := NewUniformScale(0); err == nil {
		t.Error("expected NonInvertibleTransform for a zero scale factor")
	}
}
