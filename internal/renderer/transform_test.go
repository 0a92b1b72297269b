package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformMatrixIdentity(t *testing.T) {
	tr := Transform{Scale: mgl32.Vec3{1, 1, 1}}
	got := tr.Matrix()
	if !got.ApproxEqualThreshold(mgl32.Ident4(), 1e-6) {
		t.Fatalf("identity transform produced %v", got)
	}
}

func TestTransformMatrixComposition(t *testing.T) {
	tr := Transform{
		Scale:       mgl32.Vec3{2, 3, 4},
		RotationDeg: mgl32.Vec3{30, 45, 60},
		Position:    mgl32.Vec3{1, -2, 5},
	}

	want := mgl32.Translate3D(1, -2, 5).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.Scale3D(2, 3, 4))

	got := tr.Matrix()
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("matrix mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestTransformRotationOrder(t *testing.T) {
	// Rotating +X by 90 degrees around Y must land on -Z before the Z
	// rotation is applied, so X then Y then Z order is observable.
	tr := Transform{
		Scale:       mgl32.Vec3{1, 1, 1},
		RotationDeg: mgl32.Vec3{0, 90, 90},
	}

	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, 0, -1, 1}
	if !p.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("rotated point = %v, want %v", p, want)
	}
}

func TestTransformTranslationLast(t *testing.T) {
	tr := Transform{
		Scale:    mgl32.Vec3{2, 2, 2},
		Position: mgl32.Vec3{10, 0, 0},
	}

	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{12, 0, 0, 1}
	if !p.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("transformed point = %v, want %v", p, want)
	}
}
