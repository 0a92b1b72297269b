package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLightSpaceMatrix(t *testing.T) {
	lightPos := mgl32.Vec3{2, 6, 2}
	lightDir := mgl32.Vec3{-0.3, -1.0, -0.3}
	aspect := float32(1.0)

	projection := mgl32.Perspective(mgl32.DegToRad(48.0), aspect, 0.05, 80.0)
	view := mgl32.LookAtV(lightPos, lightPos.Add(lightDir.Normalize()), mgl32.Vec3{0, 1, 0})
	want := projection.Mul4(view)

	got := LightSpaceMatrix(lightPos, lightDir, aspect)
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("light-space matrix mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestLightSpaceMatrixNormalizesDirection(t *testing.T) {
	lightPos := mgl32.Vec3{0, 5, 0}
	aspect := float32(1.0)

	a := LightSpaceMatrix(lightPos, mgl32.Vec3{0, -1, 0}, aspect)
	b := LightSpaceMatrix(lightPos, mgl32.Vec3{0, -10, 0}, aspect)
	if !a.ApproxEqualThreshold(b, 1e-5) {
		t.Fatalf("scaled direction changed the matrix:\na %v\nb %v", a, b)
	}
}

func TestShadowPassNotReadyBeforeInit(t *testing.T) {
	sp := NewShadowPass()
	if sp.Ready() {
		t.Fatal("new shadow pass reports ready")
	}
	if sp.DepthTexture() != 0 {
		t.Fatalf("new shadow pass has depth texture %d", sp.DepthTexture())
	}

	// Render before Init must be a no-op instead of touching GL state.
	sp.Render(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, sceneObjects(), NewShapeMeshes())
	if zero := (mgl32.Mat4{}); sp.LightSpace() != zero {
		t.Fatalf("render before init set a light-space matrix: %v", sp.LightSpace())
	}
}
