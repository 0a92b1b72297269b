package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStepRippleClamps(t *testing.T) {
	if got := stepRipple(0.10, rippleStep); got < 0.109 || got > 0.111 {
		t.Fatalf("step up = %v, want 0.11", got)
	}
	if got := stepRipple(rippleMax, rippleStep); got != rippleMax {
		t.Fatalf("step above max = %v, want %v", got, rippleMax)
	}
	if got := stepRipple(rippleMin, -rippleStep); got != rippleMin {
		t.Fatalf("step below min = %v, want %v", got, rippleMin)
	}

	// Repeated steps never escape the range.
	amp := float32(0.10)
	for i := 0; i < 100; i++ {
		amp = stepRipple(amp, rippleStep)
	}
	if amp != rippleMax {
		t.Fatalf("amplitude after repeated steps = %v, want %v", amp, rippleMax)
	}
}

func TestProjectionMatrixModes(t *testing.T) {
	aspect := float32(WindowWidth) / float32(WindowHeight)

	persp := projectionMatrix(true, 80, aspect, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(80), aspect, 0.1, 100)
	if !persp.ApproxEqualThreshold(want, 1e-6) {
		t.Fatal("perspective projection mismatch")
	}

	ortho := projectionMatrix(false, 80, aspect, 0.1, 100)
	wantOrtho := mgl32.Ortho(-orthoSize, orthoSize, -orthoSize, orthoSize, 0.1, 100)
	if !ortho.ApproxEqualThreshold(wantOrtho, 1e-6) {
		t.Fatal("orthographic projection mismatch")
	}

	// The field of view only affects the perspective mode.
	orthoNarrow := projectionMatrix(false, 20, aspect, 0.1, 100)
	if !ortho.ApproxEqualThreshold(orthoNarrow, 1e-6) {
		t.Fatal("orthographic projection depends on fov")
	}
}

func TestStepVelocityAccelerates(t *testing.T) {
	target := mgl32.Vec3{1, 0, 0}
	v := stepVelocity(mgl32.Vec3{}, target, 20, 0.016)

	if v.X() <= 0 {
		t.Fatalf("velocity did not move toward target: %v", v)
	}
	if v.X() > 20 {
		t.Fatalf("velocity overshot the speed limit: %v", v)
	}

	// Repeated steps converge on the full speed.
	for i := 0; i < 1000; i++ {
		v = stepVelocity(v, target, 20, 0.016)
	}
	if v.X() < 19.9 || v.X() > 20.1 {
		t.Fatalf("velocity did not converge on speed 20: %v", v)
	}
}

func TestStepVelocityDecelerates(t *testing.T) {
	v := mgl32.Vec3{20, 0, 0}
	next := stepVelocity(v, mgl32.Vec3{}, 20, 0.016)
	if next.X() >= v.X() {
		t.Fatalf("velocity did not decay: %v -> %v", v, next)
	}

	for i := 0; i < 1000; i++ {
		v = stepVelocity(v, mgl32.Vec3{}, 20, 0.016)
	}
	if v.Len() > 0.01 {
		t.Fatalf("velocity did not decay to rest: %v", v)
	}
}

func TestStepVelocityLargeDeltaIsStable(t *testing.T) {
	// A long frame must snap to the target instead of overshooting.
	v := stepVelocity(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 20, 1.0)
	if v.X() != 20 {
		t.Fatalf("velocity after long frame = %v, want exactly the target speed", v)
	}
}
