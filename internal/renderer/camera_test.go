package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSceneCameraPose(t *testing.T) {
	c := NewSceneCamera()

	if c.Position != (mgl32.Vec3{0, 5, 12}) {
		t.Fatalf("position = %v", c.Position)
	}
	if c.Zoom != 80 {
		t.Fatalf("zoom = %v, want 80", c.Zoom)
	}

	want := mgl32.Vec3{0, -0.5, -2}.Normalize()
	if !c.Front.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("front = %v, want %v", c.Front, want)
	}
}

func TestSetFrontRecoversDirection(t *testing.T) {
	c := NewSceneCamera()
	dirs := []mgl32.Vec3{
		{0, 0, -1},
		{1, 0, 0},
		{0.5, -0.5, 0.5},
		{-0.3, 0.8, -0.2},
	}

	for _, dir := range dirs {
		c.SetFront(dir)
		want := dir.Normalize()
		if !c.Front.ApproxEqualThreshold(want, 1e-5) {
			t.Fatalf("SetFront(%v): front = %v, want %v", dir, c.Front, want)
		}
	}
}

func TestCameraVectorsOrthonormal(t *testing.T) {
	c := NewSceneCamera()
	c.ProcessMouseMovement(123, -45, true)

	if d := c.Front.Dot(c.Right); d > 1e-5 || d < -1e-5 {
		t.Fatalf("front/right not orthogonal: dot = %v", d)
	}
	if d := c.Front.Dot(c.Up); d > 1e-5 || d < -1e-5 {
		t.Fatalf("front/up not orthogonal: dot = %v", d)
	}
	for _, v := range []mgl32.Vec3{c.Front, c.Right, c.Up} {
		if l := v.Len(); l < 0.9999 || l > 1.0001 {
			t.Fatalf("vector %v not unit length: %v", v, l)
		}
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewSceneCamera()
	c.ProcessMouseMovement(0, 100000, true)
	if c.Pitch != 89 {
		t.Fatalf("pitch = %v, want 89", c.Pitch)
	}
	c.ProcessMouseMovement(0, -200000, true)
	if c.Pitch != -89 {
		t.Fatalf("pitch = %v, want -89", c.Pitch)
	}
}

func TestAdjustSpeedClamp(t *testing.T) {
	c := NewSceneCamera()
	c.AdjustSpeed(1000)
	if c.MovementSpeed != 100 {
		t.Fatalf("speed = %v, want 100", c.MovementSpeed)
	}
	c.AdjustSpeed(-1000)
	if c.MovementSpeed != 1 {
		t.Fatalf("speed = %v, want 1", c.MovementSpeed)
	}
}

func TestGetViewMatrix(t *testing.T) {
	c := NewSceneCamera()
	want := mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
	if !c.GetViewMatrix().ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("view matrix mismatch")
	}
}
