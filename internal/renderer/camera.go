// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a yaw/pitch free camera. Movement and input handling live in
// the viewer; the camera only owns its vectors and view matrix.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3
	Pitch    float32
	Yaw      float32

	MovementSpeed float32 // world units per second, adjusted by scroll
	Sensitivity   float32 // mouse degrees per pixel
	Zoom          float32 // vertical field of view in degrees
	Near          float32
	Far           float32
}

// NewSceneCamera returns the camera posed for the still-life scene:
// above and in front of the table, looking down at the mug.
func NewSceneCamera() *Camera {
	camera := &Camera{
		Position:      mgl32.Vec3{0.0, 5.0, 12.0},
		WorldUp:       mgl32.Vec3{0, 1, 0},
		MovementSpeed: 20.0,
		Sensitivity:   0.1,
		Zoom:          80.0,
		Near:          0.1,
		Far:           100.0,
	}
	camera.SetFront(mgl32.Vec3{0.0, -0.5, -2.0})
	return camera
}

// SetFront points the camera along dir, deriving yaw and pitch.
func (c *Camera) SetFront(dir mgl32.Vec3) {
	d := dir.Normalize()
	c.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(d.Y()))))
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(d.Z()), float64(d.X()))))
	c.updateCameraVectors()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessMouseMovement turns pixel offsets into yaw/pitch changes. Pitch
// is clamped to keep the camera from flipping.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset
	c.Pitch += yoffset

	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0)
	}
	c.updateCameraVectors()
}

// AdjustSpeed changes the movement speed by delta, clamped to [1, 100].
func (c *Camera) AdjustSpeed(delta float32) {
	c.MovementSpeed = mgl32.Clamp(c.MovementSpeed+delta, 1.0, 100.0)
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
