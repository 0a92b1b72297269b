package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform describes the placement of one scene object. Rotations are
// Euler angles in degrees, applied in X, then Y, then Z order.
type Transform struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3
}

// Matrix composes the model matrix as translation * Rz * Ry * Rx * scale,
// so vertices are scaled first, then rotated X->Y->Z, then translated.
func (t Transform) Matrix() mgl32.Mat4 {
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotationDeg.X()))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotationDeg.Y()))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotationDeg.Z()))
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())

	return translation.Mul4(rotZ).Mul4(rotY).Mul4(rotX).Mul4(scale)
}
