package renderer

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const cylinderSegments = 36

// indexRange addresses a contiguous slice of a mesh's index buffer.
type indexRange struct {
	start int32 // offset in indices, not bytes
	count int32
}

// meshData is CPU-side geometry: interleaved position(3), texcoord(2),
// normal(3) vertices plus an index buffer partitioned into the ranges a
// draw variant can select.
type meshData struct {
	vertices []float32
	indices  []uint32
	top      indexRange
	bottom   indexRange
	sides    indexRange
}

type meshBuffers struct {
	vao  uint32
	vbo  uint32
	ebo  uint32
	data meshData
}

// ShapeMeshes owns the vertex buffers for the basic shapes the scene is
// assembled from. Each mesh is loaded once and drawn any number of times.
type ShapeMeshes struct {
	plane           meshBuffers
	cylinder        meshBuffers
	taperedCylinder meshBuffers
}

func NewShapeMeshes() *ShapeMeshes {
	return &ShapeMeshes{}
}

// genPlane builds a 2x2 horizontal quad centered at the origin with +Y
// normals, uv spanning [0,1].
func genPlane() meshData {
	vertices := []float32{
		// x, y, z, u, v, nx, ny, nz
		-1, 0, -1, 0, 1, 0, 1, 0,
		1, 0, -1, 1, 1, 0, 1, 0,
		1, 0, 1, 1, 0, 0, 1, 0,
		-1, 0, 1, 0, 0, 0, 1, 0,
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return meshData{
		vertices: vertices,
		indices:  indices,
		top:      indexRange{start: 0, count: 6},
	}
}

// genCylinder builds a cylinder with its base on the XZ plane, extending
// to y=1. The index buffer is partitioned into top cap, bottom cap and
// side ranges so any combination can be drawn. topRadius < bottomRadius
// gives the tapered variant.
func genCylinder(bottomRadius, topRadius float32, segments int) meshData {
	var vertices []float32
	var indices []uint32

	addVertex := func(x, y, z, u, v, nx, ny, nz float32) uint32 {
		idx := uint32(len(vertices) / 8)
		vertices = append(vertices, x, y, z, u, v, nx, ny, nz)
		return idx
	}

	// Side wall. The ring is duplicated at i == segments so uvs can wrap
	// without a seam.
	slope := float64(bottomRadius - topRadius) // rise of the normal per unit height
	sideFirst := uint32(0)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sin(angle), math.Cos(angle)

		nx := float32(cos)
		nz := float32(sin)
		ny := float32(slope)
		nlen := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		nx, ny, nz = nx/nlen, ny/nlen, nz/nlen

		u := float32(i) / float32(segments)
		addVertex(bottomRadius*float32(cos), 0, bottomRadius*float32(sin), u, 0, nx, ny, nz)
		addVertex(topRadius*float32(cos), 1, topRadius*float32(sin), u, 1, nx, ny, nz)
	}
	sideStart := int32(len(indices))
	for i := 0; i < segments; i++ {
		b0 := sideFirst + uint32(i*2)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		indices = append(indices, b0, t0, b1, b1, t0, t1)
	}
	sideCount := int32(len(indices)) - sideStart

	// Top cap fan.
	topCenter := addVertex(0, 1, 0, 0.5, 0.5, 0, 1, 0)
	topFirst := topCenter + 1
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sin(angle), math.Cos(angle)
		addVertex(topRadius*float32(cos), 1, topRadius*float32(sin),
			0.5+0.5*float32(cos), 0.5+0.5*float32(sin), 0, 1, 0)
	}
	topStart := int32(len(indices))
	for i := 0; i < segments; i++ {
		indices = append(indices, topCenter, topFirst+uint32(i+1), topFirst+uint32(i))
	}
	topCount := int32(len(indices)) - topStart

	// Bottom cap fan, wound the other way so it faces -Y.
	bottomCenter := addVertex(0, 0, 0, 0.5, 0.5, 0, -1, 0)
	bottomFirst := bottomCenter + 1
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sin(angle), math.Cos(angle)
		addVertex(bottomRadius*float32(cos), 0, bottomRadius*float32(sin),
			0.5+0.5*float32(cos), 0.5+0.5*float32(sin), 0, -1, 0)
	}
	bottomStart := int32(len(indices))
	for i := 0; i < segments; i++ {
		indices = append(indices, bottomCenter, bottomFirst+uint32(i), bottomFirst+uint32(i+1))
	}
	bottomCount := int32(len(indices)) - bottomStart

	return meshData{
		vertices: vertices,
		indices:  indices,
		top:      indexRange{start: topStart, count: topCount},
		bottom:   indexRange{start: bottomStart, count: bottomCount},
		sides:    indexRange{start: sideStart, count: sideCount},
	}
}

// upload pushes the mesh to the GPU with the standard attribute layout:
// location 0 position, 1 texcoord, 2 normal.
func (mb *meshBuffers) upload(data meshData) {
	mb.data = data

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.vertices)*4, gl.Ptr(data.vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.indices)*4, gl.Ptr(data.indices), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
}

func (mb *meshBuffers) drawRange(r indexRange) {
	if r.count == 0 {
		return
	}
	gl.DrawElements(gl.TRIANGLES, r.count, gl.UNSIGNED_INT, gl.PtrOffset(int(r.start)*4))
}

// LoadPlaneMesh uploads the plane geometry. Idempotent.
func (sm *ShapeMeshes) LoadPlaneMesh() {
	if sm.plane.vao != 0 {
		return
	}
	sm.plane.upload(genPlane())
}

// LoadCylinderMesh uploads the straight cylinder geometry. Idempotent.
func (sm *ShapeMeshes) LoadCylinderMesh() {
	if sm.cylinder.vao != 0 {
		return
	}
	sm.cylinder.upload(genCylinder(1.0, 1.0, cylinderSegments))
}

// LoadTaperedCylinderMesh uploads the tapered cylinder geometry (narrower
// at the top). Idempotent.
func (sm *ShapeMeshes) LoadTaperedCylinderMesh() {
	if sm.taperedCylinder.vao != 0 {
		return
	}
	sm.taperedCylinder.upload(genCylinder(1.0, 0.5, cylinderSegments))
}

// DrawPlane submits the plane under the currently bound shader state.
func (sm *ShapeMeshes) DrawPlane() {
	gl.BindVertexArray(sm.plane.vao)
	sm.plane.drawRange(sm.plane.data.top)
	gl.BindVertexArray(0)
}

// DrawCylinder submits the selected cylinder parts.
func (sm *ShapeMeshes) DrawCylinder(top, bottom, sides bool) {
	drawCylinderParts(&sm.cylinder, top, bottom, sides)
}

// DrawTaperedCylinder submits the selected tapered cylinder parts.
func (sm *ShapeMeshes) DrawTaperedCylinder(top, bottom, sides bool) {
	drawCylinderParts(&sm.taperedCylinder, top, bottom, sides)
}

// DrawVariant submits the shape named by a scene-table mesh variant.
func (sm *ShapeMeshes) DrawVariant(v MeshVariant) {
	switch v.Kind {
	case MeshPlane:
		sm.DrawPlane()
	case MeshCylinder:
		sm.DrawCylinder(v.Top, v.Bottom, v.Sides)
	case MeshTaperedCylinder:
		sm.DrawTaperedCylinder(v.Top, v.Bottom, v.Sides)
	}
}

func drawCylinderParts(mb *meshBuffers, top, bottom, sides bool) {
	gl.BindVertexArray(mb.vao)
	if top {
		mb.drawRange(mb.data.top)
	}
	if bottom {
		mb.drawRange(mb.data.bottom)
	}
	if sides {
		mb.drawRange(mb.data.sides)
	}
	gl.BindVertexArray(0)
}

// Release frees all GPU buffers. Idempotent.
func (sm *ShapeMeshes) Release() {
	for _, mb := range []*meshBuffers{&sm.plane, &sm.cylinder, &sm.taperedCylinder} {
		if mb.vao != 0 {
			gl.DeleteVertexArrays(1, &mb.vao)
			gl.DeleteBuffers(1, &mb.vbo)
			gl.DeleteBuffers(1, &mb.ebo)
			mb.vao, mb.vbo, mb.ebo = 0, 0, 0
		}
	}
}
