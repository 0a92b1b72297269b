package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material holds the Phong shading values looked up by tag at draw time.
// Materials are immutable once defined.
type Material struct {
	Tag           string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
}

// MaterialLibrary is an append-only list of materials. Lookups are linear
// and return the first definition for a tag, so redefining a tag has no
// effect on draws.
type MaterialLibrary struct {
	materials []Material
}

func NewMaterialLibrary() *MaterialLibrary {
	return &MaterialLibrary{}
}

// Define appends a material. No duplicate check is performed.
func (ml *MaterialLibrary) Define(m Material) {
	ml.materials = append(ml.materials, m)
}

// Find returns the first material defined under tag.
func (ml *MaterialLibrary) Find(tag string) (Material, bool) {
	for _, m := range ml.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Count returns the number of defined materials.
func (ml *MaterialLibrary) Count() int {
	return len(ml.materials)
}
