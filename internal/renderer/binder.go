package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawState is the complete shader state one mesh draw depends on. Shader
// uniform state is global and last-write-wins, so the render pass builds a
// full DrawState for every object and applies it in one step instead of
// relying on leftovers from the previous draw.
type DrawState struct {
	Transform   Transform
	Color       mgl32.Vec4 // used when TextureTag is empty
	TextureTag  string     // non-empty enables texture sampling
	UVScale     mgl32.Vec2
	MaterialTag string
	Lighting    bool
	Liquid      bool // enables the ripple vertex displacement path
}

// StateBinder translates drawing intent into shader-program uniform state.
// It is a stateless façade: nothing is remembered between calls.
type StateBinder struct {
	shader    *ShaderManager
	textures  *TextureRegistry
	materials *MaterialLibrary
}

func NewStateBinder(shader *ShaderManager, textures *TextureRegistry, materials *MaterialLibrary) *StateBinder {
	return &StateBinder{
		shader:    shader,
		textures:  textures,
		materials: materials,
	}
}

// Apply writes the full draw state for the next mesh submission.
func (b *StateBinder) Apply(st DrawState) {
	b.SetTransform(st.Transform)
	if st.MaterialTag != "" {
		b.SetMaterial(st.MaterialTag)
	}
	if st.TextureTag != "" {
		b.SetTexture(st.TextureTag)
	} else {
		b.SetFlatColor(st.Color.X(), st.Color.Y(), st.Color.Z(), st.Color.W())
	}
	b.SetUVScale(st.UVScale.X(), st.UVScale.Y())
	b.shader.SetBool("bUseLighting", st.Lighting)
	b.shader.SetBool("bIsLiquidSurface", st.Liquid)
}

// SetTransform writes the composed model matrix.
func (b *StateBinder) SetTransform(t Transform) {
	b.shader.SetMat4("model", t.Matrix())
}

// SetFlatColor disables texture sampling for the next draw and writes a
// solid RGBA color.
func (b *StateBinder) SetFlatColor(r, g, bl, a float32) {
	b.shader.SetBool("bUseTexture", false)
	b.shader.SetVec4("objectColor", mgl32.Vec4{r, g, bl, a})
}

// SetTexture enables texture sampling for the next draw. An unknown tag
// falls back to unit 0 with sampling still enabled.
func (b *StateBinder) SetTexture(tag string) {
	b.shader.SetBool("bUseTexture", true)

	slot := b.textures.SlotOf(tag)
	if slot < 0 {
		slot = 0
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	if id := b.textures.HandleOf(tag); id > 0 {
		gl.BindTexture(gl.TEXTURE_2D, id)
	}
	b.shader.SetSampler("objectTexture", int32(slot))
}

// SetUVScale writes the texture-coordinate tiling factors.
func (b *StateBinder) SetUVScale(u, v float32) {
	b.shader.SetVec2("UVscale", mgl32.Vec2{u, v})
}

// SetMaterial looks up a material by tag and writes its shading values.
// An unknown tag leaves the previously bound material untouched.
func (b *StateBinder) SetMaterial(tag string) {
	material, found := b.materials.Find(tag)
	if !found {
		return
	}
	b.shader.SetVec3("material.diffuseColor", material.DiffuseColor)
	b.shader.SetVec3("material.specularColor", material.SpecularColor)
	b.shader.SetFloat("material.shininess", material.Shininess)
}
