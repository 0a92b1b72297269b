package renderer

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/mbly-snhu-portfolio/CS-330/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Shader source files. The depth pass reuses the scene vertex shader with
// a minimal fragment stage that writes only depth.
const (
	VertexShaderPath        = "shaders/vertexShader.glsl"
	FragmentShaderPath      = "shaders/fragmentShader.glsl"
	ShadowDepthFragmentPath = "shaders/shadowDepthFragment.glsl"
)

// The shadow map and light-space matrix are published to the color shader
// on a fixed high texture unit, away from the registry's slots.
const shadowMapUnit = 7

// Ripple behavior of the liquid surface: oscillation speed and radial
// frequency, plus the slowdown applied to wall-clock time for a subtle
// drift-free look.
var rippleParams = mgl32.Vec2{3.0, 22.0}

const rippleTimeScale = 0.5

// SceneManager prepares and renders the fixed still-life scene: textures,
// materials, lighting rig, shadow pass and the per-frame draw loop.
type SceneManager struct {
	shader    *ShaderManager
	textures  *TextureRegistry
	materials *MaterialLibrary
	binder    *StateBinder
	meshes    *ShapeMeshes
	shadow    *ShadowPass
	objects   []SceneObject
}

func NewSceneManager(shader *ShaderManager) *SceneManager {
	textures := NewTextureRegistry()
	materials := NewMaterialLibrary()
	return &SceneManager{
		shader:    shader,
		textures:  textures,
		materials: materials,
		binder:    NewStateBinder(shader, textures, materials),
		meshes:    NewShapeMeshes(),
		shadow:    NewShadowPass(),
		objects:   sceneObjects(),
	}
}

// PrepareScene loads textures, materials, meshes, the lighting rig and the
// shadow resources. Must be called once, with the scene shader active,
// before the first frame.
func (s *SceneManager) PrepareScene() error {
	s.registerSceneTexture("textures/stone.png", "stone", NoiseStone)
	s.registerSceneTexture("textures/grass.png", "grass", NoiseGrass)
	s.textures.BindAll(s.shader)

	for _, m := range sceneMaterials() {
		s.materials.Define(m)
	}

	s.applyLightingRig()

	s.meshes.LoadPlaneMesh()
	s.meshes.LoadCylinderMesh()
	s.meshes.LoadTaperedCylinderMesh()

	if err := s.shadow.Init(VertexShaderPath, ShadowDepthFragmentPath); err != nil {
		// Not fatal: the scene renders unshadowed.
		logger.Log.Error("Shadow pass unavailable", zap.Error(err))
	}

	return nil
}

// registerSceneTexture loads a texture file, falling back to a generated
// stand-in when the asset is missing or unreadable.
func (s *SceneManager) registerSceneTexture(path, tag string, fallback NoiseStyle) {
	if err := s.textures.Register(path, tag); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Log.Warn("Texture file missing, generating fallback",
				zap.String("path", path), zap.String("tag", tag))
		}
		if genErr := s.textures.RegisterGenerated(tag, fallback); genErr != nil {
			logger.Log.Error("Could not register fallback texture",
				zap.String("tag", tag), zap.Error(genErr))
		}
	}
}

// applyLightingRig writes the fixed lighting setup: a soft directional
// key, one fill point light and the camera-tied spotlight whose position
// and direction are refreshed every frame by the viewer.
func (s *SceneManager) applyLightingRig() {
	s.shader.SetBool("bUseLighting", true)

	s.shader.SetVec3("material.diffuseColor", mgl32.Vec3{1.0, 1.0, 1.0})
	s.shader.SetVec3("material.specularColor", mgl32.Vec3{0.5, 0.5, 0.5})
	s.shader.SetFloat("material.shininess", 32.0)

	s.shader.SetVec3("directionalLight.direction", mgl32.Vec3{-0.2, -1.0, -0.3})
	s.shader.SetVec3("directionalLight.ambient", mgl32.Vec3{0.15, 0.15, 0.15})
	s.shader.SetVec3("directionalLight.diffuse", mgl32.Vec3{0.3, 0.3, 0.3})
	s.shader.SetVec3("directionalLight.specular", mgl32.Vec3{1.0, 1.0, 1.0})
	s.shader.SetBool("directionalLight.bActive", true)

	s.shader.SetVec3("pointLights[0].position", mgl32.Vec3{2.0, 6.0, 2.0})
	s.shader.SetVec3("pointLights[0].ambient", mgl32.Vec3{0.08, 0.08, 0.08})
	s.shader.SetVec3("pointLights[0].diffuse", mgl32.Vec3{0.35, 0.35, 0.35})
	s.shader.SetVec3("pointLights[0].specular", mgl32.Vec3{0.35, 0.35, 0.35})
	s.shader.SetBool("pointLights[0].bActive", true)
	for i := 1; i < 5; i++ {
		s.shader.SetBool(fmt.Sprintf("pointLights[%d].bActive", i), false)
	}

	s.shader.SetFloat("spotLight.cutOff", cosDeg(18.0))
	s.shader.SetFloat("spotLight.outerCutOff", cosDeg(26.0))
	s.shader.SetFloat("spotLight.constant", 1.0)
	s.shader.SetFloat("spotLight.linear", 0.045)
	s.shader.SetFloat("spotLight.quadratic", 0.008)
	s.shader.SetVec3("spotLight.ambient", mgl32.Vec3{0.02, 0.02, 0.02})
	s.shader.SetVec3("spotLight.diffuse", mgl32.Vec3{1.1, 1.1, 1.1})
	s.shader.SetVec3("spotLight.specular", mgl32.Vec3{1.1, 1.1, 1.1})
	s.shader.SetBool("spotLight.bActive", true)
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}

// RenderShadowMap runs the depth-only pass from the spotlight's viewpoint.
// Call before RenderScene each frame; the color pass consumes the depth
// map and light-space matrix it produces.
func (s *SceneManager) RenderShadowMap(lightPos, lightDir mgl32.Vec3) {
	s.shadow.Render(lightPos, lightDir, s.objects, s.meshes)
}

// bindShadowUniforms points the color shader at the current shadow map and
// light-space matrix.
func (s *SceneManager) bindShadowUniforms() {
	if !s.shadow.Ready() {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + shadowMapUnit)
	gl.BindTexture(gl.TEXTURE_2D, s.shadow.DepthTexture())
	s.shader.SetSampler("spotShadowMap", shadowMapUnit)
	s.shader.SetMat4("spotLightSpaceMatrix", s.shadow.LightSpace())
}

// RenderScene draws the scene table in order under the active color
// shader. timeSeconds drives the liquid ripple animation and
// rippleAmplitude is the current user-controlled ripple height.
func (s *SceneManager) RenderScene(timeSeconds, rippleAmplitude float32) {
	s.bindShadowUniforms()

	gl.DepthMask(true)

	for _, obj := range s.objects {
		s.binder.Apply(obj.drawState())

		if obj.Liquid {
			s.shader.SetFloat("timeSeconds", timeSeconds*rippleTimeScale)
			s.shader.SetVec2("rippleParams", rippleParams)
			s.shader.SetFloat("rippleAmplitude", rippleAmplitude)
		}

		if obj.Translucent {
			gl.DepthMask(false)
		}

		s.meshes.DrawVariant(obj.Mesh)

		if obj.Translucent {
			gl.DepthMask(true)
		}
		if obj.Liquid {
			// Keep later geometry unaffected by the ripple path.
			s.shader.SetBool("bIsLiquidSurface", false)
		}
	}

	s.shader.SetBool("bUseLighting", true)
	s.bindShadowUniforms()
}

// Objects exposes the scene table (read-only by convention).
func (s *SceneManager) Objects() []SceneObject {
	return s.objects
}

// Release frees every GPU resource the scene owns.
func (s *SceneManager) Release() {
	var u Unwind
	u.Add(s.textures.ReleaseAll)
	u.Add(s.meshes.Release)
	u.Add(s.shadow.Release)
	u.Unwind()
}
