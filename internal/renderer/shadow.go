package renderer

import (
	"fmt"

	"github.com/mbly-snhu-portfolio/CS-330/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Shadow map constants. The FOV is slightly wider than the spotlight's
// outer cone so shadows are not clipped at the cone edge.
const (
	ShadowMapSize = 2048
	shadowFovDeg  = 48.0
	shadowNear    = 0.05
	shadowFar     = 80.0
)

// ShadowPass renders the scene's depth from the spotlight's point of view
// into an offscreen depth buffer, and publishes the light-space matrix the
// color pass samples it with.
//
// The pass is either uninitialized or ready: Init performs the one-time
// resource allocation, and Render is a no-op until it has succeeded, in
// which case the color pass simply proceeds without shadowing.
type ShadowPass struct {
	fbo          uint32
	depthTexture uint32
	width        int32
	height       int32
	depthShader  *ShaderManager
	ready        bool
	lightSpace   mgl32.Mat4
}

func NewShadowPass() *ShadowPass {
	return &ShadowPass{
		width:  ShadowMapSize,
		height: ShadowMapSize,
	}
}

// Init allocates the depth texture and framebuffer and compiles the
// depth-only program. Idempotent: a ready pass is left untouched.
func (sp *ShadowPass) Init(depthVertexPath, depthFragmentPath string) error {
	if sp.ready {
		return nil
	}

	gl.GenTextures(1, &sp.depthTexture)
	gl.BindTexture(gl.TEXTURE_2D, sp.depthTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24,
		sp.width, sp.height, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	// Depth reads outside the map resolve to "fully lit".
	borderColor := []float32{1.0, 1.0, 1.0, 1.0}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])

	gl.GenFramebuffers(1, &sp.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sp.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sp.depthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		sp.releaseBuffers()
		return fmt.Errorf("shadow framebuffer incomplete: status=0x%X", status)
	}

	sp.depthShader = NewShaderManager()
	if err := sp.depthShader.LoadShaders(depthVertexPath, depthFragmentPath); err != nil {
		sp.releaseBuffers()
		sp.depthShader = nil
		return fmt.Errorf("depth shader: %w", err)
	}

	sp.ready = true
	logger.Log.Info("Shadow map initialized",
		zap.Int32("width", sp.width),
		zap.Int32("height", sp.height))
	return nil
}

// Ready reports whether the shadow resources were allocated.
func (sp *ShadowPass) Ready() bool {
	return sp.ready
}

// DepthTexture returns the shadow map texture handle, 0 until ready.
func (sp *ShadowPass) DepthTexture() uint32 {
	return sp.depthTexture
}

// LightSpace returns the light-space matrix produced by the most recent
// Render call.
func (sp *ShadowPass) LightSpace() mgl32.Mat4 {
	return sp.lightSpace
}

// lightViewProjection builds the spotlight's view and projection matrices.
func lightViewProjection(lightPos, lightDir mgl32.Vec3, aspect float32) (view, projection mgl32.Mat4) {
	projection = mgl32.Perspective(mgl32.DegToRad(shadowFovDeg), aspect, shadowNear, shadowFar)
	target := lightPos.Add(lightDir.Normalize())
	view = mgl32.LookAtV(lightPos, target, mgl32.Vec3{0, 1, 0})
	return view, projection
}

// LightSpaceMatrix maps world coordinates into the spotlight's clip space:
// perspective(48deg, aspect, 0.05, 80) * lookAt(pos, pos+normalize(dir), +Y).
func LightSpaceMatrix(lightPos, lightDir mgl32.Vec3, aspect float32) mgl32.Mat4 {
	view, projection := lightViewProjection(lightPos, lightDir, aspect)
	return projection.Mul4(view)
}

// Render draws every scene object's depth pose into the shadow map and
// stores the frame's light-space matrix. Skipped entirely when Init never
// succeeded.
func (sp *ShadowPass) Render(lightPos, lightDir mgl32.Vec3, objects []SceneObject, meshes *ShapeMeshes) {
	if !sp.ready {
		return
	}

	aspect := float32(sp.width) / float32(sp.height)
	view, projection := lightViewProjection(lightPos, lightDir, aspect)
	sp.lightSpace = projection.Mul4(view)

	var prevViewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])
	gl.Viewport(0, 0, sp.width, sp.height)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sp.fbo)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	sp.depthShader.Use()
	sp.depthShader.SetMat4("view", view)
	sp.depthShader.SetMat4("projection", projection)

	for _, obj := range objects {
		sp.depthShader.SetMat4("model", obj.depthPose().Matrix())
		meshes.DrawVariant(obj.Mesh)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
}

func (sp *ShadowPass) releaseBuffers() {
	if sp.depthTexture != 0 {
		gl.DeleteTextures(1, &sp.depthTexture)
		sp.depthTexture = 0
	}
	if sp.fbo != 0 {
		gl.DeleteFramebuffers(1, &sp.fbo)
		sp.fbo = 0
	}
}

// Release frees the shadow resources. Idempotent.
func (sp *ShadowPass) Release() {
	sp.releaseBuffers()
	if sp.depthShader != nil {
		sp.depthShader.Delete()
		sp.depthShader = nil
	}
	sp.ready = false
}
