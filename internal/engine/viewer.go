// Package engine owns the window, the input handling and the per-frame
// loop that drives the shadow pass and the scene render pass.
package engine

import (
	"fmt"
	"runtime"

	"github.com/mbly-snhu-portfolio/CS-330/internal/logger"
	"github.com/mbly-snhu-portfolio/CS-330/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	WindowWidth  = 1000
	WindowHeight = 800
	WindowTitle  = "CS-330 Still Life"

	orthoSize = 10.0

	// Ripple amplitude control (U decreases, I increases).
	rippleStep = 0.01
	rippleMin  = 0.0
	rippleMax  = 0.2

	// Smooth camera movement.
	accelerationRate = 25.0
	decelerationRate = 15.0

	// The original applies extra gain on top of the camera sensitivity.
	mouseGain = 3.0
)

// Viewer is the frame orchestrator: it updates camera and light parameters
// from input, then runs the shadow pass followed by the scene render pass
// every frame.
type Viewer struct {
	window *glfw.Window
	shader *renderer.ShaderManager
	scene  *renderer.SceneManager
	camera *renderer.Camera

	width  int32
	height int32

	perspectiveProjection bool
	pKeyDown              bool
	oKeyDown              bool

	currentVelocity mgl32.Vec3
	rippleAmplitude float32

	lastX      float64
	lastY      float64
	firstMouse bool
}

func NewViewer() *Viewer {
	return &Viewer{
		width:                 WindowWidth,
		height:                WindowHeight,
		perspectiveProjection: true,
		rippleAmplitude:       0.10,
		firstMouse:            true,
	}
}

// Run creates the window and GL context, prepares the scene and blocks in
// the render loop until the window closes.
func (v *Viewer) Run() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(v.width), int(v.height), WindowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	v.window = window
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(v.mouseCallback)
	window.SetScrollCallback(v.scrollCallback)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, v.width, v.height)

	v.shader = renderer.NewShaderManager()
	if err := v.shader.LoadShaders(renderer.VertexShaderPath, renderer.FragmentShaderPath); err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	v.shader.Use()

	v.camera = renderer.NewSceneCamera()
	v.scene = renderer.NewSceneManager(v.shader)
	if err := v.scene.PrepareScene(); err != nil {
		return fmt.Errorf("prepare scene: %w", err)
	}
	defer v.scene.Release()

	logger.Log.Info("Viewer running",
		zap.Int32("width", v.width),
		zap.Int32("height", v.height))

	v.renderLoop()
	return nil
}

func (v *Viewer) renderLoop() {
	lastFrame := glfw.GetTime()

	for !v.window.ShouldClose() {
		currentFrame := glfw.GetTime()
		deltaTime := float32(currentFrame - lastFrame)
		lastFrame = currentFrame

		v.processKeyboardEvents(deltaTime)

		// Depth pass from the camera-tied spotlight, then the color pass.
		v.scene.RenderShadowMap(v.camera.Position, v.camera.Front)

		v.shader.Use()
		v.applyFrameUniforms()

		gl.ClearColor(0.0, 0.0, 0.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.Enable(gl.DEPTH_TEST)

		v.scene.RenderScene(float32(currentFrame), v.rippleAmplitude)

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// applyFrameUniforms pushes the per-frame view state: camera matrices and
// the spotlight that follows the camera like a flashlight.
func (v *Viewer) applyFrameUniforms() {
	view := v.camera.GetViewMatrix()
	projection := projectionMatrix(v.perspectiveProjection, v.camera.Zoom,
		float32(v.width)/float32(v.height), v.camera.Near, v.camera.Far)

	v.shader.SetMat4("view", view)
	v.shader.SetMat4("projection", projection)
	v.shader.SetVec3("viewPosition", v.camera.Position)
	v.shader.SetFloat("rippleAmplitude", v.rippleAmplitude)

	v.shader.SetVec3("spotLight.position", v.camera.Position)
	v.shader.SetVec3("spotLight.direction", v.camera.Front.Normalize())
}

// projectionMatrix selects between the perspective and orthographic
// projections the P/O keys toggle.
func projectionMatrix(perspective bool, fovDeg, aspect, near, far float32) mgl32.Mat4 {
	if perspective {
		return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
	}
	return mgl32.Ortho(-orthoSize, orthoSize, -orthoSize, orthoSize, near, far)
}

func (v *Viewer) processKeyboardEvents(deltaTime float32) {
	if v.window.GetKey(glfw.KeyEscape) == glfw.Press {
		v.window.SetShouldClose(true)
	}

	v.processSmoothMovement(deltaTime)
	v.processProjectionKeys()
	v.processRippleControls()
}

// processSmoothMovement accelerates toward the direction the movement keys
// request and decelerates when they are released.
func (v *Viewer) processSmoothMovement(deltaTime float32) {
	var target mgl32.Vec3

	if v.window.GetKey(glfw.KeyW) == glfw.Press {
		target = target.Add(v.camera.Front)
	}
	if v.window.GetKey(glfw.KeyS) == glfw.Press {
		target = target.Sub(v.camera.Front)
	}
	if v.window.GetKey(glfw.KeyA) == glfw.Press {
		target = target.Sub(v.camera.Right)
	}
	if v.window.GetKey(glfw.KeyD) == glfw.Press {
		target = target.Add(v.camera.Right)
	}
	if v.window.GetKey(glfw.KeyQ) == glfw.Press || v.window.GetKey(glfw.KeySpace) == glfw.Press {
		target = target.Add(v.camera.Up)
	}
	if v.window.GetKey(glfw.KeyE) == glfw.Press || v.window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		target = target.Sub(v.camera.Up)
	}

	v.currentVelocity = stepVelocity(v.currentVelocity, target, v.camera.MovementSpeed, deltaTime)

	if v.currentVelocity.Len() > 0.01 {
		v.camera.Position = v.camera.Position.Add(v.currentVelocity.Mul(deltaTime))
	}
}

// stepVelocity interpolates the current velocity toward the target
// direction at the configured acceleration or deceleration rate.
func stepVelocity(current, targetDir mgl32.Vec3, speed, deltaTime float32) mgl32.Vec3 {
	var target mgl32.Vec3
	rate := float32(decelerationRate)
	if targetDir.Len() > 0 {
		target = targetDir.Normalize().Mul(speed)
		rate = accelerationRate
	}

	lerp := mgl32.Clamp(rate*deltaTime, 0.0, 1.0)
	return current.Add(target.Sub(current).Mul(lerp))
}

// processProjectionKeys switches projection mode on the edge of a P or O
// key press.
func (v *Viewer) processProjectionKeys() {
	if v.window.GetKey(glfw.KeyP) == glfw.Press {
		if !v.pKeyDown {
			v.perspectiveProjection = true
			v.pKeyDown = true
		}
	} else {
		v.pKeyDown = false
	}

	if v.window.GetKey(glfw.KeyO) == glfw.Press {
		if !v.oKeyDown {
			v.perspectiveProjection = false
			v.oKeyDown = true
		}
	} else {
		v.oKeyDown = false
	}
}

// processRippleControls adjusts the liquid ripple amplitude with U/I.
func (v *Viewer) processRippleControls() {
	if v.window.GetKey(glfw.KeyI) == glfw.Press {
		v.rippleAmplitude = stepRipple(v.rippleAmplitude, rippleStep)
	}
	if v.window.GetKey(glfw.KeyU) == glfw.Press {
		v.rippleAmplitude = stepRipple(v.rippleAmplitude, -rippleStep)
	}
}

// stepRipple applies one amplitude step, clamped to the allowed range.
func stepRipple(current, delta float32) float32 {
	return mgl32.Clamp(current+delta, rippleMin, rippleMax)
}

func (v *Viewer) mouseCallback(_ *glfw.Window, xpos, ypos float64) {
	if v.firstMouse {
		v.lastX = xpos
		v.lastY = ypos
		v.firstMouse = false
	}

	xoffset := float32(xpos - v.lastX)
	yoffset := float32(v.lastY - ypos) // reversed: window y grows downward
	v.lastX = xpos
	v.lastY = ypos

	v.camera.ProcessMouseMovement(xoffset*mouseGain, yoffset*mouseGain, true)
}

func (v *Viewer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	v.camera.AdjustSpeed(float32(yoffset) * 2.0)
}
