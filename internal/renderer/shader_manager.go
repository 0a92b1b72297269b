package renderer

import (
	"fmt"
	"os"
	"strings"

	"github.com/mbly-snhu-portfolio/CS-330/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ShaderManager owns one linked shader program and writes uniforms into it
// by name. Uniform locations are cached per program.
type ShaderManager struct {
	program  uint32
	uniforms *UniformCache
}

func NewShaderManager() *ShaderManager {
	return &ShaderManager{}
}

// LoadShaders compiles the vertex and fragment shader source files and links
// them into the managed program. Any previously linked program is replaced.
func (sm *ShaderManager) LoadShaders(vertexPath, fragmentPath string) error {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return fmt.Errorf("read vertex shader %q: %w", vertexPath, err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return fmt.Errorf("read fragment shader %q: %w", fragmentPath, err)
	}

	vertexShader, err := compileShader(string(vertexSource)+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("compile %q: %w", vertexPath, err)
	}
	fragmentShader, err := compileShader(string(fragmentSource)+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return fmt.Errorf("compile %q: %w", fragmentPath, err)
	}

	program, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	if sm.program != 0 {
		gl.DeleteProgram(sm.program)
	}
	sm.program = program
	sm.uniforms = NewUniformCache(program)

	logger.Log.Info("Shader program linked",
		zap.String("vertex", vertexPath),
		zap.String("fragment", fragmentPath),
		zap.Uint32("program", program))
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile shader",
			zap.Uint32("shaderType", shaderType),
			zap.String("log", infoLog))
		return 0, fmt.Errorf("shader compile failed: %s", strings.TrimRight(infoLog, "\x00"))
	}

	return shader, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", infoLog))
		return 0, fmt.Errorf("program link failed: %s", strings.TrimRight(infoLog, "\x00"))
	}

	return program, nil
}

// Use activates the managed program.
func (sm *ShaderManager) Use() {
	gl.UseProgram(sm.program)
}

// Program returns the raw GL program handle, 0 before LoadShaders.
func (sm *ShaderManager) Program() uint32 {
	return sm.program
}

func (sm *ShaderManager) SetInt(name string, value int32) {
	if sm.uniforms != nil {
		sm.uniforms.SetInt(name, value)
	}
}

func (sm *ShaderManager) SetBool(name string, value bool) {
	if sm.uniforms != nil {
		sm.uniforms.SetBool(name, value)
	}
}

func (sm *ShaderManager) SetFloat(name string, value float32) {
	if sm.uniforms != nil {
		sm.uniforms.SetFloat(name, value)
	}
}

func (sm *ShaderManager) SetVec2(name string, value mgl32.Vec2) {
	if sm.uniforms != nil {
		sm.uniforms.SetVec2(name, value)
	}
}

func (sm *ShaderManager) SetVec3(name string, value mgl32.Vec3) {
	if sm.uniforms != nil {
		sm.uniforms.SetVec3(name, value)
	}
}

func (sm *ShaderManager) SetVec4(name string, value mgl32.Vec4) {
	if sm.uniforms != nil {
		sm.uniforms.SetVec4(name, value)
	}
}

func (sm *ShaderManager) SetMat4(name string, value mgl32.Mat4) {
	if sm.uniforms != nil {
		sm.uniforms.SetMat4(name, value)
	}
}

// SetSampler points a sampler uniform at a texture unit.
func (sm *ShaderManager) SetSampler(name string, unit int32) {
	sm.SetInt(name, unit)
}

// Delete frees the program; the manager is unusable afterwards.
func (sm *ShaderManager) Delete() {
	if sm.program != 0 {
		gl.DeleteProgram(sm.program)
		sm.program = 0
		sm.uniforms = nil
	}
}
