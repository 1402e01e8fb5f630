package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/AbundantSalmon/learnopengl-learning1/gfx"
	"github.com/AbundantSalmon/learnopengl-learning1/types"
)

// Driver implementation backed by an opengl 3.3 core context. All methods
// must be invoked from the thread that owns the context.
type Driver struct {
	initialized bool
}

// Create a driver for the context that is current on the calling thread.
func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Init() error {
	if d.initialized {
		return nil
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl: could not load driver function pointers: %s", err.Error())
	}

	d.initialized = true
	return nil
}

func (d *Driver) CompileShader(stage gfx.Stage, source string) (gfx.Shader, error) {
	shader := gl.CreateShader(glStage(stage))

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		compileLog := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &gfx.ShaderCompileError{Stage: stage, Log: compileLog}
	}

	return gfx.Shader(shader), nil
}

func (d *Driver) LinkProgram(shaders ...gfx.Shader) (gfx.Program, error) {
	program := gl.CreateProgram()
	for _, shader := range shaders {
		gl.AttachShader(program, uint32(shader))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		linkLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return 0, &gfx.ShaderLinkError{Log: linkLog}
	}

	return gfx.Program(program), nil
}

func (d *Driver) ReleaseShader(shader gfx.Shader) {
	gl.DeleteShader(uint32(shader))
}

func (d *Driver) UploadGeometry(data []float32, usage gfx.Usage) (gfx.Buffer, error) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), glUsage(usage))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return gfx.Buffer(vbo), nil
}

func (d *Driver) ReadGeometry(buffer gfx.Buffer, dst []float32) error {
	if len(dst) == 0 {
		return nil
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
	gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, len(dst)*4, gl.Ptr(dst))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (d *Driver) DefineLayout(buffer gfx.Buffer, desc gfx.AttribLayout) (gfx.Layout, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	// The buffer bound while the attribute pointer is recorded becomes the
	// attribute's data source; it can be unbound afterwards.
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
	gl.VertexAttribPointer(desc.Slot, desc.Components, gl.FLOAT, desc.Normalized, desc.Stride, gl.PtrOffset(desc.Offset))
	gl.EnableVertexAttribArray(desc.Slot)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return gfx.Layout(vao), nil
}

func (d *Driver) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Driver) Clear(color types.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Driver) UseProgram(program gfx.Program) {
	gl.UseProgram(uint32(program))
}

func (d *Driver) BindLayout(layout gfx.Layout) {
	gl.BindVertexArray(uint32(layout))
}

func (d *Driver) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// Fetch the full info log for a shader stage. The log is sized from the
// driver-reported length rather than a fixed buffer.
func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

// Fetch the full info log for a shader program.
func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func glStage(stage gfx.Stage) uint32 {
	switch stage {
	case gfx.VertexStage:
		return gl.VERTEX_SHADER
	case gfx.FragmentStage:
		return gl.FRAGMENT_SHADER
	}
	panic("opengl: unsupported shader stage")
}

func glUsage(usage gfx.Usage) uint32 {
	switch usage {
	case gfx.StaticDraw:
		return gl.STATIC_DRAW
	case gfx.DynamicDraw:
		return gl.DYNAMIC_DRAW
	}
	panic("opengl: unsupported buffer usage")
}
