package gfx

import "github.com/AbundantSalmon/learnopengl-learning1/types"

// Shader stage selector.
type Stage uint8

// Supported shader stages.
const (
	VertexStage Stage = iota
	FragmentStage
)

// Implements Stringer.
func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Buffer usage hint passed with a geometry upload.
type Usage uint8

const (
	// The data is uploaded once and drawn many times.
	StaticDraw Usage = iota

	// The data is changed a lot and drawn many times.
	DynamicDraw
)

// Opaque handles minted by a Driver. A zero handle is never returned by a
// successful operation.
type (
	Shader  uint32
	Program uint32
	Buffer  uint32
	Layout  uint32
)

// Describes how draw calls interpret a geometry buffer's raw bytes as
// per-vertex attribute data.
type AttribLayout struct {
	// The attribute slot consumed by the vertex stage.
	Slot uint32

	// Number of float32 components per vertex.
	Components int32

	// Byte distance between consecutive vertices; 0 means tightly packed.
	Stride int32

	// Byte offset of the first component inside the buffer.
	Offset int

	// Map fetched values to the [0, 1] range.
	Normalized bool
}

// Wrapper around the graphics driver primitives used by the renderer. All
// state required by an operation is passed explicitly; no call depends on a
// binding established by an earlier one.
type Driver interface {
	// Load the driver function pointers. Must be called with a current
	// context before any other method.
	Init() error

	// Compile a single shader stage from source.
	CompileShader(stage Stage, source string) (Shader, error)

	// Link compiled stages into a shader program.
	LinkProgram(shaders ...Shader) (Program, error)

	// Release a compiled stage. Programs it was linked into are unaffected.
	ReleaseShader(shader Shader)

	// Allocate GPU-owned storage sized to data and copy data into it.
	UploadGeometry(data []float32, usage Usage) (Buffer, error)

	// Read back the contents of a geometry buffer into dst.
	ReadGeometry(buffer Buffer, dst []float32) error

	// Record how buffer contents map to vertex attributes so that future
	// draw calls know how to fetch per-vertex data.
	DefineLayout(buffer Buffer, desc AttribLayout) (Layout, error)

	// Set the rendering viewport rectangle.
	Viewport(x, y, width, height int)

	// Clear the color target to the given color.
	Clear(color types.Vec4)

	// Activate a shader program for subsequent draws.
	UseProgram(program Program)

	// Activate an attribute layout for subsequent draws.
	BindLayout(layout Layout)

	// Draw count vertices starting at first, assembled as triangles.
	DrawTriangles(first, count int32)
}
