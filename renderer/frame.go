package renderer

import (
	"time"

	"github.com/AbundantSalmon/learnopengl-learning1/gfx"
	"github.com/AbundantSalmon/learnopengl-learning1/types"
	"github.com/AbundantSalmon/learnopengl-learning1/window"
)

// The attribute slot the vertex stage reads positions from.
const positionSlot = 0

// Triangle vertices in normalized device coordinates.
var triangleVertices = []types.Vec3{
	types.XYZ(-0.5, -0.5, 0.0),
	types.XYZ(0.5, -0.5, 0.0),
	types.XYZ(0.0, 0.5, 0.0),
}

// Renders the triangle into a window owned by the windowing collaborator
// using the graphics driver collaborator. One shader program and one geometry
// buffer are created at setup and nothing is allocated inside the loop.
type frameRenderer struct {
	win window.Window
	drv gfx.Driver

	program gfx.Program
	buffer  gfx.Buffer
	layout  gfx.Layout

	opts  Options
	stats FrameStats
}

// Create a renderer on top of the given window and driver. Setup compiles
// and links the shader program, uploads the triangle geometry, records the
// attribute layout and registers the viewport resize callback. A shader
// compilation or linking failure aborts setup.
func New(win window.Window, drv gfx.Driver, opts Options) (Renderer, error) {
	if opts.ClearColor == (types.Vec4{}) {
		opts.ClearColor = DefaultClearColor
	}

	r := &frameRenderer{
		win:  win,
		drv:  drv,
		opts: opts,
	}

	if err := r.buildProgram(); err != nil {
		return nil, err
	}
	if err := r.uploadGeometry(); err != nil {
		return nil, err
	}

	width, height := win.Size()
	drv.Viewport(0, 0, width, height)
	win.OnResize(func(width, height int) {
		drv.Viewport(0, 0, width, height)
	})

	return r, nil
}

// Compile both shader stages and link them into the program used for every
// draw. The per-stage artifacts are released once linking completes; only
// the linked program handle is retained.
func (r *frameRenderer) buildProgram() error {
	vertex, err := r.drv.CompileShader(gfx.VertexStage, vertexShaderSource)
	if err != nil {
		return err
	}

	fragment, err := r.drv.CompileShader(gfx.FragmentStage, fragmentShaderSource)
	if err != nil {
		r.drv.ReleaseShader(vertex)
		return err
	}

	program, err := r.drv.LinkProgram(vertex, fragment)

	r.drv.ReleaseShader(vertex)
	r.drv.ReleaseShader(fragment)

	if err != nil {
		return err
	}

	r.program = program
	return nil
}

// Upload the triangle to GPU-owned storage and record how its bytes map to
// the position attribute: 3 tightly packed float32 components, no offset.
func (r *frameRenderer) uploadGeometry() error {
	buffer, err := r.drv.UploadGeometry(types.Flatten(triangleVertices), gfx.StaticDraw)
	if err != nil {
		return err
	}

	layout, err := r.drv.DefineLayout(buffer, gfx.AttribLayout{
		Slot:       positionSlot,
		Components: 3,
	})
	if err != nil {
		return err
	}

	r.buffer = buffer
	r.layout = layout
	return nil
}

// Run the frame loop. The close flag is only checked at the top of each
// iteration so an escape press during frame N still presents frame N and the
// loop exits before frame N+1. The clear/draw/swap/poll order within one
// iteration is load-bearing and must not change.
func (r *frameRenderer) Render() error {
	start := time.Now()

	for !r.win.ShouldClose() {
		if r.win.KeyPressed(window.KeyEscape) {
			r.win.RequestClose()
		}

		r.drv.Clear(r.opts.ClearColor)
		r.drv.UseProgram(r.program)
		r.drv.BindLayout(r.layout)
		r.drv.DrawTriangles(0, int32(len(triangleVertices)))

		r.win.SwapBuffers()
		r.win.PollEvents()

		r.stats.Frames++
		if r.opts.MaxFrames != 0 && r.stats.Frames >= r.opts.MaxFrames {
			r.win.RequestClose()
		}
	}

	r.stats.RenderTime = time.Since(start)
	return nil
}

func (r *frameRenderer) Close() {
	if r.win != nil {
		r.win.RequestClose()
	}
}

func (r *frameRenderer) Stats() FrameStats {
	return r.stats
}
