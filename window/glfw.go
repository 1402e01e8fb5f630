package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Initialize the windowing system. Must be called from the main thread before
// any window is created.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("window: failed to initialize glfw: %s", err.Error())
	}
	return nil
}

// Release all windowing system resources.
func Terminate() {
	glfw.Terminate()
}

type glfwWindow struct {
	handle *glfw.Window
}

// Create a window with an attached opengl 3.3 core context and make the
// context current on the calling thread.
func New(cfg Config) (Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("window: could not create opengl window: %s", err.Error())
	}
	handle.MakeContextCurrent()

	return &glfwWindow{handle: handle}, nil
}

func (w *glfwWindow) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *glfwWindow) RequestClose() {
	w.handle.SetShouldClose(true)
}

func (w *glfwWindow) KeyPressed(key Key) bool {
	return w.handle.GetKey(glfwKey(key)) == glfw.Press
}

func (w *glfwWindow) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) OnResize(fn func(width, height int)) {
	w.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *glfwWindow) Size() (int, int) {
	return w.handle.GetFramebufferSize()
}

func (w *glfwWindow) Destroy() {
	w.handle.Destroy()
}

func glfwKey(key Key) glfw.Key {
	switch key {
	case KeyEscape:
		return glfw.KeyEscape
	}
	return glfw.KeyUnknown
}
