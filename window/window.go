package window

// Identifies a keyboard key whose state the renderer polls.
type Key uint8

const (
	KeyEscape Key = iota
)

type Config struct {
	// Window dims in pixels.
	Width  int
	Height int

	// Title shown in the window decoration.
	Title string
}

// Wrapper around the OS window and its attached graphics context. The
// renderer only ever reads the close flag and key state and presents frames;
// event dispatch stays inside the windowing layer.
type Window interface {
	// True once a close has been requested by the user or via RequestClose.
	ShouldClose() bool

	// Raise the close flag. The current frame still completes; the flag is
	// observed at the top of the next loop iteration.
	RequestClose()

	// True while the given key is held down.
	KeyPressed(key Key) bool

	// Present the back buffer and start rendering into the previous front
	// buffer.
	SwapBuffers()

	// Process pending window and input events, invoking any registered
	// callbacks.
	PollEvents()

	// Register a callback invoked whenever the framebuffer size changes.
	OnResize(fn func(width, height int))

	// Current framebuffer size in pixels.
	Size() (width, height int)

	// Destroy the window and its context.
	Destroy()
}
