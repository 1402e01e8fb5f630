package renderer

type Renderer interface {
	// Run the frame loop until the window reports that it should close.
	Render() error

	// Shutdown the renderer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
