package renderer

import "github.com/AbundantSalmon/learnopengl-learning1/types"

// The color the framebuffer is cleared to at the start of each frame when
// Options does not specify one.
var DefaultClearColor = types.XYZW(0.2, 0.3, 0.3, 1.0)

type Options struct {
	// Per-frame clear color. The zero value selects DefaultClearColor.
	ClearColor types.Vec4

	// Render this many frames and then request a close. A zero value keeps
	// rendering until the window is closed.
	MaxFrames uint64
}
