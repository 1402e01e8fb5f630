package renderer

import "time"

// Frame loop statistics.
type FrameStats struct {
	// Total number of presented frames.
	Frames uint64

	// Total wall time spent inside the frame loop.
	RenderTime time.Duration
}

// Average frames per second over the loop lifetime.
func (s FrameStats) FPS() float64 {
	if s.RenderTime == 0 {
		return 0
	}
	return float64(s.Frames) / s.RenderTime.Seconds()
}
