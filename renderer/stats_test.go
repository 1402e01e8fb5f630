package renderer

import (
	"testing"
	"time"
)

func TestFrameStatsFPS(t *testing.T) {
	stats := FrameStats{Frames: 120, RenderTime: 2 * time.Second}

	expFPS := 60.0
	if got := stats.FPS(); got != expFPS {
		t.Fatalf("expected fps to be %.1f; got %.1f", expFPS, got)
	}
}

func TestFrameStatsFPSWithZeroRenderTime(t *testing.T) {
	var stats FrameStats

	if got := stats.FPS(); got != 0 {
		t.Fatalf("expected fps to be 0; got %.1f", got)
	}
}
