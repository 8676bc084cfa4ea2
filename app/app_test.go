package app

import (
	"testing"

	"github.com/Nery2004/Proyecto-3-Space-Travel/config"
	"github.com/Nery2004/Proyecto-3-Space-Travel/hal"
)

// End-to-end frame loop: a few steps through the real pipeline must
// produce a non-empty frame without a window attached.
func TestStepRendersFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Video.Width = 96
	cfg.Video.Height = 72
	cfg.Scene.SphereDetail = 1
	cfg.Scene.Stars = 100
	cfg.Render.Workers = 2

	h := hal.New(cfg.Video.Width, cfg.Video.Height)
	step := New(h, cfg)

	for i := 0; i < 5; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	fb := h.Display().Framebuffer()
	buf := make([]byte, fb.Width()*fb.Height()*4)
	fb.SnapshotRGBA(buf)
	lit := 0
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("five frames rendered nothing")
	}
}
