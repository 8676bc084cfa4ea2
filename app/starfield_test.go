package app

import (
	"testing"

	"github.com/Nery2004/Proyecto-3-Space-Travel/spacegl"
)

func TestStarfieldLeavesDepthUntouched(t *testing.T) {
	fb := spacegl.NewFramebuffer(64, 48)
	NewStarfield(200).Paint(fb, 0)

	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if fb.DepthAt(x, y) != spacegl.FarDepth {
				t.Fatalf("starfield claimed depth at (%d,%d)", x, y)
			}
		}
	}
}

func TestStarfieldStarsAreStable(t *testing.T) {
	paint := func(tm float32) *spacegl.Framebuffer {
		fb := spacegl.NewFramebuffer(64, 48)
		s := NewStarfield(200)
		s.Galaxies = 0 // only galaxies rotate with time
		s.Paint(fb, tm)
		return fb
	}

	a := paint(0)
	b := paint(12.5)
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("fixed star moved at (%d,%d)", x, y)
			}
		}
	}
}

func TestStarfieldPaintsSomething(t *testing.T) {
	fb := spacegl.NewFramebuffer(64, 48)
	NewStarfield(400).Paint(fb, 1.5)

	lit := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if fb.At(x, y) != fb.Background {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("no stars painted")
	}
}
