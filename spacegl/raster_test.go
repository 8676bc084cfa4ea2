package spacegl

import "testing"

// sv builds a screen-space vertex with w=1 (no perspective), tagging the
// local position so tests can observe interpolation weights.
func sv(x, y, z float32, local Vec3) screenVertex {
	return screenVertex{x: x, y: y, z: z, invW: 1, local: local, normal: V3(0, 0, 1)}
}

func collect(a, b, c screenVertex, w, h int) []Fragment {
	var out []Fragment
	rasterize(a, b, c, w, h, 0, h-1, ShaderShip, 0, func(f Fragment) {
		out = append(out, f)
	})
	return out
}

func TestBarycentricWeightsSumToOne(t *testing.T) {
	// Local positions are the unit axes, so each interpolated component is
	// that vertex's barycentric weight.
	a := sv(10, 10, 0.5, V3(1, 0, 0))
	b := sv(10, 50, 0.5, V3(0, 1, 0))
	c := sv(50, 10, 0.5, V3(0, 0, 1))

	frags := collect(a, b, c, 100, 100)
	if len(frags) == 0 {
		t.Fatalf("no fragments emitted")
	}
	for _, f := range frags {
		w0, w1, w2 := f.Local.X, f.Local.Y, f.Local.Z
		if w0 < -1e-5 || w1 < -1e-5 || w2 < -1e-5 {
			t.Fatalf("negative weight at (%d,%d): %v %v %v", f.X, f.Y, w0, w1, w2)
		}
		if s := w0 + w1 + w2; s < 0.9999 || s > 1.0001 {
			t.Fatalf("weights at (%d,%d) sum to %v", f.X, f.Y, s)
		}
	}
}

func TestBoundingBoxClamp(t *testing.T) {
	// Triangle hanging off every screen edge; all fragments must stay in
	// bounds.
	a := sv(-20, -20, 0.5, Vec3{})
	b := sv(-20, 40, 0.5, Vec3{})
	c := sv(40, -20, 0.5, Vec3{})

	frags := collect(a, b, c, 16, 16)
	if len(frags) == 0 {
		t.Fatalf("no fragments for partially visible triangle")
	}
	for _, f := range frags {
		if f.X < 0 || f.X > 15 || f.Y < 0 || f.Y > 15 {
			t.Fatalf("fragment out of bounds: (%d,%d)", f.X, f.Y)
		}
	}
}

func TestDegenerateTriangleEmitsNothing(t *testing.T) {
	a := sv(10, 10, 0.5, Vec3{})
	b := sv(20, 20, 0.5, Vec3{})
	c := sv(30, 30, 0.5, Vec3{})
	if frags := collect(a, b, c, 100, 100); len(frags) != 0 {
		t.Fatalf("degenerate triangle emitted %d fragments", len(frags))
	}
}

func TestSharedEdgeOwnedByExactlyOneTriangle(t *testing.T) {
	// A quad split along its diagonal, both halves wound consistently.
	// Every pixel center inside the quad must be covered exactly once.
	p00 := sv(10, 10, 0.5, Vec3{})
	p01 := sv(10, 30, 0.5, Vec3{})
	p10 := sv(30, 10, 0.5, Vec3{})
	p11 := sv(30, 30, 0.5, Vec3{})

	cover := map[[2]int]int{}
	count := func(f Fragment) { cover[[2]int{f.X, f.Y}]++ }

	rasterize(p00, p11, p10, 64, 64, 0, 63, ShaderShip, 0, count)
	rasterize(p00, p01, p11, 64, 64, 0, 63, ShaderShip, 0, count)

	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			if n := cover[[2]int{x, y}]; n != 1 {
				t.Fatalf("pixel (%d,%d) covered %d times", x, y, n)
			}
		}
	}
	for key, n := range cover {
		if n > 1 {
			t.Fatalf("pixel %v covered %d times", key, n)
		}
	}
}

func TestPerspectiveCorrectLeansTowardNearVertex(t *testing.T) {
	// Vertex a is much nearer (larger 1/w); midway along the a-b edge the
	// interpolated attribute must lean toward a's value.
	a := screenVertex{x: 0, y: 10, z: 0.5, invW: 1, local: V3(0, 0, 0)}
	b := screenVertex{x: 40, y: 10, z: 0.5, invW: 0.1, local: V3(1, 0, 0)}
	c := screenVertex{x: 0, y: 50, z: 0.5, invW: 1, local: V3(0, 0, 0)}

	var mid *Fragment
	rasterize(a, c, b, 64, 64, 0, 63, ShaderShip, 0, func(f Fragment) {
		if f.X == 20 && f.Y == 10 {
			g := f
			mid = &g
		}
	})
	if mid == nil {
		t.Fatalf("midpoint fragment not covered")
	}
	if mid.Local.X >= 0.5 {
		t.Fatalf("interpolation is screen-linear: got %v at midpoint, want < 0.5", mid.Local.X)
	}
}

func TestSingleTriangleScenario(t *testing.T) {
	// Axis-aligned triangle at (10,10) (10,50) (50,10), depth 0.5, into an
	// 800x600 buffer: pixel (11,11) accepted, (60,60) untouched.
	fb := NewFramebuffer(800, 600)

	a := sv(10, 10, 0.5, Vec3{})
	b := sv(10, 50, 0.5, Vec3{})
	c := sv(50, 10, 0.5, Vec3{})

	white := RGB(255, 255, 255)
	rasterize(a, b, c, 800, 600, 0, 599, ShaderShip, 0, func(f Fragment) {
		fb.TestAndSet(f.X, f.Y, f.Depth, white)
	})

	if d := fb.DepthAt(11, 11); d > 0.5001 || d < 0.4999 {
		t.Fatalf("pixel (11,11) depth = %v, want 0.5", d)
	}
	if fb.At(11, 11) != white {
		t.Fatalf("pixel (11,11) color = %+v, want white", fb.At(11, 11))
	}
	if fb.DepthAt(60, 60) != FarDepth {
		t.Fatalf("pixel (60,60) depth = %v, want far sentinel", fb.DepthAt(60, 60))
	}
	if fb.At(60, 60) != fb.Background {
		t.Fatalf("pixel (60,60) color = %+v, want background", fb.At(60, 60))
	}
}
