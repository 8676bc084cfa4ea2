package spacegl

import "testing"

// ndcTriangle builds a single-triangle mesh from screen-space corner
// coordinates on a size×size framebuffer, mapped back into NDC so an
// identity view/projection leaves them where we put them.
func ndcTriangle(size int, z float32, px [3][2]float32) *Mesh {
	toNDC := func(sx, sy float32) (float32, float32) {
		s := float32(size)
		return sx/s*2 - 1, 1 - sy/s*2
	}
	m := &Mesh{Indices: []uint32{0, 1, 2}}
	for _, p := range px {
		x, y := toNDC(p[0], p[1])
		m.Vertices = append(m.Vertices, Vertex{
			Pos:    V3(x, y, z),
			Normal: V3(0, 0, 1),
		})
	}
	return m
}

func identityFrame(draws ...Draw) *Frame {
	return &Frame{
		View:  Mat4Identity(),
		Proj:  Mat4Identity(),
		Draws: draws,
	}
}

func TestRenderNearestDrawWinsEitherOrder(t *testing.T) {
	const size = 64
	corners := [3][2]float32{{4, 4}, {4, 40}, {40, 4}}

	near := Draw{Mesh: ndcTriangle(size, -0.5, corners), Model: Mat4Identity(), Shader: ShaderShip}
	far := Draw{Mesh: ndcTriangle(size, 0.5, corners), Model: Mat4Identity(), Shader: ShaderStar}

	render := func(draws ...Draw) *Framebuffer {
		fb := NewFramebuffer(size, size)
		NewRenderer().Render(fb, identityFrame(draws...))
		return fb
	}

	a := render(near, far)
	b := render(far, near)

	want := Shade(ShaderShip, V3(0, 0, 0), V3(0, 0, 1), 0)
	if got := a.At(10, 10); got != want {
		t.Fatalf("near-first: pixel = %v, want ship gray %v", got, want)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if a.At(x, y) != b.At(x, y) || a.DepthAt(x, y) != b.DepthAt(x, y) {
				t.Fatalf("submission order changed pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestRenderRejectsOffscreenMesh(t *testing.T) {
	const size = 64
	m := &Mesh{
		Vertices: []Vertex{
			{Pos: V3(2.0, 0, 0)},
			{Pos: V3(2.5, 0, 0)},
			{Pos: V3(2.0, 0.5, 0)},
		},
		Indices: []uint32{0, 1, 2},
	}
	fb := NewFramebuffer(size, size)
	NewRenderer().Render(fb, identityFrame(Draw{Mesh: m, Model: Mat4Identity(), Shader: ShaderRocky}))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if fb.DepthAt(x, y) != FarDepth {
				t.Fatalf("offscreen mesh wrote depth at (%d,%d)", x, y)
			}
		}
	}
}

func TestRenderCullsBackFaces(t *testing.T) {
	const size = 64
	m := ndcTriangle(size, 0, [3][2]float32{{4, 4}, {4, 40}, {40, 4}})
	// Reverse the winding.
	m.Indices = []uint32{0, 2, 1}

	fb := NewFramebuffer(size, size)
	NewRenderer().Render(fb, identityFrame(Draw{Mesh: m, Model: Mat4Identity(), Shader: ShaderRocky}))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if fb.DepthAt(x, y) != FarDepth {
				t.Fatalf("back-facing triangle wrote depth at (%d,%d)", x, y)
			}
		}
	}
}

func TestRenderWorkerCountDoesNotChangeOutput(t *testing.T) {
	const size = 96
	draws := []Draw{
		{Mesh: ndcTriangle(size, -0.2, [3][2]float32{{4, 4}, {4, 80}, {80, 4}}), Model: Mat4Identity(), Shader: ShaderRocky},
		{Mesh: ndcTriangle(size, 0.3, [3][2]float32{{20, 90}, {90, 90}, {90, 20}}), Model: Mat4Identity(), Shader: ShaderDesert},
		{Mesh: ndcTriangle(size, -0.6, [3][2]float32{{30, 10}, {30, 60}, {70, 30}}), Model: Mat4Identity(), Shader: ShaderVolcanic},
	}

	render := func(workers int) *Framebuffer {
		fb := NewFramebuffer(size, size)
		r := NewRenderer()
		r.SetWorkers(workers)
		r.Render(fb, identityFrame(draws...))
		return fb
	}

	single := render(1)
	banded := render(5)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if single.At(x, y) != banded.At(x, y) {
				t.Fatalf("worker count changed color at (%d,%d)", x, y)
			}
			if single.DepthAt(x, y) != banded.DepthAt(x, y) {
				t.Fatalf("worker count changed depth at (%d,%d)", x, y)
			}
		}
	}
}

func TestRenderToleratesDegenerateDraws(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	r := NewRenderer()

	r.Render(fb, identityFrame(
		Draw{Mesh: nil, Model: Mat4Identity()},
		Draw{Mesh: &Mesh{}, Model: Mat4Identity()},
		Draw{Mesh: &Mesh{Vertices: []Vertex{{}}, Indices: []uint32{0, 1, 2}}, Model: Mat4Identity()},
	))

	if fb.DepthAt(16, 16) != FarDepth {
		t.Fatal("degenerate draws must not write")
	}
}
