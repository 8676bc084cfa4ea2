package spacegl

import "sync"

// Mesh is a triangle mesh: vertex attributes plus index triples. The index
// order defines the winding the culling stage tests against.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Draw is one draw call: a mesh, its model matrix for this frame, and a
// shader selector. Draw parameters are supplied fresh each frame; the
// renderer stores nothing across frames.
type Draw struct {
	Mesh   *Mesh
	Model  Mat4
	Shader ShaderID
}

// Frame is the immutable per-frame snapshot the renderer consumes: view and
// projection matrices, elapsed time, and the draw list. Building a fresh
// Frame each tick is what keeps a frame consistent while input mutates
// camera state between frames.
type Frame struct {
	View Mat4
	Proj Mat4
	Time float32

	Draws []Draw
}

// screenTriangle is a culling survivor, ready to rasterize.
type screenTriangle struct {
	a, b, c screenVertex
	shader  ShaderID
}

// Renderer runs the pipeline: vertex transform, primitive culling,
// rasterization, depth test, fragment shading, buffer writes. Create once
// and reuse; scratch buffers persist to keep the per-frame path free of
// allocations once warm.
type Renderer struct {
	workers int

	verts []TransformedVertex
	tris  []screenTriangle
}

func NewRenderer() *Renderer {
	return &Renderer{workers: 1}
}

// SetWorkers sets how many goroutines rasterize a frame. Each worker owns a
// disjoint band of framebuffer rows, so depth/color writes never race and
// the nearest-depth result is identical to the single-threaded one.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

// Render draws one frame into fb. The pass is synchronous: when Render
// returns, every draw has been transformed, culled, rasterized, depth
// tested, shaded, and stored.
//
// Render does not clear fb; the frame loop clears before background layers.
func (r *Renderer) Render(fb *Framebuffer, f *Frame) {
	width := fb.Width()
	height := fb.Height()
	if width <= 0 || height <= 0 {
		return
	}

	r.tris = r.tris[:0]
	for i := range f.Draws {
		r.assemble(&f.Draws[i], f.View, f.Proj, width, height)
	}

	if r.workers <= 1 {
		r.rasterizeBand(fb, f.Time, 0, height-1)
		return
	}

	var wg sync.WaitGroup
	rows := (height + r.workers - 1) / r.workers
	for w := 0; w < r.workers; w++ {
		yMin := w * rows
		if yMin >= height {
			break
		}
		yMax := yMin + rows - 1
		if yMax > height-1 {
			yMax = height - 1
		}
		wg.Add(1)
		go func(yMin, yMax int) {
			defer wg.Done()
			r.rasterizeBand(fb, f.Time, yMin, yMax)
		}(yMin, yMax)
	}
	wg.Wait()
}

// assemble runs the vertex stage for one draw and collects the triangles
// that survive clip-space rejection and the winding test.
func (r *Renderer) assemble(d *Draw, view, proj Mat4, width, height int) {
	m := d.Mesh
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}

	t := NewTransform(d.Model, view, proj)

	if cap(r.verts) < len(m.Vertices) {
		r.verts = make([]TransformedVertex, len(m.Vertices))
	}
	verts := r.verts[:len(m.Vertices)]
	for i, v := range m.Vertices {
		verts[i] = t.Vertex(v)
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(i0) >= len(verts) || int(i1) >= len(verts) || int(i2) >= len(verts) {
			continue
		}
		v0, v1, v2 := verts[i0], verts[i1], verts[i2]

		// Cheap test first: whole-triangle clip rejection.
		if outsideView(v0.Clip, v1.Clip, v2.Clip) {
			continue
		}

		a, ok0 := toScreen(v0, width, height)
		b, ok1 := toScreen(v1, width, height)
		c, ok2 := toScreen(v2, width, height)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		// Back-facing or degenerate.
		if signedArea(a.x, a.y, b.x, b.y, c.x, c.y) < 1e-6 {
			continue
		}

		r.tris = append(r.tris, screenTriangle{a: a, b: b, c: c, shader: d.Shader})
	}
}

// rasterizeBand rasterizes every surviving triangle into rows
// [yMin,yMax]: depth test, then shade accepted fragments, then store.
func (r *Renderer) rasterizeBand(fb *Framebuffer, time float32, yMin, yMax int) {
	width := fb.Width()
	height := fb.Height()
	for i := range r.tris {
		tri := &r.tris[i]
		rasterize(tri.a, tri.b, tri.c, width, height, yMin, yMax, tri.shader, time, func(fr Fragment) {
			if !fb.DepthTest(fr.X, fr.Y, fr.Depth) {
				return
			}
			c := Shade(fr.Shader, fr.Local, fr.Normal, fr.Time)
			fb.TestAndSet(fr.X, fr.Y, fr.Depth, c)
		})
	}
}
