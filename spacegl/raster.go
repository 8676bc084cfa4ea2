package spacegl

// Fragment is one covered pixel of a rasterized triangle, with its
// interpolated attributes. Fragments live for a single rasterization pass:
// produced once, consumed once by the shading stage, then discarded.
type Fragment struct {
	X, Y   int
	Depth  float32
	Local  Vec3
	Normal Vec3
	Shader ShaderID
	Time   float32
}

// screenVertex is a vertex after perspective divide and viewport mapping.
type screenVertex struct {
	x, y, z float32 // pixel coords plus normalized depth
	invW    float32 // 1/clip.w, for perspective-correct interpolation
	local   Vec3
	normal  Vec3
}

// toScreen maps a clip-space vertex to screen space. Vertices with a
// near-zero w cannot be projected and report ok=false.
func toScreen(v TransformedVertex, width, height int) (screenVertex, bool) {
	w := v.Clip.W
	if abs32(w) < 1e-6 {
		return screenVertex{}, false
	}
	inv := 1 / w
	ndcX := v.Clip.X * inv
	ndcY := v.Clip.Y * inv
	ndcZ := v.Clip.Z * inv
	return screenVertex{
		x:      (ndcX*0.5 + 0.5) * float32(width),
		y:      (1 - (ndcY*0.5 + 0.5)) * float32(height),
		z:      ndcZ,
		invW:   inv,
		local:  v.Local,
		normal: v.Normal,
	}, true
}

// rasterize emits one Fragment per covered pixel of the triangle (a,b,c),
// restricted to rows [yMin,yMax]. Coverage uses pixel centers and a top-left
// style tie-break so a pixel exactly on an edge shared by two consistently
// wound triangles belongs to exactly one of them.
//
// Depth is interpolated linearly in screen space; local position and normal
// are interpolated perspective-correctly (weights scaled by 1/w and
// renormalized). The shader selector is constant per triangle.
func rasterize(a, b, c screenVertex, width, height, yMin, yMax int, shader ShaderID, time float32, emit func(Fragment)) {
	area := signedArea(a.x, a.y, b.x, b.y, c.x, c.y)
	if area < 1e-6 {
		// Degenerate (or back-facing) denominator; skipping here is what
		// keeps NaN out of the framebuffer.
		return
	}
	invArea := 1 / area

	minX := int(floor32(min3(a.x, b.x, c.x)))
	maxX := int(ceil32(max3(a.x, b.x, c.x)))
	minY := int(floor32(min3(a.y, b.y, c.y)))
	maxY := int(ceil32(max3(a.y, b.y, c.y)))

	if minX < 0 {
		minX = 0
	}
	if minY < yMin {
		minY = yMin
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > yMax {
		maxY = yMax
	}
	if maxY > height-1 {
		maxY = height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Tie-break ownership per edge, resolved once per triangle.
	ownA := edgeOwns(c.x-b.x, c.y-b.y)
	ownB := edgeOwns(a.x-c.x, a.y-c.y)
	ownC := edgeOwns(b.x-a.x, b.y-a.y)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			ea := edgeFn(b, c, px, py)
			eb := edgeFn(c, a, px, py)
			ec := edgeFn(a, b, px, py)

			if !covers(ea, ownA) || !covers(eb, ownB) || !covers(ec, ownC) {
				continue
			}

			la := ea * invArea
			lb := eb * invArea
			lc := ec * invArea

			depth := la*a.z + lb*b.z + lc*c.z

			// Perspective-correct weights for the carried attributes.
			pa := la * a.invW
			pb := lb * b.invW
			pc := lc * c.invW
			sum := pa + pb + pc
			if sum == 0 {
				continue
			}
			inv := 1 / sum
			pa *= inv
			pb *= inv
			pc *= inv

			local := Vec3{
				X: pa*a.local.X + pb*b.local.X + pc*c.local.X,
				Y: pa*a.local.Y + pb*b.local.Y + pc*c.local.Y,
				Z: pa*a.local.Z + pb*b.local.Z + pc*c.local.Z,
			}
			normal := Normalize(Vec3{
				X: pa*a.normal.X + pb*b.normal.X + pc*c.normal.X,
				Y: pa*a.normal.Y + pb*b.normal.Y + pc*c.normal.Y,
				Z: pa*a.normal.Z + pb*b.normal.Z + pc*c.normal.Z,
			})

			emit(Fragment{
				X:      x,
				Y:      y,
				Depth:  depth,
				Local:  local,
				Normal: normal,
				Shader: shader,
				Time:   time,
			})
		}
	}
}

func edgeFn(a, b screenVertex, px, py float32) float32 {
	return (px-a.x)*(b.y-a.y) - (py-a.y)*(b.x-a.x)
}

// covers applies the inside-or-on-edge test with the tie-break: strictly
// positive is always in, exactly zero is in only when this triangle owns
// the edge.
func covers(e float32, owned bool) bool {
	if e > 0 {
		return true
	}
	return e == 0 && owned
}

// edgeOwns decides which of the two triangles sharing an edge claims the
// pixels exactly on it. The predicate is asymmetric in edge direction, and
// a shared edge appears with opposite directions in consistently wound
// neighbors, so exactly one side owns it.
func edgeOwns(ex, ey float32) bool {
	return ey > 0 || (ey == 0 && ex < 0)
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func ceil32(v float32) float32 {
	f := floor32(v)
	if f < v {
		return f + 1
	}
	return f
}
