package app

import "github.com/Nery2004/Proyecto-3-Space-Travel/spacegl"

// NewPlanetMesh returns a unit icosphere: an icosahedron subdivided the
// given number of times, every vertex pushed onto the unit sphere. All
// celestial bodies share one of these; scale and shading are per-draw.
func NewPlanetMesh(subdivisions int) *spacegl.Mesh {
	const t = 1.6180339887 // golden ratio

	positions := []spacegl.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	indices := []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	for i := 0; i < subdivisions; i++ {
		positions, indices = subdivide(positions, indices)
	}

	m := &spacegl.Mesh{
		Vertices: make([]spacegl.Vertex, len(positions)),
		Indices:  indices,
	}
	for i, p := range positions {
		unit := spacegl.Normalize(p)
		m.Vertices[i] = spacegl.Vertex{Pos: unit, Normal: unit}
	}
	return m
}

// subdivide splits every triangle into four, caching edge midpoints so
// shared edges produce shared vertices. Winding is preserved.
func subdivide(positions []spacegl.Vec3, indices []uint32) ([]spacegl.Vec3, []uint32) {
	midpoints := make(map[[2]uint32]uint32)
	out := make([]uint32, 0, len(indices)*4)

	midpoint := func(i1, i2 uint32) uint32 {
		key := [2]uint32{i1, i2}
		if i1 > i2 {
			key = [2]uint32{i2, i1}
		}
		if mid, ok := midpoints[key]; ok {
			return mid
		}
		mid := positions[i1].Add(positions[i2]).Mul(0.5)
		positions = append(positions, mid)
		idx := uint32(len(positions) - 1)
		midpoints[key] = idx
		return idx
	}

	for i := 0; i+2 < len(indices); i += 3 {
		v1, v2, v3 := indices[i], indices[i+1], indices[i+2]
		m1 := midpoint(v1, v2)
		m2 := midpoint(v2, v3)
		m3 := midpoint(v3, v1)
		out = append(out,
			v1, m1, m3,
			v2, m2, m1,
			v3, m3, m2,
			m1, m2, m3,
		)
	}
	return positions, out
}

// NewShipMesh returns the low-poly player vessel: a stretched octahedron
// fuselage with a thin panel wing on each side.
func NewShipMesh() *spacegl.Mesh {
	b := &hullBuilder{}

	// Fuselage: octahedron stretched along z.
	nose := spacegl.V3(0, 0, -1.4)
	tail := spacegl.V3(0, 0, 1.0)
	rim := []spacegl.Vec3{
		{X: 0.45}, {Y: 0.35}, {X: -0.45}, {Y: -0.35},
	}
	for i := range rim {
		next := rim[(i+1)%len(rim)]
		b.tri(nose, rim[i], next, spacegl.V3(0, 0, 0))
		b.tri(tail, rim[i], next, spacegl.V3(0, 0, 0))
	}

	b.box(spacegl.V3(0.75, 0, -0.1), spacegl.V3(0.06, 0.5, 0.7))
	b.box(spacegl.V3(-0.75, 0, -0.1), spacegl.V3(0.06, 0.5, 0.7))

	// Struts between fuselage and wings.
	b.box(spacegl.V3(0.55, 0, -0.1), spacegl.V3(0.2, 0.06, 0.06))
	b.box(spacegl.V3(-0.55, 0, -0.1), spacegl.V3(0.2, 0.06, 0.06))

	return &b.mesh
}

// hullBuilder accumulates flat-shaded triangles. Vertices are not shared;
// each triangle carries its own face normal.
type hullBuilder struct {
	mesh spacegl.Mesh
}

// tri appends one triangle, flipping the winding if needed so the face
// normal points away from the given solid center. Only valid for convex
// pieces, which is all the hull is made of.
func (b *hullBuilder) tri(p0, p1, p2, center spacegl.Vec3) {
	n := spacegl.Cross(p1.Sub(p0), p2.Sub(p0))
	centroid := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
	if spacegl.Dot(n, centroid.Sub(center)) < 0 {
		p1, p2 = p2, p1
		n = n.Mul(-1)
	}
	n = spacegl.Normalize(n)

	base := uint32(len(b.mesh.Vertices))
	b.mesh.Vertices = append(b.mesh.Vertices,
		spacegl.Vertex{Pos: p0, Normal: n},
		spacegl.Vertex{Pos: p1, Normal: n},
		spacegl.Vertex{Pos: p2, Normal: n},
	)
	b.mesh.Indices = append(b.mesh.Indices, base, base+1, base+2)
}

// box appends an axis-aligned box as twelve triangles.
func (b *hullBuilder) box(center, half spacegl.Vec3) {
	var corners [8]spacegl.Vec3
	for i := 0; i < 8; i++ {
		sx, sy, sz := float32(1), float32(1), float32(1)
		if i&1 == 0 {
			sx = -1
		}
		if i&2 == 0 {
			sy = -1
		}
		if i&4 == 0 {
			sz = -1
		}
		corners[i] = center.Add(spacegl.V3(half.X*sx, half.Y*sy, half.Z*sz))
	}

	quads := [6][4]int{
		{1, 3, 7, 5}, // +x
		{0, 2, 6, 4}, // -x
		{2, 3, 7, 6}, // +y
		{0, 1, 5, 4}, // -y
		{4, 5, 7, 6}, // +z
		{0, 1, 3, 2}, // -z
	}
	for _, q := range quads {
		b.tri(corners[q[0]], corners[q[1]], corners[q[2]], center)
		b.tri(corners[q[0]], corners[q[2]], corners[q[3]], center)
	}
}
