package spacegl

// clipMargin widens the clip-space rejection volume slightly so triangles
// straddling a screen edge don't pop; the rasterizer's bounding-box clamp
// absorbs the overscan.
const clipMargin = 1.5

// outsideView reports whether a triangle lies wholly outside the viewable
// volume. Clipping is all-or-nothing at triangle granularity: a partially
// visible triangle passes through untouched.
func outsideView(a, b, c Vec4) bool {
	return vertexOutside(a) && vertexOutside(b) && vertexOutside(c)
}

func vertexOutside(v Vec4) bool {
	aw := abs32(v.W)
	return abs32(v.X) > aw*clipMargin ||
		abs32(v.Y) > aw*clipMargin ||
		v.Z < -v.W || v.Z > v.W
}

// signedArea is twice the signed area of the screen-space triangle. With
// y growing downward, front faces (counter-clockwise in mesh winding) come
// out positive; zero means degenerate.
func signedArea(ax, ay, bx, by, cx, cy float32) float32 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}
