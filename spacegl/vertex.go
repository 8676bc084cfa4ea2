package spacegl

// Vertex is a mesh vertex in object space. Meshes own their vertices; the
// vertex stage never mutates them.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	Color  Vec3 // optional base color, linear 0..1 channels
}

// TransformedVertex is the vertex-stage output for one frame and draw call.
type TransformedVertex struct {
	// Clip is the homogeneous clip-space position. W is retained for
	// perspective-correct interpolation.
	Clip Vec4
	// Local is the untransformed object-space position. The procedural
	// shaders sample it, which anchors their patterns to the body.
	Local Vec3
	// Normal is the object normal through the inverse-transpose model
	// matrix, renormalized.
	Normal Vec3
}

// Transform holds the per-draw matrices the vertex stage needs.
type Transform struct {
	mvp    Mat4
	normal Mat3
}

// NewTransform precomputes the combined model-view-projection matrix and the
// normal matrix (inverse-transpose of the model's upper 3x3, so non-uniform
// scaling does not skew lighting normals).
func NewTransform(model, view, proj Mat4) Transform {
	return Transform{
		mvp:    Mat4Mul(proj, Mat4Mul(view, model)),
		normal: Mat3Transpose(Mat3Inverse(Mat3FromMat4(model))),
	}
}

// Vertex runs the vertex stage on v. Pure: no clipping, no discarding.
func (t Transform) Vertex(v Vertex) TransformedVertex {
	return TransformedVertex{
		Clip:   Mat4MulV4(t.mvp, Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1}),
		Local:  v.Pos,
		Normal: Normalize(Mat3MulV3(t.normal, v.Normal)),
	}
}
