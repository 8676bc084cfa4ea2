package app

import "github.com/Nery2004/Proyecto-3-Space-Travel/spacegl"

// Body describes one celestial body on a circular orbit around the origin.
// Descriptors are data only; the model matrix is rebuilt from the current
// time every frame.
type Body struct {
	Name   string
	Shader spacegl.ShaderID

	OrbitRadius float32
	OrbitSpeed  float32
	OrbitPhase  float32
	// NegateCos mirrors the orbit across the YZ plane (the gas giant runs
	// counter to everything else).
	NegateCos bool

	Height    float32
	SpinSpeed float32
	Scale     float32
}

// SolarSystem returns the scene's orbit table: the sun in the center plus
// five planets at increasing radii.
func SolarSystem() []Body {
	const pi = 3.14159265358979
	return []Body{
		{Name: "sun", Shader: spacegl.ShaderStar, Scale: 5.0},
		{Name: "rocky", Shader: spacegl.ShaderRocky, OrbitRadius: 8.0, OrbitSpeed: 0.3, SpinSpeed: 0.5, Scale: 0.8},
		{Name: "gas", Shader: spacegl.ShaderGasGiant, OrbitRadius: 12.0, OrbitSpeed: 0.15, NegateCos: true, Height: 0.5, SpinSpeed: 0.3, Scale: 1.2},
		{Name: "ice", Shader: spacegl.ShaderIce, OrbitRadius: 10.0, OrbitSpeed: 0.25, OrbitPhase: pi * 0.5, Height: -0.3, SpinSpeed: 0.4, Scale: 0.7},
		{Name: "desert", Shader: spacegl.ShaderDesert, OrbitRadius: 32.0, OrbitSpeed: 0.35, OrbitPhase: pi, Height: 0.2, SpinSpeed: 0.6, Scale: 3.0},
		{Name: "volcanic", Shader: spacegl.ShaderVolcanic, OrbitRadius: 70.0, OrbitSpeed: 0.4, OrbitPhase: pi * 1.5, Height: -0.5, SpinSpeed: 0.7, Scale: 4.5},
	}
}

// Position returns the body's world position at the given time.
func (b Body) Position(time float32) spacegl.Vec3 {
	angle := time*b.OrbitSpeed + b.OrbitPhase
	x := cos32(angle) * b.OrbitRadius
	if b.NegateCos {
		x = -x
	}
	return spacegl.V3(x, b.Height, sin32(angle)*b.OrbitRadius)
}

// ModelMatrix builds the body's model transform for the given time:
// orbit translation, axial spin, uniform scale.
func (b Body) ModelMatrix(time float32) spacegl.Mat4 {
	rotation := spacegl.V3(0, time*b.SpinSpeed, 0)
	return modelMatrix(b.Position(time), b.Scale, rotation)
}

// modelMatrix composes translation * Rz * Ry * Rx * scale, the transform
// order every scene object uses.
func modelMatrix(translation spacegl.Vec3, scale float32, rotation spacegl.Vec3) spacegl.Mat4 {
	m := spacegl.Mat4Translate(translation)
	m = spacegl.Mat4Mul(m, spacegl.Mat4RotateZ(rotation.Z))
	m = spacegl.Mat4Mul(m, spacegl.Mat4RotateY(rotation.Y))
	m = spacegl.Mat4Mul(m, spacegl.Mat4RotateX(rotation.X))
	return spacegl.Mat4Mul(m, spacegl.Mat4ScaleUniform(scale))
}
