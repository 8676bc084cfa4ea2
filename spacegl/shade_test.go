package spacegl

import (
	"math"
	"testing"
)

// spherePoints returns a handful of directions spread over the unit
// sphere, plus the center and one interior point. Shaders must hold
// their output bounds for all of them.
func spherePoints() []Vec3 {
	pts := []Vec3{
		{},
		{X: 0.3, Y: 0.2, Z: -0.1},
	}
	for i := 0; i < 24; i++ {
		theta := float32(i) * 0.7
		phi := float32(i) * 1.3
		pts = append(pts, V3(
			sin32(theta)*cos32(phi),
			sin32(theta)*sin32(phi),
			cos32(theta),
		))
	}
	return pts
}

func TestShadersStayBoundedOverTime(t *testing.T) {
	shaders := map[string]func(Vec3, float32) Vec3{
		"star":     shadeStar,
		"rocky":    shadeRocky,
		"gasgiant": shadeGasGiant,
		"ice":      shadeIce,
		"desert":   shadeDesert,
		"volcanic": shadeVolcanic,
	}
	pts := spherePoints()

	// The star pulse has the longest period (2*pi/1.5); cover two full
	// cycles of it.
	for name, fn := range shaders {
		hi := float32(1)
		if name == "star" {
			hi = 1.5
		}
		for tm := float32(0); tm < 8.5; tm += 0.35 {
			for _, p := range pts {
				c := fn(p, tm)
				for _, ch := range []float32{c.X, c.Y, c.Z} {
					if math.IsNaN(float64(ch)) || ch < 0 || ch > hi {
						t.Fatalf("%s shader out of range at p=%v t=%v: %v", name, p, tm, c)
					}
				}
			}
		}
	}
}

func TestShadeDeterministic(t *testing.T) {
	p := V3(0.4, -0.7, 0.59)
	n := Normalize(p)
	for id := ShaderID(0); id < shaderCount; id++ {
		a := Shade(id, p, n, 1.25)
		b := Shade(id, p, n, 1.25)
		if a != b {
			t.Fatalf("shader %d not deterministic: %v vs %v", id, a, b)
		}
	}
}

func TestStarCenterBrighterThanEdge(t *testing.T) {
	n := V3(0, 0, 1)
	center := Shade(ShaderStar, V3(0, 0, 0), n, 0)
	edge := Shade(ShaderStar, V3(0.95, 0, 0), n, 0)

	sum := func(c Color) int { return int(c.R) + int(c.G) + int(c.B) }
	if sum(center) <= sum(edge) {
		t.Fatalf("star center %v not brighter than edge %v", center, edge)
	}
}

func TestShipShaderIgnoresInputs(t *testing.T) {
	want := Shade(ShaderShip, V3(0, 0, 0), V3(0, 1, 0), 0)
	for _, p := range spherePoints() {
		got := Shade(ShaderShip, p, Normalize(p), 7.5)
		if got != want {
			t.Fatalf("ship shader varied: %v vs %v at %v", got, want, p)
		}
	}
}

func TestUnknownShaderFallsBackToGray(t *testing.T) {
	got := Shade(ShaderID(99), V3(0.1, 0.2, 0.3), V3(0, 1, 0), 2)
	want := ColorFromVec3(V3(0.5, 0.5, 0.5))
	if got != want {
		t.Fatalf("unknown shader = %v, want flat gray %v", got, want)
	}
}
