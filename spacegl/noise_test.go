package spacegl

import (
	"math"
	"testing"
)

func TestNoiseRangeAndDeterminism(t *testing.T) {
	for i := 0; i < 2000; i++ {
		p := V3(
			float32(i)*0.173-170,
			float32(i)*0.311+3.5,
			float32(i)*-0.257+12,
		)
		v := Noise(p)
		if math.IsNaN(float64(v)) {
			t.Fatalf("Noise(%+v) is NaN", p)
		}
		if v < -1 || v > 1 {
			t.Fatalf("Noise(%+v) = %v, outside [-1,1]", p, v)
		}
		if v2 := Noise(p); v2 != v {
			t.Fatalf("Noise(%+v) not deterministic: %v then %v", p, v, v2)
		}
	}
}

func TestNoiseZeroAtLatticePoints(t *testing.T) {
	// Gradient noise vanishes on the integer lattice: the offset to the
	// nearest corner is zero there.
	for _, p := range []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(-3, 7, 2), V3(10, -10, 10)} {
		if v := Noise(p); v != 0 {
			t.Fatalf("Noise(%+v) = %v, want 0", p, v)
		}
	}
}

func TestNoiseContinuousAcrossCellBoundary(t *testing.T) {
	// Sample pairs straddling lattice planes; a bounded derivative means
	// nearby inputs stay nearby.
	const eps = 0.001
	for i := 0; i < 200; i++ {
		y := float32(i)*0.37 + 0.21
		z := float32(i)*0.53 - 4.4
		lo := Noise(V3(1-eps, y, z))
		hi := Noise(V3(1+eps, y, z))
		if d := abs32(hi - lo); d > 0.05 {
			t.Fatalf("discontinuity at x=1 (y=%v z=%v): |%v - %v| = %v", y, z, hi, lo, d)
		}
	}
}

func TestFBMOneOctaveEqualsNoise(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := V3(float32(i)*0.7, float32(i)*-0.3, float32(i)*0.11)
		if got, want := FBM(p, 1, 0.5, 2.0), Noise(p); got != want {
			t.Fatalf("FBM(p,1) = %v, Noise(p) = %v", got, want)
		}
	}
}

func TestFBMStaysNormalized(t *testing.T) {
	for _, octaves := range []int{2, 3, 5, 8} {
		for i := 0; i < 300; i++ {
			p := V3(float32(i)*0.19, float32(i)*0.41, float32(i)*-0.23)
			v := FBM(p, octaves, 0.5, 2.0)
			if v < -1 || v > 1 {
				t.Fatalf("FBM(octaves=%d) = %v, outside [-1,1]", octaves, v)
			}
		}
	}
}

func TestFBMZeroOctaves(t *testing.T) {
	if v := FBM(V3(1.5, 2.5, 3.5), 0, 0.5, 2.0); v != 0 {
		t.Fatalf("FBM with 0 octaves = %v, want 0", v)
	}
}
