package spacegl

// Gradient noise and fractal summation used by the procedural shaders.
//
// Noise is deterministic: the gradient at each lattice point comes from an
// integer hash, so equal inputs always produce equal outputs and there is no
// table to seed.

// Noise evaluates 3D gradient noise at p. The result is continuous,
// has a bounded derivative, and stays within [-1,1].
func Noise(p Vec3) float32 {
	x0 := floor32(p.X)
	y0 := floor32(p.Y)
	z0 := floor32(p.Z)

	ix := int32(x0)
	iy := int32(y0)
	iz := int32(z0)

	fx := p.X - x0
	fy := p.Y - y0
	fz := p.Z - z0

	u := fade(fx)
	v := fade(fy)
	w := fade(fz)

	n000 := gradDot(ix, iy, iz, fx, fy, fz)
	n100 := gradDot(ix+1, iy, iz, fx-1, fy, fz)
	n010 := gradDot(ix, iy+1, iz, fx, fy-1, fz)
	n110 := gradDot(ix+1, iy+1, iz, fx-1, fy-1, fz)
	n001 := gradDot(ix, iy, iz+1, fx, fy, fz-1)
	n101 := gradDot(ix+1, iy, iz+1, fx-1, fy, fz-1)
	n011 := gradDot(ix, iy+1, iz+1, fx, fy-1, fz-1)
	n111 := gradDot(ix+1, iy+1, iz+1, fx-1, fy-1, fz-1)

	return mix(
		mix(mix(n000, n100, u), mix(n010, n110, u), v),
		mix(mix(n001, n101, u), mix(n011, n111, u), v),
		w,
	)
}

// FBM sums octaves layers of Noise with geometrically increasing frequency
// (lacunarity) and decreasing amplitude (persistence). The sum is divided by
// the total amplitude so the result range does not grow with octave count;
// one octave is exactly a single Noise evaluation.
func FBM(p Vec3, octaves int, persistence, lacunarity float32) float32 {
	var total float32
	var maxValue float32
	frequency := float32(1)
	amplitude := float32(1)

	for i := 0; i < octaves; i++ {
		total += Noise(p.Mul(frequency)) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}

// fade is the quintic smootherstep curve; zero first and second derivative
// at the lattice boundaries.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func mix(a, b, t float32) float32 { return a + t*(b-a) }

// gradDot picks one of 12 edge-direction gradients for the lattice point
// (ix,iy,iz) and dots it with the offset (fx,fy,fz).
func gradDot(ix, iy, iz int32, fx, fy, fz float32) float32 {
	h := latticeHash(ix, iy, iz)
	switch h & 15 {
	case 0:
		return fx + fy
	case 1:
		return -fx + fy
	case 2:
		return fx - fy
	case 3:
		return -fx - fy
	case 4:
		return fx + fz
	case 5:
		return -fx + fz
	case 6:
		return fx - fz
	case 7:
		return -fx - fz
	case 8:
		return fy + fz
	case 9:
		return -fy + fz
	case 10:
		return fy - fz
	case 11:
		return -fy - fz
	case 12:
		return fx + fy
	case 13:
		return -fy + fz
	case 14:
		return -fx + fy
	default:
		return -fy - fz
	}
}

func latticeHash(x, y, z int32) uint32 {
	h := uint32(x)*0x8DA6B343 + uint32(y)*0xD8163841 + uint32(z)*0xCB1AB31F
	h ^= h >> 13
	h *= 0x85EBCA6B
	h ^= h >> 16
	return h
}
