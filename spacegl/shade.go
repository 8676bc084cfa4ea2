package spacegl

// ShaderID selects one of the procedural fragment shaders. The set is
// closed; draw parameters carry the id as a small integer.
type ShaderID uint8

const (
	ShaderStar ShaderID = iota
	ShaderRocky
	ShaderGasGiant
	ShaderShip
	ShaderIce
	ShaderDesert
	ShaderVolcanic
	shaderCount
)

// Shade evaluates the selected shader for one fragment. Every shader is a
// pure total function of (object-space position, normal, elapsed time); an
// unknown selector falls back to flat gray. The caller is responsible for
// depth-testing before shading and for storing the result.
func Shade(id ShaderID, p, n Vec3, time float32) Color {
	var c Vec3
	switch id {
	case ShaderStar:
		c = shadeStar(p, time)
	case ShaderRocky:
		c = shadeRocky(p, time)
	case ShaderGasGiant:
		c = shadeGasGiant(p, time)
	case ShaderShip:
		c = shadeShip(p, n, time)
	case ShaderIce:
		c = shadeIce(p, time)
	case ShaderDesert:
		c = shadeDesert(p, time)
	case ShaderVolcanic:
		c = shadeVolcanic(p, time)
	default:
		c = V3(0.5, 0.5, 0.5)
	}
	return ColorFromVec3(c)
}

// noise01 and fbm01 remap the signed noise primitives into [0,1] for
// shaders that mix palettes.
func noise01(p Vec3) float32 { return Noise(p)*0.5 + 0.5 }

func fbm01(p Vec3, octaves int, persistence, lacunarity float32) float32 {
	return FBM(p, octaves, persistence, lacunarity)*0.5 + 0.5
}

// shadeStar: radial brightness falling off from the body center, fbm
// surface turbulence, and a slow pulsation. Intentionally overshoots 1.0
// near the core; ColorFromVec3 clamps on conversion.
func shadeStar(p Vec3, time float32) Vec3 {
	r := p.Len()
	dir := Normalize(p)

	color := V3(1.0, 0.9, 0.3).Mul(1.2 - pow32(r*0.6, 2.0))

	radialGrad := pow32(Clamp01(r), 2.5)
	color = Lerp(color, V3(1.0, 0.6, 0.1), radialGrad*0.7)

	turbulence := fbm01(dir.Mul(3.0).Add(V3(0, 0, time*0.5)), 2, 0.5, 2.0)
	color = Lerp(color, V3(1.0, 0.5, 0.0), turbulence*0.3)

	pulse := (sin32(time*1.5)*0.5+0.5)*0.15 + 0.95
	color = color.Mul(pulse)

	return clampV3(color, 0, 1.5)
}

// shadeRocky: fbm thresholded into ocean and land bands, continent-like.
func shadeRocky(p Vec3, time float32) Vec3 {
	uv := Normalize(p)

	n := fbm01(uv.Mul(2.0), 3, 0.5, 2.0)

	const threshold = 0.5
	oceanDeep := V3(0.0, 0.1, 0.3)
	oceanShallow := V3(0.1, 0.3, 0.7)
	landLow := V3(0.1, 0.4, 0.1)
	landHigh := V3(0.6, 0.5, 0.3)

	var color Vec3
	land := n > threshold
	if land {
		landFactor := (n - threshold) / (1 - threshold)
		color = Lerp(landLow, landHigh, pow32(landFactor, 0.7))
	} else {
		color = Lerp(oceanDeep, oceanShallow, n/threshold)
	}

	if land {
		detail := noise01(uv.Mul(5.0).Add(V3(0, 0, time*0.1)))
		color = Lerp(color, V3(0.9, 0.9, 0.9), detail*0.15)
	}

	return clampV3(color, 0, 1)
}

// shadeGasGiant: latitude bands from a periodic function of the local y
// axis, fbm cloud turbulence, and a fixed elliptical storm.
func shadeGasGiant(p Vec3, time float32) Vec3 {
	uv := Normalize(p)

	yComponent := uv.Y + time*0.02
	bandNoise := noise01(uv.Mul(15.0).Add(V3(time*0.2, 0, 0)))
	bands := sin32(yComponent*8.0 + bandNoise*2.0)

	color := Lerp(V3(0.8, 0.7, 0.5), V3(0.6, 0.4, 0.2), bands*0.5+0.5)

	cloud := noise01(uv.Mul(20.0).Add(V3(time*0.3, 0, 0)))
	color = Lerp(color, V3(1, 1, 1), cloud*0.08)

	stormCenter := V3(0, -0.4, 0)
	distToStorm := uv.Sub(stormCenter).Len()
	if distToStorm < 0.25 {
		stormFactor := 1 - distToStorm/0.25
		color = Lerp(color, V3(0.95, 0.3, 0.15), pow32(stormFactor, 3.0)*0.6)
	}

	return clampV3(color, 0, 1)
}

// shadeShip: flat hull gray, ignoring position, normal and time.
func shadeShip(_ Vec3, _ Vec3, _ float32) Vec3 {
	return V3(0.5, 0.5, 0.5)
}

// shadeIce: pale blue-white with fbm crack patterns and sparse snow glints
// where a secondary noise spikes.
func shadeIce(p Vec3, time float32) Vec3 {
	uv := Normalize(p)

	n := fbm01(uv.Mul(3.0).Add(V3(0, time*0.05, 0)), 3, 0.5, 2.0)

	ice := V3(0.8, 0.9, 1.0)
	crack := V3(0.3, 0.4, 0.6)
	color := Lerp(ice, crack, n*0.6)

	detail := noise01(uv.Mul(8.0))
	color = Lerp(color, V3(1, 1, 1), detail*0.3)

	if glint := noise01(uv.Mul(12.0)); glint > 0.8 {
		color = Lerp(color, V3(1, 1, 1), (glint-0.8)*5.0)
	}

	return clampV3(color, 0, 1)
}

// shadeDesert: warm sand palette, a directional dune-ridge wave, and
// low-amplitude grain.
func shadeDesert(p Vec3, time float32) Vec3 {
	uv := Normalize(p)

	n := fbm01(uv.Mul(4.0).Add(V3(time*0.02, 0, 0)), 2, 0.6, 2.0)

	color := Lerp(V3(0.6, 0.4, 0.1), V3(0.9, 0.7, 0.3), pow32(n, 0.8))

	dunes := sin32(uv.Y*10.0+noise01(uv.Mul(6.0))*2.0)*0.5 + 0.5
	color = Lerp(color, V3(0.95, 0.8, 0.4), dunes*0.3)

	return clampV3(color, 0, 1)
}

// shadeVolcanic: near-black rock with fbm lava veins pulsing toward orange.
func shadeVolcanic(p Vec3, time float32) Vec3 {
	uv := Normalize(p)

	n := fbm01(uv.Mul(3.0), 3, 0.5, 2.0)

	rock := V3(0.2, 0.15, 0.1)
	lava := V3(1.0, 0.3, 0.0)

	const threshold = 0.45
	var color Vec3
	if n > threshold {
		lavaFactor := (n - threshold) / (1 - threshold)
		color = Lerp(rock, lava, pow32(lavaFactor, 2.0))

		pulse := sin32(time*2.0+uv.X*5.0)*0.5 + 0.5
		color = Lerp(color, V3(1.0, 0.5, 0.0), pulse*lavaFactor*0.4)
	} else {
		detail := noise01(uv.Mul(10.0))
		color = Lerp(rock, V3(0.3, 0.25, 0.2), detail*0.3)
	}

	return clampV3(color, 0, 1)
}

func clampV3(v Vec3, lo, hi float32) Vec3 {
	return Vec3{
		X: clamp32(v.X, lo, hi),
		Y: clamp32(v.Y, lo, hi),
		Z: clamp32(v.Z, lo, hi),
	}
}
