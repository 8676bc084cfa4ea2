package spacegl

// Color is an RGB color in 8-bit channels.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// MulScalar scales all channels by s, clamped to [0,1].
func (c Color) MulScalar(s float32) Color {
	s = Clamp01(s)
	mul := func(ch uint8) uint8 {
		return uint8(float32(ch) * s)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B)}
}

// Add saturating-adds o to c per channel.
func (c Color) Add(o Color) Color {
	add := func(a, b uint8) uint8 {
		s := uint16(a) + uint16(b)
		if s > 0xFF {
			return 0xFF
		}
		return uint8(s)
	}
	return Color{R: add(c.R, o.R), G: add(c.G, o.G), B: add(c.B, o.B)}
}

// LerpColor blends a toward b by t in [0,1].
func LerpColor(a, b Color, t float32) Color {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// ColorFromVec3 converts a float color to 8-bit channels, clamping
// each component to [0,1]. Shaders may overshoot 1.0 for bloom-like
// brightness; the clamp here is what keeps the framebuffer valid.
func ColorFromVec3(v Vec3) Color {
	return Color{
		R: uint8(Clamp01(v.X) * 255),
		G: uint8(Clamp01(v.Y) * 255),
		B: uint8(Clamp01(v.Z) * 255),
	}
}
