package app

import "github.com/Nery2004/Proyecto-3-Space-Travel/spacegl"

// Starfield paints the deep-space background: hashed point stars plus a
// few slowly rotating spiral galaxies. It draws with depth-less plots, so
// geometry rendered afterwards always wins the pixel.
type Starfield struct {
	Stars    int
	Galaxies int
}

func NewStarfield(stars int) *Starfield {
	if stars <= 0 {
		stars = 800
	}
	return &Starfield{Stars: stars, Galaxies: 5}
}

// Paint draws the background into fb. Star placement is a pure function of
// the star index, so the field is stable frame to frame; only the galaxy
// spirals rotate with time.
func (s *Starfield) Paint(fb *spacegl.Framebuffer, time float32) {
	width := float32(fb.Width())
	height := float32(fb.Height())

	for i := 0; i < s.Stars; i++ {
		seed := float32(i) * 12.9898
		x := int(fract32(sin32(seed)*43758.5453) * width)
		y := int(fract32(cos32(seed*1.234)*43758.5453) * height)

		brightness := sin32(seed*2.345)*0.5 + 0.5
		fb.Plot(x, y, spacegl.RGB(0xFF, 0xFF, 0xFF).MulScalar(brightness))
	}

	// Arms blend from a warm core tint to violet-blue and fade toward the
	// rim; the core pixel gets a saturating glow on top.
	core := spacegl.RGB(0xFF, 0xE6, 0xC8)
	edge := spacegl.RGB(0x78, 0x5A, 0x96)
	for i := 0; i < s.Galaxies; i++ {
		seed := float32(i) * 7.321
		cx := fract32(sin32(seed)*43758.5453) * width
		cy := fract32(cos32(seed*3.456)*43758.5453) * height
		rotation := time*0.1 + seed

		fb.Plot(int(cx), int(cy), core.Add(spacegl.RGB(0x30, 0x30, 0x30)))
		for j := 0; j < 100; j++ {
			angle := float32(j)*0.3 + rotation
			radius := sqrt32(float32(j)*0.5) * 3.0
			x := int(cx + cos32(angle)*radius)
			y := int(cy + sin32(angle)*radius)

			falloff := float32(j) / 100
			fb.Plot(x, y, spacegl.LerpColor(core, edge, falloff).MulScalar(1-falloff))
		}
	}
}
