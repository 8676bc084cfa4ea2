package spacegl

// FarDepth is the depth sentinel the buffer resets to each frame. Any
// projected geometry is nearer.
const FarDepth = float32(1e9)

// Framebuffer pairs a color grid with a depth grid of the same dimensions.
// It is the sole arbiter of visibility: a pixel's color always corresponds
// to the nearest depth accepted so far in the current frame.
//
// The zero x/y origin is the top-left corner. Callers are expected to stay
// in bounds (the rasterizer's bounding-box clamp guarantees it); the write
// path does not re-check.
type Framebuffer struct {
	Background Color

	width  int
	height int
	color  []Color
	depth  []float32
}

func NewFramebuffer(width, height int) *Framebuffer {
	f := &Framebuffer{
		Background: RGB(0, 0, 0),
		width:      width,
		height:     height,
		color:      make([]Color, width*height),
		depth:      make([]float32, width*height),
	}
	f.Clear()
	return f
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Clear resets depth to the far sentinel and color to the background.
// Call at the start of every frame.
func (f *Framebuffer) Clear() {
	for i := range f.depth {
		f.depth[i] = FarDepth
		f.color[i] = f.Background
	}
}

// DepthTest reports whether depth would win at (x,y) without writing.
// The renderer uses it to skip shading occluded fragments.
func (f *Framebuffer) DepthTest(x, y int, depth float32) bool {
	return depth < f.depth[y*f.width+x]
}

// TestAndSet accepts the fragment if depth is strictly nearer than the
// stored value, overwriting both grids, and reports acceptance. A rejected
// fragment leaves both grids untouched, so submission order never affects
// the final image.
func (f *Framebuffer) TestAndSet(x, y int, depth float32, c Color) bool {
	i := y*f.width + x
	if depth >= f.depth[i] {
		return false
	}
	f.depth[i] = depth
	f.color[i] = c
	return true
}

// Plot writes a background-layer pixel without claiming depth, so any
// geometry rendered afterwards draws over it. Out-of-range coordinates are
// ignored; background painters are not bound by the rasterizer clamp.
func (f *Framebuffer) Plot(x, y int, c Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.color[y*f.width+x] = c
}

// At returns the color at (x,y).
func (f *Framebuffer) At(x, y int) Color {
	return f.color[y*f.width+x]
}

// DepthAt returns the stored depth at (x,y).
func (f *Framebuffer) DepthAt(x, y int) float32 {
	return f.depth[y*f.width+x]
}

// WriteRGBA copies the color grid into dst as RGBA8888 rows, top to bottom.
// dst must hold at least width*height*4 bytes.
func (f *Framebuffer) WriteRGBA(dst []byte) {
	for i, c := range f.color {
		j := i * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xFF
	}
}
