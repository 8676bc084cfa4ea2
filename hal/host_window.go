package hal

import (
	"github.com/Nery2004/Proyecto-3-Space-Travel/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard/mouse input. It blocks until the window closes or the
// app step returns an error.
func RunWindow(h HAL, step func() error) error {
	hh, ok := h.(*hostHAL)
	if !ok {
		return ErrNotImplemented
	}

	g := &hostGame{h: hh, step: step}
	ebiten.SetWindowTitle("Space Travel (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(hh.fb.width*2, hh.fb.height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.in.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.buf))
	}

	fb.SnapshotRGBA(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
