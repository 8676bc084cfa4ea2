package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostInput samples ebiten's key and mouse state once per tick and exposes
// the result as an immutable snapshot. Without a window poll never runs and
// State returns the zero snapshot.
type hostInput struct {
	mu    sync.Mutex
	state InputState

	lastX, lastY int
	hasCursor    bool
}

func newHostInput() *hostInput {
	return &hostInput{}
}

func (in *hostInput) State() InputState {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state
}

// poll runs on the window goroutine, once per Update.
func (in *hostInput) poll() {
	var s InputState

	s.Forward = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	s.Back = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	s.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	s.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	s.Exit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	s.RotateHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	x, y := ebiten.CursorPosition()
	if in.hasCursor {
		s.MouseDX = float32(x - in.lastX)
		s.MouseDY = float32(y - in.lastY)
	}
	in.lastX, in.lastY = x, y
	in.hasCursor = true

	_, wheelY := ebiten.Wheel()
	s.Wheel = float32(wheelY)

	in.mu.Lock()
	in.state = s
	in.mu.Unlock()
}
