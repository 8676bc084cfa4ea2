package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp: one byte each of R, G, B, A.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook. The app composes a
// complete frame off to the side and pushes it in with WriteFrame;
// presenters on other goroutines copy it back out with SnapshotRGBA. Both
// paths hold the framebuffer's lock, so readers only ever see finished
// frames.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	WriteFrame(src []byte)
	SnapshotRGBA(dst []byte)
	ClearRGB(r, g, b uint8)
	Present() error
}

// InputState is one frame's immutable input snapshot. The app samples it
// once at the start of a frame; nothing mutates scene state mid-frame.
type InputState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// Mouse motion since the previous snapshot, in pixels.
	MouseDX float32
	MouseDY float32

	// Scroll wheel motion since the previous snapshot.
	Wheel float32

	// RotateHeld reports whether the camera-rotate button is down.
	RotateHeld bool

	Exit bool
}

// Input provides per-frame input snapshots.
type Input interface {
	State() InputState
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// HAL is the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
