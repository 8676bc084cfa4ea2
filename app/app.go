package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/Nery2004/Proyecto-3-Space-Travel/config"
	"github.com/Nery2004/Proyecto-3-Space-Travel/hal"
	"github.com/Nery2004/Proyecto-3-Space-Travel/spacegl"
)

// ErrQuit is returned by the frame step when the player asks to exit.
var ErrQuit = errors.New("quit requested")

// timeStep is the fixed simulation increment per frame. Orbits, spins and
// shader animation all key off the same clock.
const timeStep = 0.01

// App owns the scene and drives one frame per step call: sample input,
// advance the ship and camera, render, overlay the HUD, present.
type App struct {
	h   hal.HAL
	fb  hal.Framebuffer
	log hal.Logger

	frame    *spacegl.Framebuffer
	renderer *spacegl.Renderer
	proj     spacegl.Mat4

	camera spacegl.Camera
	ship   *Ship
	bodies []Body
	stars  *Starfield
	planet *spacegl.Mesh
	hull   *spacegl.Mesh
	hud    *hud

	time  float32
	draws []spacegl.Draw
	rgba  []byte

	frames  int
	fps     int
	fpsMark time.Time
}

// New wires the scene for the given HAL and returns the per-frame step
// function the host runner calls at its tick rate.
func New(h hal.HAL, cfg config.Settings) func() error {
	a := newApp(h, cfg)
	return a.step
}

func newApp(h hal.HAL, cfg config.Settings) *App {
	fb := h.Display().Framebuffer()
	width := fb.Width()
	height := fb.Height()

	a := &App{
		h:        h,
		fb:       fb,
		log:      h.Logger(),
		frame:    spacegl.NewFramebuffer(width, height),
		renderer: spacegl.NewRenderer(),
		camera: spacegl.Camera{
			Yaw:         62,
			Pitch:       10,
			Distance:    5,
			MinDistance: 1.5,
			MaxDistance: 8,
		},
		ship:    NewShip(spacegl.V3(6, 4, 9)),
		bodies:  SolarSystem(),
		stars:   NewStarfield(cfg.Scene.Stars),
		planet:  NewPlanetMesh(cfg.Scene.SphereDetail),
		hull:    NewShipMesh(),
		hud:     newHUD(width, height),
		rgba:    make([]byte, width*height*4),
		fpsMark: time.Now(),
	}
	a.renderer.SetWorkers(cfg.Render.Workers)

	fovRad := cfg.Video.FOV * (3.14159265358979 / 180)
	aspect := float32(width) / float32(height)
	a.proj = spacegl.Mat4Perspective(fovRad, aspect, cfg.Video.Near, cfg.Video.Far)

	a.log.WriteLineString("controls: WASD move ship, drag rotate camera, wheel zoom, ESC quit")
	return a
}

func (a *App) step() error {
	in := a.h.Input().State()
	if in.Exit {
		return ErrQuit
	}

	if in.Forward {
		a.ship.MoveForward()
	}
	if in.Back {
		a.ship.MoveBackward()
	}
	if in.Left {
		a.ship.MoveLeft()
	}
	if in.Right {
		a.ship.MoveRight()
	}
	a.ship.UpdateAnimation()

	if in.RotateHeld {
		a.camera.Rotate(in.MouseDX, in.MouseDY)
	}
	if in.Wheel != 0 {
		a.camera.Zoom(in.Wheel)
	}
	a.camera.Target = a.ship.Position

	a.frame.Clear()
	a.stars.Paint(a.frame, a.time)
	a.time += timeStep

	a.draws = a.draws[:0]
	for _, b := range a.bodies {
		a.draws = append(a.draws, spacegl.Draw{
			Mesh:   a.planet,
			Model:  b.ModelMatrix(a.time),
			Shader: b.Shader,
		})
	}
	a.draws = append(a.draws, spacegl.Draw{
		Mesh:   a.hull,
		Model:  a.ship.ModelMatrix(),
		Shader: spacegl.ShaderShip,
	})

	f := spacegl.Frame{
		View:  a.camera.View(a.ship.CameraYaw),
		Proj:  a.proj,
		Time:  a.time,
		Draws: a.draws,
	}
	a.renderer.Render(a.frame, &f)

	// Compose the finished frame in a.rgba first; the HAL framebuffer is
	// shared with presenter goroutines and takes it in one locked copy.
	a.frame.WriteRGBA(a.rgba)
	a.overlayHUD()
	a.fb.WriteFrame(a.rgba)
	a.countFrame()
	return a.fb.Present()
}

func (a *App) overlayHUD() {
	a.hud.drawText(a.rgba, 6, 4, "Space Travel", color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF})
	a.hud.drawText(a.rgba, 6, 12, "WASD move  drag rotate  wheel zoom  ESC quit", color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF})
	a.hud.drawText(a.rgba, 6, 20, fmt.Sprintf("%d fps", a.fps), color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF})
}

func (a *App) countFrame() {
	a.frames++
	if since := time.Since(a.fpsMark); since >= time.Second {
		a.fps = a.frames
		a.frames = 0
		a.fpsMark = time.Now()
	}
}
