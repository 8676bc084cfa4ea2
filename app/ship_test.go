package app

import (
	"testing"

	"github.com/Nery2004/Proyecto-3-Space-Travel/spacegl"
)

func TestShipMovement(t *testing.T) {
	s := NewShip(spacegl.V3(6, 4, 9))

	s.MoveForward()
	if s.Position.Z != 9-s.Speed {
		t.Fatalf("forward moved z to %v", s.Position.Z)
	}
	s.MoveRight()
	if s.Position.X != 6+s.Speed {
		t.Fatalf("right moved x to %v", s.Position.X)
	}
}

func TestShipTiltEasesInAndDecays(t *testing.T) {
	s := NewShip(spacegl.V3(0, 0, 0))

	s.MoveLeft()
	s.UpdateAnimation()
	rot := s.AnimatedRotation()
	if rot.Z >= s.Rotation.Z {
		t.Fatalf("left bank did not tilt: roll %v", rot.Z)
	}
	if s.CameraYaw >= 0 {
		t.Fatalf("left bank did not swing the camera: yaw %v", s.CameraYaw)
	}

	// With no further input the tilt returns to neutral.
	for i := 0; i < 300; i++ {
		s.UpdateAnimation()
	}
	rot = s.AnimatedRotation()
	if d := rot.Z - s.Rotation.Z; d < -1e-3 || d > 1e-3 {
		t.Fatalf("roll did not decay: %v", d)
	}
	if s.CameraYaw < -1e-3 || s.CameraYaw > 1e-3 {
		t.Fatalf("camera yaw did not decay: %v", s.CameraYaw)
	}
}

func TestShipModelMatrixTracksPosition(t *testing.T) {
	s := NewShip(spacegl.V3(1, 2, 3))
	m := s.ModelMatrix()
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Fatalf("translation column (%v,%v,%v)", m[12], m[13], m[14])
	}
}
