package app

import "github.com/Nery2004/Proyecto-3-Space-Travel/spacegl"

// Ship is the player vessel. Movement sets a target tilt; per-frame
// animation eases the actual tilt toward it and decays the target back to
// neutral, which is what makes banking look smoothed instead of snapped.
type Ship struct {
	Position spacegl.Vec3
	Rotation spacegl.Vec3
	Speed    float32
	Scale    float32

	tiltX float32
	tiltZ float32

	targetTiltX float32
	targetTiltZ float32

	// CameraYaw is the smoothed extra yaw the follow camera applies while
	// strafing.
	CameraYaw       float32
	targetCameraYaw float32
}

func NewShip(position spacegl.Vec3) *Ship {
	return &Ship{
		Position: position,
		Rotation: spacegl.V3(0, 90, 0),
		Speed:    0.15,
		Scale:    0.3,
	}
}

func (s *Ship) MoveForward() {
	s.Position.Z -= s.Speed
	s.targetTiltZ = -0.15
}

func (s *Ship) MoveBackward() {
	s.Position.Z += s.Speed
	s.targetTiltZ = 0.1
}

func (s *Ship) MoveLeft() {
	s.Position.X -= s.Speed
	s.targetTiltX = -0.2
	s.targetCameraYaw = -15.0
}

func (s *Ship) MoveRight() {
	s.Position.X += s.Speed
	s.targetTiltX = 0.2
	s.targetCameraYaw = 15.0
}

// UpdateAnimation advances the tilt and camera-yaw easing one frame.
func (s *Ship) UpdateAnimation() {
	const lerpFactor = 0.1
	s.tiltX += (s.targetTiltX - s.tiltX) * lerpFactor
	s.tiltZ += (s.targetTiltZ - s.tiltZ) * lerpFactor
	s.CameraYaw += (s.targetCameraYaw - s.CameraYaw) * lerpFactor

	s.targetTiltX *= 0.9
	s.targetTiltZ *= 0.9
	s.targetCameraYaw *= 0.9
}

// AnimatedRotation is the base rotation plus the current tilt.
func (s *Ship) AnimatedRotation() spacegl.Vec3 {
	return spacegl.V3(
		s.Rotation.X+s.tiltZ,
		s.Rotation.Y,
		s.Rotation.Z+s.tiltX,
	)
}

// ModelMatrix builds the ship's model transform for this frame.
func (s *Ship) ModelMatrix() spacegl.Mat4 {
	return modelMatrix(s.Position, s.Scale, s.AnimatedRotation())
}
