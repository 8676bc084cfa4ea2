package spacegl

// pitch limits in degrees, just short of the poles to avoid gimbal flip.
const (
	minPitch = -89
	maxPitch = 89
)

// Camera is an orbit camera: a viewpoint at Distance from Target, oriented
// by yaw and pitch in degrees. Input collaborators mutate it between
// frames; during a frame's render pass it is read-only.
type Camera struct {
	Target Vec3
	Yaw    float32
	Pitch  float32

	Distance    float32
	MinDistance float32
	MaxDistance float32
}

// Rotate applies mouse deltas to yaw and pitch. Pitch is clamped to
// (-89°, 89°).
func (c *Camera) Rotate(deltaX, deltaY float32) {
	c.Yaw += deltaX * 0.3
	c.Pitch -= deltaY * 0.3
	c.Pitch = clamp32(c.Pitch, minPitch, maxPitch)
}

// Zoom moves the viewpoint along the view ray, clamped to the configured
// distance range.
func (c *Camera) Zoom(delta float32) {
	c.Distance -= delta * 0.5
	if c.MinDistance != 0 && c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.MaxDistance != 0 && c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position returns the camera's world position for an extra yaw offset
// (the app feeds the ship's smoothed camera yaw here).
func (c Camera) Position(extraYaw float32) Vec3 {
	yaw := degToRad(c.Yaw + extraYaw)
	pitch := degToRad(c.Pitch)
	return Vec3{
		X: c.Target.X + c.Distance*cos32(yaw)*cos32(pitch),
		Y: c.Target.Y + c.Distance*sin32(pitch),
		Z: c.Target.Z + c.Distance*sin32(yaw)*cos32(pitch),
	}
}

// View builds the look-at view matrix for this frame.
func (c Camera) View(extraYaw float32) Mat4 {
	return Mat4LookAt(c.Position(extraYaw), c.Target, V3(0, 1, 0))
}

func degToRad(d float32) float32 {
	return d * (3.14159265358979 / 180)
}
