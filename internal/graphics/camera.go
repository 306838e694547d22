package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-6

// OrbitCamera circles a target point. Input adds pending rotation which
// Update bleeds into the pose a fraction at a time, giving damped motion.
type OrbitCamera struct {
	Target      mgl32.Vec3
	AspectRatio float32
	FOV         float32 // degrees
	NearPlane   float32
	FarPlane    float32

	MinDistance, MaxDistance float32
	MinPolar, MaxPolar       float32 // radians from +Y
	RotateSpeed              float32
	ZoomSpeed                float32

	radius, theta, phi float32 // theta is the azimuth about +Y, phi the polar angle
	dTheta, dPhi       float32
	scale              float32
	viewportHeight     float32
}

// NewOrbitCamera creates a camera at position looking at target.
func NewOrbitCamera(position, target mgl32.Vec3, fov float32, width, height int) *OrbitCamera {
	c := &OrbitCamera{
		Target:      target,
		FOV:         fov,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		MinDistance: 1,
		MaxDistance: 500,
		MinPolar:    0,
		MaxPolar:    math.Pi,
		RotateSpeed: 1,
		ZoomSpeed:   1,
		scale:       1,
	}
	c.SetViewport(width, height)

	offset := position.Sub(target)
	c.radius = offset.Len()
	if c.radius > 0 {
		c.theta = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
		c.phi = float32(math.Acos(float64(mgl32.Clamp(offset.Y()/c.radius, -1, 1))))
	}
	return c
}

// SetViewport updates the aspect ratio and the drag-to-angle scale.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
	c.viewportHeight = float32(height)
}

// Rotate queues a rotation for a pointer drag of (dx, dy) pixels. Dragging
// across the full viewport height turns the camera once around.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	if c.viewportHeight == 0 {
		return
	}
	k := 2 * math.Pi * c.RotateSpeed / c.viewportHeight
	c.dTheta -= dx * k
	c.dPhi -= dy * k
}

// Dolly moves toward the target for positive scroll and away for negative.
func (c *OrbitCamera) Dolly(scroll float32) {
	if scroll == 0 {
		return
	}
	step := float32(math.Pow(0.95, float64(c.ZoomSpeed)))
	if scroll > 0 {
		c.scale *= step
	} else {
		c.scale /= step
	}
}

// Update applies damping of the pending rotation and any pending dolly. A
// damping of 1 applies all pending motion at once.
func (c *OrbitCamera) Update(damping float32) {
	c.theta += c.dTheta * damping
	c.phi += c.dPhi * damping

	lo := max(c.MinPolar, polarEpsilon)
	hi := min(c.MaxPolar, math.Pi-polarEpsilon)
	c.phi = mgl32.Clamp(c.phi, lo, hi)

	c.radius = mgl32.Clamp(c.radius*c.scale, c.MinDistance, c.MaxDistance)
	c.scale = 1

	c.dTheta *= 1 - damping
	c.dPhi *= 1 - damping
}

// Distance returns the distance from the camera to the target.
func (c *OrbitCamera) Distance() float32 {
	return c.radius
}

// Position returns the camera's world position.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sinPhi, cosPhi := math.Sincos(float64(c.phi))
	sinTheta, cosTheta := math.Sincos(float64(c.theta))
	offset := mgl32.Vec3{
		c.radius * float32(sinPhi*sinTheta),
		c.radius * float32(cosPhi),
		c.radius * float32(sinPhi*cosTheta),
	}
	return c.Target.Add(offset)
}

func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
