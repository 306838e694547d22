package renderer

import (
	"hex-island/internal/graphics"
	"hex-island/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.OrbitCamera
	Scene  *scene.Scene
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Eye    mgl32.Vec3
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// ShadowSource exposes a depth map rendered earlier in the frame.
type ShadowSource interface {
	ShadowTexture() uint32
	LightSpace() mgl32.Mat4
}
