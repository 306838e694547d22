package renderer

import (
	"fmt"

	"hex-island/internal/graphics"
	"hex-island/internal/profiling"
	"hex-island/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.OrbitCamera
	scene       *scene.Scene
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(s *scene.Scene, camera *graphics.OrbitCamera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		camera:      camera,
		scene:       s,
	}

	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			// release the ones that did start
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", rb, err)
		}
	}

	return r, nil
}

// Render draws one frame.
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("frame.Render")()

	bg := r.scene.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Scene:  r.scene,
		DT:     dt,
		View:   r.camera.View(),
		Proj:   r.camera.Projection(),
		Eye:    r.camera.Position(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Camera returns the camera instance
func (r *Renderer) Camera() *graphics.OrbitCamera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and forwards the size to the camera
// and every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
