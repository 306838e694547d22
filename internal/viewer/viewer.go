// Package viewer runs the interactive window: it feeds pointer input to the
// orbit camera and drives the render loop.
package viewer

import (
	"log/slog"
	"time"

	"hex-island/internal/config"
	"hex-island/internal/graphics"
	renderer "hex-island/internal/graphics/renderer"
	"hex-island/internal/input"
	"hex-island/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// renderPassPrefix names the per-pass timers of the renderables.
const renderPassPrefix = "renderer."

// Viewer owns the main loop for one window.
type Viewer struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	camera   *graphics.OrbitCamera
	log      *slog.Logger
	limiter  *FPSLimiter
	input    *input.InputManager
	drag     dragTracker
	fps      fpsCounter
}

// New installs the input callbacks on window and sizes the viewport to the
// current framebuffer.
func New(window *glfw.Window, r *renderer.Renderer, log *slog.Logger) *Viewer {
	v := &Viewer{
		window:   window,
		renderer: r,
		camera:   r.Camera(),
		log:      log,
		limiter:  NewFPSLimiter(),
		input:    input.NewInputManager(),
		fps:      fpsCounter{period: 1},
	}
	v.setupInputHandlers()
	r.UpdateViewport(window.GetFramebufferSize())
	return v
}

func (v *Viewer) setupInputHandlers() {
	v.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		v.input.HandleMouseButtonEvent(button, action)
		orbiting := v.input.IsActive(input.ActionOrbit)
		switch {
		case orbiting && !v.drag.dragging:
			v.drag.press(w.GetCursorPos())
		case !orbiting && v.drag.dragging:
			v.drag.release()
		}
	})

	v.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if dx, dy, ok := v.drag.move(xpos, ypos); ok {
			v.camera.Rotate(float32(dx), float32(dy))
		}
	})

	v.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		v.camera.Dolly(float32(yoff))
	})

	v.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		v.input.HandleKeyEvent(key, action)
	})

	// Rotation is scaled by window height in screen coordinates, the GL
	// viewport by framebuffer pixels.
	v.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		v.renderer.UpdateViewport(fbWidth, fbHeight)
		v.camera.SetViewport(w.GetSize())
	})
}

// Run renders until the window is asked to close.
func (v *Viewer) Run() {
	start := time.Now()
	last := start
	for !v.window.ShouldClose() {
		profiling.Reset()
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		v.camera.Update(config.GetOrbitDamping())
		v.renderer.Render(dt)

		func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if v.input.JustPressed(input.ActionClose) {
			v.window.SetShouldClose(true)
		}
		v.input.PostUpdate()

		if fps, ok := v.fps.tick(now.Sub(start).Seconds()); ok {
			v.log.Debug("Frame stats.",
				"fps", int(fps+0.5),
				"passes", profiling.Sum(renderPassPrefix),
				"top", profiling.TopN(3))
		}
		v.limiter.Wait()
	}
}
