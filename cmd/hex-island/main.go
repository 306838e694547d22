package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"hex-island/internal/config"
	"hex-island/internal/graphics"
	"hex-island/internal/graphics/renderables/scenery"
	"hex-island/internal/graphics/renderables/shadow"
	"hex-island/internal/graphics/renderables/water"
	renderer "hex-island/internal/graphics/renderer"
	"hex-island/internal/profiling"
	"hex-island/internal/scene"
	"hex-island/internal/viewer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const configPath = "config.toml"

func init() {
	runtime.LockOSThread()
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conf, err := config.Load(configPath)
	if err != nil {
		log.Error("Load config.", "err", err)
		os.Exit(1)
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.LogLevel()}))
	conf.Apply()

	if err := run(conf, log); err != nil {
		log.Error("Viewer stopped.", "err", err)
		os.Exit(1)
	}
}

// run owns every GL and GLFW resource, so its deferred cleanup has finished
// before main picks the exit code.
func run(conf config.UserConfig, log *slog.Logger) error {
	// generation needs no GL context
	noiseSeed, decorSeed := conf.Seeds(time.Now())
	isl, err := buildIsland(conf, noiseSeed, decorSeed, log)
	if err != nil {
		return fmt.Errorf("generate island: %w", err)
	}
	profiling.Log(log, "Startup timings.")

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init GLFW: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(conf)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init OpenGL: %w", err)
	}
	log.Debug("OpenGL ready.", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	// textures must be resident before any mesh references them
	textures := graphics.NewTextureCache(conf.Assets.Textures)
	defer textures.Dispose()
	tex, err := graphics.LoadIslandTextures(textures)
	if err != nil {
		return err
	}

	s := scene.Assemble(isl.terrain, tex, isl.clouds, float32(conf.Terrain.MaxHeight))

	width, height := window.GetSize()
	camera := graphics.NewOrbitCamera(
		mgl32.Vec3{float32(conf.Camera.X), float32(conf.Camera.Y), float32(conf.Camera.Z)},
		mgl32.Vec3{0, 0, 0},
		float32(conf.Camera.FOV),
		width, height,
	)

	shadows := shadow.NewShadow(conf.Assets.Shaders, s)
	r, err := renderer.NewRenderer(s, camera,
		shadows,
		scenery.NewScenery(conf.Assets.Shaders, s, shadows),
		water.NewWater(conf.Assets.Shaders, s),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer r.Dispose()

	viewer.New(window, r, log).Run()
	return nil
}

func setupWindow(conf config.UserConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(conf.Window.Width, conf.Window.Height, conf.Window.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if conf.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}
