package shadow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"hex-island/internal/graphics"
	renderer "hex-island/internal/graphics/renderer"
	"hex-island/internal/mesh"
	"hex-island/internal/scene"
	"hex-island/internal/terrain"
)

type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }

func islandScene() *scene.Scene {
	t := terrain.NewBuilder(terrain.DefaultConfig(), zeroRand{}).Generate(terrain.Constant(0.5))
	return scene.Assemble(t, scene.Textures{}, nil, 10)
}

func TestNewShadowFitsLightToScene(t *testing.T) {
	s := islandScene()
	sh := NewShadow("shaders", s)
	if !sh.enabled {
		t.Fatal("a scene with terrain should cast shadows")
	}
	if len(sh.casters) != len(s.ShadowCasters()) {
		t.Errorf("casters = %d, want %d", len(sh.casters), len(s.ShadowCasters()))
	}

	center, radius, _ := s.ShadowBounds()
	if sh.LightSpace() != graphics.LightSpace(s.Light.Position, center, radius) {
		t.Errorf("light space does not match the scene light and bounds")
	}

	// the light frustum looks at the bounds center
	c := sh.LightSpace().Mul4x1(center.Vec4(1))
	if x, y := c.X()/c.W(), c.Y()/c.W(); x*x+y*y > 1e-6 {
		t.Errorf("bounds center maps to (%v, %v)", x, y)
	}
}

func TestShadowDisabledWithoutGeometry(t *testing.T) {
	sh := NewShadow("shaders", &scene.Scene{Nodes: []scene.Node{{Name: "empty", Mesh: &mesh.Fragment{}}}})
	if sh.enabled {
		t.Fatal("nothing to shadow, the pass should be off")
	}
	if err := sh.Init(); err != nil {
		t.Fatalf("Init of a disabled pass: %v", err)
	}
	sh.Render(renderer.RenderContext{})
	if sh.ShadowTexture() != 0 {
		t.Errorf("disabled pass exposes texture %d", sh.ShadowTexture())
	}
	if sh.LightSpace() != (mgl32.Mat4{}) {
		t.Errorf("disabled pass has a light matrix")
	}
	sh.Dispose()
}

func TestShadowTracksViewport(t *testing.T) {
	sh := NewShadow("shaders", islandScene())
	sh.SetViewport(900, 600)
	if sh.width != 900 || sh.height != 600 {
		t.Errorf("viewport = %dx%d", sh.width, sh.height)
	}
}

var _ renderer.ShadowSource = (*Shadow)(nil)
var _ renderer.Renderable = (*Shadow)(nil)
