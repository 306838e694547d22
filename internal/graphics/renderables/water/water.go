package water

import (
	"sort"

	"hex-island/internal/graphics"
	renderer "hex-island/internal/graphics/renderer"
	"hex-island/internal/profiling"
	"hex-island/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const shaderName = "water"

type surface struct {
	mesh     *graphics.GPUMesh
	material scene.Material
	center   mgl32.Vec3
}

// Water draws the transparent nodes with alpha blending after the opaque pass.
type Water struct {
	shadersDir string
	nodes      []scene.Node
	shader     *graphics.Shader
	surfaces   []surface
}

// NewWater creates the renderable for the transparent nodes of s.
func NewWater(shadersDir string, s *scene.Scene) *Water {
	return &Water{shadersDir: shadersDir, nodes: s.Transparent()}
}

func (w *Water) Init() error {
	var err error
	w.shader, err = graphics.LoadShader(w.shadersDir, shaderName)
	if err != nil {
		return err
	}
	for _, n := range w.nodes {
		lo, hi := n.Mesh.Bounds()
		w.surfaces = append(w.surfaces, surface{
			mesh:     graphics.UploadMesh(n.Mesh),
			material: n.Material,
			center:   lo.Add(hi).Mul(0.5),
		})
	}
	w.nodes = nil
	return nil
}

func (w *Water) Render(ctx renderer.RenderContext) {
	if len(w.surfaces) == 0 {
		return
	}
	defer profiling.Track("renderer.water")()

	// back to front
	sort.Slice(w.surfaces, func(i, j int) bool {
		return w.surfaces[i].center.Sub(ctx.Eye).Len() > w.surfaces[j].center.Sub(ctx.Eye).Len()
	})

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	w.shader.Use()
	graphics.SetLighting(w.shader, ctx.Scene, ctx.View, ctx.Proj, ctx.Eye)
	for _, s := range w.surfaces {
		m := s.material
		w.shader.SetVector3("baseColor", m.Color.Vec3())
		w.shader.SetBool("hasRoughnessMap", m.RoughnessMap != 0)
		w.shader.BindTexture("roughnessMap", 0, m.RoughnessMap)
		w.shader.SetFloat("roughness", m.Roughness)
		w.shader.SetFloat("metalness", m.Metalness)
		w.shader.SetFloat("envIntensity", m.EnvIntensity)
		w.shader.SetFloat("transmission", m.Transmission)
		w.shader.SetFloat("thickness", m.Thickness)
		w.shader.SetFloat("ior", m.IOR)
		s.mesh.Draw()
	}

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (w *Water) Dispose() {
	for _, s := range w.surfaces {
		s.mesh.Delete()
	}
	w.surfaces = nil
	if w.shader != nil {
		w.shader.Delete()
	}
}

func (w *Water) SetViewport(width, height int) {}
