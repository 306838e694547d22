package scenery

import (
	"hex-island/internal/graphics"
	renderer "hex-island/internal/graphics/renderer"
	"hex-island/internal/profiling"
	"hex-island/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const shaderName = "scenery"

type drawable struct {
	name     string
	mesh     *graphics.GPUMesh
	material scene.Material
}

// Scenery draws the opaque nodes of a scene: terrain bands, the border wall,
// the floor and the clouds.
type Scenery struct {
	shadersDir string
	nodes      []scene.Node
	shadows    renderer.ShadowSource
	shader     *graphics.Shader
	drawables  []drawable
}

// NewScenery creates the renderable for the opaque nodes of s. shadows may be
// nil, in which case nothing is shadowed.
func NewScenery(shadersDir string, s *scene.Scene, shadows renderer.ShadowSource) *Scenery {
	return &Scenery{shadersDir: shadersDir, nodes: s.Opaque(), shadows: shadows}
}

// Init compiles the shader and uploads every node once.
func (sc *Scenery) Init() error {
	var err error
	sc.shader, err = graphics.LoadShader(sc.shadersDir, shaderName)
	if err != nil {
		return err
	}
	for _, n := range sc.nodes {
		sc.drawables = append(sc.drawables, drawable{
			name:     n.Name,
			mesh:     graphics.UploadMesh(n.Mesh),
			material: n.Material,
		})
	}
	// geometry lives on the GPU now
	sc.nodes = nil
	return nil
}

func (sc *Scenery) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.scenery")()

	sc.shader.Use()
	graphics.SetLighting(sc.shader, ctx.Scene, ctx.View, ctx.Proj, ctx.Eye)

	var shadowTex uint32
	if sc.shadows != nil {
		shadowTex = sc.shadows.ShadowTexture()
		sc.shader.SetMatrix4("lightSpace", sc.shadows.LightSpace())
	}
	sc.shader.SetBool("hasShadowMap", shadowTex != 0)
	sc.shader.BindTexture("shadowMap", 1, shadowTex)

	for _, d := range sc.drawables {
		m := d.material
		sc.shader.SetVector3("baseColor", m.Color.Vec3())
		sc.shader.SetBool("hasMap", m.Map != 0)
		sc.shader.BindTexture("map", 0, m.Map)
		sc.shader.SetBool("flatShading", m.FlatShading)
		sc.shader.SetFloat("roughness", m.Roughness)
		sc.shader.SetFloat("envIntensity", m.EnvIntensity)
		sc.shader.SetBool("receiveShadow", m.ReceiveShadow)

		if m.DoubleSided {
			gl.Disable(gl.CULL_FACE)
		}
		d.mesh.Draw()
		if m.DoubleSided {
			gl.Enable(gl.CULL_FACE)
		}
	}
	gl.BindVertexArray(0)
}

func (sc *Scenery) Dispose() {
	for _, d := range sc.drawables {
		d.mesh.Delete()
	}
	sc.drawables = nil
	if sc.shader != nil {
		sc.shader.Delete()
	}
}

func (sc *Scenery) SetViewport(width, height int) {}
