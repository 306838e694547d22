package shadow

import (
	"hex-island/internal/graphics"
	renderer "hex-island/internal/graphics/renderer"
	"hex-island/internal/profiling"
	"hex-island/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const shaderName = "shadow"

// Shadow renders the shadow casting nodes into a depth map seen from the
// scene light. It must run before the passes that sample it.
type Shadow struct {
	shadersDir string
	casters    []scene.Node
	lightSpace mgl32.Mat4
	enabled    bool

	shader    *graphics.Shader
	shadowMap *graphics.ShadowMap
	meshes    []*graphics.GPUMesh

	width, height int
}

// NewShadow prepares the shadow pass for s. The light frustum is fitted to
// the nodes that cast or receive shadows.
func NewShadow(shadersDir string, s *scene.Scene) *Shadow {
	sh := &Shadow{shadersDir: shadersDir, casters: s.ShadowCasters()}
	if center, radius, ok := s.ShadowBounds(); ok {
		sh.lightSpace = graphics.LightSpace(s.Light.Position, center, radius)
		sh.enabled = true
	}
	return sh
}

func (sh *Shadow) Init() error {
	if !sh.enabled {
		return nil
	}
	var err error
	sh.shader, err = graphics.LoadShader(sh.shadersDir, shaderName)
	if err != nil {
		return err
	}
	sh.shadowMap, err = graphics.NewShadowMap(graphics.ShadowMapSize)
	if err != nil {
		sh.shader.Delete()
		return err
	}
	for _, n := range sh.casters {
		sh.meshes = append(sh.meshes, graphics.UploadMesh(n.Mesh))
	}
	sh.casters = nil
	return nil
}

func (sh *Shadow) Render(ctx renderer.RenderContext) {
	if sh.shadowMap == nil {
		return
	}
	defer profiling.Track("renderer.shadow")()

	sh.shadowMap.Begin()
	// pushes stored depth back to keep lit faces from shadowing themselves
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(2, 4)

	sh.shader.Use()
	sh.shader.SetMatrix4("lightSpace", sh.lightSpace)
	for _, m := range sh.meshes {
		m.Draw()
	}

	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.BindVertexArray(0)
	sh.shadowMap.End(sh.width, sh.height)
}

// ShadowTexture returns the depth map, or 0 before Init or when the scene has
// nothing to shadow.
func (sh *Shadow) ShadowTexture() uint32 {
	if sh.shadowMap == nil {
		return 0
	}
	return sh.shadowMap.Texture()
}

// LightSpace returns the matrix the depth map was rendered with.
func (sh *Shadow) LightSpace() mgl32.Mat4 {
	return sh.lightSpace
}

func (sh *Shadow) Dispose() {
	for _, m := range sh.meshes {
		m.Delete()
	}
	sh.meshes = nil
	if sh.shadowMap != nil {
		sh.shadowMap.Delete()
		sh.shadowMap = nil
	}
	if sh.shader != nil {
		sh.shader.Delete()
	}
}

// SetViewport records the window size restored after the depth pass.
func (sh *Shadow) SetViewport(width, height int) {
	sh.width, sh.height = width, height
}
