package graphics

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShadowMapSize is the edge length of the depth texture, in texels.
const ShadowMapSize = 512

const (
	minShadowNear = 0.5
	// caps the frustum at about 163 degrees when the light sits inside the bounds
	maxShadowSine = 0.99
)

// LightSpace returns the projection * view matrix of a square perspective
// frustum looking from light at the sphere (center, radius) and just
// enclosing it.
func LightSpace(light, center mgl32.Vec3, radius float32) mgl32.Mat4 {
	dir := center.Sub(light)
	dist := dir.Len()
	if dist < 1e-6 {
		center = light.Sub(mgl32.Vec3{0, 1, 0})
		dir, dist = center.Sub(light), 1
	}

	up := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(dir.Normalize().Dot(up))) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}

	sine := min(radius/dist, maxShadowSine)
	fov := 2 * float32(math.Asin(float64(sine)))
	near := max(dist-radius, minShadowNear)
	far := dist + radius

	return mgl32.Perspective(fov, 1, near, far).Mul4(mgl32.LookAtV(light, center, up))
}

// ShadowMap is a depth-only framebuffer sampled with hardware depth
// comparison.
type ShadowMap struct {
	fbo, depth uint32
	size       int32
}

// NewShadowMap allocates a size x size depth texture and its framebuffer.
func NewShadowMap(size int32) (*ShadowMap, error) {
	sm := &ShadowMap{size: size}

	gl.GenTextures(1, &sm.depth)
	gl.BindTexture(gl.TEXTURE_2D, sm.depth)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, size, size, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	// outside the map counts as lit
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &sm.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.depth, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		sm.Delete()
		return nil, fmt.Errorf("shadow framebuffer incomplete: 0x%x", status)
	}
	return sm, nil
}

// Begin redirects drawing into the depth map and clears it.
func (sm *ShadowMap) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.fbo)
	gl.Viewport(0, 0, sm.size, sm.size)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// End restores the default framebuffer with a width x height viewport.
func (sm *ShadowMap) End(width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Texture returns the depth texture handle.
func (sm *ShadowMap) Texture() uint32 {
	return sm.depth
}

func (sm *ShadowMap) Delete() {
	if sm.fbo != 0 {
		gl.DeleteFramebuffers(1, &sm.fbo)
		sm.fbo = 0
	}
	if sm.depth != 0 {
		gl.DeleteTextures(1, &sm.depth)
		sm.depth = 0
	}
}
