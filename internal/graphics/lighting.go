package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"hex-island/internal/scene"
)

// groundShade darkens the background for light arriving from below the horizon.
const groundShade = 0.35

// EnvironmentColors returns the linear sky and ground radiance of the
// hemisphere that stands in for an environment map. Both derive from the
// scene background.
func EnvironmentColors(background scene.Color) (sky, ground mgl32.Vec3) {
	sky = background.Linear().Vec3()
	return sky, sky.Mul(groundShade)
}

// SetLighting uploads the camera, light and environment uniforms shared by
// the lit shaders.
func SetLighting(sh *Shader, s *scene.Scene, view, proj mgl32.Mat4, eye mgl32.Vec3) {
	sh.SetMatrix4("view", view)
	sh.SetMatrix4("proj", proj)
	sh.SetVector3("eye", eye)

	sh.SetVector3("lightPos", s.Light.Position)
	sh.SetVector3("lightColor", s.Light.Color.Vec3())
	sh.SetFloat("lightIntensity", s.Light.Intensity)
	sh.SetFloat("lightRange", s.Light.Range)

	sky, ground := EnvironmentColors(s.Background)
	sh.SetVector3("skyColor", sky)
	sh.SetVector3("groundColor", ground)
}
