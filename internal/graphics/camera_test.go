package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"hex-island/internal/scene"
)

var startPos = mgl32.Vec3{-17, 31, 33}

func newTestCamera() *OrbitCamera {
	return NewOrbitCamera(startPos, mgl32.Vec3{}, 45, 900, 600)
}

func TestOrbitCameraStartPose(t *testing.T) {
	c := newTestCamera()
	if !c.Position().ApproxEqualThreshold(startPos, 1e-3) {
		t.Errorf("Position() = %v, want %v", c.Position(), startPos)
	}
	if math.Abs(float64(c.Distance()-startPos.Len())) > 1e-3 {
		t.Errorf("Distance() = %v, want %v", c.Distance(), startPos.Len())
	}
	if c.AspectRatio != 1.5 {
		t.Errorf("AspectRatio = %v, want 1.5", c.AspectRatio)
	}
}

func TestOrbitCameraDampedRotation(t *testing.T) {
	c := newTestCamera()
	start := c.Position()
	c.Rotate(100, 0)

	c.Update(0.05)
	first := c.Position()
	if first.ApproxEqualThreshold(start, 1e-4) {
		t.Fatalf("camera did not move after a drag")
	}
	// the orbit keeps the distance and height
	if math.Abs(float64(first.Len()-start.Len())) > 1e-3 || math.Abs(float64(first.Y()-start.Y())) > 1e-3 {
		t.Errorf("horizontal drag changed distance or height: %v -> %v", start, first)
	}

	// each step applies less than the one before
	step1 := first.Sub(start).Len()
	c.Update(0.05)
	step2 := c.Position().Sub(first).Len()
	if step2 >= step1 {
		t.Errorf("damped steps should shrink: %v then %v", step1, step2)
	}
}

func TestOrbitCameraFullDampingAppliesAtOnce(t *testing.T) {
	c := newTestCamera()
	// a full viewport height of drag is one turn
	c.Rotate(600, 0)
	c.Update(1)
	if !c.Position().ApproxEqualThreshold(startPos, 1e-2) {
		t.Errorf("one full turn should return to the start, got %v", c.Position())
	}
	before := c.Position()
	c.Update(1)
	if !c.Position().ApproxEqualThreshold(before, 1e-5) {
		t.Errorf("no pending motion should remain")
	}
}

func TestOrbitCameraPolarClamp(t *testing.T) {
	c := newTestCamera()
	c.Rotate(0, 10000)
	c.Update(1)
	p := c.Position()
	if p.Y() > c.Distance() || p.Y() < c.Distance()*0.999 {
		t.Errorf("dragging down past the pole should stop at the top, got %v", p)
	}
}

func TestOrbitCameraDolly(t *testing.T) {
	c := newTestCamera()
	d := c.Distance()
	c.Dolly(1)
	c.Update(0.05)
	if got := c.Distance(); math.Abs(float64(got-d*0.95)) > 1e-3 {
		t.Errorf("scroll in: distance %v, want %v", got, d*0.95)
	}
	c.Dolly(-1)
	c.Update(0.05)
	if got := c.Distance(); math.Abs(float64(got-d)) > 1e-3 {
		t.Errorf("scroll out: distance %v, want %v", got, d)
	}
	for i := 0; i < 500; i++ {
		c.Dolly(1)
		c.Update(1)
	}
	if c.Distance() != c.MinDistance {
		t.Errorf("distance should clamp to %v, got %v", c.MinDistance, c.Distance())
	}
}

func TestOrbitCameraViewLooksAtTarget(t *testing.T) {
	c := newTestCamera()
	v := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	// the target sits on the view axis in front of the camera
	if math.Abs(float64(v.X())) > 1e-3 || math.Abs(float64(v.Y())) > 1e-3 || v.Z() >= 0 {
		t.Errorf("target in view space = %v", v)
	}
	c.SetViewport(0, 10)
	if c.AspectRatio != 1.5 {
		t.Errorf("a zero sized viewport must be ignored")
	}
}

func TestEnvironmentColors(t *testing.T) {
	sky, ground := EnvironmentColors(scene.MustHex("#FFEECC"))
	if sky.X() < 0.99 || sky.Z() >= sky.Y() {
		t.Errorf("sky should be the linear background, got %v", sky)
	}
	if !ground.ApproxEqual(sky.Mul(groundShade)) {
		t.Errorf("ground = %v, want %v", ground, sky.Mul(groundShade))
	}
}
