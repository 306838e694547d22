// Package scene turns generated terrain into a list of drawable nodes with
// materials, plus the light and background the renderer needs.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"hex-island/internal/mesh"
	"hex-island/internal/terrain"
)

// Textures holds GPU texture handles by surface. A zero handle means the
// surface is drawn untextured.
type Textures struct {
	Dirt, Dirt2, Grass, Sand, Stone, Water uint32
}

// ForBand returns the texture used by band b.
func (t Textures) ForBand(b terrain.Band) uint32 {
	switch b {
	case terrain.BandStone:
		return t.Stone
	case terrain.BandDirt:
		return t.Dirt
	case terrain.BandGrass:
		return t.Grass
	case terrain.BandSand:
		return t.Sand
	case terrain.BandDirt2:
		return t.Dirt2
	}
	return 0
}

// Material describes how a node is shaded. Colors are linear.
type Material struct {
	Color        Color
	Map          uint32 // albedo texture
	RoughnessMap uint32
	Roughness    float32
	Metalness    float32
	EnvIntensity float32
	Transmission float32
	Thickness    float32
	IOR          float32
	FlatShading  bool
	DoubleSided  bool
	Transparent  bool

	CastShadow    bool
	ReceiveShadow bool
}

// Node is a mesh in world space with its material.
type Node struct {
	Name     string
	Mesh     *mesh.Fragment
	Material Material
}

// PointLight is a light with inverse square falloff cut off at Range.
type PointLight struct {
	Position  mgl32.Vec3
	Color     Color
	Intensity float32
	Range     float32
}

// Scene is everything the renderer draws for one island.
type Scene struct {
	Background Color // sRGB
	Light      PointLight
	Nodes      []Node
}

// Opaque returns the nodes drawn in the first pass.
func (s *Scene) Opaque() []Node {
	out := make([]Node, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		if !n.Material.Transparent {
			out = append(out, n)
		}
	}
	return out
}

// ShadowCasters returns the nodes drawn into the shadow map.
func (s *Scene) ShadowCasters() []Node {
	var out []Node
	for _, n := range s.Nodes {
		if n.Material.CastShadow {
			out = append(out, n)
		}
	}
	return out
}

// ShadowBounds returns a sphere enclosing every node that casts or receives
// shadows. ok is false when there is none.
func (s *Scene) ShadowBounds() (center mgl32.Vec3, radius float32, ok bool) {
	var lo, hi mgl32.Vec3
	for _, n := range s.Nodes {
		if (!n.Material.CastShadow && !n.Material.ReceiveShadow) || n.Mesh.Empty() {
			continue
		}
		nlo, nhi := n.Mesh.Bounds()
		if !ok {
			lo, hi, ok = nlo, nhi, true
			continue
		}
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], nlo[i])
			hi[i] = max(hi[i], nhi[i])
		}
	}
	if !ok {
		return mgl32.Vec3{}, 0, false
	}
	return lo.Add(hi).Mul(0.5), hi.Sub(lo).Len() / 2, true
}

// Transparent returns the blended nodes, drawn after the opaque ones.
func (s *Scene) Transparent() []Node {
	var out []Node
	for _, n := range s.Nodes {
		if n.Material.Transparent {
			out = append(out, n)
		}
	}
	return out
}

const (
	seaRadius   = 17
	wallRadius  = 17.1
	floorRadius = 18.5
	ringSegs    = 50
)

var (
	background = MustHex("#FFEECC")
	lightColor = MustHex("#FFCB8E")
	seaColor   = MustHex("#55aaff")
	white      = Color{1, 1, 1}
)

// Assemble builds the scene for t. clouds may be nil. Bands and clouds with
// no geometry are left out.
func Assemble(t *terrain.Terrain, tex Textures, clouds *mesh.Fragment, maxHeight float32) *Scene {
	s := &Scene{
		Background: background,
		Light: PointLight{
			Position:  mgl32.Vec3{10, 20, 10},
			Color:     lightColor.Linear().Linear(),
			Intensity: 80,
			Range:     200,
		},
	}

	for _, b := range terrain.Bands() {
		bm := t.Band(b)
		if bm.Mesh.Empty() {
			continue
		}
		s.Nodes = append(s.Nodes, Node{
			Name: b.String(),
			Mesh: bm.Mesh,
			Material: Material{
				Color:         white,
				Map:           tex.ForBand(b),
				Roughness:     1,
				EnvIntensity:  0.135,
				FlatShading:   true,
				CastShadow:    true,
				ReceiveShadow: true,
			},
		})
	}

	s.Nodes = append(s.Nodes,
		Node{
			Name: "sea",
			Mesh: mesh.Cylinder(seaRadius, seaRadius, maxHeight*0.2, ringSegs, 1, false).
				Translate(0, maxHeight*0.1, 0),
			Material: Material{
				Color:        seaColor.Linear().Scale(3),
				RoughnessMap: tex.Water,
				Roughness:    1,
				Metalness:    0.025,
				EnvIntensity: 0.2,
				Transmission: 1,
				Thickness:    1.5,
				IOR:          4.1,
				Transparent:  true,
			},
		},
		Node{
			Name: "wall",
			Mesh: mesh.Cylinder(wallRadius, wallRadius, maxHeight*0.25, ringSegs, 1, true).
				Translate(0, maxHeight*0.125, 0),
			Material: Material{
				Color:         white,
				Map:           tex.Dirt,
				Roughness:     1,
				EnvIntensity:  0.2,
				DoubleSided:   true,
				ReceiveShadow: true,
			},
		},
		Node{
			Name: "floor",
			Mesh: mesh.Cylinder(floorRadius, floorRadius, maxHeight*0.1, ringSegs, 1, false).
				Translate(0, -maxHeight*0.05, 0),
			Material: Material{
				Color:         white,
				Map:           tex.Dirt,
				Roughness:     1,
				EnvIntensity:  0.2,
				DoubleSided:   true,
				ReceiveShadow: true,
			},
		},
	)

	if !clouds.Empty() {
		s.Nodes = append(s.Nodes, Node{
			Name: "clouds",
			Mesh: clouds,
			Material: Material{
				Color:        white,
				Roughness:    1,
				EnvIntensity: 0.75,
				FlatShading:  true,
			},
		})
	}
	return s
}
