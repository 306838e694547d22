// Package decor builds the small props scattered over the island: rock
// clusters, trees and clouds. Every parameter comes from an injected uniform
// random source so that a scripted source reproduces the same props.
package decor

import (
	"math"

	"hex-island/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// Rand is a uniform random source in [0, 1). *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

const (
	rockMinRadius = 0.1
	rockRadiusVar = 0.3
	rockJitter    = 0.4
	rockSegments  = 7

	treeMinHeight = 1.25
	treeHeightVar = 1.0
	treeLift      = 1.0
	treeSegments  = 3

	puffSegments   = 7
	puffSpacing    = 1.85
	puffJitter     = 0.3
	cloudMaxGroups = 4
	cloudBias      = 0.45
	cloudSpreadXZ  = 20.0
	cloudMinY      = 7.0
	cloudSpreadY   = 7.0
)

// Tree cones from the bottom up: base radius and lift as a fraction of the
// shared cone height.
var treeTiers = [...]struct{ radius, lift float32 }{
	{1.5, 0},
	{1.15, 0.6},
	{0.8, 1.25},
}

// Cloud puffs in each group, left to right.
var cloudPuffs = [...]struct{ radius, x float32 }{
	{1.2, -puffSpacing},
	{1.5, 0},
	{0.9, puffSpacing},
}

// Factory creates decoration fragments from its random source.
type Factory struct {
	rng Rand
}

// NewFactory creates a factory drawing from rng.
func NewFactory(rng Rand) *Factory {
	return &Factory{rng: rng}
}

func (f *Factory) draw() float32 {
	return float32(f.rng.Float64())
}

// RockCluster places a small stone near the tile center at the tile's height.
// Draw order: x jitter, z jitter, radius.
func (f *Factory) RockCluster(height float32, pos mgl32.Vec2) *mesh.Fragment {
	px := f.draw() * rockJitter
	pz := f.draw() * rockJitter
	radius := f.draw()*rockRadiusVar + rockMinRadius

	return mesh.Sphere(radius, rockSegments, rockSegments).
		Translate(pos.X()+px, height, pos.Y()+pz)
}

// Tree stacks three cones of a shared random height above the tile.
func (f *Factory) Tree(height float32, pos mgl32.Vec2) *mesh.Fragment {
	treeHeight := f.draw()*treeHeightVar + treeMinHeight

	cones := make([]*mesh.Fragment, 0, len(treeTiers))
	for _, tier := range treeTiers {
		cone := mesh.Cylinder(0, tier.radius, treeHeight, treeSegments, 1, false)
		cone.Translate(pos.X(), height+treeHeight*tier.lift+treeLift, pos.Y())
		cones = append(cones, cone)
	}
	return mesh.Merge(cones...)
}

// CloudGroups draws how many puff groups a cloud cluster gets: 0 to 3,
// biased towards fewer.
func (f *Factory) CloudGroups() int {
	return int(math.Floor(math.Pow(f.rng.Float64(), cloudBias) * cloudMaxGroups))
}

// CloudCluster builds all clouds over the island as one fragment. The result
// is empty when the group count draws zero.
func (f *Factory) CloudCluster() *mesh.Fragment {
	count := f.CloudGroups()
	groups := make([]*mesh.Fragment, 0, count)
	for i := 0; i < count; i++ {
		puffs := make([]*mesh.Fragment, 0, len(cloudPuffs))
		for _, p := range cloudPuffs {
			puffs = append(puffs, mesh.Sphere(p.radius, puffSegments, puffSegments).
				Translate(p.x, f.draw()*puffJitter, 0))
		}
		group := mesh.Merge(puffs...)
		group.Translate(
			f.draw()*cloudSpreadXZ-cloudSpreadXZ/2,
			f.draw()*cloudSpreadY+cloudMinY,
			f.draw()*cloudSpreadXZ-cloudSpreadXZ/2,
		)
		group.RotateY(f.draw() * 2 * math.Pi)
		groups = append(groups, group)
	}
	return mesh.Merge(groups...)
}
