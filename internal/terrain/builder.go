package terrain

import (
	"hex-island/internal/decor"
	"hex-island/internal/mesh"
	"hex-island/internal/profiling"
)

// Placement decides which band mesh receives a decoration.
type Placement uint8

const (
	// PlacementReference reproduces the reference island: rocks always join
	// the stone mesh and trees the grass mesh, whatever tile spawned them.
	PlacementReference Placement = iota
	// PlacementNatural puts a decoration in the mesh of the tile it stands on.
	PlacementNatural
)

// Config holds terrain generation parameters.
type Config struct {
	Radius              int     // tiles are generated for col, row in [-Radius, Radius]
	MaxHeight           float64 // height of a tile at noise sample 1
	IslandRadius        float64 // tiles further than this from the origin are skipped
	NoiseScale          float64 // tile coordinate to noise space
	HeightExponent      float64 // >1 flattens the island
	DecorationThreshold float64 // a decoration spawns when a draw exceeds this
	Placement           Placement
}

// DefaultConfig returns the reference island parameters.
func DefaultConfig() Config {
	return Config{
		Radius:              10,
		MaxHeight:           10,
		IslandRadius:        16,
		NoiseScale:          0.1,
		HeightExponent:      1.5,
		DecorationThreshold: 0.8,
		Placement:           PlacementReference,
	}
}

// BandMesh is the finished geometry of one band.
type BandMesh struct {
	Band        Band
	Hexes       int // hex prisms merged into Mesh
	Decorations int // rocks and trees merged into Mesh
	Mesh        *mesh.Fragment
}

// Fragments returns how many fragments were merged into the band mesh.
func (m *BandMesh) Fragments() int {
	return m.Hexes + m.Decorations
}

// Terrain is the output of one generation pass. It always carries one
// BandMesh per band, some of which may be empty.
type Terrain struct {
	Bands   [BandCount]*BandMesh
	Tiles   int // tiles inside the island silhouette that received a hex
	Skipped int // tiles outside the silhouette or without a band
}

// Band returns the mesh of band b.
func (t *Terrain) Band(b Band) *BandMesh {
	return t.Bands[b]
}

// Fragments returns the total number of fragments over all bands.
func (t *Terrain) Fragments() int {
	n := 0
	for _, m := range t.Bands {
		n += m.Fragments()
	}
	return n
}

// Builder turns a noise field into per-band meshes.
type Builder struct {
	cfg        Config
	classifier Classifier
	rng        decor.Rand
	props      *decor.Factory
}

// NewBuilder creates a builder. rng drives both the decoration draws and
// the decoration shapes; it is independent of the noise field.
func NewBuilder(cfg Config, rng decor.Rand) *Builder {
	return &Builder{
		cfg:        cfg,
		classifier: Classifier{MaxHeight: cfg.MaxHeight},
		rng:        rng,
		props:      decor.NewFactory(rng),
	}
}

// Classifier returns the height classifier the builder uses.
func (b *Builder) Classifier() Classifier {
	return b.classifier
}

// accumulator owns the in-progress batches for one pass.
type accumulator struct {
	batches [BandCount]*mesh.Batch
	hexes   [BandCount]int
	props   [BandCount]int
}

func newAccumulator(capacity int) *accumulator {
	acc := &accumulator{}
	for i := range acc.batches {
		acc.batches[i] = mesh.NewBatch(capacity)
	}
	return acc
}

// Generate runs one full pass over the tile grid.
func (b *Builder) Generate(noise Sampler) *Terrain {
	defer profiling.Track("terrain.Generate")()

	r := b.cfg.Radius
	side := 2*r + 1
	acc := newAccumulator(side * side / BandCount)
	out := &Terrain{}

	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			pos := TileToPosition(i, j)
			if float64(pos.Len()) > b.cfg.IslandRadius {
				out.Skipped++
				continue
			}

			sample := noise.Sample(float64(i)*b.cfg.NoiseScale, float64(j)*b.cfg.NoiseScale)
			height := Height(sample, b.cfg.HeightExponent, b.cfg.MaxHeight)
			band, ok := b.classifier.Classify(height)
			if !ok {
				out.Skipped++
				continue
			}

			h := float32(height)
			hex := mesh.Cylinder(1, 1, h, 6, 1, false).Translate(pos.X(), h*0.5, pos.Y())
			acc.batches[band].Add(hex)
			acc.hexes[band]++
			out.Tiles++

			kind := band.Decoration()
			if kind == DecorationNone || b.rng.Float64() <= b.cfg.DecorationThreshold {
				continue
			}
			var prop *mesh.Fragment
			switch kind {
			case DecorationRock:
				prop = b.props.RockCluster(h, pos)
			case DecorationTree:
				prop = b.props.Tree(h, pos)
			}
			target := b.placementBand(band, kind)
			acc.batches[target].Add(prop)
			acc.props[target]++
		}
	}

	for _, band := range Bands() {
		out.Bands[band] = &BandMesh{
			Band:        band,
			Hexes:       acc.hexes[band],
			Decorations: acc.props[band],
			Mesh:        acc.batches[band].Finalize(),
		}
	}
	return out
}

func (b *Builder) placementBand(tile Band, kind Decoration) Band {
	if b.cfg.Placement == PlacementNatural {
		return tile
	}
	if kind == DecorationTree {
		return BandGrass
	}
	return BandStone
}

// Clouds builds the cloud cluster from the builder's random source.
func (b *Builder) Clouds() *mesh.Fragment {
	defer profiling.Track("terrain.Clouds")()
	return b.props.CloudCluster()
}
