package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"hex-island/internal/config"
	"hex-island/internal/mesh"
	"hex-island/internal/terrain"
)

// island is the generated geometry, before it is bound to textures.
type island struct {
	terrain *terrain.Terrain
	clouds  *mesh.Fragment
}

// buildIsland runs generation with the seeds from conf. Decorations and
// clouds share one random stream, drawn in that order.
func buildIsland(conf config.UserConfig, noiseSeed, decorSeed int64, log *slog.Logger) (island, error) {
	tc, err := conf.TerrainConfig()
	if err != nil {
		return island{}, err
	}
	noise, err := terrain.NewSampler(conf.Terrain.Noise, noiseSeed)
	if err != nil {
		return island{}, fmt.Errorf("noise: %w", err)
	}

	b := terrain.NewBuilder(tc, rand.New(rand.NewSource(decorSeed)))
	t := b.Generate(noise)
	clouds := b.Clouds()

	cls := b.Classifier()
	for _, band := range terrain.Bands() {
		m := t.Band(band)
		log.Info("Band generated.",
			"band", band.String(),
			"floor", cls.Floor(band),
			"hexes", m.Hexes,
			"decorations", m.Decorations,
			"vertices", m.Mesh.VertexCount(),
			"fingerprint", fmt.Sprintf("%016x", m.Mesh.Fingerprint()))
	}
	log.Info("Island generated.",
		"tiles", t.Tiles,
		"skipped", t.Skipped,
		"cloud_vertices", clouds.VertexCount(),
		"noise", conf.Terrain.Noise,
		"noise_seed", noiseSeed,
		"decoration_seed", decorSeed)
	return island{terrain: t, clouds: clouds}, nil
}
