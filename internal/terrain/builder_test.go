package terrain

import (
	"math/rand"
	"testing"
)

// islandTiles is the number of tiles with |position| <= 16 for radius 10.
const islandTiles = 301

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func countIslandTiles(radius int, cutoff float32) int {
	n := 0
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if TileToPosition(i, j).Len() <= cutoff {
				n++
			}
		}
	}
	return n
}

func assertOnlyBand(t *testing.T, terr *Terrain, want Band, hexes int) {
	t.Helper()
	for _, b := range Bands() {
		m := terr.Band(b)
		if m.Band != b {
			t.Errorf("band slot %v holds mesh for %v", b, m.Band)
		}
		if b == want {
			if m.Hexes != hexes {
				t.Errorf("%v hexes: got %d, want %d", b, m.Hexes, hexes)
			}
			continue
		}
		if m.Fragments() != 0 || !m.Mesh.Empty() {
			t.Errorf("%v should be empty, got %d fragments", b, m.Fragments())
		}
	}
}

func TestIslandTileCount(t *testing.T) {
	if got := countIslandTiles(10, 16); got != islandTiles {
		t.Fatalf("island tiles for radius 10: got %d, want %d", got, islandTiles)
	}
}

func TestGenerateConstantHighNoiseIsAllStone(t *testing.T) {
	b := NewBuilder(DefaultConfig(), fixedRand(0))
	terr := b.Generate(Constant(1))

	assertOnlyBand(t, terr, BandStone, islandTiles)
	stone := terr.Band(BandStone)
	if stone.Fragments() != islandTiles {
		t.Errorf("stone fragments: got %d, want %d", stone.Fragments(), islandTiles)
	}
	if got, want := stone.Mesh.TriangleCount(), islandTiles*24; got != want {
		t.Errorf("stone triangles: got %d, want %d", got, want)
	}
	if terr.Tiles != islandTiles || terr.Skipped != 21*21-islandTiles {
		t.Errorf("tiles=%d skipped=%d", terr.Tiles, terr.Skipped)
	}
}

func TestGenerateMidNoiseIsAllSand(t *testing.T) {
	// remapped 0.6 -> 0.6^1.5 * 10 ~ 4.65, above the sand floor of 3
	b := NewBuilder(DefaultConfig(), fixedRand(0))
	terr := b.Generate(Constant(0.2))
	assertOnlyBand(t, terr, BandSand, islandTiles)
}

func TestGenerateZeroNoiseIsSand(t *testing.T) {
	// remapped 0.5 -> 0.5^1.5 * 10 ~ 3.54
	b := NewBuilder(DefaultConfig(), fixedRand(0))
	terr := b.Generate(Constant(0))
	assertOnlyBand(t, terr, BandSand, islandTiles)
}

func TestGenerateLowestNoiseProducesNothing(t *testing.T) {
	b := NewBuilder(DefaultConfig(), fixedRand(0.99))
	terr := b.Generate(Constant(-1))
	if terr.Tiles != 0 || terr.Fragments() != 0 {
		t.Errorf("height 0 must not classify: tiles=%d fragments=%d", terr.Tiles, terr.Fragments())
	}
	if terr.Skipped != 21*21 {
		t.Errorf("every tile should be skipped, got %d", terr.Skipped)
	}
}

func TestGenerateExcludesTilesOutsideIsland(t *testing.T) {
	b := NewBuilder(DefaultConfig(), fixedRand(0))
	terr := b.Generate(Constant(1))

	if corner := TileToPosition(10, 10); corner.Len() <= 16 {
		t.Fatalf("test assumes (10,10) is outside the island, |p|=%f", corner.Len())
	}
	for _, band := range Bands() {
		for _, p := range terr.Band(band).Mesh.Positions {
			// hex circumradius 1 around a center at most 16 away
			if d := (p.X()*p.X() + p.Z()*p.Z()); d > 17.001*17.001 {
				t.Fatalf("%v has a vertex %v outside the island", band, p)
			}
		}
	}
}

func TestTreesJoinGrassMesh(t *testing.T) {
	// remapped 0.82 -> ~7.43, a dirt tile; every draw spawns a tree
	b := NewBuilder(DefaultConfig(), fixedRand(0.9))
	terr := b.Generate(Constant(0.64))

	dirt := terr.Band(BandDirt)
	grass := terr.Band(BandGrass)
	if dirt.Hexes != islandTiles || dirt.Decorations != 0 {
		t.Errorf("dirt: hexes=%d decorations=%d", dirt.Hexes, dirt.Decorations)
	}
	if grass.Hexes != 0 || grass.Decorations != islandTiles {
		t.Errorf("grass: hexes=%d decorations=%d", grass.Hexes, grass.Decorations)
	}
	if got, want := grass.Mesh.TriangleCount(), islandTiles*3*9; got != want {
		t.Errorf("grass triangles: got %d, want %d", got, want)
	}
}

func TestSandRocksJoinStoneMesh(t *testing.T) {
	b := NewBuilder(DefaultConfig(), fixedRand(0.9))
	terr := b.Generate(Constant(0.2))

	if got := terr.Band(BandStone).Decorations; got != islandTiles {
		t.Errorf("stone decorations: got %d, want %d", got, islandTiles)
	}
	if got := terr.Band(BandSand).Decorations; got != 0 {
		t.Errorf("sand decorations: got %d, want 0", got)
	}
}

func TestNaturalPlacementKeepsDecorationsOnTheirTile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Placement = PlacementNatural
	b := NewBuilder(cfg, fixedRand(0.9))
	terr := b.Generate(Constant(0.64))

	if got := terr.Band(BandDirt).Decorations; got != islandTiles {
		t.Errorf("dirt decorations: got %d, want %d", got, islandTiles)
	}
	if !terr.Band(BandGrass).Mesh.Empty() {
		t.Errorf("grass should be empty under natural placement")
	}
}

func TestDecorationThresholdIsExclusive(t *testing.T) {
	b := NewBuilder(DefaultConfig(), fixedRand(0.8))
	terr := b.Generate(Constant(1))
	if got := terr.Band(BandStone).Decorations; got != 0 {
		t.Errorf("a draw equal to the threshold must not decorate, got %d", got)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	run := func() *Terrain {
		b := NewBuilder(DefaultConfig(), rand.New(rand.NewSource(5)))
		return b.Generate(NewSimplex(42))
	}
	first := run()
	for i := 0; i < 5; i++ {
		again := run()
		for _, band := range Bands() {
			a, b := first.Band(band), again.Band(band)
			if a.Hexes != b.Hexes || a.Decorations != b.Decorations {
				t.Fatalf("run %d: %v counts differ: %d/%d vs %d/%d", i, band, a.Hexes, a.Decorations, b.Hexes, b.Decorations)
			}
			if a.Mesh.Fingerprint() != b.Mesh.Fingerprint() {
				t.Fatalf("run %d: %v geometry differs", i, band)
			}
		}
	}
	if first.Tiles != islandTiles {
		t.Errorf("simplex noise should classify every island tile, got %d", first.Tiles)
	}
}

func TestEveryIslandTileGetsOneHex(t *testing.T) {
	for _, kind := range []string{NoiseSimplex, NoisePerlin, NoiseValue} {
		noise, err := NewSampler(kind, 3)
		if err != nil {
			t.Fatal(err)
		}
		terr := NewBuilder(DefaultConfig(), rand.New(rand.NewSource(1))).Generate(noise)
		hexes := 0
		for _, m := range terr.Bands {
			hexes += m.Hexes
		}
		if hexes != terr.Tiles || terr.Tiles+terr.Skipped != 21*21 {
			t.Errorf("%s: hexes=%d tiles=%d skipped=%d", kind, hexes, terr.Tiles, terr.Skipped)
		}
	}
}

func TestCloudsUseBuilderRandom(t *testing.T) {
	b := NewBuilder(DefaultConfig(), fixedRand(0))
	if !b.Clouds().Empty() {
		t.Errorf("zero draws should give an empty cloud cluster")
	}
}

func BenchmarkGenerate(b *testing.B) {
	noise := NewSimplex(1)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewBuilder(DefaultConfig(), rng).Generate(noise)
	}
}

func TestBuilderClassifierFollowsMaxHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHeight = 20
	cls := NewBuilder(cfg, rand.New(rand.NewSource(1))).Classifier()
	if cls.MaxHeight != 20 {
		t.Fatalf("classifier MaxHeight = %v, want 20", cls.MaxHeight)
	}
	if got := cls.Floor(BandStone); got != 16 {
		t.Errorf("stone floor = %v, want 16", got)
	}
}
