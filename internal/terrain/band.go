package terrain

import "math"

// Band is the terrain material of a tile, chosen from its height.
type Band uint8

const (
	BandStone Band = iota // above 0.8 of max height
	BandDirt              // above 0.7
	BandGrass             // above 0.5
	BandSand              // above 0.3
	BandDirt2             // above 0
)

// BandCount is the number of bands; every Terrain carries one mesh per band.
const BandCount = 5

var bandNames = [BandCount]string{"stone", "dirt", "grass", "sand", "dirt2"}

// bandFloors are the exclusive lower bounds as fractions of max height,
// in the order bands are checked.
var bandFloors = [BandCount]float64{0.8, 0.7, 0.5, 0.3, 0}

// Bands returns every band from the highest threshold to the lowest.
func Bands() []Band {
	return []Band{BandStone, BandDirt, BandGrass, BandSand, BandDirt2}
}

// String returns the band name, which is also its texture name.
func (b Band) String() string {
	if int(b) < len(bandNames) {
		return bandNames[b]
	}
	return "unknown"
}

// Decoration is the kind of prop a band may spawn on its tiles.
type Decoration uint8

const (
	DecorationNone Decoration = iota
	DecorationRock
	DecorationTree
)

func (d Decoration) String() string {
	switch d {
	case DecorationRock:
		return "rock"
	case DecorationTree:
		return "tree"
	}
	return "none"
}

// Decoration returns the prop that may spawn on tiles of this band.
func (b Band) Decoration() Decoration {
	switch b {
	case BandStone, BandSand:
		return DecorationRock
	case BandDirt:
		return DecorationTree
	}
	return DecorationNone
}

// Classifier buckets heights into bands using fixed fractions of MaxHeight.
type Classifier struct {
	MaxHeight float64
}

// Floor returns the exclusive lower bound of the band.
func (c Classifier) Floor(b Band) float64 {
	return bandFloors[b] * c.MaxHeight
}

// Classify returns the band of height h. Bands are checked strictly from the
// highest floor down, so a height equal to a floor falls into the band below.
// Heights at or below zero have no band.
func (c Classifier) Classify(h float64) (Band, bool) {
	for _, b := range Bands() {
		if h > c.Floor(b) {
			return b, true
		}
	}
	return 0, false
}

// Height turns a noise sample in [-1, 1] into a terrain height in
// [0, maxHeight]. The remapped value is raised to exponent to bias the
// island towards low ground.
func Height(sample, exponent, maxHeight float64) float64 {
	n := (sample + 1) * 0.5
	n = math.Max(0, math.Min(1, n))
	return math.Pow(n, exponent) * maxHeight
}
