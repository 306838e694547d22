package terrain

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler is a deterministic 2D coherent noise field with values in [-1, 1].
type Sampler interface {
	Sample(x, y float64) float64
}

// SamplerFunc adapts a plain function to a Sampler.
type SamplerFunc func(x, y float64) float64

func (f SamplerFunc) Sample(x, y float64) float64 { return f(x, y) }

// Constant returns a sampler that yields v everywhere.
func Constant(v float64) Sampler {
	return SamplerFunc(func(float64, float64) float64 { return v })
}

// Noise kinds accepted by NewSampler.
const (
	NoiseSimplex = "simplex"
	NoisePerlin  = "perlin"
	NoiseValue   = "value"
)

// NewSampler returns the noise backend registered under kind.
func NewSampler(kind string, seed int64) (Sampler, error) {
	switch kind {
	case NoiseSimplex, "":
		return NewSimplex(seed), nil
	case NoisePerlin:
		return NewPerlin(seed), nil
	case NoiseValue:
		return NewValue(seed), nil
	}
	return nil, fmt.Errorf("unknown noise kind %q", kind)
}

type simplexSampler struct {
	noise opensimplex.Noise
}

// NewSimplex returns OpenSimplex noise, the closest match to the island's
// reference look.
func NewSimplex(seed int64) Sampler {
	return simplexSampler{noise: opensimplex.New(seed)}
}

func (s simplexSampler) Sample(x, y float64) float64 {
	return clampUnit(s.noise.Eval2(x, y))
}

type perlinSampler struct {
	p *perlin.Perlin
}

// NewPerlin returns classic Perlin noise. Octave sums can leave [-1, 1], so
// samples are clamped.
func NewPerlin(seed int64) Sampler {
	return perlinSampler{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (s perlinSampler) Sample(x, y float64) float64 {
	return clampUnit(s.p.Noise2D(x, y))
}

type valueSampler struct {
	seed        int64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewValue returns lattice value noise with four octaves. It has no external
// state and is the cheapest backend.
func NewValue(seed int64) Sampler {
	return valueSampler{seed: seed, octaves: 4, persistence: 0.5, lacunarity: 2.0}
}

func (s valueSampler) Sample(x, y float64) float64 {
	return octaveNoise2D(x, y, s.seed, s.octaves, s.persistence, s.lacunarity)*2 - 1
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64-style integer hash, stable across runs for the same inputs.
func hash2(x, y, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

func latticeValue(x, y, seed int64) float64 {
	h := hash2(x, y, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)

	fx := fade(x - x0)
	fy := fade(y - y0)

	ix, iy := int64(x0), int64(y0)
	v00 := latticeValue(ix, iy, seed)
	v10 := latticeValue(ix+1, iy, seed)
	v01 := latticeValue(ix, iy+1, seed)
	v11 := latticeValue(ix+1, iy+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy) // [0,1]
}

func octaveNoise2D(x, y float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*frequency, y*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm // [0,1]
}
