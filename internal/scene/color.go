package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGB triple. Colors parsed from hex strings are sRGB encoded;
// Linear converts them for lighting math.
type Color struct {
	R, G, B float32
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float32(v>>16&0xFF) / 255,
		G: float32(v>>8&0xFF) / 255,
		B: float32(v&0xFF) / 255,
	}, nil
}

// MustHex is ParseHexColor for constants; it panics on malformed input.
func MustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Linear converts an sRGB encoded color to linear light.
func (c Color) Linear() Color {
	return Color{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)}
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// Vec3 returns the color as a shader uniform.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

func srgbToLinear(v float32) float32 {
	if v < 0.04045 {
		return v * 0.0773993808
	}
	return float32(math.Pow(float64(v)*0.9478672986+0.0521327014, 2.4))
}
