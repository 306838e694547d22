package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml"

	"hex-island/internal/terrain"
)

// UserConfig is the contents of config.toml. It may be serialised and is
// converted to generation parameters with TerrainConfig.
type UserConfig struct {
	Window struct {
		// Width and Height are the initial window size in screen coordinates.
		Width, Height int
		Title         string
		// VSync swaps on the display refresh when true.
		VSync bool
		// FPSLimit caps the frame rate. 0 leaves it uncapped.
		FPSLimit int
	}
	Log struct {
		// Level is one of debug, info, warn and error.
		Level string
	}
	Terrain struct {
		// Radius is the half extent of the tile grid.
		Radius       int
		MaxHeight    float64
		IslandRadius float64
		// Noise selects the height field: simplex, perlin or value.
		Noise               string
		NoiseScale          float64
		HeightExponent      float64
		DecorationThreshold float64
		// Placement is "reference" (rocks on stone, trees on grass) or "natural".
		Placement string
		// NoiseSeed and DecorationSeed fix the random streams. 0 picks a seed
		// from the clock at startup.
		NoiseSeed      int64
		DecorationSeed int64
	}
	Camera struct {
		X, Y, Z float64
		FOV     float64
		Damping float64
	}
	Assets struct {
		Textures string
		Shaders  string
	}
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Window.Width = 900
	c.Window.Height = 600
	c.Window.Title = "hex-island"
	c.Window.VSync = true
	c.Log.Level = "info"

	t := terrain.DefaultConfig()
	c.Terrain.Radius = t.Radius
	c.Terrain.MaxHeight = t.MaxHeight
	c.Terrain.IslandRadius = t.IslandRadius
	c.Terrain.Noise = terrain.NoiseSimplex
	c.Terrain.NoiseScale = t.NoiseScale
	c.Terrain.HeightExponent = t.HeightExponent
	c.Terrain.DecorationThreshold = t.DecorationThreshold
	c.Terrain.Placement = "reference"

	c.Camera.X, c.Camera.Y, c.Camera.Z = -17, 31, 33
	c.Camera.FOV = 45
	c.Camera.Damping = 0.05
	c.Assets.Textures = "assets/textures"
	c.Assets.Shaders = "assets/shaders"
	return c
}

// Load reads the configuration at path. A missing file is created with the
// default values, which are then returned.
func Load(path string) (UserConfig, error) {
	if strings.TrimSpace(path) == "" {
		return UserConfig{}, errors.New("config path must not be empty")
	}
	conf := DefaultConfig()
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, Save(path, conf)
		}
		return conf, fmt.Errorf("read config: %w", err)
	}
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &conf); err != nil {
			return conf, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Save writes c to path as TOML, creating the parent directory if needed.
func Save(path string, c UserConfig) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports the first value that cannot produce an island or a window.
func (c UserConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Terrain.Radius < 1:
		return fmt.Errorf("terrain radius %d must be at least 1", c.Terrain.Radius)
	case c.Terrain.MaxHeight <= 0:
		return fmt.Errorf("terrain max height %v must be positive", c.Terrain.MaxHeight)
	case c.Terrain.IslandRadius <= 0:
		return fmt.Errorf("terrain island radius %v must be positive", c.Terrain.IslandRadius)
	case c.Terrain.HeightExponent <= 0:
		return fmt.Errorf("terrain height exponent %v must be positive", c.Terrain.HeightExponent)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("camera fov %v must be in (0, 180)", c.Camera.FOV)
	}
	if _, err := terrain.NewSampler(c.Terrain.Noise, 0); err != nil {
		return err
	}
	if _, err := parsePlacement(c.Terrain.Placement); err != nil {
		return err
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// TerrainConfig converts the terrain section to builder parameters.
func (c UserConfig) TerrainConfig() (terrain.Config, error) {
	placement, err := parsePlacement(c.Terrain.Placement)
	if err != nil {
		return terrain.Config{}, err
	}
	return terrain.Config{
		Radius:              c.Terrain.Radius,
		MaxHeight:           c.Terrain.MaxHeight,
		IslandRadius:        c.Terrain.IslandRadius,
		NoiseScale:          c.Terrain.NoiseScale,
		HeightExponent:      c.Terrain.HeightExponent,
		DecorationThreshold: c.Terrain.DecorationThreshold,
		Placement:           placement,
	}, nil
}

// LogLevel returns the slog level named by Log.Level, info if it is unknown.
func (c UserConfig) LogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Seeds returns the noise and decoration seeds, replacing zero seeds with
// values derived from now.
func (c UserConfig) Seeds(now time.Time) (noise, decoration int64) {
	noise, decoration = c.Terrain.NoiseSeed, c.Terrain.DecorationSeed
	if noise == 0 {
		noise = now.UnixNano()
	}
	if decoration == 0 {
		decoration = now.UnixNano() ^ 0x5DEECE66D
	}
	return noise, decoration
}

// Apply copies the runtime tweakable values into the render settings.
func (c UserConfig) Apply() {
	SetFPSLimit(c.Window.FPSLimit)
	SetOrbitDamping(float32(c.Camera.Damping))
}

func parsePlacement(name string) (terrain.Placement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reference":
		return terrain.PlacementReference, nil
	case "natural":
		return terrain.PlacementNatural, nil
	}
	return 0, fmt.Errorf("unknown decoration placement %q", name)
}

func parseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return l, nil
}
