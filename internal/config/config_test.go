package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hex-island/internal/terrain"
)

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	cases := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{3, 10},
		{60, 60},
		{5000, 1000},
	}
	for _, c := range cases {
		SetFPSLimit(c.in)
		if got := GetFPSLimit(); got != c.want {
			t.Errorf("SetFPSLimit(%d): got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSetOrbitDampingClamps(t *testing.T) {
	defer SetOrbitDamping(GetOrbitDamping())

	SetOrbitDamping(0)
	if got := GetOrbitDamping(); got != 0.01 {
		t.Errorf("damping 0: got %v, want 0.01", got)
	}
	SetOrbitDamping(2)
	if got := GetOrbitDamping(); got != 1 {
		t.Errorf("damping 2: got %v, want 1", got)
	}
	SetOrbitDamping(0.05)
	if got := GetOrbitDamping(); got != 0.05 {
		t.Errorf("damping 0.05: got %v", got)
	}
}

func TestDefaultConfigMatchesTerrainDefaults(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	got, err := c.TerrainConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got != terrain.DefaultConfig() {
		t.Errorf("TerrainConfig() = %+v, want %+v", got, terrain.DefaultConfig())
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", c)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not written: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := DefaultConfig()
	want.Terrain.Radius = 14
	want.Terrain.Noise = terrain.NoisePerlin
	want.Terrain.Placement = "natural"
	want.Terrain.NoiseSeed = 1234
	want.Log.Level = "debug"
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
	tc, err := got.TerrainConfig()
	if err != nil {
		t.Fatal(err)
	}
	if tc.Placement != terrain.PlacementNatural || tc.Radius != 14 {
		t.Errorf("TerrainConfig() = %+v", tc)
	}
	if got.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", got.LogLevel())
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[Window\nWidth = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected a decode error")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*UserConfig){
		"radius":    func(c *UserConfig) { c.Terrain.Radius = 0 },
		"height":    func(c *UserConfig) { c.Terrain.MaxHeight = 0 },
		"island":    func(c *UserConfig) { c.Terrain.IslandRadius = -1 },
		"exponent":  func(c *UserConfig) { c.Terrain.HeightExponent = 0 },
		"noise":     func(c *UserConfig) { c.Terrain.Noise = "worley" },
		"placement": func(c *UserConfig) { c.Terrain.Placement = "random" },
		"window":    func(c *UserConfig) { c.Window.Width = 0 },
		"fov":       func(c *UserConfig) { c.Camera.FOV = 180 },
		"log":       func(c *UserConfig) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		c := DefaultConfig()
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}

func TestSeeds(t *testing.T) {
	c := DefaultConfig()
	c.Terrain.NoiseSeed = 7
	now := time.Unix(100, 0)
	noise, decoration := c.Seeds(now)
	if noise != 7 {
		t.Errorf("fixed noise seed changed: %d", noise)
	}
	if decoration == 0 || decoration == noise {
		t.Errorf("decoration seed should be derived from the clock, got %d", decoration)
	}
}

func TestApply(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	defer SetOrbitDamping(GetOrbitDamping())

	c := DefaultConfig()
	c.Window.FPSLimit = 144
	c.Camera.Damping = 0.2
	c.Apply()
	if GetFPSLimit() != 144 || GetOrbitDamping() != 0.2 {
		t.Errorf("Apply: fps=%d damping=%v", GetFPSLimit(), GetOrbitDamping())
	}
}
