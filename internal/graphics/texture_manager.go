package graphics

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"hex-island/internal/scene"
)

// TextureCache loads textures from a directory once and hands out the same
// GL handle for repeated requests.
type TextureCache struct {
	dir      string
	load     func(path string) (uint32, error)
	mu       sync.RWMutex
	textures map[string]uint32
}

// NewTextureCache creates a cache reading files from dir.
func NewTextureCache(dir string) *TextureCache {
	return &TextureCache{
		dir: dir,
		load: func(path string) (uint32, error) {
			tex, _, _, err := LoadTexture(path)
			return tex, err
		},
		textures: make(map[string]uint32),
	}
}

// Get returns a cached texture ID for the given file name.
// If the texture is already loaded, it returns the cached ID.
// Otherwise, it loads the texture from disk and caches it.
func (c *TextureCache) Get(name string) (uint32, error) {
	c.mu.RLock()
	if tex, ok := c.textures[name]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[name]; ok {
		return tex, nil
	}

	tex, err := c.load(filepath.Join(c.dir, name))
	if err != nil {
		return 0, err
	}

	c.textures[name] = tex
	return tex, nil
}

// Len returns the number of loaded textures.
func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}

// Dispose deletes every loaded texture.
func (c *TextureCache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, tex := range c.textures {
		gl.DeleteTextures(1, &tex)
		delete(c.textures, name)
	}
}

// Island texture files, relative to the texture directory.
const (
	DirtTexture  = "dirt.png"
	Dirt2Texture = "dirt2.jpg"
	GrassTexture = "grass.jpg"
	SandTexture  = "sand.jpg"
	StoneTexture = "stone.png"
	WaterTexture = "water.jpg"
)

// LoadIslandTextures loads every texture the island needs. Any failure aborts
// the whole set.
func LoadIslandTextures(c *TextureCache) (scene.Textures, error) {
	var tex scene.Textures
	slots := []struct {
		name string
		dst  *uint32
	}{
		{DirtTexture, &tex.Dirt},
		{Dirt2Texture, &tex.Dirt2},
		{GrassTexture, &tex.Grass},
		{SandTexture, &tex.Sand},
		{StoneTexture, &tex.Stone},
		{WaterTexture, &tex.Water},
	}
	for _, s := range slots {
		id, err := c.Get(s.name)
		if err != nil {
			return scene.Textures{}, fmt.Errorf("load texture %s: %w", s.name, err)
		}
		*s.dst = id
	}
	return tex, nil
}
