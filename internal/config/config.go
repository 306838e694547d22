package config

import "sync"

// RenderSettings holds values the viewer reads every frame and that may be
// changed while the window is open.
type RenderSettings struct {
	mu           sync.RWMutex
	fpsLimit     int // 0 means uncapped
	orbitDamping float32
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:     0,
	orbitDamping: 0.05,
}

// GetFPSLimit returns the frame cap, 0 when uncapped.
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 10 {
		limit = 10
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetOrbitDamping returns the fraction of the pending orbit motion applied per frame.
func GetOrbitDamping() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.orbitDamping
}

// SetOrbitDamping sets the orbit damping factor, clamped to (0, 1].
func SetOrbitDamping(damping float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if damping < 0.01 {
		damping = 0.01
	}
	if damping > 1 {
		damping = 1
	}

	globalRenderSettings.orbitDamping = damping
}
