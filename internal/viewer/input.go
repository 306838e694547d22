package viewer

// dragTracker turns cursor positions into deltas while the orbit button is held.
type dragTracker struct {
	dragging     bool
	lastX, lastY float64
}

func (d *dragTracker) press(x, y float64) {
	d.dragging = true
	d.lastX, d.lastY = x, y
}

func (d *dragTracker) release() {
	d.dragging = false
}

// move returns the cursor motion since the last event, ok is false when no
// drag is in progress.
func (d *dragTracker) move(x, y float64) (dx, dy float64, ok bool) {
	if !d.dragging {
		return 0, 0, false
	}
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return dx, dy, true
}

// fpsCounter reports the frame rate once per period.
type fpsCounter struct {
	frames int
	start  float64 // seconds
	period float64
}

// tick counts a frame at time now (seconds) and returns the average rate when
// a full period has elapsed.
func (c *fpsCounter) tick(now float64) (fps float64, ok bool) {
	if c.frames == 0 && c.start == 0 {
		c.start = now
	}
	c.frames++
	elapsed := now - c.start
	if elapsed < c.period {
		return 0, false
	}
	fps = float64(c.frames) / elapsed
	c.frames = 0
	c.start = now
	return fps, true
}
