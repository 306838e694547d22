package profiling

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

// Process-wide timers keyed by "subsystem.Operation". The viewer resets them
// every frame; startup phases are read once before the first frame.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
)

// Track returns a stop function that adds the elapsed time under name.
// Usage: defer profiling.Track("terrain.Generate")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// Reset clears all timers.
func Reset() {
	mu.Lock()
	clear(totals)
	clear(counts)
	mu.Unlock()
}

// Entry is one named timer.
type Entry struct {
	Name  string
	Total time.Duration
	Calls int
}

// Snapshot returns all timers, longest first.
func Snapshot() []Entry {
	mu.Lock()
	out := make([]Entry, 0, len(totals))
	for k, v := range totals {
		out = append(out, Entry{Name: k, Total: v, Calls: counts[k]})
	}
	mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Sum returns the total of every timer whose name starts with prefix.
func Sum(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var d time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			d += v
		}
	}
	return d
}

// TopN formats the n longest timers, e.g.
// "renderer.scenery:4.2ms, renderer.water:0.8ms".
func TopN(n int) string {
	entries := Snapshot()
	if n > len(entries) {
		n = len(entries)
	}
	parts := make([]string, 0, n)
	for _, e := range entries[:n] {
		parts = append(parts, e.Name+":"+e.Total.Round(100*time.Microsecond).String())
	}
	return strings.Join(parts, ", ")
}

// Log writes every timer as one record at info level.
func Log(log *slog.Logger, msg string) {
	entries := Snapshot()
	attrs := make([]any, 0, len(entries))
	for _, e := range entries {
		attrs = append(attrs, slog.Duration(e.Name, e.Total))
	}
	log.Info(msg, attrs...)
}
