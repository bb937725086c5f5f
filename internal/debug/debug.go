package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-sim/internal/config"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is the simulation state shown by the stats overlay.
type Stats struct {
	Bodies     int
	Collisions uint64
	Energy     float64
	Mode       string
	Paused     bool
}

// Lines formats s for the overlay.
func (s Stats) Lines() []string {
	mode := s.Mode
	if s.Paused {
		mode += " (paused)"
	}
	return []string{
		fmt.Sprintf("Bodies: %d", s.Bodies),
		fmt.Sprintf("Collisions: %d", s.Collisions),
		fmt.Sprintf("Energy: %.0f", s.Energy),
		"Mode: " + mode,
	}
}

// Debug draws the FPS counter, heap size and simulation stats in the top-right corner.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	frameCount   uint32
	lastLines    []string
	lastMemStats runtime.MemStats
}

// New returns a Debug overlay configured from cfg.
func New(cfg config.Debug) *Debug {
	return &Debug{ShowFPS: cfg.ShowFPS, ShowMemAlloc: cfg.ShowMem, ShowStats: cfg.ShowStats}
}

// Text returns the overlay lines for the given frame rate and stats. Heap usage is read
// only when ShowMemAlloc is set.
func (d *Debug) Text(fps int32, s Stats) []string {
	var out []string
	if d.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024)))
	}
	if d.ShowStats {
		out = append(out, s.Lines()...)
	}
	return out
}

// Draw renders the enabled overlays. Call after the world and before the terminal.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw(s Stats) {
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.lastLines == nil {
		d.lastLines = d.Text(rl.GetFPS(), s)
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lastLines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
