package layout

import (
	"math"
	"time"

	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"

	"physics-sim/internal/physics"
)

// Perlin parameters: alpha is the per-octave amplitude falloff, beta the frequency gain.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	// noiseStep keeps samples off the integer lattice, where Perlin noise is always zero.
	noiseStep = 0.37
)

// goldenAngle spaces cloud bodies evenly around the center (sunflower pattern).
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Spawn is one body to be added to a world.
type Spawn struct {
	Position r2.Vec
	Velocity r2.Vec
	Radius   float64
}

// GridOptions controls a rectangular stack of bodies.
// Origin is the center of the bottom-left body; Spacing is the distance between centers.
// Jitter is the maximum noise offset applied to each axis. Seed == 0 uses a time-based seed.
type GridOptions struct {
	Origin  r2.Vec
	Columns int
	Rows    int
	Spacing float64
	Radius  float64
	Jitter  float64
	Seed    int64
}

// DefaultGridOptions returns a 10x5 stack of radius 8 bodies near the floor of the default world.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Origin:  r2.Vec{X: 60, Y: 20},
		Columns: 10,
		Rows:    5,
		Spacing: 20,
		Radius:  8,
		Jitter:  2,
	}
}

// CloudOptions controls a disc of bodies for radial mode.
// Bodies are spread over a disc of radius Spread around Center with radii between MinRadius
// and MaxRadius chosen by noise. Swirl is the tangential speed given to the outermost body,
// scaled linearly toward zero at the center.
type CloudOptions struct {
	Center    r2.Vec
	Count     int
	Spread    float64
	MinRadius float64
	MaxRadius float64
	Swirl     float64
	Seed      int64
}

// DefaultCloudOptions returns 40 small bodies slowly orbiting the middle of the default world.
func DefaultCloudOptions() CloudOptions {
	return CloudOptions{
		Center:    r2.Vec{X: 200, Y: 150},
		Count:     40,
		Spread:    100,
		MinRadius: 1,
		MaxRadius: 4,
		Swirl:     30,
	}
}

// Grid builds Columns x Rows bodies at rest, each nudged by up to Jitter on both axes.
func Grid(opts GridOptions) []Spawn {
	if opts.Columns <= 0 || opts.Rows <= 0 {
		return nil
	}
	if opts.Radius <= 0 {
		opts.Radius = physics.MinRadius
	}
	if opts.Spacing <= 0 {
		opts.Spacing = 2 * opts.Radius
	}
	if opts.Jitter < 0 {
		opts.Jitter = 0
	}
	noise := newNoise(opts.Seed)

	out := make([]Spawn, 0, opts.Columns*opts.Rows)
	for row := 0; row < opts.Rows; row++ {
		for col := 0; col < opts.Columns; col++ {
			nx := (float64(col) + 0.5) * noiseStep
			ny := (float64(row) + 0.5) * noiseStep
			offset := r2.Vec{
				X: noise.sample(nx, ny) * opts.Jitter,
				Y: noise.sample(nx+101, ny+101) * opts.Jitter,
			}
			pos := r2.Vec{
				X: opts.Origin.X + float64(col)*opts.Spacing,
				Y: opts.Origin.Y + float64(row)*opts.Spacing,
			}
			out = append(out, Spawn{Position: r2.Add(pos, offset), Radius: opts.Radius})
		}
	}
	return out
}

// Cloud builds Count bodies on a sunflower spiral around Center, swirling counter-clockwise.
func Cloud(opts CloudOptions) []Spawn {
	if opts.Count <= 0 {
		return nil
	}
	if opts.MinRadius <= 0 {
		opts.MinRadius = physics.MinRadius
	}
	if opts.MaxRadius < opts.MinRadius {
		opts.MaxRadius = opts.MinRadius
	}
	if opts.Spread < 0 {
		opts.Spread = 0
	}
	noise := newNoise(opts.Seed)

	out := make([]Spawn, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		frac := math.Sqrt((float64(i) + 0.5) / float64(opts.Count))
		angle := float64(i) * goldenAngle
		dir := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		tangent := r2.Vec{X: -dir.Y, Y: dir.X}

		// Map noise from [-1, 1] to [MinRadius, MaxRadius].
		n := (noise.sample(float64(i)*noiseStep+0.5, 7.5) + 1) / 2
		radius := opts.MinRadius + n*(opts.MaxRadius-opts.MinRadius)

		out = append(out, Spawn{
			Position: r2.Add(opts.Center, r2.Scale(frac*opts.Spread, dir)),
			Velocity: r2.Scale(frac*opts.Swirl, tangent),
			Radius:   radius,
		})
	}
	return out
}

// Apply adds every spawn to w as a perfectly elastic body.
func Apply(w *physics.World, spawns []Spawn) {
	for _, s := range spawns {
		w.Spawn(s.Position, s.Velocity, s.Radius)
	}
}

type noiseField struct {
	p *perlin.Perlin
}

func newNoise(seed int64) noiseField {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return noiseField{p: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)}
}

// sample returns fractal Perlin noise clamped to [-1, 1].
func (n noiseField) sample(x, y float64) float64 {
	v := n.p.Noise2D(x, y)
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
