package render

import (
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"physics-sim/internal/input"
	"physics-sim/internal/physics"
)

const (
	// minPixelRadius keeps tiny bodies visible at any scale.
	minPixelRadius = 1.5
	aimDots        = 6
	aimDotRadius   = 1.5
	pointerRadius  = 3
)

var (
	bodyColor   = rl.NewColor(77, 77, 255, 255)
	markerColor = rl.NewColor(120, 120, 160, 160)
	wallColor   = rl.NewColor(70, 70, 70, 255)
)

// Renderer draws the world in 2D through a viewport.
type Renderer struct {
	vp        input.Viewport
	rightWall float64
}

// New returns a renderer for a world whose right wall is at rightWall.
func New(vp input.Viewport, rightWall float64) *Renderer {
	return &Renderer{vp: vp, rightWall: rightWall}
}

// Draw draws the floor and right wall, every body as an outline, and the marker with its
// aim line while it is visible. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(bodies []physics.BodyView, marker *input.Marker) {
	r.drawBounds()
	for _, b := range bodies {
		r.circle(b.Position, b.Radius, bodyColor, false)
	}
	if marker == nil || !marker.Visible {
		return
	}
	r.circle(marker.Anchor, marker.Radius, markerColor, false)
	r.circle(marker.Aim, pointerRadius/r.vp.Scale, markerColor, true)
	for _, p := range marker.Dots(aimDots) {
		r.circle(p, aimDotRadius/r.vp.Scale, markerColor, true)
	}
}

func (r *Renderer) drawBounds() {
	floorL := r.point(r2.Vec{X: 0, Y: 0})
	floorR := r.point(r2.Vec{X: r.rightWall, Y: 0})
	wallTop := r.point(r2.Vec{X: r.rightWall, Y: r.vp.WorldHeight})
	rl.DrawLineV(floorL, floorR, wallColor)
	rl.DrawLineV(floorR, wallTop, wallColor)
}

// circle draws a circle of world radius at world position p.
func (r *Renderer) circle(p r2.Vec, radius float64, col color.RGBA, filled bool) {
	c := r.point(p)
	px := math32.Max(minPixelRadius, float32(radius*r.vp.Scale))
	if filled {
		rl.DrawCircleV(c, px, col)
		return
	}
	rl.DrawCircleLines(int32(math32.Round(c.X)), int32(math32.Round(c.Y)), px, col)
}

func (r *Renderer) point(p r2.Vec) rl.Vector2 {
	x, y := r.vp.ToScreen(p)
	return rl.NewVector2(float32(x), float32(y))
}
