package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-sim/internal/config"
)

// Run opens the window described by win and runs the main loop. Each frame it calls update
// with the frame time in seconds, then clears the screen and calls draw.
// ESC is reserved for the terminal; close via the window button.
func Run(win config.Window, update func(dt float64), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.TargetFPS))

	for !rl.WindowShouldClose() {
		update(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
