package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/config"
	"gridsnake/game"
)

// Renderer draws game cells into a raylib window, scaling grid coordinates
// by the configured cell size.
type Renderer struct {
	cellSize int32
}

func NewRenderer(cellSize int) *Renderer {
	return &Renderer{cellSize: int32(cellSize)}
}

func (r *Renderer) DrawBlock(c game.Color, x, y int) {
	rl.DrawRectangle(
		int32(x)*r.cellSize,
		int32(y)*r.cellSize,
		r.cellSize,
		r.cellSize,
		toRaylib(c))
}

func (r *Renderer) DrawRect(c game.Color, x, y, w, h int) {
	rl.DrawRectangle(
		int32(x)*r.cellSize,
		int32(y)*r.cellSize,
		int32(w)*r.cellSize,
		int32(h)*r.cellSize,
		toRaylib(c))
}

func toRaylib(c game.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Run owns the raylib window and event loop: it polls arrow keys, feeds
// frame time into the game, and redraws every frame until the window
// closes. Cell size and FPS follow the live config.
func Run(g *game.Game, cfg *config.Config) error {
	settings := cfg.Settings()
	width, height := g.Size()

	rl.InitWindow(
		int32(width*settings.CellSize),
		int32(height*settings.CellSize),
		settings.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.FPS))

	r := NewRenderer(settings.CellSize)
	applied := settings

	for !rl.WindowShouldClose() {
		if key, ok := pollKey(); ok {
			if err := g.KeyPressed(key); err != nil {
				return err
			}
		}

		if err := g.Update(float64(rl.GetFrameTime())); err != nil {
			return err
		}

		if settings = cfg.Settings(); settings != applied {
			if settings.FPS != applied.FPS {
				rl.SetTargetFPS(int32(settings.FPS))
			}
			if settings.CellSize != applied.CellSize {
				r.cellSize = int32(settings.CellSize)
				rl.SetWindowSize(width*settings.CellSize, height*settings.CellSize)
			}
			applied = settings
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		g.Draw(r)
		rl.EndDrawing()
	}
	return nil
}

func pollKey() (game.Key, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		return game.KeyUp, true
	case rl.IsKeyPressed(rl.KeyDown):
		return game.KeyDown, true
	case rl.IsKeyPressed(rl.KeyLeft):
		return game.KeyLeft, true
	case rl.IsKeyPressed(rl.KeyRight):
		return game.KeyRight, true
	}
	return 0, false
}
