package game

// Canvas is the drawing surface the game renders onto. Coordinates are grid
// cells; translating them to pixels or terminal columns is the backend's
// business.
type Canvas interface {
	DrawBlock(c Color, x, y int)
	DrawRect(c Color, x, y, w, h int)
}

type Color struct {
	R, G, B, A uint8
}

var (
	SnakeColor    = Color{R: 0, G: 204, B: 0, A: 255}
	FoodColor     = Color{R: 204, G: 0, B: 0, A: 255}
	BorderColor   = Color{R: 0, G: 0, B: 0, A: 255}
	GameOverColor = Color{R: 230, G: 0, B: 0, A: 128}
)
