package game

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	// movingPeriod is the time between automatic snake advances.
	movingPeriod = 0.1
	// restartTime is how long the game-over overlay stays up before a
	// fresh game starts.
	restartTime = 1.0

	// foodSampleFactor bounds the random half of food placement: up to
	// factor * interior-area samples before falling back to a full scan.
	foodSampleFactor = 4
)

// ErrNoFreeCell means the snake occupies every interior cell, leaving
// nowhere to place food.
var ErrNoFreeCell = errors.New("game: no free interior cell left for food")

// Key identifies a pressed key in backend-neutral terms. Only the four
// arrow keys mean anything to the game.
type Key int

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
)

// Game owns a snake, the single food item, the board bounds, and the timing
// accumulator that paces movement. It is driven synchronously by one caller:
// KeyPressed on input events, Update once per tick, Draw once per frame.
type Game struct {
	snake *Snake

	foodExists bool
	foodX      int
	foodY      int

	width  int
	height int

	gameOver    bool
	waitingTime float64

	rng *rand.Rand
}

// NewGame starts a game on a width x height board with the snake at (2, 2)
// and the first food at (6, 4).
func NewGame(width, height int) *Game {
	return &Game{
		snake:      NewSnake(2, 2),
		foodExists: true,
		foodX:      6,
		foodY:      4,
		width:      width,
		height:     height,
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// Size returns the fixed board bounds in cells.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

// KeyPressed maps an arrow key to a direction override and immediately
// attempts a move with it. Any other key still forces a move, just without
// an override. Ignored entirely while the game is over.
func (g *Game) KeyPressed(key Key) error {
	if g.gameOver {
		return nil
	}

	var dir Direction
	switch key {
	case KeyUp:
		dir = Up
	case KeyDown:
		dir = Down
	case KeyLeft:
		dir = Left
	case KeyRight:
		dir = Right
	default:
		dir = NoDirection
	}

	return g.updateSnake(dir)
}

// Update advances the accumulator by deltaTime and performs whatever the
// elapsed time calls for: restarting after game over, re-placing eaten food,
// or a periodic snake advance.
func (g *Game) Update(deltaTime float64) error {
	g.waitingTime += deltaTime

	if g.gameOver {
		if g.waitingTime > restartTime {
			return g.restart()
		}
		return nil
	}

	if !g.foodExists {
		if err := g.addFood(); err != nil {
			return err
		}
	}

	if g.waitingTime > movingPeriod {
		return g.updateSnake(NoDirection)
	}
	return nil
}

// Draw renders the snake, the food, the four border strips, and the
// game-over overlay onto the canvas. No state changes.
func (g *Game) Draw(c Canvas) {
	g.snake.Draw(c)

	if g.foodExists {
		c.DrawBlock(FoodColor, g.foodX, g.foodY)
	}

	c.DrawRect(BorderColor, 0, 0, g.width, 1)
	c.DrawRect(BorderColor, 0, g.height-1, g.width, 1)
	c.DrawRect(BorderColor, 0, 0, 1, g.height)
	c.DrawRect(BorderColor, g.width-1, 0, 1, g.height)

	if g.gameOver {
		c.DrawRect(GameOverColor, 0, 0, g.width, g.height)
	}
}

func (g *Game) checkEating() error {
	if g.foodExists && g.snake.HasHeadAt(g.foodX, g.foodY) {
		if err := g.snake.Grow(); err != nil {
			return err
		}
		g.foodExists = false
	}
	return nil
}

// isSnakeAlive reports whether a move in dir keeps the snake on the board.
// The valid region excludes the one-cell border on every edge.
func (g *Game) isSnakeAlive(dir Direction) bool {
	nextX, nextY := g.snake.NextHeadCoords(dir)

	if g.snake.IsCrawlingOver(nextX, nextY) {
		return false
	}

	return 0 < nextX && nextX < g.width-1 &&
		0 < nextY && nextY < g.height-1
}

// addFood places food on a random free interior cell. Random sampling is
// bounded; if it comes up empty a full scan decides between a free cell and
// ErrNoFreeCell.
func (g *Game) addFood() error {
	interior := (g.width - 2) * (g.height - 2)

	for i := 0; i < interior*foodSampleFactor; i++ {
		x := 1 + g.rng.Intn(g.width-2)
		y := 1 + g.rng.Intn(g.height-2)
		if !g.snake.IsCrawlingOver(x, y) {
			g.foodX, g.foodY = x, y
			g.foodExists = true
			return nil
		}
	}

	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if !g.snake.IsCrawlingOver(x, y) {
				g.foodX, g.foodY = x, y
				g.foodExists = true
				return nil
			}
		}
	}
	return ErrNoFreeCell
}

// updateSnake performs one move attempt with an optional direction
// override. A doomed move flips the game into the game-over state instead
// of moving. Either way the accumulator resets.
func (g *Game) updateSnake(dir Direction) error {
	var err error
	if g.isSnakeAlive(dir) {
		g.snake.MoveForward(dir)
		err = g.checkEating()
	} else {
		g.gameOver = true
	}
	g.waitingTime = 0
	return err
}

func (g *Game) restart() error {
	g.snake = NewSnake(2, 2)
	g.waitingTime = 0
	g.gameOver = false
	return g.addFood()
}
