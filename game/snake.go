package game

import (
	"github.com/pkg/errors"
)

// ErrNoTail is returned by Grow when no move has happened yet, so there is
// no removed tail block to duplicate.
var ErrNoTail = errors.New("snake: grow called before first move")

type Direction int

const (
	// NoDirection means "keep the current heading" when passed as an
	// override to NextHeadCoords or MoveForward.
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

// Block is a single occupied grid cell.
type Block struct {
	X, Y int
}

// Snake holds the ordered body cells, head first.
type Snake struct {
	direction Direction
	body      []Block // body[0] is the head
	tail      *Block  // most recently removed tail, nil before the first move
}

// NewSnake builds a three-cell snake lying horizontally with its head two
// cells to the right of (x, y), heading Right.
func NewSnake(x, y int) *Snake {
	return &Snake{
		direction: Right,
		body: []Block{
			{X: x + 2, Y: y},
			{X: x + 1, Y: y},
			{X: x, Y: y},
		},
	}
}

func (s *Snake) Draw(c Canvas) {
	for _, b := range s.body {
		c.DrawBlock(SnakeColor, b.X, b.Y)
	}
}

func (s *Snake) HeadPosition() (int, int) {
	if len(s.body) == 0 {
		return 2, 2
	}
	return s.body[0].X, s.body[0].Y
}

func (s *Snake) HasHeadAt(x, y int) bool {
	if len(s.body) == 0 {
		return false
	}
	return s.body[0].X == x && s.body[0].Y == y
}

func (s *Snake) HeadDirection() Direction {
	return s.direction
}

// NextHeadCoords computes where the head would land when moving in dir,
// falling back to the current heading for NoDirection. The snake itself is
// left untouched.
func (s *Snake) NextHeadCoords(dir Direction) (int, int) {
	x, y := s.HeadPosition()

	if dir == NoDirection {
		dir = s.direction
	}
	switch dir {
	case Up:
		return x, y - 1
	case Down:
		return x, y + 1
	case Left:
		return x - 1, y
	default:
		return x + 1, y
	}
}

// MoveForward advances the snake one cell, saving the popped tail for a
// later Grow. The stored heading is not rewritten by the override, so
// subsequent periodic moves keep using the heading set at construction.
func (s *Snake) MoveForward(dir Direction) {
	x, y := s.NextHeadCoords(dir)

	last := s.body[len(s.body)-1]
	s.tail = &last
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = Block{X: x, Y: y}
}

// Grow re-appends the most recently removed tail block, lengthening the
// body by one.
func (s *Snake) Grow() error {
	if s.tail == nil {
		return ErrNoTail
	}
	s.body = append(s.body, *s.tail)
	return nil
}

// IsCrawlingOver reports whether every body cell sits at (x, y), which can
// only hold for a single-segment body. Kept with these exact semantics for
// compatibility with the original rules; both the liveness check and food
// placement probe occupancy through it.
func (s *Snake) IsCrawlingOver(x, y int) bool {
	for _, b := range s.body {
		if b.X != x || b.Y != y {
			return false
		}
	}
	return true
}

// Len returns the current body length in cells.
func (s *Snake) Len() int {
	return len(s.body)
}
