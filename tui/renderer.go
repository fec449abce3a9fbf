package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/config"
	"gridsnake/game"
)

// renderer draws game cells as pairs of colored terminal columns, which
// keeps blocks roughly square in most fonts.
type renderer struct {
	screen tcell.Screen
}

func (r *renderer) DrawBlock(c game.Color, x, y int) {
	r.DrawRect(c, x, y, 1, 1)
}

func (r *renderer) DrawRect(c game.Color, x, y, w, h int) {
	style := tcell.StyleDefault.Background(toTcell(c))
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			r.screen.SetContent(cx*2, cy, ' ', nil, style)
			r.screen.SetContent(cx*2+1, cy, ' ', nil, style)
		}
	}
}

// toTcell folds alpha into the channels since terminal cells have no
// transparency to composite with.
func toTcell(c game.Color) tcell.Color {
	scale := func(v uint8) int32 {
		return int32(v) * int32(c.A) / 255
	}
	return tcell.NewRGBColor(scale(c.R), scale(c.G), scale(c.B))
}

// Run owns the terminal screen and event loop. Input events arrive on a
// channel while a frame ticker drives updates with measured wall-clock
// deltas. Escape, ctrl-C, or q quits.
func Run(g *game.Game, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorWhite))

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	fps := cfg.Settings().FPS
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	r := &renderer{screen: screen}
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key, ok := mapKey(ev)
				if !ok {
					return nil
				}
				if key != 0 {
					if err := g.KeyPressed(key); err != nil {
						return err
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if err := g.Update(now.Sub(last).Seconds()); err != nil {
				return err
			}
			last = now

			if next := cfg.Settings().FPS; next != fps && next > 0 {
				fps = next
				ticker.Reset(time.Second / time.Duration(fps))
			}

			screen.Clear()
			g.Draw(r)
			screen.Show()
		}
	}
}

// mapKey translates a terminal key event. ok is false when the event asks
// to quit; a zero Key with ok true means "not a game key".
func mapKey(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, false
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	}
	if ev.Rune() == 'q' {
		return 0, false
	}
	return 0, true
}
