package main

import (
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/tui"
	"gridsnake/ui"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the config file")
	backend := flag.String("backend", "raylib", "rendering backend: raylib or term")
	width := flag.Int("width", 0, "board width in cells (overrides config)")
	height := flag.Int("height", 0, "board height in cells (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	stop := make(chan struct{})
	defer close(stop)
	if err := cfg.Watch(stop); err != nil {
		log.Printf("config watch disabled: %v", err)
	}

	settings := cfg.Settings()
	w, h := settings.Width, settings.Height
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}
	if w < 4 || h < 4 {
		log.Fatalf("board %dx%d is too small to play on", w, h)
	}

	runID := uuid.New().String()
	log.Printf("starting run %s on a %dx%d board (%s backend)", runID, w, h, *backend)

	g := game.NewGame(w, h)

	switch *backend {
	case "raylib":
		err = ui.Run(g, cfg)
	case "term":
		err = tui.Run(g, cfg)
	default:
		err = errors.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		log.Fatalf("run %s: %v", runID, err)
	}
}
