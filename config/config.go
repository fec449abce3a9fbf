package config

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Settings is the on-disk configuration. Width and Height are board cells;
// CellSize is the pixel edge of one cell in the window backend.
type Settings struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CellSize int    `json:"cellsize"`
	FPS      int    `json:"fps"`
	Title    string `json:"title"`
}

func Default() Settings {
	return Settings{
		Width:    30,
		Height:   22,
		CellSize: 25,
		FPS:      60,
		Title:    "gridsnake",
	}
}

// Config wraps the settings file with snapshot access, so a watcher can
// swap in reloaded values while backends read them every frame.
type Config struct {
	mu       sync.RWMutex
	path     string
	settings Settings
}

// Load reads the settings file at path, creating it with defaults when it
// does not exist yet.
func Load(path string) (*Config, error) {
	c := &Config{path: path, settings: Default()}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := c.save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := c.reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Settings returns a snapshot of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

func (c *Config) reload() error {
	f, err := os.Open(c.path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()

	s := Default()
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return errors.Wrap(err, "decode config")
	}

	c.mu.Lock()
	c.settings = s
	c.mu.Unlock()
	return nil
}

func (c *Config) save() error {
	f, err := os.Create(c.path)
	if err != nil {
		return errors.Wrap(err, "create config")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(c.settings), "encode config")
}

// Watch reloads the file whenever it is written, until stop is closed.
// Render settings take effect on the next frame; board dimensions are read
// once at startup, so edits to them only apply to the next run.
func (c *Config) Watch(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	if err := watcher.Add(c.path); err != nil {
		watcher.Close()
		return errors.Wrap(err, "watch config")
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if err := c.reload(); err != nil {
						log.Printf("config reload: %v", err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config watcher: %v", err)
			case <-stop:
				return
			}
		}
	}()
	return nil
}
