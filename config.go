package tableau

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the client configuration loaded from tableau.toml.
type Config struct {
	Window WindowConfig `toml:"window"`
	Server ServerConfig `toml:"server"`
	Debug  bool         `toml:"debug"`
}

// WindowConfig controls the game window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// ServerConfig holds the connection defaults prefilled into the connect
// screen.
type ServerConfig struct {
	Address  string `toml:"address"`
	Username string `toml:"username"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "tableau",
		},
		Server: ServerConfig{
			Address: "localhost:3000",
		},
	}
}

// LoadConfig reads the configuration from path. A missing file is not an
// error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("%s: window size must be positive, got %dx%d",
			path, cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
