package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime knobs of the example program. Asset paths are
// resolved against DataDir instead of relying on the working directory.
type Config struct {
	Trace      bool    `env:"GOALLEGRO_TRACE"`
	CPUProfile string  `env:"GOALLEGRO_CPUPROFILE"`
	DataDir    string  `env:"GOALLEGRO_DATA_DIR" envDefault:"data"`
	Width      int     `env:"GOALLEGRO_WIDTH" envDefault:"800"`
	Height     int     `env:"GOALLEGRO_HEIGHT" envDefault:"600"`
	FPS        float64 `env:"GOALLEGRO_FPS" envDefault:"60"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("invalid frame rate %v", cfg.FPS)
	}
	return cfg, nil
}

func (c Config) Asset(name string) string {
	return filepath.Join(c.DataDir, name)
}

// TickInterval is the timer period in seconds.
func (c Config) TickInterval() float64 {
	return 1.0 / c.FPS
}
