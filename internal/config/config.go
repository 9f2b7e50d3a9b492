package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	sprint "github.com/phanxgames/strawberrysprint"
)

// EnvPath overrides the default config path when set.
const EnvPath = "SPRINT_CONFIG"

// DefaultPath is used when neither the flag nor EnvPath names a file.
const DefaultPath = "config/sprint.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Scene   sprint.Config `toml:"scene"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
	Term    TermConfig    `toml:"term"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Scale  float64 `toml:"scale"` // window size as a multiple of the stage size
	TPS    int     `toml:"tps"`
	Assets string  `toml:"assets"` // directory holding background/kitty/berry PNGs; empty draws shapes
	Shots  string  `toml:"screenshots"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AudioConfig struct {
	Enabled    bool          `toml:"enabled"`
	SampleRate int           `toml:"sample_rate"`
	Tone       float64       `toml:"tone"` // Hz
	Length     time.Duration `toml:"length"`
}

type TermConfig struct {
	Tick time.Duration `toml:"tick"`
}

// Load reads path on top of the defaults. A missing file is not an error:
// the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Scene.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: scene: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath picks the config path: an explicit flag value wins, then
// EnvPath, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Strawberry Sprint",
			Scale:  1,
			TPS:    60,
			Shots:  "screenshots",
			Assets: "",
		},
		Scene: sprint.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Tone:       880,
			Length:     60 * time.Millisecond,
		},
		Term: TermConfig{
			Tick: 16 * time.Millisecond,
		},
	}
}
