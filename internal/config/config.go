package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ScanPaths     []string `toml:"scan_paths"`
	OutputDir     string   `toml:"output_dir"`
	LocalPrefixes []string `toml:"local_prefixes"` // import roots treated as project-local
	Exclude       Exclude  `toml:"exclude"`
	Watch         Watch    `toml:"watch"`
	Metrics       Metrics  `toml:"metrics"`
	History       History  `toml:"history"`
	Workers       int      `toml:"workers"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce      time.Duration `toml:"debounce"`
	RescansPerSec float64       `toml:"rescans_per_sec"`
	RescanBurst   int           `toml:"rescan_burst"`
}

type Metrics struct {
	Addr string `toml:"addr"` // empty disables the listener
}

type History struct {
	Path string `toml:"path"` // empty disables run history
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if len(cfg.ScanPaths) == 0 {
		cfg.ScanPaths = []string{"."}
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if len(cfg.Exclude.Dirs) == 0 {
		cfg.Exclude.Dirs = []string{".git", ".venv", "node_modules", "__pycache__"}
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RescansPerSec == 0 {
		cfg.Watch.RescansPerSec = 2
	}
	if cfg.Watch.RescanBurst == 0 {
		cfg.Watch.RescanBurst = 4
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
}
