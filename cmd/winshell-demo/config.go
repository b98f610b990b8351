package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// demoConfig is read from config.toml; every field has a default so the
// demo runs with no file at all.
type demoConfig struct {
	FrameInterval duration   `toml:"frame_interval"`
	QueueSize     int        `toml:"queue_size"`
	Beep          beepConfig `toml:"beep"`
}

type beepConfig struct {
	Enabled  bool     `toml:"enabled"`
	Freq     float64  `toml:"freq_hz"`
	Duration duration `toml:"duration"`
}

// duration wraps time.Duration for TOML strings like "16.67ms"
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func defaultConfig() *demoConfig {
	return &demoConfig{
		FrameInterval: duration{16_666_667 * time.Nanosecond},
		QueueSize:     256,
		Beep: beepConfig{
			Enabled:  true,
			Freq:     880,
			Duration: duration{50 * time.Millisecond},
		},
	}
}

// loadConfig reads path if given, otherwise the first existing file of:
//  1. $XDG_CONFIG_HOME/winshell-demo/config.toml
//  2. ~/.config/winshell-demo/config.toml
//
// Missing files are not an error; defaults apply.
func loadConfig(path string) (*demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	if _, err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfig() string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, xdg)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, "winshell-demo", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
