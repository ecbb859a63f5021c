// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings — параметры запуска, которые можно менять без пересборки.
type Settings struct {
	Seed        int64   `yaml:"seed"`
	LogLevel    string  `yaml:"log_level"`
	PprofAddr   string  `yaml:"pprof_addr"`
	StartInMenu bool    `yaml:"start_in_menu"`
	WindowScale float64 `yaml:"window_scale"`
	DefsDir     string  `yaml:"defs_dir"`
	ShowAimLine bool    `yaml:"show_aim_line"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Seed:        0,
		LogLevel:    "info",
		PprofAddr:   "",
		StartInMenu: true,
		WindowScale: 1,
		ShowAimLine: true,
	}
}

// LoadSettings reads a YAML settings file on top of the defaults.
// A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1
	}
	return s, nil
}
