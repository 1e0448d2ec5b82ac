// Package tmsettings loads the optional YAML configuration file.
package tmsettings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the user configuration. Every field has a default so a
// missing or partial config file is fine.
type Settings struct {
	StartDir       string `yaml:"start_dir"`        // Directory to open when no state is persisted
	SyntaxStyle    string `yaml:"syntax_style"`     // Chroma style name for text previews
	TextPreviewMax int    `yaml:"text_preview_max"` // Max bytes read for a text preview
}

const (
	defaultSyntaxStyle    = "dracula"
	defaultTextPreviewMax = 10 * 1024
)

var osUserHomeDir = os.UserHomeDir

// Load reads the configuration from the default location
// (~/.config/tmages/config.yaml).
func Load() (*Settings, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(home, ".config", "tmages", "config.yaml"))
}

// LoadFile reads the configuration from a specific file path. A missing
// file returns the defaults.
func LoadFile(path string) (*Settings, error) {
	settings := defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary struct so unset fields keep their defaults.
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if loaded.StartDir != "" {
		settings.StartDir = loaded.StartDir
	}
	if loaded.SyntaxStyle != "" {
		settings.SyntaxStyle = loaded.SyntaxStyle
	}
	if loaded.TextPreviewMax > 0 {
		settings.TextPreviewMax = loaded.TextPreviewMax
	}
	return settings, nil
}

// Default returns the built-in defaults, the same ones an absent config
// file yields.
func Default() *Settings {
	return defaultSettings()
}

func defaultSettings() *Settings {
	return &Settings{
		SyntaxStyle:    defaultSyntaxStyle,
		TextPreviewMax: defaultTextPreviewMax,
	}
}
