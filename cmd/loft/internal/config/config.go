package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional loft.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// WindowConfig contains window settings.
type WindowConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// ThemeConfig contains theme settings.
type ThemeConfig struct {
	// Palette is a path to a palette YAML file, relative to the project
	// root when not absolute.
	Palette  string  `yaml:"palette,omitempty"`
	FontSize float64 `yaml:"font_size,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ModulePath  string
	AppName     string
	Width       float64
	Height      float64
	Scale       float64
	FontSize    float64
	PalettePath string
}

// LoadOptional reads loft.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "loft.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read loft.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse loft.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads loft.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	width := cfg.Window.Width
	if width <= 0 {
		width = 500
	}
	height := cfg.Window.Height
	if height <= 0 {
		height = 500
	}
	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	fontSize := cfg.Theme.FontSize
	if fontSize <= 0 {
		fontSize = 13
	}

	palettePath := strings.TrimSpace(cfg.Theme.Palette)
	if palettePath != "" && !filepath.IsAbs(palettePath) {
		palettePath = filepath.Join(dir, palettePath)
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		AppName:     appName,
		Width:       width,
		Height:      height,
		Scale:       scale,
		FontSize:    fontSize,
		PalettePath: palettePath,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "loft_app"
	}
	return base
}
