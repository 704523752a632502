// Package config loads the optional arbor.yaml next to a project's go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/arbor/pkg/debugdump"
	arbor "github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "arbor.yaml"

// Default viewport used when arbor.yaml does not set one.
const (
	DefaultViewportWidth  = 320
	DefaultViewportHeight = 240
)

// Config represents the optional arbor.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Dump     DumpConfig     `yaml:"dump"`
	Errors   ErrorsConfig   `yaml:"errors"`
	Viewport ViewportConfig `yaml:"viewport"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// DumpConfig controls `arbor dump` output.
type DumpConfig struct {
	Format string `yaml:"format,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

// ErrorsConfig configures the global error handler.
type ErrorsConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// ViewportConfig is the size the root is laid out in.
type ViewportConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// ColorMode decides whether tree dumps are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode. The empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("dump.color must be auto, always or never (got %q)", s)
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Format     debugdump.Format
	Color      ColorMode
	Verbose    bool
	Viewport   graphics.Size
}

// LoadOptional reads arbor.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads arbor.yaml (if present) and resolves defaults. A go.mod is
// optional; when present its module path names the app.
func Resolve(dir string) (*Resolved, error) {
	resolved, err := resolve(dir)
	if err != nil {
		return nil, &arbor.ArborError{Op: "config.Resolve", Kind: arbor.KindConfig, Err: err}
	}
	return resolved, nil
}

func resolve(dir string) (*Resolved, error) {
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

	format, err := debugdump.ParseFormat(strings.TrimSpace(cfg.Dump.Format))
	if err != nil {
		return nil, fmt.Errorf("dump.format: %w", err)
	}

	color, err := ParseColorMode(strings.TrimSpace(cfg.Dump.Color))
	if err != nil {
		return nil, err
	}

	viewport := graphics.Size{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	if viewport.Width < 0 || viewport.Height < 0 {
		return nil, fmt.Errorf("viewport must not be negative (got %v)", viewport)
	}
	if viewport.Width == 0 {
		viewport.Width = DefaultViewportWidth
	}
	if viewport.Height == 0 {
		viewport.Height = DefaultViewportHeight
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Format:     format,
		Color:      color,
		Verbose:    cfg.Errors.Verbose,
		Viewport:   viewport,
	}, nil
}

// FindProjectRoot walks up from dir to find go.mod. If none is found, dir
// itself is returned.
func FindProjectRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for d := abs; ; {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return abs, nil
		}
		d = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// there is no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid module path in go.mod: %w", err)
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "arbor_app"
	}
	return base
}
