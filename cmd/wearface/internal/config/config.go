// Package config loads the optional wearface.yaml configuration and
// versioned theme packs.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/wearkit/wearface/pkg/errors"
	"github.com/wearkit/wearface/pkg/rendering"
	"github.com/wearkit/wearface/pkg/style"
)

// Config represents the optional wearface.yaml configuration.
type Config struct {
	Face  FaceConfig  `yaml:"face"`
	Theme ThemeConfig `yaml:"theme"`
}

// FaceConfig contains face behavior settings.
type FaceConfig struct {
	ShowSeconds bool    `yaml:"show_seconds,omitempty"`
	TextSize    float64 `yaml:"text_size,omitempty"`
}

// ThemeConfig selects a theme pack.
type ThemeConfig struct {
	Name string `yaml:"name,omitempty"`
	Dir  string `yaml:"dir,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	ShowSeconds bool
	TextSize    float64
	Palette     style.Palette
}

// LoadOptional reads wearface.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "wearface.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read wearface.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse wearface.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads wearface.yaml (if present) and resolves defaults,
// including the selected theme pack.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	textSize := cfg.Face.TextSize
	if textSize <= 0 {
		textSize = style.DefaultTextSize
	}

	palette := style.DefaultPalette()
	name := strings.TrimSpace(cfg.Theme.Name)
	if name != "" {
		themeDir := cfg.Theme.Dir
		if themeDir == "" {
			themeDir = filepath.Join(dir, "themes")
		}
		palette, err = LoadTheme(themeDir, name)
		if err != nil {
			return nil, err
		}
	}

	return &Resolved{
		ShowSeconds: cfg.Face.ShowSeconds,
		TextSize:    textSize,
		Palette:     palette,
	}, nil
}

// ThemePack is one theme pack file. Several files may carry the same
// name at different versions; the highest valid semver wins.
type ThemePack struct {
	Name    string            `yaml:"name"`
	Version string            `yaml:"version"`
	Colors  map[string]string `yaml:"colors"`
}

// LoadTheme scans dir for *.yaml theme packs and returns the palette of
// the highest-versioned pack matching name.
func LoadTheme(dir, name string) (style.Palette, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return style.Palette{}, fmt.Errorf("failed to scan theme dir: %w", err)
	}

	var best *ThemePack
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errors.Report(&errors.FaceError{Op: "config.LoadTheme", Kind: errors.KindConfig, Err: err})
			continue
		}
		var pack ThemePack
		if err := yaml.Unmarshal(data, &pack); err != nil {
			errors.Report(&errors.FaceError{
				Op:   "config.LoadTheme",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err),
			})
			continue
		}
		if pack.Name != name {
			continue
		}
		if !semver.IsValid(pack.Version) {
			errors.Report(&errors.FaceError{
				Op:   "config.LoadTheme",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("%s: invalid version %q", filepath.Base(path), pack.Version),
			})
			continue
		}
		if best == nil || semver.Compare(pack.Version, best.Version) > 0 {
			p := pack
			best = &p
		}
	}

	if best == nil {
		return style.Palette{}, fmt.Errorf("theme %q not found in %s", name, dir)
	}
	return applyColors(style.DefaultPalette(), best.Colors)
}

// applyColors overlays a pack's color overrides onto a base palette.
func applyColors(base style.Palette, colors map[string]string) (style.Palette, error) {
	for key, value := range colors {
		c, err := ParseColor(value)
		if err != nil {
			return style.Palette{}, fmt.Errorf("color %q: %w", key, err)
		}
		switch key {
		case "background":
			base.Background = c
		case "hour":
			base.Hour = c
		case "minute":
			base.Minute = c
		case "second":
			base.Second = c
		case "ambient_hour":
			base.AmbientHour = c
		case "ambient_minute":
			base.AmbientMinute = c
		default:
			return style.Palette{}, fmt.Errorf("unknown color key %q", key)
		}
	}
	return base, nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" into a Color.
func ParseColor(s string) (rendering.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	c := uint32(v)
	if len(hex) == 6 {
		c |= 0xFF000000
	}
	return rendering.Color(c), nil
}
