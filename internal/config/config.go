// Package config loads the optional flexui.toml used by the flexui command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"

	"github.com/grindlemire/go-flexui"
	"github.com/grindlemire/go-flexui/pkg/layout"
)

// FileName is the config file looked up by LoadOptional.
const FileName = "flexui.toml"

// Config represents flexui.toml.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
}

// LayoutConfig holds the defaults applied to every window. Values use the
// scale grammar: 4, "4px", "10%" or "1w". Padding also accepts a two or four
// element array or a table of edges.
type LayoutConfig struct {
	Spacing any `toml:"spacing"`
	Padding any `toml:"padding"`
}

// WindowConfig holds the default window size in pixels.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LogConfig controls the command's logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Resolved contains configuration with every default filled in.
type Resolved struct {
	// Path is the file the values came from, or "" when none was found.
	Path string

	Spacing layout.Scale
	Padding layout.Padding
	Width   int
	Height  int

	LogLevel charmlog.Level
	LogFile  string
}

// Load reads the config file at path. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		// Members of values decoded into any, such as a padding table.
		if len(k) > 2 && k[0] == "layout" {
			continue
		}
		unknown = append(unknown, k.String())
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(unknown, ", "))
	}
	return &cfg, nil
}

// LoadOptional reads flexui.toml from dir if present.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

// Resolve loads configuration and fills in defaults. An explicit path must
// exist; an empty path falls back to flexui.toml in dir, if any.
func Resolve(path, dir string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, path, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}

	r, err := cfg.Resolve()
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	r.Path = path
	return r, nil
}

// Resolve fills in defaults for unset values and validates the rest.
func (c *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Spacing:  layout.Px(4),
		Padding:  layout.PaddingAll(layout.Px(5)),
		Width:    flexui.DefaultWindowWidth,
		Height:   flexui.DefaultWindowHeight,
		LogLevel: charmlog.InfoLevel,
		LogFile:  strings.TrimSpace(c.Log.File),
	}

	s, err := layout.ParseScale(c.Layout.Spacing)
	if err != nil {
		return nil, fmt.Errorf("layout.spacing: %w", err)
	}
	if s != nil {
		r.Spacing = *s
	}

	r.Padding, err = layout.ParsePadding(c.Layout.Padding, &r.Padding)
	if err != nil {
		return nil, fmt.Errorf("layout.padding: %w", err)
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		return nil, fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Width > 0 {
		r.Width = c.Window.Width
	}
	if c.Window.Height > 0 {
		r.Height = c.Window.Height
	}

	if lvl := strings.TrimSpace(c.Log.Level); lvl != "" {
		r.LogLevel, err = charmlog.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
	}
	return r, nil
}

// WindowOptions returns the window options carrying these defaults. Options
// appended after them take precedence.
func (r *Resolved) WindowOptions() []flexui.WindowOption {
	return []flexui.WindowOption{
		flexui.WithSize(r.Width, r.Height),
		flexui.WithWindowPadding(r.Padding),
		flexui.WithWindowSpacing(r.Spacing),
	}
}
