// Package declare reads window declarations from YAML or TOML files and
// builds them into flexui windows.
//
// A declaration looks like this in YAML:
//
//	window:
//	  title: Settings
//	  width: 240
//	  height: 120
//	  content:
//	    - type: horizontal
//	      height: 20
//	      children:
//	        - type: label
//	          width: 40%
//	          props: {text: "Name:"}
//	        - type: textbox
//	          name: name
//
// Scales use the layout grammar: plain numbers are pixels, "50%" is a
// percentage of the parent and "2w" is a weight.
package declare

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a declaration file.
type Format uint8

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("unsupported declaration file %q: want .yaml, .yml or .toml", path)
	}
}

// File is a parsed declaration file.
type File struct {
	Window WindowDecl `yaml:"window" toml:"window"`
}

// WindowDecl declares a window and its content.
type WindowDecl struct {
	Title     string `yaml:"title,omitempty" toml:"title,omitempty"`
	Width     int    `yaml:"width,omitempty" toml:"width,omitempty"`
	Height    int    `yaml:"height,omitempty" toml:"height,omitempty"`
	Padding   any    `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Spacing   any    `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Direction string `yaml:"direction,omitempty" toml:"direction,omitempty"`
	Content   []Node `yaml:"content,omitempty" toml:"content,omitempty"`
}

// Node declares a container or a widget. Type is "horizontal", "vertical",
// "absolute" or a widget kind.
type Node struct {
	Type     string         `yaml:"type" toml:"type"`
	Name     string         `yaml:"name,omitempty" toml:"name,omitempty"`
	Width    any            `yaml:"width,omitempty" toml:"width,omitempty"`
	Height   any            `yaml:"height,omitempty" toml:"height,omitempty"`
	X        any            `yaml:"x,omitempty" toml:"x,omitempty"`
	Y        any            `yaml:"y,omitempty" toml:"y,omitempty"`
	Padding  any            `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Spacing  any            `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Children []Node         `yaml:"children,omitempty" toml:"children,omitempty"`
	Props    map[string]any `yaml:"props,omitempty" toml:"props,omitempty"`
}

// Parse decodes a declaration. YAML input rejects unknown fields.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case TOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}
	return &f, nil
}

// ParseFile reads and decodes the declaration at path.
func ParseFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Marshal encodes f in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	if format == TOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}
