package declare

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-flexui"
	"github.com/grindlemire/go-flexui/pkg/layout"
)

const settingsYAML = `
window:
  title: Settings
  width: 240
  height: 120
  content:
    - type: horizontal
      height: 20
      children:
        - type: label
          width: 40%
          props:
            text: "Name:"
        - type: textbox
          name: name
`

const settingsTOML = `
[window]
title = "Settings"
width = 240
height = 120

[[window.content]]
type = "horizontal"
height = 20

[[window.content.children]]
type = "label"
width = "40%"

[window.content.children.props]
text = "Name:"

[[window.content.children]]
type = "textbox"
name = "name"
`

var settingsLayout = map[string]layout.Rect{
	"label#0": layout.NewRect(5, 5, 92, 20),
	"name":    layout.NewRect(101, 5, 134, 20),
}

func TestParse_Layout(t *testing.T) {
	type tc struct {
		input  string
		format Format
	}

	tests := map[string]tc{
		"yaml": {input: settingsYAML, format: YAML},
		"toml": {input: settingsTOML, format: TOML},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			w, err := f.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if width, height := w.Size(); width != 240 || height != 120 {
				t.Errorf("Size() = %dx%d, want 240x120", width, height)
			}
			got, err := w.Layout()
			if err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			if diff := cmp.Diff(settingsLayout, got); diff != "" {
				t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{YAML, TOML} {
		t.Run(format.String(), func(t *testing.T) {
			input := settingsYAML
			if format == TOML {
				input = settingsTOML
			}
			first, err := Parse([]byte(input), format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			encoded, err := Marshal(first, format)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			second, err := Parse(encoded, format)
			if err != nil {
				t.Fatalf("Parse(Marshal()) error = %v\n%s", err, encoded)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_PropsReachHost(t *testing.T) {
	f, err := Parse([]byte(settingsYAML), YAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	w, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	host := flexui.NewMockHost()
	if err := w.Open(host); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer w.Close()

	hw := host.LastWindow()
	if hw.Spec.Title != "Settings" {
		t.Errorf("title = %q, want Settings", hw.Spec.Title)
	}
	label := hw.Widgets()[0]
	if got := label.Property("text"); got != "Name:" {
		t.Errorf("label text = %v, want Name:", got)
	}
}

func TestBuild_DefaultsAndOverrides(t *testing.T) {
	f, err := Parse([]byte("window:\n  height: 60\n  padding: 0\n  spacing: 0\n  direction: horizontal\n  content:\n    - {type: label, name: a}\n    - {type: label, name: b}\n"), YAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	w, err := f.Build(flexui.WithSize(100, 10))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	got, err := w.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	want := map[string]layout.Rect{
		"a": layout.NewRect(0, 0, 50, 60),
		"b": layout.NewRect(50, 0, 50, 60),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Errors(t *testing.T) {
	type tc struct {
		input    string
		wantPath string
		wantErr  string
	}

	tests := map[string]tc{
		"missing type": {
			input:    "window:\n  content:\n    - type: vertical\n      children:\n        - name: x\n",
			wantPath: "content[0].children[0]",
			wantErr:  "missing type",
		},
		"widget with children": {
			input:    "window:\n  content:\n    - type: label\n      children:\n        - type: button\n",
			wantPath: "content[0]",
			wantErr:  "cannot have children",
		},
		"unknown direction": {
			input:    "window:\n  direction: diagonal\n",
			wantPath: "window.direction",
			wantErr:  "unknown direction",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input), YAML)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			_, err = f.Build()
			var ne *NodeError
			if !errors.As(err, &ne) {
				t.Fatalf("Build() error = %v, want *NodeError", err)
			}
			if ne.Path != tt.wantPath || !strings.Contains(ne.Err.Error(), tt.wantErr) {
				t.Errorf("NodeError = {%s, %v}, want {%s, ...%s...}", ne.Path, ne.Err, tt.wantPath, tt.wantErr)
			}
		})
	}
}

func TestBuild_BadScaleSurfacesOnLayout(t *testing.T) {
	f, err := Parse([]byte("window:\n  content:\n    - {type: label, name: l, width: 3em}\n"), YAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	w, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	_, err = w.Layout()
	var be *flexui.BuildError
	if !errors.As(err, &be) || be.Element != "l" {
		t.Errorf("Layout() error = %v, want BuildError for l", err)
	}
	if !errors.Is(err, layout.ErrInvalidScale) {
		t.Errorf("errors.Is(err, ErrInvalidScale) = false for %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		input   string
		format  Format
		wantErr string
	}

	tests := map[string]tc{
		"yaml unknown field": {input: "window:\n  colour: red\n", format: YAML, wantErr: "parse yaml"},
		"yaml malformed":     {input: "window: [\n", format: YAML, wantErr: "parse yaml"},
		"toml malformed":     {input: "[window\n", format: TOML, wantErr: "parse toml"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yml")
	if err := os.WriteFile(path, []byte(settingsYAML), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if f.Window.Title != "Settings" || len(f.Window.Content) != 1 {
		t.Errorf("ParseFile() = %+v, want Settings with one node", f.Window)
	}

	if _, err := ParseFile(filepath.Join(dir, "settings.json")); err == nil {
		t.Error("ParseFile(.json) error = nil")
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("ParseFile(missing) error = nil")
	}
}

func TestBuild_PartialPaddingKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte("window:\n  padding: {top: 2}\n  content:\n    - {type: label, name: l}\n"), YAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	w, err := f.Build(flexui.WithSize(100, 100), flexui.WithWindowPadding(10))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	got, err := w.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if want := layout.NewRect(10, 2, 80, 88); got["l"] != want {
		t.Errorf("Layout()[l] = %v, want %v", got["l"], want)
	}
}
