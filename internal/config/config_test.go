package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-flexui"
	"github.com/grindlemire/go-flexui/pkg/layout"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestResolve_Defaults(t *testing.T) {
	r, err := Resolve("", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := &Resolved{
		Spacing:  layout.Px(4),
		Padding:  layout.PaddingAll(layout.Px(5)),
		Width:    flexui.DefaultWindowWidth,
		Height:   flexui.DefaultWindowHeight,
		LogLevel: charmlog.InfoLevel,
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_FromFile(t *testing.T) {
	type tc struct {
		content string
		want    func(dir string) *Resolved
	}

	tests := map[string]tc{
		"all keys": {
			content: `
[layout]
spacing = "1w"
padding = [2, "10%"]

[window]
width = 320
height = 240

[log]
level = "debug"
file = "/tmp/flexui.log"
`,
			want: func(dir string) *Resolved {
				return &Resolved{
					Path:     filepath.Join(dir, FileName),
					Spacing:  layout.Wt(1),
					Padding:  layout.PaddingSymmetric(layout.Px(2), layout.Pct(10)),
					Width:    320,
					Height:   240,
					LogLevel: charmlog.DebugLevel,
					LogFile:  "/tmp/flexui.log",
				}
			},
		},
		"padding table keeps default edges": {
			content: `
[layout.padding]
top = 0
left = "2w"
`,
			want: func(dir string) *Resolved {
				return &Resolved{
					Path:    filepath.Join(dir, FileName),
					Spacing: layout.Px(4),
					Padding: layout.Padding{
						Top:    layout.Px(0),
						Right:  layout.Px(5),
						Bottom: layout.Px(5),
						Left:   layout.Wt(2),
					},
					Width:    flexui.DefaultWindowWidth,
					Height:   flexui.DefaultWindowHeight,
					LogLevel: charmlog.InfoLevel,
				}
			},
		},
		"width only": {
			content: "[window]\nwidth = 90\n",
			want: func(dir string) *Resolved {
				return &Resolved{
					Path:     filepath.Join(dir, FileName),
					Spacing:  layout.Px(4),
					Padding:  layout.PaddingAll(layout.Px(5)),
					Width:    90,
					Height:   flexui.DefaultWindowHeight,
					LogLevel: charmlog.InfoLevel,
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			got, err := Resolve("", dir)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if diff := cmp.Diff(tt.want(dir), got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	type tc struct {
		content string
		wantErr string
	}

	tests := map[string]tc{
		"bad spacing":    {content: "[layout]\nspacing = \"4em\"\n", wantErr: "layout.spacing"},
		"bad padding":    {content: "[layout]\npadding = [1, 2, 3]\n", wantErr: "layout.padding"},
		"negative width": {content: "[window]\nwidth = -1\n", wantErr: "must not be negative"},
		"bad level":      {content: "[log]\nlevel = \"loud\"\n", wantErr: "log.level"},
		"unknown key":    {content: "[window]\ndepth = 3\n", wantErr: "unknown keys: window.depth"},
		"malformed toml": {content: "[window\n", wantErr: "failed to parse"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Resolve("", dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Resolve() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolve_ExplicitPathMustExist(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.toml"), "")
	if err == nil {
		t.Fatal("Resolve() with missing explicit path error = nil")
	}
}

func TestResolved_WindowOptions(t *testing.T) {
	r := &Resolved{
		Spacing: layout.Px(0),
		Padding: layout.PaddingAll(layout.Px(0)),
		Width:   100,
		Height:  50,
	}

	w, err := flexui.NewWindow(append(r.WindowOptions(),
		flexui.WithDirection(layout.Horizontal),
		flexui.WithContent(flexui.Widget("label", flexui.WithName("a")), flexui.Widget("label", flexui.WithName("b"))),
	)...)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	got, err := w.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	want := map[string]layout.Rect{
		"a": layout.NewRect(0, 0, 50, 50),
		"b": layout.NewRect(50, 0, 50, 50),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
	}
}
