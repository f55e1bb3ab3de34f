package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flexui/internal/config"
	"github.com/grindlemire/go-flexui/pkg/declare"
	"github.com/grindlemire/go-flexui/pkg/layout"
)

// widgetRect is one row of layout output. Clipped is set when part of the
// widget lies outside the window.
type widgetRect struct {
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Clipped bool   `json:"clipped,omitempty"`
}

func (r widgetRect) rect() layout.Rect {
	return layout.NewRect(r.X, r.Y, r.Width, r.Height)
}

func newLayoutCmd() *cobra.Command {
	var (
		width, height int
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Print the solved rectangle of every widget in a declaration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := configFromContext(cmd.Context())

			rects, err := solveFile(args[0], cfg, width, height)
			if err != nil {
				return err
			}
			logger.Debug("solved layout", "file", args[0], "widgets", len(rects))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rects)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable(rects))
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "window width in pixels (overrides the file)")
	cmd.Flags().IntVar(&height, "height", 0, "window height in pixels (overrides the file)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// solveFile parses a declaration, applies config defaults and size overrides,
// and returns widget rectangles sorted by name.
func solveFile(path string, cfg *config.Resolved, width, height int) ([]widgetRect, error) {
	f, err := declare.ParseFile(path)
	if err != nil {
		return nil, err
	}
	w, err := f.Build(cfg.WindowOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if width != 0 || height != 0 {
		ww, wh := w.Size()
		if width != 0 {
			ww = width
		}
		if height != 0 {
			wh = height
		}
		if err := w.Resize(ww, wh); err != nil {
			return nil, err
		}
	}

	solved, err := w.Layout()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ww, wh := w.Size()
	window := layout.NewRect(0, 0, ww, wh)

	out := make([]widgetRect, 0, len(solved))
	for name, r := range solved {
		out = append(out, widgetRect{
			Name:    name,
			X:       r.X,
			Y:       r.Y,
			Width:   r.Width,
			Height:  r.Height,
			Clipped: !r.IsEmpty() && r.Intersect(window) != r,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func writeJSON(w io.Writer, rects []widgetRect) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rects)
}

// renderTable draws one row per widget followed by the rectangle covering
// all of them.
func renderTable(rects []widgetRect) string {
	var extent layout.Rect
	rows := make([][]string, len(rects))
	for i, r := range rects {
		clipped := ""
		if r.Clipped {
			clipped = iconError
		}
		rows[i] = []string{
			r.Name,
			strconv.Itoa(r.X),
			strconv.Itoa(r.Y),
			strconv.Itoa(r.Width),
			strconv.Itoa(r.Height),
			clipped,
		}
		extent = extent.Union(r.rect())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("WIDGET", "X", "Y", "WIDTH", "HEIGHT", "CLIPPED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0:
				return styleCell
			case col == 5:
				return styleError.Padding(0, 1)
			default:
				return styleNumber
			}
		}).
		String()
	return t + "\n" + styleDim.Render("extent "+extent.String())
}
