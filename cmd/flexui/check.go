package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flexui/internal/config"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate declaration files without printing their layout",
		Long: `Check parses every declaration and solves its layout with the configured
defaults. Paths may be files, directories, or "dir/..." to recurse.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if len(args) == 0 {
				args = []string{"."}
			}
			files, err := collectDeclFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no declaration files found")
			}
			logger.Debug("checking files", "count", len(files))

			results := make([]error, len(files))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range files {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					_, results[i] = solveFile(path, cfg, 0, 0)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errorCount int
			for i, path := range files {
				if results[i] != nil {
					errorCount++
					fmt.Fprintf(out, "%s %v\n", styleError.Render(iconError), results[i])
					continue
				}
				fmt.Fprintf(out, "%s %s\n", styleSuccess.Render(iconSuccess), path)
			}

			if errorCount > 0 {
				return fmt.Errorf("%d file(s) had errors", errorCount)
			}
			logger.Info("all files passed", "count", len(files))
			return nil
		},
	}
}

// isDeclFile reports whether name looks like a declaration. The config file
// shares the .toml extension and is skipped.
func isDeclFile(name string) bool {
	if filepath.Base(name) == config.FileName {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// collectDeclFiles finds declaration files from the given paths.
// Supports:
//   - Direct file paths: "settings.yaml"
//   - Directory paths: "./windows"
//   - Recursive pattern: "./..."
func collectDeclFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isDeclFile(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isDeclFile(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			// Named files are checked whatever their extension, so a typo
			// surfaces as an error instead of being skipped.
			files = append(files, path)
		}
	}

	return files, nil
}
