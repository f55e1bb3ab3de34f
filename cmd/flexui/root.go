package main

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flexui/internal/config"
	"github.com/grindlemire/go-flexui/internal/debug"
)

// newRootCmd builds the command tree. Every subcommand finds the resolved
// config and a logger in its context.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "flexui",
		Short:         "Solve and validate flexui window declarations",
		Long:          `flexui reads window declarations written in YAML or TOML, solves their layout and reports where every widget ends up.`,
		Version:       resolveVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(configPath, ".")
			if err != nil {
				return err
			}

			level := cfg.LogLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			switch {
			case cfg.LogFile != "":
				if err := debug.Init(cfg.LogFile); err != nil {
					return fmt.Errorf("log.file: %w", err)
				}
			case verbose:
				debug.SetOutput(cmd.ErrOrStderr(), charmlog.DebugLevel)
			}

			if cfg.Path != "" {
				logger.Debug("loaded config", "path", cfg.Path)
			}

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate("flexui {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to flexui.toml (default: ./flexui.toml if present)")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	return root
}
