package main

import (
	"fmt"
	"runtime"
	rdebug "runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set at build time with -ldflags "-X main.version=v1.2.3".
var version string

// resolveVersion returns the canonical semantic version of this build, or
// "(devel)" when there is none.
func resolveVersion() string {
	v := version
	if v == "" {
		if bi, ok := rdebug.ReadBuildInfo(); ok {
			v = bi.Main.Version
		}
	}
	return canonicalVersion(v)
}

// canonicalVersion normalizes v to "vMAJOR.MINOR.PATCH[-pre]". A missing "v"
// prefix is added; anything that is still not a semantic version is reported
// as "(devel)".
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "(devel)"
	}
	return semver.Canonical(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "flexui %s (%s %s/%s)\n",
				resolveVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
