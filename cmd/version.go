package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/create-skeleton-app/internal/list"
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go"`
	Platform  string `json:"platform"`
}

var build = buildInfo{
	Version:   "dev",
	Commit:    "none",
	GoVersion: runtime.Version(),
	Platform:  runtime.GOOS + "/" + runtime.GOARCH,
}

var versionOutputFormat string

// SetVersionInfo records the version and commit stamped in at link time.
// Empty or placeholder values fall back to what `go install` embedded.
func SetVersionInfo(version, commit string) {
	if version != "" && version != "dev" {
		build.Version = version
	}

	if commit != "" && commit != "none" {
		build.Commit = commit
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		build = withModuleInfo(build, bi)
	}
}

// withModuleInfo fills placeholder fields from the module build info.
func withModuleInfo(b buildInfo, bi *debug.BuildInfo) buildInfo {
	if b.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		b.Version = bi.Main.Version
	}

	if b.Commit != "none" {
		return b
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			b.Commit = s.Value
			if len(b.Commit) > 12 {
				b.Commit = b.Commit[:12]
			}
		}
	}

	return b
}

func writeVersion(w io.Writer, b buildInfo, format string) error {
	switch format {
	case list.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(b)
	case "", "text":
		_, err := fmt.Fprintf(w, "create-skeleton-app %s\n  commit:   %s\n  go:       %s\n  platform: %s\n",
			b.Version, b.Commit, b.GoVersion, b.Platform)

		return err
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeVersion(cmd.OutOrStdout(), build, versionOutputFormat)
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutputFormat, "output", "o", "text", "output format (text, json)")
	rootCmd.AddCommand(versionCmd)
}
