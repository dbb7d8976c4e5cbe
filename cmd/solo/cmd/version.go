package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/oneconcern/solo/cmd/solo/cmd.Version=..."
var (
	Version   string
	BuildDate string
	GitCommit string
)

// VersionInfo describes the build of the solo binary
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
}

// NewVersionInfo collects the build information, defaulting to a dev build
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf bytes.Buffer
	buf.WriteString("Version: ")
	buf.WriteString(v.Version)
	buf.WriteString("\n")
	if v.BuildDate != "" {
		buf.WriteString("Build date: ")
		buf.WriteString(v.BuildDate)
		buf.WriteString("\n")
	}
	if v.GitCommit != "" {
		buf.WriteString("Commit: ")
		buf.WriteString(v.GitCommit)
		buf.WriteString("\n")
	}
	return buf.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version of solo",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = cmd.OutOrStdout().Write([]byte(NewVersionInfo().String()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
