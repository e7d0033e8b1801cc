package main

import (
	"github.com/spf13/cobra"
)

// Version info, override with
// go build -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version info",
	Run: func(cmd *cobra.Command, args []string) {
		logVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func logVersion() {
	mainlog.WithField("version", version).
		WithField("commit", commit).
		Info("textwire")
}
