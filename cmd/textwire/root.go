package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mailchannels/go-textwire/log"
)

var rootCmd = &cobra.Command{
	Use:   "textwire",
	Short: "wire-text toolkit",
	Long: `Converts text between utf-8 and legacy character sets or transfer
encodings, and parses or re-emits MIME email and XML.`,
	Run: nil,
}

var (
	verbose bool
	mainlog log.Logger
)

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print out more debug information")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
		mainlog, _ = log.GetLogger("stderr")
		if verbose {
			mainlog.SetLevel("debug")
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
