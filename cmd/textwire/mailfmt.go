package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/mailchannels/go-textwire/mail"
)

var mailDecodeHeaders bool

var mailfmtCmd = &cobra.Command{
	Use:   "mailfmt",
	Short: "Parse a MIME email from stdin and re-emit the canonical form",
	Run: func(cmd *cobra.Command, args []string) {
		runMailFmt()
	},
}

func init() {
	mailfmtCmd.Flags().BoolVar(&mailDecodeHeaders, "decode-headers", false,
		"decode MIME encoded-word headers to utf-8")
	rootCmd.AddCommand(mailfmtCmd)
}

func runMailFmt() {
	in, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		mainlog.WithError(err).Fatal("could not read stdin")
	}

	flags := mail.ReadFlagsNone
	if mailDecodeHeaders {
		flags |= mail.ReadDecodeHeaders
	}

	m, lenRead, res := mail.SimpleRead(in, flags)
	if m == nil {
		mainlog.WithField("result", res.String()).Fatal("parse failed")
	}
	if res.IsFatal() {
		mainlog.WithField("result", res.String()).Fatal("parse failed")
	}
	mainlog.WithField("consumed", lenRead).Debug("message read")

	fmt.Print(m.String())
}
