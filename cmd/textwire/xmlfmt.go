package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/mailchannels/go-textwire/xml"
)

var (
	xmlCompact  bool
	xmlUseTabs  bool
	xmlComments bool
)

var xmlfmtCmd = &cobra.Command{
	Use:   "xmlfmt",
	Short: "Parse XML from stdin and re-emit it formatted",
	Run: func(cmd *cobra.Command, args []string) {
		runXMLFmt()
	},
}

func init() {
	xmlfmtCmd.Flags().BoolVar(&xmlCompact, "compact", false, "emit without pretty printing")
	xmlfmtCmd.Flags().BoolVar(&xmlUseTabs, "tabs", false, "indent with tabs instead of spaces")
	xmlfmtCmd.Flags().BoolVar(&xmlComments, "strip-comments", false, "drop comments")
	rootCmd.AddCommand(xmlfmtCmd)
}

func runXMLFmt() {
	in, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		mainlog.WithError(err).Fatal("could not read stdin")
	}

	doc, err := xml.Read(in, xml.ReaderFlagsNone)
	if err != nil {
		mainlog.WithError(err).Fatal("parse failed")
	}

	flags := xml.PrettyPrintSpace
	if xmlUseTabs {
		flags = xml.PrettyPrintTab
	}
	if xmlCompact {
		flags = xml.WriterFlagsNone
	}
	if xmlComments {
		flags |= xml.WriterIgnoreComments
	}

	fmt.Println(xml.WriteString(doc, flags))
}
