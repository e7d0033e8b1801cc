package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mailchannels/go-textwire/codec"
	// register the pure Go charset fallback
	_ "github.com/mailchannels/go-textwire/codec/encoding"
)

var (
	codecName    string
	ehandlerName string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode stdin from utf-8 into the given codec",
	Run: func(cmd *cobra.Command, args []string) {
		runCodec(true)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode stdin from the given codec into utf-8",
	Run: func(cmd *cobra.Command, args []string) {
		runCodec(false)
	},
}

var codecsCmd = &cobra.Command{
	Use:   "codecs",
	Short: "List the built-in codec names",
	Run: func(cmd *cobra.Command, args []string) {
		listCodecs()
	},
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().StringVarP(&codecName, "codec", "c", "utf-8", "codec name, see the codecs command")
		c.Flags().StringVarP(&ehandlerName, "ehandler", "e", "fail", "error handling: fail, replace or ignore")
	}
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(codecsCmd)
}

func parseEhandler(name string) (codec.Ehandler, error) {
	switch name {
	case "fail":
		return codec.EhandlerFail, nil
	case "replace":
		return codec.EhandlerReplace, nil
	case "ignore":
		return codec.EhandlerIgnore, nil
	}
	return codec.EhandlerFail, fmt.Errorf("unknown ehandler %q", name)
}

func runCodec(isEncode bool) {
	eh, err := parseEhandler(ehandlerName)
	if err != nil {
		mainlog.WithError(err).Fatal("bad --ehandler")
	}

	in, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		mainlog.WithError(err).Fatal("could not read stdin")
	}

	var (
		out string
		res codec.Error
	)
	if isEncode {
		out, res = codec.EncodeCharset(string(in), codecName, eh)
	} else {
		out, res = codec.DecodeCharset(string(in), codecName, eh)
	}
	if res.IsError() {
		mainlog.WithField("result", res.String()).Fatal("conversion failed")
	}
	mainlog.WithField("codec", codecName).Debug("conversion done")

	fmt.Print(out)
}

func listCodecs() {
	codecs := []codec.Codec{
		codec.UTF8, codec.ASCII,
		codec.ISO8859_1, codec.ISO8859_2, codec.ISO8859_3, codec.ISO8859_4,
		codec.ISO8859_5, codec.ISO8859_6, codec.ISO8859_7, codec.ISO8859_8,
		codec.ISO8859_9, codec.ISO8859_10, codec.ISO8859_11, codec.ISO8859_13,
		codec.ISO8859_14, codec.ISO8859_15, codec.ISO8859_16,
		codec.CP037, codec.CP500, codec.CP874,
		codec.CP1250, codec.CP1251, codec.CP1252, codec.CP1253, codec.CP1254,
		codec.CP1255, codec.CP1256, codec.CP1257, codec.CP1258,
		codec.PercentURL, codec.PercentURLPlus, codec.PercentForm,
		codec.PercentURLMin, codec.PercentFormMin,
		codec.Punycode, codec.QuotedPrintable,
	}

	names := make([]string, 0, len(codecs))
	for _, c := range codecs {
		names = append(names, c.String())
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}
