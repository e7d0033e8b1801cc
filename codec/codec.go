// Package codec converts text between utf-8 and a number of wire and
// legacy representations: single byte code pages (ascii, the iso-8859
// family, Windows and EBCDIC code pages), percent encoding, punycode
// and quoted-printable.
//
// Conversions are whole string operations, there is no streaming codec
// state. Every entry point takes an Ehandler which decides what happens
// when input can't be represented. On any Error that IsError() the sink
// contents are undefined, use a fresh sink per call.
package codec

import "strings"

// Codec identifies a conversion.
type Codec int

const (
	Unknown Codec = iota
	UTF8
	ASCII
	CP037
	CP500
	CP874
	CP1250
	CP1251
	CP1252
	CP1253
	CP1254
	CP1255
	CP1256
	CP1257
	CP1258
	ISO8859_1
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_9
	ISO8859_10
	ISO8859_11
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16
	PercentURL
	PercentURLPlus
	PercentForm
	PercentURLMin
	PercentFormMin
	Punycode
	QuotedPrintable
)

// aliases maps every recognized name to its codec. Lookup is case
// insensitive, names are stored lowercased.
var aliases = map[string]Codec{
	"utf8":  UTF8,
	"utf-8": UTF8,
	"utf_8": UTF8,

	"ascii":    ASCII,
	"us-ascii": ASCII,

	"cp037":   CP037,
	"ibm037":  CP037,
	"ibm-037": CP037,
	"ibm039":  CP037,
	"ibm-039": CP037,
	"ebcdic-cp-us": CP037,
	"ebcdic-cp-ca": CP037,

	"cp500":        CP500,
	"ibm500":       CP500,
	"ibm-500":      CP500,
	"ebcdic-cp-be": CP500,
	"ebcdic-cp-ch": CP500,

	"cp874":       CP874,
	"windows-874": CP874,
	"tis-620":     CP874,

	"cp1250": CP1250, "windows-1250": CP1250,
	"cp1251": CP1251, "windows-1251": CP1251,
	"cp1252": CP1252, "windows-1252": CP1252,
	"cp1253": CP1253, "windows-1253": CP1253,
	"cp1254": CP1254, "windows-1254": CP1254,
	"cp1255": CP1255, "windows-1255": CP1255,
	"cp1256": CP1256, "windows-1256": CP1256,
	"cp1257": CP1257, "windows-1257": CP1257,
	"cp1258": CP1258, "windows-1258": CP1258,

	"latin_1": ISO8859_1, "latin-1": ISO8859_1, "latin1": ISO8859_1,
	"latin 1": ISO8859_1, "latin": ISO8859_1, "l1": ISO8859_1,
	"iso-8859-1": ISO8859_1, "iso8859-1": ISO8859_1, "iso8859_1": ISO8859_1,
	"iso88591": ISO8859_1, "8859": ISO8859_1, "88591": ISO8859_1,
	"cp819": ISO8859_1,

	"latin_2": ISO8859_2, "latin-2": ISO8859_2, "latin2": ISO8859_2,
	"latin 2": ISO8859_2, "l2": ISO8859_2,
	"iso-8859-2": ISO8859_2, "iso8859-2": ISO8859_2, "iso8859_2": ISO8859_2,
	"iso88592": ISO8859_2, "88592": ISO8859_2,

	"latin_3": ISO8859_3, "latin-3": ISO8859_3, "latin3": ISO8859_3,
	"latin 3": ISO8859_3, "l3": ISO8859_3,
	"iso-8859-3": ISO8859_3, "iso8859-3": ISO8859_3, "iso8859_3": ISO8859_3,
	"iso88593": ISO8859_3, "88593": ISO8859_3,

	"latin_4": ISO8859_4, "latin-4": ISO8859_4, "latin4": ISO8859_4,
	"latin 4": ISO8859_4, "l4": ISO8859_4,
	"iso-8859-4": ISO8859_4, "iso8859-4": ISO8859_4, "iso8859_4": ISO8859_4,
	"iso88594": ISO8859_4, "88594": ISO8859_4,

	"cyrillic":   ISO8859_5,
	"iso-8859-5": ISO8859_5, "iso8859-5": ISO8859_5, "iso8859_5": ISO8859_5,
	"iso88595": ISO8859_5, "88595": ISO8859_5,

	"arabic":     ISO8859_6,
	"iso-8859-6": ISO8859_6, "iso8859-6": ISO8859_6, "iso8859_6": ISO8859_6,
	"iso88596": ISO8859_6, "88596": ISO8859_6,

	"greek": ISO8859_7, "greek8": ISO8859_7,
	"iso-8859-7": ISO8859_7, "iso8859-7": ISO8859_7, "iso8859_7": ISO8859_7,
	"iso88597": ISO8859_7, "88597": ISO8859_7,

	"hebrew":     ISO8859_8,
	"iso-8859-8": ISO8859_8, "iso8859-8": ISO8859_8, "iso8859_8": ISO8859_8,
	"iso88598": ISO8859_8, "88598": ISO8859_8,

	"latin_5": ISO8859_9, "latin-5": ISO8859_9, "latin5": ISO8859_9,
	"latin 5": ISO8859_9, "l5": ISO8859_9,
	"iso-8859-9": ISO8859_9, "iso8859-9": ISO8859_9, "iso8859_9": ISO8859_9,
	"iso88599": ISO8859_9, "88599": ISO8859_9,

	"latin_6": ISO8859_10, "latin-6": ISO8859_10, "latin6": ISO8859_10,
	"latin 6": ISO8859_10, "l6": ISO8859_10,
	"iso-8859-10": ISO8859_10, "iso8859-10": ISO8859_10, "iso8859_10": ISO8859_10,
	"iso885910": ISO8859_10, "885910": ISO8859_10,

	"thai":        ISO8859_11,
	"iso-8859-11": ISO8859_11, "iso8859-11": ISO8859_11, "iso8859_11": ISO8859_11,
	"iso885911": ISO8859_11, "885911": ISO8859_11,

	"latin_7": ISO8859_13, "latin-7": ISO8859_13, "latin7": ISO8859_13,
	"latin 7": ISO8859_13, "l7": ISO8859_13,
	"iso-8859-13": ISO8859_13, "iso8859-13": ISO8859_13, "iso8859_13": ISO8859_13,
	"iso885913": ISO8859_13, "885913": ISO8859_13,

	"latin_8": ISO8859_14, "latin-8": ISO8859_14, "latin8": ISO8859_14,
	"latin 8": ISO8859_14, "l8": ISO8859_14,
	"iso-8859-14": ISO8859_14, "iso8859-14": ISO8859_14, "iso8859_14": ISO8859_14,
	"iso885914": ISO8859_14, "885914": ISO8859_14,

	"latin_9": ISO8859_15, "latin-9": ISO8859_15, "latin9": ISO8859_15,
	"latin 9": ISO8859_15, "l9": ISO8859_15,
	"iso-8859-15": ISO8859_15, "iso8859-15": ISO8859_15, "iso8859_15": ISO8859_15,
	"iso885915": ISO8859_15, "885915": ISO8859_15,

	"latin_10": ISO8859_16, "latin-10": ISO8859_16, "latin10": ISO8859_16,
	"latin 10": ISO8859_16, "l10": ISO8859_16,
	"iso-8859-16": ISO8859_16, "iso8859-16": ISO8859_16, "iso8859_16": ISO8859_16,
	"iso885916": ISO8859_16, "885916": ISO8859_16,

	"percent": PercentURL,
	"url":     PercentURL,

	"percent_plus": PercentURLPlus, "percent-plus": PercentURLPlus,
	"percentplus": PercentURLPlus,
	"url_plus": PercentURLPlus, "url-plus": PercentURLPlus,
	"urlplus": PercentURLPlus,

	"application/x-www-form-urlencoded": PercentForm,
	"x-www-form-urlencoded":             PercentForm,
	"www-form-urlencoded":               PercentForm,
	"form-urlencoded":                   PercentForm,
	"form":                              PercentForm,

	"percent_min": PercentURLMin,
	"url_min":     PercentURLMin,

	"form_min":            PercentFormMin,
	"form-urlencoded-min": PercentFormMin,

	"punycode": Punycode,
	"puny":     Punycode,

	"quoted-printable": QuotedPrintable,
	"qp":               QuotedPrintable,
}

// FromString resolves a codec name, honoring the common aliases for
// each character set (e.g. "latin_1", "iso-8859-1", "8859" and "cp819"
// all resolve to ISO8859_1). Unrecognized names resolve to Unknown.
func FromString(s string) Codec {
	if s == "" {
		return Unknown
	}
	if c, ok := aliases[strings.ToLower(s)]; ok {
		return c
	}
	return Unknown
}

var codecStrings = map[Codec]string{
	UTF8:            "utf-8",
	ASCII:           "ascii",
	CP037:           "cp037",
	CP500:           "cp500",
	CP874:           "cp874",
	CP1250:          "cp1250",
	CP1251:          "cp1251",
	CP1252:          "cp1252",
	CP1253:          "cp1253",
	CP1254:          "cp1254",
	CP1255:          "cp1255",
	CP1256:          "cp1256",
	CP1257:          "cp1257",
	CP1258:          "cp1258",
	ISO8859_1:       "latin_1",
	ISO8859_2:       "latin_2",
	ISO8859_3:       "latin_3",
	ISO8859_4:       "latin_4",
	ISO8859_5:       "cyrillic",
	ISO8859_6:       "arabic",
	ISO8859_7:       "greek",
	ISO8859_8:       "hebrew",
	ISO8859_9:       "latin_5",
	ISO8859_10:      "latin_6",
	ISO8859_11:      "thai",
	ISO8859_13:      "latin_7",
	ISO8859_14:      "latin_8",
	ISO8859_15:      "latin_9",
	ISO8859_16:      "latin_10",
	PercentURL:      "percent",
	PercentURLPlus:  "percent_plus",
	PercentForm:     "application/x-www-form-urlencoded",
	PercentURLMin:   "percent_min",
	PercentFormMin:  "form_min",
	Punycode:        "punycode",
	QuotedPrintable: "quoted-printable",
}

// String returns the canonical name for the codec.
func (c Codec) String() string {
	return codecStrings[c]
}
