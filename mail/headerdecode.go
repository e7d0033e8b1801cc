package mail

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/mailchannels/go-textwire/codec"
)

var encodedWordRegex = regexp.MustCompile(`=\?(.+?)\?([QBqb])\?(.+?)\?=`)

// DecodeHeader decodes strings in MIME encoded-word format,
// eg. =?ISO-8859-1?Q?caf=E9?= or =?UTF-8?B?w6l0w6k=?=
// Character sets outside the built-in tables are reached through the
// registered codec fallback (see codec/encoding and codec/iconv).
func DecodeHeader(str string) string {
	matched := encodedWordRegex.FindAllStringSubmatch(str, -1)
	if matched == nil {
		return str
	}

	for _, match := range matched {
		if len(match) < 4 {
			continue
		}
		charset := match[1]
		encoding := strings.ToUpper(match[2])
		payload := match[3]

		switch encoding {
		case "B":
			str = strings.Replace(str, match[0], transportDecode(payload, "base64", charset), 1)
		case "Q":
			str = strings.Replace(str, match[0], transportDecode(payload, "quoted-printable", charset), 1)
		}
	}
	return str
}

// transportDecode decodes from 7bit transport form to utf-8.
// encodingType can be "base64" or "quoted-printable".
func transportDecode(str, encodingType, charset string) string {
	if charset == "" {
		charset = "UTF-8"
	} else {
		charset = strings.ToUpper(charset)
	}

	switch encodingType {
	case "base64":
		str = fromBase64(str)
	case "quoted-printable":
		str = fromQuotedP(str)
	}

	if !strings.EqualFold(charset, "UTF-8") {
		if out, res := codec.DecodeCharset(str, fixCharset(charset), codec.EhandlerReplace); !res.IsError() {
			return out
		}
	}
	return str
}

func fromBase64(data string) string {
	res, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return data
	}
	return string(res)
}

func fromQuotedP(data string) string {
	// encoded-word Q encoding writes space as underscore
	data = strings.Map(func(r rune) rune {
		if r == '_' {
			return ' '
		}
		return r
	}, data)
	var buf bytes.Buffer
	if res := codec.DecodeBuf(codec.NewBufferSink(&buf), data, codec.EhandlerIgnore, codec.QuotedPrintable); res.IsError() {
		return data
	}
	return buf.String()
}

var charsetSepRegex = regexp.MustCompile(`[_:.\/\\]`)

// fixCharset normalizes the charset label spellings seen in the wild.
func fixCharset(charset string) string {
	fixed := charsetSepRegex.ReplaceAllString(strings.ToLower(charset), "-")
	// OE ks_c_5601_1987 > cp949
	fixed = strings.Replace(fixed, "ks-c-5601-1987", "cp949", -1)
	// Moz x-euc-tw > euc-tw
	fixed = strings.Replace(fixed, "x-euc", "euc", -1)
	// Moz x-windows-949 > cp949
	fixed = strings.Replace(fixed, "x-windows-", "cp", -1)
	// windows-125x and cp125x charsets
	fixed = strings.Replace(fixed, "windows-", "cp", -1)
	// ibm > cp
	fixed = strings.Replace(fixed, "ibm", "cp", -1)
	// iso-8859-8-i -> iso-8859-8
	fixed = strings.Replace(fixed, "iso-8859-8-i", "iso-8859-8", -1)
	return fixed
}
