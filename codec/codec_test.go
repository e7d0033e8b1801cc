package codec

import (
	"bytes"
	"testing"
)

func TestFromString(t *testing.T) {
	cases := []struct {
		name string
		want Codec
	}{
		{"utf-8", UTF8},
		{"UTF8", UTF8},
		{"ascii", ASCII},
		{"us-ascii", ASCII},
		{"latin_1", ISO8859_1},
		{"ISO-8859-1", ISO8859_1},
		{"8859", ISO8859_1},
		{"cp819", ISO8859_1},
		{"l9", ISO8859_15},
		{"iso-8859-16", ISO8859_16},
		{"cyrillic", ISO8859_5},
		{"windows-1252", CP1252},
		{"cp037", CP037},
		{"ebcdic-cp-ch", CP500},
		{"tis-620", CP874},
		{"percent", PercentURL},
		{"url", PercentURL},
		{"url_plus", PercentURLPlus},
		{"application/x-www-form-urlencoded", PercentForm},
		{"percent_min", PercentURLMin},
		{"form_min", PercentFormMin},
		{"puny", Punycode},
		{"qp", QuotedPrintable},
		{"", Unknown},
		{"klingon", Unknown},
	}

	for _, c := range cases {
		if got := FromString(c.name); got != c.want {
			t.Errorf("FromString(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCodecString(t *testing.T) {
	if ISO8859_1.String() != "latin_1" {
		t.Error("ISO8859_1 canonical name should be latin_1, got:", ISO8859_1.String())
	}
	if QuotedPrintable.String() != "quoted-printable" {
		t.Error("wrong canonical name:", QuotedPrintable.String())
	}
	// every canonical name must resolve back to its codec
	for c, name := range codecStrings {
		if FromString(name) != c {
			t.Errorf("canonical name %q does not round trip", name)
		}
	}
}

func TestEncodeInvalidParam(t *testing.T) {
	if res := EncodeBuf(nil, "x", EhandlerFail, UTF8); res != ErrorInvalidParam {
		t.Error("nil sink should be ErrorInvalidParam, got:", res)
	}
	var buf bytes.Buffer
	if res := EncodeBuf(NewBufferSink(&buf), "x", Ehandler(99), UTF8); res != ErrorInvalidParam {
		t.Error("bad ehandler should be ErrorInvalidParam, got:", res)
	}
	if res := EncodeBuf(NewBufferSink(&buf), "x", EhandlerFail, Codec(9999)); res != ErrorInvalidParam {
		t.Error("bad codec should be ErrorInvalidParam, got:", res)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	if res := EncodeBuf(NewBufferSink(&buf), "", EhandlerFail, ISO8859_1); res != ErrorSuccess {
		t.Error("empty input should succeed, got:", res)
	}
	if buf.Len() != 0 {
		t.Error("empty input should leave the sink unchanged")
	}
}

func TestUTF8ToUTF8Valid(t *testing.T) {
	in := "café 例え"
	for _, eh := range []Ehandler{EhandlerFail, EhandlerReplace, EhandlerIgnore} {
		out, res := Encode(in, eh, UTF8)
		if res != ErrorSuccess {
			t.Errorf("ehandler %v: expected success, got %v", eh, res)
		}
		if out != in {
			t.Errorf("ehandler %v: utf-8 to utf-8 should be identity", eh)
		}
	}
}

func TestUTF8ToUTF8Invalid(t *testing.T) {
	in := "ab\xff\xfecd"

	if _, res := Encode(in, EhandlerFail, UTF8); res != ErrorBadInput && res != ErrorFail {
		t.Error("invalid utf-8 with fail handler should error, got:", res)
	}

	out, res := Decode(in, EhandlerReplace, UTF8)
	if res != ErrorSuccessEhandler {
		t.Error("expected ErrorSuccessEhandler, got:", res)
	}
	if out != "ab��cd" {
		t.Errorf("expected one U+FFFD per invalid scalar, got %q", out)
	}

	out, res = Decode(in, EhandlerIgnore, UTF8)
	if res != ErrorSuccessEhandler {
		t.Error("ignore should report ErrorSuccessEhandler, got:", res)
	}
	if out != in {
		t.Error("ignore should copy the input through")
	}
}

func TestEncodeUnrepresentableFails(t *testing.T) {
	// Thai text is not representable in latin_1.
	if _, res := Encode("ก", EhandlerFail, ISO8859_1); res != ErrorFail {
		t.Error("expected ErrorFail, got:", res)
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	if !s.AddStr("abc") || !s.AddByte('d') {
		t.Error("writes to a buffer should not fail")
	}
	if s.Len() != 4 || buf.String() != "abcd" {
		t.Error("writer sink mismatch:", buf.String())
	}
}

func TestDecodeCharsetBuiltin(t *testing.T) {
	out, res := DecodeCharset("caf\xe9", "iso-8859-1", EhandlerFail)
	if res != ErrorSuccess {
		t.Error("expected success, got:", res)
	}
	if out != "café" {
		t.Errorf("expected café, got %q", out)
	}
}

func TestDecodeCharsetFallback(t *testing.T) {
	RegisterFallback(func(label string) (Converter, bool) {
		if label == "x-test" {
			return rot13{}, true
		}
		return nil, false
	})
	defer RegisterFallback(nil)

	out, res := DecodeCharset("nop", "x-test", EhandlerFail)
	if res != ErrorSuccess || out != "abc" {
		t.Errorf("fallback decode failed: %q %v", out, res)
	}
	if _, res = DecodeCharset("x", "x-missing", EhandlerFail); !res.IsError() {
		t.Error("unknown label with no fallback match should error")
	}
}

type rot13 struct{}

func (rot13) ToUTF8(in string) (string, error)   { return rot(in), nil }
func (rot13) FromUTF8(in string) (string, error) { return rot(in), nil }

func rot(in string) string {
	out := []byte(in)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+13)%26
		}
	}
	return string(out)
}
