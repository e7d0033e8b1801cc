package codec

import (
	"strings"
	"testing"
)

func TestQuotedPrintableEncode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"a=b", "a=3Db"},
		{"café", "caf=C3=A9"},
		{"tab\there", "tab\there"},
		{"line\r\nbreak", "line\r\nbreak"},
		{"\x00", "=00"},
	}

	for _, c := range cases {
		out, res := Encode(c.in, EhandlerFail, QuotedPrintable)
		if res != ErrorSuccess {
			t.Errorf("encode %q: unexpected result %v", c.in, res)
			continue
		}
		if out != c.want {
			t.Errorf("encode %q = %q, want %q", c.in, out, c.want)
		}
	}
}

func TestQuotedPrintableSoftBreak(t *testing.T) {
	in := strings.Repeat("x", 100)
	out, res := Encode(in, EhandlerFail, QuotedPrintable)
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if !strings.Contains(out, "=\r\n") {
		t.Error("long line should contain a soft break")
	}
	for _, line := range strings.Split(out, "\r\n") {
		if len(line) > 76 {
			t.Error("line exceeds 76 characters:", len(line))
		}
	}

	dec, res := Decode(out, EhandlerFail, QuotedPrintable)
	if res != ErrorSuccess || dec != in {
		t.Error("soft broken line should decode back to the input")
	}
}

func TestQuotedPrintableDecode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"J'interdis=\r\n aux serveurs", "J'interdis aux serveurs"},
		{"a=3Db", "a=b"},
		{"a=3db", "a=b"}, // lower case hex tolerated
		{"caf=C3=A9", "café"},
		{"no escapes", "no escapes"},
	}

	for _, c := range cases {
		out, res := Decode(c.in, EhandlerFail, QuotedPrintable)
		if res != ErrorSuccess {
			t.Errorf("decode %q: unexpected result %v", c.in, res)
			continue
		}
		if out != c.want {
			t.Errorf("decode %q = %q, want %q", c.in, out, c.want)
		}
	}
}

func TestQuotedPrintableDecodeBad(t *testing.T) {
	if _, res := Decode("abc=zz", EhandlerFail, QuotedPrintable); res != ErrorFail {
		t.Error("bad sequence should fail, got:", res)
	}
	if _, res := Decode("abc=a", EhandlerFail, QuotedPrintable); res != ErrorFail {
		t.Error("truncated sequence should fail, got:", res)
	}

	out, res := Decode("ab=zzcd", EhandlerReplace, QuotedPrintable)
	if res != ErrorSuccessEhandler || out != "ab\xff\xfdzzcd" {
		t.Errorf("replace mismatch: %q %v", out, res)
	}

	out, res = Decode("ab=a", EhandlerReplace, QuotedPrintable)
	if res != ErrorSuccessEhandler || out != "ab\xff\xfd" {
		t.Errorf("replace at tail mismatch: %q %v", out, res)
	}

	out, res = Decode("ab=zzcd", EhandlerIgnore, QuotedPrintable)
	if res != ErrorSuccessEhandler || out != "abzzcd" {
		t.Errorf("ignore mismatch: %q %v", out, res)
	}
}

func TestQuotedPrintableRoundTrip(t *testing.T) {
	inputs := []string{"plain", "with = sign", "café 例え", "multi\r\nline"}
	for _, in := range inputs {
		enc, res := Encode(in, EhandlerFail, QuotedPrintable)
		if res != ErrorSuccess {
			t.Errorf("encode %q: %v", in, res)
			continue
		}
		dec, res := Decode(enc, EhandlerFail, QuotedPrintable)
		if res != ErrorSuccess || dec != in {
			t.Errorf("round trip %q via %q = %q (%v)", in, enc, dec, res)
		}
	}
}
