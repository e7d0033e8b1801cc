package codec

import "testing"

func TestPercentEncode(t *testing.T) {
	cases := []struct {
		in    string
		codec Codec
		want  string
	}{
		{"hello world/?&=+", PercentURL, "hello%20world%2F%3F%26%3D%2B"},
		{"hello world/?&=+", PercentURLPlus, "hello+world%2F%3F%26%3D%2B"},
		{"hello world/?&=+", PercentForm, "hello+world%2F%3F%26%3D%2B"},
		{"a~b", PercentURL, "a~b"},
		{"a~b", PercentForm, "a%7Eb"},
		{"a\r\nb", PercentForm, "a\r\nb"},
		{"a\r\nb", PercentURL, "a%0D%0Ab"},
		{"100%", PercentURL, "100%25"},
		{"hello world/?&=+", PercentURLMin, "hello%20world/?&=+"},
		{"hello world", PercentFormMin, "hello+world"},
		{"café", PercentURL, "caf%C3%A9"},
	}

	for _, c := range cases {
		out, res := Encode(c.in, EhandlerFail, c.codec)
		if res != ErrorSuccess {
			t.Errorf("encode %q (%v): unexpected result %v", c.in, c.codec, res)
			continue
		}
		if out != c.want {
			t.Errorf("encode %q (%v) = %q, want %q", c.in, c.codec, out, c.want)
		}
	}
}

func TestPercentDecode(t *testing.T) {
	cases := []struct {
		in    string
		codec Codec
		want  string
	}{
		{"hello%20world%2F%3F%26%3D%2B", PercentURL, "hello world/?&=+"},
		{"hello+world%2F%3F%26%3D%2B", PercentURLPlus, "hello world/?&=+"},
		{"a+b", PercentURL, "a+b"},
		{"a+b", PercentForm, "a b"},
		{"caf%C3%A9", PercentURL, "café"},
		{"%2f%2F", PercentURL, "//"},
	}

	for _, c := range cases {
		out, res := Decode(c.in, EhandlerFail, c.codec)
		if res != ErrorSuccess {
			t.Errorf("decode %q: unexpected result %v", c.in, res)
			continue
		}
		if out != c.want {
			t.Errorf("decode %q = %q, want %q", c.in, out, c.want)
		}
	}
}

func TestPercentDecodeBad(t *testing.T) {
	// truncated escape
	if _, res := Decode("abc%2", EhandlerFail, PercentURL); res != ErrorFail {
		t.Error("truncated escape should fail, got:", res)
	}
	// non-hex escape
	if _, res := Decode("abc%zz", EhandlerFail, PercentURL); res != ErrorFail {
		t.Error("bad hex should fail, got:", res)
	}
	// non-ascii input
	if _, res := Decode("caf\xe9", EhandlerFail, PercentURL); res != ErrorBadInput {
		t.Error("non-ascii input should be bad input, got:", res)
	}

	out, res := Decode("ab%zzcd", EhandlerReplace, PercentURL)
	if res != ErrorSuccessEhandler {
		t.Error("replace should report ehandler success, got:", res)
	}
	if out != "ab\xff\xfdcd" {
		t.Errorf("replace marker missing, got %q", out)
	}

	out, res = Decode("ab%zzcd", EhandlerIgnore, PercentURL)
	if res != ErrorSuccessEhandler || out != "abcd" {
		t.Errorf("ignore should skip the bad escape, got %q %v", out, res)
	}
}

func TestPercentRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "with space", "sym/?&=+~%", "utf8 café 例え"}
	codecs := []Codec{PercentURL, PercentURLPlus, PercentForm, PercentURLMin, PercentFormMin}

	for _, in := range inputs {
		for _, c := range codecs {
			enc, res := Encode(in, EhandlerFail, c)
			if res != ErrorSuccess {
				t.Errorf("encode %q (%v): %v", in, c, res)
				continue
			}
			dec, res := Decode(enc, EhandlerFail, c)
			if res != ErrorSuccess {
				t.Errorf("decode %q (%v): %v", enc, c, res)
				continue
			}
			if dec != in {
				t.Errorf("round trip %q (%v) = %q", in, c, dec)
			}
		}
	}
}
