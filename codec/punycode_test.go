package codec

import "testing"

func TestPunycodeEncode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"bücher", "bcher-kva"},
		{"mañana", "maana-pta"},
		{"例え", "r8jz45g"},
		{"テスト", "zckzah"},
		{"ascii", "ascii-"},
		{"", ""},
	}

	for _, c := range cases {
		out, res := Encode(c.in, EhandlerFail, Punycode)
		if res != ErrorSuccess {
			t.Errorf("encode %q: unexpected result %v", c.in, res)
			continue
		}
		if out != c.want {
			t.Errorf("encode %q = %q, want %q", c.in, out, c.want)
		}
	}
}

func TestPunycodeDecode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"bcher-kva", "bücher"},
		{"maana-pta", "mañana"},
		{"r8jz45g", "例え"},
		{"zckzah", "テスト"},
		{"ascii-", "ascii"},
	}

	for _, c := range cases {
		out, res := Decode(c.in, EhandlerFail, Punycode)
		if res != ErrorSuccess {
			t.Errorf("decode %q: unexpected result %v", c.in, res)
			continue
		}
		if out != c.want {
			t.Errorf("decode %q = %q, want %q", c.in, out, c.want)
		}
	}
}

func TestPunycodeRoundTrip(t *testing.T) {
	inputs := []string{"bücher", "mañana", "例え.テスト", "über-straße", "日本語"}
	for _, in := range inputs {
		enc, res := Encode(in, EhandlerFail, Punycode)
		if res != ErrorSuccess {
			t.Errorf("encode %q: %v", in, res)
			continue
		}
		dec, res := Decode(enc, EhandlerFail, Punycode)
		if res != ErrorSuccess {
			t.Errorf("decode %q: %v", enc, res)
			continue
		}
		if dec != in {
			t.Errorf("round trip %q via %q = %q", in, enc, dec)
		}
	}
}

func TestPunycodeBadInput(t *testing.T) {
	// encode requires valid utf-8
	if _, res := Encode("ab\xff\xfe", EhandlerReplace, Punycode); res != ErrorBadInput {
		t.Error("invalid utf-8 should be bad input, got:", res)
	}
	// decode requires ascii
	if _, res := Decode("caf\xe9-", EhandlerFail, Punycode); res != ErrorBadInput {
		t.Error("non-ascii punycode should be bad input, got:", res)
	}
	// bad digit
	if _, res := Decode("abc def", EhandlerFail, Punycode); res != ErrorFail {
		t.Error("bad digit should fail, got:", res)
	}
}

func TestPunycodeDigits(t *testing.T) {
	for d := uint32(0); d < punyBase; d++ {
		if got := punyDecodeDigit(punyEncodeDigit(d)); got != d {
			t.Errorf("digit %d does not round trip, got %d", d, got)
		}
	}
	if punyDecodeDigit('!') != punyBase {
		t.Error("invalid digit should decode to base")
	}
}
