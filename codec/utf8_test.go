package codec

import "testing"

func TestDecodeCP(t *testing.T) {
	cases := []struct {
		in   string
		cp   rune
		size int
		ok   bool
	}{
		{"a", 'a', 1, true},
		{"é", 0xE9, 2, true},
		{"€", 0x20AC, 3, true},
		{"\U0001F600", 0x1F600, 4, true},
		{"\x80", 0, 0, false},         // bare continuation
		{"\xC0\xAF", 0, 0, false},     // overlong
		{"\xED\xA0\x80", 0, 0, false}, // surrogate
		{"\xF4\x90\x80\x80", 0, 0, false},
		{"\xC3", 0, 0, false}, // truncated
	}

	for _, c := range cases {
		cp, size, ok := decodeCP(c.in, 0)
		if ok != c.ok || cp != c.cp || size != c.size {
			t.Errorf("decodeCP(%q) = (%U, %d, %v), want (%U, %d, %v)",
				c.in, cp, size, ok, c.cp, c.size, c.ok)
		}
	}
}

func TestNextChr(t *testing.T) {
	// A malformed lead with continuations advances as one unit.
	s := "\xF0\x80\x80a"
	if i := nextChr(s, 0); i != 3 {
		t.Error("expected to skip 3 bytes, got:", i)
	}
	if i := nextChr("é!", 0); i != 2 {
		t.Error("expected to skip the 2 byte scalar, got:", i)
	}
	if i := nextChr("a", 5); i != 1 {
		t.Error("past the end should clamp, got:", i)
	}
}

func TestValidUTF8(t *testing.T) {
	if ok, _ := ValidUTF8("plain café 例え"); !ok {
		t.Error("valid string reported invalid")
	}
	ok, pos := ValidUTF8("ab\xffcd")
	if ok {
		t.Error("invalid string reported valid")
	}
	if pos != 2 {
		t.Error("first bad byte should be at 2, got:", pos)
	}
}
