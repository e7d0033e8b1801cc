package codec

import "testing"

func TestCPMapTablesUnique(t *testing.T) {
	for c, tbl := range cpTables {
		seenCP := make(map[byte]bool, len(tbl.entries))
		seenUcode := make(map[rune]bool, len(tbl.entries))
		for _, e := range tbl.entries {
			if seenCP[e.cp] {
				t.Errorf("%v: duplicate code page byte 0x%02X", c, e.cp)
			}
			if seenUcode[e.ucode] {
				t.Errorf("%v: duplicate codepoint %U", c, e.ucode)
			}
			seenCP[e.cp] = true
			seenUcode[e.ucode] = true
			if e.descr == "" {
				t.Errorf("%v: entry 0x%02X has no description", c, e.cp)
			}
		}
	}
}

func TestLatin1Encode(t *testing.T) {
	out, res := Encode("café", EhandlerFail, ISO8859_1)
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if out != "caf\xe9" {
		t.Errorf("expected 63 61 66 E9, got % X", out)
	}

	dec, res := Decode(out, EhandlerFail, ISO8859_1)
	if res != ErrorSuccess || dec != "café" {
		t.Errorf("re-decode mismatch: %q %v", dec, res)
	}
}

func TestCPMapEncodeEhandler(t *testing.T) {
	// "例" is not representable in latin_1
	if _, res := Encode("a例b", EhandlerFail, ISO8859_1); res != ErrorFail {
		t.Error("expected ErrorFail, got:", res)
	}

	out, res := Encode("a例b", EhandlerReplace, ISO8859_1)
	if res != ErrorSuccessEhandler || out != "a?b" {
		t.Errorf("replace mismatch: %q %v", out, res)
	}

	out, res = Encode("a例b", EhandlerIgnore, ISO8859_1)
	if res != ErrorSuccessEhandler || out != "ab" {
		t.Errorf("ignore mismatch: %q %v", out, res)
	}
}

func TestCPMapEncodeInvalidUTF8PerScalar(t *testing.T) {
	// A lead byte with a bad continuation is one bad scalar; the bytes after it are walked on their own.
	out, res := Encode("a\xE2\x28\xA1b", EhandlerReplace, ISO8859_1)
	if res != ErrorSuccessEhandler {
		t.Fatal("unexpected result:", res)
	}
	// \xE2 is a bad scalar (bad continuation), \x28 is '(', \xA1 is a bad scalar
	if out != "a?(?b" {
		t.Errorf("per scalar replacement mismatch: %q", out)
	}
}

func TestCPMapDecodeMiss(t *testing.T) {
	// 0x81 is unassigned in cp1252
	out, res := Decode("a\x81b", EhandlerReplace, CP1252)
	if res != ErrorSuccessEhandler || out != "a�b" {
		t.Errorf("replace mismatch: %q %v", out, res)
	}
	if _, res = Decode("a\x81b", EhandlerFail, CP1252); res != ErrorFail {
		t.Error("expected ErrorFail, got:", res)
	}
}

func TestASCIIRange(t *testing.T) {
	// ascii covers exactly 0x00-0x7F and is an identity map
	if len(asciiTable.entries) != 128 {
		t.Fatal("ascii table should have 128 entries, got:", len(asciiTable.entries))
	}
	for _, e := range asciiTable.entries {
		if rune(e.cp) != e.ucode {
			t.Errorf("ascii entry 0x%02X is not identity", e.cp)
		}
	}

	if _, res := Encode("high é", EhandlerFail, ASCII); res != ErrorFail {
		t.Error("non-ascii should fail, got:", res)
	}
}

func TestCPRoundTrip(t *testing.T) {
	cases := []struct {
		codec Codec
		text  string
	}{
		{ISO8859_1, "déjà vu"},
		{ISO8859_2, "žluťoučký"},
		{ISO8859_5, "привет"},
		{ISO8859_7, "γειά"},
		{ISO8859_15, "€uro"},
		{CP1250, "příliš"},
		{CP1251, "здравствуй"},
		{CP1252, "smart “quotes”"},
		{CP874, "ภาษาไทย"},
		{CP037, "HELLO hello 123"},
		{CP500, "HELLO hello 123"},
	}

	for _, c := range cases {
		enc, res := Encode(c.text, EhandlerFail, c.codec)
		if res != ErrorSuccess {
			t.Errorf("%v: encode %q failed: %v", c.codec, c.text, res)
			continue
		}
		dec, res := Decode(enc, EhandlerFail, c.codec)
		if res != ErrorSuccess || dec != c.text {
			t.Errorf("%v: round trip %q = %q (%v)", c.codec, c.text, dec, res)
		}
	}
}
