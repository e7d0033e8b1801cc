package xml

import "testing"

func TestEncodeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a & b`, "a &amp; b"},
		{`<tag>`, "&lt;tag&gt;"},
		{`"q" 'a'`, "&quot;q&quot; &apos;a&apos;"},
	}
	for _, c := range cases {
		if got := EncodeText(c.in); got != c.want {
			t.Errorf("EncodeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a &amp; b", "a & b"},
		{"&lt;tag&gt;", "<tag>"},
		{"line&#xA;break", "line\nbreak"},
		{"cr&#xD;here", "cr\rhere"},
		{"&unknown; stays", "&unknown; stays"},
	}
	for _, c := range cases {
		if got := DecodeText(c.in); got != c.want {
			t.Errorf("DecodeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAttributeEntities(t *testing.T) {
	// apostrophe and '>' are attribute safe, '<' is encoded
	if got := EncodeAttribute(`a'b>c`); got != `a'b>c` {
		t.Errorf("got %q", got)
	}
	if got := EncodeAttribute(`a"b<c&d`); got != "a&quot;b&lt;c&amp;d" {
		t.Errorf("got %q", got)
	}
}

func TestEntityRoundTrip(t *testing.T) {
	inputs := []string{"plain", `<a href="x">&amp;</a>`, `"all' < the > &special;`}
	for _, in := range inputs {
		if got := DecodeText(EncodeText(in)); got != in {
			t.Errorf("round trip %q = %q", in, got)
		}
	}
}
