package xml

import "testing"

func TestReadBasic(t *testing.T) {
	in := `<?xml version="1.0"?><root a="1" b='2'>t<b/></root>`

	doc, err := Read([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if doc.Type() != TypeDoc || doc.NumChildren() != 2 {
		t.Fatal("expected a doc with 2 children, got:", doc.NumChildren())
	}

	pi := doc.Child(0)
	if pi.Type() != TypeProcessingInstruction || pi.Name() != "xml" {
		t.Error("first child should be the xml declaration:", pi.Type(), pi.Name())
	}
	if v := pi.AttributeValue("version"); v != "1.0" {
		t.Error("version attribute:", v)
	}

	root := doc.Child(1)
	if root.Type() != TypeElement || root.Name() != "root" {
		t.Fatal("second child should be the root element")
	}

	if root.NumAttributes() != 2 {
		t.Fatal("expected 2 attributes, got:", root.NumAttributes())
	}
	// insertion order preserved
	var keys []string
	root.EachAttribute(func(key, val string) { keys = append(keys, key+"="+val) })
	if keys[0] != "a=1" || keys[1] != "b=2" {
		t.Error("attribute order or values wrong:", keys)
	}

	if root.NumChildren() != 2 {
		t.Fatal("expected text and element children, got:", root.NumChildren())
	}
	if txt := root.Child(0); txt.Type() != TypeText || txt.Text() != "t" {
		t.Error("text child wrong:", txt.Type(), txt.Text())
	}
	if b := root.Child(1); b.Type() != TypeElement || b.Name() != "b" || b.NumChildren() != 0 {
		t.Error("empty element child wrong")
	}
}

func TestReadNested(t *testing.T) {
	in := "<a><b><c>deep</c></b><b2>x</b2></a>"
	doc, err := Read([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	a := doc.Child(0)
	if a.NumChildren() != 2 {
		t.Fatal("expected 2 children of a")
	}
	c := a.Child(0).Child(0)
	if c.Name() != "c" || c.Child(0).Text() != "deep" {
		t.Error("nested structure wrong")
	}
	if c.Parent().Parent() != a {
		t.Error("parent links wrong")
	}
}

func TestReadCDATA(t *testing.T) {
	in := "<a><![CDATA[1 < 2 &amp; so on]]></a>"
	doc, err := Read([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	txt := doc.Child(0).Child(0)
	if txt.Type() != TypeText {
		t.Fatal("CDATA should become a text node")
	}
	// CDATA content is entity decoded like regular text
	if txt.Text() != "1 < 2 & so on" {
		t.Errorf("got %q", txt.Text())
	}
}

func TestReadComment(t *testing.T) {
	in := "<a><!-- note --></a>"

	doc, err := Read([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	c := doc.Child(0).Child(0)
	if c.Type() != TypeComment || c.TagData() != "note" {
		t.Error("comment node wrong:", c.Type(), c.TagData())
	}

	doc, err = Read([]byte(in), ReaderIgnoreComments)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if doc.Child(0).NumChildren() != 0 {
		t.Error("comments should be dropped under the flag")
	}
}

func TestReadDeclaration(t *testing.T) {
	in := "<!DOCTYPE html><root/>"
	doc, err := Read([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	d := doc.Child(0)
	if d.Type() != TypeDeclaration || d.Name() != "DOCTYPE" || d.TagData() != "html" {
		t.Error("declaration wrong:", d.Name(), d.TagData())
	}
}

func TestReadEntitiesInTextAndAttrs(t *testing.T) {
	in := `<a k="1 &amp; 2">x &lt; y</a>`

	doc, err := Read([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	a := doc.Child(0)
	if v := a.AttributeValue("k"); v != "1 & 2" {
		t.Error("attribute not decoded:", v)
	}
	if txt := a.Child(0).Text(); txt != "x < y" {
		t.Error("text not decoded:", txt)
	}

	doc, err = Read([]byte(in), DontDecodeAttrs|DontDecodeText)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	a = doc.Child(0)
	if v := a.AttributeValue("k"); v != "1 &amp; 2" {
		t.Error("attribute should stay encoded:", v)
	}
	if txt := a.Child(0).Text(); txt != "x &lt; y" {
		t.Error("text should stay encoded:", txt)
	}
}

func TestReadTagCase(t *testing.T) {
	in := "<Tag>x</TAG>"

	if _, err := Read([]byte(in), ReaderFlagsNone); err == nil {
		t.Error("case mismatch should fail by default")
	}

	if _, err := Read([]byte(in), TagCasecmp); err != nil {
		t.Error("case mismatch should pass under TagCasecmp:", err)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrMisuse},
		{"<a>x", ErrMissingCloseTag},
		{"<a>x</b>", ErrUnexpectedClose},
		{"<?xml version=\"1.0\"?>", ErrNoElements},
		{"<a/><b/>", ErrExpectedEnd},
		{"<a x=\"1\" x=\"2\"/>", ErrAttrExists},
		{"<<a/>", ErrInvalidCharInStartTag},
		{"</a>", ErrIneligibleForClose},
		{"<?xml version=\"1.0\"><a/>", ErrMissingProcessingInstructionEnd},
	}

	for _, c := range cases {
		_, err := Read([]byte(c.in), ReaderFlagsNone)
		if err == nil {
			t.Errorf("%q: expected error %v", c.in, c.code)
			continue
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Errorf("%q: expected *ParseError, got %T", c.in, err)
			continue
		}
		if pe.Code != c.code {
			t.Errorf("%q: got %v, want %v", c.in, pe.Code, c.code)
		}
	}
}

func TestReadErrorPosition(t *testing.T) {
	in := "<a>\n<b>\n</c>\n</a>"
	_, err := Read([]byte(in), ReaderFlagsNone)
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatal("expected *ParseError, got:", err)
	}
	if pe.Code != ErrUnexpectedClose {
		t.Error("code:", pe.Code)
	}
	if pe.Line != 3 {
		t.Error("line:", pe.Line)
	}
	if pe.Pos != 8 {
		t.Error("pos:", pe.Pos)
	}
}

func TestReadPartial(t *testing.T) {
	in := "<a>one</a><b>two</b>"

	doc, processed, err := ReadPartial([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if doc.Child(0).Name() != "a" {
		t.Error("first document wrong")
	}
	if processed != 10 {
		t.Fatal("processed should stop after the first element, got:", processed)
	}

	doc2, processed2, err := ReadPartial([]byte(in[processed:]), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if doc2.Child(0).Name() != "b" {
		t.Error("second document wrong")
	}
	if processed2 != 10 {
		t.Error("second processed wrong:", processed2)
	}
}

func TestReadRoundTrip(t *testing.T) {
	in := `<root a="1"><child>text</child><empty/><!-- c --></root>`

	doc, err := Read([]byte(in), ReaderFlagsNone)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := WriteString(doc, WriterFlagsNone)

	doc2, err := Read([]byte(out), ReaderFlagsNone)
	if err != nil {
		t.Fatal("re-read failed:", err, "output:", out)
	}
	out2 := WriteString(doc2, WriterFlagsNone)
	if out != out2 {
		t.Errorf("round trip not stable:\n%q\n%q", out, out2)
	}
}
