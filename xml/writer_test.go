package xml

import (
	"bytes"
	"testing"
)

func buildSmallTree() *Node {
	doc := NewDoc()
	a := NewElement("a", doc)
	b := NewElement("b", a)
	NewText("x", b)
	return doc
}

func TestWriteCompact(t *testing.T) {
	out := WriteString(buildSmallTree(), WriterFlagsNone)
	if out != "<a><b>x</b></a>" {
		t.Errorf("got %q", out)
	}
}

func TestWritePrettySpace(t *testing.T) {
	out := WriteString(buildSmallTree(), PrettyPrintSpace)
	if out != "<a>\n  <b>x</b>\n</a>" {
		t.Errorf("got %q", out)
	}
}

func TestWritePrettyTab(t *testing.T) {
	out := WriteString(buildSmallTree(), PrettyPrintTab)
	if out != "<a>\n\t<b>x</b>\n</a>" {
		t.Errorf("got %q", out)
	}
}

func TestWriteSelfClose(t *testing.T) {
	doc := NewDoc()
	a := NewElement("a", doc)
	NewElement("b", a)

	if out := WriteString(doc, WriterFlagsNone); out != "<a><b/></a>" {
		t.Errorf("got %q", out)
	}
	if out := WriteString(doc, SelfCloseSpace); out != "<a><b /></a>" {
		t.Errorf("got %q", out)
	}
}

func TestWriteAttributes(t *testing.T) {
	doc := NewDoc()
	a := NewElement("a", doc)
	a.InsertAttribute("First", "1", false)
	a.InsertAttribute("second", "two & three", false)

	out := WriteString(doc, WriterFlagsNone)
	if out != `<a First="1" second="two &amp; three"/>` {
		t.Errorf("got %q", out)
	}

	out = WriteString(doc, LowerAttrs|DontEncodeAttrs)
	if out != `<a first="1" second="two & three"/>` {
		t.Errorf("got %q", out)
	}
}

func TestWriteLowerTags(t *testing.T) {
	doc := NewDoc()
	a := NewElement("MixedCase", doc)
	NewText("x", a)

	out := WriteString(doc, LowerTags)
	if out != "<mixedcase>x</mixedcase>" {
		t.Errorf("got %q", out)
	}
}

func TestWriteXMLDeclarationAttrOrder(t *testing.T) {
	doc := NewDoc()
	pi := NewProcessingInstruction("xml", doc)
	// inserted out of order plus an extra attribute
	pi.InsertAttribute("standalone", "yes", false)
	pi.InsertAttribute("custom", "1", false)
	pi.InsertAttribute("version", "1.0", false)
	pi.InsertAttribute("encoding", "UTF-8", false)
	NewElement("r", doc)

	out := WriteString(doc, WriterFlagsNone)
	want := `<?xml version="1.0" encoding="UTF-8" standalone="yes" custom="1"?><r/>`
	if out != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestWriteComment(t *testing.T) {
	doc := NewDoc()
	a := NewElement("a", doc)
	NewComment("note", a)
	NewText("x", a)

	out := WriteString(doc, WriterFlagsNone)
	if out != "<a><!-- note -->x</a>" {
		t.Errorf("got %q", out)
	}

	out = WriteString(doc, WriterIgnoreComments)
	if out != "<a>x</a>" {
		t.Errorf("ignore comments got %q", out)
	}
}

func TestWriteTextEncoding(t *testing.T) {
	doc := NewDoc()
	a := NewElement("a", doc)
	NewText(`1 < 2 & "q"`, a)

	out := WriteString(doc, WriterFlagsNone)
	if out != "<a>1 &lt; 2 &amp; &quot;q&quot;</a>" {
		t.Errorf("got %q", out)
	}

	out = WriteString(doc, DontEncodeText)
	if out != `<a>1 < 2 & "q"</a>` {
		t.Errorf("got %q", out)
	}
}

func TestWriteDeclaration(t *testing.T) {
	doc := NewDoc()
	d := NewDeclaration("DOCTYPE", doc)
	d.SetTagData("html")
	NewElement("html", doc)

	out := WriteString(doc, WriterFlagsNone)
	if out != "<!DOCTYPE html><html/>" {
		t.Errorf("got %q", out)
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	doc := NewDoc()
	root := NewElement("root", doc)
	root.InsertAttribute("k", "v", false)
	child := NewElement("child", root)
	NewText("some text", child)
	NewElement("empty", root)

	for _, flags := range []WriterFlags{WriterFlagsNone, PrettyPrintSpace, PrettyPrintTab} {
		out := WriteString(doc, flags)
		doc2, err := Read([]byte(out), ReaderFlagsNone)
		if err != nil {
			t.Fatalf("flags %v: re-read failed: %v\n%q", flags, err, out)
		}
		// trees compare equal modulo whitespace policy: compact output
		// of both must match
		if WriteString(doc2, WriterFlagsNone) != WriteString(doc, WriterFlagsNone) {
			t.Errorf("flags %v: round trip tree differs", flags)
		}
	}
}

func TestWriteBufAndNil(t *testing.T) {
	if WriteString(nil, WriterFlagsNone) != "" {
		t.Error("nil node should render nothing")
	}
	if WriteBuf(nil, buildSmallTree(), WriterFlagsNone) {
		t.Error("nil buffer should report failure")
	}

	var buf bytes.Buffer
	if !WriteBuf(&buf, buildSmallTree(), WriterFlagsNone) {
		t.Fatal("write into a buffer should succeed")
	}
	if buf.String() != "<a><b>x</b></a>" {
		t.Errorf("got %q", buf.String())
	}
}
