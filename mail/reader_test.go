package mail

import (
	"strings"
	"testing"

	"github.com/mailchannels/go-textwire/mail/mime"
)

func TestSimpleReadBody(t *testing.T) {
	in := "From: a@b\r\nTo: x@y\r\nSubject: hi there\r\n\r\nbody content"

	m, lenRead, res := SimpleRead([]byte(in), ReadFlagsNone)
	if res != mime.ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if lenRead != len(in) {
		t.Error("expected the full input consumed, got:", lenRead)
	}

	if m.From().Address != "a@b" {
		t.Error("from:", m.From())
	}
	if len(m.To()) != 1 || m.To()[0].Address != "x@y" {
		t.Error("to:", m.To())
	}
	if m.Subject() != "hi there" {
		t.Error("subject:", m.Subject())
	}
	if m.Headers().Get("Subject") != "hi there" {
		t.Error("generic headers should carry Subject too")
	}
	if len(m.Parts()) != 1 || string(m.Parts()[0].Data) != "body content" {
		t.Error("body:", m.Parts())
	}
}

func TestSimpleReadMultipart(t *testing.T) {
	in := "From: a@b\r\n" +
		"To: x@y\r\n" +
		"Content-Type: multipart/mixed; boundary=\"bnd\"\r\n" +
		"\r\n" +
		"preamble text\r\n" +
		"--bnd\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"first part\r\n" +
		"--bnd\r\n" +
		"Content-Type: application/pdf; name=\"doc.pdf\"\r\n" +
		"Content-Disposition: attachment; filename=\"doc.pdf\"\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"\r\n" +
		"JVBERi0=\r\n" +
		"--bnd--\r\n" +
		"epilogue text"

	m, _, res := SimpleRead([]byte(in), ReadFlagsNone)
	if res != mime.ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}

	if m.Preamble() != "preamble text" {
		t.Errorf("preamble: %q", m.Preamble())
	}
	if m.Epilogue() != "epilogue text" {
		t.Errorf("epilogue: %q", m.Epilogue())
	}

	if len(m.Parts()) != 2 {
		t.Fatal("expected 2 parts, got:", len(m.Parts()))
	}

	p0 := m.Part(0)
	if string(p0.Data) != "first part" || p0.IsAttachment {
		t.Error("part 0 mismatch:", p0)
	}
	if p0.Headers.Get("Content-Type") != "text/plain" {
		t.Error("part 0 headers:", p0.Headers)
	}

	p1 := m.Part(1)
	if !p1.IsAttachment {
		t.Fatal("part 1 should be an attachment")
	}
	if p1.ContentType != "application/pdf" || p1.Filename != "doc.pdf" || p1.TransferEncoding != "base64" {
		t.Error("attachment info mismatch:", p1.ContentType, p1.Filename, p1.TransferEncoding)
	}
	if string(p1.Data) != "JVBERi0=" {
		t.Error("part 1 data:", string(p1.Data))
	}
}

func TestSimpleReadMoreData(t *testing.T) {
	in := "From: a@b\r\nTo: x"

	m, lenRead, res := SimpleRead([]byte(in), ReadFlagsNone)
	if res != mime.ErrorMoreData {
		t.Fatal("expected more data, got:", res)
	}
	if m == nil {
		t.Fatal("partial message should still be returned")
	}
	if lenRead == 0 {
		t.Error("the complete From header should have been consumed")
	}
}

func TestSimpleReadDecodesHeaders(t *testing.T) {
	in := "From: =?ISO-8859-1?Q?Andr=E9?= <andre@example.com>\r\n" +
		"Subject: =?ISO-8859-1?Q?caf=E9?=\r\n" +
		"\r\nx"

	m, _, res := SimpleRead([]byte(in), ReadDecodeHeaders)
	if res != mime.ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if m.Subject() != "café" {
		t.Errorf("subject not decoded: %q", m.Subject())
	}
	if m.From().Name != "André" {
		t.Errorf("display name not decoded: %q", m.From().Name)
	}

	// without the flag the raw words stay
	m2, _, _ := SimpleRead([]byte(in), ReadFlagsNone)
	if !strings.Contains(m2.Subject(), "=?ISO-8859-1?Q?") {
		t.Errorf("subject should stay encoded: %q", m2.Subject())
	}
}
