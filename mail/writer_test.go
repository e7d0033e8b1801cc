package mail

import (
	"strings"
	"testing"

	"github.com/mailchannels/go-textwire/mail/mime"
)

func TestGenBoundary(t *testing.T) {
	b := genBoundary()
	if len(b) != 40 {
		t.Fatal("boundary should be 40 characters, got:", len(b))
	}
	if !strings.HasPrefix(b, "------------") {
		t.Error("boundary should start with 12 dashes:", b)
	}
	for _, c := range b[12:] {
		if c < '0' || c > 'z' {
			t.Error("boundary character out of range:", c)
		}
		if (c >= ':' && c <= '?') || (c >= '\\' && c <= '`') {
			t.Error("boundary contains excluded character:", string(c))
		}
	}
	if b == genBoundary() {
		t.Error("boundaries should differ between calls")
	}
}

func TestAddHeaderEntryShort(t *testing.T) {
	var buf strings.Builder
	addHeaderEntry(&buf, "Subject", "hello")
	if buf.String() != "Subject: hello\r\n" {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	addHeaderEntry(&buf, "Subject", "")
	if buf.String() != "" {
		t.Error("empty value should write nothing")
	}
}

func TestAddHeaderEntryFolding(t *testing.T) {
	val := strings.Repeat("word ", 30) + "end"
	var buf strings.Builder
	addHeaderEntry(&buf, "Subject", val)
	out := buf.String()

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	if len(lines) < 2 {
		t.Fatal("long header should fold, got:", out)
	}
	for i, line := range lines {
		if len(line) > lineLen {
			t.Errorf("line %d exceeds the limit: %d", i, len(line))
		}
		if i > 0 && !strings.HasPrefix(line, " ") {
			t.Errorf("continuation line %d must start with whitespace: %q", i, line)
		}
	}

	// unfolding restores the value
	unfolded := strings.Replace(out, "\r\n ", " ", -1)
	if unfolded != "Subject: "+val+"\r\n" {
		t.Errorf("unfold mismatch: %q", unfolded)
	}
}

func TestFormatAddress(t *testing.T) {
	if got := formatAddress("", "a@b"); got != "a@b" {
		t.Error("got:", got)
	}
	if got := formatAddress("Al Gore", "al@wh.gov"); got != `"Al Gore" <al@wh.gov>` {
		t.Error("got:", got)
	}
	if got := formatAddress("x", ""); got != "" {
		t.Error("no address should yield nothing, got:", got)
	}
	// meaningful characters escaped inside the quotes
	if got := formatAddress("a.b@c", "x@y"); got != `"a\.b\@c" <x@y>` {
		t.Error("got:", got)
	}
}

func TestMessageString(t *testing.T) {
	m := NewMessage()
	m.SetFrom(Address{Name: "Al Gore", Address: "vice-president@whitehouse.gov"})
	m.AddTo(Address{Address: "transport@whitehouse.gov"})
	m.AddCC(Address{Group: "staff", Address: "a@whitehouse.gov"})
	m.AddCC(Address{Group: "staff", Address: "b@whitehouse.gov"})
	m.AddCC(Address{Address: "c@whitehouse.gov"})
	m.SetSubject("Map of Argentina")
	m.SetHeader("MIME-Version", "1.0")
	m.AddBodyPart([]byte("body text"))
	m.AddAttachment([]byte("ZGF0YQ=="), "application/octet-stream", "base64", "file.bin")

	out := m.String()

	// deterministic header order
	fromIdx := strings.Index(out, "From:")
	mimeIdx := strings.Index(out, "MIME-Version:")
	toIdx := strings.Index(out, "To:")
	ctIdx := strings.Index(out, "Content-Type: multipart/alternative")
	subjIdx := strings.Index(out, "Subject:")
	if fromIdx < 0 || mimeIdx < 0 || toIdx < 0 || ctIdx < 0 || subjIdx < 0 {
		t.Fatal("missing headers in:\n", out)
	}
	if !(fromIdx < mimeIdx && mimeIdx < toIdx && toIdx < ctIdx && ctIdx < subjIdx) {
		t.Error("header order wrong:\n", out)
	}

	if !strings.Contains(out, "CC: staff: a@whitehouse.gov, b@whitehouse.gov; c@whitehouse.gov\r\n") {
		t.Error("group recipients wrong:\n", out)
	}

	// the attachment derived headers
	if !strings.Contains(out, `Content-Type: application/octet-stream; name="file.bin"`) {
		t.Error("attachment content type missing:\n", out)
	}
	if !strings.Contains(out, `Content-Disposition: attachment; filename="file.bin"`) {
		t.Error("attachment disposition missing:\n", out)
	}
	if !strings.Contains(out, "Content-Transfer-Encoding: base64") {
		t.Error("attachment transfer encoding missing:\n", out)
	}

	// closing boundary
	if !strings.Contains(out, "--\r\n") && !strings.HasSuffix(out, "--") {
		t.Error("closing boundary missing:\n", out)
	}
}

func TestMessageStringNoParts(t *testing.T) {
	m := NewMessage()
	m.SetFrom(Address{Address: "a@b"})
	m.AddTo(Address{Address: "x@y"})

	out := m.String()

	// one empty part is emitted so the multipart framing stays valid
	boundary := extractWriterBoundary(t, out)
	if strings.Count(out, "--"+boundary) != 2 {
		t.Error("expected an opening and a closing boundary:\n", out)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	m := NewMessage()
	m.SetFrom(Address{Name: "Sender", Address: "s@example.com"})
	m.AddTo(Address{Address: "r@example.com"})
	m.SetSubject("round trip")
	m.AddBodyPart([]byte("hello there"))

	out := m.String()

	m2, lenRead, res := SimpleRead([]byte(out), ReadFlagsNone)
	if res != mime.ErrorSuccess && res != mime.ErrorMoreData {
		t.Fatal("re-read failed:", res)
	}
	if lenRead != len(out) {
		t.Error("expected everything consumed, got:", lenRead)
	}
	if m2.From().Address != "s@example.com" || m2.From().Name != "Sender" {
		t.Error("from mismatch:", m2.From())
	}
	if len(m2.To()) != 1 || m2.To()[0].Address != "r@example.com" {
		t.Error("to mismatch:", m2.To())
	}
	if m2.Subject() != "round trip" {
		t.Error("subject mismatch:", m2.Subject())
	}
	if len(m2.Parts()) != 1 || string(m2.Parts()[0].Data) != "hello there" {
		t.Error("part mismatch:", m2.Parts())
	}
}

func extractWriterBoundary(t *testing.T, out string) string {
	t.Helper()
	idx := strings.Index(out, `boundary="`)
	if idx < 0 {
		t.Fatal("no boundary in output")
	}
	rest := out[idx+len(`boundary="`):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		t.Fatal("unterminated boundary")
	}
	return rest[:end]
}
