package mime

import (
	"fmt"
	"strings"
	"testing"
)

// event recorder shared by the reader tests
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...interface{}) Error {
	r.events = append(r.events, fmt.Sprintf(format, args...))
	return ErrorSuccess
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		Header: func(key, val string) Error { return r.add("header:%s=%s", key, val) },
		To: func(group, name, address string) Error {
			return r.add("to:%s|%s|%s", group, name, address)
		},
		From: func(group, name, address string) Error {
			return r.add("from:%s|%s|%s", group, name, address)
		},
		CC: func(group, name, address string) Error {
			return r.add("cc:%s|%s|%s", group, name, address)
		},
		BCC: func(group, name, address string) Error {
			return r.add("bcc:%s|%s|%s", group, name, address)
		},
		ReplyTo: func(group, name, address string) Error {
			return r.add("reply_to:%s|%s|%s", group, name, address)
		},
		Subject:    func(subject string) Error { return r.add("subject:%s", subject) },
		HeaderDone: func(format DataFormat) Error { return r.add("header_done:%s", format) },
		Body:       func(data []byte) Error { return r.add("body:%s", data) },
		MultipartPreamble: func(data []byte) Error {
			return r.add("preamble:%s", data)
		},
		MultipartPreambleDone: func() Error { return r.add("preamble_done") },
		MultipartHeader: func(key, val string, idx int) Error {
			return r.add("part_header[%d]:%s=%s", idx, key, val)
		},
		MultipartHeaderAttachment: func(ct, te, fn string, idx int) Error {
			return r.add("attachment[%d]:%s|%s|%s", idx, ct, te, fn)
		},
		MultipartHeaderDone: func(idx int) Error { return r.add("part_header_done[%d]", idx) },
		MultipartData: func(data []byte, idx int) Error {
			return r.add("part_data[%d]:%s", idx, data)
		},
		MultipartDataDone:     func(idx int) Error { return r.add("part_data_done[%d]", idx) },
		MultipartDataFinished: func() Error { return r.add("data_finished") },
		MultipartEpilogue:     func(data []byte) Error { return r.add("epilogue:%s", data) },
	}
}

func checkEvents(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("event count mismatch\ngot:  %q\nwant: %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReaderSimpleBody(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := "From: a@b\r\nTo: x@y\r\n\r\nhi"
	lenRead, res := r.Read([]byte(in))
	if res != ErrorSuccess {
		t.Fatal("expected success, got:", res)
	}
	if lenRead != len(in) {
		t.Error("expected the full input consumed, got:", lenRead)
	}

	checkEvents(t, rec.events, []string{
		"header:From=a@b",
		"from:||a@b",
		"header:To=x@y",
		"to:||x@y",
		"header_done:body",
		"body:hi",
	})
}

func TestReaderChunked(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := []byte("From: a@b\r\nTo: x@y\r\n\r\nhi")
	var (
		pending []byte
		res     Error
	)
	for i := 0; i < len(in); i += 5 {
		end := i + 5
		if end > len(in) {
			end = len(in)
		}
		pending = append(pending, in[i:end]...)

		var lenRead int
		lenRead, res = r.Read(pending)
		if res != ErrorMoreData && res != ErrorSuccess {
			t.Fatal("unexpected result:", res)
		}
		if end < len(in) && res != ErrorMoreData {
			t.Fatal("intermediate call should report more data, got:", res)
		}
		pending = pending[lenRead:]
	}

	if res != ErrorSuccess {
		t.Fatal("final call should succeed, got:", res)
	}

	checkEvents(t, rec.events, []string{
		"header:From=a@b",
		"from:||a@b",
		"header:To=x@y",
		"to:||x@y",
		"header_done:body",
		"body:hi",
	})
}

const multipartMsg = "From: Al Gore <vice-president@whitehouse.gov>\r\n" +
	"To: White House Transportation Coordinator <transport@whitehouse.gov>\r\n" +
	"Subject: Map of Argentina with Description\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/mixed; boundary=\"DC8------------DC8\"\r\n" +
	"\r\n" +
	"This is a multi-part message in MIME format.\r\n" +
	"--DC8------------DC8\r\n" +
	"Content-Type: text/plain; charset=us-ascii\r\n" +
	"Content-Transfer-Encoding: 7bit\r\n" +
	"\r\n" +
	"Fire up Air Force One!\r\n" +
	"--DC8------------DC8\r\n" +
	"Content-Type: image/gif; name=\"map.gif\"\r\n" +
	"Content-Transfer-Encoding: base64\r\n" +
	"Content-Disposition: attachment; filename=\"map.gif\"\r\n" +
	"\r\n" +
	"R0lGODlhAQABAIAAAP//\r\n" +
	"--DC8------------DC8--\r\n" +
	"after the end"

func TestReaderMultipart(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	lenRead, res := r.Read([]byte(multipartMsg))
	if res != ErrorSuccess {
		t.Fatal("expected success, got:", res)
	}
	if lenRead != len(multipartMsg) {
		t.Error("expected the full input consumed, got:", lenRead)
	}

	checkEvents(t, rec.events, []string{
		`header:From=Al Gore <vice-president@whitehouse.gov>`,
		"from:|Al Gore|vice-president@whitehouse.gov",
		`header:To=White House Transportation Coordinator <transport@whitehouse.gov>`,
		"to:|White House Transportation Coordinator|transport@whitehouse.gov",
		"header:Subject=Map of Argentina with Description",
		"subject:Map of Argentina with Description",
		"header:MIME-Version=1.0",
		`header:Content-Type=multipart/mixed; boundary="DC8------------DC8"`,
		"header_done:multipart",
		"preamble:This is a multi-part message in MIME format.",
		"preamble_done",
		"part_header[0]:Content-Type=text/plain; charset=us-ascii",
		"part_header[0]:Content-Transfer-Encoding=7bit",
		"part_header_done[0]",
		"part_data[0]:Fire up Air Force One!",
		"part_data_done[0]",
		`part_header[1]:Content-Type=image/gif; name="map.gif"`,
		"part_header[1]:Content-Transfer-Encoding=base64",
		`part_header[1]:Content-Disposition=attachment; filename="map.gif"`,
		"attachment[1]:image/gif|base64|map.gif",
		"part_header_done[1]",
		"part_data[1]:R0lGODlhAQABAIAAAP//",
		"part_data_done[1]",
		"data_finished",
		"epilogue:after the end",
	})
}

func TestReaderMultipartChunked(t *testing.T) {
	// the same message fed in small pieces produces the same events,
	// modulo data callbacks being split into successive chunks
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := []byte(multipartMsg)
	var pending []byte
	for i := 0; i < len(in); i += 7 {
		end := i + 7
		if end > len(in) {
			end = len(in)
		}
		pending = append(pending, in[i:end]...)

		lenRead, res := r.Read(pending)
		if res != ErrorMoreData && res != ErrorSuccess {
			t.Fatal("unexpected result:", res)
		}
		pending = pending[lenRead:]
	}

	single := &recorder{}
	r2 := NewReader(single.callbacks(), FlagsNone)
	if _, res := r2.Read(in); res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}

	if joinData(rec.events) != joinData(single.events) {
		t.Errorf("chunked events differ\ngot:  %q\nwant: %q", rec.events, single.events)
	}
}

// joinData merges consecutive streaming events of the same kind so a
// chunked run compares equal to a single feed.
func joinData(events []string) string {
	var out []string
	for _, e := range events {
		kind := e
		if idx := strings.IndexByte(e, ':'); idx >= 0 {
			kind = e[:idx]
		}
		if len(out) > 0 {
			last := out[len(out)-1]
			lastKind := last
			if idx := strings.IndexByte(last, ':'); idx >= 0 {
				lastKind = last[:idx]
			}
			if kind == lastKind && strings.ContainsRune(e, ':') &&
				(strings.HasPrefix(kind, "body") || strings.HasPrefix(kind, "preamble") ||
					strings.HasPrefix(kind, "part_data[") || strings.HasPrefix(kind, "epilogue")) {
				out[len(out)-1] = last + e[strings.IndexByte(e, ':')+1:]
				continue
			}
		}
		out = append(out, e)
	}
	return strings.Join(out, "\n")
}

func TestReaderGroupAddresses(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := "To: friends: \"Alice A.\" <alice@example.com>, bob@example.com; undisclosed:;\r\n\r\nx"
	if _, res := r.Read([]byte(in)); res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}

	want := []string{
		`header:To=friends: "Alice A." <alice@example.com>, bob@example.com; undisclosed:;`,
		"to:friends|Alice A.|alice@example.com",
		"to:friends||bob@example.com",
		"to:undisclosed||",
		"header_done:body",
		"body:x",
	}
	checkEvents(t, rec.events, want)
}

func TestReaderBadAddress(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := "To: not an address\r\n\r\nx"
	if _, res := r.Read([]byte(in)); res != ErrorAddress {
		t.Fatal("expected ErrorAddress, got:", res)
	}
}

func TestReaderHeaderInvalid(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	// whitespace between key and separator is forbidden
	in := "Bad Key : value\r\n\r\nx"
	if _, res := r.Read([]byte(in)); res != ErrorHeaderInvalid {
		t.Fatal("expected ErrorHeaderInvalid, got:", res)
	}
}

func TestReaderFoldedHeader(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := "Subject: part one\r\n part two\r\n\r\nx"
	if _, res := r.Read([]byte(in)); res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}

	found := false
	for _, e := range rec.events {
		if e == "subject:part one part two" {
			found = true
		}
	}
	if !found {
		t.Error("folded subject not joined, events:", rec.events)
	}
}

func TestReaderNoBoundary(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := "Content-Type: multipart/mixed\r\n\r\nx"
	if _, res := r.Read([]byte(in)); res != ErrorMultipartNoBoundary {
		t.Fatal("expected ErrorMultipartNoBoundary, got:", res)
	}
}

func TestReaderMultipartMissingData(t *testing.T) {
	rec := &recorder{}
	r := NewReader(rec.callbacks(), FlagsNone)

	in := "Content-Type: multipart/mixed; boundary=\"b\"\r\n\r\n--b--\r\n"
	if _, res := r.Read([]byte(in)); res != ErrorMultipartMissingData {
		t.Fatal("expected ErrorMultipartMissingData, got:", res)
	}
}

func TestReaderCallbackErrorPropagates(t *testing.T) {
	cbs := Callbacks{
		Subject: func(string) Error { return ErrorInvalidUse },
	}
	r := NewReader(cbs, FlagsNone)

	if _, res := r.Read([]byte("Subject: x\r\n\r\nbody")); res != ErrorInvalidUse {
		t.Fatal("callback error should surface, got:", res)
	}
}

func TestReaderInvalidUse(t *testing.T) {
	r := NewReader(Callbacks{}, FlagsNone)
	if _, res := r.Read(nil); res != ErrorInvalidUse {
		t.Error("nil data should be invalid use, got:", res)
	}
}
