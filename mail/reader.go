package mail

import (
	"github.com/mailchannels/go-textwire/mail/mime"
)

// ReadFlags adjust SimpleRead behavior.
type ReadFlags uint32

const (
	ReadFlagsNone ReadFlags = 0
	// ReadDecodeHeaders decodes MIME encoded-word (=?charset?Q?..?=)
	// sequences in the Subject and display names.
	ReadDecodeHeaders ReadFlags = 1 << iota
)

// SimpleRead parses a complete message into a Message using the
// streaming reader underneath. lenRead reports how many input bytes
// were consumed. Each call starts from an empty Message, so on
// mime.ErrorMoreData the returned message is incomplete and the caller
// calls SimpleRead again with the whole input extended by the new bytes.
func SimpleRead(data []byte, flags ReadFlags) (*Message, int, mime.Error) {
	m := NewMessage()

	decode := func(s string) string {
		if flags&ReadDecodeHeaders != 0 {
			return DecodeHeader(s)
		}
		return s
	}

	addr := func(set func(Address)) func(group, name, address string) mime.Error {
		return func(group, name, address string) mime.Error {
			set(Address{Group: group, Name: decode(name), Address: address})
			return mime.ErrorSuccess
		}
	}

	cbs := mime.Callbacks{
		Header: func(key, val string) mime.Error {
			m.SetHeader(key, val)
			return mime.ErrorSuccess
		},
		From:    addr(m.SetFrom),
		ReplyTo: addr(m.SetReplyTo),
		To:      addr(m.AddTo),
		CC:      addr(m.AddCC),
		BCC:     addr(m.AddBCC),
		Subject: func(subject string) mime.Error {
			m.SetSubject(decode(subject))
			return mime.ErrorSuccess
		},
		Body: func(data []byte) mime.Error {
			p := m.part(0)
			p.Data = append(p.Data, data...)
			return mime.ErrorSuccess
		},
		MultipartPreamble: func(data []byte) mime.Error {
			m.SetPreamble(m.Preamble() + string(data))
			return mime.ErrorSuccess
		},
		MultipartHeader: func(key, val string, idx int) mime.Error {
			m.part(idx).Headers.Set(key, val)
			return mime.ErrorSuccess
		},
		MultipartHeaderAttachment: func(contentType, transferEncoding, filename string, idx int) mime.Error {
			p := m.part(idx)
			p.IsAttachment = true
			p.ContentType = contentType
			p.TransferEncoding = transferEncoding
			p.Filename = filename
			return mime.ErrorSuccess
		},
		MultipartData: func(data []byte, idx int) mime.Error {
			p := m.part(idx)
			p.Data = append(p.Data, data...)
			return mime.ErrorSuccess
		},
		MultipartEpilogue: func(data []byte) mime.Error {
			m.SetEpilogue(m.Epilogue() + string(data))
			return mime.ErrorSuccess
		},
	}

	r := mime.NewReader(cbs, mime.FlagsNone)
	lenRead, res := r.Read(data)
	if res.IsFatal() {
		return nil, lenRead, res
	}
	return m, lenRead, res
}
