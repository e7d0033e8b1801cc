// Package mail holds the email message model plus simple-mode reading
// and writing: SimpleRead assembles a *Message from a byte stream via
// the streaming mime reader, Message.String emits the canonical MIME
// form.
package mail

import (
	"strings"
)

// Address is one mailbox reference from an address header. Any field
// may be empty. Group carries the RFC 6854 group name when the address
// was part of a group list.
type Address struct {
	Group   string
	Name    string
	Address string
}

// IsEmpty reports whether no field is set, used to mean "no address".
func (a Address) IsEmpty() bool {
	return a.Group == "" && a.Name == "" && a.Address == ""
}

// Part is one constituent body of a multipart message. Attachment
// parts derive their Content-Type, Content-Disposition and
// Content-Transfer-Encoding headers from the typed fields, any other
// headers pass through Headers.
type Part struct {
	Data             []byte
	Headers          Headers
	IsAttachment     bool
	ContentType      string
	TransferEncoding string
	Filename         string
}

// Headers is an ordered case-insensitive header collection. Insertion
// order is preserved for emission, a set with an existing key updates
// in place. Linear scan is plenty for email header counts.
type Headers struct {
	entries []headerEntry
}

type headerEntry struct {
	key string // original case
	val string
}

// Set adds or replaces the header.
func (h *Headers) Set(key, val string) {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].key, key) {
			h.entries[i].val = val
			return
		}
	}
	h.entries = append(h.entries, headerEntry{key: key, val: val})
}

// Get returns the header value, or "" when absent.
func (h *Headers) Get(key string) string {
	v, _ := h.Lookup(key)
	return v
}

// Lookup returns the header value and whether it is present.
func (h *Headers) Lookup(key string) (string, bool) {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].key, key) {
			return h.entries[i].val, true
		}
	}
	return "", false
}

// Remove deletes the header if present.
func (h *Headers) Remove(key string) {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].key, key) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of headers.
func (h *Headers) Len() int {
	return len(h.entries)
}

// Each calls f for every header in insertion order.
func (h *Headers) Each(f func(key, val string)) {
	for _, e := range h.entries {
		f(e.key, e.val)
	}
}

// Message is a single email message.
type Message struct {
	headers Headers

	from    Address
	replyTo Address
	to      []Address
	cc      []Address
	bcc     []Address

	subject  string
	preamble string
	epilogue string

	parts []*Part
}

// NewMessage creates an empty message.
func NewMessage() *Message {
	return &Message{}
}

// Headers exposes the message's arbitrary headers.
func (m *Message) Headers() *Headers {
	return &m.headers
}

// SetHeader adds or replaces an arbitrary header.
func (m *Message) SetHeader(key, val string) {
	m.headers.Set(key, val)
}

func (m *Message) From() Address        { return m.from }
func (m *Message) SetFrom(a Address)    { m.from = a }
func (m *Message) ReplyTo() Address     { return m.replyTo }
func (m *Message) SetReplyTo(a Address) { m.replyTo = a }
func (m *Message) To() []Address        { return m.to }
func (m *Message) AddTo(a Address)      { m.to = append(m.to, a) }
func (m *Message) CC() []Address        { return m.cc }
func (m *Message) AddCC(a Address)      { m.cc = append(m.cc, a) }
func (m *Message) BCC() []Address       { return m.bcc }
func (m *Message) AddBCC(a Address)     { m.bcc = append(m.bcc, a) }
func (m *Message) Subject() string      { return m.subject }
func (m *Message) SetSubject(s string)  { m.subject = s }
func (m *Message) Preamble() string     { return m.preamble }
func (m *Message) SetPreamble(s string) { m.preamble = s }
func (m *Message) Epilogue() string     { return m.epilogue }
func (m *Message) SetEpilogue(s string) { m.epilogue = s }

// Parts returns the message parts in order.
func (m *Message) Parts() []*Part {
	return m.parts
}

// Part returns the part at idx, or nil when out of range.
func (m *Message) Part(idx int) *Part {
	if idx < 0 || idx >= len(m.parts) {
		return nil
	}
	return m.parts[idx]
}

// AddPart appends a part.
func (m *Message) AddPart(p *Part) {
	m.parts = append(m.parts, p)
}

// AddBodyPart appends a plain content part.
func (m *Message) AddBodyPart(data []byte) *Part {
	p := &Part{Data: data}
	m.parts = append(m.parts, p)
	return p
}

// AddAttachment appends an attachment part. The canonical attachment
// headers are composed from the arguments at write time.
func (m *Message) AddAttachment(data []byte, contentType, transferEncoding, filename string) *Part {
	p := &Part{
		Data:             data,
		IsAttachment:     true,
		ContentType:      contentType,
		TransferEncoding: transferEncoding,
		Filename:         filename,
	}
	m.parts = append(m.parts, p)
	return p
}

// part returns the part at idx, creating intermediate empty parts as
// needed so streamed callbacks can fill parts safely.
func (m *Message) part(idx int) *Part {
	for len(m.parts) <= idx {
		m.parts = append(m.parts, &Part{})
	}
	return m.parts[idx]
}
