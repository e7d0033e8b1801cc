package mail

import (
	"math/rand"
	"strings"
)

// Header lines aim for the 78 character recommended limit (true max is
// 998) and fold on whitespace when over.
const lineLen = 78

// genBoundary builds a multipart boundary: 12 dashes then 28 random
// printable characters, excluding the runs that would confuse header
// parsing (:;<=>? and \]^_`).
func genBoundary() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 12))
	for i := 0; i < 28; i++ {
		var num int
		for {
			num = 48 + rand.Intn(74)
			if (num >= 58 && num <= 63) || (num >= 92 && num <= 96) {
				continue
			}
			break
		}
		b.WriteByte(byte(num))
	}
	return b.String()
}

// addHeaderEntry writes one header, folding the value on whitespace
// when key, separator and value exceed the line length. Continuation
// lines start with the whitespace that broke the line.
func addHeaderEntry(buf *strings.Builder, key, val string) {
	if val == "" {
		return
	}

	if len(key)+2+len(val) <= lineLen {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(val)
		buf.WriteString("\r\n")
		return
	}

	// over the recommended length, fold on whitespace
	full := key + ": " + val
	full = strings.TrimLeft(full, " \t")

	for len(full) > 0 {
		if len(full) <= lineLen {
			buf.WriteString(full)
			buf.WriteString("\r\n")
			return
		}

		// last whitespace inside the limit; never cut at 0, a fold
		// leaves its whitespace at the front of the continuation
		cut := -1
		for i := 1; i < len(full) && i < lineLen; i++ {
			if full[i] == ' ' || full[i] == '\t' {
				cut = i
			}
		}
		if cut < 1 {
			// no break point inside the limit, take the next one
			cut = -1
			for i := 1; i < len(full); i++ {
				if full[i] == ' ' || full[i] == '\t' {
					cut = i
					break
				}
			}
			if cut < 1 {
				buf.WriteString(full)
				buf.WriteString("\r\n")
				return
			}
		}

		buf.WriteString(full[:cut])
		buf.WriteString("\r\n")
		// the whitespace starts the continuation line
		full = full[cut:]
	}
}

// quoteName writes name inside double quotes, escaping the characters
// that are meaningful in address headers.
func quoteName(name string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '"' || c == '\\' || c == '<' || c == '>' || c == ',' || c == '@' || c == '.' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// formatAddress renders one address: bare address when no name, or
// "name" <address>.
func formatAddress(name, address string) string {
	if address == "" {
		return ""
	}
	if name == "" {
		return address
	}
	return quoteName(name) + " <" + address + ">"
}

func formatGroup(group, addressList string) string {
	if group == "" {
		return addressList
	}
	return group + ": " + addressList
}

// writeSingleAddress emits a From or Reply-To style header carrying one
// address.
func writeSingleAddress(buf *strings.Builder, key string, a Address) bool {
	if a.Group == "" && a.Address == "" {
		return false
	}
	full := formatGroup(a.Group, formatAddress(a.Name, a.Address))
	if full == "" {
		return false
	}
	addHeaderEntry(buf, key, full)
	return true
}

// writeRecipients emits a To/CC/BCC header. Addresses sharing a group
// are collected together preserving first-seen group order, the groups
// joined with "; ", non-grouped addresses appended at the end.
func writeRecipients(buf *strings.Builder, key string, addrs []Address) {
	if len(addrs) == 0 {
		return
	}

	var (
		groupOrder []string
		groups     = map[string][]string{}
		nonGroup   []string
	)

	for _, a := range addrs {
		full := formatAddress(a.Name, a.Address)

		if a.Group != "" {
			gkey := strings.ToLower(a.Group)
			if _, ok := groups[gkey]; !ok {
				groupOrder = append(groupOrder, a.Group)
				groups[gkey] = nil
			}
			// an empty (valid) group contributes no address
			if full != "" {
				groups[gkey] = append(groups[gkey], full)
			}
		} else if full != "" {
			nonGroup = append(nonGroup, full)
		}
	}

	var entries []string
	for _, g := range groupOrder {
		entries = append(entries, formatGroup(g, strings.Join(groups[strings.ToLower(g)], ", ")))
	}
	if len(nonGroup) > 0 {
		entries = append(entries, strings.Join(nonGroup, ", "))
	}

	addHeaderEntry(buf, key, strings.Join(entries, "; "))
}

func writePartHeaders(buf *strings.Builder, p *Part) {
	p.Headers.Each(func(key, val string) {
		addHeaderEntry(buf, key, val)
	})

	if !p.IsAttachment {
		return
	}

	if p.ContentType != "" {
		if p.Filename == "" {
			addHeaderEntry(buf, "Content-Type", p.ContentType)
		} else {
			addHeaderEntry(buf, "Content-Type", p.ContentType+"; name=\""+p.Filename+"\"")
		}
	}

	disposition := "attachment"
	if p.Filename != "" {
		disposition += "; filename=\"" + p.Filename + "\""
	}
	addHeaderEntry(buf, "Content-Disposition", disposition)

	if p.TransferEncoding != "" {
		addHeaderEntry(buf, "Content-Transfer-Encoding", p.TransferEncoding)
	}
}

// String emits the canonical MIME form of the message. Header order is
// deterministic: From, Reply-To, the arbitrary headers (except
// Content-Type which the writer owns), To/CC/BCC, Content-Type with a
// generated boundary, Subject.
func (m *Message) String() string {
	var buf strings.Builder
	boundary := genBoundary()

	writeSingleAddress(&buf, "From", m.from)
	writeSingleAddress(&buf, "Reply-To", m.replyTo)

	m.headers.Each(func(key, val string) {
		if strings.EqualFold(key, "Content-Type") {
			// the writer owns the content type value
			return
		}
		addHeaderEntry(&buf, key, val)
	})

	writeRecipients(&buf, "To", m.to)
	writeRecipients(&buf, "CC", m.cc)
	writeRecipients(&buf, "BCC", m.bcc)

	addHeaderEntry(&buf, "Content-Type", "multipart/alternative; boundary=\""+boundary+"\"")
	addHeaderEntry(&buf, "Subject", m.subject)
	buf.WriteString("\r\n")

	if m.preamble != "" {
		buf.WriteString(m.preamble)
		buf.WriteString("\r\n")
	}

	for _, p := range m.parts {
		buf.WriteString("--")
		buf.WriteString(boundary)
		buf.WriteString("\r\n")

		writePartHeaders(&buf, p)

		buf.WriteString("\r\n")
		buf.Write(p.Data)
		buf.WriteString("\r\n")
	}
	// a multipart message needs at least one, possibly empty, part
	if len(m.parts) == 0 {
		buf.WriteString("--")
		buf.WriteString(boundary)
		buf.WriteString("\r\n\r\n")
	}

	buf.WriteString("--")
	buf.WriteString(boundary)
	buf.WriteString("--")

	if m.epilogue != "" {
		buf.WriteString("\r\n")
		buf.WriteString(m.epilogue)
	}

	return buf.String()
}
