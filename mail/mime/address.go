package mime

import (
	"strings"

	"github.com/mailchannels/go-textwire/mail/rfc5321"
)

// Address header values contain several types of entries.
//
// - Single address
// - list of addresses comma (,) separated
//   - some email clients use semi-colon (not part of an RFC) instead of a comma
// - Group referencing one or more emails
// - List of groups (RFC 6854). This does use a semicolon as a separator
// - List of groups and emails not in a group
//
// An address can be a name and address or just an address. The name can
// be quoted.
//
// We split on ';' (group list), then ':' (group name from addresses),
// then ',' (individual addresses), honoring quoting throughout. Splitting
// on ';' then ',' supports both proper (,) and incorrect (;) separators.

// splitQuoted splits s on sep outside of double quotes. A backslash
// escapes the next character inside quotes. maxParts <= 0 means no
// limit. Splitting an empty string yields nil.
func splitQuoted(s string, sep byte, maxParts int) []string {
	if s == "" {
		return nil
	}

	var (
		parts   []string
		start   int
		inQuote bool
		escaped bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inQuote:
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case c == sep && !inQuote:
			if maxParts > 0 && len(parts)+1 >= maxParts {
				continue
			}
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// unquote removes surrounding double quotes and unescapes the content.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]

	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

type addressFunc func(group, name, address string) Error

// processAddress parses an address header value and invokes cb once per
// resolved address. Empty groups invoke cb once with only the group set.
func processAddress(val string, cb addressFunc) Error {
	for _, seg := range splitQuoted(val, ';', 0) {
		group := ""
		list := seg

		// Split on colon to split off the group name from the addresses.
		// Two parts mean we do have a group, otherwise it's an email or
		// an email list.
		gparts := splitQuoted(seg, ':', 2)
		if len(gparts) > 1 {
			group = strings.TrimSpace(unquote(gparts[0]))
			list = gparts[1]
		}

		addresses := splitQuoted(list, ',', 0)

		seen := false
		for _, a := range addresses {
			if strings.TrimSpace(a) == "" {
				continue
			}
			name, address := splitNameAddress(a)
			if !rfc5321.Valid(address) {
				return ErrorAddress
			}
			seen = true
			if res := cb(group, name, address); res != ErrorSuccess {
				return res
			}
		}

		// Groups don't have to have addresses.
		if !seen && group != "" {
			if res := cb(group, "", ""); res != ErrorSuccess {
				return res
			}
		}
	}
	return ErrorSuccess
}

// splitNameAddress takes one entry from an address list and splits it
// into the display name and the bare address, handling both the
// "name <address>" and plain address forms.
func splitNameAddress(a string) (name, address string) {
	parts := splitQuoted(a, '<', 2)
	if len(parts) > 1 {
		name = strings.TrimSpace(unquote(parts[0]))
		address = strings.TrimSpace(parts[1])
		address = strings.TrimSuffix(address, ">")
		address = strings.TrimSpace(address)
		return name, address
	}
	return "", strings.TrimSpace(parts[0])
}
