package xml

import "strings"

type entity struct {
	ch      byte
	encoded string
}

// Text encoding covers the five standard entities. Decoding also
// understands the numeric line ending forms. Attribute values only
// need the three that can break a double quoted value.
var (
	encodeEntities = []entity{
		{'"', "&quot;"},
		{'\'', "&apos;"},
		{'&', "&amp;"},
		{'>', "&gt;"},
		{'<', "&lt;"},
	}
	decodeEntities = []entity{
		{'"', "&quot;"},
		{'\'', "&apos;"},
		{'&', "&amp;"},
		{'>', "&gt;"},
		{'<', "&lt;"},
		{'\n', "&#xA;"},
		{'\r', "&#xD;"},
	}
	attrEntities = []entity{
		{'"', "&quot;"},
		{'&', "&amp;"},
		{'<', "&lt;"},
	}
)

func entitiesEncode(s string, entities []entity) string {
	var b strings.Builder
	prev := 0
	for i := 0; i < len(s); i++ {
		var enc string
		for _, e := range entities {
			if s[i] == e.ch {
				enc = e.encoded
				break
			}
		}
		if enc == "" {
			continue
		}
		b.WriteString(s[prev:i])
		b.WriteString(enc)
		prev = i + 1
	}
	if prev == 0 {
		return s
	}
	b.WriteString(s[prev:])
	return b.String()
}

func entitiesDecode(s string, entities []entity) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			b.WriteByte(s[i])
			continue
		}
		matched := false
		for _, e := range entities {
			if len(s)-i >= len(e.encoded) && strings.EqualFold(s[i:i+len(e.encoded)], e.encoded) {
				b.WriteByte(e.ch)
				i += len(e.encoded) - 1
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// EncodeText escapes text content for emission.
func EncodeText(s string) string {
	return entitiesEncode(s, encodeEntities)
}

// DecodeText resolves entities in text content.
func DecodeText(s string) string {
	return entitiesDecode(s, decodeEntities)
}

// EncodeAttribute escapes an attribute value for emission inside
// double quotes. Apostrophe and '>' are attribute safe and left as
// they are.
func EncodeAttribute(s string) string {
	return entitiesEncode(s, attrEntities)
}

// DecodeAttribute resolves entities in an attribute value.
func DecodeAttribute(s string) string {
	return entitiesDecode(s, decodeEntities)
}
