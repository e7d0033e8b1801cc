package xml

import (
	"bytes"
	"io/ioutil"
	"strings"
)

// WriterFlags adjust emission.
type WriterFlags uint32

const (
	WriterFlagsNone WriterFlags = 0
	// PrettyPrintSpace indents children two spaces per depth.
	PrettyPrintSpace WriterFlags = 1 << iota
	// PrettyPrintTab indents children one tab per depth.
	PrettyPrintTab
	// LowerTags emits tag names lowercased.
	LowerTags
	// LowerAttrs emits attribute keys lowercased.
	LowerAttrs
	// DontEncodeText skips entity encoding of text content.
	DontEncodeText
	// DontEncodeAttrs skips entity encoding of attribute values.
	DontEncodeAttrs
	// SelfCloseSpace writes a space before the /> of empty elements.
	SelfCloseSpace
	// WriterIgnoreComments drops comment nodes from the output.
	WriterIgnoreComments
)

func writeIndent(buf *bytes.Buffer, flags WriterFlags, depth int) {
	if depth == 0 {
		return
	}
	if flags&PrettyPrintSpace != 0 {
		buf.WriteString(strings.Repeat("  ", depth))
	} else if flags&PrettyPrintTab != 0 {
		buf.WriteString(strings.Repeat("\t", depth))
	}
}

func writeNewline(buf *bytes.Buffer, flags WriterFlags) {
	if flags&(PrettyPrintSpace|PrettyPrintTab) == 0 {
		return
	}
	buf.WriteByte('\n')
}

// writeText emits a text node. Indentation only applies when the text
// sits between non-text siblings.
func writeText(buf *bytes.Buffer, flags WriterFlags, depth int, node *Node) {
	parent := node.Parent()

	if parent != nil && parent.NumChildren() > 1 && siblingType(node, false) != TypeText {
		writeIndent(buf, flags, depth)
	}

	if flags&DontEncodeText != 0 {
		buf.WriteString(node.Text())
	} else {
		buf.WriteString(EncodeText(node.Text()))
	}

	if parent != nil && parent.NumChildren() > 1 && siblingType(node, true) != TypeText {
		writeNewline(buf, flags)
	}
}

// siblingType returns the node type of the neighbor, or -1 when there
// is none.
func siblingType(node *Node, after bool) NodeType {
	s := node.Sibling(after)
	if s == nil {
		return NodeType(-1)
	}
	return s.Type()
}

// writeTagOpenStart emits the opening marker: <, <?, <!, <!--
func writeTagOpenStart(buf *bytes.Buffer, flags WriterFlags, depth int, node *Node) {
	writeIndent(buf, flags, depth)

	buf.WriteByte('<')
	switch node.Type() {
	case TypeProcessingInstruction:
		buf.WriteByte('?')
	case TypeDeclaration:
		buf.WriteByte('!')
	case TypeComment:
		buf.WriteString("!--")
	}
}

func writeTagName(buf *bytes.Buffer, flags WriterFlags, node *Node) {
	name := node.Name()
	if flags&LowerTags != 0 {
		name = strings.ToLower(name)
	}
	buf.WriteString(name)
}

// The three attributes of the xml declaration, in the order they must
// appear.
var declarationAttrs = []string{"version", "encoding", "standalone"}

func writeAttr(buf *bytes.Buffer, flags WriterFlags, key, val string) {
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteString(`="`)
	if flags&DontEncodeAttrs != 0 {
		buf.WriteString(val)
	} else {
		buf.WriteString(EncodeAttribute(val))
	}
	buf.WriteByte('"')
}

func writeTagOpenAttributes(buf *bytes.Buffer, flags WriterFlags, node *Node) {
	isDec := false

	// the xml declaration requires "version encoding standalone" first,
	// with forced lowercase keys
	if node.Type() == TypeProcessingInstruction && node.Name() == "xml" {
		isDec = true
		for _, key := range declarationAttrs {
			if val, ok := node.Attribute(key); ok {
				writeAttr(buf, flags, key, val)
			}
		}
	}

	node.EachAttribute(func(key, val string) {
		if isDec {
			lower := strings.ToLower(key)
			if lower == "version" || lower == "encoding" || lower == "standalone" {
				return
			}
		}
		if flags&LowerAttrs != 0 {
			key = strings.ToLower(key)
		}
		writeAttr(buf, flags, key, val)
	})
}

// writeTagOpenTagData emits data inside the tag that is not the name or
// attributes, e.g. comment text.
func writeTagOpenTagData(buf *bytes.Buffer, node *Node) {
	data := node.TagData()
	if data == "" {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(data)
}

// writeTagOpenEnd emits the close of the opening tag: >, ?>, -->, or
// /> for childless elements.
func writeTagOpenEnd(buf *bytes.Buffer, flags WriterFlags, node *Node) {
	switch node.Type() {
	case TypeProcessingInstruction:
		buf.WriteByte('?')
	case TypeComment:
		buf.WriteString(" --")
	case TypeElement:
		if node.NumChildren() == 0 {
			if flags&SelfCloseSpace != 0 {
				buf.WriteByte(' ')
			}
			buf.WriteByte('/')
		}
	}
	buf.WriteByte('>')

	n := node.NumChildren()
	if n != 1 || node.Child(0).Type() != TypeText {
		writeNewline(buf, flags)
	}
}

func writeChildren(buf *bytes.Buffer, flags WriterFlags, depth int, node *Node) {
	childDepth := depth
	if node.Type() != TypeDoc {
		childDepth = depth + 1
	}
	for _, child := range node.Children() {
		writeNode(buf, flags, childDepth, child)
	}
}

// writeTagClose emits </name> for elements with children.
func writeTagClose(buf *bytes.Buffer, flags WriterFlags, depth int, node *Node) {
	n := node.NumChildren()
	if node.Type() != TypeElement || n == 0 {
		return
	}

	// only indent when the content wasn't a single inline text
	if n != 1 || node.Child(0).Type() != TypeText {
		writeIndent(buf, flags, depth)
	}

	buf.WriteString("</")
	writeTagName(buf, flags, node)
	buf.WriteByte('>')

	if node.Parent() != nil && node.Parent().Type() != TypeDoc {
		writeNewline(buf, flags)
	}
}

func writeNode(buf *bytes.Buffer, flags WriterFlags, depth int, node *Node) {
	t := node.Type()

	if flags&WriterIgnoreComments != 0 && t == TypeComment {
		return
	}

	switch t {
	case TypeText:
		writeText(buf, flags, depth, node)
		return
	case TypeDoc:
		writeChildren(buf, flags, depth, node)
		return
	}

	writeTagOpenStart(buf, flags, depth, node)
	writeTagName(buf, flags, node)
	writeTagOpenAttributes(buf, flags, node)
	writeTagOpenTagData(buf, node)
	writeTagOpenEnd(buf, flags, node)
	writeChildren(buf, flags, depth, node)
	writeTagClose(buf, flags, depth, node)
}

// WriteString renders the tree rooted at node.
func WriteString(node *Node, flags WriterFlags) string {
	if node == nil {
		return ""
	}
	var buf bytes.Buffer
	writeNode(&buf, flags, 0, node)
	return buf.String()
}

// WriteBuf renders the tree into buf.
func WriteBuf(buf *bytes.Buffer, node *Node, flags WriterFlags) bool {
	if buf == nil || node == nil {
		return false
	}
	writeNode(buf, flags, 0, node)
	return true
}

// WriteFile renders the tree and writes it to path, overwriting.
func WriteFile(node *Node, path string, flags WriterFlags) error {
	return ioutil.WriteFile(path, []byte(WriteString(node, flags)), 0644)
}
