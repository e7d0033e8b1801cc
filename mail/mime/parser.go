package mime

import "bytes"

// parser is a cursor over one Read call's input slice. The reader never
// consumes past data it may need to hand back, mark/rewind lets a state
// back out of partial consumption so the caller can re-feed the tail.
type parser struct {
	buf  []byte
	pos  int
	mark int
}

func newParser(buf []byte) *parser {
	return &parser{buf: buf, mark: -1}
}

func (p *parser) len() int {
	return len(p.buf) - p.pos
}

// peek returns the unconsumed remainder. The slice aliases the caller's
// buffer and is only valid for the duration of the Read call.
func (p *parser) peek() []byte {
	return p.buf[p.pos:]
}

func (p *parser) consume(n int) {
	if n > p.len() {
		n = p.len()
	}
	p.pos += n
}

func (p *parser) setMark() {
	p.mark = p.pos
}

func (p *parser) rewind() {
	if p.mark >= 0 {
		p.pos = p.mark
	}
	p.mark = -1
}

func (p *parser) clearMark() {
	p.mark = -1
}

// hasPrefix reports whether the remainder starts with s.
func (p *parser) hasPrefix(s string) bool {
	return bytes.HasPrefix(p.peek(), []byte(s))
}

// indexStr finds s in the remainder.
func (p *parser) indexStr(s string) int {
	return bytes.Index(p.peek(), []byte(s))
}

// consumeWhitespace eats spaces, tabs and line endings.
func (p *parser) consumeWhitespace() int {
	n := 0
	for p.len() > 0 {
		switch p.buf[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
			n++
		default:
			return n
		}
	}
	return n
}

// consumeCharset eats any run of the given bytes.
func (p *parser) consumeCharset(set string) int {
	n := 0
	for p.len() > 0 && bytes.IndexByte([]byte(set), p.buf[p.pos]) >= 0 {
		p.pos++
		n++
	}
	return n
}

// boundaryLookahead locates the boundary in the remainder without
// consuming anything. dataLen is the length of data certainly in front
// of the boundary. When the boundary isn't in the buffer, a tail that
// could be the start of it is excluded from dataLen so a boundary split
// across two feeds still matches.
func (p *parser) boundaryLookahead(boundary []byte) (dataLen int, found bool) {
	rem := p.peek()

	if i := bytes.Index(rem, boundary); i >= 0 {
		return i, true
	}

	// exclude the longest suffix that is a prefix of the boundary
	keep := 0
	max := len(boundary) - 1
	if max > len(rem) {
		max = len(rem)
	}
	for n := max; n > 0; n-- {
		if bytes.Equal(rem[len(rem)-n:], boundary[:n]) {
			keep = n
			break
		}
	}

	return len(rem) - keep, false
}
