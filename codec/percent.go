package codec

const hexUpper = "0123456789ABCDEF"

// isUnreserved reports the RFC 3986 unreserved set.
func isUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// encodePercent implements the percent (RFC 3986) family. The full
// variants encode everything outside the unreserved set: PercentURL
// encodes space as %20, PercentURLPlus uses '+' for space (a literal
// '+' is reserved and encoded), PercentForm is URLPlus with '~' also
// forced and \r \n passed through. The MIN variants only encode what
// can't be carried at all: controls, non-ascii and '%' itself.
func encodePercent(sink Sink, in string, eh Ehandler, c Codec) Error {
	_ = eh

	for i := 0; i < len(in); i++ {
		ch := in[i]
		process := false

		// These have to be processed no matter what.
		if ch < 0x21 || ch > 0x7E || ch == '%' {
			process = true
		} else {
			switch c {
			case PercentURL, PercentURLPlus:
				if !isUnreserved(ch) {
					process = true
				}
			case PercentForm:
				// '~' must be encoded for forms
				if !isUnreserved(ch) || ch == '~' {
					process = true
				}
			case PercentURLMin:
				// minimal set, nothing extra forced
			case PercentFormMin:
				// '+' is used for space
				if ch == '+' {
					process = true
				}
			}
		}

		// Don't encode \r, \n for forms.
		if (c == PercentForm || c == PercentFormMin) && (ch == '\r' || ch == '\n') {
			process = false
		}

		if !process {
			sink.AddByte(ch)
			continue
		}

		if ch == ' ' {
			switch c {
			case PercentURL, PercentURLMin:
				sink.AddStr("%20")
			case PercentURLPlus, PercentForm, PercentFormMin:
				sink.AddByte('+')
			}
			continue
		}

		sink.AddByte('%')
		sink.AddByte(hexUpper[ch>>4])
		sink.AddByte(hexUpper[ch&0x0F])
	}

	return ErrorSuccess
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// decodePercent reverses encodePercent. The decoded result is not
// validated as utf-8, callers compose with ValidUTF8 when they need
// that guarantee.
func decodePercent(sink Sink, in string, eh Ehandler, c Codec) Error {
	if eh == EhandlerFail && !isASCIIStr(in) {
		return ErrorBadInput
	}

	res := ErrorSuccess
	plusIsSpace := c == PercentURLPlus || c == PercentForm || c == PercentFormMin

	for i := 0; i < len(in); {
		ch := in[i]
		i++

		if ch == '+' && plusIsSpace {
			sink.AddByte(' ')
			continue
		}

		if ch != '%' {
			sink.AddByte(ch)
			continue
		}

		if len(in)-i < 2 {
			switch eh {
			case EhandlerFail:
				return ErrorFail
			case EhandlerReplace:
				sink.AddByte(0xFF)
				sink.AddByte(0xFD)
				i = len(in)
				res = ErrorSuccessEhandler
			case EhandlerIgnore:
				res = ErrorSuccessEhandler
			}
			continue
		}

		hi, ok1 := hexVal(in[i])
		lo, ok2 := hexVal(in[i+1])
		i += 2
		if !ok1 || !ok2 {
			switch eh {
			case EhandlerFail:
				return ErrorFail
			case EhandlerReplace:
				sink.AddByte(0xFF)
				sink.AddByte(0xFD)
				res = ErrorSuccessEhandler
			case EhandlerIgnore:
				res = ErrorSuccessEhandler
			}
			continue
		}

		sink.AddByte(hi<<4 | lo)
	}

	return res
}
