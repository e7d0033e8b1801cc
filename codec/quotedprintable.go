package codec

import "strings"

// encodeQuotedPrintable implements RFC 2045 quoted-printable. Tab, \r,
// \n and printable ascii other than '=' pass through, everything else
// becomes =HH. Lines are broken with a soft =\r\n break before they can
// exceed the 76 character limit.
func encodeQuotedPrintable(sink Sink, in string) Error {
	cnt := 0

	for i := 0; i < len(in); i++ {
		c := in[i]

		if c != '\t' && c != '\r' && c != '\n' && (c < 32 || c == '=' || c > 126) {
			sink.AddByte('=')
			sink.AddByte(hexUpper[c>>4])
			sink.AddByte(hexUpper[c&0x0F])
			cnt += 3
		} else {
			sink.AddByte(c)
			cnt++
		}

		if c == '\n' {
			cnt = 0
		}

		// Break early rather than look ahead, some lines end up shorter
		// than they strictly need to be.
		if cnt > 72 {
			sink.AddByte('=')
			sink.AddStr("\r\n")
			cnt = 0
		}
	}

	return ErrorSuccess
}

func decodeQuotedPrintable(sink Sink, in string, eh Ehandler) Error {
	res := ErrorSuccess
	pos := 0

	for pos < len(in) {
		idx := strings.IndexByte(in[pos:], '=')
		if idx < 0 {
			break
		}

		// everything before the = passes through
		sink.AddStr(in[pos : pos+idx])
		pos += idx + 1 // eat the =

		if len(in)-pos < 2 {
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
			pos = len(in)
			break
		}

		if in[pos] == '\r' && in[pos+1] == '\n' {
			// =\r\n is a soft line break, drop it and the line joins back
			// together on the next pass
			pos += 2
			continue
		}

		hi, ok1 := hexVal(in[pos])
		lo, ok2 := hexVal(in[pos+1])
		if ok1 && ok2 {
			// The RFC wants upper case hex but we're not that strict.
			sink.AddByte(hi<<4 | lo)
			pos += 2
			continue
		}

		// Not \r\n and not HH, a bad sequence. The = is gone, keep going
		// from here because it might have been an errant =.
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
	}

	// anything after the last escape passes through
	if pos < len(in) {
		sink.AddStr(in[pos:])
	}

	return res
}
