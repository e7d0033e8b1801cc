package codec

import "bytes"

func validateParams(sink Sink, eh Ehandler, c Codec) bool {
	if sink == nil {
		return false
	}
	if c < Unknown || c > QuotedPrintable {
		return false
	}
	switch eh {
	case EhandlerFail, EhandlerReplace, EhandlerIgnore:
	default:
		return false
	}
	return true
}

func encodeInt(sink Sink, in string, eh Ehandler, c Codec) Error {
	if !validateParams(sink, eh, c) {
		return ErrorInvalidParam
	}

	if in == "" {
		return ErrorSuccess
	}

	if c == UTF8 {
		return utf8ToUTF8(sink, in, eh, true)
	}

	// Validate input is utf-8 up front when the handler can't compensate.
	if eh == EhandlerFail {
		if ok, _ := ValidUTF8(in); !ok {
			return ErrorBadInput
		}
	}

	switch c {
	case Unknown:
		sink.AddStr(in)
		return ErrorSuccess
	case PercentURL, PercentURLPlus, PercentForm, PercentURLMin, PercentFormMin:
		return encodePercent(sink, in, eh, c)
	case Punycode:
		return encodePunycode(sink, in)
	case QuotedPrintable:
		return encodeQuotedPrintable(sink, in)
	}

	if t := tableFor(c); t != nil {
		return encodeCPMap(sink, in, eh, t)
	}
	return ErrorFail
}

func decodeInt(sink Sink, in string, eh Ehandler, c Codec) Error {
	if !validateParams(sink, eh, c) {
		return ErrorInvalidParam
	}

	if in == "" {
		return ErrorSuccess
	}

	if c == UTF8 {
		return utf8ToUTF8(sink, in, eh, false)
	}

	switch c {
	case Unknown:
		sink.AddStr(in)
		return ErrorSuccess
	case PercentURL, PercentURLPlus, PercentForm, PercentURLMin, PercentFormMin:
		return decodePercent(sink, in, eh, c)
	case Punycode:
		return decodePunycode(sink, in)
	case QuotedPrintable:
		return decodeQuotedPrintable(sink, in, eh)
	}

	if t := tableFor(c); t != nil {
		return decodeCPMap(sink, in, eh, t)
	}
	return ErrorFail
}

// Encode converts utf-8 in to the codec's representation.
func Encode(in string, eh Ehandler, c Codec) (string, Error) {
	var buf bytes.Buffer
	res := EncodeBuf(NewBufferSink(&buf), in, eh, c)
	if res.IsError() {
		return "", res
	}
	return buf.String(), res
}

// EncodeBuf converts utf-8 in to the codec's representation, appending
// to sink. On error the sink contents are undefined.
func EncodeBuf(sink Sink, in string, eh Ehandler, c Codec) Error {
	return encodeInt(sink, in, eh, c)
}

// Decode converts in from the codec's representation to utf-8.
func Decode(in string, eh Ehandler, c Codec) (string, Error) {
	var buf bytes.Buffer
	res := DecodeBuf(NewBufferSink(&buf), in, eh, c)
	if res.IsError() {
		return "", res
	}
	return buf.String(), res
}

// DecodeBuf converts in from the codec's representation to utf-8,
// appending to sink. On error the sink contents are undefined.
func DecodeBuf(sink Sink, in string, eh Ehandler, c Codec) Error {
	return decodeInt(sink, in, eh, c)
}
