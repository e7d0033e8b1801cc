package codec

import "sync"

// Converter converts between a named character set and utf-8. It is the
// hook used to reach character sets outside the built-in table set, e.g.
// shift_jis or euc-kr. Register one by importing codec/encoding (pure
// Go, golang.org/x/net) or codec/iconv (cgo, GNU iconv) for side
// effects.
type Converter interface {
	// ToUTF8 converts character set bytes to utf-8.
	ToUTF8(in string) (string, error)
	// FromUTF8 converts utf-8 to character set bytes.
	FromUTF8(in string) (string, error)
}

var fallback struct {
	sync.RWMutex
	f func(label string) (Converter, bool)
}

// RegisterFallback installs the converter lookup consulted for charset
// labels FromString doesn't recognize. The last registration wins.
func RegisterFallback(f func(label string) (Converter, bool)) {
	fallback.Lock()
	fallback.f = f
	fallback.Unlock()
}

func lookupFallback(label string) (Converter, bool) {
	fallback.RLock()
	f := fallback.f
	fallback.RUnlock()
	if f == nil {
		return nil, false
	}
	return f(label)
}

// DecodeCharset converts in from the character set named by label to
// utf-8. Built-in codecs are tried first, then the registered fallback
// converter. ErrorFail is returned when neither knows the label.
func DecodeCharset(in, label string, eh Ehandler) (string, Error) {
	if c := FromString(label); c != Unknown {
		return Decode(in, eh, c)
	}
	if conv, ok := lookupFallback(label); ok {
		out, err := conv.ToUTF8(in)
		if err != nil {
			return "", ErrorFail
		}
		return out, ErrorSuccess
	}
	return "", ErrorFail
}

// EncodeCharset converts utf-8 in to the character set named by label.
func EncodeCharset(in, label string, eh Ehandler) (string, Error) {
	if c := FromString(label); c != Unknown {
		return Encode(in, eh, c)
	}
	if conv, ok := lookupFallback(label); ok {
		out, err := conv.FromUTF8(in)
		if err != nil {
			return "", ErrorFail
		}
		return out, ErrorSuccess
	}
	return "", ErrorFail
}
