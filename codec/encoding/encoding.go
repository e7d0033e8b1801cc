// encoding registers a pure Go fallback converter built on
// golang.org/x/net/html/charset, which supports a much larger range of
// character sets than the built-in tables (shift_jis, euc-kr, big5, ...).
// Import with a leading underscore for the side effect.
package encoding

import (
	"fmt"

	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	cs "golang.org/x/net/html/charset"

	"github.com/mailchannels/go-textwire/codec"
)

func init() {
	codec.RegisterFallback(func(label string) (codec.Converter, bool) {
		e, _ := cs.Lookup(label)
		if e == nil {
			return nil, false
		}
		return converter{e: e, label: label}, true
	})
}

type converter struct {
	e     xenc.Encoding
	label string
}

func (c converter) ToUTF8(in string) (string, error) {
	out, _, err := transform.String(c.e.NewDecoder(), in)
	if err != nil {
		return "", fmt.Errorf("decode %q: %v", c.label, err)
	}
	return out, nil
}

func (c converter) FromUTF8(in string) (string, error) {
	out, _, err := transform.String(c.e.NewEncoder(), in)
	if err != nil {
		return "", fmt.Errorf("encode %q: %v", c.label, err)
	}
	return out, nil
}
