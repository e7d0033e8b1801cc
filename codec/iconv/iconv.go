// iconv registers a fallback converter backed by GNU iconv for charset
// labels outside the built-in table set. It's a cgo package, the build
// system needs the Gnu library headers available.
// Import with a leading underscore for the side effect.
package iconv

import (
	"fmt"

	ico "gopkg.in/iconv.v1"

	"github.com/mailchannels/go-textwire/codec"
)

func init() {
	codec.RegisterFallback(func(label string) (codec.Converter, bool) {
		// probe that iconv knows the label before committing
		cd, err := ico.Open("UTF-8", label)
		if err != nil {
			return nil, false
		}
		cd.Close()
		return converter{label: label}, true
	})
}

type converter struct {
	label string
}

func (c converter) ToUTF8(in string) (string, error) {
	cd, err := ico.Open("UTF-8", c.label)
	if err != nil {
		return "", fmt.Errorf("unhandled charset %q", c.label)
	}
	defer cd.Close()
	return cd.ConvString(in), nil
}

func (c converter) FromUTF8(in string) (string, error) {
	cd, err := ico.Open(c.label, "UTF-8")
	if err != nil {
		return "", fmt.Errorf("unhandled charset %q", c.label)
	}
	defer cd.Close()
	return cd.ConvString(in), nil
}
