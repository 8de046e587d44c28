package keypad

import (
	"strings"

	"phonepad/internal/charset"
)

// Encoder produces the press sequence that types a given text.
type Encoder struct {
	registry *charset.Registry
}

func NewEncoder(registry *charset.Registry) *Encoder {
	if registry == nil {
		registry = charset.Builtin()
	}
	return &Encoder{registry: registry}
}

var defaultEncoder = NewEncoder(charset.Builtin())

func Encode(text, charsetID string) (string, error) {
	return defaultEncoder.Encode(text, charsetID)
}

// Encode returns a sequence that Decode turns back into text. Consecutive
// characters on the same key are split by a separator and the sequence
// ends with a terminator. Empty text encodes to an empty sequence.
func (e *Encoder) Encode(text, charsetID string) (string, error) {
	keys, err := e.registry.Select(resolveCharsetID(charsetID))
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	var out strings.Builder
	var last rune
	for i, r := range []rune(text) {
		pos, err := keys.Position(r)
		if err != nil {
			return "", err
		}
		if i > 0 && pos.Key == last {
			out.WriteRune(charset.KeySeparator)
		}
		for n := 0; n < pos.Presses; n++ {
			out.WriteRune(pos.Key)
		}
		last = pos.Key
	}
	out.WriteRune(charset.KeyTerminate)
	return out.String(), nil
}
