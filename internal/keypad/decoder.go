// Package keypad converts multi-tap phone keypad presses to text and back.
package keypad

import (
	"strings"

	"phonepad/internal/charset"
)

// Decoder turns press sequences into text using the layouts of a registry.
type Decoder struct {
	registry   *charset.Registry
	flushAtEnd bool
}

type DecoderOption func(*Decoder)

// WithFlushAtEnd emits the pending key group when input ends without a
// terminator. By default that group is dropped.
func WithFlushAtEnd() DecoderOption {
	return func(d *Decoder) {
		d.flushAtEnd = true
	}
}

func NewDecoder(registry *charset.Registry, opts ...DecoderOption) *Decoder {
	if registry == nil {
		registry = charset.Builtin()
	}
	d := &Decoder{registry: registry}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder(charset.Builtin())

// Decode decodes input with a built-in layout. An empty charsetID selects
// charset.DefaultID.
func Decode(input, charsetID string) (string, error) {
	return defaultDecoder.Decode(input, charsetID)
}

// pressState is the group of presses not yet committed to output.
// The zero value is idle.
type pressState struct {
	pending bool
	key     rune
	presses int
}

// Decode scans input once. Repeated presses of the pending key advance its
// cycle; any other rune commits the pending character first. '*' drops the
// pending group, ' ' commits and returns to idle, '#' commits and stops.
// On error no partial output is returned.
func (d *Decoder) Decode(input, charsetID string) (string, error) {
	keys, err := d.registry.Select(resolveCharsetID(charsetID))
	if err != nil {
		return "", err
	}

	var out strings.Builder
	var state pressState
	for _, c := range input {
		if state.pending && c == state.key {
			state.presses++
			continue
		}
		if !state.pending {
			// The rune is accepted as a key here and only looked up on flush.
			state = pressState{pending: true, key: c}
			continue
		}
		if c == charset.KeyCancel {
			state = pressState{}
			continue
		}

		r, err := keys.Resolve(state.key, state.presses)
		if err != nil {
			return "", err
		}
		out.WriteRune(r)

		switch c {
		case charset.KeyTerminate:
			return out.String(), nil
		case charset.KeySeparator:
			state = pressState{}
		default:
			state = pressState{pending: true, key: c}
		}
	}

	if d.flushAtEnd && state.pending {
		r, err := keys.Resolve(state.key, state.presses)
		if err != nil {
			return "", err
		}
		out.WriteRune(r)
	}
	return out.String(), nil
}

func resolveCharsetID(id string) string {
	if strings.TrimSpace(id) == "" {
		return charset.DefaultID
	}
	return id
}
