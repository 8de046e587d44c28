package keypad

import (
	"errors"
	"strings"
	"testing"

	"phonepad/internal/charset"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		charset string
		want    string
	}{
		{name: "single press", input: "2#", want: "A"},
		{name: "three presses", input: "222#", want: "C"},
		{name: "hello", input: "4433555 555666#", want: "HELLO"},
		{name: "pending dropped at end", input: "22", want: ""},
		{name: "cancel pending group", input: "227*#", want: "P"},
		{name: "space separates same key", input: "2 2#", want: "AA"},
		{name: "key change commits", input: "23#", want: "AD"},
		{name: "wraps around", input: "2222#", want: "A"},
		{name: "four letter key wraps", input: "77777#", want: "P"},
		{name: "stops at terminator", input: "2#33#", want: "A"},
		{name: "empty input", input: "", want: ""},
		{name: "lone terminator is a pending key", input: "#", want: ""},
		{name: "punctuation key", input: "11#", want: "'"},
		{name: "explicit en", input: "8#", charset: "en", want: "T"},
		{name: "romanian breve", input: "2222#", charset: "ro", want: "Ă"},
		{name: "romanian circumflex", input: "22222#", charset: "ro", want: "Â"},
		{name: "romanian comma below", input: "777777#", charset: "ro", want: "Ț"},
		{name: "romanian word", input: "77777844488#", charset: "ro", want: "ȘTIU"},
		{name: "romanian same key", input: "4444 444466#", charset: "ro", want: "ÎIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input, tt.charset)
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Decode(%q): got=%q want=%q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeRepeatedPressesCycle(t *testing.T) {
	for _, id := range charset.Builtin().IDs() {
		mapping, err := charset.Select(id)
		if err != nil {
			t.Fatalf("Select(%q): %v", id, err)
		}
		for _, key := range mapping.Keys() {
			chars, err := mapping.Candidates(key)
			if err != nil {
				t.Fatalf("Candidates: %v", err)
			}
			for k := 1; k <= 2*len(chars)+1; k++ {
				input := strings.Repeat(string(key), k) + "#"
				got, err := Decode(input, id)
				if err != nil {
					t.Fatalf("Decode(%q, %q): %v", input, id, err)
				}
				if want := string(chars[(k-1)%len(chars)]); got != want {
					t.Fatalf("Decode(%q, %q): got=%q want=%q", input, id, got, want)
				}
			}
		}
	}
}

func TestDecodeUnknownCharset(t *testing.T) {
	_, err := Decode("2#", "fr")
	var unknown *charset.UnknownCharsetError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCharsetError, got %v", err)
	}
	if unknown.ID != "fr" {
		t.Fatalf("unexpected id: %q", unknown.ID)
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   rune
	}{
		{name: "zero digit", input: "0#", key: '0'},
		{name: "letter", input: "2a2#", key: 'a'},
		{name: "leading space becomes key", input: " 2#", key: ' '},
		{name: "leading cancel becomes key", input: "*2#", key: '*'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input, "")
			if got != "" {
				t.Fatalf("expected no partial output, got %q", got)
			}
			var unknown *charset.UnknownKeyError
			if !errors.As(err, &unknown) {
				t.Fatalf("expected UnknownKeyError, got %v", err)
			}
			if unknown.Key != tt.key {
				t.Fatalf("unexpected key: got=%q want=%q", unknown.Key, tt.key)
			}
		})
	}
}

func TestDecodeUnknownKeyAfterEndIsNotLookedUp(t *testing.T) {
	got, err := Decode("20", "en")
	if err != nil {
		t.Fatalf("expected pending 0 to be dropped silently, got %v", err)
	}
	if got != "A" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	const input = "4433555 555666#"
	first, err := Decode(input, "en")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Decode(input, "en")
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if again != first {
			t.Fatalf("non-deterministic output: %q vs %q", again, first)
		}
	}
}

func TestDecoderFlushAtEnd(t *testing.T) {
	d := NewDecoder(nil, WithFlushAtEnd())
	tests := []struct {
		input string
		want  string
	}{
		{input: "22", want: "B"},
		{input: "4433555 555666", want: "HELLO"},
		{input: "2*", want: ""},
		{input: "2 ", want: "A"},
		{input: "2#3", want: "A"},
	}
	for _, tt := range tests {
		got, err := d.Decode(tt.input, "en")
		if err != nil {
			t.Fatalf("Decode(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("Decode(%q): got=%q want=%q", tt.input, got, tt.want)
		}
	}
}

func TestDecoderInjectedRegistry(t *testing.T) {
	reg, err := charset.NewRegistry(charset.Definition{
		ID:   "hex",
		Keys: map[rune]string{'a': "0123", 'b': "4567"},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	d := NewDecoder(reg)
	got, err := d.Decode("aaab b#", "hex")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "244" {
		t.Fatalf("unexpected output: %q", got)
	}
	if _, err := d.Decode("2#", ""); !errors.Is(err, charset.ErrUnknownCharset) {
		t.Fatalf("expected default charset to be missing from injected registry, got %v", err)
	}
}
