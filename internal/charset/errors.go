package charset

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCharset    = errors.New("charset: unknown charset")
	ErrUnknownKey        = errors.New("charset: unknown key")
	ErrUnknownCharacter  = errors.New("charset: character not on keypad")
	ErrDuplicateCharset  = errors.New("charset: duplicate charset id")
	ErrInvalidDefinition = errors.New("charset: invalid definition")
)

// UnknownCharsetError reports a charset id that is not registered.
type UnknownCharsetError struct {
	ID string
}

func (e *UnknownCharsetError) Error() string {
	return fmt.Sprintf("charset %q was not found", e.ID)
}

func (e *UnknownCharsetError) Unwrap() error { return ErrUnknownCharset }

// UnknownKeyError reports a key with no candidates in the active mapping.
type UnknownKeyError struct {
	Key     rune
	Charset string
}

func (e *UnknownKeyError) Error() string {
	if e.Charset == "" {
		return fmt.Sprintf("key %q is not mapped", e.Key)
	}
	return fmt.Sprintf("key %q is not mapped in charset %q", e.Key, e.Charset)
}

func (e *UnknownKeyError) Unwrap() error { return ErrUnknownKey }

// UnknownCharacterError reports a character that no key of the charset produces.
type UnknownCharacterError struct {
	Char    rune
	Charset string
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("character %q cannot be typed with charset %q", e.Char, e.Charset)
}

func (e *UnknownCharacterError) Unwrap() error { return ErrUnknownCharacter }

func invalidDefinition(id, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidDefinition, id, fmt.Sprintf(format, args...))
}
