package charset

import (
	"sort"
	"strings"
)

// Control keys understood by the keypad. They can never be mapped to characters.
const (
	KeyCancel    = '*'
	KeyTerminate = '#'
	KeySeparator = ' '
)

// Definition is the source form of a keypad layout: each key lists the
// characters it cycles through, in press order.
type Definition struct {
	ID    string
	Label string
	Keys  map[rune]string

	// Source is the file the layout was loaded from; empty for built-ins.
	Source string
}

// KeyMapping is the resolved, read-only form of a Definition.
// Candidate slices are shared and must not be modified by callers.
type KeyMapping struct {
	id         string
	keys       []rune
	candidates map[rune][]rune
	positions  map[rune]Position
}

// Position locates a character on the keypad. Presses is 1-based.
type Position struct {
	Key     rune
	Presses int
}

func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func newKeyMapping(def Definition) (KeyMapping, error) {
	id := Normalize(def.ID)
	if id == "" {
		return KeyMapping{}, invalidDefinition(def.ID, "id is required")
	}
	if len(def.Keys) == 0 {
		return KeyMapping{}, invalidDefinition(id, "no keys defined")
	}

	keys := make([]rune, 0, len(def.Keys))
	for key := range def.Keys {
		switch key {
		case KeyCancel, KeyTerminate, KeySeparator:
			return KeyMapping{}, invalidDefinition(id, "key %q is reserved", key)
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	m := KeyMapping{
		id:         id,
		keys:       keys,
		candidates: make(map[rune][]rune, len(keys)),
		positions:  map[rune]Position{},
	}
	for _, key := range keys {
		chars := []rune(def.Keys[key])
		if len(chars) == 0 {
			return KeyMapping{}, invalidDefinition(id, "key %q has no characters", key)
		}
		m.candidates[key] = chars
		for i, r := range chars {
			if _, ok := m.positions[r]; ok {
				continue
			}
			m.positions[r] = Position{Key: key, Presses: i + 1}
		}
	}
	return m, nil
}

// ID returns the normalized charset id the mapping was built for.
func (m KeyMapping) ID() string {
	return m.id
}

// Keys returns the mapped keys in ascending order.
func (m KeyMapping) Keys() []rune {
	return append([]rune{}, m.keys...)
}

// Candidates returns the cycle of characters for key.
func (m KeyMapping) Candidates(key rune) ([]rune, error) {
	chars, ok := m.candidates[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key, Charset: m.id}
	}
	return chars, nil
}

// Resolve returns the character produced by pressing key presses+1 times.
func (m KeyMapping) Resolve(key rune, presses int) (rune, error) {
	chars, err := m.Candidates(key)
	if err != nil {
		return 0, err
	}
	return chars[presses%len(chars)], nil
}

// Position returns where r sits on the keypad. When r appears on several
// keys the lowest key wins, then the earliest press.
func (m KeyMapping) Position(r rune) (Position, error) {
	pos, ok := m.positions[r]
	if !ok {
		return Position{}, &UnknownCharacterError{Char: r, Charset: m.id}
	}
	return pos, nil
}

func cloneDefinition(def Definition) Definition {
	out := def
	if def.Keys != nil {
		out.Keys = make(map[rune]string, len(def.Keys))
		for key, chars := range def.Keys {
			out.Keys[key] = chars
		}
	}
	return out
}
