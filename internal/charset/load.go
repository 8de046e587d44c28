package charset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"
)

const fileExt = ".toml"

type definitionFile struct {
	ID    string            `toml:"id"`
	Label string            `toml:"label"`
	Keys  map[string]string `toml:"keys"`
}

// Parse decodes a TOML layout. Characters are NFC-normalized so that
// decomposed diacritics resolve to the same runes as the built-in layouts.
func Parse(data []byte) (Definition, error) {
	var raw definitionFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Definition{}, err
	}
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return Definition{}, invalidDefinition(raw.ID, "id is required")
	}
	def := Definition{
		ID:    id,
		Label: strings.TrimSpace(raw.Label),
		Keys:  make(map[rune]string, len(raw.Keys)),
	}
	for name, chars := range raw.Keys {
		if utf8.RuneCountInString(name) != 1 {
			return Definition{}, invalidDefinition(id, "key %q must be a single character", name)
		}
		key, _ := utf8.DecodeRuneInString(name)
		def.Keys[key] = norm.NFC.String(chars)
	}
	if _, err := newKeyMapping(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// LoadDir loads every *.toml layout in dir, in file name order.
// A missing directory yields no definitions.
func LoadDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), fileExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		def, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadPaths loads layouts from a mix of files and directories.
// Missing paths are skipped.
func LoadPaths(paths []string) ([]Definition, error) {
	var defs []Definition
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if info.IsDir() {
			loaded, err := LoadDir(path)
			if err != nil {
				return nil, err
			}
			defs = append(defs, loaded...)
			continue
		}
		def, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
