package charset

const DefaultID = "en"

var builtinDefinitions = []Definition{
	{
		ID:    "en",
		Label: "English",
		Keys: map[rune]string{
			'1': "&'(",
			'2': "ABC",
			'3': "DEF",
			'4': "GHI",
			'5': "JKL",
			'6': "MNO",
			'7': "PQRS",
			'8': "TUV",
			'9': "WXYZ",
		},
	},
	{
		ID:    "ro",
		Label: "Română",
		Keys: map[rune]string{
			'1': "&'(",
			'2': "ABCĂÂ",
			'3': "DEF",
			'4': "GHIÎ",
			'5': "JKL",
			'6': "MNO",
			'7': "PQRSȘȚ",
			'8': "TUV",
			'9': "WXYZ",
		},
	},
}

var builtin = mustRegistry(builtinDefinitions...)

// Builtin returns the registry of layouts compiled into the binary.
func Builtin() *Registry {
	return builtin
}

// Select returns the key mapping of a built-in layout.
func Select(id string) (KeyMapping, error) {
	return builtin.Select(id)
}

func mustRegistry(defs ...Definition) *Registry {
	reg, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return reg
}
