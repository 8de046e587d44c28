package charset

import "fmt"

// Registry maps charset ids to key mappings. It is never mutated after
// construction, so concurrent readers need no locking.
type Registry struct {
	order    []string
	defs     map[string]Definition
	mappings map[string]KeyMapping
}

func NewRegistry(defs ...Definition) (*Registry, error) {
	reg := &Registry{
		defs:     make(map[string]Definition, len(defs)),
		mappings: make(map[string]KeyMapping, len(defs)),
	}
	if err := reg.add(defs); err != nil {
		return nil, err
	}
	return reg, nil
}

// With returns a new registry holding the current layouts plus defs.
func (r *Registry) With(defs ...Definition) (*Registry, error) {
	next := &Registry{
		order:    append([]string{}, r.order...),
		defs:     make(map[string]Definition, len(r.defs)+len(defs)),
		mappings: make(map[string]KeyMapping, len(r.mappings)+len(defs)),
	}
	for id, def := range r.defs {
		next.defs[id] = def
	}
	for id, mapping := range r.mappings {
		next.mappings[id] = mapping
	}
	if err := next.add(defs); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *Registry) add(defs []Definition) error {
	for _, def := range defs {
		mapping, err := newKeyMapping(def)
		if err != nil {
			return err
		}
		id := mapping.ID()
		if _, ok := r.mappings[id]; ok {
			if def.Source != "" {
				return fmt.Errorf("%s: %w: %q", def.Source, ErrDuplicateCharset, id)
			}
			return fmt.Errorf("%w: %q", ErrDuplicateCharset, id)
		}
		stored := cloneDefinition(def)
		stored.ID = id
		r.order = append(r.order, id)
		r.defs[id] = stored
		r.mappings[id] = mapping
	}
	return nil
}

// Select returns the key mapping registered under id.
func (r *Registry) Select(id string) (KeyMapping, error) {
	mapping, ok := r.mappings[Normalize(id)]
	if !ok {
		return KeyMapping{}, &UnknownCharsetError{ID: id}
	}
	return mapping, nil
}

func (r *Registry) Lookup(id string) (Definition, bool) {
	def, ok := r.defs[Normalize(id)]
	if !ok {
		return Definition{}, false
	}
	return cloneDefinition(def), true
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string{}, r.order...)
}

func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneDefinition(r.defs[id]))
	}
	return out
}
