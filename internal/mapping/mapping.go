package mapping

import (
	"fmt"

	"dossard/internal/textutil"
)

// Mapping binds canonical fields to header labels from one raw table. A
// field is either bound to exactly one label or unbound; unbound optional
// fields resolve to empty values at assembly time.
type Mapping struct {
	bindings map[Field]string
}

// New returns an empty mapping.
func New() *Mapping {
	return &Mapping{bindings: make(map[Field]string)}
}

// AutoMap proposes a mapping for the given header labels using the alias
// dictionary. Matching is first-match-wins in header order; labels without a
// dictionary entry are ignored.
func AutoMap(headers []string) *Mapping {
	m := New()
	for _, header := range headers {
		field, ok := aliases[textutil.FoldLabel(header)]
		if !ok {
			continue
		}
		if _, bound := m.bindings[field]; bound {
			continue
		}
		m.bindings[field] = header
	}
	return m
}

// Bind attaches a header label to a canonical field, replacing any previous
// binding. An empty label clears the field.
func (m *Mapping) Bind(field Field, header string) error {
	if _, ok := KnownField(string(field)); !ok {
		return fmt.Errorf("unknown canonical field %q", field)
	}
	if header == "" {
		delete(m.bindings, field)
		return nil
	}
	m.bindings[field] = header
	return nil
}

// Header returns the label bound to the field, if any.
func (m *Mapping) Header(field Field) (string, bool) {
	header, ok := m.bindings[field]
	return header, ok
}

// Complete reports whether the two required name fields are bound. All other
// fields are optional.
func (m *Mapping) Complete() bool {
	_, first := m.bindings[FieldFirstName]
	_, last := m.bindings[FieldLastName]
	return first && last
}

// Bound returns a copy of the current bindings for display.
func (m *Mapping) Bound() map[Field]string {
	out := make(map[Field]string, len(m.bindings))
	for field, header := range m.bindings {
		out[field] = header
	}
	return out
}
