package rfc9110

import "strings"

// §  5.3.  Field Order
// §
// §     A recipient MAY combine multiple field lines within a field section
// §     that have the same field name into one field line, without changing
// §     the semantics of the message, by appending each subsequent field line
// §     value to the initial field line value in order, separated by a comma
// §     (",") and optional whitespace (OWS, defined in Section 5.6.3).

// Header is a read-only view of a header section.
// Lookup by name must be case-insensitive and values must be returned
// in the order they were received. http.Header satisfies it.
type Header interface {
	Values(name string) []string
}

// Field is a single field line.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered list of field lines.
// Names are kept as given and folded only on lookup.
type Fields []Field

// Add appends a field line.
func (f *Fields) Add(name, value string) {
	*f = append(*f, Field{Name: name, Value: value})
}

// Values returns the values of all field lines named name, in order.
func (f Fields) Values(name string) []string {
	var values []string
	for _, field := range f {
		if strings.EqualFold(field.Name, name) {
			values = append(values, field.Value)
		}
	}
	return values
}

// Has reports whether at least one field line is named name.
func (f Fields) Has(name string) bool {
	for _, field := range f {
		if strings.EqualFold(field.Name, name) {
			return true
		}
	}
	return false
}

// Del removes all field lines named name.
func (f *Fields) Del(name string) {
	kept := (*f)[:0]
	for _, field := range *f {
		if !strings.EqualFold(field.Name, name) {
			kept = append(kept, field)
		}
	}
	*f = kept
}

// ConcatValues combines all field lines named name into one value.
//
// Unlike the combination described above, the values are appended
// without any separator. Validators are compared byte for byte against
// the result, so this must not change to comma joining.
func ConcatValues(h Header, name string) string {
	values := h.Values(name)
	if len(values) == 1 {
		return values[0]
	}
	return strings.Join(values, "")
}
