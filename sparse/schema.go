package sparse

import "fmt"

// Field declares one named column of a structured record.
type Field struct {
	Name string
	Kind Kind
}

// Schema describes the per-pixel record layout of a map: either a
// single scalar kind or an ordered list of named fields, with computed
// byte offsets and a per-field sentinel record. Schemas are immutable
// once built.
type Schema struct {
	scalar    bool
	fields    []Field
	primary   int
	offsets   []int
	size      int
	sentinels []Value
}

// ScalarSchema builds a schema holding one unnamed value of the given
// kind, with the kind's default sentinel.
func ScalarSchema(kind Kind) (*Schema, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadKind, kind)
	}
	s := &Schema{
		scalar:  true,
		fields:  []Field{{Kind: kind}},
		primary: 0,
	}
	s.finish()
	return s, nil
}

// StructSchema builds a schema of named fields laid out in declaration
// order. primary names the field used for membership and sentinel
// checks; it may be empty only when there is exactly one field.
// Ambiguity is a construction error, never a silent default.
func StructSchema(fields []Field, primary string) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !f.Kind.valid() {
			return nil, fmt.Errorf("%w: field %q", ErrBadKind, f.Name)
		}
		if f.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrFieldName)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q declared twice", ErrFieldName, f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	primaryIndex := -1
	if primary == "" {
		if len(fields) > 1 {
			return nil, ErrNoPrimary
		}
		primaryIndex = 0
	} else {
		for i, f := range fields {
			if f.Name == primary {
				primaryIndex = i
				break
			}
		}
		if primaryIndex < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPrimary, primary)
		}
	}

	s := &Schema{
		fields:  append([]Field(nil), fields...),
		primary: primaryIndex,
	}
	s.finish()
	return s, nil
}

// finish computes the packed field offsets and default sentinels.
func (s *Schema) finish() {
	s.offsets = make([]int, len(s.fields))
	s.sentinels = make([]Value, len(s.fields))
	for i, f := range s.fields {
		s.offsets[i] = s.size
		s.size += f.Kind.Size()
		s.sentinels[i] = f.Kind.defaultSentinel()
	}
}

// withSentinel returns a copy of s whose primary field carries v as
// its sentinel. v's kind must match the primary field's kind exactly.
func (s *Schema) withSentinel(v Value) (*Schema, error) {
	if v.Kind() != s.fields[s.primary].Kind {
		return nil, fmt.Errorf("%w: %v vs %v", ErrSentinelKind, v.Kind(), s.fields[s.primary].Kind)
	}
	out := *s
	out.sentinels = append([]Value(nil), s.sentinels...)
	out.sentinels[s.primary] = v
	return &out, nil
}

// Scalar reports whether the schema is a single unnamed value.
func (s *Schema) Scalar() bool { return s.scalar }

// NumFields returns the field count; a scalar schema has one field.
func (s *Schema) NumFields() int { return len(s.fields) }

// Field returns the i'th field declaration.
func (s *Schema) Field(i int) Field { return s.fields[i] }

// FieldIndex returns the index of the named field.
func (s *Schema) FieldIndex(name string) (int, bool) {
	for i, f := range s.fields {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Primary returns the index of the primary field. For a scalar schema
// this is 0.
func (s *Schema) Primary() int { return s.primary }

// RecordSize returns the packed record width in bytes.
func (s *Schema) RecordSize() int { return s.size }

// Offset returns the byte offset of field i within a record.
func (s *Schema) Offset(i int) int { return s.offsets[i] }

// Sentinel returns the sentinel for field i.
func (s *Schema) Sentinel(i int) Value { return s.sentinels[i] }

// Equal reports whether o declares the identical record layout: same
// scalar/structured shape and the same field names and kinds in the
// same order. Kinds must match bit for bit; a wider or narrower kind
// is a mismatch, not a castable difference. Sentinels and the primary
// designation are not part of the layout.
func (s *Schema) Equal(o *Schema) bool {
	if o == nil || s.scalar != o.scalar || len(s.fields) != len(o.fields) {
		return false
	}
	for i, f := range s.fields {
		if o.fields[i] != f {
			return false
		}
	}
	return true
}

// sentinelRecord encodes one record with every field set to its
// sentinel.
func (s *Schema) sentinelRecord() []byte {
	rec := make([]byte, s.size)
	for i := range s.fields {
		s.sentinels[i].put(rec[s.offsets[i]:])
	}
	return rec
}
