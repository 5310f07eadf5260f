package sparse

import "fmt"

// Array is a contiguous column of records sharing one schema, the unit
// of exchange on the map's read and write surfaces. Records are packed
// at RecordSize stride in a single buffer; field access is one offset
// computation, never reflection.
type Array struct {
	schema *Schema
	buf    []byte
	n      int
}

// NewArray returns an array of n records with every field of every
// record set to its sentinel.
func NewArray(schema *Schema, n int) *Array {
	a := &Array{
		schema: schema,
		buf:    make([]byte, n*schema.RecordSize()),
		n:      n,
	}
	rec := schema.sentinelRecord()
	for i := 0; i < n; i++ {
		copy(a.record(i), rec)
	}
	return a
}

// Len returns the record count.
func (a *Array) Len() int { return a.n }

// Schema returns the shared record schema.
func (a *Array) Schema() *Schema { return a.schema }

// Value returns field f of record i.
//
// The caller is responsible for keeping i within [0, Len()) and f
// within the schema's fields; this is the hot read path and it does
// not re-check.
func (a *Array) Value(i, f int) Value {
	return valueFromBytes(a.schema.fields[f].Kind, a.record(i)[a.schema.offsets[f]:])
}

// SetValue stores v into field f of record i. The value's kind must
// match the field's declared kind exactly.
func (a *Array) SetValue(i, f int, v Value) error {
	if v.Kind() != a.schema.fields[f].Kind {
		return fmt.Errorf("%w: %v vs field %d (%v)", ErrValueKind, v.Kind(), f, a.schema.fields[f].Kind)
	}
	v.put(a.record(i)[a.schema.offsets[f]:])
	return nil
}

// Fill stores v into field f of every record.
func (a *Array) Fill(f int, v Value) error {
	if v.Kind() != a.schema.fields[f].Kind {
		return fmt.Errorf("%w: %v vs field %d (%v)", ErrValueKind, v.Kind(), f, a.schema.fields[f].Kind)
	}
	off := a.schema.offsets[f]
	for i := 0; i < a.n; i++ {
		v.put(a.record(i)[off:])
	}
	return nil
}

// record returns the packed bytes of record i.
func (a *Array) record(i int) []byte {
	w := a.schema.size
	return a.buf[i*w : (i+1)*w]
}

// setRecord overwrites record i with the packed bytes rec.
func (a *Array) setRecord(i int, rec []byte) {
	copy(a.record(i), rec)
}
