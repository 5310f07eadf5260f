package sparse

import (
	"encoding/binary"
	"math"
)

// Value is a kind-tagged scalar. The payload is carried as raw bits so
// values round-trip through block storage bit-exactly; in particular a
// float sentinel compares equal to itself even when NaN.
type Value struct {
	kind Kind
	bits uint64
}

func Int8Value(v int8) Value       { return Value{KindInt8, uint64(uint8(v))} }
func Int16Value(v int16) Value     { return Value{KindInt16, uint64(uint16(v))} }
func Int32Value(v int32) Value     { return Value{KindInt32, uint64(uint32(v))} }
func Int64Value(v int64) Value     { return Value{KindInt64, uint64(v)} }
func Uint8Value(v uint8) Value     { return Value{KindUint8, uint64(v)} }
func Uint16Value(v uint16) Value   { return Value{KindUint16, uint64(v)} }
func Uint32Value(v uint32) Value   { return Value{KindUint32, uint64(v)} }
func Uint64Value(v uint64) Value   { return Value{KindUint64, v} }
func Float32Value(v float32) Value { return Value{KindFloat32, uint64(math.Float32bits(v))} }
func Float64Value(v float64) Value { return Value{KindFloat64, math.Float64bits(v)} }

// Kind returns the kind the value was constructed with.
func (v Value) Kind() Kind { return v.kind }

// Bits returns the raw payload bits, zero extended.
func (v Value) Bits() uint64 { return v.bits }

// Equal reports whether o has the same kind and the same payload bits.
func (v Value) Equal(o Value) bool { return v.kind == o.kind && v.bits == o.bits }

// The typed accessors reinterpret the payload for the matching kind.
// The caller is responsible for using the accessor that matches
// Kind(); a mismatched accessor yields a bit reinterpretation, not a
// conversion.

func (v Value) Int8() int8       { return int8(v.bits) }
func (v Value) Int16() int16     { return int16(v.bits) }
func (v Value) Int32() int32     { return int32(v.bits) }
func (v Value) Int64() int64     { return int64(v.bits) }
func (v Value) Uint8() uint8     { return uint8(v.bits) }
func (v Value) Uint16() uint16   { return uint16(v.bits) }
func (v Value) Uint32() uint32   { return uint32(v.bits) }
func (v Value) Uint64() uint64   { return v.bits }
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.bits)) }
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }

// put encodes the value, little endian, into b. len(b) must be at
// least v.Kind().Size().
func (v Value) put(b []byte) {
	switch v.kind.Size() {
	case 1:
		b[0] = byte(v.bits)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v.bits))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v.bits))
	case 8:
		binary.LittleEndian.PutUint64(b, v.bits)
	}
}

// valueFromBytes decodes a value of the given kind from b.
func valueFromBytes(kind Kind, b []byte) Value {
	var bits uint64
	switch kind.Size() {
	case 1:
		bits = uint64(b[0])
	case 2:
		bits = uint64(binary.LittleEndian.Uint16(b))
	case 4:
		bits = uint64(binary.LittleEndian.Uint32(b))
	case 8:
		bits = binary.LittleEndian.Uint64(b)
	}
	return Value{kind, bits}
}
