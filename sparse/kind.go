package sparse

import "math"

// Kind identifies a numeric record kind. Width and signedness are part
// of the identity: an Int32 value never matches an Int64 field.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

// UnseenFloat is the conventional HEALPix "no data" value for floating
// point maps.
const UnseenFloat = -1.6375e30

// Size returns the encoded width of the kind in bytes.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	}
	return 0
}

func (k Kind) valid() bool {
	return k.Size() != 0
}

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	}
	return "invalid"
}

// defaultSentinel returns the kind's "no data" marker: the HEALPix
// UNSEEN value for floats, the type minimum for signed integers and
// the type maximum for unsigned integers.
func (k Kind) defaultSentinel() Value {
	switch k {
	case KindInt8:
		return Int8Value(math.MinInt8)
	case KindInt16:
		return Int16Value(math.MinInt16)
	case KindInt32:
		return Int32Value(math.MinInt32)
	case KindInt64:
		return Int64Value(math.MinInt64)
	case KindUint8:
		return Uint8Value(math.MaxUint8)
	case KindUint16:
		return Uint16Value(math.MaxUint16)
	case KindUint32:
		return Uint32Value(math.MaxUint32)
	case KindUint64:
		return Uint64Value(math.MaxUint64)
	case KindFloat32:
		return Float32Value(UnseenFloat)
	case KindFloat64:
		return Float64Value(UnseenFloat)
	}
	return Value{}
}
