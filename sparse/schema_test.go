package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarSchema(t *testing.T) {
	s, err := ScalarSchema(KindFloat64)
	require.NoError(t, err)
	require.True(t, s.Scalar())
	require.Equal(t, 1, s.NumFields())
	require.Equal(t, 8, s.RecordSize())
	require.Equal(t, 0, s.Primary())
	require.True(t, s.Sentinel(0).Equal(Float64Value(UnseenFloat)))

	_, err = ScalarSchema(KindInvalid)
	require.ErrorIs(t, err, ErrBadKind)
}

func TestStructSchemaLayout(t *testing.T) {
	s, err := StructSchema([]Field{
		{Name: "col1", Kind: KindFloat32},
		{Name: "col2", Kind: KindFloat64},
		{Name: "flag", Kind: KindInt16},
	}, "col1")
	require.NoError(t, err)

	require.False(t, s.Scalar())
	require.Equal(t, 3, s.NumFields())
	require.Equal(t, 4+8+2, s.RecordSize())
	require.Equal(t, 0, s.Offset(0))
	require.Equal(t, 4, s.Offset(1))
	require.Equal(t, 12, s.Offset(2))
	require.Equal(t, 0, s.Primary())

	i, ok := s.FieldIndex("col2")
	require.True(t, ok)
	require.Equal(t, 1, i)
	_, ok = s.FieldIndex("nope")
	require.False(t, ok)

	// Every field gets its own kind's sentinel.
	require.True(t, s.Sentinel(0).Equal(Float32Value(UnseenFloat)))
	require.True(t, s.Sentinel(1).Equal(Float64Value(UnseenFloat)))
	require.True(t, s.Sentinel(2).Equal(Int16Value(-32768)))
}

func TestStructSchemaValidation(t *testing.T) {
	twoCols := []Field{
		{Name: "col1", Kind: KindFloat32},
		{Name: "col2", Kind: KindFloat64},
	}

	// Multiple fields with no primary is ambiguous, never defaulted.
	_, err := StructSchema(twoCols, "")
	require.ErrorIs(t, err, ErrNoPrimary)

	_, err = StructSchema(twoCols, "col3")
	require.ErrorIs(t, err, ErrUnknownPrimary)

	_, err = StructSchema(nil, "")
	require.ErrorIs(t, err, ErrNoFields)

	_, err = StructSchema([]Field{
		{Name: "col1", Kind: KindFloat32},
		{Name: "col1", Kind: KindFloat64},
	}, "col1")
	require.ErrorIs(t, err, ErrFieldName)

	_, err = StructSchema([]Field{{Name: "", Kind: KindFloat32}}, "")
	require.ErrorIs(t, err, ErrFieldName)

	_, err = StructSchema([]Field{{Name: "col1", Kind: Kind(99)}}, "")
	require.ErrorIs(t, err, ErrBadKind)

	// A single field needs no explicit primary.
	s, err := StructSchema([]Field{{Name: "only", Kind: KindInt64}}, "")
	require.NoError(t, err)
	require.Equal(t, 0, s.Primary())
}

func TestSchemaEqual(t *testing.T) {
	f64a, err := ScalarSchema(KindFloat64)
	require.NoError(t, err)
	f64b, err := ScalarSchema(KindFloat64)
	require.NoError(t, err)
	f32, err := ScalarSchema(KindFloat32)
	require.NoError(t, err)

	require.True(t, f64a.Equal(f64b))
	// A narrower kind is a different layout, never a castable match.
	require.False(t, f64a.Equal(f32))
	require.False(t, f64a.Equal(nil))

	sa, err := StructSchema([]Field{
		{Name: "col1", Kind: KindFloat32},
		{Name: "col2", Kind: KindFloat64},
	}, "col1")
	require.NoError(t, err)
	sb, err := StructSchema([]Field{
		{Name: "col1", Kind: KindFloat32},
		{Name: "col2", Kind: KindFloat64},
	}, "col2")
	require.NoError(t, err)
	reordered, err := StructSchema([]Field{
		{Name: "col2", Kind: KindFloat64},
		{Name: "col1", Kind: KindFloat32},
	}, "col1")
	require.NoError(t, err)

	// Same layout; the primary designation is not part of it.
	require.True(t, sa.Equal(sb))
	// Field order is part of the layout.
	require.False(t, sa.Equal(reordered))
	// A scalar is not a one-field struct.
	single, err := StructSchema([]Field{{Name: "x", Kind: KindFloat64}}, "")
	require.NoError(t, err)
	require.False(t, f64a.Equal(single))
}
