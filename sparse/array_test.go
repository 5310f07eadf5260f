package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArrayIsSentinelFilled(t *testing.T) {
	s, err := StructSchema([]Field{
		{Name: "col1", Kind: KindFloat32},
		{Name: "col2", Kind: KindFloat64},
	}, "col1")
	require.NoError(t, err)

	a := NewArray(s, 5)
	require.Equal(t, 5, a.Len())
	for i := 0; i < a.Len(); i++ {
		require.True(t, a.Value(i, 0).Equal(Float32Value(UnseenFloat)), "record %d col1", i)
		require.True(t, a.Value(i, 1).Equal(Float64Value(UnseenFloat)), "record %d col2", i)
	}
}

func TestArraySetValue(t *testing.T) {
	s, err := ScalarSchema(KindFloat64)
	require.NoError(t, err)

	a := NewArray(s, 3)
	require.NoError(t, a.SetValue(1, 0, Float64Value(2.5)))

	require.Equal(t, 2.5, a.Value(1, 0).Float64())
	// Neighbors stay sentinel.
	require.True(t, a.Value(0, 0).Equal(Float64Value(UnseenFloat)))
	require.True(t, a.Value(2, 0).Equal(Float64Value(UnseenFloat)))

	// A float32 value never lands in a float64 field.
	err = a.SetValue(0, 0, Float32Value(1.0))
	require.ErrorIs(t, err, ErrValueKind)
	require.True(t, a.Value(0, 0).Equal(Float64Value(UnseenFloat)))
}

func TestArrayFill(t *testing.T) {
	s, err := StructSchema([]Field{
		{Name: "a", Kind: KindInt32},
		{Name: "b", Kind: KindInt64},
	}, "a")
	require.NoError(t, err)

	arr := NewArray(s, 4)
	require.NoError(t, arr.Fill(0, Int32Value(7)))
	for i := 0; i < arr.Len(); i++ {
		require.Equal(t, int32(7), arr.Value(i, 0).Int32())
		// The other field is untouched.
		require.True(t, arr.Value(i, 1).Equal(s.Sentinel(1)))
	}

	require.ErrorIs(t, arr.Fill(1, Int32Value(7)), ErrValueKind)
}
