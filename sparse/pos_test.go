package sparse

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacobic/healsparse/hpgeom"
)

func TestGetValuesPosFreshMap(t *testing.T) {
	m := mustScalarMap(t, 32, 64, KindFloat64)

	rng := rand.New(rand.NewSource(12345))
	lon := make([]float64, 1000)
	lat := make([]float64, 1000)
	for i := range lon {
		lon[i] = rng.Float64() * 360.0
		lat[i] = rng.Float64()*180.0 - 90.0
	}

	got, err := m.GetValuesPos(lon, lat, true)
	require.NoError(t, err)
	for i := 0; i < got.Len(); i++ {
		require.True(t, got.Value(i, 0).Equal(Float64Value(UnseenFloat)), "position %d", i)
	}
}

func TestGetValuesPosMatchesPixelPath(t *testing.T) {
	m := mustScalarMap(t, 32, 64, KindFloat64)

	// Write by pixel index, read back by position: both paths must
	// agree on the pixel a position belongs to.
	rng := rand.New(rand.NewSource(6789))
	n := 500
	lon := make([]float64, n)
	lat := make([]float64, n)
	pixels := make([]uint64, n)
	for i := 0; i < n; i++ {
		lon[i] = rng.Float64() * 360.0
		lat[i] = rng.Float64()*180.0 - 90.0
		p, err := hpgeom.AngleToPixel(64, lon[i], lat[i], true)
		require.NoError(t, err)
		pixels[i] = p
	}

	vals := NewArray(m.Schema(), n)
	for i := range pixels {
		require.NoError(t, vals.SetValue(i, 0, Float64Value(float64(pixels[i]))))
	}
	require.NoError(t, m.UpdateValuesPix(pixels, vals))

	got, err := m.GetValuesPos(lon, lat, true)
	require.NoError(t, err)
	for i := 0; i < got.Len(); i++ {
		require.Equal(t, float64(pixels[i]), got.Value(i, 0).Float64(), "position %d", i)
	}

	// The colatitude/azimuth convention reaches the same records.
	const rad = 0.017453292519943295
	theta := make([]float64, n)
	phi := make([]float64, n)
	for i := 0; i < n; i++ {
		theta[i] = (90.0 - lat[i]) * rad
		phi[i] = lon[i] * rad
	}
	got, err = m.GetValuesPos(theta, phi, false)
	require.NoError(t, err)
	for i := 0; i < got.Len(); i++ {
		require.Equal(t, float64(pixels[i]), got.Value(i, 0).Float64(), "position %d", i)
	}
}

func TestGetValuesPosInputErrors(t *testing.T) {
	m := mustScalarMap(t, 32, 64, KindFloat64)

	_, err := m.GetValuesPos([]float64{1, 2, 3}, []float64{1, 2}, true)
	require.ErrorIs(t, err, ErrLengthMismatch)

	// Collaborator rejections surface as range errors.
	_, err = m.GetValuesPos([]float64{0}, []float64{91}, true)
	require.ErrorIs(t, err, ErrPixelRange)
}

// stubPixelizer returns fixed pixels, standing in for an alternative
// geometry library.
type stubPixelizer struct {
	pixels map[[2]float64]uint64
	err    error
}

func (s stubPixelizer) AngleToPixel(nside uint64, a, b float64, lonlat bool) (uint64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.pixels[[2]float64{a, b}], nil
}

func TestWithPixelizer(t *testing.T) {
	stub := stubPixelizer{pixels: map[[2]float64]uint64{
		{10, 20}: 4000,
		{30, 40}: 9000,
	}}
	m := mustScalarMap(t, 32, 64, KindFloat64, WithPixelizer(stub))

	require.NoError(t, m.UpdateValuesPix([]uint64{4000}, scalarConst(t, m.Schema(), 1, Float64Value(7.0))))

	got, err := m.GetValuesPos([]float64{10, 30}, []float64{20, 40}, true)
	require.NoError(t, err)
	require.Equal(t, 7.0, got.Value(0, 0).Float64())
	require.True(t, got.Value(1, 0).Equal(Float64Value(UnseenFloat)))

	// MakeEmptyLike carries the collaborator across.
	like, err := MakeEmptyLike(m)
	require.NoError(t, err)
	got, err = like.GetValuesPos([]float64{10}, []float64{20}, true)
	require.NoError(t, err)
	require.True(t, got.Value(0, 0).Equal(Float64Value(UnseenFloat)))

	failing := stubPixelizer{err: errors.New("broken collaborator")}
	m2 := mustScalarMap(t, 32, 64, KindFloat64, WithPixelizer(failing))
	_, err = m2.GetValuesPos([]float64{0}, []float64{0}, true)
	require.ErrorIs(t, err, ErrPixelRange)
}
