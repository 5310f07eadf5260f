package sparse

import (
	"fmt"

	"github.com/jacobic/healsparse/hpgeom"
)

// GetValuesPix returns one record per fine pixel index. Pixels under
// coverage read from their block; pixels under no coverage read the
// sentinel record without touching block storage. Reads never fail
// for "no data" — an unobserved pixel is a normal state here.
//
// With validate set, any pixel outside [0, 12*nsideSparse^2) fails
// with ErrPixelRange. Without it, out-of-range pixels decompose to
// coverage pixels that cannot exist and so read as sentinel; skipping
// validation is the caller's risk.
func (m *Map) GetValuesPix(pixels []uint64, validate bool) (*Array, error) {
	if validate {
		if err := m.checkPixels(pixels); err != nil {
			return nil, err
		}
	}

	out := NewArray(m.schema, len(pixels))
	for i, pixel := range pixels {
		h, ok := m.cov.lookup(pixel >> m.covShift)
		if !ok {
			continue // stays sentinel
		}
		out.setRecord(i, m.store.read(h, pixel&(m.blockRecords-1)))
	}
	return out, nil
}

// GetValuesPos returns one record per position, converting each
// position to a fine pixel through the map's Pixelizer and delegating
// to GetValuesPix. When lonlat is true a and b are longitude and
// latitude in degrees, otherwise colatitude and azimuth in radians.
func (m *Map) GetValuesPos(a, b []float64, lonlat bool) (*Array, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d positions vs %d", ErrLengthMismatch, len(a), len(b))
	}

	pixels := make([]uint64, len(a))
	for i := range a {
		pixel, err := m.pixelizer.AngleToPixel(m.nsideSparse, a[i], b[i], lonlat)
		if err != nil {
			return nil, fmt.Errorf("%w: position %d: %v", ErrPixelRange, i, err)
		}
		pixels[i] = pixel
	}
	return m.GetValuesPix(pixels, true)
}

// UpdateValuesPix writes one record per fine pixel index, allocating
// blocks for newly touched coverage pixels on demand. values must
// share the map's exact schema and hold either len(pixels) records or
// a single record broadcast to every pixel. Each write replaces the
// whole record; duplicate pixels resolve last-write-wins in input
// order, and input order does not otherwise affect the final state.
//
// The whole batch is validated before any block is allocated, so a
// rejected call leaves the map exactly as it was.
func (m *Map) UpdateValuesPix(pixels []uint64, values *Array) error {
	if values == nil {
		return fmt.Errorf("%w: nil values", ErrSchemaMismatch)
	}
	if !m.schema.Equal(values.Schema()) {
		return ErrSchemaMismatch
	}
	if values.Len() != len(pixels) && values.Len() != 1 {
		return fmt.Errorf("%w: %d pixels vs %d values", ErrLengthMismatch, len(pixels), values.Len())
	}
	if err := m.checkPixels(pixels); err != nil {
		return err
	}

	broadcast := values.Len() == 1
	for i, pixel := range pixels {
		h := m.cov.getOrCreate(pixel>>m.covShift, m.store)
		j := i
		if broadcast {
			j = 0
		}
		m.store.write(h, pixel&(m.blockRecords-1), values.record(j))
	}
	return nil
}

// checkPixels validates every index against the sparse pixel space.
func (m *Map) checkPixels(pixels []uint64) error {
	npix := hpgeom.Npix(m.nsideSparse)
	for _, pixel := range pixels {
		if pixel >= npix {
			return fmt.Errorf("%w: pixel %d, nside %d has %d pixels", ErrPixelRange, pixel, m.nsideSparse, npix)
		}
	}
	return nil
}
