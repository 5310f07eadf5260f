package sparse

import "github.com/jacobic/healsparse/hpgeom"

// Pixelizer converts sphere positions to nested fine pixel indices.
// The engine performs no trigonometry of its own; position lookups are
// a thin adapter over this collaborator.
//
// Implementations must use a nested (hierarchical) numbering in which
// a coarse pixel's descendants form one contiguous fine index range.
// The engine's offset arithmetic silently corrupts data under any
// other numbering.
type Pixelizer interface {
	// AngleToPixel returns the fine pixel at resolution nside
	// containing the position. When lonlat is true a and b are
	// longitude and latitude in degrees, otherwise colatitude and
	// azimuth in radians.
	AngleToPixel(nside uint64, a, b float64, lonlat bool) (uint64, error)
}

// nestPixelizer is the default Pixelizer, backed by hpgeom.
type nestPixelizer struct{}

func (nestPixelizer) AngleToPixel(nside uint64, a, b float64, lonlat bool) (uint64, error) {
	return hpgeom.AngleToPixel(nside, a, b, lonlat)
}
