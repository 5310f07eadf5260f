package sparse

import (
	"fmt"

	"github.com/jacobic/healsparse/hpgeom"
)

// Map is a sparse HEALPix map: records at a fine "sparse" resolution,
// allocated in blocks keyed by a coarse "coverage" resolution. Both
// resolutions, the record schema and the sentinel are fixed for the
// map's lifetime; only the covered set and the block contents mutate.
//
// A Map is not safe for concurrent mutation. Concurrent readers of a
// map that is not being written are safe, since reads never touch the
// coverage index or the block store. Independent maps share nothing.
type Map struct {
	nsideCoverage uint64
	nsideSparse   uint64
	schema        *Schema
	cov           *coverageIndex
	store         *blockStore
	pixelizer     Pixelizer

	// covShift decomposes a fine pixel: coverage pixel above the
	// shift, local block offset below it.
	covShift     uint64
	blockRecords uint64
}

// Option configures map construction.
type Option func(*makeOptions)

type makeOptions struct {
	sentinel  *Value
	pixelizer Pixelizer
}

// WithSentinel overrides the default sentinel for the map's scalar
// kind, or for the primary field of a structured schema. The value's
// kind must match exactly.
func WithSentinel(v Value) Option {
	return func(o *makeOptions) {
		o.sentinel = &v
	}
}

// WithPixelizer substitutes the geometry collaborator used by position
// lookups. The default is the nested hpgeom implementation.
func WithPixelizer(p Pixelizer) Option {
	return func(o *makeOptions) {
		o.pixelizer = p
	}
}

// MakeEmpty constructs a map with no covered pixels. nsideCoverage and
// nsideSparse must both be valid power-of-two resolutions with
// nsideSparse at least as fine as nsideCoverage, which makes the
// resolution ratio a power of two as the block addressing requires.
func MakeEmpty(nsideCoverage, nsideSparse uint64, schema *Schema, opts ...Option) (*Map, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if !hpgeom.IsValidNside(nsideCoverage) || !hpgeom.IsValidNside(nsideSparse) ||
		nsideSparse < nsideCoverage {
		return nil, fmt.Errorf("%w: coverage %d, sparse %d", ErrResolution, nsideCoverage, nsideSparse)
	}

	var o makeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.sentinel != nil {
		var err error
		if schema, err = schema.withSentinel(*o.sentinel); err != nil {
			return nil, err
		}
	}
	if o.pixelizer == nil {
		o.pixelizer = nestPixelizer{}
	}

	covShift := 2 * (hpgeom.Order(nsideSparse) - hpgeom.Order(nsideCoverage))
	blockRecords := uint64(1) << covShift

	return &Map{
		nsideCoverage: nsideCoverage,
		nsideSparse:   nsideSparse,
		schema:        schema,
		cov:           newCoverageIndex(),
		store:         newBlockStore(schema, blockRecords),
		pixelizer:     o.pixelizer,
		covShift:      covShift,
		blockRecords:  blockRecords,
	}, nil
}

// LikeOption overrides one schema attribute in MakeEmptyLike.
type LikeOption func(*likeOptions)

type likeOptions struct {
	nsideCoverage *uint64
	nsideSparse   *uint64
	schema        *Schema
	sentinel      *Value
}

// LikeNsideCoverage overrides the coverage resolution.
func LikeNsideCoverage(nside uint64) LikeOption {
	return func(o *likeOptions) { o.nsideCoverage = &nside }
}

// LikeNsideSparse overrides the sparse resolution.
func LikeNsideSparse(nside uint64) LikeOption {
	return func(o *likeOptions) { o.nsideSparse = &nside }
}

// LikeSchema overrides the record schema. Unless LikeSentinel is also
// given, the new map carries the overriding schema's own sentinels,
// not the source map's.
func LikeSchema(s *Schema) LikeOption {
	return func(o *likeOptions) { o.schema = s }
}

// LikeSentinel overrides the sentinel; its kind must match the
// resulting schema's primary kind.
func LikeSentinel(v Value) LikeOption {
	return func(o *likeOptions) { o.sentinel = &v }
}

// MakeEmptyLike constructs an empty map copying every schema attribute
// of src except those overridden. The result has empty coverage
// regardless of src's contents.
func MakeEmptyLike(src *Map, opts ...LikeOption) (*Map, error) {
	var o likeOptions
	for _, opt := range opts {
		opt(&o)
	}

	nsideCoverage := src.nsideCoverage
	if o.nsideCoverage != nil {
		nsideCoverage = *o.nsideCoverage
	}
	nsideSparse := src.nsideSparse
	if o.nsideSparse != nil {
		nsideSparse = *o.nsideSparse
	}
	// The source schema already carries the source sentinel; an
	// overriding schema carries its own.
	schema := src.schema
	if o.schema != nil {
		schema = o.schema
	}

	makeOpts := []Option{WithPixelizer(src.pixelizer)}
	if o.sentinel != nil {
		makeOpts = append(makeOpts, WithSentinel(*o.sentinel))
	}
	return MakeEmpty(nsideCoverage, nsideSparse, schema, makeOpts...)
}

// NsideCoverage returns the coarse resolution.
func (m *Map) NsideCoverage() uint64 { return m.nsideCoverage }

// NsideSparse returns the fine resolution.
func (m *Map) NsideSparse() uint64 { return m.nsideSparse }

// Schema returns the record schema.
func (m *Map) Schema() *Schema { return m.schema }

// Sentinel returns the "no data" value of the scalar kind, or of the
// primary field for structured records.
func (m *Map) Sentinel() Value {
	return m.schema.Sentinel(m.schema.Primary())
}

// Covered reports whether the coverage pixel has ever been written
// beneath. A pixel overwritten with the sentinel still counts.
func (m *Map) Covered(covPixel uint64) bool {
	return m.cov.has(covPixel)
}

// NCovered returns the number of covered coverage pixels.
func (m *Map) NCovered() int {
	return m.cov.numCovered()
}

// CoveredPixels returns the covered coverage pixels in ascending
// order.
func (m *Map) CoveredPixels() []uint64 {
	return m.cov.pixels()
}

// CoverageMask returns one bool per coverage pixel, true where
// covered. The mask is dense at the coverage resolution, which is
// small by construction.
func (m *Map) CoverageMask() []bool {
	mask := make([]bool, hpgeom.Npix(m.nsideCoverage))
	for p := range m.cov.handles {
		mask[p] = true
	}
	return mask
}

// ValidPixels returns, in ascending order, every fine pixel whose
// primary field differs from the sentinel. A written value equal to
// the sentinel is indistinguishable from "missing"; that is the
// engine's storage tradeoff, not an error.
func (m *Map) ValidPixels() []uint64 {
	primary := m.schema.Primary()
	kind := m.schema.Field(primary).Kind
	off := m.schema.Offset(primary)
	sentinel := m.schema.Sentinel(primary)

	var out []uint64
	for _, covPixel := range m.cov.pixels() {
		h, _ := m.cov.lookup(covPixel)
		base := covPixel << m.covShift
		for local := uint64(0); local < m.blockRecords; local++ {
			if !valueFromBytes(kind, m.store.read(h, local)[off:]).Equal(sentinel) {
				out = append(out, base|local)
			}
		}
	}
	return out
}
