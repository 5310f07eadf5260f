// Package sparse implements a sparse storage engine for values keyed
// by nested HEALPix pixels.
package sparse

/*

# Sparse HEALPix map engine

Astronomical maps cover a small fraction of a huge pixel space: at
nside 2^17 the sphere has ~200 billion pixels, of which a survey
footprint touches a sliver. This engine stores only the regions that
have been written while answering point lookups in time independent of
the sphere size.

## Two-level addressing

Every map fixes a resolution pair: a coarse coverage resolution and a
fine sparse resolution, both powers of two. Data lives in fixed-size
blocks, one per *covered* coverage pixel, each holding the records of
that pixel's (nsideSparse/nsideCoverage)^2 nested descendants.

Because the nested scheme keeps a coarse pixel's descendants in one
contiguous index range, a fine pixel decomposes with two shifts:

	coverage pixel = pixel >> covShift      (covShift = 2*(orderSparse-orderCoverage))
	local offset   = pixel & (blockRecords - 1)

A lookup is that decomposition, one hash probe of the coverage index,
and one array index into the block — regardless of how much of the
sphere is covered.

## Records and sentinels

A map's per-pixel record is either a single scalar kind or an ordered
set of named fields (with a designated primary field for membership
checks). Records are packed bytes at fixed offsets computed once at
schema construction; writes replace whole records and reads are
bit-exact round trips.

"No data" is a sentinel value, not a separate validity bitmap. Freshly
allocated blocks are sentinel-filled, so an unwritten pixel inside a
covered block still reads as sentinel. The flip side is accepted: a
deliberately written sentinel is indistinguishable from "never
written". Reads never fail for missing data.

Writes grow coverage and nothing shrinks it; schema checks and pixel
range checks run over the whole batch before the first allocation, so
a rejected write leaves the map untouched.

## Concurrency

No internal locking. One writer per map, externally serialized;
concurrent readers of an unwritten map are safe; independent maps
share nothing and parallelize freely.

*/
