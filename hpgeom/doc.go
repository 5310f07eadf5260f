// Package hpgeom provides the nested HEALPix pixel arithmetic consumed
// by the sparse map engine.
package hpgeom

/*

# Nested HEALPix primitives

HEALPix partitions the sphere into 12 base faces, each subdivided into
nside x nside equal-area pixels, for a total of 12*nside^2 pixels. The
resolution parameter nside must be a power of two; order = log2(nside).

This package implements only the *nested* numbering scheme. In nested
ordering a pixel's index encodes its position as a bit-interleaved
(x, y) pair within its base face:

	pixel = face << (2*order) | interleave(x, y)

Two properties of that encoding carry the whole sparse addressing
scheme built on top of this package:

 1. Degrading a pixel to a coarser resolution is a right shift by twice
    the order difference. No lookup tables, no searching.
 2. The descendants of a coarse pixel form one contiguous index range
    at any finer resolution, so a fine pixel's offset within its
    coarse parent's range is a simple mask of the low bits.

Neither property holds for the ring scheme, which is why no ring entry
points exist here.

As with the rest of this module, the low level functions place a burden
of knowledge on the caller: Degrade and Order yield nonsense for
resolutions that IsValidNside rejects, and they do not re-check. The
angle conversion validates its inputs because it sits on the public
position-lookup path.

*/
