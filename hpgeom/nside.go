package hpgeom

import "math/bits"

// MaxOrder is the largest supported resolution order. At order 29 the
// pixel index for the last face still fits a uint64 with room for the
// bit-interleaved (x, y) pair.
const MaxOrder = 29

// MaxNside is the largest supported resolution parameter.
const MaxNside uint64 = 1 << MaxOrder

// IsValidNside reports whether nside is a usable resolution parameter:
// a power of two in [1, MaxNside].
func IsValidNside(nside uint64) bool {
	if nside == 0 || nside > MaxNside {
		return false
	}
	return nside&(nside-1) == 0
}

// Order returns log2(nside).
//
// The caller is responsible for ensuring IsValidNside(nside); the
// result is meaningless otherwise.
func Order(nside uint64) uint64 {
	return uint64(bits.Len64(nside) - 1)
}

// Npix returns the total pixel count at resolution nside, 12*nside^2.
func Npix(nside uint64) uint64 {
	return 12 * nside * nside
}

// Degrade converts a nested pixel index at resolution nsideIn to the
// index of its ancestor at the coarser resolution nsideOut. In the
// nested scheme this is a pure right shift.
//
// The caller is responsible for ensuring both resolutions satisfy
// IsValidNside and that nsideOut <= nsideIn.
func Degrade(pixel, nsideIn, nsideOut uint64) uint64 {
	return pixel >> (2 * (Order(nsideIn) - Order(nsideOut)))
}
