package hpgeom

import (
	"errors"
	"math"
)

var (
	ErrBadNside = errors.New("hpgeom: nside must be a power of two within the supported range")
	ErrBadAngle = errors.New("hpgeom: angle out of range")
)

// AngleToPixel returns the nested pixel at resolution nside that
// contains the given position on the sphere.
//
// When lonlat is true, a is longitude and b is latitude, both in
// degrees, with latitude in [-90, 90]. Otherwise a is colatitude in
// [0, pi] and b is azimuth, both in radians. Azimuth/longitude wrap
// freely in either convention.
func AngleToPixel(nside uint64, a, b float64, lonlat bool) (uint64, error) {
	if !IsValidNside(nside) {
		return 0, ErrBadNside
	}
	var z, phi float64
	if lonlat {
		lon, lat := a, b
		if lat < -90 || lat > 90 || math.IsNaN(lat) {
			return 0, ErrBadAngle
		}
		z = math.Sin(lat * math.Pi / 180)
		phi = lon * math.Pi / 180
	} else {
		theta := a
		if theta < 0 || theta > math.Pi || math.IsNaN(theta) {
			return 0, ErrBadAngle
		}
		z = math.Cos(theta)
		phi = b
	}
	return zPhiToPixel(nside, z, phi), nil
}

// zPhiToPixel locates (z = cos(colatitude), phi) in the nested scheme.
// This is the standard HEALPix face/(x, y) derivation: the equatorial
// belt (|z| <= 2/3) is gridded by the ascending and descending face
// edge lines, the polar caps by the cap-local triangle coordinates.
func zPhiToPixel(nside uint64, z, phi float64) uint64 {
	order := Order(nside)
	ns := float64(nside)

	// tt is phi scaled so each base face spans one unit, in [0, 4).
	tt := math.Mod(phi/(math.Pi/2), 4)
	if tt < 0 {
		tt += 4
	}

	var face, x, y uint64
	if za := math.Abs(z); za <= 2.0/3.0 {
		temp1 := ns * (0.5 + tt)
		temp2 := ns * z * 0.75
		jp := uint64(temp1 - temp2) // ascending edge line index
		jm := uint64(temp1 + temp2) // descending edge line index

		ifp := jp >> order // in [0, 4]
		ifm := jm >> order
		switch {
		case ifp == ifm: // faces 4..7
			face = (ifp & 3) + 4
		case ifp < ifm: // faces 0..3
			face = ifp
		default: // faces 8..11
			face = ifm + 8
		}

		x = jm & (nside - 1)
		y = nside - (jp & (nside - 1)) - 1
	} else {
		ntt := uint64(tt)
		if ntt >= 4 {
			ntt = 3
		}
		tp := tt - float64(ntt)
		tmp := ns * math.Sqrt(3*(1-za))

		jp := uint64(tp * tmp)
		jm := uint64((1 - tp) * tmp)
		// Points exactly on a cap boundary land one past the face edge.
		if jp >= nside {
			jp = nside - 1
		}
		if jm >= nside {
			jm = nside - 1
		}

		if z >= 0 {
			face = ntt // north cap, faces 0..3
			x = nside - jm - 1
			y = nside - jp - 1
		} else {
			face = ntt + 8 // south cap, faces 8..11
			x = jp
			y = jm
		}
	}

	return face<<(2*order) | spreadBits(x) | spreadBits(y)<<1
}

// spreadBits spreads the low 32 bits of v into the even bit positions,
// the x half of the nested scheme's bit interleave.
func spreadBits(v uint64) uint64 {
	v &= 0xffffffff
	v = (v | v<<16) & 0x0000ffff0000ffff
	v = (v | v<<8) & 0x00ff00ff00ff00ff
	v = (v | v<<4) & 0x0f0f0f0f0f0f0f0f
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}
