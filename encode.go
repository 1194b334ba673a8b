// Package rapidhex implements batched hexadecimal encoding and decoding.
// The encoder consumes input at the widest available vector width and
// falls back to table-driven scalar kernels for short inputs and tails.
package rapidhex

import (
	"encoding/binary"
)

// Encode writes the lowercase hexadecimal encoding of src to dst, two
// characters per input byte, most-significant nibble first.
//
// dst must have room for EncodedLen(len(src)) bytes and must not overlap
// src; neither is validated. Encode cannot fail for any input length or
// contents. It returns the number of bytes written to dst and read from
// src, so consecutive encodes over adjacent subslices can be chained
// without recomputing offsets.
func Encode(dst, src []byte) (nDst, nSrc int) {
	n := len(src)
	switch n {
	case 0:
		return 0, 0
	case 1:
		// Hot case: one flattened table index, one 16-bit store.
		binary.LittleEndian.PutUint16(dst, pairLUT[src[0]])
		return 2, 1
	}

	d, s := 0, 0
	if useVector {
		if useWideBatch {
			for n-s >= 2*vectorLanes {
				encodeVector(dst[d:], src[s:])
				encodeVector(dst[d+2*vectorLanes:], src[s+vectorLanes:])
				d += 4 * vectorLanes
				s += 2 * vectorLanes
			}
		}
		for n-s >= vectorLanes {
			encodeVector(dst[d:], src[s:])
			d += 2 * vectorLanes
			s += vectorLanes
		}
	}
	for n-s >= 8 {
		encodeWord(dst[d:], src[s:])
		d += 16
		s += 8
	}
	encodeTail(dst[d:d+2*(n-s)], src[s:])

	return 2 * n, n
}

// EncodeToString returns the lowercase hexadecimal encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}
