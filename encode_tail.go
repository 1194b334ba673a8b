package rapidhex

import "encoding/binary"

// encodeTail encodes the 0-7 bytes left over after all full batches.
//
// The loads are size-matched to len(src) and the stores to 2*len(src): a
// minimally sized source buffer must never be read past its end, and the
// bytes just after dst must never be written. That is why a 3-byte tail is
// assembled from a 2-byte and a 1-byte load instead of one 4-byte load.
func encodeTail(dst, src []byte) {
	var v uint64
	switch len(src) {
	case 0:
		return
	case 1:
		v = uint64(src[0])
	case 2:
		v = uint64(binary.LittleEndian.Uint16(src))
	case 3:
		v = uint64(binary.LittleEndian.Uint16(src)) |
			uint64(src[2])<<16
	case 4:
		v = uint64(binary.LittleEndian.Uint32(src))
	case 5:
		v = uint64(binary.LittleEndian.Uint32(src)) |
			uint64(src[4])<<32
	case 6:
		v = uint64(binary.LittleEndian.Uint32(src)) |
			uint64(binary.LittleEndian.Uint16(src[4:]))<<32
	case 7:
		v = uint64(binary.LittleEndian.Uint32(src)) |
			uint64(binary.LittleEndian.Uint16(src[4:]))<<32 |
			uint64(src[6])<<48
	}

	lo, hi := hexWords(v)

	switch len(src) {
	case 1:
		binary.LittleEndian.PutUint16(dst, uint16(lo))
	case 2:
		binary.LittleEndian.PutUint32(dst, uint32(lo))
	case 3:
		binary.LittleEndian.PutUint32(dst, uint32(lo))
		binary.LittleEndian.PutUint16(dst[4:], uint16(lo>>32))
	case 4:
		binary.LittleEndian.PutUint64(dst, lo)
	case 5:
		binary.LittleEndian.PutUint64(dst, lo)
		binary.LittleEndian.PutUint16(dst[8:], uint16(hi))
	case 6:
		binary.LittleEndian.PutUint64(dst, lo)
		binary.LittleEndian.PutUint32(dst[8:], uint32(hi))
	case 7:
		binary.LittleEndian.PutUint64(dst, lo)
		binary.LittleEndian.PutUint32(dst[8:], uint32(hi))
		binary.LittleEndian.PutUint16(dst[12:], uint16(hi>>32))
	}
}
