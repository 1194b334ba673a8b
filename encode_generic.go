package rapidhex

import "encoding/binary"

// encodeGeneric encodes src one byte at a time. It is the reference
// kernel: every batch path must produce identical output at every length.
func encodeGeneric(dst, src []byte) {
	j := 0
	for _, v := range src {
		dst[j] = hextable[v>>4]
		dst[j+1] = hextable[v&0x0f]
		j += 2
	}
}

// hexWords expands the 8 packed bytes of v (little-endian) into 16 hex
// characters, returned as two little-endian words: lo covers input bytes
// 0-3, hi covers bytes 4-7.
func hexWords(v uint64) (lo, hi uint64) {
	lo = uint64(pairLUT[byte(v)]) |
		uint64(pairLUT[byte(v>>8)])<<16 |
		uint64(pairLUT[byte(v>>16)])<<32 |
		uint64(pairLUT[byte(v>>24)])<<48
	hi = uint64(pairLUT[byte(v>>32)]) |
		uint64(pairLUT[byte(v>>40)])<<16 |
		uint64(pairLUT[byte(v>>48)])<<32 |
		uint64(pairLUT[byte(v>>56)])<<48
	return
}

// encodeWord encodes exactly 8 bytes of src into 16 bytes of dst.
func encodeWord(dst, src []byte) {
	lo, hi := hexWords(binary.LittleEndian.Uint64(src))
	binary.LittleEndian.PutUint64(dst, lo)
	binary.LittleEndian.PutUint64(dst[8:], hi)
}
