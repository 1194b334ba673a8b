package rapidhex

// hextable maps a nibble to its ASCII digit. Encoding always emits
// lowercase; Decode accepts either case.
const hextable = "0123456789abcdef"

// pairLUT maps a whole byte to its two hex characters, packed
// little-endian (high-nibble digit in the low byte) so a single 16-bit
// store writes the pair in output order.
var pairLUT [256]uint16

// revLUT maps an ASCII character back to its nibble value, or 0xFF when
// the character is not a hex digit.
var revLUT [256]byte

func init() {
	for n := 0; n < 256; n++ {
		pairLUT[n] = uint16(hextable[n>>4]) | uint16(hextable[n&0x0f])<<8
	}
	for n := range revLUT {
		revLUT[n] = 0xFF
	}
	for i := 0; i < len(hextable); i++ {
		c := hextable[i]
		revLUT[c] = byte(i)
		if c >= 'a' {
			revLUT[c-('a'-'A')] = byte(i)
		}
	}
}
