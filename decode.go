package rapidhex

import (
	"errors"
	"fmt"
)

// ErrLength reports an attempt to decode an odd-length input using Decode
// or DecodeString. The stream-based Decoder returns io.ErrUnexpectedEOF
// instead of ErrLength.
var ErrLength = errors.New("rapidhex: odd length hex string")

// InvalidByteError values describe errors resulting from an invalid byte
// in a hex string.
type InvalidByteError byte

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("rapidhex: invalid byte: %#U", rune(e))
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst, returning the
// number of bytes written. Decode expects src to contain only hexadecimal
// characters, in either case, and to have even length. On error it reports
// how many whole bytes were written before the offending character.
func Decode(dst, src []byte) (int, error) {
	return decodeGeneric(dst, src)
}

// DecodeString returns the bytes represented by the hexadecimal string s.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := Decode(dst, []byte(s))
	return dst[:n], err
}
