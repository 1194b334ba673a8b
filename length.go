package rapidhex

// EncodedLen returns the length of an encoding of n source bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the length of a decoding of n source bytes.
// n must be even.
func DecodedLen(n int) int { return n / 2 }
