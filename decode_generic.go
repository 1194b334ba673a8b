package rapidhex

// decodeGeneric folds pairs of hex characters back into bytes through the
// reverse table.
func decodeGeneric(dst, src []byte) (int, error) {
	i, j := 0, 1
	for ; j < len(src); j += 2 {
		a := revLUT[src[j-1]]
		if a == 0xFF {
			return i, InvalidByteError(src[j-1])
		}
		b := revLUT[src[j]]
		if b == 0xFF {
			return i, InvalidByteError(src[j])
		}
		dst[i] = a<<4 | b
		i++
	}
	if len(src)%2 == 1 {
		// Check for an invalid char before reporting the bad length,
		// since the invalid char (if present) is an earlier problem.
		if revLUT[src[j-1]] == 0xFF {
			return i, InvalidByteError(src[j-1])
		}
		return i, ErrLength
	}
	return i, nil
}
