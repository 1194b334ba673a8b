package rapidhex

import "github.com/ajroetker/go-highway/hwy"

// Kernel returns the name of the implementation used for bulk encode
// operations, e.g. "avx2", "neon" or "scalar".
func Kernel() string {
	if !useVector {
		return "scalar"
	}
	return hwy.CurrentName()
}

// Width returns the bulk batch width in bytes: the number of input bytes
// consumed per iteration of the widest enabled loop.
func Width() int {
	if !useVector {
		return 8
	}
	if useWideBatch {
		return 2 * vectorLanes
	}
	return vectorLanes
}
