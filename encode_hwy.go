package rapidhex

import "github.com/ajroetker/go-highway/hwy"

// vectorLanes is the bulk batch width in bytes, one input byte per lane:
// 16 on 128-bit targets, 32 when the runtime dispatches to AVX2.
var vectorLanes = hwy.MaxLanes[uint8]()

// useVector routes the bulk loop through the hwy kernel. The generic hwy
// byte ops allocate a slice per call at every dispatch level, and Encode
// must not allocate, so the word kernel carries bulk encoding by default;
// tests force the flag on to prove the kernels agree.
var useVector = false

// digitTable holds hextable tiled across every 16-byte block of the
// vector, so nibble indices 0-15 resolve identically under whole-vector
// and per-block (PSHUFB/TBL) lookup semantics.
var digitTable = func() hwy.Vec[uint8] {
	tiled := make([]uint8, vectorLanes)
	for i := range tiled {
		tiled[i] = hextable[i%16]
	}
	return hwy.Load(tiled)
}()

var nibbleMask = hwy.Set[uint8](0x0f)

// encodeVector encodes one vectorLanes-byte batch of src into
// 2*vectorLanes bytes of dst: split nibbles, gather both through the
// digit table, interleave high before low, store.
func encodeVector(dst, src []byte) {
	v := hwy.Load(src)
	hi := hwy.TableLookupBytes(digitTable, hwy.ShiftRight(v, 4))
	lo := hwy.TableLookupBytes(digitTable, hwy.And(v, nibbleMask))
	hwy.Store(hwy.InterleaveLower(hi, lo), dst)
	hwy.Store(hwy.InterleaveUpper(hi, lo), dst[vectorLanes:])
}
