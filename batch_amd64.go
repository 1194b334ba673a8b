//go:build amd64

package rapidhex

import "golang.org/x/sys/cpu"

// useWideBatch enables the 2x-vector bulk batch. Wider batches only pay
// off when 32-byte registers exist.
var useWideBatch = cpu.X86.HasAVX2
