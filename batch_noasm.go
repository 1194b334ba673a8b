//go:build !amd64

package rapidhex

// Non-amd64 targets have 16-byte vectors at most; the single-vector batch
// is already the widest useful unit.
var useWideBatch = false
