package rapidhex

import (
	"errors"
	"io"
	"sync"
)

// Encoder wraps an io.Writer; writes to it are hex encoded and forwarded.
type Encoder struct {
	w   io.Writer
	buf []byte

	writeMu sync.Mutex
}

// NewEncoder returns a new [Encoder].
// Writes to the returned writer are hex encoded and written to w.
//
// It is the caller's responsibility to call Close on the [Encoder] when done.
func NewEncoder(w io.Writer) *Encoder {
	e := new(Encoder)
	e.Reset(w)
	return e
}

// Reset discards the [Encoder] e's state and makes it equivalent to the
// result of its original state from [NewEncoder], but writing to w instead.
// This permits reusing an [Encoder] rather than allocating a new one.
func (e *Encoder) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
}

var errWriterNil = errors.New("rapidhex: writer is nil")

// Write writes the hex encoded form of p to the underlying [io.Writer].
func (e *Encoder) Write(p []byte) (int, error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}
	if len(p) == 0 {
		return 0, nil
	}

	if grow := EncodedLen(len(p)) - len(e.buf); grow > 0 {
		e.buf = append(e.buf, make([]byte, grow)...)
	}
	nDst, nSrc := Encode(e.buf, p)
	if _, err := e.w.Write(e.buf[:nDst]); err != nil {
		return 0, err
	}
	return nSrc, nil
}

// Close marks the Encoder finished. Hex output carries no trailer; Close
// exists so the Encoder satisfies io.WriteCloser and rejects writes after
// the stream is done. It is an error to call Write after calling Close.
func (e *Encoder) Close() error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	e.w = nil
	return nil
}
