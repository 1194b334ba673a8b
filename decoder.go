package rapidhex

import (
	"io"
)

const defaultReadBufSize = 32 * 1024

// readBuffer is a sliding window over bytes read from the source that
// have not been decoded yet.
type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) init(size int) {
	if len(rb.buf) == 0 {
		if size <= 0 {
			size = defaultReadBufSize
		}
		if size < 2 {
			// A full character pair must fit, or the fill loop in Read
			// could never make progress.
			size = 2
		}
		rb.buf = make([]byte, size)
	}
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

func (rb *readBuffer) readMore(r io.Reader) (int, error) {
	if rb.end == len(rb.buf) {
		rb.compact()
	}
	n, err := r.Read(rb.buf[rb.end:])
	if n > 0 {
		rb.end += n
	}
	return n, err
}

// Decoder reads hexadecimal text from an underlying reader and yields the
// decoded bytes. A trailing unpaired character is held back until its
// partner arrives in a later read; if the source ends on one, Read
// reports io.ErrUnexpectedEOF.
type Decoder struct {
	r       io.Reader
	rb      readBuffer
	bufSize int
	err     error // sticky read error from the source
}

type DecoderOption func(d *Decoder)

// WithBufferSize sets the size of the Decoder's internal read buffer.
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		d.bufSize = size
	}
}

// NewDecoder returns a Decoder reading hexadecimal text from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Read implements io.Reader.
func (d *Decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	d.rb.init(d.bufSize)

	// Buffer at least one full character pair, or learn that the
	// source is done.
	for d.rb.end-d.rb.start < 2 && d.err == nil {
		if _, err := d.rb.readMore(d.r); err != nil {
			d.err = err
		}
	}

	w := d.rb.window()
	pairs := len(w) / 2
	if pairs == 0 {
		if len(w) == 1 && d.err == io.EOF {
			if revLUT[w[0]] == 0xFF {
				return 0, InvalidByteError(w[0])
			}
			return 0, io.ErrUnexpectedEOF
		}
		return 0, d.err
	}
	if pairs > len(p) {
		pairs = len(p)
	}

	n, err := Decode(p[:pairs], w[:pairs*2])
	d.rb.advance(n * 2)
	return n, err
}
