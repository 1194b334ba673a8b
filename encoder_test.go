package rapidhex

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderSimple(t *testing.T) {
	cases := []encodeCase{
		{"empty", nil, ""},
		{"single byte", []byte{0xAB}, "ab"},
		{"hello", []byte("Hello World"), "48656c6c6f20576f726c64"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := new(bytes.Buffer)
			w := NewEncoder(encoded)
			_, err := io.Copy(w, bytes.NewReader(tc.input))
			require.NoError(t, err)
			require.NoError(t, w.Close())
			require.Equal(t, tc.expected, encoded.String())
		})
	}
}

func TestEncoderChunked(t *testing.T) {
	raw := make([]byte, 4096)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	want := EncodeToString(raw)

	// Byte-at-a-time writes must produce the same stream as one call.
	encoded := new(bytes.Buffer)
	w := NewEncoder(encoded)
	for i := range raw {
		n, err := w.Write(raw[i : i+1])
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
	require.NoError(t, w.Close())
	require.Equal(t, want, encoded.String())
}

func TestEncoderReset(t *testing.T) {
	first := new(bytes.Buffer)
	w := NewEncoder(first)
	_, err := w.Write([]byte{0x01})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	second := new(bytes.Buffer)
	w.Reset(second)
	_, err = w.Write([]byte{0x02})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Equal(t, "01", first.String())
	require.Equal(t, "02", second.String())
}

func TestEncoderWriteAfterClose(t *testing.T) {
	w := NewEncoder(io.Discard)
	require.NoError(t, w.Close())

	_, err := w.Write([]byte{0x00})
	require.Error(t, err)
	require.Error(t, w.Close())
}

func BenchmarkEncoder(b *testing.B) {
	raw := make([]byte, 1024*1024)
	_, err := rand.Read(raw)
	require.NoError(b, err)

	r := bytes.NewReader(raw)
	enc := NewEncoder(io.Discard)

	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for b.Loop() {
		_, err = io.Copy(enc, r)
		require.NoError(b, err)
		_, err = r.Seek(0, io.SeekStart)
		require.NoError(b, err)
		enc.Reset(io.Discard)
	}
}
