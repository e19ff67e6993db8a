package xmapping

import (
	"io"
)

// PortableBuffer is the byte view handed to downstream consumers.
type PortableBuffer interface {
	Len() int
	// At returns the byte at i. Out-of-range indexes panic like slice indexing.
	At(i int) byte
	// Slice returns the view of [start, end), sharing the underlying bytes.
	Slice(start, end int) PortableBuffer
	// Bytes returns a copy of the contents.
	Bytes() []byte
}

// ByteBuffer is the PortableBuffer returned by WrapAsPortableBuffer.
type ByteBuffer struct {
	buf []byte
}

var (
	_ PortableBuffer = (*ByteBuffer)(nil)
	_ io.ReaderAt    = (*ByteBuffer)(nil)
	_ io.WriterTo    = (*ByteBuffer)(nil)
)

// WrapAsPortableBuffer copies b into a new buffer of the same length and
// wraps it. Later writes to b are not visible through the result.
func WrapAsPortableBuffer(b []byte) PortableBuffer {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &ByteBuffer{buf: cp}
}

func (b *ByteBuffer) Len() int { return len(b.buf) }

func (b *ByteBuffer) At(i int) byte { return b.buf[i] }

func (b *ByteBuffer) Slice(start, end int) PortableBuffer {
	return &ByteBuffer{buf: b.buf[start:end:end]}
}

func (b *ByteBuffer) Bytes() []byte {
	cp := make([]byte, len(b.buf))
	copy(cp, b.buf)
	return cp
}

// ReadAt implements io.ReaderAt.
func (b *ByteBuffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ErrNegativeOffset
	}
	if off >= int64(len(b.buf)) {
		return 0, io.EOF
	}
	n := copy(p, b.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteTo implements io.WriterTo.
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	return int64(n), err
}

// String renders the contents through BytesToText.
func (b *ByteBuffer) String() string { return BytesToText(b.buf) }
