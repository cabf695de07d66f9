// Package cursor implements the positioned byte buffer behind a binfile.File.
package cursor

import (
	"encoding/binary"

	"github.com/wippyai/plbin/errors"
)

// Cursor is a byte buffer with a single read/write position.
// Writes overwrite bytes at the position and grow the buffer as needed.
type Cursor struct {
	buf []byte
	pos int
}

// New creates a Cursor over b positioned at offset 0.
// The cursor takes ownership of b.
func New(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Position returns the current byte position.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of bytes between the position and the end.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Seek moves the position to pos, which must lie within [0, len(buffer)].
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Value(pos).
			Detail("seek to %d outside buffer of %d bytes", pos, len(c.buf)).
			Build()
	}
	c.pos = pos
	return nil
}

// ReadBytes reads exactly n bytes. The returned slice aliases the buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, errors.ShortRead(n, c.Remaining(), c.pos)
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU64LE reads a little-endian uint64 (fixed 8 bytes).
func (c *Cursor) ReadU64LE() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// WriteBytes writes data at the position, overwriting existing bytes
// and extending the buffer past its end.
func (c *Cursor) WriteBytes(data []byte) {
	end := c.pos + len(data)
	if end > len(c.buf) {
		c.buf = append(c.buf[:c.pos], data...)
		c.pos = end
		return
	}
	copy(c.buf[c.pos:], data)
	c.pos = end
}

// WriteU64LE writes a little-endian uint64 (fixed 8 bytes).
func (c *Cursor) WriteU64LE(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	c.WriteBytes(buf[:])
}

// Bytes returns the whole buffer regardless of position.
func (c *Cursor) Bytes() []byte {
	return c.buf
}
