package cursor

import (
	"bytes"
	"errors"
	"testing"

	plerrors "github.com/wippyai/plbin/errors"
)

func TestCursorReadBytes(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	got, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}
	if c.Position() != 3 {
		t.Errorf("position: got %d, want 3", c.Position())
	}

	_, err = c.ReadBytes(10)
	if !errors.Is(err, plerrors.Match(plerrors.KindShortRead)) {
		t.Errorf("expected short read, got %v", err)
	}
	if c.Position() != 3 {
		t.Errorf("failed read moved position to %d", c.Position())
	}

	_, err = c.ReadBytes(-1)
	if err == nil {
		t.Error("expected error for negative length")
	}
}

func TestCursorReadU64LE(t *testing.T) {
	c := New([]byte{0xEF, 0xBE, 0xAD, 0xDE, 0x00, 0x00, 0x00, 0x80, 0xFF})
	v, err := c.ReadU64LE()
	if err != nil {
		t.Fatalf("ReadU64LE: %v", err)
	}
	if v != 0x80000000DEADBEEF {
		t.Errorf("ReadU64LE: got 0x%x", v)
	}

	_, err = c.ReadU64LE()
	if !errors.Is(err, plerrors.Match(plerrors.KindShortRead)) {
		t.Errorf("expected short read, got %v", err)
	}
}

func TestCursorWriteExtends(t *testing.T) {
	c := New(nil)
	c.WriteBytes([]byte{0xAA})
	c.WriteU64LE(1)
	c.WriteBytes([]byte("xy"))

	want := []byte{0xAA, 1, 0, 0, 0, 0, 0, 0, 0, 'x', 'y'}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("Bytes: got %v, want %v", c.Bytes(), want)
	}
	if c.Position() != len(want) {
		t.Errorf("position: got %d, want %d", c.Position(), len(want))
	}
}

func TestCursorWriteOverwrites(t *testing.T) {
	c := New([]byte{1, 2, 3, 4, 5})
	if err := c.Seek(1); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	c.WriteBytes([]byte{9, 9})
	if !bytes.Equal(c.Bytes(), []byte{1, 9, 9, 4, 5}) {
		t.Errorf("overwrite: got %v", c.Bytes())
	}

	if err := c.Seek(4); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	c.WriteBytes([]byte{7, 7, 7})
	if !bytes.Equal(c.Bytes(), []byte{1, 9, 9, 4, 7, 7, 7}) {
		t.Errorf("overwrite and extend: got %v", c.Bytes())
	}
	if len(c.Bytes()) != 7 {
		t.Errorf("length: got %d, want 7", len(c.Bytes()))
	}
}

func TestCursorSeek(t *testing.T) {
	c := New([]byte{1, 2, 3})
	c.ReadBytes(2)

	if err := c.Seek(0); err != nil {
		t.Errorf("Seek(0): %v", err)
	}
	if err := c.Seek(3); err != nil {
		t.Errorf("Seek(end): %v", err)
	}
	if err := c.Seek(4); err == nil {
		t.Error("Seek past end should fail")
	}
	if err := c.Seek(-1); err == nil {
		t.Error("Seek before start should fail")
	}
	if c.Position() != 3 {
		t.Errorf("failed seek moved position to %d", c.Position())
	}
}

func TestCursorRoundTrip(t *testing.T) {
	w := New(nil)
	w.WriteU64LE(12345)
	w.WriteBytes([]byte{7})
	w.WriteBytes([]byte("roundtrip"))

	r := New(w.Bytes())
	v, err := r.ReadU64LE()
	if err != nil || v != 12345 {
		t.Fatalf("ReadU64LE: got %d, %v", v, err)
	}
	b, err := r.ReadBytes(1)
	if err != nil || b[0] != 7 {
		t.Fatalf("ReadBytes(1): got %v, %v", b, err)
	}
	s, err := r.ReadBytes(r.Remaining())
	if err != nil || string(s) != "roundtrip" {
		t.Fatalf("ReadBytes: got %q, %v", s, err)
	}
}
