package binfile

import (
	"encoding/binary"
	"unsafe"

	"github.com/wippyai/plbin/errors"
)

// Integer is the set of fixed-width integer types the primitive codec handles.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Unsigned is the set of representations usable for bit-flag sets.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EncodeInt writes v little-endian in exactly its own width.
func EncodeInt[T Integer](f *File, v T) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	f.WriteBytes(buf[:unsafe.Sizeof(v)])
	return nil
}

// DecodeInt reads a little-endian integer of T's width.
func DecodeInt[T Integer](f *File) (T, error) {
	var v T
	b, err := f.ReadBytes(int(unsafe.Sizeof(v)))
	if err != nil {
		return v, err
	}
	var buf [8]byte
	copy(buf[:], b)
	// sign bits above the width are dropped by the conversion
	return T(binary.LittleEndian.Uint64(buf[:])), nil
}

// EncodeBool writes a single byte, 1 for true.
func EncodeBool(f *File, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return EncodeInt(f, b)
}

// DecodeBool reads a single byte that must be 0 or 1.
func DecodeBool(f *File) (bool, error) {
	b, err := DecodeInt[uint8](f)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.EnumOutOfBounds("bool", uint64(b))
	}
}
