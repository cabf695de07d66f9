package binfile

import (
	"math/big"
)

// U128 is an unsigned 128-bit integer stored as two 64-bit halves.
type U128 struct {
	Lo uint64
	Hi uint64
}

// I128 is a two's complement signed 128-bit integer.
type I128 struct {
	Lo uint64
	Hi int64
}

// EncodeBinary writes 16 bytes, low half first.
func (u *U128) EncodeBinary(f *File) error {
	if err := EncodeInt(f, u.Lo); err != nil {
		return err
	}
	return EncodeInt(f, u.Hi)
}

// DecodeBinary reads 16 bytes, low half first.
func (u *U128) DecodeBinary(f *File) error {
	lo, err := DecodeInt[uint64](f)
	if err != nil {
		return err
	}
	hi, err := DecodeInt[uint64](f)
	if err != nil {
		return err
	}
	u.Lo, u.Hi = lo, hi
	return nil
}

// Big converts u to a big.Int.
func (u U128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func (u U128) String() string {
	return u.Big().String()
}

// EncodeBinary writes 16 bytes, low half first.
func (i *I128) EncodeBinary(f *File) error {
	if err := EncodeInt(f, i.Lo); err != nil {
		return err
	}
	return EncodeInt(f, i.Hi)
}

// DecodeBinary reads 16 bytes, low half first.
func (i *I128) DecodeBinary(f *File) error {
	lo, err := DecodeInt[uint64](f)
	if err != nil {
		return err
	}
	hi, err := DecodeInt[int64](f)
	if err != nil {
		return err
	}
	i.Lo, i.Hi = lo, hi
	return nil
}

// Big converts i to a big.Int.
func (i I128) Big() *big.Int {
	v := big.NewInt(i.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(i.Lo))
}

func (i I128) String() string {
	return i.Big().String()
}
