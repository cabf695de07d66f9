package binfile_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/wippyai/plbin/binfile"
	plerrors "github.com/wippyai/plbin/errors"
)

func reopen(t *testing.T, f *binfile.File) *binfile.File {
	t.Helper()
	g, err := binfile.Open(f.Bytes())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return g
}

func roundTripInt[T binfile.Integer](t *testing.T, v T, wantBytes []byte) {
	t.Helper()
	f := binfile.NewFile()
	if err := binfile.EncodeInt(f, v); err != nil {
		t.Fatalf("EncodeInt(%v): %v", v, err)
	}
	if !bytes.Equal(f.Payload(), wantBytes) {
		t.Errorf("EncodeInt(%v) = %v, want %v", v, f.Payload(), wantBytes)
	}
	got, err := binfile.DecodeInt[T](reopen(t, f))
	if err != nil {
		t.Fatalf("DecodeInt: %v", err)
	}
	if got != v {
		t.Errorf("DecodeInt = %v, want %v", got, v)
	}
}

type register uint8

func TestIntRoundTrip(t *testing.T) {
	t.Run("u8", func(t *testing.T) { roundTripInt(t, uint8(0xAB), []byte{0xAB}) })
	t.Run("i8", func(t *testing.T) { roundTripInt(t, int8(-1), []byte{0xFF}) })
	t.Run("u16", func(t *testing.T) { roundTripInt(t, uint16(0x1234), []byte{0x34, 0x12}) })
	t.Run("i16", func(t *testing.T) { roundTripInt(t, int16(-2), []byte{0xFE, 0xFF}) })
	t.Run("u32", func(t *testing.T) { roundTripInt(t, uint32(0xDEADBEEF), []byte{0xEF, 0xBE, 0xAD, 0xDE}) })
	t.Run("i32", func(t *testing.T) { roundTripInt(t, int32(math.MinInt32), []byte{0, 0, 0, 0x80}) })
	t.Run("u64", func(t *testing.T) { roundTripInt(t, uint64(42), []byte{42, 0, 0, 0, 0, 0, 0, 0}) })
	t.Run("i64", func(t *testing.T) {
		roundTripInt(t, int64(math.MinInt64), []byte{0, 0, 0, 0, 0, 0, 0, 0x80})
	})
	t.Run("named", func(t *testing.T) { roundTripInt(t, register(7), []byte{7}) })
}

func TestDecodeIntShortRead(t *testing.T) {
	f := binfile.NewFile()
	binfile.EncodeInt(f, uint16(1))
	g := reopen(t, f)
	_, err := binfile.DecodeInt[uint32](g)
	if !errors.Is(err, plerrors.Match(plerrors.KindShortRead)) {
		t.Fatalf("expected short_read, got %v", err)
	}
	var e *plerrors.Error
	if errors.As(err, &e) && e.Value != 4 {
		t.Errorf("short read needed %v bytes, want 4", e.Value)
	}
}

func TestBool(t *testing.T) {
	f := binfile.NewFile()
	binfile.EncodeBool(f, true)
	binfile.EncodeBool(f, false)
	binfile.EncodeInt(f, uint8(2))

	g := reopen(t, f)
	if v, err := binfile.DecodeBool(g); err != nil || !v {
		t.Errorf("DecodeBool = %v, %v; want true", v, err)
	}
	if v, err := binfile.DecodeBool(g); err != nil || v {
		t.Errorf("DecodeBool = %v, %v; want false", v, err)
	}
	if _, err := binfile.DecodeBool(g); !errors.Is(err, plerrors.Match(plerrors.KindEnumOutOfBounds)) {
		t.Errorf("expected enum_out_of_bounds, got %v", err)
	}
}

func TestInt128(t *testing.T) {
	u := binfile.U128{Lo: 1, Hi: 2}
	i := binfile.I128{Lo: math.MaxUint64, Hi: -1}

	f := binfile.NewFile()
	if err := binfile.EncodeValue(f, u); err != nil {
		t.Fatalf("encode U128: %v", err)
	}
	if err := binfile.EncodeValue(f, i); err != nil {
		t.Fatalf("encode I128: %v", err)
	}
	if len(f.Payload()) != 32 {
		t.Fatalf("payload length = %d, want 32", len(f.Payload()))
	}

	g := reopen(t, f)
	gu, err := binfile.DecodeValue[binfile.U128](g)
	if err != nil || gu != u {
		t.Errorf("U128 = %v, %v; want %v", gu, err, u)
	}
	gi, err := binfile.DecodeValue[binfile.I128](g)
	if err != nil || gi != i {
		t.Errorf("I128 = %v, %v; want %v", gi, err, i)
	}

	if got := u.String(); got != "36893488147419103233" {
		t.Errorf("U128.String() = %s", got)
	}
	if got := i.String(); got != "-1" {
		t.Errorf("I128.String() = %s, want -1", got)
	}
}
