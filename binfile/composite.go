package binfile

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/wippyai/plbin/errors"
)

// EncodeFunc writes one value of T to a File.
type EncodeFunc[T any] = func(*File, T) error

// DecodeFunc reads one value of T from a File.
type DecodeFunc[T any] = func(*File) (T, error)

// Encoder is implemented by types that serialize themselves.
type Encoder interface {
	EncodeBinary(f *File) error
}

// Decoder is implemented by types that deserialize themselves.
type Decoder interface {
	DecodeBinary(f *File) error
}

// EncodeValue encodes v through its EncodeBinary method.
func EncodeValue[T any, PT interface {
	*T
	Encoder
}](f *File, v T) error {
	return PT(&v).EncodeBinary(f)
}

// DecodeValue decodes a T through its DecodeBinary method.
func DecodeValue[T any, PT interface {
	*T
	Decoder
}](f *File) (T, error) {
	var v T
	if err := PT(&v).DecodeBinary(f); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// EncodeString writes the interner position of s.
func EncodeString(f *File, s string) error {
	pos, err := f.interner.PositionOf(s)
	if err != nil {
		return err
	}
	return EncodeInt(f, pos)
}

// DecodeString reads an interner position and resolves it.
func DecodeString(f *File) (string, error) {
	pos, err := DecodeInt[uint64](f)
	if err != nil {
		return "", err
	}
	return f.interner.Get(pos)
}

// EncodeOption writes tag 0 for nil, or tag 1 followed by *v.
func EncodeOption[T any](f *File, v *T, enc EncodeFunc[T]) error {
	if v == nil {
		return EncodeInt[uint8](f, 0)
	}
	if err := EncodeInt[uint8](f, 1); err != nil {
		return err
	}
	return enc(f, *v)
}

// DecodeOption reads a presence tag and, when it is 1, the value.
func DecodeOption[T any](f *File, dec DecodeFunc[T]) (*T, error) {
	tag, err := DecodeInt[uint8](f)
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		v, err := dec(f)
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, errors.EnumOutOfBounds("option", uint64(tag))
	}
}

// EncodeSeq writes a u64 element count followed by each element.
func EncodeSeq[T any](f *File, s []T, enc EncodeFunc[T]) error {
	f.writeLen(len(s))
	for i, v := range s {
		if err := enc(f, v); err != nil {
			return errors.WithPath(err, strconv.Itoa(i))
		}
	}
	return nil
}

// DecodeSeq reads a count-prefixed sequence. An empty sequence decodes to nil.
func DecodeSeq[T any](f *File, dec DecodeFunc[T]) ([]T, error) {
	n, err := f.readLen()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]T, 0, f.capHint(n))
	for i := range n {
		v, err := dec(f)
		if err != nil {
			return nil, errors.WithPath(err, strconv.Itoa(i))
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeArray writes a fixed-size array with sequence framing.
// Callers pass the array as a slice: EncodeArray(f, a[:], enc).
func EncodeArray[T any](f *File, a []T, enc EncodeFunc[T]) error {
	return EncodeSeq(f, a, enc)
}

// DecodeArray fills dst in index order. The encoded count must equal len(dst).
func DecodeArray[T any](f *File, dst []T, dec DecodeFunc[T]) error {
	n, err := f.readLen()
	if err != nil {
		return err
	}
	if n != len(dst) {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(n).
			Detail("array of %d elements encoded with length %d", len(dst), n).
			Build()
	}
	for i := range dst {
		v, err := dec(f)
		if err != nil {
			return errors.WithPath(err, strconv.Itoa(i))
		}
		dst[i] = v
	}
	return nil
}

// EncodeMap writes a u64 pair count followed by key/value pairs in
// ascending key order, so equal maps always produce equal bytes.
func EncodeMap[K cmp.Ordered, V any](f *File, m map[K]V, encK EncodeFunc[K], encV EncodeFunc[V]) error {
	f.writeLen(len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := encK(f, k); err != nil {
			return err
		}
		if err := encV(f, m[k]); err != nil {
			return errors.WithPath(err, fmt.Sprint(k))
		}
	}
	return nil
}

// DecodeMap reads count-prefixed pairs. An empty map decodes to nil.
func DecodeMap[K cmp.Ordered, V any](f *File, decK DecodeFunc[K], decV DecodeFunc[V]) (map[K]V, error) {
	n, err := f.readLen()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	m := make(map[K]V, f.capHint(n))
	for range n {
		k, err := decK(f)
		if err != nil {
			return nil, err
		}
		v, err := decV(f)
		if err != nil {
			return nil, errors.WithPath(err, fmt.Sprint(k))
		}
		if _, dup := m[k]; dup {
			return nil, duplicateKey(k)
		}
		m[k] = v
	}
	return m, nil
}

func duplicateKey(k any) error {
	return errors.InvalidData(errors.PhaseDecode, []string{fmt.Sprint(k)}, "duplicate map key")
}

// SeqEncoder lifts an element encoder to a sequence encoder.
func SeqEncoder[T any](enc EncodeFunc[T]) EncodeFunc[[]T] {
	return func(f *File, s []T) error {
		return EncodeSeq(f, s, enc)
	}
}

// SeqDecoder lifts an element decoder to a sequence decoder.
func SeqDecoder[T any](dec DecodeFunc[T]) DecodeFunc[[]T] {
	return func(f *File) ([]T, error) {
		return DecodeSeq(f, dec)
	}
}

// OptionEncoder lifts an encoder to an optional-value encoder.
func OptionEncoder[T any](enc EncodeFunc[T]) EncodeFunc[*T] {
	return func(f *File, v *T) error {
		return EncodeOption(f, v, enc)
	}
}

// OptionDecoder lifts a decoder to an optional-value decoder.
func OptionDecoder[T any](dec DecodeFunc[T]) DecodeFunc[*T] {
	return func(f *File) (*T, error) {
		return DecodeOption(f, dec)
	}
}

// MapEncoder builds an encoder for map[K]V.
func MapEncoder[K cmp.Ordered, V any](encK EncodeFunc[K], encV EncodeFunc[V]) EncodeFunc[map[K]V] {
	return func(f *File, m map[K]V) error {
		return EncodeMap(f, m, encK, encV)
	}
}

// MapDecoder builds a decoder for map[K]V.
func MapDecoder[K cmp.Ordered, V any](decK DecodeFunc[K], decV DecodeFunc[V]) DecodeFunc[map[K]V] {
	return func(f *File) (map[K]V, error) {
		return DecodeMap(f, decK, decV)
	}
}
