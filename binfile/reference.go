package binfile

import (
	"github.com/wippyai/plbin/errors"
)

// ReferenceSyntax converts a structured reference to and from its
// textual form. References travel through the interner as strings.
type ReferenceSyntax[T any] struct {
	Parse  func(string) (T, error)
	Format func(T) (string, error)
}

// EncodeReference formats v and writes the result as a string.
func EncodeReference[T any](f *File, v T, syn ReferenceSyntax[T]) error {
	s, err := syn.Format(v)
	if err != nil {
		return err
	}
	return EncodeString(f, s)
}

// DecodeReference reads a string and parses it with syn.
func DecodeReference[T any](f *File, syn ReferenceSyntax[T]) (T, error) {
	s, err := DecodeString(f)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := syn.Parse(s)
	if err != nil {
		var zero T
		return zero, errors.MalformedReference(errors.PhaseDecode, s, err)
	}
	return v, nil
}
