package binfile

import (
	"github.com/wippyai/plbin/errors"
)

// EncodeFlags writes a bit-flag set in its underlying representation.
// Bits outside known are rejected so that every encoded value decodes.
func EncodeFlags[T Unsigned](f *File, v T, goType string, known T) error {
	if v&^known != 0 {
		err := errors.InvalidFlagBits(goType, uint64(v), uint64(known))
		err.Phase = errors.PhaseEncode
		return err
	}
	return EncodeInt(f, v)
}

// DecodeFlags reads a bit-flag set and rejects bits outside known.
func DecodeFlags[T Unsigned](f *File, goType string, known T) (T, error) {
	v, err := DecodeInt[T](f)
	if err != nil {
		return 0, err
	}
	if v&^known != 0 {
		return 0, errors.InvalidFlagBits(goType, uint64(v), uint64(known))
	}
	return v, nil
}
