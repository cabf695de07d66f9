package binfile

import (
	"github.com/wippyai/plbin/errors"
)

// Generated codecs for enums and tagged unions report failures through
// these helpers so that every discriminant error carries the Go type.

// EnumOutOfBounds reports a decoded discriminant that matches no variant.
func EnumOutOfBounds(goType string, v uint64) error {
	return errors.EnumOutOfBounds(goType, v)
}

// UnknownVariant reports a value being encoded that is not a declared
// variant, such as an enum constant outside the known set or a union
// implementation the codec was not generated for.
func UnknownVariant(goType string, v any) error {
	return errors.New(errors.PhaseEncode, errors.KindEnumOutOfBounds).
		GoType(goType).
		Value(v).
		Detail("value %v is not a declared variant", v).
		Build()
}

// NilVariant reports a nil union value or nil variant pointer at encode time.
func NilVariant(goType string) error {
	return errors.NilPointer(errors.PhaseEncode, nil, goType)
}
