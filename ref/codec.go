package ref

import (
	"strings"

	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/errors"
)

// TypeSyntax converts type references for the binary codec.
var TypeSyntax = binfile.ReferenceSyntax[TypeRef]{
	Parse:  ParseType,
	Format: FormatType,
}

// MethodSyntax converts method references for the binary codec.
var MethodSyntax = binfile.ReferenceSyntax[MethodRef]{
	Parse:  ParseMethod,
	Format: FormatMethod,
}

// FormatType renders r, failing if the text would not parse back to r.
func FormatType(r TypeRef) (string, error) {
	if err := validateType(r); err != nil {
		return "", err
	}
	return r.String(), nil
}

// FormatMethod renders m, failing if the text would not parse back to m.
func FormatMethod(m MethodRef) (string, error) {
	if m.Name == "" {
		return "", invalid(m.Name, "empty method name")
	}
	if len(m.Args) == 0 && strings.HasSuffix(m.Name, ">") {
		return "", invalid(m.Name, "method name ends with '>' but has no generic bindings")
	}
	if err := validateArgs(m.Args); err != nil {
		return "", err
	}
	return m.String(), nil
}

func validateType(r TypeRef) error {
	if r.IsParam() {
		return validateParam(r.Name)
	}
	if r.Name == "" {
		return invalid(r.Name, "empty type name")
	}
	if strings.ContainsAny(r.Name, typeDelims) {
		return invalid(r.Name, "type name contains a reserved character")
	}
	if strings.Contains(r.Assembly, "]") {
		return invalid(r.Assembly, "assembly name contains ']'")
	}
	return validateArgs(r.Args)
}

func validateArgs(args []GenericArg) error {
	for _, a := range args {
		if err := validateParam(a.Param); err != nil {
			return err
		}
		if err := validateType(a.Type); err != nil {
			return err
		}
	}
	return nil
}

func validateParam(p string) error {
	if len(p) < 2 || p[0] != '@' {
		return invalid(p, "generic parameter must be '@' followed by a name")
	}
	if strings.ContainsAny(p[1:], typeDelims) {
		return invalid(p, "generic parameter contains a reserved character")
	}
	return nil
}

func invalid(s, detail string) error {
	return errors.New(errors.PhaseEncode, errors.KindMalformedReference).
		Value(s).
		Detail("%s: %q", detail, s).
		Build()
}

// EncodeBinary writes r as an interned reference string.
func (r *TypeRef) EncodeBinary(f *binfile.File) error {
	return binfile.EncodeReference(f, *r, TypeSyntax)
}

// DecodeBinary reads an interned reference string and parses it.
func (r *TypeRef) DecodeBinary(f *binfile.File) error {
	v, err := binfile.DecodeReference(f, TypeSyntax)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// EncodeBinary writes m as an interned reference string.
func (m *MethodRef) EncodeBinary(f *binfile.File) error {
	return binfile.EncodeReference(f, *m, MethodSyntax)
}

// DecodeBinary reads an interned reference string and parses it.
func (m *MethodRef) DecodeBinary(f *binfile.File) error {
	v, err := binfile.DecodeReference(f, MethodSyntax)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
