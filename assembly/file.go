package assembly

import (
	"fmt"
	"os"

	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/errors"
)

// Magic is the header of assembly files written with WithMagic.
var Magic = [2]byte{'P', 'L'}

// WithMagic writes and checks the "PL" header.
func WithMagic() binfile.Option {
	return binfile.WithMagic(Magic)
}

// Encode serializes a into a new file envelope.
func Encode(a *Assembly, opts ...binfile.Option) ([]byte, error) {
	if a == nil {
		return nil, errors.NilPointer(errors.PhaseEncode, nil, "assembly.Assembly")
	}
	f := binfile.NewFile(opts...)
	if err := a.EncodeBinary(f); err != nil {
		return nil, err
	}
	return f.Bytes(), nil
}

// Decode parses an assembly. Bytes left over after the assembly are an error.
func Decode(b []byte, opts ...binfile.Option) (*Assembly, error) {
	f, err := binfile.Open(b, opts...)
	if err != nil {
		return nil, err
	}
	a := new(Assembly)
	if err := a.DecodeBinary(f); err != nil {
		return nil, err
	}
	if n := f.Remaining(); n > 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, nil,
			fmt.Sprintf("%d trailing bytes after assembly at offset %d", n, f.Position()))
	}
	return a, nil
}

// ReadFile reads and decodes the assembly at path.
func ReadFile(path string, opts ...binfile.Option) (*Assembly, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}
	return Decode(b, opts...)
}

// WriteFile encodes a and writes it to path.
func WriteFile(path string, a *Assembly, opts ...binfile.Option) error {
	b, err := Encode(a, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindInvalidInput, err, "write "+path)
	}
	return nil
}
