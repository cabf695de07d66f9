package ref

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wippyai/plbin/binfile"
	plerrors "github.com/wippyai/plbin/errors"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want TypeRef
	}{
		{"[!]System.Object", Core("System.Object")},
		{"[Test]Test.Test", Local("Test", "Test.Test")},
		{"@T", Param("T")},
		{"[]Anon", TypeRef{Name: "Anon"}},
		{
			"[!]System.Array`1[@T:[!]System.String]",
			Core("System.Array`1").With("@T", Core("System.String")),
		},
		{
			"[Lib]Pair`2[@K:@T,@V:[!]System.Array`1[@T:[!]System.Int32]]",
			Local("Lib", "Pair`2").
				With("@K", Param("T")).
				With("@V", Core("System.Array`1").With("@T", Core("System.Int32"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if err != nil {
				t.Fatalf("ParseType: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseType = %#v, want %#v", got, tt.want)
			}
			if s := got.String(); s != tt.in {
				t.Errorf("String() = %q, want %q", s, tt.in)
			}
		})
	}
}

func TestParseTypeMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"System.Object",
		"[!System.Object",
		"[!]",
		"@",
		"[!]A[",
		"[!]A[]",
		"[!]A[T:[!]B]",
		"[!]A[@T]",
		"[!]A[@T:[!]B",
		"[!]A]",
		"[!]A,[!]B",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseType(in)
			if !errors.Is(err, plerrors.Match(plerrors.KindMalformedReference)) {
				t.Errorf("ParseType(%q): expected malformed_reference, got %v", in, err)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want MethodRef
	}{
		{"ToString()", Method("ToString()")},
		{"WriteLine([!]System.String)", Method("WriteLine([!]System.String)")},
		{
			"Map()<@T:[!]System.Int32,@U:@T>",
			MethodRef{Name: "Map()", Args: []GenericArg{
				{Param: "@T", Type: Core("System.Int32")},
				{Param: "@U", Type: Param("T")},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if err != nil {
				t.Fatalf("ParseMethod: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMethod = %#v, want %#v", got, tt.want)
			}
			if s := got.String(); s != tt.in {
				t.Errorf("String() = %q, want %q", s, tt.in)
			}
		})
	}
}

func TestParseMethodMalformed(t *testing.T) {
	for _, in := range []string{"", "<@T:@U>", "Map>", "Map<T:@U>", "Map<@T:>"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseMethod(in)
			if !errors.Is(err, plerrors.Match(plerrors.KindMalformedReference)) {
				t.Errorf("ParseMethod(%q): expected malformed_reference, got %v", in, err)
			}
		})
	}
}

func TestFormatRejectsUnparseable(t *testing.T) {
	bad := []TypeRef{
		{},
		{Assembly: "!", Name: "A[B]"},
		{Assembly: "a]b", Name: "C"},
		Core("List").With("T", Core("Int")),
	}
	for _, r := range bad {
		if _, err := FormatType(r); err == nil {
			t.Errorf("FormatType(%#v) should fail", r)
		}
	}

	if _, err := FormatMethod(MethodRef{Name: "Op<>"}); err == nil {
		t.Error("FormatMethod should reject a name that would parse as bindings")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	tr := Core("System.Array`1").With("@T", Core("System.String"))
	mr := MethodRef{Name: "Get()", Args: []GenericArg{{Param: "@T", Type: Param("U")}}}

	f := binfile.NewFile()
	if err := binfile.EncodeValue(f, tr); err != nil {
		t.Fatalf("encode type: %v", err)
	}
	if err := binfile.EncodeValue(f, mr); err != nil {
		t.Fatalf("encode method: %v", err)
	}
	if err := binfile.EncodeValue(f, tr); err != nil {
		t.Fatalf("encode type again: %v", err)
	}
	if f.Interner().Len() != 3 {
		t.Errorf("interner Len() = %d, want 3 (repeated reference shares an entry)", f.Interner().Len())
	}

	g, err := binfile.Open(f.Bytes())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	gotT, err := binfile.DecodeValue[TypeRef](g)
	if err != nil || !reflect.DeepEqual(gotT, tr) {
		t.Errorf("decode type = %v, %v", gotT, err)
	}
	gotM, err := binfile.DecodeValue[MethodRef](g)
	if err != nil || !reflect.DeepEqual(gotM, mr) {
		t.Errorf("decode method = %v, %v", gotM, err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	f := binfile.NewFile()
	binfile.EncodeString(f, "not a reference")
	g, err := binfile.Open(f.Bytes())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_, err = binfile.DecodeValue[TypeRef](g)
	if !errors.Is(err, plerrors.Match(plerrors.KindMalformedReference)) {
		t.Errorf("expected malformed_reference, got %v", err)
	}
}
