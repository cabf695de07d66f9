package export_test

import (
	"bytes"
	"reflect"
	"slices"
	"testing"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/attrs"
	"github.com/wippyai/plbin/errors"
	"github.com/wippyai/plbin/export"
	"github.com/wippyai/plbin/instruction"
	"github.com/wippyai/plbin/ref"
)

func sample() *assembly.Assembly {
	object := ref.Core("System.Object")

	class := &assembly.ClassDef{
		Parent: &object,
		Attr: attrs.TypeAttr{
			Vis:      attrs.VisibilityPublic,
			Specific: &attrs.ClassAttr{Flags: attrs.ClassSealed},
		},
		Name: "App.Main",
	}
	class.TypeVars.Set("@T", assembly.GenericBinding{
		ImplementedInterfaces: []ref.TypeRef{ref.Core("System.IDisposable")},
	})
	class.Methods.Set("Run()", assembly.Method{
		Name: "Run()",
		Attr: attrs.MethodAttr{Vis: attrs.VisibilityPublic, ImplFlags: attrs.MethodStatic, RegisterLen: 2},
		Instructions: []instruction.Instruction{
			&instruction.LoadU64{RegisterAddr: 1, Val: 0},
			&instruction.ReturnVal{RegisterAddr: 1},
		},
		RetType: ref.Core("System.Int64"),
		Args:    []ref.TypeRef{ref.Param("T")},
	})

	point := &assembly.StructDef{
		Attr: attrs.TypeAttr{Vis: attrs.VisibilityInternal, Specific: &attrs.StructAttr{}},
		Name: "App.Point",
	}
	point.Fields.Set("X", assembly.Field{
		Name: "X",
		Attr: attrs.FieldAttr{Vis: attrs.VisibilityPublic, ImplFlags: attrs.FieldReadOnly},
		Type: ref.Core("System.Int64"),
	})

	a := &assembly.Assembly{Name: "App"}
	a.Add(point)
	a.Add(class)
	return a
}

func TestFromAssembly(t *testing.T) {
	doc, err := export.FromAssembly(sample())
	if err != nil {
		t.Fatalf("FromAssembly: %v", err)
	}
	if doc.Name != "App" {
		t.Errorf("Name = %q", doc.Name)
	}
	if len(doc.Types) != 2 {
		t.Fatalf("got %d types, want 2", len(doc.Types))
	}

	main := doc.Types[0]
	if main.Name != "App.Main" || main.Kind != "class" {
		t.Errorf("first type = %s %s, want class App.Main", main.Kind, main.Name)
	}
	if main.Parent != "[!]System.Object" {
		t.Errorf("Parent = %q", main.Parent)
	}
	if main.Visibility != "public" || main.Flags != "sealed" {
		t.Errorf("attrs = %s/%s", main.Visibility, main.Flags)
	}
	wantGenerics := []export.Generic{{Name: "@T", Interfaces: []string{"[!]System.IDisposable"}}}
	if !reflect.DeepEqual(main.Generics, wantGenerics) {
		t.Errorf("Generics = %+v", main.Generics)
	}

	if len(main.Methods) != 1 {
		t.Fatalf("got %d methods, want 1", len(main.Methods))
	}
	run := main.Methods[0]
	if run.Flags != "static" || run.Registers != 2 || run.Returns != "[!]System.Int64" {
		t.Errorf("method = %+v", run)
	}
	if !slices.Equal(run.Args, []string{"@T"}) {
		t.Errorf("Args = %v", run.Args)
	}
	if !slices.Equal(run.Code, []string{"load.u64 r1, 0", "ret r1"}) {
		t.Errorf("Code = %v", run.Code)
	}

	point := doc.Types[1]
	if point.Kind != "struct" || point.Visibility != "internal" || point.Parent != "" {
		t.Errorf("second type = %+v", point)
	}
	wantFields := []export.Field{{Name: "X", Visibility: "public", Flags: "readonly", Type: "[!]System.Int64"}}
	if !reflect.DeepEqual(point.Fields, wantFields) {
		t.Errorf("Fields = %+v", point.Fields)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want, err := export.FromAssembly(sample())
	if err != nil {
		t.Fatalf("FromAssembly: %v", err)
	}

	for _, format := range []export.Format{export.FormatCBOR, export.FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			b, err := export.Marshal(sample(), format)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if len(b) == 0 {
				t.Fatal("empty output")
			}

			again, err := export.Marshal(sample(), format)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if !bytes.Equal(b, again) {
				t.Error("output is not deterministic")
			}

			got, err := export.Unmarshal(b, format)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"cbor", "msgpack", "sqlite"} {
		if f, err := export.ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := export.ParseFormat("json"); errors.KindOf(err) != errors.KindInvalidInput {
		t.Errorf("ParseFormat(json): got %v", err)
	}
}

func TestExportErrors(t *testing.T) {
	if _, err := export.FromAssembly(nil); errors.KindOf(err) != errors.KindNilPointer {
		t.Errorf("nil assembly: got %v", err)
	}

	a := &assembly.Assembly{Name: "Bad"}
	a.Add(&assembly.StructDef{
		Name: "Bad.T",
		Attr: attrs.TypeAttr{Specific: &attrs.StructAttr{}},
	})
	def, _ := a.Lookup("Bad.T")
	def.FieldTable().Set("F", assembly.Field{Name: "F", Type: ref.TypeRef{Assembly: "!", Name: "Bad]Name"}})

	_, err := export.FromAssembly(a)
	if errors.KindOf(err) != errors.KindMalformedReference {
		t.Errorf("bad reference: got %v", err)
	}

	if _, err := export.Marshal(sample(), export.Format("xml")); errors.KindOf(err) != errors.KindUnsupported {
		t.Errorf("unknown format: got %v", err)
	}
	if _, err := export.Marshal(sample(), export.FormatSQLite); errors.KindOf(err) != errors.KindUnsupported {
		t.Errorf("sqlite as bytes: got %v", err)
	}
	if _, err := export.Unmarshal([]byte{0xff}, export.FormatCBOR); errors.KindOf(err) != errors.KindInvalidData {
		t.Errorf("garbage cbor: got %v", err)
	}
}
