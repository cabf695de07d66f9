package assembly_test

import (
	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/attrs"
	"github.com/wippyai/plbin/instruction"
	"github.com/wippyai/plbin/ref"
)

func ptr[T any](v T) *T { return &v }

func publicStatic(registers uint64) attrs.MethodAttr {
	return attrs.MethodAttr{
		Vis:         attrs.VisibilityPublic,
		ImplFlags:   attrs.MethodStatic,
		RegisterLen: registers,
	}
}

// sampleAssembly builds a class with generic parameters, a static field and
// three methods that call each other.
func sampleAssembly() *assembly.Assembly {
	self := ref.Local("Test", "Test.Test")
	void := ref.Core("System.Void")

	class := &assembly.ClassDef{
		Parent: ptr(ref.Core("System.Object")),
		Attr: attrs.TypeAttr{
			Vis:      attrs.VisibilityPublic,
			Specific: &attrs.ClassAttr{},
		},
		Name: "Test.Test",
	}
	class.TypeVars.Set("@T", assembly.GenericBinding{
		ImplementedInterfaces: []ref.TypeRef{ref.Core("System.IDisposable")},
		Parent:                ptr(ref.Core("System.Array`1").With("@T", ref.Core("System.Object"))),
	})
	class.TypeVars.Set("@U", assembly.GenericBinding{})

	class.Methods.Set("PrintStaticsAndGenericType()", assembly.Method{
		Name: "PrintStaticsAndGenericType()",
		Attr: publicStatic(10),
		Instructions: []instruction.Instruction{
			&instruction.LoadStatic{RegisterAddr: 0, Type: self, Name: "__test"},
			&instruction.StaticCall{
				Type:   ref.Core("System.Console"),
				Method: ref.Method("WriteLine([!]System.String)"),
				Args:   []instruction.Register{0},
				RetAt:  1,
			},
		},
		RetType: void,
	})

	mainName := "Main([!]System.Array`1[@T:[!]System.String])"
	class.Methods.Set(mainName, assembly.Method{
		Name: mainName,
		Attr: publicStatic(10),
		Instructions: []instruction.Instruction{
			&instruction.StaticCall{Type: self, Method: ref.Method("PrintStaticsAndGenericType()"), RetAt: 1},
			&instruction.LoadU64{RegisterAddr: 1, Val: 0},
			&instruction.ReturnVal{RegisterAddr: 1},
		},
		RetType: void,
		Args:    []ref.TypeRef{ref.Core("System.Array`1").With("@T", ref.Core("System.String"))},
	})

	class.Methods.Set(".sctor()", assembly.Method{
		Name: ".sctor()",
		Attr: publicStatic(10),
		Instructions: []instruction.Instruction{
			&instruction.LoadU64{RegisterAddr: 0, Val: 10},
			&instruction.InstanceCall{Val: 0, Method: ref.Method("ToString()"), RetAt: 1},
			&instruction.SetField{RegisterAddr: 1, Field: "__test"},
		},
		RetType: void,
	})

	class.Fields.Set("__test", assembly.Field{
		Name: "__test",
		Attr: attrs.FieldAttr{Vis: attrs.VisibilityPublic, ImplFlags: attrs.FieldStatic},
		Type: ref.Core("System.String"),
	})

	a := &assembly.Assembly{Name: "Test"}
	a.Add(class)
	return a
}

// pointStruct is a struct definition with two fields and no methods.
func pointStruct() *assembly.StructDef {
	s := &assembly.StructDef{
		Attr: attrs.TypeAttr{
			Vis:      attrs.VisibilityInternal,
			Specific: &attrs.StructAttr{Flags: attrs.StructReadOnly},
		},
		Name: "Geo.Point",
	}
	for _, name := range []string{"X", "Y"} {
		s.Fields.Set(name, assembly.Field{
			Name: name,
			Attr: attrs.FieldAttr{Vis: attrs.VisibilityPublic, ImplFlags: attrs.FieldReadOnly},
			Type: ref.Core("System.Int64"),
		})
	}
	return s
}

