// Package ref models type and method references and their textual syntax.
//
// A type reference names a type in an assembly, optionally binding generic
// parameters:
//
//	[!]System.Object
//	[Test]Test.Box`1[@T:[!]System.String]
//	@T
//
// The assembly "!" is the core library. A bare "@T" refers to a generic
// parameter of the enclosing type or method.
//
// A method reference is a method name, which may itself contain parentheses
// and type references, with an optional generic binding suffix:
//
//	WriteLine([!]System.String)
//	Map()<@T:[!]System.Int32,@U:@T>
package ref

import (
	"strings"
)

// CoreAssembly is the assembly name of the core library.
const CoreAssembly = "!"

// TypeRef references a type, or a generic parameter when Assembly is empty
// and Name starts with '@'.
type TypeRef struct {
	Assembly string
	Name     string
	Args     []GenericArg
}

// GenericArg binds a generic parameter such as "@T" to a type.
type GenericArg struct {
	Param string
	Type  TypeRef
}

// MethodRef references a method by name with optional generic bindings.
type MethodRef struct {
	Name string
	Args []GenericArg
}

// Core references a type in the core library.
func Core(name string) TypeRef {
	return TypeRef{Assembly: CoreAssembly, Name: name}
}

// Local references a type in the named assembly.
func Local(assembly, name string) TypeRef {
	return TypeRef{Assembly: assembly, Name: name}
}

// Param references the generic parameter "@"+name.
func Param(name string) TypeRef {
	return TypeRef{Name: "@" + name}
}

// Method references a non-generic method.
func Method(name string) MethodRef {
	return MethodRef{Name: name}
}

// With returns a copy of r with one more generic binding.
func (r TypeRef) With(param string, t TypeRef) TypeRef {
	args := make([]GenericArg, len(r.Args), len(r.Args)+1)
	copy(args, r.Args)
	r.Args = append(args, GenericArg{Param: param, Type: t})
	return r
}

// IsParam reports whether r is a generic parameter reference.
func (r TypeRef) IsParam() bool {
	return r.Assembly == "" && strings.HasPrefix(r.Name, "@") && len(r.Args) == 0
}

// String renders r in reference syntax. It does not validate; use Format
// when the result must parse back.
func (r TypeRef) String() string {
	var b strings.Builder
	writeType(&b, r)
	return b.String()
}

func (m MethodRef) String() string {
	var b strings.Builder
	b.WriteString(m.Name)
	if len(m.Args) > 0 {
		b.WriteByte('<')
		writeArgs(&b, m.Args)
		b.WriteByte('>')
	}
	return b.String()
}

func writeType(b *strings.Builder, r TypeRef) {
	if r.IsParam() {
		b.WriteString(r.Name)
		return
	}
	b.WriteByte('[')
	b.WriteString(r.Assembly)
	b.WriteByte(']')
	b.WriteString(r.Name)
	if len(r.Args) > 0 {
		b.WriteByte('[')
		writeArgs(b, r.Args)
		b.WriteByte(']')
	}
}

func writeArgs(b *strings.Builder, args []GenericArg) {
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Param)
		b.WriteByte(':')
		writeType(b, a.Type)
	}
}
