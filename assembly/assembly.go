// Package assembly is the data model of a compiled program module and its
// binary file format.
//
// An Assembly owns a set of type definitions keyed by name. Each definition
// owns its generic parameters, methods and fields; a method owns its
// instruction list. The model is a pure tree with no back references.
//
// Encode and Decode convert between the model and the file format:
//
//	b, err := assembly.Encode(a, assembly.WithMagic())
//	a, err := assembly.Decode(b, assembly.WithMagic())
package assembly

import (
	"maps"
	"slices"

	"github.com/wippyai/plbin/attrs"
	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/instruction"
	"github.com/wippyai/plbin/ref"
)

//go:generate go run github.com/wippyai/plbin/cmd/bingen -dir .

// Assembly is a named collection of type definitions.
//
//bingen:record
type Assembly struct {
	Name     string
	TypeDefs map[string]TypeDef
}

// TypeDef is a class or struct definition.
//
//bingen:union repr=uint8
//bingen:case Class ClassDef
//bingen:case Struct StructDef
type TypeDef interface {
	Kind() TypeDefKind
	TypeName() string
	Attributes() attrs.TypeAttr
	GenericParams() *binfile.OrderedMap[string, GenericBinding]
	MethodTable() *binfile.OrderedMap[string, Method]
	FieldTable() *binfile.OrderedMap[string, Field]
}

// ClassDef defines a reference type. Parent is nil for root classes.
type ClassDef struct {
	Parent   *ref.TypeRef
	TypeVars binfile.OrderedMap[string, GenericBinding]
	Attr     attrs.TypeAttr
	Name     string
	Methods  binfile.OrderedMap[string, Method]
	Fields   binfile.OrderedMap[string, Field]
}

// StructDef defines a value type. Structs do not inherit.
type StructDef struct {
	TypeVars binfile.OrderedMap[string, GenericBinding]
	Attr     attrs.TypeAttr
	Name     string
	Methods  binfile.OrderedMap[string, Method]
	Fields   binfile.OrderedMap[string, Field]
}

// GenericBinding constrains a generic parameter.
//
//bingen:record
type GenericBinding struct {
	ImplementedInterfaces []ref.TypeRef
	Parent                *ref.TypeRef
}

// Method is a method definition with its bytecode body.
//
//bingen:record
type Method struct {
	Name         string
	Attr         attrs.MethodAttr
	Instructions []instruction.Instruction
	RetType      ref.TypeRef
	Args         []ref.TypeRef
	TypeVars     binfile.OrderedMap[string, GenericBinding]
}

// Field is a field definition.
//
//bingen:record
type Field struct {
	Name string
	Attr attrs.FieldAttr
	Type ref.TypeRef
}

// NewClass returns an empty class definition with class attributes set.
func NewClass(name string) *ClassDef {
	return &ClassDef{
		Name: name,
		Attr: attrs.TypeAttr{Specific: &attrs.ClassAttr{}},
	}
}

// NewStruct returns an empty struct definition with struct attributes set.
func NewStruct(name string) *StructDef {
	return &StructDef{
		Name: name,
		Attr: attrs.TypeAttr{Specific: &attrs.StructAttr{}},
	}
}

func (c *ClassDef) TypeName() string { return c.Name }
func (c *ClassDef) Attributes() attrs.TypeAttr { return c.Attr }
func (c *ClassDef) GenericParams() *binfile.OrderedMap[string, GenericBinding] { return &c.TypeVars }
func (c *ClassDef) MethodTable() *binfile.OrderedMap[string, Method] { return &c.Methods }
func (c *ClassDef) FieldTable() *binfile.OrderedMap[string, Field] { return &c.Fields }

func (s *StructDef) TypeName() string { return s.Name }
func (s *StructDef) Attributes() attrs.TypeAttr { return s.Attr }
func (s *StructDef) GenericParams() *binfile.OrderedMap[string, GenericBinding] { return &s.TypeVars }
func (s *StructDef) MethodTable() *binfile.OrderedMap[string, Method] { return &s.Methods }
func (s *StructDef) FieldTable() *binfile.OrderedMap[string, Field] { return &s.Fields }

// Add stores def under its type name, replacing any previous definition.
func (a *Assembly) Add(def TypeDef) {
	if a.TypeDefs == nil {
		a.TypeDefs = make(map[string]TypeDef)
	}
	a.TypeDefs[def.TypeName()] = def
}

// Lookup returns the definition named name.
func (a *Assembly) Lookup(name string) (TypeDef, bool) {
	def, ok := a.TypeDefs[name]
	return def, ok
}

// TypeNames returns the definition names in sorted order.
func (a *Assembly) TypeNames() []string {
	return slices.Sorted(maps.Keys(a.TypeDefs))
}
