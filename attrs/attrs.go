// Package attrs defines visibility and implementation attributes attached
// to types, methods and fields.
package attrs

import (
	"strconv"
	"strings"
)

//go:generate go run github.com/wippyai/plbin/cmd/bingen -dir .

// Visibility controls which code may reference a member.
//
//bingen:enum
type Visibility uint8

const (
	VisibilityPrivate Visibility = iota
	VisibilityInternal
	VisibilityProtected
	VisibilityPublic
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityProtected:
		return "protected"
	case VisibilityPublic:
		return "public"
	default:
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

// ClassImplFlags are implementation flags of a class.
//
//bingen:flags
type ClassImplFlags uint16

const (
	ClassAbstract ClassImplFlags = 1 << iota
	ClassSealed
	ClassStatic
)

// StructImplFlags are implementation flags of a struct.
//
//bingen:flags
type StructImplFlags uint16

const (
	StructReadOnly StructImplFlags = 1 << iota
	StructByRef
)

// InterfaceImplFlags are implementation flags of an interface.
//
//bingen:flags
type InterfaceImplFlags uint16

const (
	InterfaceSealed InterfaceImplFlags = 1 << iota
)

// MethodImplFlags are implementation flags of a method.
//
//bingen:flags
type MethodImplFlags uint16

const (
	MethodStatic MethodImplFlags = 1 << iota
	MethodVirtual
	MethodOverride
	MethodAbstract
	MethodNative
	MethodCtor
)

// FieldImplFlags are implementation flags of a field.
//
//bingen:flags
type FieldImplFlags uint8

const (
	FieldStatic FieldImplFlags = 1 << iota
	FieldReadOnly
	FieldConst
)

var classFlagNames = []string{"abstract", "sealed", "static"}

func (f ClassImplFlags) String() string { return flagString(uint64(f), classFlagNames) }

var structFlagNames = []string{"readonly", "byref"}

func (f StructImplFlags) String() string { return flagString(uint64(f), structFlagNames) }

var interfaceFlagNames = []string{"sealed"}

func (f InterfaceImplFlags) String() string { return flagString(uint64(f), interfaceFlagNames) }

var methodFlagNames = []string{"static", "virtual", "override", "abstract", "native", "ctor"}

func (f MethodImplFlags) String() string { return flagString(uint64(f), methodFlagNames) }

var fieldFlagNames = []string{"static", "readonly", "const"}

func (f FieldImplFlags) String() string { return flagString(uint64(f), fieldFlagNames) }

// flagString joins the names of set bits with '|'; bit i is names[i].
func flagString(v uint64, names []string) string {
	var parts []string
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// TypeSpecificAttr carries the flags that depend on the kind of type.
//
//bingen:union repr=uint8
//bingen:case Class ClassAttr
//bingen:case Struct StructAttr
//bingen:case Interface InterfaceAttr
type TypeSpecificAttr interface {
	Kind() TypeSpecificAttrKind
}

// ClassAttr holds class flags.
type ClassAttr struct {
	Flags ClassImplFlags
}

// StructAttr holds struct flags.
type StructAttr struct {
	Flags StructImplFlags
}

// InterfaceAttr holds interface flags.
type InterfaceAttr struct {
	Flags InterfaceImplFlags
}

// TypeAttr is attached to every type definition.
//
//bingen:record
type TypeAttr struct {
	Vis      Visibility
	Specific TypeSpecificAttr
}

// MethodAttr is attached to every method. RegisterLen is the number of
// registers the method body uses.
//
//bingen:record
type MethodAttr struct {
	Vis         Visibility
	ImplFlags   MethodImplFlags
	RegisterLen uint64
}

// FieldAttr is attached to every field.
//
//bingen:record
type FieldAttr struct {
	Vis       Visibility
	ImplFlags FieldImplFlags
}
