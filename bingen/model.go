package bingen

import "go/types"

// Kind is the codec shape requested for a type.
type Kind int

const (
	KindRecord Kind = iota + 1
	KindEnum
	KindFlags
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	case KindFlags:
		return "flags"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Package is a loaded Go package and the types it asks codecs for.
type Package struct {
	Name  string
	Path  string
	Dir   string
	Types []*TypeDecl

	byName map[string]*TypeDecl
}

// Lookup returns the declaration named name, or nil.
func (p *Package) Lookup(name string) *TypeDecl {
	return p.byName[name]
}

func (p *Package) add(d *TypeDecl) {
	if p.byName == nil {
		p.byName = make(map[string]*TypeDecl)
	}
	p.byName[d.Name] = d
	p.Types = append(p.Types, d)
}

// TypeDecl describes one type that gets generated codecs.
type TypeDecl struct {
	Name  string
	Kind  Kind
	Named *types.Named

	// Fields of a record, in declaration order.
	Fields []Field

	// Consts of an enum or flag set, in declaration order.
	Consts []string

	// Repr is the integer type of an enum, flag set or union discriminant.
	Repr string

	// Cases of a union, in discriminant order.
	Cases []Case
}

// Field is a record field.
type Field struct {
	Name string
	Type types.Type
}

// Case is a union variant: its name and the struct type carrying its fields.
type Case struct {
	Name     string
	TypeName string
}
