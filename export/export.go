// Package export converts assemblies into self-describing documents for
// tools that do not speak the binary format.
//
// The document is a plain tree of names and strings: type references are
// rendered in their textual syntax, attributes by name, and method bodies as
// disassembly lines. It is written as canonical CBOR, as msgpack, or into a
// SQLite database for ad-hoc queries.
package export

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/attrs"
	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/errors"
	"github.com/wippyai/plbin/instruction"
	"github.com/wippyai/plbin/ref"
)

// Format selects the document encoding.
type Format string

const (
	FormatCBOR    Format = "cbor"
	FormatMsgpack Format = "msgpack"
	FormatSQLite  Format = "sqlite"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCBOR, FormatMsgpack, FormatSQLite:
		return f, nil
	}
	return "", errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Value(s).
		Detail("unknown export format %q (want cbor, msgpack or sqlite)", s).
		Build()
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("export: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Document is the exported view of an assembly.
type Document struct {
	Name  string `cbor:"name" msgpack:"name"`
	Types []Type `cbor:"types" msgpack:"types"`
}

// Type is a class or struct definition. Types are ordered by name.
type Type struct {
	Kind       string    `cbor:"kind" msgpack:"kind"`
	Name       string    `cbor:"name" msgpack:"name"`
	Parent     string    `cbor:"parent,omitempty" msgpack:"parent,omitempty"`
	Visibility string    `cbor:"visibility" msgpack:"visibility"`
	Flags      string    `cbor:"flags,omitempty" msgpack:"flags,omitempty"`
	Generics   []Generic `cbor:"generics,omitempty" msgpack:"generics,omitempty"`
	Methods    []Method  `cbor:"methods,omitempty" msgpack:"methods,omitempty"`
	Fields     []Field   `cbor:"fields,omitempty" msgpack:"fields,omitempty"`
}

// Generic is a generic parameter and its constraints.
type Generic struct {
	Name       string   `cbor:"name" msgpack:"name"`
	Parent     string   `cbor:"parent,omitempty" msgpack:"parent,omitempty"`
	Interfaces []string `cbor:"interfaces,omitempty" msgpack:"interfaces,omitempty"`
}

// Method is a method signature with its disassembled body.
type Method struct {
	Name       string    `cbor:"name" msgpack:"name"`
	Visibility string    `cbor:"visibility" msgpack:"visibility"`
	Flags      string    `cbor:"flags,omitempty" msgpack:"flags,omitempty"`
	Registers  uint64    `cbor:"registers" msgpack:"registers"`
	Returns    string    `cbor:"returns" msgpack:"returns"`
	Args       []string  `cbor:"args,omitempty" msgpack:"args,omitempty"`
	Generics   []Generic `cbor:"generics,omitempty" msgpack:"generics,omitempty"`
	Code       []string  `cbor:"code,omitempty" msgpack:"code,omitempty"`
}

// Field is a field definition.
type Field struct {
	Name       string `cbor:"name" msgpack:"name"`
	Visibility string `cbor:"visibility" msgpack:"visibility"`
	Flags      string `cbor:"flags,omitempty" msgpack:"flags,omitempty"`
	Type       string `cbor:"type" msgpack:"type"`
}

// FromAssembly builds the document for a.
func FromAssembly(a *assembly.Assembly) (*Document, error) {
	if a == nil {
		return nil, errors.NilPointer(errors.PhaseEncode, nil, "assembly.Assembly")
	}
	doc := &Document{Name: a.Name}
	for _, name := range a.TypeNames() {
		def := a.TypeDefs[name]
		if def == nil {
			return nil, errors.NilPointer(errors.PhaseEncode, []string{"TypeDefs", name}, "assembly.TypeDef")
		}
		t, err := exportType(def)
		if err != nil {
			return nil, errors.WithPath(errors.WithPath(err, name), "TypeDefs")
		}
		doc.Types = append(doc.Types, t)
	}
	return doc, nil
}

func exportType(def assembly.TypeDef) (Type, error) {
	attr := def.Attributes()
	t := Type{
		Name:       def.TypeName(),
		Visibility: attr.Vis.String(),
		Flags:      specificFlags(attr.Specific),
	}

	switch d := def.(type) {
	case *assembly.ClassDef:
		t.Kind = "class"
		if d.Parent != nil {
			s, err := ref.FormatType(*d.Parent)
			if err != nil {
				return t, errors.WithPath(err, "Parent")
			}
			t.Parent = s
		}
	case *assembly.StructDef:
		t.Kind = "struct"
	}

	var err error
	if t.Generics, err = exportGenerics(def.GenericParams()); err != nil {
		return t, errors.WithPath(err, "TypeVars")
	}
	for name, m := range def.MethodTable().All() {
		em, err := exportMethod(m)
		if err != nil {
			return t, errors.WithPath(errors.WithPath(err, name), "Methods")
		}
		t.Methods = append(t.Methods, em)
	}
	for name, f := range def.FieldTable().All() {
		typ, err := ref.FormatType(f.Type)
		if err != nil {
			return t, errors.WithPath(errors.WithPath(err, name), "Fields")
		}
		t.Fields = append(t.Fields, Field{
			Name:       f.Name,
			Visibility: f.Attr.Vis.String(),
			Flags:      f.Attr.ImplFlags.String(),
			Type:       typ,
		})
	}
	return t, nil
}

func specificFlags(s attrs.TypeSpecificAttr) string {
	switch x := s.(type) {
	case *attrs.ClassAttr:
		return x.Flags.String()
	case *attrs.StructAttr:
		return x.Flags.String()
	case *attrs.InterfaceAttr:
		return x.Flags.String()
	}
	return ""
}

func exportGenerics(m *binfile.OrderedMap[string, assembly.GenericBinding]) ([]Generic, error) {
	var out []Generic
	for name, b := range m.All() {
		g := Generic{Name: name}
		if b.Parent != nil {
			s, err := ref.FormatType(*b.Parent)
			if err != nil {
				return nil, errors.WithPath(err, name)
			}
			g.Parent = s
		}
		for _, iface := range b.ImplementedInterfaces {
			s, err := ref.FormatType(iface)
			if err != nil {
				return nil, errors.WithPath(err, name)
			}
			g.Interfaces = append(g.Interfaces, s)
		}
		out = append(out, g)
	}
	return out, nil
}

func exportMethod(m assembly.Method) (Method, error) {
	em := Method{
		Name:       m.Name,
		Visibility: m.Attr.Vis.String(),
		Flags:      m.Attr.ImplFlags.String(),
		Registers:  m.Attr.RegisterLen,
	}
	var err error
	if em.Returns, err = ref.FormatType(m.RetType); err != nil {
		return em, errors.WithPath(err, "RetType")
	}
	for _, a := range m.Args {
		s, err := ref.FormatType(a)
		if err != nil {
			return em, errors.WithPath(err, "Args")
		}
		em.Args = append(em.Args, s)
	}
	if em.Generics, err = exportGenerics(&m.TypeVars); err != nil {
		return em, errors.WithPath(err, "TypeVars")
	}
	for _, in := range m.Instructions {
		em.Code = append(em.Code, instruction.Disassemble(in))
	}
	return em, nil
}

// Marshal exports a in the given format.
func Marshal(a *assembly.Assembly, format Format) ([]byte, error) {
	doc, err := FromAssembly(a)
	if err != nil {
		return nil, err
	}
	return doc.Marshal(format)
}

// Marshal encodes the document. SQLite output is a database file, not a
// byte stream; use WriteSQLite for it.
func (d *Document) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatCBOR:
		b, err := cborEncMode.Marshal(d)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "cbor")
		}
		return b, nil
	case FormatMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(d); err != nil {
			return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "msgpack")
		}
		return buf.Bytes(), nil
	}
	return nil, errors.Unsupported(errors.PhaseEncode, "export format "+string(format))
}

// Unmarshal decodes a document previously written by Marshal.
func Unmarshal(b []byte, format Format) (*Document, error) {
	var d Document
	switch format {
	case FormatCBOR:
		if err := cbor.Unmarshal(b, &d); err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "cbor")
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(b, &d); err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "msgpack")
		}
	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "export format "+string(format))
	}
	return &d, nil
}
