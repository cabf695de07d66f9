package bingen

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/wippyai/plbin/errors"
)

// Generate renders the codec source for every declaration in p.
// Declarations are emitted sorted by name; fields and cases keep their
// declaration order.
func Generate(p *Package) ([]byte, error) {
	if len(p.Types) == 0 {
		return nil, errors.NotFound(errors.PhaseGenerate, "bingen declarations in package", p.Path)
	}

	r := newResolver(p)
	file := jen.NewFilePathName(p.Path, p.Name)
	file.HeaderComment(generatedHeader)

	decls := slices.Clone(p.Types)
	slices.SortFunc(decls, func(a, b *TypeDecl) int { return strings.Compare(a.Name, b.Name) })

	e := &emitter{file: file, r: r, pkg: p}
	for _, d := range decls {
		var err error
		switch d.Kind {
		case KindRecord:
			err = e.record(d)
		case KindEnum:
			e.enum(d)
		case KindFlags:
			e.flags(d)
		case KindUnion:
			err = e.union(d)
		}
		if err != nil {
			return nil, err
		}
	}

	names := map[string]string{
		"fmt":       "fmt",
		"strconv":   "strconv",
		binfilePath: "binfile",
		errorsPath:  "errors",
	}
	for path, name := range r.imports {
		names[path] = name
	}
	file.ImportNames(names)

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "render "+p.Path)
	}

	// groups standard library imports apart from module imports
	out, err := imports.Process(p.Name+"_bin.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "format "+p.Path)
	}
	return out, nil
}

type emitter struct {
	file *jen.File
	r    *resolver
	pkg  *Package
}

func (e *emitter) goType(name string) string {
	return e.pkg.Name + "." + name
}

func fileParam() *jen.Statement {
	return jen.Id("f").Op("*").Qual(binfilePath, "File")
}

func recv(name string) *jen.Statement {
	return jen.Id("v").Op("*").Id(name)
}

func withPath(segment jen.Code) *jen.Statement {
	return jen.Return(jen.Qual(errorsPath, "WithPath").Call(jen.Err(), segment))
}

func (e *emitter) record(d *TypeDecl) error {
	type resolved struct {
		Field
		c *codec
	}
	fields := make([]resolved, 0, len(d.Fields))
	for _, fd := range d.Fields {
		c, err := e.r.resolve(fd.Type)
		if err != nil {
			return errors.WithPath(errors.WithPath(err, fd.Name), d.Name)
		}
		fields = append(fields, resolved{Field: fd, c: c})
	}

	e.file.Comment(fmt.Sprintf("EncodeBinary writes the fields of %s in declaration order.", d.Name))
	e.file.Func().Params(recv(d.Name)).Id("EncodeBinary").Params(fileParam()).Error().BlockFunc(func(g *jen.Group) {
		g.If(jen.Id("v").Op("==").Nil()).Block(
			jen.Return(jen.Qual(binfilePath, "NilVariant").Call(jen.Lit(e.goType(d.Name)))),
		)
		for _, fd := range fields {
			g.If(
				jen.Err().Op(":=").Add(fd.c.encode(jen.Id("v").Dot(fd.Name))),
				jen.Err().Op("!=").Nil(),
			).Block(withPath(jen.Lit(fd.Name)))
		}
		g.Return(jen.Nil())
	})
	e.file.Line()

	e.file.Comment(fmt.Sprintf("DecodeBinary reads the fields of %s in declaration order.", d.Name))
	e.file.Func().Params(recv(d.Name)).Id("DecodeBinary").Params(fileParam()).Error().BlockFunc(func(g *jen.Group) {
		if len(fields) > 0 {
			g.Var().Err().Error()
		}
		for _, fd := range fields {
			var assign *jen.Statement
			if fd.c.decodeInto != nil {
				assign = jen.Err().Op("=").Add(fd.c.decodeInto(jen.Id("v").Dot(fd.Name)))
			} else {
				assign = jen.List(jen.Id("v").Dot(fd.Name), jen.Err()).Op("=").Add(fd.c.decode())
			}
			g.If(assign, jen.Err().Op("!=").Nil()).Block(withPath(jen.Lit(fd.Name)))
		}
		g.Return(jen.Nil())
	})
	e.file.Line()
	return nil
}

func (e *emitter) enum(d *TypeDecl) {
	consts := make([]jen.Code, len(d.Consts))
	for i, c := range d.Consts {
		consts[i] = jen.Id(c)
	}

	e.file.Comment(fmt.Sprintf("EncodeBinary writes the %s discriminant.", d.Name))
	e.file.Func().Params(recv(d.Name)).Id("EncodeBinary").Params(fileParam()).Error().Block(
		jen.Switch(jen.Op("*").Id("v")).Block(
			jen.Case(consts...).Block(
				jen.Return(jen.Qual(binfilePath, "EncodeInt").Call(jen.Id("f"), jen.Id(d.Repr).Call(jen.Op("*").Id("v")))),
			),
		),
		jen.Return(jen.Qual(binfilePath, "UnknownVariant").Call(jen.Lit(e.goType(d.Name)), jen.Uint64().Call(jen.Op("*").Id("v")))),
	)
	e.file.Line()

	e.file.Comment(fmt.Sprintf("DecodeBinary reads a %s discriminant.", d.Name))
	e.file.Func().Params(recv(d.Name)).Id("DecodeBinary").Params(fileParam()).Error().Block(
		jen.List(jen.Id("raw"), jen.Err()).Op(":=").Qual(binfilePath, "DecodeInt").Types(jen.Id(d.Repr)).Call(jen.Id("f")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Switch(jen.Id("x").Op(":=").Id(d.Name).Call(jen.Id("raw")), jen.Id("x")).Block(
			jen.Case(consts...).Block(
				jen.Op("*").Id("v").Op("=").Id("x"),
				jen.Return(jen.Nil()),
			),
		),
		jen.Return(jen.Qual(binfilePath, "EnumOutOfBounds").Call(jen.Lit(e.goType(d.Name)), jen.Uint64().Call(jen.Id("raw")))),
	)
	e.file.Line()
}

func (e *emitter) flags(d *TypeDecl) {
	known := lowerFirst(d.Name) + "Known"
	mask := jen.Id(d.Consts[0])
	for _, c := range d.Consts[1:] {
		mask = mask.Op("|").Id(c)
	}
	e.file.Const().Id(known).Id(d.Name).Op("=").Add(mask)
	e.file.Line()

	e.file.Comment(fmt.Sprintf("EncodeBinary writes %s as its underlying integer.", d.Name))
	e.file.Func().Params(recv(d.Name)).Id("EncodeBinary").Params(fileParam()).Error().Block(
		jen.Return(jen.Qual(binfilePath, "EncodeFlags").Call(
			jen.Id("f"), jen.Op("*").Id("v"), jen.Lit(e.goType(d.Name)), jen.Id(known),
		)),
	)
	e.file.Line()

	e.file.Comment(fmt.Sprintf("DecodeBinary reads %s, rejecting unknown bits.", d.Name))
	e.file.Func().Params(recv(d.Name)).Id("DecodeBinary").Params(fileParam()).Error().Block(
		jen.List(jen.Id("x"), jen.Err()).Op(":=").Qual(binfilePath, "DecodeFlags").Call(
			jen.Id("f"), jen.Lit(e.goType(d.Name)), jen.Id(known),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id("v").Op("=").Id("x"),
		jen.Return(jen.Nil()),
	)
	e.file.Line()
}

func (e *emitter) union(d *TypeDecl) error {
	kindType := d.Name + "Kind"
	kindConst := func(c Case) string { return kindType + c.Name }
	namesVar := lowerFirst(kindType) + "Names"

	for _, c := range d.Cases {
		if e.pkg.Lookup(c.TypeName) == nil {
			return errors.NotFound(errors.PhaseGenerate, "case type", c.TypeName)
		}
	}

	e.file.Comment(fmt.Sprintf("%s discriminates the variants of %s.", kindType, d.Name))
	e.file.Type().Id(kindType).Id(d.Repr)
	e.file.Line()

	e.file.Const().DefsFunc(func(g *jen.Group) {
		for i, c := range d.Cases {
			if i == 0 {
				g.Id(kindConst(c)).Id(kindType).Op("=").Iota()
				continue
			}
			g.Id(kindConst(c))
		}
	})
	e.file.Line()

	e.file.Var().Id(namesVar).Op("=").Index(jen.Op("...")).String().ValuesFunc(func(g *jen.Group) {
		for _, c := range d.Cases {
			g.Line().Id(kindConst(c)).Op(":").Lit(c.Name)
		}
		g.Line()
	})
	e.file.Line()

	e.file.Func().Params(jen.Id("k").Id(kindType)).Id("String").Params().String().Block(
		jen.If(jen.Uint64().Call(jen.Id("k")).Op("<").Uint64().Call(jen.Len(jen.Id(namesVar)))).Block(
			jen.Return(jen.Id(namesVar).Index(jen.Id("k"))),
		),
		jen.Return(jen.Lit(kindType+"(").Op("+").Qual("strconv", "FormatUint").Call(
			jen.Uint64().Call(jen.Id("k")), jen.Lit(10),
		).Op("+").Lit(")")),
	)
	e.file.Line()

	for _, c := range d.Cases {
		e.file.Comment(fmt.Sprintf("Kind reports the %s variant of %s.", d.Name, c.TypeName))
		e.file.Func().Params(jen.Op("*").Id(c.TypeName)).Id("Kind").Params().Id(kindType).Block(
			jen.Return(jen.Id(kindConst(c))),
		)
		e.file.Line()
	}

	goType := e.goType(d.Name)

	e.file.Comment(fmt.Sprintf("Encode%s writes the kind of v followed by its fields.", d.Name))
	e.file.Func().Id("Encode"+d.Name).Params(fileParam(), jen.Id("v").Id(d.Name)).Error().BlockFunc(func(g *jen.Group) {
		g.Var().Defs(
			jen.Id("kind").Id(kindType),
			jen.Id("body").Qual(binfilePath, "Encoder"),
		)
		g.Switch(jen.Id("x").Op(":=").Id("v").Assert(jen.Type())).BlockFunc(func(sw *jen.Group) {
			for _, c := range d.Cases {
				sw.Case(jen.Op("*").Id(c.TypeName)).Block(
					jen.List(jen.Id("kind"), jen.Id("body")).Op("=").List(jen.Id(kindConst(c)), jen.Id("x")),
				)
			}
			sw.Case(jen.Nil()).Block(
				jen.Return(jen.Qual(binfilePath, "NilVariant").Call(jen.Lit(goType))),
			)
			sw.Default().Block(
				jen.Return(jen.Qual(binfilePath, "UnknownVariant").Call(
					jen.Lit(goType), jen.Qual("fmt", "Sprintf").Call(jen.Lit("%T"), jen.Id("x")),
				)),
			)
		})
		g.If(
			jen.Err().Op(":=").Qual(binfilePath, "EncodeInt").Call(jen.Id("f"), jen.Id(d.Repr).Call(jen.Id("kind"))),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Err()))
		g.If(
			jen.Err().Op(":=").Id("body").Dot("EncodeBinary").Call(jen.Id("f")),
			jen.Err().Op("!=").Nil(),
		).Block(withPath(jen.Id("kind").Dot("String").Call()))
		g.Return(jen.Nil())
	})
	e.file.Line()

	e.file.Comment(fmt.Sprintf("Decode%s reads a kind discriminant and the matching variant.", d.Name))
	e.file.Func().Id("Decode"+d.Name).Params(fileParam()).Params(jen.Id(d.Name), jen.Error()).BlockFunc(func(g *jen.Group) {
		g.List(jen.Id("raw"), jen.Err()).Op(":=").Qual(binfilePath, "DecodeInt").Types(jen.Id(d.Repr)).Call(jen.Id("f"))
		g.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
		g.Var().Id("v").Interface(
			jen.Id(d.Name),
			jen.Qual(binfilePath, "Decoder"),
		)
		g.Id("kind").Op(":=").Id(kindType).Call(jen.Id("raw"))
		g.Switch(jen.Id("kind")).BlockFunc(func(sw *jen.Group) {
			for _, c := range d.Cases {
				sw.Case(jen.Id(kindConst(c))).Block(
					jen.Id("v").Op("=").New(jen.Id(c.TypeName)),
				)
			}
			sw.Default().Block(
				jen.Return(jen.Nil(), jen.Qual(binfilePath, "EnumOutOfBounds").Call(
					jen.Lit(e.goType(kindType)), jen.Uint64().Call(jen.Id("raw")),
				)),
			)
		})
		g.If(
			jen.Err().Op(":=").Id("v").Dot("DecodeBinary").Call(jen.Id("f")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Qual(errorsPath, "WithPath").Call(jen.Err(), jen.Id("kind").Dot("String").Call())))
		g.Return(jen.Id("v"), jen.Nil())
	})
	e.file.Line()
	return nil
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
