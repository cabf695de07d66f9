package bingen

import (
	"go/types"

	"github.com/dave/jennifer/jen"

	"github.com/wippyai/plbin/errors"
)

const (
	binfilePath = "github.com/wippyai/plbin/binfile"
	errorsPath  = "github.com/wippyai/plbin/errors"
)

// codec renders the calls that encode and decode one Go type.
// Every func returns a fresh statement; jen statements must not be shared.
type codec struct {
	// encode renders an expression of type error that writes x.
	encode func(x jen.Code) *jen.Statement
	// decode renders an expression of type (T, error).
	decode func() *jen.Statement
	// decodeInto, when set, renders an error expression that fills x in place.
	decodeInto func(x jen.Code) *jen.Statement

	// encFn and decFn render function values usable as element codecs.
	// They are nil for types that cannot be elements.
	encFn func() *jen.Statement
	decFn func() *jen.Statement
}

func bf(name string) *jen.Statement { return jen.Qual(binfilePath, name) }

// funcCodec builds a codec from a pair of binfile-shaped functions.
func funcCodec(encFn, decFn func() *jen.Statement) *codec {
	return &codec{
		encode: func(x jen.Code) *jen.Statement { return encFn().Call(jen.Id("f"), x) },
		decode: func() *jen.Statement { return decFn().Call(jen.Id("f")) },
		encFn:  encFn,
		decFn:  decFn,
	}
}

func namedFunc(name string) func() *jen.Statement {
	return func() *jen.Statement { return bf(name) }
}

// resolver maps Go types to codecs for one package.
type resolver struct {
	pkg     *Package
	imports map[string]string
}

func newResolver(p *Package) *resolver {
	return &resolver{pkg: p, imports: make(map[string]string)}
}

func unsupported(t types.Type, detail string) error {
	return errors.New(errors.PhaseGenerate, errors.KindUnsupported).
		GoType(t.String()).
		Detail("%s", detail).
		Build()
}

// resolve returns the codec for t in field position.
func (r *resolver) resolve(t types.Type) (*codec, error) {
	t = types.Unalias(t)

	switch t := t.(type) {
	case *types.Basic:
		return r.basic(t, t)

	case *types.Named:
		return r.named(t)

	case *types.Pointer:
		elem, err := r.element(t.Elem())
		if err != nil {
			return nil, err
		}
		return &codec{
			encode: func(x jen.Code) *jen.Statement { return bf("EncodeOption").Call(jen.Id("f"), x, elem.encFn()) },
			decode: func() *jen.Statement { return bf("DecodeOption").Call(jen.Id("f"), elem.decFn()) },
			encFn:  func() *jen.Statement { return bf("OptionEncoder").Call(elem.encFn()) },
			decFn:  func() *jen.Statement { return bf("OptionDecoder").Call(elem.decFn()) },
		}, nil

	case *types.Slice:
		elem, err := r.element(t.Elem())
		if err != nil {
			return nil, err
		}
		return &codec{
			encode: func(x jen.Code) *jen.Statement { return bf("EncodeSeq").Call(jen.Id("f"), x, elem.encFn()) },
			decode: func() *jen.Statement { return bf("DecodeSeq").Call(jen.Id("f"), elem.decFn()) },
			encFn:  func() *jen.Statement { return bf("SeqEncoder").Call(elem.encFn()) },
			decFn:  func() *jen.Statement { return bf("SeqDecoder").Call(elem.decFn()) },
		}, nil

	case *types.Array:
		elem, err := r.element(t.Elem())
		if err != nil {
			return nil, err
		}
		// Arrays only appear as record fields; there is no element form.
		return &codec{
			encode: func(x jen.Code) *jen.Statement {
				return bf("EncodeArray").Call(jen.Id("f"), jen.Add(x).Index(jen.Empty(), jen.Empty()), elem.encFn())
			},
			decodeInto: func(x jen.Code) *jen.Statement {
				return bf("DecodeArray").Call(jen.Id("f"), jen.Add(x).Index(jen.Empty(), jen.Empty()), elem.decFn())
			},
		}, nil

	case *types.Map:
		if !orderedKey(t.Key()) {
			return nil, unsupported(t, "map keys must be strings or integers")
		}
		k, err := r.element(t.Key())
		if err != nil {
			return nil, err
		}
		v, err := r.element(t.Elem())
		if err != nil {
			return nil, err
		}
		return &codec{
			encode: func(x jen.Code) *jen.Statement {
				return bf("EncodeMap").Call(jen.Id("f"), x, k.encFn(), v.encFn())
			},
			decode: func() *jen.Statement { return bf("DecodeMap").Call(jen.Id("f"), k.decFn(), v.decFn()) },
			encFn:  func() *jen.Statement { return bf("MapEncoder").Call(k.encFn(), v.encFn()) },
			decFn:  func() *jen.Statement { return bf("MapDecoder").Call(k.decFn(), v.decFn()) },
		}, nil
	}

	return nil, unsupported(t, "no codec for this type")
}

// element resolves t and requires a function form.
func (r *resolver) element(t types.Type) (*codec, error) {
	c, err := r.resolve(t)
	if err != nil {
		return nil, err
	}
	if c.encFn == nil || c.decFn == nil {
		return nil, unsupported(t, "type cannot be used as an element")
	}
	return c, nil
}

// basic handles predeclared types; typ is the type as written, which may be
// a named integer type.
func (r *resolver) basic(b *types.Basic, typ types.Type) (*codec, error) {
	switch b.Kind() {
	case types.Bool:
		if typ != types.Type(b) {
			break
		}
		return funcCodec(namedFunc("EncodeBool"), namedFunc("DecodeBool")), nil
	case types.String:
		if typ != types.Type(b) {
			break
		}
		return funcCodec(namedFunc("EncodeString"), namedFunc("DecodeString")), nil
	}
	if !fixedWidth(b) {
		return nil, unsupported(typ, "only fixed-width integers are encodable")
	}

	c := funcCodec(
		func() *jen.Statement { return bf("EncodeInt").Types(r.typeCode(typ)) },
		func() *jen.Statement { return bf("DecodeInt").Types(r.typeCode(typ)) },
	)
	// the type argument is inferred in call position
	c.encode = func(x jen.Code) *jen.Statement { return bf("EncodeInt").Call(jen.Id("f"), x) }
	return c, nil
}

func (r *resolver) named(n *types.Named) (*codec, error) {
	obj := n.Obj()

	if obj.Pkg() != nil && obj.Pkg().Path() == binfilePath && obj.Name() == "OrderedMap" {
		return r.orderedMap(n)
	}

	if obj.Pkg() != nil && obj.Pkg().Path() == r.pkg.Path {
		if d := r.pkg.Lookup(obj.Name()); d != nil {
			if d.Kind == KindUnion {
				return r.union("", d.Name), nil
			}
			return r.value(n), nil
		}
	}

	if hasMethods(n, "EncodeBinary", "DecodeBinary") {
		return r.value(n), nil
	}

	if _, ok := n.Underlying().(*types.Interface); ok && obj.Pkg() != nil {
		scope := obj.Pkg().Scope()
		_, enc := scope.Lookup("Encode" + obj.Name()).(*types.Func)
		_, dec := scope.Lookup("Decode" + obj.Name()).(*types.Func)
		if enc && dec {
			path := obj.Pkg().Path()
			r.imports[path] = obj.Pkg().Name()
			return r.union(path, obj.Name()), nil
		}
	}

	if b, ok := n.Underlying().(*types.Basic); ok && b.Info()&types.IsInteger != 0 {
		return r.basic(b, n)
	}

	return nil, unsupported(n, "type has no EncodeBinary/DecodeBinary methods and no bingen directive")
}

// value is the codec of a type that serializes itself.
func (r *resolver) value(n *types.Named) *codec {
	return &codec{
		encode: func(x jen.Code) *jen.Statement { return jen.Add(x).Dot("EncodeBinary").Call(jen.Id("f")) },
		decodeInto: func(x jen.Code) *jen.Statement {
			return jen.Add(x).Dot("DecodeBinary").Call(jen.Id("f"))
		},
		encFn: func() *jen.Statement { return bf("EncodeValue").Types(r.typeCode(n)) },
		decFn: func() *jen.Statement { return bf("DecodeValue").Types(r.typeCode(n)) },
	}
}

// union is the codec of an interface with generated Encode/Decode
// functions. An empty path refers to the package being generated.
func (r *resolver) union(path, name string) *codec {
	ref := func(fn string) func() *jen.Statement {
		return func() *jen.Statement {
			if path == "" {
				return jen.Id(fn)
			}
			return jen.Qual(path, fn)
		}
	}
	return funcCodec(ref("Encode"+name), ref("Decode"+name))
}

func (r *resolver) orderedMap(n *types.Named) (*codec, error) {
	args := n.TypeArgs()
	if args == nil || args.Len() != 2 {
		return nil, unsupported(n, "OrderedMap needs key and value type arguments")
	}
	k, err := r.element(args.At(0))
	if err != nil {
		return nil, err
	}
	v, err := r.element(args.At(1))
	if err != nil {
		return nil, err
	}
	return &codec{
		encode: func(x jen.Code) *jen.Statement {
			return bf("EncodeOrderedMap").Call(jen.Id("f"), x, k.encFn(), v.encFn())
		},
		decode: func() *jen.Statement { return bf("DecodeOrderedMap").Call(jen.Id("f"), k.decFn(), v.decFn()) },
		encFn:  func() *jen.Statement { return bf("OrderedMapEncoder").Call(k.encFn(), v.encFn()) },
		decFn:  func() *jen.Statement { return bf("OrderedMapDecoder").Call(k.decFn(), v.decFn()) },
	}, nil
}

// typeCode renders t as it is spelled inside the generated package.
func (r *resolver) typeCode(t types.Type) *jen.Statement {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return jen.Id(t.Name())
	case *types.Named:
		obj := t.Obj()
		var s *jen.Statement
		if obj.Pkg() == nil || obj.Pkg().Path() == r.pkg.Path {
			s = jen.Id(obj.Name())
		} else {
			r.imports[obj.Pkg().Path()] = obj.Pkg().Name()
			s = jen.Qual(obj.Pkg().Path(), obj.Name())
		}
		if args := t.TypeArgs(); args != nil && args.Len() > 0 {
			codes := make([]jen.Code, args.Len())
			for i := range args.Len() {
				codes[i] = r.typeCode(args.At(i))
			}
			s = s.Types(codes...)
		}
		return s
	case *types.Pointer:
		return jen.Op("*").Add(r.typeCode(t.Elem()))
	case *types.Slice:
		return jen.Index().Add(r.typeCode(t.Elem()))
	case *types.Array:
		return jen.Index(jen.Lit(int(t.Len()))).Add(r.typeCode(t.Elem()))
	case *types.Map:
		return jen.Map(r.typeCode(t.Key())).Add(r.typeCode(t.Elem()))
	}
	return jen.Id(t.String())
}

func orderedKey(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}
	return b.Kind() == types.String || (b.Info()&types.IsInteger != 0 && fixedWidth(b))
}

// hasMethods reports whether *n has all the named methods.
func hasMethods(n *types.Named, names ...string) bool {
	mset := types.NewMethodSet(types.NewPointer(n))
	for _, name := range names {
		if mset.Lookup(n.Obj().Pkg(), name) == nil {
			return false
		}
	}
	return true
}
