package bingen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/wippyai/plbin/errors"
)

const generatedHeader = "// Code generated by bingen. DO NOT EDIT."

// Load type-checks the package in dir and collects its bingen declarations.
//
// Files previously written by bingen are replaced by an empty package clause
// while loading, so stale output never prevents regeneration. Type errors are
// tolerated for the same reason: declarations may mention identifiers that
// only the generated file defines.
func Load(dir string, log *zap.Logger) (*Package, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Load("resolve directory", err)
	}

	overlay, err := generatedOverlay(abs)
	if err != nil {
		return nil, err
	}

	// NeedDeps keeps go list from compiling the target itself, which would
	// surface the blanked generated symbols as list errors.
	mode := packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo |
		packages.NeedDeps | packages.NeedImports
	cfg := &packages.Config{
		Mode:    mode,
		Dir:     abs,
		Overlay: overlay,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Load("load package "+abs, err)
	}
	if len(pkgs) == 0 {
		return nil, errors.NotFound(errors.PhaseLoad, "package", abs)
	}

	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			log.Debug("tolerated type error", zap.String("package", pkg.PkgPath), zap.String("error", e.Msg))
			continue
		}
		return nil, errors.Load("package "+pkg.PkgPath, e)
	}
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return nil, errors.Load("type information not available for "+abs, nil)
	}

	p := &Package{
		Name: pkg.Name,
		Path: pkg.PkgPath,
		Dir:  abs,
	}
	if err := collect(p, pkg); err != nil {
		return nil, err
	}

	log.Debug("loaded package",
		zap.String("package", p.Path),
		zap.Int("types", len(p.Types)),
		zap.Int("overlaid", len(overlay)))
	return p, nil
}

// generatedOverlay maps every bingen output file in dir to just its package clause.
func generatedOverlay(dir string) (map[string][]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Load("read directory", err)
	}
	overlay := make(map[string][]byte)
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Load("read "+name, err)
		}
		if !bytes.HasPrefix(src, []byte(generatedHeader)) {
			continue
		}
		f, err := parser.ParseFile(fset, path, src, parser.PackageClauseOnly)
		if err != nil {
			return nil, errors.Load("parse "+name, err)
		}
		overlay[path] = []byte(generatedHeader + "\n\npackage " + f.Name.Name + "\n")
	}
	return overlay, nil
}

func collect(p *Package, pkg *packages.Package) error {
	var unions []*TypeDecl

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				ds, err := parseDirectives(doc)
				if err != nil {
					return errors.WithPath(err, ts.Name.Name)
				}
				if len(ds) == 0 {
					continue
				}
				td, err := interpret(ts.Name.Name, ds)
				if err != nil {
					return err
				}
				d, err := declare(pkg, ts, td)
				if err != nil {
					return err
				}
				p.add(d)
				if d.Kind == KindUnion {
					unions = append(unions, d)
				}
			}
		}
	}

	// Union cases are records whether or not they carry their own directive.
	for _, u := range unions {
		for _, c := range u.Cases {
			if existing := p.Lookup(c.TypeName); existing != nil {
				if existing.Kind != KindRecord {
					return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
						Path(u.Name, c.Name).
						Detail("case type %s is declared as %s", c.TypeName, existing.Kind).
						Build()
				}
				continue
			}
			obj, ok := pkg.Types.Scope().Lookup(c.TypeName).(*types.TypeName)
			if !ok {
				return errors.NotFound(errors.PhaseLoad, "case type", c.TypeName)
			}
			d, err := recordDecl(obj)
			if err != nil {
				return errors.WithPath(err, u.Name)
			}
			p.add(d)
		}
	}

	return collectConsts(p, pkg)
}

func declare(pkg *packages.Package, ts *ast.TypeSpec, td typeDirectives) (*TypeDecl, error) {
	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil, errors.NotFound(errors.PhaseLoad, "type", ts.Name.Name)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(ts.Name.Name).
			Detail("aliases cannot carry bingen directives").
			Build()
	}

	switch td.kind {
	case KindRecord:
		return recordDecl(obj)

	case KindEnum, KindFlags:
		basic, ok := named.Underlying().(*types.Basic)
		if !ok || basic.Info()&types.IsInteger == 0 || !fixedWidth(basic) {
			return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
				Path(obj.Name()).
				GoType(named.Underlying().String()).
				Detail("%s needs a fixed-width integer underlying type", td.kind).
				Build()
		}
		if td.kind == KindFlags && basic.Info()&types.IsUnsigned == 0 {
			return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
				Path(obj.Name()).
				GoType(basic.Name()).
				Detail("flags need an unsigned underlying type").
				Build()
		}
		return &TypeDecl{Name: obj.Name(), Kind: td.kind, Named: named, Repr: basic.Name()}, nil

	case KindUnion:
		if _, ok := named.Underlying().(*types.Interface); !ok {
			return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
				Path(obj.Name()).
				Detail("union must be an interface type").
				Build()
		}
		return &TypeDecl{Name: obj.Name(), Kind: KindUnion, Named: named, Repr: td.repr, Cases: td.cases}, nil
	}
	return nil, errors.Unsupported(errors.PhaseLoad, "directive kind "+td.kind.String())
}

func recordDecl(obj *types.TypeName) (*TypeDecl, error) {
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, errors.NotFound(errors.PhaseLoad, "named type", obj.Name())
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(obj.Name()).
			GoType(named.Underlying().String()).
			Detail("record must be a struct type").
			Build()
	}
	d := &TypeDecl{Name: obj.Name(), Kind: KindRecord, Named: named}
	for i := range st.NumFields() {
		fv := st.Field(i)
		if fv.Name() == "_" {
			continue
		}
		d.Fields = append(d.Fields, Field{Name: fv.Name(), Type: fv.Type()})
	}
	return d, nil
}

// collectConsts assigns enum and flag constants in source order.
func collectConsts(p *Package, pkg *packages.Package) error {
	type entry struct {
		pos  token.Pos
		name string
	}
	found := make(map[*TypeDecl][]entry)

	for ident, obj := range pkg.TypesInfo.Defs {
		c, ok := obj.(*types.Const)
		if !ok || ident.Name == "_" || c.Parent() != pkg.Types.Scope() {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types {
			continue
		}
		d := p.Lookup(named.Obj().Name())
		if d == nil || (d.Kind != KindEnum && d.Kind != KindFlags) {
			continue
		}
		found[d] = append(found[d], entry{pos: ident.Pos(), name: ident.Name})
	}

	for _, d := range p.Types {
		if d.Kind != KindEnum && d.Kind != KindFlags {
			continue
		}
		entries := found[d]
		if len(entries) == 0 {
			return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(d.Name).
				Detail("%s declares no constants", d.Kind).
				Build()
		}
		slices.SortFunc(entries, func(a, b entry) int { return int(a.pos - b.pos) })
		for _, e := range entries {
			d.Consts = append(d.Consts, e.name)
		}
	}
	return nil
}

func fixedWidth(b *types.Basic) bool {
	switch b.Kind() {
	case types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint8, types.Uint16, types.Uint32, types.Uint64:
		return true
	}
	return false
}
