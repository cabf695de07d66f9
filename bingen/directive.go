package bingen

import (
	"go/ast"
	"strings"

	"github.com/wippyai/plbin/errors"
)

const directivePrefix = "//bingen:"

// directive is one //bingen:verb line with its whitespace-separated arguments.
type directive struct {
	verb string
	args []string
}

// parseDirectives extracts bingen directives from a doc comment.
// Regular comment lines are ignored.
func parseDirectives(doc *ast.CommentGroup) ([]directive, error) {
	if doc == nil {
		return nil, nil
	}
	var out []directive
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Detail("empty directive %q", c.Text).
				Build()
		}
		out = append(out, directive{verb: fields[0], args: fields[1:]})
	}
	return out, nil
}

// typeDirectives is the interpreted directive set of one type declaration.
type typeDirectives struct {
	kind  Kind
	repr  string
	cases []Case
}

func interpret(typeName string, ds []directive) (typeDirectives, error) {
	var td typeDirectives
	setKind := func(k Kind) error {
		if td.kind != 0 {
			return errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path(typeName).
				Detail("conflicting directives %s and %s", td.kind, k).
				Build()
		}
		td.kind = k
		return nil
	}

	for _, d := range ds {
		var err error
		switch d.verb {
		case "record":
			err = setKind(KindRecord)
		case "enum":
			err = setKind(KindEnum)
		case "flags":
			err = setKind(KindFlags)
		case "union":
			if err = setKind(KindUnion); err != nil {
				break
			}
			td.repr = "uint8"
			for _, arg := range d.args {
				key, val, _ := strings.Cut(arg, "=")
				if key != "repr" {
					return td, badDirective(typeName, d, "unknown option %q", key)
				}
				if !isUnsignedName(val) {
					return td, badDirective(typeName, d, "repr must be an unsigned integer type, got %q", val)
				}
				td.repr = val
			}
		case "case":
			if len(d.args) < 1 || len(d.args) > 2 {
				return td, badDirective(typeName, d, "want: case Name [GoType]")
			}
			c := Case{Name: d.args[0], TypeName: d.args[0]}
			if len(d.args) == 2 {
				c.TypeName = d.args[1]
			}
			td.cases = append(td.cases, c)
		default:
			return td, badDirective(typeName, d, "unknown directive")
		}
		if err != nil {
			return td, err
		}
	}

	if len(td.cases) > 0 && td.kind != KindUnion {
		return td, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(typeName).
			Detail("case directive outside a union").
			Build()
	}
	if td.kind == KindUnion && len(td.cases) == 0 {
		return td, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Path(typeName).
			Detail("union has no cases").
			Build()
	}
	return td, nil
}

func badDirective(typeName string, d directive, format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Path(typeName).
		Value(directivePrefix + d.verb).
		Detail(format, args...).
		Build()
}

func isUnsignedName(s string) bool {
	switch s {
	case "uint8", "uint16", "uint32", "uint64":
		return true
	}
	return false
}
