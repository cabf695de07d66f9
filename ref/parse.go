package ref

import (
	"strings"

	"github.com/wippyai/plbin/errors"
)

// characters that terminate a name inside a type reference
const typeDelims = "[],:<>"

// ParseType parses a type reference.
func ParseType(s string) (TypeRef, error) {
	p := parser{src: s}
	r, err := p.typeRef()
	if err != nil {
		return TypeRef{}, err
	}
	if !p.done() {
		return TypeRef{}, p.fail("unexpected %q after type reference", p.src[p.pos:])
	}
	return r, nil
}

// ParseMethod parses a method reference. A trailing <...> group is read as
// generic bindings; everything before it is the method name.
func ParseMethod(s string) (MethodRef, error) {
	if !strings.HasSuffix(s, ">") {
		if s == "" {
			return MethodRef{}, malformed(s, 0, "empty method name")
		}
		return MethodRef{Name: s}, nil
	}

	open := matchingOpen(s)
	if open < 0 {
		return MethodRef{}, malformed(s, len(s)-1, "unbalanced '>'")
	}
	if open == 0 {
		return MethodRef{}, malformed(s, 0, "empty method name")
	}

	p := parser{src: s[:len(s)-1], pos: open + 1}
	args, err := p.args()
	if err != nil {
		return MethodRef{}, err
	}
	if !p.done() {
		return MethodRef{}, p.fail("unexpected %q in generic bindings", p.src[p.pos:])
	}
	return MethodRef{Name: s[:open], Args: args}, nil
}

// matchingOpen returns the index of the '<' that opens the group closed by
// the final '>' of s, or -1.
func matchingOpen(s string) int {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '>':
			depth++
		case '<':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

type parser struct {
	src string
	pos int
}

func (p *parser) done() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		if p.done() {
			return p.fail("expected %q, got end of input", c)
		}
		return p.fail("expected %q, got %q", c, p.peek())
	}
	p.pos++
	return nil
}

// ident reads up to the next delimiter.
func (p *parser) ident(delims string) string {
	start := p.pos
	for !p.done() && strings.IndexByte(delims, p.src[p.pos]) < 0 {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) typeRef() (TypeRef, error) {
	if p.peek() == '@' {
		name := p.ident(typeDelims)
		if len(name) < 2 {
			return TypeRef{}, p.fail("empty generic parameter name")
		}
		return TypeRef{Name: name}, nil
	}

	if err := p.expect('['); err != nil {
		return TypeRef{}, err
	}
	asm := p.ident("]")
	if err := p.expect(']'); err != nil {
		return TypeRef{}, err
	}
	name := p.ident(typeDelims)
	if name == "" {
		return TypeRef{}, p.fail("empty type name")
	}

	r := TypeRef{Assembly: asm, Name: name}
	if p.peek() == '[' {
		p.pos++
		args, err := p.args()
		if err != nil {
			return TypeRef{}, err
		}
		if err := p.expect(']'); err != nil {
			return TypeRef{}, err
		}
		r.Args = args
	}
	return r, nil
}

// args reads one or more "@P:<type>" bindings separated by commas.
func (p *parser) args() ([]GenericArg, error) {
	var out []GenericArg
	for {
		if p.peek() != '@' {
			return nil, p.fail("generic binding must start with '@'")
		}
		param := p.ident(typeDelims)
		if len(param) < 2 {
			return nil, p.fail("empty generic parameter name")
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		t, err := p.typeRef()
		if err != nil {
			return nil, err
		}
		out = append(out, GenericArg{Param: param, Type: t})
		if p.peek() != ',' {
			return out, nil
		}
		p.pos++
	}
}

func (p *parser) fail(format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindMalformedReference).
		Value(p.src).
		Detail("at offset %d: "+format, append([]any{p.pos}, args...)...).
		Build()
}

func malformed(s string, pos int, detail string) error {
	p := parser{src: s, pos: pos}
	return p.fail("%s", detail)
}
