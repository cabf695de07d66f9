package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/attrs"
	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/instruction"
)

func newDumpCmd(a *app) *cobra.Command {
	var colorMode string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the decoded contents of an assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("color") {
				a.cfg.Dump.Color = colorMode
			}
			asm, err := a.readAssembly(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			useColor, err := wantColor(a.cfg.Dump.Color, out)
			if err != nil {
				return err
			}
			newPrinter(out, useColor).assembly(asm)
			return nil
		},
	}
	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")
	return cmd
}

func wantColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("unknown color mode %q (want auto, on or off)", mode)
}

// printer writes an indented tree of an assembly.
type printer struct {
	w       io.Writer
	keyword *color.Color
	name    *color.Color
	typ     *color.Color
	dim     *color.Color
}

func newPrinter(w io.Writer, useColor bool) *printer {
	p := &printer{
		w:       w,
		keyword: color.New(color.FgMagenta, color.Bold),
		name:    color.New(color.FgGreen),
		typ:     color.New(color.FgCyan),
		dim:     color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.keyword, p.name, p.typ, p.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) line(indent int, parts ...string) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", indent), strings.Join(parts, " "))
}

func (p *printer) assembly(asm *assembly.Assembly) {
	p.line(0, p.keyword.Sprint("assembly"), p.name.Sprint(asm.Name))
	for _, name := range asm.TypeNames() {
		def := asm.TypeDefs[name]
		if def == nil {
			continue
		}
		p.typeDef(def)
	}
}

func (p *printer) typeDef(def assembly.TypeDef) {
	kind := "struct"
	var parent string
	if c, ok := def.(*assembly.ClassDef); ok {
		kind = "class"
		if c.Parent != nil {
			parent = ": " + p.typ.Sprint(c.Parent.String())
		}
	}

	attr := def.Attributes()
	head := []string{p.keyword.Sprint(kind), p.attrs(attr.Vis, specificFlags(attr.Specific)), p.name.Sprint(def.TypeName())}
	if parent != "" {
		head = append(head, parent)
	}
	p.line(1, head...)

	p.generics(2, def.GenericParams())
	for _, f := range def.FieldTable().All() {
		p.line(2, p.keyword.Sprint("field"), p.attrs(f.Attr.Vis, f.Attr.ImplFlags.String()), p.name.Sprint(f.Name), p.typ.Sprint(f.Type.String()))
	}
	for _, m := range def.MethodTable().All() {
		p.method(m)
	}
}

func (p *printer) generics(indent int, vars *binfile.OrderedMap[string, assembly.GenericBinding]) {
	for name, b := range vars.All() {
		parts := []string{p.keyword.Sprint("generic"), p.name.Sprint(name)}
		if b.Parent != nil {
			parts = append(parts, ":", p.typ.Sprint(b.Parent.String()))
		}
		for _, iface := range b.ImplementedInterfaces {
			parts = append(parts, p.dim.Sprint("implements"), p.typ.Sprint(iface.String()))
		}
		p.line(indent, parts...)
	}
}

func (p *printer) method(m assembly.Method) {
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = a.String()
	}
	p.line(2,
		p.keyword.Sprint("method"),
		p.attrs(m.Attr.Vis, m.Attr.ImplFlags.String()),
		p.name.Sprint(m.Name),
		p.dim.Sprint("("+strings.Join(args, ", ")+")"),
		"->", p.typ.Sprint(m.RetType.String()),
		p.dim.Sprintf("registers=%d", m.Attr.RegisterLen),
	)
	p.generics(3, &m.TypeVars)
	for i, in := range m.Instructions {
		p.line(3, p.dim.Sprintf("%04d", i), instruction.Disassemble(in))
	}
}

func (p *printer) attrs(vis attrs.Visibility, flags string) string {
	s := vis.String()
	if flags != "" {
		s += " " + flags
	}
	return p.dim.Sprint("[" + s + "]")
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
