package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/errors"
)

func newStringsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strings FILE",
		Short: "Print the interned string table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Load("read "+args[0], err)
			}
			f, err := binfile.Open(b, a.opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			for i, s := range f.Interner().Strings() {
				fmt.Fprintf(out, "%5d  %q\n", i, s)
			}
			return nil
		},
	}
}
