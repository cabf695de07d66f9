package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/plbin/errors"
	"github.com/wippyai/plbin/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert an assembly to CBOR, msgpack or a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Export.Format = format
			}
			f, err := export.ParseFormat(a.cfg.Export.Format)
			if err != nil {
				return err
			}
			if f == export.FormatSQLite && output == "" {
				return errors.InvalidInput(errors.PhaseParse, "sqlite export needs --output")
			}
			asm, err := a.readAssembly(args[0])
			if err != nil {
				return err
			}
			if f == export.FormatSQLite {
				doc, err := export.FromAssembly(asm)
				if err != nil {
					return err
				}
				return doc.WriteSQLite(cmd.Context(), output)
			}
			b, err := export.Marshal(asm, f)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(output, b, 0o644); err != nil {
				return errors.Wrap(errors.PhaseEncode, errors.KindInvalidInput, err, "write "+output)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "cbor", "output format (cbor|msgpack|sqlite)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
