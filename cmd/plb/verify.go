package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/errors"
)

func newVerifyCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check that files decode and re-encode to identical bytes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("jobs") {
				a.cfg.Verify.Jobs = jobs
			}
			results := verifyFiles(cmd.Context(), args, a.cfg.Verify.Jobs, a.opts, a.log)

			out := cmd.OutOrStdout()
			failed := 0
			for i, err := range results {
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", args[i], err)
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", args[i])
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed verification", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files checked in parallel (default from config)")
	return cmd
}

// verifyFiles checks every path and returns one result per path.
// Each worker uses its own File, so passes never share state.
func verifyFiles(ctx context.Context, paths []string, jobs int, opts []binfile.Option, log *zap.Logger) []error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = err
				return nil
			}
			results[i] = verifyFile(path, opts)
			log.Debug("verified", zap.String("path", path), zap.Error(results[i]))
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func verifyFile(path string, opts []binfile.Option) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return errors.Load("read "+path, err)
	}
	asm, err := assembly.Decode(original, opts...)
	if err != nil {
		return err
	}
	again, err := assembly.Encode(asm, opts...)
	if err != nil {
		return err
	}
	if !bytes.Equal(original, again) {
		return errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Detail("re-encoded %d bytes differ from the %d original bytes", len(again), len(original)).
			Build()
	}
	return nil
}
