// Command plb inspects, verifies and exports assembly files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/binfile"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg  Config
	log  *zap.Logger
	opts []binfile.Option

	configPath string
	logLevel   string
	magic      string
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "plb",
		Short:         "Inspect and convert assembly files",
		Long:          `plb decodes assembly files, prints their contents and checks that they re-encode byte for byte.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&a.magic, "magic", "", `two-byte file header, "" for none`)

	root.AddCommand(
		newDumpCmd(a),
		newStringsCmd(a),
		newVerifyCmd(a),
		newExportCmd(a),
		newInspectCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	cfg, err := loadConfig(a.configPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("magic") {
		cfg.File.Magic = a.magic
	}
	a.cfg = cfg

	log, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.log = log
	binfile.SetLogger(log)

	opts, err := cfg.File.options()
	if err != nil {
		return err
	}
	a.opts = append(opts, binfile.WithLogger(log))

	log.Debug("configured",
		zap.String("config", a.configPath),
		zap.String("magic", cfg.File.Magic),
		zap.String("command", cmd.Name()))
	return nil
}

func (a *app) readAssembly(path string) (*assembly.Assembly, error) {
	asm, err := assembly.ReadFile(path, a.opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return asm, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
