package bingen

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/plbin/errors"
)

// Config controls a generator run.
type Config struct {
	// Dir is the package directory. Defaults to the working directory.
	Dir string

	// Output is the generated file path, relative to Dir unless absolute.
	// Defaults to <package>_bin.go.
	Output string

	Logger *zap.Logger
}

// Run loads the package in cfg.Dir, generates its codecs and writes them.
// It returns the path of the written file.
func Run(cfg Config) (string, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	p, err := Load(dir, log)
	if err != nil {
		return "", err
	}

	src, err := Generate(p)
	if err != nil {
		return "", err
	}

	out := cfg.Output
	if out == "" {
		out = p.Name + "_bin.go"
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(p.Dir, out)
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return "", errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "write "+out)
	}

	log.Info("generated codecs",
		zap.String("package", p.Path),
		zap.Int("types", len(p.Types)),
		zap.String("output", out),
		zap.Int("bytes", len(src)))
	return out, nil
}
